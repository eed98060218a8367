package desktop

import (
	"encoding/binary"
	"math"

	"github.com/playmatatu/pong/internal/game"
)

// PCM renders t as a sine wave in 16-bit little-endian stereo, the layout
// the audio player expects.
func PCM(t game.Tone) []byte {
	n := int(float64(t.SampleRate) * t.Duration.Seconds())
	buf := make([]byte, n*4)
	step := 2 * math.Pi * t.Frequency / float64(t.SampleRate)
	for i := 0; i < n; i++ {
		v := int16(math.Sin(step*float64(i)) * t.Volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
