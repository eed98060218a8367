//go:build ebiten

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/playmatatu/pong/internal/game"
)

// Speaker plays cues as short sine beeps. Players run on ebiten's audio
// thread so Play returns immediately.
type Speaker struct {
	ctx *audio.Context
	pcm map[game.Cue][]byte
}

func NewSpeaker() *Speaker {
	tone := game.CuePaddleHit.Tone()
	s := &Speaker{
		ctx: audio.NewContext(tone.SampleRate),
		pcm: make(map[game.Cue][]byte),
	}
	for _, c := range []game.Cue{game.CuePaddleHit, game.CueScore} {
		s.pcm[c] = PCM(c.Tone())
	}
	return s
}

func (s *Speaker) Play(c game.Cue) {
	pcm, ok := s.pcm[c]
	if !ok {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
