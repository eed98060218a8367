package game

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Input is what the loop reads from its input collaborator once per tick.
// Replay is nil until the player has answered the play-again prompt.
type Input struct {
	Quit   bool
	Replay *bool
	Intent Intent
}

// InputSource must return immediately.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// Frame is everything a renderer needs to draw one tick.
type Frame struct {
	MatchID string `json:"match_id"`
	Tick    uint64 `json:"tick"`
	Field   Field  `json:"field"`
	Left    Paddle `json:"left"`
	Right   Paddle `json:"right"`
	Ball    Ball   `json:"ball"`
	Score   Score  `json:"score"`
	State   State  `json:"state"`
	Winner  Side   `json:"winner"`
}

// Banner returns the two game-over lines, or empty strings during play.
func (f Frame) Banner() (title, prompt string) {
	if f.State != StateGameOver {
		return "", ""
	}
	who := "Right (You)"
	if f.Winner == SideLeft {
		who = "Left (AI)"
	}
	return fmt.Sprintf("%s wins!", who), "Play again?  Y / N"
}

// Renderer receives a frame at the end of every tick. It must not block.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Frame)

func (f RenderFunc) Render(fr Frame) { f(fr) }

// MultiRenderer fans a frame out to several renderers. Nil entries are skipped.
type MultiRenderer []Renderer

func (m MultiRenderer) Render(f Frame) {
	for _, r := range m {
		if r != nil {
			r.Render(f)
		}
	}
}

// Cue is a sound the core asks for.
type Cue int8

const (
	CuePaddleHit Cue = iota + 1
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle_hit"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// Tone describes the beep a cue stands for.
type Tone struct {
	Frequency  float64       `json:"frequency"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	Volume     float64       `json:"volume"`
	SampleRate int           `json:"sample_rate"`
}

// Tone returns the synthesised tone for the cue: a high beep for paddle
// hits and a low one for points.
func (c Cue) Tone() Tone {
	t := Tone{
		Frequency:  900,
		Duration:   130 * time.Millisecond,
		Volume:     0.38,
		SampleRate: 44100,
	}
	if c == CueScore {
		t.Frequency = 440
	}
	t.DurationMS = t.Duration.Milliseconds()
	return t
}

// AudioSink plays cues fire-and-forget.
type AudioSink interface {
	Play(Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

// MultiAudio fans a cue out to several sinks. Nil entries are skipped.
type MultiAudio []AudioSink

func (m MultiAudio) Play(c Cue) {
	for _, a := range m {
		if a != nil {
			a.Play(c)
		}
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	case "none", "":
		*s = SideNone
	default:
		return fmt.Errorf("unknown side %q", b)
	}
	return nil
}

// EncodeMsgpack writes the side as a msgpack str, matching the JSON form.
func (s Side) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.String())
}

func (s *Side) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return s.UnmarshalText([]byte(v))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = StatePlaying
	case "game_over":
		*s = StateGameOver
	case "terminated":
		*s = StateTerminated
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

func (s State) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.String())
}

func (s *State) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return s.UnmarshalText([]byte(v))
}
