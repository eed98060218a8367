package ws

import (
	"bytes"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/pong/internal/game"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is the wire encoding a client asked for.
type Format int8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

var formats = []Format{FormatJSON, FormatMsgpack}

// ParseFormat maps the ?format= query value. Anything unknown is JSON.
func ParseFormat(s string) Format {
	if s == "msgpack" {
		return FormatMsgpack
	}
	return FormatJSON
}

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// messageType is the websocket frame type used for f.
func (f Format) messageType() int {
	if f == FormatMsgpack {
		return websocket.BinaryMessage
	}
	return websocket.TextMessage
}

// Server -> client messages
type FrameMessage struct {
	Type  string     `json:"type"`
	Frame game.Frame `json:"frame"`
}

type CueMessage struct {
	Type string    `json:"type"`
	Cue  string    `json:"cue"`
	Tone game.Tone `json:"tone"`
}

type WelcomeMessage struct {
	Type     string `json:"type"`
	ClientID string `json:"client_id"`
	Role     string `json:"role"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ClientMessage is anything a browser sends: input, replay or quit.
type ClientMessage struct {
	Type   string `json:"type"`
	Intent string `json:"intent,omitempty"`
	Value  *bool  `json:"value,omitempty"`
}

// Encode marshals v in the given format. msgpack reuses the json tags so
// both encodings carry the same keys.
func Encode(format Format, v interface{}) ([]byte, error) {
	if format != FormatMsgpack {
		return json.Marshal(v)
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode unmarshals data in the given format into v.
func Decode(format Format, data []byte, v interface{}) error {
	if format != FormatMsgpack {
		return json.Unmarshal(data, v)
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
