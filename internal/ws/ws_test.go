package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/pong/internal/game"
	"github.com/vmihailenco/msgpack/v5"
)

func TestInputStateOneShots(t *testing.T) {
	var s InputState
	s.SetIntent(game.IntentUp)
	s.SetReplay(true)
	s.Quit()

	in := s.Poll()
	if in.Intent != game.IntentUp || !in.Quit || in.Replay == nil || !*in.Replay {
		t.Fatalf("Unexpected first poll %+v", in)
	}

	in = s.Poll()
	if in.Intent != game.IntentUp {
		t.Errorf("Held intent lost: %v", in.Intent)
	}
	if in.Quit || in.Replay != nil {
		t.Errorf("One-shot signals delivered twice: %+v", in)
	}

	s.Release()
	if in = s.Poll(); in.Intent != game.IntentNone {
		t.Errorf("Expected intent released, got %v", in.Intent)
	}
}

func TestInputStateApply(t *testing.T) {
	no := false
	tests := []struct {
		msg  ClientMessage
		ok   bool
		want game.Input
	}{
		{ClientMessage{Type: "input", Intent: "down"}, true, game.Input{Intent: game.IntentDown}},
		{ClientMessage{Type: "input", Intent: "sideways"}, true, game.Input{Intent: game.IntentNone}},
		{ClientMessage{Type: "replay", Value: &no}, true, game.Input{Replay: &no}},
		{ClientMessage{Type: "replay"}, false, game.Input{}},
		{ClientMessage{Type: "quit"}, true, game.Input{Quit: true}},
		{ClientMessage{Type: "dance"}, false, game.Input{}},
	}

	for _, tt := range tests {
		var s InputState
		if ok := s.Apply(tt.msg); ok != tt.ok {
			t.Errorf("%s: expected ok=%v, got %v", tt.msg.Type, tt.ok, ok)
		}
		got := s.Poll()
		if got.Intent != tt.want.Intent || got.Quit != tt.want.Quit || (got.Replay == nil) != (tt.want.Replay == nil) {
			t.Errorf("%s: expected %+v, got %+v", tt.msg.Type, tt.want, got)
		}
		if got.Replay != nil && *got.Replay != *tt.want.Replay {
			t.Errorf("%s: expected replay %v, got %v", tt.msg.Type, *tt.want.Replay, *got.Replay)
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	f := game.Frame{
		MatchID: "m1",
		Tick:    42,
		Score:   game.Score{Left: 2, Right: 3},
		State:   game.StateGameOver,
		Winner:  game.SideRight,
	}
	msg := FrameMessage{Type: "frame", Frame: f}

	data, err := Encode(FormatJSON, msg)
	if err != nil {
		t.Fatalf("JSON encode failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	frame := decoded["frame"].(map[string]interface{})
	if frame["state"] != "game_over" || frame["winner"] != "right" {
		t.Errorf("Unexpected JSON frame %v", frame)
	}
	if _, ok := frame["left"].(map[string]interface{})["speed"]; ok {
		t.Error("Paddle speed leaked to the wire")
	}

	data, err = Encode(FormatMsgpack, msg)
	if err != nil {
		t.Fatalf("msgpack encode failed: %v", err)
	}
	var back FrameMessage
	if err := Decode(FormatMsgpack, data, &back); err != nil {
		t.Fatalf("msgpack decode failed: %v", err)
	}
	if back.Type != "frame" || back.Frame.Tick != 42 || back.Frame.Score.Right != 3 || back.Frame.MatchID != "m1" {
		t.Errorf("msgpack lost data: %+v", back)
	}
	if back.Frame.State != game.StateGameOver || back.Frame.Winner != game.SideRight {
		t.Errorf("msgpack lost state/winner: %v/%v", back.Frame.State, back.Frame.Winner)
	}

	// Browsers decode without Go types, so enums must arrive as str.
	var generic map[string]interface{}
	if err := msgpack.Unmarshal(data, &generic); err != nil {
		t.Fatal(err)
	}
	mframe, ok := generic["frame"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected frame map, got %T", generic["frame"])
	}
	if mframe["state"] != "game_over" || mframe["winner"] != "right" {
		t.Errorf("Expected string enums in msgpack frame, got state=%#v winner=%#v", mframe["state"], mframe["winner"])
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("msgpack") != FormatMsgpack {
		t.Error("Expected msgpack")
	}
	for _, s := range []string{"", "json", "xml"} {
		if ParseFormat(s) != FormatJSON {
			t.Errorf("Expected JSON for %q", s)
		}
	}
}

func startHub(t *testing.T, role Role) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, role, ParseFormat(r.URL.Query().Get("format")))
	}))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if mt != websocket.TextMessage {
		t.Fatalf("Expected text message, got %d", mt)
	}
	var msg map[string]interface{}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Bad JSON %s: %v", data, err)
	}
	return msg
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestHubControllerDrivesInput(t *testing.T) {
	hub, url := startHub(t, RoleController)
	conn := dial(t, url)

	welcome := readJSON(t, conn)
	if welcome["type"] != "welcome" || welcome["role"] != "controller" {
		t.Fatalf("Unexpected welcome %v", welcome)
	}

	if err := conn.WriteJSON(ClientMessage{Type: "input", Intent: "up"}); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "intent up", func() bool { return hub.Input().Poll().Intent == game.IntentUp })

	conn.Close()
	waitFor(t, "disconnect", func() bool { return hub.ClientCount() == 0 })
	if in := hub.Input().Poll(); in.Intent != game.IntentNone {
		t.Errorf("Intent still held after controller left: %v", in.Intent)
	}
}

func TestHubSpectatorCannotControl(t *testing.T) {
	hub, url := startHub(t, RoleSpectator)
	conn := dial(t, url)
	readJSON(t, conn)

	if err := conn.WriteJSON(ClientMessage{Type: "quit"}); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if in := hub.Input().Poll(); in.Quit {
		t.Error("Spectator was able to quit the game")
	}
}

func TestHubBroadcastsFramesAndCues(t *testing.T) {
	hub, url := startHub(t, RoleSpectator)
	conn := dial(t, url)
	readJSON(t, conn)
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 1 })

	hub.Render(game.Frame{MatchID: "abc", Tick: 7})
	hub.Play(game.CueScore)

	frame := readJSON(t, conn)
	if frame["type"] != "frame" {
		t.Fatalf("Expected frame, got %v", frame)
	}
	if tick := frame["frame"].(map[string]interface{})["tick"]; tick != float64(7) {
		t.Errorf("Expected tick 7, got %v", tick)
	}

	cue := readJSON(t, conn)
	if cue["type"] != "cue" || cue["cue"] != "score" {
		t.Fatalf("Expected score cue, got %v", cue)
	}
	if freq := cue["tone"].(map[string]interface{})["frequency"]; freq != float64(440) {
		t.Errorf("Expected 440 Hz, got %v", freq)
	}
}

func TestHubSendsLastFrameOnConnect(t *testing.T) {
	hub, url := startHub(t, RoleSpectator)
	hub.Render(game.Frame{MatchID: "late", Tick: 99})

	conn := dial(t, url+"?format=msgpack")
	mt, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if mt != websocket.BinaryMessage {
		t.Fatalf("Expected binary message, got %d", mt)
	}
	var welcome WelcomeMessage
	if err := Decode(FormatMsgpack, data, &welcome); err != nil || welcome.Type != "welcome" {
		t.Fatalf("Expected msgpack welcome, got %+v (%v)", welcome, err)
	}

	_, data, err = conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var fm FrameMessage
	if err := Decode(FormatMsgpack, data, &fm); err != nil {
		t.Fatal(err)
	}
	if fm.Frame.MatchID != "late" || fm.Frame.Tick != 99 {
		t.Errorf("Expected last frame, got %+v", fm.Frame)
	}
}

// msgpackOnly fails JSON encoding but encodes as msgpack.
type msgpackOnly struct {
	Type string `json:"type"`
}

func (msgpackOnly) MarshalJSON() ([]byte, error) {
	return nil, errors.New("json disabled")
}

func TestHubBroadcastSkipsOnlyFailedFormat(t *testing.T) {
	hub, url := startHub(t, RoleSpectator)
	for i := 0; i < 3; i++ {
		readJSON(t, dial(t, url))
	}
	mp := dial(t, url+"?format=msgpack")
	if _, _, err := mp.ReadMessage(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "registration", func() bool { return hub.ClientCount() == 4 })

	hub.broadcast(msgpackOnly{Type: "ping"})

	_, data, err := mp.ReadMessage()
	if err != nil {
		t.Fatalf("msgpack client got nothing: %v", err)
	}
	var got msgpackOnly
	if err := Decode(FormatMsgpack, data, &got); err != nil || got.Type != "ping" {
		t.Errorf("Expected ping, got %+v (%v)", got, err)
	}
}
