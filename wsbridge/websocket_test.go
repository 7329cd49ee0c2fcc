package wsbridge

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupTestServer(t *testing.T, cfg Config) (*httptest.Server, string, *Handler) {
	t.Helper()
	cfg.Logger = quietLogger()
	h := NewHandler(cfg)
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server, "ws" + strings.TrimPrefix(server.URL, "http"), h
}

func connectWebSocket(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err, "should connect to WebSocket")
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendTouch(t *testing.T, conn *websocket.Conn, typ string, contacts ...gesture.Contact) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(TouchMessage{Type: typ, Contacts: contacts}))
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg), "should read server message")
	return msg
}

func TestWebSocket_SwipeAndTap(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{})
	conn := connectWebSocket(t, wsURL)

	sendTouch(t, conn, TypeStart, gesture.Contact{ID: 0, X: 10, Y: 10})
	sendTouch(t, conn, TypeMove, gesture.Contact{ID: 0, X: 100, Y: 12})
	sendTouch(t, conn, TypeEnd)

	swipe := readMessage(t, conn)
	assert.Equal(t, TypeGesture, swipe.Type)
	assert.Equal(t, gesture.EventSwipe.String(), swipe.Gesture)
	assert.Equal(t, "right", swipe.Direction)
	require.NotNil(t, swipe.Center)
	assert.Equal(t, 100.0, swipe.Center.X)

	tap := readMessage(t, conn)
	assert.Equal(t, gesture.EventTap.String(), tap.Gesture)
}

func TestWebSocket_Pinch(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{})
	conn := connectWebSocket(t, wsURL)

	sendTouch(t, conn, TypeStart, gesture.Contact{ID: 1, X: 0, Y: 0}, gesture.Contact{ID: 2, X: 100, Y: 0})
	sendTouch(t, conn, TypeMove, gesture.Contact{ID: 1, X: 0, Y: 0}, gesture.Contact{ID: 2, X: 200, Y: 0})

	msg := readMessage(t, conn)
	assert.Equal(t, gesture.EventPinch.String(), msg.Gesture)
	assert.Equal(t, 2.0, msg.Scale)
	assert.Equal(t, "out", msg.Pinch)
	assert.Equal(t, 2, msg.Contacts)
}

func TestWebSocket_LongPressFromPolling(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{
		Options:      gesture.Options{LongPressDelay: 20 * time.Millisecond},
		PollInterval: 5 * time.Millisecond,
	})
	conn := connectWebSocket(t, wsURL)

	sendTouch(t, conn, TypeStart, gesture.Contact{ID: 1, X: 50, Y: 50})
	msg := readMessage(t, conn)
	assert.Equal(t, gesture.EventLongPress.String(), msg.Gesture)
}

func TestWebSocket_Errors(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{})
	conn := connectWebSocket(t, wsURL)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Contains(t, msg.Error, "parse touch message")

	sendTouch(t, conn, "cancel")
	msg = readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Contains(t, msg.Error, `unknown message type "cancel"`)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))
	msg = readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Equal(t, errBinaryMessage.Error(), msg.Error)
}

func TestWebSocket_ConnectionsAreIndependent(t *testing.T) {
	_, wsURL, h := setupTestServer(t, Config{})
	a := connectWebSocket(t, wsURL)
	b := connectWebSocket(t, wsURL)

	sendTouch(t, a, TypeStart, gesture.Contact{ID: 1, X: 0, Y: 0})
	sendTouch(t, b, TypeStart, gesture.Contact{ID: 1, X: 0, Y: 0})
	sendTouch(t, b, TypeMove, gesture.Contact{ID: 1, X: 0, Y: -80})

	msg := readMessage(t, b)
	assert.Equal(t, "up", msg.Direction)

	require.Eventually(t, func() bool { return h.Active() == 2 }, time.Second, 5*time.Millisecond)
}

func TestWebSocket_RejectsCrossOrigin(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{})
	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWebSocket_CORSAllowsAnyOrigin(t *testing.T) {
	_, wsURL, _ := setupTestServer(t, Config{EnableCORS: true})
	header := http.Header{"Origin": []string{"http://other.example"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	conn.Close()
}

func TestSurface_Dispatch(t *testing.T) {
	s := NewSurface()
	var got []any
	rec := gesture.New(gesture.Options{Scheduler: gesture.NewManualScheduler(time.Unix(0, 0))}, gesture.Handlers{
		OnSwipe: func(dir gesture.Direction, raw any) { got = append(got, raw) },
	})
	gesture.NewBinding(rec, true).Attach(s)

	require.NoError(t, s.Dispatch(&TouchMessage{Type: TypeStart, Contacts: []gesture.Contact{{ID: 1}}}))
	move := &TouchMessage{Type: TypeMove, Contacts: []gesture.Contact{{ID: 1, X: 70}}}
	require.NoError(t, s.Dispatch(move))
	require.Len(t, got, 1)
	assert.Same(t, move, got[0])

	assert.ErrorIs(t, s.Dispatch(&TouchMessage{Type: "hover"}), errUnknownType)
}

func TestSession_ReadLoopReleasedWhenRunExits(t *testing.T) {
	done := make(chan struct{})
	exited := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := (&websocket.Upgrader{}).Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		s := &session{conn: conn, log: quietLogger()}
		// Nothing receives from frames, as after run has returned.
		s.readLoop(make(chan inbound), done)
		close(exited)
	}))
	t.Cleanup(server.Close)

	conn := connectWebSocket(t, "ws"+strings.TrimPrefix(server.URL, "http"))
	sendTouch(t, conn, TypeStart, gesture.Contact{ID: 1, X: 1, Y: 1})

	select {
	case <-exited:
		t.Fatal("read loop returned before done was closed")
	case <-time.After(50 * time.Millisecond):
	}

	close(done)
	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("read loop still blocked on frames after done was closed")
	}
}

func TestWebSocket_FloodingClientReleasesReader(t *testing.T) {
	_, wsURL, h := setupTestServer(t, Config{})
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.readers.Load() == 1 }, time.Second, time.Millisecond)

	// Flood malformed frames without ever reading the error replies.
	payload := []byte(strings.Repeat("x", 4096))
	for i := 0; i < 3000; i++ {
		_ = conn.SetWriteDeadline(time.Now().Add(100 * time.Millisecond))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break
		}
	}
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return h.Active() == 0 && h.readers.Load() == 0
	}, 5*time.Second, 10*time.Millisecond, "handler and reader goroutine should both exit")
}
