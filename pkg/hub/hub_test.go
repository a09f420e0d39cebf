package hub

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"junkrun/models"
	"junkrun/pkg/store"

	"github.com/gorilla/websocket"
)

// memStore records appends in memory; optionally fails every Append.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	msgs   []models.ChatMessage
	fail   bool
}

func (m *memStore) Append(dumpRunID, userID uint, body string) (models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return models.ChatMessage{}, errors.New("store unavailable")
	}
	if strings.TrimSpace(body) == "" {
		return models.ChatMessage{}, store.ErrEmptyMessage
	}
	m.nextID++
	msg := models.ChatMessage{
		ID:        m.nextID,
		DumpRunID: dumpRunID,
		UserID:    userID,
		Message:   body,
		CreatedAt: time.Now(),
	}
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

func (m *memStore) History(dumpRunID uint) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.ChatMessage{}
	for _, msg := range m.msgs {
		if msg.DumpRunID == dumpRunID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func newTestServer(t *testing.T, st store.ChatStore) (*httptest.Server, *Hub) {
	t.Helper()
	h := New(st)
	go h.Run()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Attach(conn)
	}))
	t.Cleanup(func() {
		h.Shutdown()
		srv.Close()
	})
	return srv, h
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func readOne(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return payload
}

func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(250 * time.Millisecond))
	if _, payload, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected no delivery, got %s", payload)
	}
}

func TestBroadcastFanOut(t *testing.T) {
	st := &memStore{}
	srv, h := newTestServer(t, st)

	a := dial(t, srv)
	b := dial(t, srv)
	c := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 3 }, "3 clients online")

	payload := []byte(`{"type":"chat_message","dumpRunId":7,"userId":3,"message":"hello"}`)
	if err := a.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, conn := range []*websocket.Conn{b, c} {
		got := readOne(t, conn)
		if !bytes.Equal(got, payload) {
			t.Fatalf("expected verbatim payload %s, got %s", payload, got)
		}
	}
	// one copy each, none echoed to the sender
	expectSilence(t, a)
	expectSilence(t, b)
	expectSilence(t, c)

	waitFor(t, func() bool { return st.len() == 1 }, "message persisted")
	hist, _ := st.History(7)
	if len(hist) != 1 || hist[0].Message != "hello" || hist[0].UserID != 3 {
		t.Fatalf("unexpected history: %+v", hist)
	}
	if hist[0].ID == 0 || hist[0].CreatedAt.IsZero() {
		t.Fatalf("persisted message missing id or timestamp: %+v", hist[0])
	}
}

func TestExtraFieldsPassThroughUnpersisted(t *testing.T) {
	st := &memStore{}
	srv, h := newTestServer(t, st)

	a := dial(t, srv)
	b := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 2 }, "2 clients online")

	payload := []byte(`{"type":"typing","dumpRunId":7,"userId":3,"extra":{"nested":true}}`)
	if err := a.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := readOne(t, b)
	if !bytes.Equal(got, payload) {
		t.Fatalf("expected verbatim passthrough, got %s", got)
	}

	time.Sleep(100 * time.Millisecond)
	if st.len() != 0 {
		t.Fatalf("non-chat payload must not be persisted")
	}
}

func TestIncompleteChatMessageNotPersisted(t *testing.T) {
	st := &memStore{}
	srv, h := newTestServer(t, st)

	a := dial(t, srv)
	b := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 2 }, "2 clients online")

	// missing userId: relayed but not stored
	payload := []byte(`{"type":"chat_message","dumpRunId":7,"message":"hi"}`)
	if err := a.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readOne(t, b); !bytes.Equal(got, payload) {
		t.Fatalf("expected relay of incomplete chat payload, got %s", got)
	}

	time.Sleep(100 * time.Millisecond)
	if st.len() != 0 {
		t.Fatalf("incomplete chat payload must not be persisted")
	}
}

func TestMalformedPayloadDroppedConnectionsSurvive(t *testing.T) {
	st := &memStore{}
	srv, h := newTestServer(t, st)

	a := dial(t, srv)
	b := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 2 }, "2 clients online")

	if err := a.WriteMessage(websocket.TextMessage, []byte(`{not json`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	// the sender's connection still works after the bad frame; frames from
	// one connection are relayed in arrival order, so the sentinel being
	// b's first delivery means the malformed frame was never broadcast
	good := []byte(`{"type":"ping"}`)
	if err := a.WriteMessage(websocket.TextMessage, good); err != nil {
		t.Fatalf("write after malformed frame: %v", err)
	}
	if got := readOne(t, b); !bytes.Equal(got, good) {
		t.Fatalf("expected %s as first delivery after malformed frame, got %s", good, got)
	}
	if h.Online() != 2 {
		t.Fatalf("malformed payload must not close any connection, %d online", h.Online())
	}
}

func TestStoreFailureDoesNotAffectDelivery(t *testing.T) {
	st := &memStore{fail: true}
	srv, h := newTestServer(t, st)

	a := dial(t, srv)
	b := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 2 }, "2 clients online")

	payload := []byte(`{"type":"chat_message","dumpRunId":1,"userId":2,"message":"still delivered"}`)
	if err := a.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readOne(t, b); !bytes.Equal(got, payload) {
		t.Fatalf("broadcast must not depend on the store, got %s", got)
	}
	if h.Online() != 2 {
		t.Fatalf("store failure must not drop connections")
	}
}

func TestShutdownClosesClients(t *testing.T) {
	st := &memStore{}
	h := New(st)
	go h.Run()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Attach(conn)
	}))
	defer srv.Close()

	conn := dial(t, srv)
	waitFor(t, func() bool { return h.Online() == 1 }, "client online")

	h.Shutdown()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected read to fail after shutdown")
	}
	if h.Online() != 0 {
		t.Fatalf("expected no clients after shutdown")
	}
}
