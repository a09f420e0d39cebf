// Package hub relays chat payloads between connected websocket clients and
// persists chat messages as a side effect. Every well-formed payload is
// rebroadcast verbatim to all clients except the sender; the hub keeps no
// connection-to-run association, clients filter by dumpRunId themselves
// (this mirrors the web client's expectations; see DESIGN.md for the
// topic-subscription alternative that was considered).
package hub

import (
	"encoding/json"
	"log"

	"junkrun/pkg/store"

	"github.com/gorilla/websocket"
)

// the only payload type with server-side handling beyond relaying
const typeChatMessage = "chat_message"

type inbound struct {
	sender  *Client
	payload []byte
}

// Hub owns the set of live connections. All registration, teardown and relay
// events are handled by the single Run goroutine, so the client set needs no
// lock.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	inbound    chan inbound
	count      chan chan int

	quit chan struct{}
	done chan struct{}

	messages store.ChatStore
}

func New(messages store.ChatStore) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound),
		count:      make(chan chan int),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		messages:   messages,
	}
}

// Attach registers a freshly upgraded connection and starts its pumps.
// No auth happens here; durable writes have their own authenticated HTTP path.
func (h *Hub) Attach(conn *websocket.Conn) {
	c := newClient(h, conn)
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

// Run drains hub events until Shutdown. It must be started exactly once,
// in its own goroutine.
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case <-h.quit:
			h.closeAll()
			return

		case c := <-h.register:
			h.clients[c] = true
			log.Printf("[ws] client %s connected (%d online)", c.addr, len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				log.Printf("[ws] client %s disconnected (%d online)", c.addr, len(h.clients))
			}

		case in := <-h.inbound:
			h.relay(in)

		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

// relay parses one payload, fans it out to everyone but the sender, and
// kicks off the durable write for chat messages. Malformed payloads are
// dropped without telling the sender; a failed write never blocks delivery.
func (h *Hub) relay(in inbound) {
	var data map[string]any
	if err := json.Unmarshal(in.payload, &data); err != nil {
		log.Printf("[ws] dropping malformed payload from %s: %v", in.sender.addr, err)
		return
	}

	for c := range h.clients {
		if c == in.sender {
			continue
		}
		select {
		case c.send <- in.payload:
		default:
			// slow consumer; drop it rather than stall the loop
			delete(h.clients, c)
			close(c.send)
			log.Printf("[ws] client %s removed: send buffer full", c.addr)
		}
	}

	if t, _ := data["type"].(string); t != typeChatMessage {
		return
	}
	runID, _ := data["dumpRunId"].(float64)
	userID, _ := data["userId"].(float64)
	body, _ := data["message"].(string)
	if runID <= 0 || userID <= 0 || body == "" {
		return
	}
	go func() {
		if _, err := h.messages.Append(uint(runID), uint(userID), body); err != nil {
			log.Printf("[ws] failed to store chat message for run %d: %v", int(runID), err)
		}
	}()
}

// Online reports the number of live connections.
func (h *Hub) Online() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

func (h *Hub) closeAll() {
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		_ = c.conn.Close()
	}
	log.Printf("[ws] hub stopped")
}

// Shutdown stops the event loop and closes every live connection.
func (h *Hub) Shutdown() {
	close(h.quit)
	<-h.done
}
