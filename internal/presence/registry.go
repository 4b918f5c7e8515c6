package presence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client is one live websocket connection. A user with several tabs open has
// several clients, all keyed under the same user id.
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

// Registry tracks which users are connected and which conversation rooms each
// connection has joined. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*Client]struct{}
	rooms   map[uuid.UUID]map[*Client]struct{}
	joined  map[*Client]map[uuid.UUID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		clients: map[uuid.UUID]map[*Client]struct{}{},
		rooms:   map[uuid.UUID]map[*Client]struct{}{},
		joined:  map[*Client]map[uuid.UUID]struct{}{},
	}
}

func (r *Registry) Register(userID uuid.UUID, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan Event, 64),
		ctx:    ctx,
		cancel: cancel,
	}

	r.mu.Lock()
	if r.clients[userID] == nil {
		r.clients[userID] = map[*Client]struct{}{}
	}
	r.clients[userID][c] = struct{}{}
	r.joined[c] = map[uuid.UUID]struct{}{}
	r.mu.Unlock()

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

// Unregister detaches the client from every map before stopping its loops,
// so an in-flight broadcast can never reach a dead client.
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	for roomID := range r.joined[c] {
		r.dropFromRoom(c, roomID)
	}
	delete(r.joined, c)

	if set, ok := r.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(r.clients, c.UserID)
		}
	}
	r.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "bye")
}

func (r *Registry) JoinRoom(c *Client, roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.joined[c]; !ok {
		// Already unregistered; a late join must not resurrect the client.
		return
	}
	if r.rooms[roomID] == nil {
		r.rooms[roomID] = map[*Client]struct{}{}
	}
	r.rooms[roomID][c] = struct{}{}
	r.joined[c][roomID] = struct{}{}
}

func (r *Registry) LeaveRoom(c *Client, roomID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dropFromRoom(c, roomID)
	if set, ok := r.joined[c]; ok {
		delete(set, roomID)
	}
}

// dropFromRoom requires r.mu held.
func (r *Registry) dropFromRoom(c *Client, roomID uuid.UUID) {
	if set, ok := r.rooms[roomID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(r.rooms, roomID)
		}
	}
}

// BroadcastToUsers delivers ev to every connection of the given users. Slow
// consumers with a full send buffer are skipped rather than blocking the
// caller.
func (r *Registry) BroadcastToUsers(userIDs []uuid.UUID, ev Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, uid := range userIDs {
		for c := range r.clients[uid] {
			select {
			case c.Send <- ev:
			default:
			}
		}
	}
}

// BroadcastToRoom delivers ev to every connection currently joined to the
// room, except the sender's own connection when exclude is non-nil.
func (r *Registry) BroadcastToRoom(roomID uuid.UUID, ev Event, exclude *Client) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for c := range r.rooms[roomID] {
		if c == exclude {
			continue
		}
		select {
		case c.Send <- ev:
		default:
		}
	}
}

// BroadcastToUsersOutsideRoom delivers ev to every connection of the given
// users that is not currently joined to the room. Paired with BroadcastToRoom
// it lets a conversation event reach viewers and non-viewers with different
// payloads, each connection hearing it once.
func (r *Registry) BroadcastToUsersOutsideRoom(roomID uuid.UUID, userIDs []uuid.UUID, ev Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, uid := range userIDs {
		for c := range r.clients[uid] {
			if _, viewing := r.joined[c][roomID]; viewing {
				continue
			}
			select {
			case c.Send <- ev:
			default:
			}
		}
	}
}

func (r *Registry) Connected(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients[userID]) > 0
}

// writeLoop leaves c.Send open; the channel is unreachable once the client
// is out of the registry maps and gets collected with the client.
func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.Send:
			writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = wsjson.Write(writeCtx, c.Conn, ev)
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = c.Conn.Ping(pingCtx)
			cancel()
		}
	}
}
