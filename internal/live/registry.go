package live

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Registry maps a seminar room key to the set of open connections in it.
// Rooms appear on the first Add and vanish when the last connection leaves;
// an empty room is never left behind.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Conn // room key -> session ID -> conn
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]map[string]Conn)}
}

// Add inserts the connection into the room's set, creating the room if
// absent. Adding the same connection twice is a no-op.
func (r *Registry) Add(roomKey string, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.rooms[roomKey]
	if !ok {
		set = make(map[string]Conn)
		r.rooms[roomKey] = set
	}
	set[c.ID()] = c
	log.Info().Str("module", "live.registry").Str("room", roomKey).Str("sid", c.ID()).Msg("connection added")
}

// Remove deletes the connection from the room's set and drops the room
// entry entirely once the set drains. No-op if room or connection is absent.
func (r *Registry) Remove(roomKey string, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.rooms[roomKey]
	if !ok {
		return
	}
	delete(set, c.ID())
	if len(set) == 0 {
		delete(r.rooms, roomKey)
	}
	log.Info().Str("module", "live.registry").Str("room", roomKey).Str("sid", c.ID()).Msg("connection removed")
}

// Connections returns a snapshot of the room's current connections.
// Safe to iterate while other goroutines add or remove.
func (r *Registry) Connections(roomKey string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.rooms[roomKey]
	out := make([]Conn, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	return out
}

// Find scans all rooms for a session ID. Linear, but room and connection
// counts are classroom-sized.
func (r *Registry) Find(sessionID string) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, set := range r.rooms {
		if c, ok := set[sessionID]; ok {
			return c, true
		}
	}
	return nil, false
}

type RoomInfo struct {
	Key         string `json:"key"`
	Connections int    `json:"connections"`
}

// Rooms lists active rooms with their connection counts.
func (r *Registry) Rooms() []RoomInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RoomInfo, 0, len(r.rooms))
	for key, set := range r.rooms {
		out = append(out, RoomInfo{Key: key, Connections: len(set)})
	}
	return out
}
