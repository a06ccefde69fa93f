// Package live is the signaling relay for live seminar sessions. It groups
// WebSocket connections into per-seminar rooms and multiplexes WebRTC
// signaling between them: join broadcasts, offer/answer/ICE unicast, and
// the instructor's stream-start announcement.
package live

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/openlearn/backend/internal/domain"
)

// Service owns the registry and presence store for one server instance and
// drives the connection lifecycle: connect, join, signaling exchange,
// disconnect. Every method is safe for concurrent use; each connection's
// messages arrive from its own reader goroutine.
type Service struct {
	registry *Registry
	presence *Presence
}

func NewService() *Service {
	return &Service{
		registry: NewRegistry(),
		presence: NewPresence(),
	}
}

// Registry exposes the room registry for read-only inspection (admin API).
func (s *Service) Registry() *Registry { return s.registry }

// Connect registers a freshly accepted connection under its seminar room.
// An empty room key means the connect path was malformed; the connection
// stays open but is unroutable, so nothing is registered for it.
func (s *Service) Connect(roomKey string, c Conn) {
	if roomKey == "" {
		log.Warn().Str("module", "live").Str("sid", c.ID()).Msg("connect without room key")
		return
	}
	s.registry.Add(roomKey, c)
}

// Disconnect prunes all state for a closed connection. Idempotent; callable
// from any lifecycle stage.
func (s *Service) Disconnect(roomKey string, c Conn) {
	if roomKey != "" {
		s.registry.Remove(roomKey, c)
	}
	s.presence.Remove(c.ID())
	log.Info().Str("module", "live").Str("sid", c.ID()).Msg("disconnected")
}

// HandleMessage dispatches one inbound signaling message. Malformed payloads
// and unknown kinds are dropped; the connection is never closed for them.
func (s *Service) HandleMessage(roomKey string, c Conn, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "live").Str("sid", c.ID()).Msg("bad json")
		return
	}

	switch env.Type {
	case kindJoin:
		s.handleJoin(roomKey, c, env)
	case kindOffer, kindAnswer, kindICECandidate:
		s.relayToTarget(c, env, data)
	case kindStreamStart:
		s.handleStreamStart(roomKey, c)
	default:
		log.Warn().Str("module", "live").Str("type", env.Type).Msg("unknown signal")
	}
}

func (s *Service) handleJoin(roomKey string, c Conn, env envelope) {
	role := domain.Role(env.Role)
	switch s.presence.RecordJoin(c.ID(), env.Username, role) {
	case JoinDuplicate:
		log.Debug().Str("module", "live").Str("sid", c.ID()).Str("username", env.Username).Msg("duplicate join skipped")
		return
	case JoinRenamed:
		// Silent overwrite; no second join broadcast for the new name.
		log.Info().Str("module", "live").Str("sid", c.ID()).Str("username", env.Username).Msg("presence renamed")
		return
	}

	log.Info().Str("module", "live").Str("room", roomKey).Str("sid", c.ID()).
		Str("username", env.Username).Str("role", env.Role).Msg("user joined")

	s.broadcast(roomKey, c, userJoinedMsg{
		Type:      kindUserJoined,
		Username:  env.Username,
		Role:      role,
		SessionID: c.ID(),
	})
}

// relayToTarget stamps the sender onto the payload and forwards it verbatim
// to the target session. An unknown target is dropped silently: signaling is
// best effort, the peer may have just left.
func (s *Service) relayToTarget(sender Conn, env envelope, data []byte) {
	if env.Target == "" {
		log.Warn().Str("module", "live").Str("sid", sender.ID()).Str("type", env.Type).Msg("relay without target")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Error().Err(err).Str("module", "live").Str("sid", sender.ID()).Msg("bad relay payload")
		return
	}
	payload["from"] = sender.ID()

	out, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("module", "live").Msg("marshal relay payload")
		return
	}

	target, ok := s.registry.Find(env.Target)
	if !ok {
		log.Debug().Str("module", "live").Str("target", env.Target).Str("type", env.Type).Msg("relay target gone")
		return
	}
	if err := target.Send(out); err != nil {
		log.Error().Err(err).Str("module", "live").Str("target", env.Target).Msg("relay send failed")
	}
}

func (s *Service) handleStreamStart(roomKey string, c Conn) {
	id, ok := s.presence.Get(c.ID())
	if !ok || id.Role != domain.RoleInstructor {
		// Not an instructor: no announcement, no error back to the sender.
		log.Warn().Str("module", "live").Str("sid", c.ID()).Msg("stream-start from non-instructor ignored")
		return
	}
	s.broadcast(roomKey, c, streamAvailableMsg{
		Type:                kindStreamAvailable,
		InstructorSessionID: c.ID(),
	})
}

// broadcast fans out to every connection in the room except the sender.
// Each send is isolated: a dead peer never aborts delivery to the rest.
func (s *Service) broadcast(roomKey string, exclude Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "live").Msg("marshal broadcast")
		return
	}
	sent, dropped := 0, 0
	for _, c := range s.registry.Connections(roomKey) {
		if c.ID() == exclude.ID() {
			continue
		}
		if err := c.Send(data); err != nil {
			dropped++
			log.Error().Err(err).Str("module", "live").Str("sid", c.ID()).Msg("broadcast send failed")
			continue
		}
		sent++
	}
	log.Debug().Str("module", "live").Str("room", roomKey).Int("sent_to", sent).Int("dropped", dropped).Msg("broadcast result")
}
