package live

import "github.com/openlearn/backend/internal/domain"

// Inbound message kinds. Anything else is ignored.
const (
	kindJoin         = "join"
	kindOffer        = "offer"
	kindAnswer       = "answer"
	kindICECandidate = "ice-candidate"
	kindStreamStart  = "instructor-stream-start"
)

// Outbound message kinds.
const (
	kindUserJoined      = "user-joined"
	kindStreamAvailable = "instructor-stream-available"
)

// envelope carries the fields dispatch needs. The offer/answer/candidate
// payload bodies stay opaque and are forwarded verbatim plus a "from" stamp.
type envelope struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Target   string `json:"target"`
}

type userJoinedMsg struct {
	Type      string      `json:"type"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	SessionID string      `json:"sessionId"`
}

type streamAvailableMsg struct {
	Type                string `json:"type"`
	InstructorSessionID string `json:"instructorSessionId"`
}
