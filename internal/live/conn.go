package live

// Conn is a live bidirectional transport session for one participant.
// Owned by the adapter; the adapter must Close() it.
type Conn interface {
	// ID is opaque and unique for the lifetime of the connection.
	ID() string
	// Send delivers one serialized message. Best effort: a failed send is
	// the sender's problem alone and never affects other recipients.
	Send(data []byte) error
}
