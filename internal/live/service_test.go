package live

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func joinMsg(username, role string) []byte {
	b, _ := json.Marshal(map[string]string{"type": "join", "username": username, "role": role})
	return b
}

func Test_Join_Broadcasts_To_Room_Excluding_Sender(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")

	svc.Connect("101", alice)
	svc.HandleMessage("101", alice, joinMsg("alice", "INSTRUCTOR"))
	// Nobody else in the room yet: alice's join reaches no one, least of all herself.
	req.Empty(alice.messages())

	svc.Connect("101", bob)
	svc.HandleMessage("101", bob, joinMsg("bob", "STUDENT"))

	msgs := alice.messages()
	req.Len(msgs, 1)
	got := decode(t, msgs[0])
	req.Equal("user-joined", got["type"])
	req.Equal("bob", got["username"])
	req.Equal("STUDENT", got["role"])
	req.Equal("sid-bob", got["sessionId"])

	req.Empty(bob.messages(), "join broadcast must exclude the sender")
}

func Test_Duplicate_Join_Broadcasts_Once(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)

	svc.HandleMessage("101", bob, joinMsg("bob", "STUDENT"))
	svc.HandleMessage("101", bob, joinMsg("bob", "STUDENT"))

	req.Len(alice.messages(), 1, "client retry must not produce a second user-joined")
}

func Test_Rejoin_With_New_Name_Is_Silent(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)

	svc.HandleMessage("101", bob, joinMsg("bob", "STUDENT"))
	svc.HandleMessage("101", bob, joinMsg("robert", "STUDENT"))

	req.Len(alice.messages(), 1)
	id, ok := svc.presence.Get("sid-bob")
	req.True(ok)
	req.Equal("robert", id.Username)
}

func Test_Offer_Unicast_Stamps_From(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	carol := newFakeConn("sid-carol")
	svc.Connect("101", alice)
	svc.Connect("101", bob)
	svc.Connect("101", carol)

	offer, _ := json.Marshal(map[string]string{"type": "offer", "target": "sid-bob", "sdp": "X"})
	svc.HandleMessage("101", alice, offer)

	msgs := bob.messages()
	req.Len(msgs, 1)
	got := decode(t, msgs[0])
	req.Equal("offer", got["type"])
	req.Equal("sid-bob", got["target"])
	req.Equal("X", got["sdp"], "sdp payload must pass through verbatim")
	req.Equal("sid-alice", got["from"])

	req.Empty(carol.messages(), "unicast must reach only the target")
	req.Empty(alice.messages())
}

func Test_Relay_To_Unknown_Target_Is_Dropped(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	svc.Connect("101", alice)

	for _, kind := range []string{"offer", "answer", "ice-candidate"} {
		msg, _ := json.Marshal(map[string]string{"type": kind, "target": "sid-gone", "sdp": "X"})
		svc.HandleMessage("101", alice, msg)
	}
	req.Empty(alice.messages())
}

func Test_Answer_And_Candidate_Relay(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)

	answer, _ := json.Marshal(map[string]string{"type": "answer", "target": "sid-alice", "sdp": "Y"})
	svc.HandleMessage("101", bob, answer)

	cand, _ := json.Marshal(map[string]any{
		"type": "ice-candidate", "target": "sid-alice",
		"candidate": "candidate:1 1 udp 2130706431 192.0.2.1 54321 typ host",
	})
	svc.HandleMessage("101", bob, cand)

	msgs := alice.messages()
	req.Len(msgs, 2)
	req.Equal("sid-bob", decode(t, msgs[0])["from"])
	req.Equal("sid-bob", decode(t, msgs[1])["from"])
}

func Test_Stream_Start_Requires_Instructor(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)

	start, _ := json.Marshal(map[string]string{"type": "instructor-stream-start"})

	// No presence at all: ignored.
	svc.HandleMessage("101", bob, start)
	req.Empty(alice.messages())

	// Student presence: still ignored.
	svc.HandleMessage("101", bob, joinMsg("bob", "STUDENT"))
	alice.mu.Lock()
	alice.sent = nil
	alice.mu.Unlock()
	svc.HandleMessage("101", bob, start)
	req.Empty(alice.messages())
}

func Test_Stream_Start_By_Instructor_Broadcasts(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)
	svc.HandleMessage("101", alice, joinMsg("alice", "INSTRUCTOR"))

	bob.mu.Lock()
	bob.sent = nil
	bob.mu.Unlock()

	start, _ := json.Marshal(map[string]string{"type": "instructor-stream-start"})
	svc.HandleMessage("101", alice, start)

	msgs := bob.messages()
	req.Len(msgs, 1)
	got := decode(t, msgs[0])
	req.Equal("instructor-stream-available", got["type"])
	req.Equal("sid-alice", got["instructorSessionId"])

	req.Empty(alice.messages(), "announcement must exclude the instructor")
}

func Test_Broadcast_Isolates_Failing_Peer(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	dead := newFakeConn("sid-dead")
	dead.fail = true
	carol := newFakeConn("sid-carol")
	svc.Connect("101", alice)
	svc.Connect("101", dead)
	svc.Connect("101", carol)

	svc.HandleMessage("101", alice, joinMsg("alice", "STUDENT"))

	req.Len(carol.messages(), 1, "a dead peer must not abort delivery to the rest")
}

func Test_Malformed_And_Unknown_Messages_Are_Dropped(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)

	svc.HandleMessage("101", alice, []byte("{not json"))
	unknown, _ := json.Marshal(map[string]string{"type": "mystery"})
	svc.HandleMessage("101", alice, unknown)

	req.Empty(bob.messages())
	// Connection state untouched: alice can still join normally.
	svc.HandleMessage("101", alice, joinMsg("alice", "STUDENT"))
	req.Len(bob.messages(), 1)
}

func Test_Disconnect_Prunes_Registry_And_Presence(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	alice := newFakeConn("sid-alice")
	bob := newFakeConn("sid-bob")
	svc.Connect("101", alice)
	svc.Connect("101", bob)
	svc.HandleMessage("101", alice, joinMsg("alice", "INSTRUCTOR"))

	svc.Disconnect("101", alice)
	_, ok := svc.presence.Get("sid-alice")
	req.False(ok)
	req.Len(svc.registry.Connections("101"), 1)

	svc.Disconnect("101", bob)
	req.Empty(svc.registry.Rooms(), "last leaver takes the room with it")
}

func Test_Empty_Room_Key_Is_Unroutable(t *testing.T) {
	req := require.New(t)
	svc := NewService()
	lost := newFakeConn("sid-lost")

	svc.Connect("", lost)
	req.Empty(svc.registry.Rooms())

	// Join on an unroutable connection records presence but reaches nobody.
	svc.HandleMessage("", lost, joinMsg("lost", "STUDENT"))
	req.Empty(lost.messages())

	svc.Disconnect("", lost)
	_, ok := svc.presence.Get("sid-lost")
	req.False(ok)
}
