package live

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openlearn/backend/internal/domain"
)

func Test_Presence_First_Join(t *testing.T) {
	req := require.New(t)
	p := NewPresence()

	req.Equal(JoinedNew, p.RecordJoin("s1", "alice", domain.RoleInstructor))

	id, ok := p.Get("s1")
	req.True(ok)
	req.Equal("alice", id.Username)
	req.Equal(domain.RoleInstructor, id.Role)
}

func Test_Presence_Duplicate_Join_Is_Noop(t *testing.T) {
	req := require.New(t)
	p := NewPresence()

	p.RecordJoin("s1", "alice", domain.RoleStudent)
	req.Equal(JoinDuplicate, p.RecordJoin("s1", "alice", domain.RoleStudent))

	id, _ := p.Get("s1")
	req.Equal("alice", id.Username)
}

func Test_Presence_Rejoin_With_Different_Name_Overwrites(t *testing.T) {
	req := require.New(t)
	p := NewPresence()

	p.RecordJoin("s1", "alice", domain.RoleStudent)
	req.Equal(JoinRenamed, p.RecordJoin("s1", "alicia", domain.RoleStudent))

	id, ok := p.Get("s1")
	req.True(ok)
	req.Equal("alicia", id.Username)
}

func Test_Presence_Remove(t *testing.T) {
	req := require.New(t)
	p := NewPresence()

	p.RecordJoin("s1", "alice", domain.RoleStudent)
	p.Remove("s1")
	_, ok := p.Get("s1")
	req.False(ok)

	p.Remove("s1") // absent, still fine
}
