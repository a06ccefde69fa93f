package live

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	id   string
	fail bool

	mu   sync.Mutex
	sent [][]byte
}

func newFakeConn(id string) *fakeConn { return &fakeConn{id: id} }

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Send(data []byte) error {
	if f.fail {
		return fmt.Errorf("peer %s gone", f.id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	f.sent = append(f.sent, cp)
	return nil
}

func (f *fakeConn) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.sent...)
}

func Test_Registry_Add_And_Remove(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")

	r.Add("101", a)
	r.Add("101", b)
	req.Len(r.Connections("101"), 2)

	r.Remove("101", a)
	conns := r.Connections("101")
	req.Len(conns, 1)
	req.Equal("b", conns[0].ID())

	r.Remove("101", b)
	req.Empty(r.Connections("101"))
	req.Empty(r.Rooms(), "a drained room must disappear from the registry")
}

func Test_Registry_Add_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	a := newFakeConn("a")

	r.Add("101", a)
	r.Add("101", a)
	req.Len(r.Connections("101"), 1)
}

func Test_Registry_Remove_Absent_Is_Noop(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Remove("101", newFakeConn("ghost"))
	req.Empty(r.Rooms())
}

func Test_Registry_Connections_Absent_Room(t *testing.T) {
	require.Empty(t, NewRegistry().Connections("nope"))
}

func Test_Registry_Find_Scans_All_Rooms(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Add("101", newFakeConn("a"))
	r.Add("202", newFakeConn("b"))

	c, ok := r.Find("b")
	req.True(ok)
	req.Equal("b", c.ID())

	_, ok = r.Find("nobody")
	req.False(ok)
}

func Test_Registry_Concurrent_Mutation_And_Snapshot(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := newFakeConn(fmt.Sprintf("c%d", n))
			for j := 0; j < 200; j++ {
				r.Add("101", c)
				for _, cc := range r.Connections("101") {
					_ = cc.ID()
				}
				r.Remove("101", c)
			}
		}(i)
	}
	wg.Wait()
	require.Empty(t, r.Rooms())
}
