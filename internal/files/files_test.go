package files

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Save_Open_Delete(t *testing.T) {
	req := require.New(t)
	store, err := NewStore(t.TempDir())
	req.NoError(err)

	name, path, size, err := store.Save(strings.NewReader("hello"), "slides.pdf")
	req.NoError(err)
	req.EqualValues(5, size)
	req.True(strings.HasSuffix(name, ".pdf"))
	req.NotContains(name, "slides", "on-disk name must be generated, not caller-chosen")

	rc, err := store.Open(path)
	req.NoError(err)
	b, err := io.ReadAll(rc)
	req.NoError(err)
	req.NoError(rc.Close())
	req.Equal("hello", string(b))

	req.NoError(store.Delete(path))
	_, err = store.Open(path)
	req.ErrorIs(err, ErrNotFound)

	req.NoError(store.Delete(path), "double delete is fine")
}
