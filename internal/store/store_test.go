package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// failingBackend mensimulasikan storage yang mati total
type failingBackend struct{}

var errBackendDown = errors.New("backend mati")

func (f *failingBackend) Get(key string) ([]byte, error) { return nil, errBackendDown }
func (f *failingBackend) Put(key string, v []byte) error { return errBackendDown }
func (f *failingBackend) Delete(key string) error        { return errBackendDown }
func (f *failingBackend) Close() error                   { return nil }

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(NewMemory())

	in := []demoRecord{{Name: "Alice", Count: 2}, {Name: "Budi", Count: 5}}
	require.True(t, s.Save("demo", in))

	out := Load(s, "demo", []demoRecord(nil))
	assert.Equal(t, in, out)
	assert.False(t, s.Degraded())
}

func TestLoadFallbackWhenKeyMissing(t *testing.T) {
	s := New(NewMemory())

	fallback := demoRecord{Name: "default", Count: 1}
	out := Load(s, "tidak-ada", fallback)
	assert.Equal(t, fallback, out)
}

func TestLoadFallbackWhenDataCorrupt(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Put("rusak", []byte("{bukan json")))

	s := New(backend)
	out := Load(s, "rusak", demoRecord{Name: "default"})
	assert.Equal(t, "default", out.Name)
}

func TestLoadFallbackWhenBackendDown(t *testing.T) {
	s := New(&failingBackend{})

	out := Load(s, "apapun", 42)
	assert.Equal(t, 42, out)
}

func TestSaveReturnsFalseAndDegradesWhenBackendDown(t *testing.T) {
	s := New(&failingBackend{})

	assert.False(t, s.Save("k", "v"))
	assert.True(t, s.Degraded())
	assert.False(t, s.Remove("k"))
}

func TestDegradedResetsAfterSuccessfulSave(t *testing.T) {
	s := New(&failingBackend{})
	s.Save("k", "v")
	require.True(t, s.Degraded())

	// Ganti backend sehat, tulisan sukses berikutnya harus reset flag
	s.backend = NewMemory()
	require.True(t, s.Save("k", "v"))
	assert.False(t, s.Degraded())
}

func TestDegradedResetsAfterSuccessfulRemove(t *testing.T) {
	s := New(&failingBackend{})
	s.Remove("k")
	require.True(t, s.Degraded())

	// Remove yang sukses harus reset flag, sama seperti Save
	s.backend = NewMemory()
	require.True(t, s.Remove("k"))
	assert.False(t, s.Degraded())
}

func TestRemoveDeletesKey(t *testing.T) {
	s := New(NewMemory())
	require.True(t, s.Save("k", demoRecord{Name: "x"}))
	require.True(t, s.Remove("k"))

	out := Load(s, "k", demoRecord{Name: "fallback"})
	assert.Equal(t, "fallback", out.Name)
}

func TestNilStoreNeverPanics(t *testing.T) {
	var s *Store
	assert.Equal(t, "fallback", Load(s, "k", "fallback"))
	assert.False(t, s.Save("k", "v"))
	assert.False(t, s.Remove("k"))
	assert.False(t, s.Degraded())
}
