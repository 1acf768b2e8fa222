package galleryclient

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePhotos(n int) []Photo {
	out := make([]Photo, n)
	for i := range out {
		out[i] = Photo{ID: fmt.Sprintf("p-%d", i+1), Title: fmt.Sprintf("Photo %d", i+1)}
	}
	return out
}

func TestSessionAuth(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Authenticated())
	_, ok := s.User()
	assert.False(t, ok)

	s.SetAuth("tok", User{ID: "u-1", Email: "alice@example.com"})
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok", s.Token())

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "u-1", u.ID)
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.SetAuth("tok", User{ID: "u-1"})
	s.SetPhotos(makePhotos(3))

	s.Reset()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Photos())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestSessionAddPhotoPrepends(t *testing.T) {
	s := NewSession()
	s.SetPhotos(makePhotos(2))

	s.AddPhoto(Photo{ID: "new"})

	photos := s.Photos()
	require.Len(t, photos, 3)
	assert.Equal(t, "new", photos[0].ID)
}

func TestSessionRemovePhoto(t *testing.T) {
	s := NewSession()
	s.SetPhotos(makePhotos(3))

	s.RemovePhoto("p-2")

	photos := s.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, "p-1", photos[0].ID)
	assert.Equal(t, "p-3", photos[1].ID)

	// removing an unknown id is a no-op
	s.RemovePhoto("nope")
	assert.Len(t, s.Photos(), 2)
}

func TestSessionPhotosReturnsCopy(t *testing.T) {
	s := NewSession()
	s.SetPhotos(makePhotos(2))

	photos := s.Photos()
	photos[0].ID = "mutated"

	assert.Equal(t, "p-1", s.Photos()[0].ID)
}
