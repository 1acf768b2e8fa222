package galleryclient

import "sync"

// Session holds the two pieces of session-scoped application state: the auth
// context (current user + token) and the photo list cache. It is injected
// into a Client rather than living in a package-level singleton, so multiple
// independent sessions can coexist in one process.
type Session struct {
	mu     sync.RWMutex
	token  string
	user   *User
	photos []Photo
}

func NewSession() *Session {
	return &Session{}
}

// SetAuth stores the bearer token and the logged-in user.
func (s *Session) SetAuth(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	u := user
	s.user = &u
}

// Token returns the current bearer token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged-in user, ok=false when anonymous.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetPhotos replaces the photo list cache.
func (s *Session) SetPhotos(photos []Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos = append([]Photo(nil), photos...)
}

// Photos returns a copy of the cached photo list.
func (s *Session) Photos() []Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Photo(nil), s.photos...)
}

// AddPhoto prepends a freshly uploaded photo; the server lists newest first.
func (s *Session) AddPhoto(p Photo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos = append([]Photo{p}, s.photos...)
}

// RemovePhoto drops a photo from the cache by id.
func (s *Session) RemovePhoto(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.photos[:0]
	for _, p := range s.photos {
		if p.ID != id {
			out = append(out, p)
		}
	}
	s.photos = out
}

// Reset clears both the auth context and the photo cache (logout).
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.photos = nil
}
