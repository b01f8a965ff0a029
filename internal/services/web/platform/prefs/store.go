// Package prefs keeps visitor preferences in browser cookies: theme, language,
// recent searches, favorites and recently used tools.
package prefs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Storage keys.
const (
	KeyTheme       = "theme-storage"
	KeyLanguage    = "i18nextLng"
	KeyRecentTools = "recent-tools"
	KeyFavorites   = "favorites"
	KeySearches    = "search-storage"
)

// MaxValueBytes bounds one stored value so the cookie stays under browser
// limits.
const MaxValueBytes = 3800

const cookieMaxAge = 365 * 24 * time.Hour

// ErrValueTooLarge is returned when a value exceeds MaxValueBytes.
var ErrValueTooLarge = errors.New("preference value too large")

// Store is a string key-value store owned by the visitor.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// CookieStore reads preferences from the request cookies and writes updates
// as Set-Cookie headers. Values written during the request are visible to
// later reads of the same store.
type CookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	mu      sync.Mutex
	pending map[string]string
}

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{w: w, r: r, secure: secure, pending: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *CookieStore) Get(key string) (string, bool) {
	s.mu.Lock()
	value, ok := s.pending[key]
	s.mu.Unlock()
	if ok {
		return value, value != ""
	}
	if s.r == nil {
		return "", false
	}
	cookie, err := s.r.Cookie(key)
	if err != nil || cookie == nil {
		return "", false
	}
	value = strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Set stores value under key. An empty value clears the entry.
func (s *CookieStore) Set(key string, value string) error {
	if s.w == nil {
		return errors.New("response writer is required")
	}
	if len(value) > MaxValueBytes {
		return fmt.Errorf("%w: %s is %d bytes", ErrValueTooLarge, key, len(value))
	}
	cookie := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	http.SetCookie(s.w, cookie)
	s.mu.Lock()
	s.pending[key] = value
	s.mu.Unlock()
	return nil
}

// MemoryStore is an in-process Store. A non-nil Err makes every Set fail.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	Err    error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok && value != ""
}

// Set stores value under key.
func (s *MemoryStore) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}
