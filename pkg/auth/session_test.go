package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
)

// unreachableStore points at a closed port. Only code paths that never reach
// Redis are exercised here; round trips are covered by the Redis integration
// tests in pkg/cache.
func unreachableStore(opts SessionOptions) *RedisStore {
	opts.AuthKey = []byte("test-auth-key-must-be-32-bytes!!")
	opts.EncryptionKey = []byte("test-enc-key-must-be-32-bytes!!!")
	return NewSessionStore(redis.NewClient(&redis.Options{Addr: "localhost:1", MaxRetries: -1}), opts)
}

func TestNewSessionStore_Defaults(t *testing.T) {
	s := unreachableStore(SessionOptions{})
	if s.options.MaxAge != int(DefaultSessionMaxAge/time.Second) {
		t.Fatalf("MaxAge = %d, want %d", s.options.MaxAge, int(DefaultSessionMaxAge/time.Second))
	}
	if got := s.key("abc"); got != "porcelarte:session:abc" {
		t.Fatalf("key = %q", got)
	}
	if !s.options.HttpOnly || s.options.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie options %+v", s.options)
	}
}

func TestNewSessionStore_Overrides(t *testing.T) {
	s := unreachableStore(SessionOptions{Secure: true, MaxAge: time.Hour, KeyPrefix: "test:"})
	if s.options.MaxAge != 3600 || !s.options.Secure {
		t.Fatalf("unexpected cookie options %+v", s.options)
	}
	if got := s.key("abc"); got != "test:abc" {
		t.Fatalf("key = %q", got)
	}
}

func TestRedisStore_New(t *testing.T) {
	s := unreachableStore(SessionOptions{})

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"tampered cookie", &http.Cookie{Name: sessionName, Value: "garbage"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.cookie != nil {
				r.AddCookie(tc.cookie)
			}
			session, err := s.New(r, sessionName)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !session.IsNew || session.ID != "" {
				t.Fatalf("expected a fresh session, got %+v", session)
			}
		})
	}
}

func TestRedisStore_New_UnknownSessionID(t *testing.T) {
	s := unreachableStore(SessionOptions{})
	encoded, err := securecookie.EncodeMulti(sessionName, "missing-id", s.codecs...)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: encoded})

	session, err := s.New(r, sessionName)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !session.IsNew {
		t.Fatal("session backed by an unreachable key must be new")
	}
}

func TestRedisStore_Save_Logout(t *testing.T) {
	s := unreachableStore(SessionOptions{})
	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	w := httptest.NewRecorder()

	session, _ := s.New(r, sessionName)
	session.Options.MaxAge = -1
	if err := s.Save(r, w, session); err != nil {
		t.Fatalf("Save: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expired cookie, got %+v", cookies)
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := newSessionID(), newSessionID()
	if a == b || len(a) == 0 {
		t.Fatalf("session IDs must be random and non-empty: %q %q", a, b)
	}
}
