package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/umputun/empdir/app/form"
)

const sessionCookie = "empdir-session"

// sessions keeps a form controller per browser, identified by session cookie.
// Idle sessions expire after ttl, the expiration is extended on every access.
type sessions struct {
	cache *cache.Cache
	store form.Store
	ttl   time.Duration
	path  string // cookie path
}

func newSessions(st form.Store, ttl time.Duration, cookiePath string) *sessions {
	return &sessions{cache: cache.New(ttl, ttl/2+time.Second), store: st, ttl: ttl, path: cookiePath}
}

// get returns the controller of the request session, makes a new session and sets the cookie if needed
func (s *sessions) get(w http.ResponseWriter, r *http.Request) *form.Controller {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if v, ok := s.cache.Get(cookie.Value); ok {
			ctrl := v.(*form.Controller)
			s.cache.Set(cookie.Value, ctrl, cache.DefaultExpiration)
			return ctrl
		}
	}

	id := uuid.NewString()
	ctrl := form.NewController(s.store)
	s.cache.Set(id, ctrl, cache.DefaultExpiration)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     s.path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isSecure(r),
	})
	return ctrl
}

// count returns number of live sessions
func (s *sessions) count() float64 {
	return float64(s.cache.ItemCount())
}
