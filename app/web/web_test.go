package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/empdir/app/store"
	"github.com/umputun/empdir/app/store/slot"
	"github.com/umputun/empdir/app/web/mocks"
)

func testEmployees() []store.Employee {
	return []store.Employee{
		{ID: 1, Name: "Karthik Raja", Contact: "9876543210", Location: "Madurai", Gender: "Male", Age: 32},
		{ID: 2, Name: "Priya Lakshmi", Contact: "9845012345", Location: "Sivakasi", Gender: "Female", Age: 27},
		{ID: 3, Name: "Senthil Kumar", Contact: "9790011223", Location: "Virudhunagar", Gender: "Male", Age: 41},
		{ID: 4, Name: "Meena Devi", Contact: "9443322110", Location: "Sattur", Gender: "Female", Age: 35},
	}
}

// newTestServer makes server over memory-backed store with four employees
func newTestServer(t *testing.T, cfg Config) (*Server, *store.Store) {
	t.Helper()
	st := store.New(slot.NewMemory(), store.Opts{})
	require.NoError(t, st.Init(context.Background(), testEmployees()))
	cfg.Store = st
	if cfg.Version == "" {
		cfg.Version = "v1.2.3-abc1234-20250101"
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv, st
}

// testClient sends requests to handler and keeps the session cookie between them
type testClient struct {
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newTestClient(h http.Handler) *testClient {
	return &testClient{h: h, cookies: map[string]*http.Cookie{}}
}

func (c *testClient) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func TestNew(t *testing.T) {
	t.Run("requires store", func(t *testing.T) {
		_, err := New(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store is required")
	})

	t.Run("defaults", func(t *testing.T) {
		srv, _ := newTestServer(t, Config{BaseURL: "/empdir/"})
		assert.Equal(t, "/empdir", srv.baseURL)
		assert.Equal(t, "/empdir/", srv.cookiePath())
		assert.Equal(t, "/empdir/login", srv.url("/login"))
		assert.NotNil(t, srv.templates["base.html"])
		assert.NotNil(t, srv.templates["partials/employees.html"])
		assert.NotNil(t, srv.templates["login"])
		assert.Equal(t, 24*60*60, int(srv.loginTTL.Seconds()))
	})

	t.Run("subscribes to store", func(t *testing.T) {
		unsubscribed := false
		ms := &mocks.EmployeeStoreMock{
			SubscribeFunc: func(fn func(store.Event)) func() { return func() { unsubscribed = true } },
		}
		srv, err := New(Config{Store: ms})
		require.NoError(t, err)
		assert.Len(t, ms.SubscribeCalls(), 1)
		srv.unsubscribe()
		assert.True(t, unsubscribed)
	})
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t, Config{Hostname: "test-host"})
	handler := srv.routes()

	t.Run("ping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("static", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/static/styles.css", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ".login-card")
	})

	t.Run("app info headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", http.NoBody))
		assert.Equal(t, "empdir", rec.Header().Get("App-Name"))
		assert.Equal(t, "v1.2.3-abc1234-20250101", rec.Header().Get("App-Version"))
	})
}

func TestServer_BaseURL(t *testing.T) {
	srv, _ := newTestServer(t, Config{BaseURL: "/empdir"})
	handler := srv.handler()

	t.Run("redirects to trailing slash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/empdir", http.NoBody))
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/empdir/", rec.Header().Get("Location"))
	})

	t.Run("dashboard under base url", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/empdir/", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `href="/empdir/static/styles.css"`)
		assert.Contains(t, body, `hx-post="/empdir/api/form/add"`)

		var sessionPath string
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == sessionCookie {
				sessionPath = ck.Path
			}
		}
		assert.Equal(t, "/empdir/", sessionPath)
	})

	t.Run("partial under base url", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/empdir/api/employees", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Karthik Raja")
	})
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	c := newTestClient(srv.routes())

	require.Equal(t, http.StatusOK, c.do("POST", "/api/form/add", url.Values{}).Code)
	rec := c.do("POST", "/api/form/submit", url.Values{
		"name": {"Asha"}, "contact": {"9998887776"}, "location": {"Madurai"}, "gender": {"Female"}, "age": {"29"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusOK, c.do("POST", "/api/form/add", url.Values{}).Code)
	require.Equal(t, http.StatusOK, c.do("POST", "/api/form/submit", url.Values{"age": {"x"}}).Code)

	rec = c.do("GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `empdir_store_changes_total{kind="added"} 1`)
	assert.Contains(t, body, `empdir_form_submits_total{result="ok"} 1`)
	assert.Contains(t, body, `empdir_form_submits_total{result="invalid"} 1`)
	assert.Contains(t, body, "empdir_employees 5")
	assert.Contains(t, body, "empdir_form_sessions 1")
	assert.Contains(t, body, "go_goroutines")
}

func TestServer_LoadError(t *testing.T) {
	ms := &mocks.EmployeeStoreMock{
		SubscribeFunc: func(fn func(store.Event)) func() { return func() {} },
		LoadFunc:      func(context.Context) ([]store.Employee, error) { return nil, errors.New("slot is down") },
	}
	srv, err := New(Config{Store: ms})
	require.NoError(t, err)
	handler := srv.routes()

	for _, target := range []string{"/", "/api/employees", "/api/v1/employees"} {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", target, http.NoBody))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}

func TestShortVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"v1.7.0-abc1234-20241225", "v1.7.0"},
		{"v1.7.0", "v1.7.0"},
		{"unknown", "unknown"},
		{"", ""},
		{"-abc", "-abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, shortVersion(tt.in))
		})
	}
}
