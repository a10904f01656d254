// Package web implements the web server of the employee directory: htmx dashboard, JSON API,
// optional password login and prometheus metrics.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/didip/tollbooth/v8"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/patrickmn/go-cache"

	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/form"
	"github.com/umputun/empdir/app/store"
)

//go:embed templates/*.html templates/partials/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

//go:generate moq -out mocks/employee_store.go -pkg mocks -skip-ensure -fmt goimports . EmployeeStore

// EmployeeStore is the employee collection used by the server
type EmployeeStore interface {
	form.Store
	Load(ctx context.Context) ([]store.Employee, error)
	Get(ctx context.Context, id int) (store.Employee, bool, error)
	Subscribe(fn func(store.Event)) (unsubscribe func())
}

// Server represents the web server
type Server struct {
	store          EmployeeStore
	templates      map[string]*template.Template
	sessions       *sessions
	authTokens     *cache.Cache // login token -> struct{}
	metrics        *metrics
	unsubscribe    func()
	baseURL        string // base URL path for reverse proxy (e.g., /empdir), empty for root
	hostname       string // hostname to display in UI
	version        string
	passwordHash   string        // bcrypt hash for login, empty disables auth
	loginTTL       time.Duration // lifetime of login cookie
	csrfProtection *http.CrossOriginProtection
}

// Config holds server configuration
type Config struct {
	Store        EmployeeStore
	BaseURL      string // base URL path for reverse proxy (e.g., /empdir), empty for root
	Hostname     string // hostname to display in UI
	Version      string
	PasswordHash string        // bcrypt hash for login (empty to disable)
	LoginTTL     time.Duration // login TTL, defaults to 24h if not set
	SessionTTL   time.Duration // idle time after which form session is dropped, defaults to 1h
}

// Row is a table row, employee with its sequential number in the shown list
type Row struct {
	SNo int
	store.Employee
}

// TemplateData holds data for templates
type TemplateData struct {
	Employees    []Row
	Total        int    // collection size before search
	Search       string // active search term
	Form         form.State
	Locations    []string
	Genders      []string
	DeleteTarget *store.Employee // employee shown in delete confirmation
	CloseForm    bool            // render out-of-band reset of the form panel
	CloseModal   bool            // render out-of-band reset of the delete dialog
	CurrentYear  int
	BaseURL      string
	Hostname     string
	AuthEnabled  bool
	Version      string // application version (short form)
	FullVersion  string
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("web server initialization failed: store is required")
	}

	loginTTL := cfg.LoginTTL
	if loginTTL == 0 {
		loginTTL = 24 * time.Hour
	}
	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = time.Hour
	}

	s := &Server{
		store:          cfg.Store,
		authTokens:     cache.New(loginTTL, 10*time.Minute),
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		hostname:       cfg.Hostname,
		version:        cfg.Version,
		passwordHash:   cfg.PasswordHash,
		loginTTL:       loginTTL,
		csrfProtection: http.NewCrossOriginProtection(),
	}
	s.sessions = newSessions(cfg.Store, sessionTTL, s.cookiePath())
	s.metrics = newMetrics(s.sessions.count)
	s.unsubscribe = cfg.Store.Subscribe(s.metrics.onChange)

	templates, err := s.parseTemplates()
	if err != nil {
		s.unsubscribe()
		return nil, fmt.Errorf("web server initialization failed: failed to parse HTML templates: %w", err)
	}
	s.templates = templates

	return s, nil
}

// Run starts the web server and blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	defer s.unsubscribe()

	server := &http.Server{
		Addr:              address,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// handler returns the http.Handler with base URL wrapping applied
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("empdir", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024),
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	// must be set before any route
	if s.passwordHash != "" {
		log.Printf("[INFO] authentication enabled for web UI")
		router.Use(s.authMiddleware)
		router.HandleFunc("GET /login", s.handleLoginForm)
		router.With(s.csrfProtection.Handler, tollbooth.HTTPMiddleware(newLoginLimiter())).HandleFunc("POST /login", s.handleLogin)
		router.HandleFunc("GET /logout", s.handleLogout)
	}

	router.HandleFunc("GET /{$}", s.handleDashboard)
	router.Handle("GET /metrics", s.metrics.handler())

	// htmx endpoints
	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.Use(s.csrfProtection.Handler)

		api.HandleFunc("GET /employees", s.handleEmployeesPartial)
		api.HandleFunc("POST /form/add", s.handleFormAdd)
		api.HandleFunc("POST /form/edit/{id}", s.handleFormEdit)
		api.HandleFunc("POST /form/field", s.handleFormField)
		api.HandleFunc("POST /form/submit", s.handleFormSubmit)
		api.HandleFunc("POST /form/cancel", s.handleFormCancel)
		api.HandleFunc("POST /delete/confirm", s.handleDeleteConfirm)
		api.HandleFunc("POST /delete/cancel", s.handleDeleteCancel)
		api.HandleFunc("POST /delete/{id}", s.handleDeleteOpen)
	})

	// JSON API for programmatic access
	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)
		api.Use(s.csrfProtection.Handler)
		api.HandleFunc("GET /employees", s.handleAPIList)
		api.HandleFunc("POST /employees", s.handleAPICreate)
		api.HandleFunc("GET /employees/{id}", s.handleAPIGet)
		api.HandleFunc("PUT /employees/{id}", s.handleAPIUpdate)
		api.HandleFunc("DELETE /employees/{id}", s.handleAPIDelete)
		api.HandleFunc("GET /schema", s.handleAPISchema)
	})

	fsys, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("[ERROR] failed to create static file system: %v", err)
		router.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	} else {
		router.HandleFiles("/static/", http.FS(fsys))
	}

	return router
}

// newTemplateData makes TemplateData with common fields and rows for employees
func (s *Server) newTemplateData(state form.State, employees []store.Employee, search string) TemplateData {
	shown := store.Search(employees, search)
	rows := make([]Row, 0, len(shown))
	for i, e := range shown {
		rows = append(rows, Row{SNo: i + 1, Employee: e})
	}
	return TemplateData{
		Employees:   rows,
		Total:       len(employees),
		Search:      search,
		Form:        state,
		Locations:   enums.LocationNames(),
		Genders:     enums.GenderNames(),
		CurrentYear: time.Now().Year(),
		BaseURL:     s.baseURL,
		Hostname:    s.hostname,
		AuthEnabled: s.passwordHash != "",
		Version:     shortVersion(s.version),
		FullVersion: s.version,
	}
}

// render renders a template
func (s *Server) render(w http.ResponseWriter, page, tmplName string, data any) {
	tmpl, ok := s.templates[page]
	if !ok {
		log.Printf("[WARN] template %s not found", page)
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, tmplName, data); err != nil {
		log.Printf("[WARN] failed to execute template %s: %v", tmplName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// parseTemplates parses all templates
func (s *Server) parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	funcMap := template.FuncMap{"url": s.url}

	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templatesFS,
		"templates/base.html", "templates/dashboard.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}
	templates["base.html"] = base

	// partials alone, for htmx responses
	partials, err := template.New("employees.html").Funcs(funcMap).ParseFS(templatesFS, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse partials: %w", err)
	}
	templates["partials/employees.html"] = partials

	login, err := template.New("login.html").Funcs(funcMap).ParseFS(templatesFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse login template: %w", err)
	}
	templates["login"] = login

	return templates, nil
}

// url prepends the base URL to a path for reverse proxy support
func (s *Server) url(path string) string {
	return s.baseURL + path
}

// cookiePath returns the cookie path with base URL support
func (s *Server) cookiePath() string {
	if s.baseURL == "" {
		return "/"
	}
	return s.baseURL + "/"
}

// isSecure reports whether the request came over https, directly or via proxy
func isSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

// shortVersion extracts a short version string from full version
// for version like "v1.7.0-abc1234-20241225", returns "v1.7.0"
func shortVersion(fullVer string) string {
	if fullVer == "" || fullVer == "unknown" {
		return fullVer
	}
	if idx := strings.Index(fullVer, "-"); idx > 0 {
		return fullVer[:idx]
	}
	return fullVer
}
