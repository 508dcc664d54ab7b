package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/metrics"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/aussiebroadwan/inkwell/api/inkwell" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	limits       httpx.RateLimitProfiles
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	gatherer     prometheus.Gatherer

	store            store.Store
	Tokens           *service.TokenService
	Resolver         *service.IdentityResolver
	AccountService   *service.AccountService
	PostService      *service.PostService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	limits httpx.RateLimitProfiles,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		gatherer:     gatherer,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerPosts()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inkwell Blog API
//	@version		0.1.0
//	@description	Blog backend with accounts, posts and a four-tier role model: normal, staff, superuser and owner.
//	@description
//	@description				Access tokens are HS256 signed JWTs obtained from /v1/auth/token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/inkwell
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured requires a bearer token and rate limits per caller.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.Resolver.Authenticate),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// POST /token - strict rate limit by IP and username against password guessing
	tokenHandler := &TokenHandler{AccountService: r.AccountService}
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(r.limits.Strict, "username"),
		),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /v1/users/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /v1/staff", r.secured(h.HandleCreateStaff, r.limits.Moderate))
	r.Mux.Handle("POST /v1/superusers", r.secured(h.HandleCreateSuperuser, r.limits.Moderate))

	r.Mux.Handle("GET /v1/me", r.secured(h.HandleMe, r.limits.Lenient))

	rosters := map[string]domain.Tier{
		"users":      domain.TierNormal,
		"staff":      domain.TierStaff,
		"superusers": domain.TierSuperuser,
		"owners":     domain.TierOwner,
	}
	for segment, tier := range rosters {
		r.Mux.Handle("GET /v1/"+segment, r.secured(h.HandleRoster(tier), r.limits.Lenient))
	}

	r.Mux.Handle("GET /v1/accounts/{id}", r.secured(h.HandleGet, r.limits.Lenient))
	r.Mux.Handle("PATCH /v1/accounts/{id}", r.secured(h.HandleUpdate, r.limits.Moderate))
	r.Mux.Handle("DELETE /v1/accounts/{id}", r.secured(h.HandleDelete, r.limits.Moderate))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService, Resolver: r.Resolver}

	// Public reads - public rate limit by IP
	r.Mux.Handle("GET /v1/posts",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(r.limits.Public)),
	)
	r.Mux.Handle("GET /v1/posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(r.limits.Public)),
	)

	r.Mux.Handle("POST /v1/posts", r.secured(h.HandleCreate, r.limits.Moderate))
	r.Mux.Handle("PATCH /v1/posts/{id}", r.secured(h.HandleUpdate, r.limits.Moderate))
	r.Mux.Handle("DELETE /v1/posts/{id}", r.secured(h.HandleDelete, r.limits.Moderate))
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h, httpx.RateLimitByIP(r.limits.Strict)),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Tokens),
			httpx.RateLimitByIP(r.limits.Lenient),
		),
	)
	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
	}
}
