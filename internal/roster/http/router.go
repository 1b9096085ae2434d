package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rosterhq/roster/internal/roster/service"
	"github.com/rosterhq/roster/internal/roster/store"
	"github.com/rosterhq/roster/pkg/httpx"
	"github.com/rosterhq/roster/pkg/jwtx"
	"github.com/rosterhq/roster/pkg/slogx"

	_ "github.com/rosterhq/roster/api/roster" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	issuer       string
	accessTTL    time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	CompanyService    *service.CompanyService
	MembershipService *service.MembershipService
	InviteService     *service.InviteService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	issuer string,
	accessTTL time.Duration,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		issuer:       issuer,
		accessTTL:    accessTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCompanies()
	r.registerMemberships()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Roster Membership Service API
//	@version		0.1.0
//	@description	Multi-tenant membership and invitation service: companies, role-based memberships
//	@description	(OWNER, ADMIN, MEMBER) and time-limited, single-use invite tokens.
//
//	@contact.name				RosterHQ Team
//	@contact.url				https://github.com/rosterhq/roster
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

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService: r.UserService,
		Signer:      r.signer,
		Issuer:      r.issuer,
		AccessTTL:   r.accessTTL,
	}

	// Credential endpoints get the strict limit to slow brute force.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:    r.UserService,
		CompanyService: r.CompanyService,
	}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/users/me/active-company",
		httpx.Chain(http.HandlerFunc(h.HandleSelectActiveCompany),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCompanies() {
	h := &CompaniesHandler{CompanyService: r.CompanyService}

	r.Mux.Handle("POST /v1/companies",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/companies",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/companies/{companyID}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMemberships() {
	h := &MembershipsHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/companies/{companyID}/members",
		httpx.Chain(http.HandlerFunc(h.HandleListMembers),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/memberships/{membershipID}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateRole),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/memberships/{membershipID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{
		InviteService: r.InviteService,
		Verifier:      r.verifier,
		Signer:        r.signer,
		Issuer:        r.issuer,
		AccessTTL:     r.accessTTL,
	}

	r.Mux.Handle("POST /v1/companies/{companyID}/invites",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/companies/{companyID}/invites",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/companies/{companyID}/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Public endpoints keyed by IP. Preview is read-only but still
	// kept moderate so tokens cannot be enumerated quickly.
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandlePreview),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{token}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
