package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "mottufind/docs"
	"mottufind/internal/api/auth"
	"mottufind/internal/api/filial"
	"mottufind/internal/api/leitorrfid"
	"mottufind/internal/api/leiturarfid"
	"mottufind/internal/api/moto"
	"mottufind/internal/api/patio"
	"mottufind/internal/api/usuario"
	"mottufind/internal/pkg/cache"
	"mottufind/internal/pkg/health"
	"mottufind/internal/pkg/logger"
	"mottufind/internal/pkg/middleware"
)

// Services reúne a camada de Serviço já montada por injeção de dependências.
type Services struct {
	Auth        auth.Authenticator
	Moto        moto.MotoService
	Patio       patio.PatioService
	Filial      filial.FilialService
	Usuario     usuario.UsuarioService
	LeitorRfid  leitorrfid.LeitorRfidService
	LeituraRfid leiturarfid.LeituraRfidService
}

// Options controla autenticação, rate limiting e health checks.
type Options struct {
	TokenService middleware.TokenService
	Health       *health.Registry

	// Cache nil ou RateLimitMax 0 desativam o rate limiting.
	Cache           cache.Client
	RateLimitMax    int
	RateLimitPeriod time.Duration

	// AuthPatioFilial exige Bearer token também em pátios e filiais.
	AuthPatioFilial bool
}

var (
	v1    = []string{"v1", "v1.0"}
	v2    = []string{"v2", "v2.0"}
	v1ev2 = []string{"v1", "v1.0", "v2", "v2.0"}
)

// NewRouter configura e retorna o roteador HTTP principal.
// Cada versão é montada com seu próprio BasePath para que Location e links apontem para a versão pedida.
func NewRouter(svc Services, opts Options, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if opts.Cache != nil && opts.RateLimitMax > 0 {
		r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitPeriod, log))
	}

	requireAuth := middleware.NewAuthMiddleware(opts.TokenService, log)

	r.Route("/api", func(api chi.Router) {
		for _, v := range v1 {
			api.Route("/"+v+"/auth", auth.NewHandler(svc.Auth, log).Routes)
		}

		api.Route("/usuario", usuario.NewHandler(svc.Usuario, log, "/api/usuario").Routes)

		// Motos e RFID exigem token.
		api.Group(func(pr chi.Router) {
			pr.Use(requireAuth)
			for _, v := range v1ev2 {
				base := "/api/" + v + "/moto"
				pr.Route("/"+v+"/moto", moto.NewHandler(svc.Moto, log, base).Routes)
			}
			pr.Route("/leitorrfid", leitorrfid.NewHandler(svc.LeitorRfid, log, "/api/leitorrfid").Routes)
			pr.Route("/leiturarfid", leiturarfid.NewHandler(svc.LeituraRfid, log, "/api/leiturarfid").Routes)
		})

		api.Group(func(g chi.Router) {
			if opts.AuthPatioFilial {
				g.Use(requireAuth)
			}
			for _, v := range v1ev2 {
				base := "/api/" + v + "/patio"
				g.Route("/"+v+"/patio", patio.NewHandler(svc.Patio, log, base).Routes)
			}
			for _, v := range v2 {
				base := "/api/" + v + "/filial"
				g.Route("/"+v+"/filial", filial.NewHandler(svc.Filial, log, base).Routes)
			}
		})
	})

	if opts.Health != nil {
		r.Get("/health", opts.Health.Handler(health.AllChecks))
		r.Get("/health/ready", opts.Health.Handler(health.ReadyChecks))
		r.Get("/health/live", opts.Health.Handler(health.LiveChecks))
	}
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// PingHandler responde "pong" sem tocar em dependências externas.
func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
