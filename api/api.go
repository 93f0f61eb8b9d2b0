package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/dispatch"
)

const CName = "api"

var log = logger.NewNamed(CName)

type Config struct {
	ListenAddr     string   `yaml:"listenAddr"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type configSource interface {
	GetApi() Config
}

func New() Api {
	return new(api)
}

type Api interface {
	app.ComponentRunnable
}

type api struct {
	conf    Config
	handler *handler
	server  *http.Server
}

func (s *api) Init(a *app.App) (err error) {
	s.conf = a.MustComponent("config").(configSource).GetApi()
	s.handler = &handler{
		dispatch: a.MustComponent(dispatch.CName).(dispatch.Dispatch),
	}
	if m := a.Component(metric.CName); m != nil {
		s.handler.metric = m.(metric.Metric)
	}
	s.server = &http.Server{
		Addr:    s.conf.ListenAddr,
		Handler: s.router(),
	}
	return
}

func (s *api) Name() (name string) {
	return CName
}

func (s *api) router() http.Handler {
	origins := s.conf.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/health", s.handler.health)
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/register", s.handler.register)
		r.Post("/unregister", s.handler.unregister)
		r.Post("/send", s.handler.send)
		r.Post("/broadcast", s.handler.broadcast)
	})
	return r
}

func (s *api) Run(ctx context.Context) (err error) {
	ln, err := net.Listen("tcp", s.conf.ListenAddr)
	if err != nil {
		return
	}
	go func() {
		if serveErr := s.server.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error("http serve error", zap.Error(serveErr))
		}
	}()
	log.Info("api listening", zap.String("addr", ln.Addr().String()))
	return
}

func (s *api) Close(ctx context.Context) (err error) {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return
}
