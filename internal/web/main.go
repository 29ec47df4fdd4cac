// Package web wires the fiber app: templates, static files, access log,
// health and metrics endpoints and the page and API handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/barbersite/barbersite/internal/config"
	fiberlogger "github.com/barbersite/barbersite/internal/logger/adapter/fiber"
	"github.com/barbersite/barbersite/internal/web/handler"
	apigallery "github.com/barbersite/barbersite/internal/web/handler/api/gallery"
	apisettings "github.com/barbersite/barbersite/internal/web/handler/api/settings"
	"github.com/barbersite/barbersite/internal/web/handler/dashboard"
	"github.com/barbersite/barbersite/internal/web/handler/home"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// StaticPath serves the embedded static files.
	StaticPath = "/static"

	// AppName is announced by fiber.
	AppName = "barbersite"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Addr returns the listen address of the configured port.
func (s *Service) Addr() string {
	return ":" + strconv.Itoa(s.cfg.Webserver.Port)
}

// Start listens on the configured port and blocks until the server stops.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	go func() {
		log.Info().Str("addr", s.Addr()).Str("url", s.cfg.Webserver.URL).Msg("starting http server")

		if err := s.App.Listen(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails /checkalive, waits ShutDownTime seconds unless in dev mode,
// then stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive responds OK while the service accepts traffic and 503 while shutting down.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("capitalize", func(s string) string {
		if s == "" {
			return s
		}

		return strings.ToUpper(s[:1]) + s[1:]
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return templateEngine
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, deps *handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil {
		panic("deps cannot be nil")
	}

	readBufferSize := cfg.Webserver.ReadBufferSize
	if readBufferSize == 0 {
		readBufferSize = 8192
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: readBufferSize,
			AppName:        AppName,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newTemplateEngine(cfg),
			JSONEncoder:    json.Marshal,
			JSONDecoder:    json.Unmarshal,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:    cfg.Log,
		QuietURIs: []string{CheckAlivePath, MetricsPath},
	}))

	// serve embedded static files
	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers, they register their own routes; each app gets its own instances
	for _, h := range []handler.Service{
		&home.Service{},
		&dashboard.Service{},
		&apisettings.Service{},
		&apigallery.Service{},
	} {
		h.Init(app, cfg, deps)
	}

	return service
}
