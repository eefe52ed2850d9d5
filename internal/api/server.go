package api

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-platform-api/internal/api/handler"
	"github.com/vfg2006/meta-ads-platform-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/advising"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-platform-api/pkg/middleware"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// Services agrupa os casos de uso compartilhados pelos três modos de execução
type Services struct {
	Authenticator authenticating.Authenticator
	Accounts      account.AccountService
	Advisor       advising.Advisor
	Clock         utils.Clock
}

func NewServices(clock utils.Clock) Services {
	accountService := account.NewService()

	return Services{
		Authenticator: authenticating.NewService(accountService.AccountIDs()),
		Accounts:      accountService,
		Advisor:       advising.NewService(clock),
		Clock:         clock,
	}
}

// NewHandler monta a tabela de rotas e a cadeia de middlewares.
// É o mesmo handler usado pelo servidor e pelos adaptadores serverless.
func NewHandler(cfg *config.Config, services Services, extra ...router.Route) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cfg.Service, services.Clock)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.MetaAds(services.Accounts)...),
		router.WithRoutes(handler.AI(services.Advisor)...),
		router.WithRoutes(extra...),
		router.WithInstrumentation(middleware.Metrics),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, services Services) *Server {
	var extra []router.Route
	if cfg.Metrics.Enabled {
		extra = append(extra, handler.Metrics()...)
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           NewHandler(cfg, services, extra...),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Run abre a porta antes de retornar qualquer coisa: falha de bind volta como erro
// e o processo pode encerrar com status diferente de zero.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.Wrapf(err, "server: não foi possível abrir %s", s.httpServer.Addr)
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": listener.Addr().String(),
		}).Info("Servidor iniciando")

		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err, ok := <-serveErr:
		if ok {
			return errors.Wrap(err, "server: erro durante a execução")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
