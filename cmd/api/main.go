package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sonaeson/groupbuy-proposal/config"
	"github.com/sonaeson/groupbuy-proposal/internal/bootstrap"
	"github.com/sonaeson/groupbuy-proposal/internal/logging"
)

const serviceName = "groupbuy-proposal"

func main() {
	log := logging.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.InitLogger(logging.ParseLevel(cfg.App.LogLevel), cfg.IsProduction())
	bootstrap.SetGinMode(cfg.App.Environment)

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:        serviceName,
		Version:            cfg.App.Version,
		Proposals:          bootstrap.NewProposalService(cfg),
		AllowOrigins:       cfg.CORS.AllowOrigins,
		ExposeErrorDetails: cfg.App.ExposeErrorDetails,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("listening on http://localhost:%s (model=%s)", cfg.Server.Port, cfg.OpenAI.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
