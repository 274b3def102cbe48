package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fedha/ftk-go/internal/config"
	"github.com/fedha/ftk-go/internal/sandbox"
)

func main() {
	log := logrus.New()

	cfg := config.Load(log)
	log.SetLevel(cfg.Level())

	box := sandbox.New(sandbox.Config{
		JWTSecret: cfg.SandboxJWTSecret,
		Logger:    log,
		Seed:      true,
	})

	srv := &http.Server{
		Addr:    cfg.SandboxAddr,
		Handler: box.Handler(),
	}

	go func() {
		log.Infof("sandbox listening on %s", cfg.SandboxAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("sandbox failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown: ", err)
	}
}
