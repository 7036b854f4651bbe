package app

import (
	"context"
	"net/http"

	"scroggy_backend/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()

	err := config.Load(".env")
	if err != nil {
		log.WithError(err).Warn("error loading .env file")
	}

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	log.WithField("address", s.ServiceProvider.HTTPCfg().Address()).Info("starting server")
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
