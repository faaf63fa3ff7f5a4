// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package service wires the configured providers, the lookup and the HTTP server together.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"golang.org/x/sync/errgroup"

	"github.com/wneessen/cityweather/internal/config"
	"github.com/wneessen/cityweather/internal/http"
	"github.com/wneessen/cityweather/internal/i18n"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/lookup"
	"github.com/wneessen/cityweather/internal/presenter"
	"github.com/wneessen/cityweather/internal/server"
)

type Service struct {
	config     *config.Config
	http       *http.Client
	logger     *logger.Logger
	translator *i18n.Translator
	server     *server.Server
}

func New(conf *config.Config, log *logger.Logger, t *i18n.Translator) (*Service, error) {
	switch {
	case conf == nil:
		return nil, errors.New("config is required")
	case log == nil:
		return nil, errors.New("logger is required")
	case t == nil:
		return nil, errors.New("translator is required")
	}

	service := &Service{
		config:     conf,
		http:       http.New(log),
		logger:     log,
		translator: t,
	}

	geocoder, err := service.selectGeocodeProvider(t.Fallback())
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode provider: %w", err)
	}
	provider, err := service.selectWeatherProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}
	lookuper, err := lookup.New(geocoder, provider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup service: %w", err)
	}
	pres, err := presenter.New(t)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}
	service.server, err = server.New(conf, log, lookuper, pres, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	log.Debug("service initialized", slog.String("geocoder", geocoder.Name()),
		slog.String("weather_provider", provider.Name()), slog.String("locale", t.Fallback().String()))
	return service, nil
}

// Run serves HTTP requests until ctx is canceled and then shuts the server down gracefully.
func (s *Service) Run(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.server.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Address(), err)
	}
	return s.serve(ctx, listener)
}

func (s *Service) serve(ctx context.Context, listener net.Listener) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := s.server.Serve(listener); err != nil {
			return fmt.Errorf("failed to serve HTTP requests: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.logger.Debug("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Server.ShutdownTimeout)
		defer cancel()
		err := s.server.Shutdown(shutdownCtx)
		// Serve may not have picked up the listener yet when the context is canceled early.
		_ = listener.Close()
		if err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %w", err)
		}
		return nil
	})
	return group.Wait()
}
