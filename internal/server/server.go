// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package server serves the weather lookup pages over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	stdhttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wneessen/cityweather/internal/config"
	"github.com/wneessen/cityweather/internal/i18n"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/lookup"
	"github.com/wneessen/cityweather/internal/presenter"
)

const appName = "cityweather"

// Lookuper resolves a city name to its current weather.
type Lookuper interface {
	Lookup(ctx context.Context, city string) (lookup.Result, error)
}

type Server struct {
	app        *fiber.App
	address    string
	logger     *logger.Logger
	lookup     Lookuper
	presenter  *presenter.Presenter
	translator *i18n.Translator
}

func New(conf *config.Config, log *logger.Logger, lookuper Lookuper, pres *presenter.Presenter,
	translator *i18n.Translator,
) (*Server, error) {
	switch {
	case conf == nil:
		return nil, errors.New("config is required")
	case log == nil:
		return nil, errors.New("logger is required")
	case lookuper == nil:
		return nil, errors.New("lookup service is required")
	case pres == nil:
		return nil, errors.New("presenter is required")
	case translator == nil:
		return nil, errors.New("translator is required")
	}

	server := &Server{
		address:    conf.Server.Address,
		logger:     log,
		lookup:     lookuper,
		presenter:  pres,
		translator: translator,
	}
	server.app = fiber.New(fiber.Config{
		AppName:               appName,
		ReadTimeout:           conf.Server.ReadTimeout,
		WriteTimeout:          conf.Server.WriteTimeout,
		IdleTimeout:           conf.Server.IdleTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          server.errorHandler,
	})
	server.routes()
	return server, nil
}

func (s *Server) routes() {
	s.app.Use(s.requestLogger)
	s.app.Use(recover.New())

	s.app.Get("/", s.handleIndex)
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/weather", s.handleWeather)
	s.app.Post("/weather", s.handleWeather)
	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:   stdhttp.FS(presenter.Static()),
		MaxAge: 3600,
	}))
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.address
}

// Serve accepts connections on the listener until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("serving weather lookups", slog.String("address", ln.Addr().String()))
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for open requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Test runs a request through the handlers without a network listener.
func (s *Server) Test(req *stdhttp.Request) (*stdhttp.Response, error) {
	return s.app.Test(req, -1)
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.requestLog(c).Error("failed to handle request", slog.String("path", c.Path()), logger.Err(err))
	}
	return c.Status(code).SendString(stdhttp.StatusText(code))
}
