// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wneessen/cityweather/internal/logger"
)

const (
	headerRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// requestLogger assigns a request ID and writes one access log line per request. A valid
// UUID in the X-Request-ID header is reused.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	id, err := uuid.Parse(c.Get(headerRequestID))
	if err != nil {
		id = uuid.New()
	}
	log := s.logger.With(slog.String("request_id", id.String()))
	c.Locals(localLogger, log)
	c.Set(headerRequestID, id.String())

	err = c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	log.Info("request handled", slog.String("method", c.Method()), slog.String("path", c.Path()),
		slog.Int("status", status), slog.Duration("duration", time.Since(start)))
	return err
}

// requestLog returns the logger carrying the request ID of c.
func (s *Server) requestLog(c *fiber.Ctx) *logger.Logger {
	if log, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return log
	}
	return s.logger
}
