// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/lookup"
	"github.com/wneessen/cityweather/internal/presenter"
)

const formFieldCity = "city"

func (s *Server) handleIndex(c *fiber.Ctx) error {
	lang := s.language(c)
	return s.render(c, fiber.StatusOK, func(w io.Writer) error {
		return s.presenter.RenderForm(w, lang, presenter.FormView{})
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// handleWeather serves both the form submission and bookmarkable GET lookups.
func (s *Server) handleWeather(c *fiber.Ctx) error {
	lang := s.language(c)
	city := c.Query(formFieldCity)
	if c.Method() == fiber.MethodPost {
		city = c.FormValue(formFieldCity)
	}

	result, err := s.lookup.Lookup(c.UserContext(), city)
	if err != nil {
		message, status := s.presenter.Failure(lang, err)
		s.logFailure(c, city, err)
		return s.render(c, status, func(w io.Writer) error {
			return s.presenter.RenderForm(w, lang, presenter.FormView{
				City:  strings.TrimSpace(city),
				Error: message,
			})
		})
	}

	s.requestLog(c).Debug("weather lookup succeeded", slog.String("city", result.City),
		slog.String("country", result.Country), slog.Int("weather_code", result.WeatherCode))
	return s.render(c, fiber.StatusOK, func(w io.Writer) error {
		return s.presenter.RenderResult(w, lang, result)
	})
}

func (s *Server) logFailure(c *fiber.Ctx, city string, err error) {
	kind := lookup.KindUnexpected.String()
	var lookupErr *lookup.Error
	switch {
	case errors.Is(err, lookup.ErrEmptyInput):
		kind = "empty_input"
	case errors.As(err, &lookupErr):
		kind = lookupErr.Kind.String()
	}
	s.requestLog(c).Warn("weather lookup failed", slog.String("kind", kind),
		slog.String("city", strings.TrimSpace(city)), logger.Err(err))
}

// language picks the UI language from the Accept-Language header.
func (s *Server) language(c *fiber.Ctx) language.Tag {
	lang := s.translator.Match(c.Get(fiber.HeaderAcceptLanguage))
	c.Set(fiber.HeaderContentLanguage, lang.String())
	return lang
}

// render executes fn into a buffer first, so that a failing template never leaves a partial
// page with a success status.
func (s *Server) render(c *fiber.Ctx, status int, fn func(io.Writer) error) error {
	buf := bytes.NewBuffer(nil)
	if err := fn(buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
