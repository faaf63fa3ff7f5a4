// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package lookup resolves a city name to its current weather by geocoding it and querying
// the weather provider at the resulting coordinates.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/weather"
)

// Result is the weather for a city, ready for presentation.
type Result struct {
	City        string
	Country     string
	Temperature int
	FeelsLike   int
	Humidity    int
	WindSpeed   float64
	Description string
	Icon        string
	Cloudiness  int

	Latitude    float64
	Longitude   float64
	WeatherCode int
	ObservedAt  time.Time
}

// Service sequences the geocoder and the weather provider. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	geocoder geocode.Geocoder
	weather  weather.Provider
	logger   *logger.Logger
}

func New(geocoder geocode.Geocoder, provider weather.Provider, log *logger.Logger) (*Service, error) {
	if geocoder == nil {
		return nil, errors.New("geocoder is required")
	}
	if provider == nil {
		return nil, errors.New("weather provider is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	return &Service{geocoder: geocoder, weather: provider, logger: log}, nil
}

// Lookup returns the current weather for the given city name. It returns ErrEmptyInput for
// blank input and an *Error for every failure of the upstream services. The weather provider
// is only queried once the geocoder succeeded.
func (s *Service) Lookup(ctx context.Context, city string) (Result, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Result{}, ErrEmptyInput
	}

	location, err := s.geocoder.Search(ctx, city)
	if err != nil {
		return Result{}, classify(err, city)
	}
	s.logger.Debug("location resolved", slog.String("city", city), slog.String("geocoder", s.geocoder.Name()),
		slog.String("name", location.Name), slog.Float64("lat", location.Latitude),
		slog.Float64("lon", location.Longitude))

	current, err := s.weather.GetCurrent(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return Result{}, classify(err, city)
	}

	description, icon := weather.Describe(current.WeatherCode)
	return Result{
		City:        location.Name,
		Country:     location.Country,
		Temperature: int(math.Round(current.Temperature)),
		FeelsLike:   int(math.Round(current.ApparentTemperature)),
		Humidity:    current.RelativeHumidity,
		WindSpeed:   current.WindSpeed,
		Description: description,
		Icon:        icon,
		Cloudiness:  current.CloudCover,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		WeatherCode: current.WeatherCode,
		ObservedAt:  current.ObservedAt,
	}, nil
}
