// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/wneessen/cityweather/internal/geocode"
	geocodeearth "github.com/wneessen/cityweather/internal/geocode/provider/geocode-earth"
	geoopenmeteo "github.com/wneessen/cityweather/internal/geocode/provider/open-meteo"
	"github.com/wneessen/cityweather/internal/geocode/provider/opencage"
	nominatim "github.com/wneessen/cityweather/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/cityweather/internal/weather"
	openmeteo "github.com/wneessen/cityweather/internal/weather/provider/open-meteo"
)

func (s *Service) selectGeocodeProvider(lang language.Tag) (geocode.Geocoder, error) {
	conf := s.config.GeoCoder
	timeout := s.config.Lookup.Timeout

	switch strings.ToLower(conf.Provider) {
	case "open-meteo":
		return geoopenmeteo.New(s.http, conf.Endpoint, timeout), nil
	case "nominatim":
		return nominatim.New(s.http, lang, conf.Endpoint, timeout), nil
	case "opencage":
		if conf.APIKey == "" {
			return nil, fmt.Errorf("opencage geocoder requires an API key")
		}
		return opencage.New(s.http, lang, conf.APIKey, conf.Endpoint, timeout), nil
	case "geocode-earth":
		if conf.APIKey == "" {
			return nil, fmt.Errorf("geocode-earth geocoder requires an API key")
		}
		return geocodeearth.New(s.http, lang, conf.APIKey, conf.Endpoint, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported geocoder type: %s", conf.Provider)
	}
}

func (s *Service) selectWeatherProvider() (provider weather.Provider, err error) {
	switch strings.ToLower(s.config.Weather.Provider) {
	case "open-meteo":
		provider, err = openmeteo.New(s.http, s.logger, s.config.Weather.Endpoint, s.config.Lookup.Timeout)
		if err != nil {
			return provider, fmt.Errorf("failed to create Open-Meteo weather provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported weather provider: %s", s.config.Weather.Provider)
	}
	return provider, nil
}
