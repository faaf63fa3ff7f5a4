// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/cityweather/internal/http"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/weather"
)

const (
	name        = "open-meteo"
	APIEndpoint = "https://api.open-meteo.com/v1/forecast"
)

var dataFields = []string{
	"temperature_2m", "relative_humidity_2m", "apparent_temperature", "weather_code", "wind_speed_10m",
	"cloud_cover",
}

type OpenMeteo struct {
	endpoint string
	timeout  time.Duration
	log      *logger.Logger
	http     *http.Client
}

type resTime struct {
	time.Time
}

type response struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	UTCOffsetSeconds     int     `json:"utc_offset_seconds"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	Current              *struct {
		Time                resTime  `json:"time"`
		Temperature         *float64 `json:"temperature_2m"`
		RelativeHumidity    *int     `json:"relative_humidity_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		WeatherCode         *int     `json:"weather_code"`
		WindSpeed           *float64 `json:"wind_speed_10m"`
		CloudCover          *int     `json:"cloud_cover"`
	} `json:"current"`
}

// New returns the Open-Meteo weather provider. An empty endpoint selects the public API.
func New(http *http.Client, log *logger.Logger, endpoint string, timeout time.Duration) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if endpoint == "" {
		endpoint = APIEndpoint
	}

	return &OpenMeteo{endpoint: endpoint, timeout: timeout, http: http, log: log}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) GetCurrent(ctx context.Context, lat, lon float64) (weather.Current, error) {
	res := new(response)

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("current", strings.Join(dataFields, ","))
	query.Set("temperature_unit", "celsius")
	query.Set("wind_speed_unit", "ms")
	query.Set("timezone", "auto")

	if _, err := o.http.GetWithTimeout(ctx, o.endpoint, res, query, nil, o.timeout); err != nil {
		return weather.Current{}, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}

	cur := res.Current
	switch {
	case cur == nil:
		return weather.Current{}, fmt.Errorf("%w: current conditions missing", weather.ErrMalformedResponse)
	case cur.Temperature == nil, cur.ApparentTemperature == nil, cur.RelativeHumidity == nil,
		cur.WeatherCode == nil, cur.WindSpeed == nil, cur.CloudCover == nil:
		return weather.Current{}, fmt.Errorf("%w: current conditions incomplete", weather.ErrMalformedResponse)
	}

	observed := cur.Time.Time
	if !observed.IsZero() {
		zone := time.FixedZone(res.TimezoneAbbreviation, res.UTCOffsetSeconds)
		observed = time.Date(observed.Year(), observed.Month(), observed.Day(), observed.Hour(),
			observed.Minute(), 0, 0, zone)
	}
	o.log.Debug("weather data received", "provider", name, "timezone", res.Timezone,
		"weather_code", *cur.WeatherCode)

	return weather.Current{
		ObservedAt:          observed,
		Temperature:         *cur.Temperature,
		ApparentTemperature: *cur.ApparentTemperature,
		RelativeHumidity:    *cur.RelativeHumidity,
		WindSpeed:           *cur.WindSpeed,
		CloudCover:          *cur.CloudCover,
		WeatherCode:         *cur.WeatherCode,
	}, nil
}

func (r *resTime) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty time")
	}
	if string(b) == "null" {
		return nil
	}
	if b[0] != '"' || len(b) < 2 {
		return fmt.Errorf("invalid time format: %s", string(b))
	}

	apiTime, err := time.Parse("2006-01-02T15:04", string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("failed to parse time: %w", err)
	}
	r.Time = apiTime

	return nil
}
