// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"context"
	"errors"
	"time"
)

// ErrMalformedResponse is returned by providers when the API answered with a decodable body
// that lacks fields we requested.
var ErrMalformedResponse = errors.New("malformed weather API response")

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetCurrent(ctx context.Context, lat, lon float64) (Current, error)
}

// Current holds the current conditions at a location. Temperatures are in °C, wind speed
// in m/s, humidity and cloud cover in percent.
type Current struct {
	ObservedAt          time.Time
	Temperature         float64
	ApparentTemperature float64
	RelativeHumidity    int
	WindSpeed           float64
	CloudCover          int
	WeatherCode         int
}
