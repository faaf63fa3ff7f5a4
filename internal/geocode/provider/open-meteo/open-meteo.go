// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/http"
)

const (
	APIEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	name        = "open-meteo"
)

type OpenMeteo struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

type Response struct {
	Results []Result `json:"results"`
}

type Result struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Timezone    string   `json:"timezone"`
}

// New returns the Open-Meteo geocoder. An empty endpoint selects the public API.
func New(client *http.Client, endpoint string, timeout time.Duration) *OpenMeteo {
	if endpoint == "" {
		endpoint = APIEndpoint
	}
	return &OpenMeteo{
		endpoint: endpoint,
		timeout:  timeout,
		http:     client,
	}
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) Search(ctx context.Context, city string) (geocode.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	if _, err := o.http.GetWithTimeout(ctx, o.endpoint, &response, query, nil, o.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to search location from Open-Meteo geocoding API: %w", err)
	}
	if len(response.Results) < 1 {
		return geocode.Location{}, fmt.Errorf("%w for %q", geocode.ErrNotFound, city)
	}

	result := response.Results[0]
	if result.Name == nil || result.Latitude == nil || result.Longitude == nil {
		return geocode.Location{}, fmt.Errorf("%w: result for %q lacks name or coordinates",
			geocode.ErrMalformedResponse, city)
	}

	return geocode.Location{
		Name:      *result.Name,
		Country:   result.Country,
		Latitude:  *result.Latitude,
		Longitude: *result.Longitude,
	}, nil
}
