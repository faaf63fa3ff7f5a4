// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocodeearth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/http"
)

const (
	APIEndpoint = "https://api.geocode.earth/v1/search"
	name        = "geocode-earth"
)

type GeocodeEarth struct {
	apikey   string
	endpoint string
	timeout  time.Duration
	http     *http.Client
	lang     language.Tag
}

type Response struct {
	Features []Feature `json:"features"`
	Type     string    `json:"type"`
}

type Feature struct {
	Geometry   *Geometry  `json:"geometry"`
	Properties Properties `json:"properties"`
	Type       string     `json:"type"`
}

// Geometry is a GeoJSON point. Coordinates are ordered longitude, latitude.
type Geometry struct {
	Coordinates []float64 `json:"coordinates"`
	Type        string    `json:"type"`
}

type Properties struct {
	Name        string `json:"name"`
	DisplayName string `json:"label"`
	City        string `json:"locality"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	State       string `json:"region"`
}

// New returns the geocode.earth geocoder. An empty endpoint selects the public API.
func New(client *http.Client, lang language.Tag, apikey, endpoint string, timeout time.Duration) *GeocodeEarth {
	if endpoint == "" {
		endpoint = APIEndpoint
	}
	return &GeocodeEarth{
		apikey:   apikey,
		endpoint: endpoint,
		timeout:  timeout,
		lang:     lang,
		http:     client,
	}
}

func (g *GeocodeEarth) Name() string {
	return name
}

func (g *GeocodeEarth) Search(ctx context.Context, city string) (geocode.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("api_key", g.apikey)
	query.Set("text", city)
	query.Set("size", "1")
	query.Set("lang", g.lang.String())

	if _, err := g.http.GetWithTimeout(ctx, g.endpoint, &response, query, nil, g.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to retrieve location from geocode.earth API: %w", err)
	}
	if len(response.Features) < 1 {
		return geocode.Location{}, fmt.Errorf("%w for %q", geocode.ErrNotFound, city)
	}

	feature := response.Features[0]
	if feature.Geometry == nil || len(feature.Geometry.Coordinates) < 2 {
		return geocode.Location{}, fmt.Errorf("%w: result for %q has no coordinates",
			geocode.ErrMalformedResponse, city)
	}
	location := geocode.Location{
		Name:      feature.Properties.City,
		Country:   feature.Properties.Country,
		Latitude:  feature.Geometry.Coordinates[1],
		Longitude: feature.Geometry.Coordinates[0],
	}
	if location.Name == "" {
		location.Name = feature.Properties.Name
	}
	if location.Name == "" {
		location.Name = feature.Properties.DisplayName
	}

	return location, nil
}
