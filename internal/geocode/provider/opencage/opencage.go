// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package opencage

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
	APIEndpoint = "https://api.opencagedata.com/geocode/v1/json"
	name        = "opencage"
)

type OpenCage struct {
	apikey   string
	endpoint string
	timeout  time.Duration
	http     *http.Client
	lang     language.Tag
}

type Response struct {
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
}

type Result struct {
	Components  Components `json:"components"`
	DisplayName string     `json:"formatted"`
	Geometry    *Geometry  `json:"geometry"`
}

type Components struct {
	NomalizedCity string `json:"_normalized_city"`
	City          string `json:"city"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
	State         string `json:"state"`
	Town          string `json:"town"`
	Village       string `json:"village"`
}

type Geometry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// New returns the OpenCage geocoder. An empty endpoint selects the public API.
func New(client *http.Client, lang language.Tag, apikey, endpoint string, timeout time.Duration) *OpenCage {
	if endpoint == "" {
		endpoint = APIEndpoint
	}
	return &OpenCage{
		apikey:   apikey,
		endpoint: endpoint,
		timeout:  timeout,
		lang:     lang,
		http:     client,
	}
}

func (o *OpenCage) Name() string {
	return name
}

func (o *OpenCage) Search(ctx context.Context, city string) (geocode.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("key", o.apikey)
	query.Set("q", city)
	query.Set("limit", "1")
	query.Set("no_annotations", "1")
	query.Set("no_record", "1")
	query.Set("language", o.lang.String())

	if _, err := o.http.GetWithTimeout(ctx, o.endpoint, &response, query, nil, o.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to retrieve location from OpenCage API: %w", err)
	}
	if len(response.Results) < 1 {
		return geocode.Location{}, fmt.Errorf("%w for %q", geocode.ErrNotFound, city)
	}

	result := response.Results[0]
	if result.Geometry == nil {
		return geocode.Location{}, fmt.Errorf("%w: result for %q has no geometry", geocode.ErrMalformedResponse,
			city)
	}
	location := geocode.Location{
		Name:      result.Components.NomalizedCity,
		Country:   result.Components.Country,
		Latitude:  result.Geometry.Lat,
		Longitude: result.Geometry.Lon,
	}
	if location.Name == "" {
		location.Name = result.Components.City
	}
	if location.Name == "" && result.Components.Town != "" {
		location.Name = result.Components.Town
	}
	if location.Name == "" && result.Components.Village != "" {
		location.Name = result.Components.Village
	}
	if location.Name == "" {
		location.Name = result.DisplayName
	}

	return location, nil
}
