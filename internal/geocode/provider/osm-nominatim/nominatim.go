// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/http"
)

const (
	APISearchEndpoint = "https://nominatim.openstreetmap.org/search"
	name              = "osm-nominatim"
)

type Nominatim struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	lang     language.Tag
}

type SearchResult struct {
	APILat      string  `json:"lat"`
	APILon      string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

type Address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// New returns the OpenStreetMap Nominatim geocoder. An empty endpoint selects the public API.
func New(client *http.Client, lang language.Tag, endpoint string, timeout time.Duration) *Nominatim {
	if endpoint == "" {
		endpoint = APISearchEndpoint
	}
	return &Nominatim{
		endpoint: endpoint,
		timeout:  timeout,
		lang:     lang,
		http:     client,
	}
}

func (n *Nominatim) Name() string {
	return name
}

func (n *Nominatim) Search(ctx context.Context, city string) (geocode.Location, error) {
	var result []SearchResult
	var err error

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", city)
	query.Set("limit", "1")
	query.Set("addressdetails", "1")
	query.Set("accept-language", n.lang.String())

	if _, err = n.http.GetWithTimeout(ctx, n.endpoint, &result, query, nil, n.timeout); err != nil {
		return geocode.Location{}, fmt.Errorf("failed to fetch address details from Nominatim API: %w", err)
	}
	if len(result) < 1 {
		return geocode.Location{}, fmt.Errorf("%w for %q", geocode.ErrNotFound, city)
	}

	// Fill the geocode.Location struct
	location := geocode.Location{
		Name:    result[0].Name,
		Country: result[0].Address.Country,
	}
	if location.Name == "" {
		location.Name = result[0].Address.City
	}
	if location.Name == "" && result[0].Address.Town != "" {
		location.Name = result[0].Address.Town
	}
	if location.Name == "" && result[0].Address.Village != "" {
		location.Name = result[0].Address.Village
	}
	if location.Name == "" {
		location.Name = result[0].DisplayName
	}
	if location.Name == "" {
		return geocode.Location{}, fmt.Errorf("%w: result for %q has no name", geocode.ErrMalformedResponse, city)
	}
	location.Latitude, err = strconv.ParseFloat(result[0].APILat, 64)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("%w: failed to parse latitude from Nominatim API response: %w",
			geocode.ErrMalformedResponse, err)
	}
	location.Longitude, err = strconv.ParseFloat(result[0].APILon, 64)
	if err != nil {
		return geocode.Location{}, fmt.Errorf("%w: failed to parse longitude from Nominatim API response: %w",
			geocode.ErrMalformedResponse, err)
	}

	return location, nil
}
