// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Geocoder when the search yielded no result.
	ErrNotFound = errors.New("no location found")

	// ErrMalformedResponse is returned by a Geocoder when the API answered with a decodable
	// body that lacks fields we rely on.
	ErrMalformedResponse = errors.New("malformed geocoding API response")
)

// Location is the best match for a searched place name.
type Location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a free-text place name to a Location.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, name string) (Location, error)
}
