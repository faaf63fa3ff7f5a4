// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package lookup

import (
	"errors"
	"fmt"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/http"
)

// ErrEmptyInput is returned when the city name is empty after trimming. It is not an *Error
// because it never reaches the upstream services.
var ErrEmptyInput = errors.New("city name is empty")

// Kind classifies why a lookup failed.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindTimeout
	KindServiceUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindServiceUnavailable:
		return "service_unavailable"
	default:
		return "unexpected"
	}
}

// Error is a classified lookup failure.
type Error struct {
	Kind Kind
	// City is the searched name, set for KindNotFound.
	City string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("city %q not found", e.City)
	case KindTimeout:
		return fmt.Sprintf("lookup timed out: %s", e.Err)
	case KindServiceUnavailable:
		return fmt.Sprintf("weather service unavailable: %s", e.Err)
	default:
		return fmt.Sprintf("unexpected lookup failure: %s", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the upstream error text. Only KindUnexpected exposes it to users.
func (e *Error) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// classify maps an error of a geocoder or weather provider to an *Error.
func classify(err error, city string) *Error {
	var lookupErr *Error
	switch {
	case errors.As(err, &lookupErr):
		return lookupErr
	case errors.Is(err, geocode.ErrNotFound):
		return &Error{Kind: KindNotFound, City: city, Err: err}
	case errors.Is(err, http.ErrTimeout):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.Is(err, http.ErrUnavailable):
		return &Error{Kind: KindServiceUnavailable, Err: err}
	default:
		return &Error{Kind: KindUnexpected, Err: err}
	}
}
