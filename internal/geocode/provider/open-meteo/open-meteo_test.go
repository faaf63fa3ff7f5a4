// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/wneessen/cityweather/internal/geocode"
	"github.com/wneessen/cityweather/internal/http"
	"github.com/wneessen/cityweather/internal/logger"
	"github.com/wneessen/cityweather/internal/testhelper"
)

const (
	parisFile         = "../../../../testdata/geocoding_paris.json"
	noCountryFile     = "../../../../testdata/geocoding_nocountry.json"
	emptyFile         = "../../../../testdata/geocoding_empty.json"
	emptyResultsFile  = "../../../../testdata/geocoding_emptyresults.json"
	noCoordinatesFile = "../../../../testdata/geocoding_nocoords.json"
	brokenFile        = "../../../../testdata/broken.json"
)

func TestNew(t *testing.T) {
	t.Run("creating a new provider succeeds", func(t *testing.T) {
		coder := testCoder(t)
		if coder == nil {
			t.Fatal("expected a non-nil geocoder")
		}
		if coder.endpoint != APIEndpoint {
			t.Errorf("expected default endpoint to be %q, got %q", APIEndpoint, coder.endpoint)
		}
	})
	t.Run("provider name is correct", func(t *testing.T) {
		var coder geocode.Geocoder = testCoder(t)
		if coder.Name() != name {
			t.Errorf("expected provider name to be %q, got %q", name, coder.Name())
		}
	})
	t.Run("custom endpoint is used", func(t *testing.T) {
		coder := New(http.New(testLogger()), "https://geo.example.com/search", time.Second)
		if coder.endpoint != "https://geo.example.com/search" {
			t.Errorf("expected custom endpoint, got %q", coder.endpoint)
		}
	})
}

func TestOpenMeteo_Search(t *testing.T) {
	t.Run("searching a city succeeds", func(t *testing.T) {
		var gotReq *stdhttp.Request
		fileFn := testhelper.FileResponder(t, parisFile, 200)
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			gotReq = req
			return fileFn(req)
		}

		coder := testCoderWithRoundtripFunc(t, rtFn)
		loc, err := coder.Search(t.Context(), "paris")
		if err != nil {
			t.Fatalf("failed to search city: %s", err)
		}
		want := geocode.Location{Name: "Paris", Country: "FR", Latitude: 48.85, Longitude: 2.35}
		if loc != want {
			t.Errorf("expected location to be %+v, got %+v", want, loc)
		}

		query := gotReq.URL.Query()
		wantQuery := map[string]string{"name": "paris", "count": "1", "language": "en", "format": "json"}
		for key, val := range wantQuery {
			if query.Get(key) != val {
				t.Errorf("expected query parameter %q to be %q, got %q", key, val, query.Get(key))
			}
		}
		if gotReq.URL.Host != "geocoding-api.open-meteo.com" {
			t.Errorf("expected request to the Open-Meteo geocoding API, got %q", gotReq.URL.Host)
		}
	})
	t.Run("result without country succeeds", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponder(t, noCountryFile, 200))
		loc, err := coder.Search(t.Context(), "antarctica")
		if err != nil {
			t.Fatalf("failed to search city: %s", err)
		}
		if loc.Country != "" {
			t.Errorf("expected country to be empty, got %q", loc.Country)
		}
		if loc.Name != "Antarctica" {
			t.Errorf("expected name to be %q, got %q", "Antarctica", loc.Name)
		}
	})
	t.Run("missing or empty results are not found", func(t *testing.T) {
		for _, file := range []string{emptyFile, emptyResultsFile} {
			coder := testCoderWithRoundtripFunc(t, testhelper.FileResponder(t, file, 200))
			_, err := coder.Search(t.Context(), "atlantis")
			if !errors.Is(err, geocode.ErrNotFound) {
				t.Errorf("expected error to be %s, got %s", geocode.ErrNotFound, err)
			}
		}
	})
	t.Run("result without coordinates is malformed", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponder(t, noCoordinatesFile, 200))
		_, err := coder.Search(t.Context(), "paris")
		if !errors.Is(err, geocode.ErrMalformedResponse) {
			t.Errorf("expected error to be %s, got %s", geocode.ErrMalformedResponse, err)
		}
	})
	t.Run("server error is unavailable", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponder(t, emptyFile, 500))
		_, err := coder.Search(t.Context(), "paris")
		if !errors.Is(err, http.ErrUnavailable) {
			t.Errorf("expected error to be %s, got %s", http.ErrUnavailable, err)
		}
		if errors.Is(err, geocode.ErrNotFound) {
			t.Error("did not expect a not found error")
		}
	})
	t.Run("broken JSON is unavailable", func(t *testing.T) {
		coder := testCoderWithRoundtripFunc(t, testhelper.FileResponder(t, brokenFile, 200))
		_, err := coder.Search(t.Context(), "paris")
		if !errors.Is(err, http.ErrUnavailable) {
			t.Errorf("expected error to be %s, got %s", http.ErrUnavailable, err)
		}
	})
	t.Run("transport timeout is a timeout", func(t *testing.T) {
		rtFn := func(req *stdhttp.Request) (*stdhttp.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		}
		client := http.New(testLogger())
		client.Transport = testhelper.MockRoundTripper{Fn: rtFn}
		coder := New(client, "", time.Millisecond)
		_, err := coder.Search(t.Context(), "paris")
		if !errors.Is(err, http.ErrTimeout) {
			t.Errorf("expected error to be %s, got %s", http.ErrTimeout, err)
		}
	})
	t.Run("searching the online API succeeds", func(t *testing.T) {
		testhelper.PerformIntegrationTests(t)
		coder := New(http.New(testLogger()), "", time.Second*5)
		loc, err := coder.Search(t.Context(), "Berlin")
		if err != nil {
			t.Fatalf("failed to search city: %s", err)
		}
		if loc.Name != "Berlin" {
			t.Errorf("expected name to be %q, got %q", "Berlin", loc.Name)
		}
	})
}

func testLogger() *logger.Logger {
	return logger.NewLogger(slog.LevelDebug, io.Discard)
}

func testCoder(t *testing.T) *OpenMeteo {
	t.Helper()
	return New(http.New(testLogger()), "", time.Second*5)
}

func testCoderWithRoundtripFunc(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) *OpenMeteo {
	t.Helper()
	client := http.New(testLogger())
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	return New(client, "", time.Second*5)
}
