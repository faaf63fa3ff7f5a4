// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"runtime"
	"time"

	"github.com/wneessen/cityweather/internal/logger"
)

const (
	// maxErrorBody limits how much of a non-2xx response body is kept for the error message
	maxErrorBody = 512
)

var (
	// version is the version of the application (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent that the HTTP client sends with API requests
	UserAgent = fmt.Sprintf("Mozilla/5.0 (%s; %s) cityweather/%s (+https://github.com/wneessen/cityweather/)",
		runtime.GOOS,
		runtime.GOARCH,
		version,
	)

	ErrNonPointerTarget = errors.New("target must be a non-nil pointer")

	// ErrTimeout is wrapped into every error caused by a request running out of time.
	ErrTimeout = errors.New("request timed out")

	// ErrUnavailable is wrapped into every error caused by a failed transport, a non-2xx
	// response or a response body that is not valid JSON.
	ErrUnavailable = errors.New("service unavailable")
)

// StatusError is returned when the remote API answers with a non-2xx status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned non-positive response code: %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned non-positive response code: %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is match a StatusError against ErrUnavailable.
func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// Client is a type wrapper for the Go stdlib http.Client and the Config
type Client struct {
	*http.Client
	logger *logger.Logger
}

// New returns a new HTTP client. The client itself has no timeout, every call is bounded
// by the timeout passed to GetWithTimeout.
func New(logger *logger.Logger) *Client {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	httpTransport := &http.Transport{TLSClientConfig: tlsConfig}
	httpClient := &http.Client{Transport: httpTransport}
	return &Client{httpClient, logger}
}

// GetWithTimeout performs a HTTP GET request for the given URL and timeout and JSON-unmarshals
// the response into target. Failures of the request itself are wrapped into ErrTimeout or
// ErrUnavailable so that callers can classify them with errors.Is.
func (h *Client) GetWithTimeout(ctx context.Context, endpoint string, target any, query url.Values, headers map[string]string, timeout time.Duration) (int, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return 0, ErrNonPointerTarget
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Prepare URL and query parameters
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	// Prepare HTTP request
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed create new HTTP request with context: %w", err)
	}
	request.Header.Set("User-Agent", UserAgent)
	request.Header.Set("Accept", "application/json")
	for k, v := range headers {
		request.Header.Set(k, v)
	}

	// Execute HTTP request
	response, err := h.Do(request)
	if err != nil {
		if isTimeout(err) {
			return 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		if errors.Is(err, context.Canceled) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: failed to perform HTTP request: %w", ErrUnavailable, err)
	}
	if response == nil {
		return 0, fmt.Errorf("%w: nil response received", ErrUnavailable)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error("failed to close HTTP request body", logger.Err(err))
		}
	}(response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return response.StatusCode, &StatusError{StatusCode: response.StatusCode, Body: string(body)}
	}

	// Unmarshal the JSON API response into target
	if err = json.NewDecoder(response.Body).Decode(target); err != nil {
		if isTimeout(err) {
			return response.StatusCode, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return response.StatusCode, fmt.Errorf("%w: failed to decode JSON: %w", ErrUnavailable, err)
	}

	return response.StatusCode, nil
}

// isTimeout reports whether err was caused by a deadline, either of the context or of the
// underlying network connection.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
