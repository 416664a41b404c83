// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/jackfan/blog/server/request_context"
)

// createTestRequest creates a test HTTP request with request context.
func createTestRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)

	return req.WithContext(request_context.WithRequestContext(req.Context(), req))
}

func TestCatchError_Success(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status": "success"}`))

		return err
	})

	req := createTestRequest(t, "/api/tags")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": "success"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rc := request_context.FromRequest(req)
	assert.NoError(t, rc.RequestError)
	assert.Equal(t, http.StatusOK, rc.StatusCode)
}

func TestCatchError_HandlerError(t *testing.T) {
	t.Parallel()

	testError := errors.New("test handler error")
	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		_, _ = w.Write([]byte("partial output"))

		return testError
	})

	req := createTestRequest(t, "/")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "partial output")
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, "500", doc.Find("#error h1").Text())

	assert.ErrorIs(t, request_context.FromRequest(req).RequestError, testError)
}

func TestCatchError_NotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusNotFound)

		return nil
	})

	req := createTestRequest(t, "/tags/nope")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Not Found")
	assert.Equal(t, http.StatusNotFound, request_context.FromRequest(req).StatusCode)
}

func TestCatchError_HandledErrorStatusIsKept(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		http.Error(w, "slow down", http.StatusTooManyRequests)

		return errors.New("rate limited")
	})

	req := createTestRequest(t, "/")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "slow down\n", rr.Body.String())
}
