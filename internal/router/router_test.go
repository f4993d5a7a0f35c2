package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubStore struct{}

func (stubStore) ReadSheet(ctx context.Context, sheetName, rng string) ([][]interface{}, error) {
	return nil, nil
}

func (stubStore) WriteSheet(ctx context.Context, sheetName, rng string, rows [][]interface{}) error {
	return nil
}

func (stubStore) AppendSheet(ctx context.Context, sheetName string, rows [][]interface{}) error {
	return nil
}

func (stubStore) ClearSheet(ctx context.Context, sheetName, rng string) error {
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	mux := New(stubStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", rec.Body.String())
	}
}

func TestEntityRoutesRegistered(t *testing.T) {
	mux := New(stubStore{}, nil)

	for _, path := range []string{"/creators", "/accounts", "/deals"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code == http.StatusNotFound {
			t.Errorf("Expected GET %s to be routed, got 404", path)
		}
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	mux := New(stubStore{}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/creators", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for PATCH, got %d", rec.Code)
	}
}
