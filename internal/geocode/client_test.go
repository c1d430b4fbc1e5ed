package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestForward_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "Badelles Hills, Iligan City" {
			t.Fatalf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"8.2280","lon":"124.2452","display_name":"Badelles Hills, Iligan City, Lanao del Norte"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	loc, err := client.Forward(context.Background(), "Badelles Hills, Iligan City")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Coordinates.Lat != 8.2280 || loc.Coordinates.Lon != 124.2452 {
		t.Fatalf("unexpected coordinates %+v", loc.Coordinates)
	}
	if loc.Address == "" {
		t.Fatal("expected canonical address")
	}
}

func TestForward_EmptyResultIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Forward(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestForward_ServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Forward(context.Background(), "Iligan City")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestForward_NetworkErrorIsUnavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.Forward(context.Background(), "Iligan City")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestReverse_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"lat":"8.2280","lon":"124.2452","display_name":"Pedro Permites Rd, Iligan City"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	address, err := client.Reverse(context.Background(), 8.2280, 124.2452)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address != "Pedro Permites Rd, Iligan City" {
		t.Fatalf("unexpected address %q", address)
	}
}

func TestReverse_EmptyDisplayNameIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Reverse(context.Background(), 0, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAutocomplete_SkipsUnparseableCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat":"8.22","lon":"124.24","display_name":"Iligan City"},
			{"lat":"bad","lon":"124.25","display_name":"Broken"},
			{"lat":"8.25","lon":"124.25","display_name":"Tibanga, Iligan City"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	results, err := client.Autocomplete(context.Background(), "Iligan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 parseable candidates, got %d", len(results))
	}
	if results[0].Address != "Iligan City" {
		t.Fatalf("candidate order not preserved: %q", results[0].Address)
	}
}
