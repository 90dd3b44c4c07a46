package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetHtmlBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("<h1>ok</h1>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher().WithClient(srv.Client())

	body, err := f.GetHtmlBytes(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("GetHtmlBytes failed: %v", err)
	}
	if string(body) != "<h1>ok</h1>" {
		t.Errorf("body = %q", body)
	}

	_, err = f.GetHtmlBytes(context.Background(), srv.URL+"/missing")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestGetHtmlBytes_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	f := NewFetcher().WithClient(srv.Client())
	f.maxBytes = 10

	body, err := f.GetHtmlBytes(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetHtmlBytes failed: %v", err)
	}
	if len(body) != 10 {
		t.Errorf("read %d bytes, want 10", len(body))
	}
}

func TestGetHtmlBytes_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFetcher().GetHtmlBytes(ctx, "http://127.0.0.1:1/"); err == nil {
		t.Error("expected error for canceled context")
	}
}
