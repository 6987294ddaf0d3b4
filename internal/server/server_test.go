package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(handler, Options{
		Port:            0,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, logger)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s := newTestServer(t, handler)

	var order []string
	s.OnShutdown("store", func(ctx context.Context) error {
		order = append(order, "store")
		return nil
	})
	s.OnShutdown("metrics", func(ctx context.Context) error {
		order = append(order, "metrics")
		return nil
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("expected body ok, got %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	if strings.Join(order, ",") != "metrics,store" {
		t.Errorf("expected LIFO shutdown order, got %v", order)
	}
}

func TestServer_ShutdownErrorsAreJoined(t *testing.T) {
	s := newTestServer(t, http.NotFoundHandler())

	errStore := errors.New("close failed")
	s.OnShutdown("store", func(ctx context.Context) error { return errStore })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Serve(ctx, ln)
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if !strings.Contains(err.Error(), "store") {
		t.Errorf("expected component name in error, got %q", err.Error())
	}
}

func TestServer_Addr(t *testing.T) {
	s := New(http.NotFoundHandler(), Options{Port: 5000}, slog.Default())
	if s.Addr() != ":5000" {
		t.Errorf("expected :5000, got %s", s.Addr())
	}
}
