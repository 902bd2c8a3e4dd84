package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func getReq(url string) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	}
}

func TestFetch_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.Client(), getReq(srv.URL))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("body = %q", body)
	}
}

func TestFetch_NonSuccessStatusFailsWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.Client(), getReq(srv.URL))
	if err == nil {
		t.Fatal("expected error on HTTP 502")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on status errors)", n)
	}
}

func TestFetch_RetriesOnTimeout(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			time.Sleep(200 * time.Millisecond)
			return
		}
		_, _ = w.Write([]byte("late but fine"))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	body, err := Fetch(context.Background(), client, getReq(srv.URL))
	if err != nil {
		t.Fatalf("Fetch after retries: %v", err)
	}
	if string(body) != "late but fine" {
		t.Errorf("body = %q", body)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server saw %d calls, want 3", n)
	}
}

func TestFetch_GivesUpAfterThreeAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	if _, err := Fetch(context.Background(), client, getReq(srv.URL)); err == nil {
		t.Fatal("expected error when every attempt times out")
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server saw %d calls, want 3", n)
	}
}

func TestFetch_RequestBuildErrorIsTerminal(t *testing.T) {
	boom := errors.New("cannot build request")
	_, err := Fetch(context.Background(), http.DefaultClient, func() (*http.Request, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped build error", err)
	}
}

func TestFetch_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, err := Fetch(ctx, srv.Client(), getReq(srv.URL)); err == nil {
		t.Error("expected error when the context deadline expires")
	}
}
