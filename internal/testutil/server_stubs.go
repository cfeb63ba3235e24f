package testutil

import (
	"context"
	"errors"
	"net/http"
	"time"

	"league-postseason-service/internal/worker"
)

// ReadyStatus returns a worker status that passes readiness checks.
func ReadyStatus() worker.Status {
	return worker.Status{
		SeasonsResolved: 1,
		LastAttempt:     time.Now(),
		LastSuccess:     time.Now(),
	}
}

// StubWorker implements the server's SeasonWorker for tests.
type StubWorker struct {
	StartCalls   int
	StopCalls    int
	ResolveCalls []int
	Err          error
	ResolveErr   error
	StatusVal    worker.Status
}

func (w *StubWorker) Start(ctx context.Context) {
	_ = ctx
	w.StartCalls++
}

func (w *StubWorker) Stop(ctx context.Context) error {
	_ = ctx
	w.StopCalls++
	return w.Err
}

func (w *StubWorker) Status() worker.Status {
	return w.StatusVal
}

func (w *StubWorker) ResolveSeason(ctx context.Context, season int) error {
	_ = ctx
	w.ResolveCalls = append(w.ResolveCalls, season)
	return w.ResolveErr
}

// StubHTTPServer implements httpServer for tests.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ErrHTTPServer returns an error on ListenAndServe; Shutdown increments a counter.
type ErrHTTPServer struct {
	ShutdownCalls int
}

func (e *ErrHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *ErrHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.ShutdownCalls++
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return ":0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

// CloseableHTTPServer returns ErrServerClosed from ListenAndServe.
type CloseableHTTPServer struct {
	ShutdownCalls int
}

func (c *CloseableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *CloseableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.ShutdownCalls++
	return nil
}

func (c *CloseableHTTPServer) Addr() string {
	return ":0"
}

func (c *CloseableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}
