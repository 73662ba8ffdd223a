package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"binance-futures-client/internal/logger"
)

const DefaultKeepAliveInterval = 30 * time.Minute

// ListenKeyAPI is the listen-key surface a Session drives.
type ListenKeyAPI interface {
	Start(ctx context.Context) (string, error)
	KeepAlive(ctx context.Context, listenKey string) error
	Close(ctx context.Context, listenKey string) error
}

var ErrNotStarted = errors.New("session: listen key not acquired")

// Session sequences one listen key lifecycle: Start, Run (periodic
// keep-alive) and Stop.
type Session struct {
	API      ListenKeyAPI
	Interval time.Duration

	mu        sync.Mutex
	listenKey string
}

func NewSession(api ListenKeyAPI) *Session {
	return &Session{API: api, Interval: DefaultKeepAliveInterval}
}

func (s *Session) Start(ctx context.Context) (string, error) {
	key, err := s.API.Start(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.listenKey = key
	s.mu.Unlock()

	logger.Info("ListenKey acquired")
	return key, nil
}

// ListenKey returns the active key, or "" before Start.
func (s *Session) ListenKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenKey
}

// Run sends a keep-alive every Interval until ctx is done. Failures are
// logged and the next tick tries again.
func (s *Session) Run(ctx context.Context) error {
	key := s.ListenKey()
	if key == "" {
		return ErrNotStarted
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.API.KeepAlive(ctx, key); err != nil {
				logger.Error("Failed to keep alive listen key", "error", err)
			} else {
				logger.Debug("ListenKey KeepAlive sent")
			}
		}
	}
}

// Stop closes the listen key. It is a no-op before Start.
func (s *Session) Stop(ctx context.Context) error {
	s.mu.Lock()
	key := s.listenKey
	s.listenKey = ""
	s.mu.Unlock()

	if key == "" {
		return nil
	}
	logger.Info("Closing listen key")
	return s.API.Close(ctx, key)
}
