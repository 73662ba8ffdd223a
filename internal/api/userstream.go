package api

import (
	"context"

	"binance-futures-client/internal/model"
)

// FuturesUserStream manages listen keys for the user data stream.
type FuturesUserStream struct {
	Client *Client
}

// Start creates a listen key, or returns the active one.
func (s *FuturesUserStream) Start(ctx context.Context) (string, error) {
	var resp model.ListenKey
	if err := s.Client.Post(ctx, FuturesUserDataStream, &resp); err != nil {
		return "", err
	}
	return resp.ListenKey, nil
}

// KeepAlive extends the validity of listenKey.
func (s *FuturesUserStream) KeepAlive(ctx context.Context, listenKey string) error {
	var empty model.Empty
	return s.Client.Put(ctx, FuturesUserDataStream, listenKey, &empty)
}

func (s *FuturesUserStream) Close(ctx context.Context, listenKey string) error {
	var empty model.Empty
	return s.Client.Delete(ctx, FuturesUserDataStream, listenKey, &empty)
}
