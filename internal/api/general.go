package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"binance-futures-client/internal/model"
)

// FuturesGeneral wraps the connectivity and exchange metadata endpoints.
type FuturesGeneral struct {
	Client *Client
}

// Ping tests connectivity and returns the round-trip time.
func (g *FuturesGeneral) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	var empty model.Empty
	if err := g.Client.Get(ctx, FuturesPing, "", &empty); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// ServerTime returns the exchange clock in milliseconds since the epoch.
func (g *FuturesGeneral) ServerTime(ctx context.Context) (*model.ServerTime, error) {
	var st model.ServerTime
	if err := g.Client.Get(ctx, FuturesTime, "", &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// ExchangeInfo returns the current trading rules and symbol information.
func (g *FuturesGeneral) ExchangeInfo(ctx context.Context) (*model.ExchangeInfo, error) {
	var info model.ExchangeInfo
	if err := g.Client.Get(ctx, FuturesExchangeInfo, "", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SymbolInfo looks symbol up in the exchange information. The lookup is
// case-insensitive.
func (g *FuturesGeneral) SymbolInfo(ctx context.Context, symbol string) (*model.Symbol, error) {
	info, err := g.ExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}

	upper := strings.ToUpper(symbol)
	for i := range info.Symbols {
		if info.Symbols[i].Symbol == upper {
			return &info.Symbols[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, upper)
}
