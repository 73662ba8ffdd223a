package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"binance-futures-client/internal/model"
)

// FuturesMarket wraps public market data reads.
type FuturesMarket struct {
	Client *Client
}

// Klines returns up to limit candles; a limit of zero leaves the exchange
// default in place.
func (m *FuturesMarket) Klines(ctx context.Context, symbol, interval string, limit int) ([]model.Kline, error) {
	params := url.Values{}
	params.Add("symbol", strings.ToUpper(symbol))
	params.Add("interval", interval)
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	var klines []model.Kline
	if err := m.Client.Get(ctx, FuturesKlines, params.Encode(), &klines); err != nil {
		return nil, err
	}
	return klines, nil
}

func (m *FuturesMarket) BookTicker(ctx context.Context, symbol string) (*model.BookTicker, error) {
	params := url.Values{}
	params.Add("symbol", strings.ToUpper(symbol))

	var ticker model.BookTicker
	if err := m.Client.Get(ctx, FuturesBookTicker, params.Encode(), &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}
