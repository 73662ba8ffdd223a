package api

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"binance-futures-client/internal/model"
)

const defaultRecvWindow = 5000

// FuturesAccount wraps signed account reads.
type FuturesAccount struct {
	Client     *Client
	RecvWindow int64            // milliseconds; zero uses 5000
	Now        func() time.Time // nil uses time.Now
}

func (a *FuturesAccount) Balance(ctx context.Context) ([]model.AccountBalance, error) {
	var balances []model.AccountBalance
	if err := a.Client.GetSigned(ctx, FuturesBalance, a.payload(nil), &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// payload encodes params followed by recvWindow and timestamp.
func (a *FuturesAccount) payload(params url.Values) string {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	recvWindow := a.RecvWindow
	if recvWindow <= 0 {
		recvWindow = defaultRecvWindow
	}

	tail := url.Values{}
	tail.Add("recvWindow", strconv.FormatInt(recvWindow, 10))
	tail.Add("timestamp", strconv.FormatInt(now().UnixMilli(), 10))

	if encoded := params.Encode(); encoded != "" {
		return encoded + "&" + tail.Encode()
	}
	return tail.Encode()
}
