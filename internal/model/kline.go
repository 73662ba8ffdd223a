package model

import (
	"encoding/json"
	"fmt"
)

// Kline is one candlestick. The exchange sends it as a positional array:
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, trades, ...].
type Kline struct {
	OpenTime    int64
	Open        string
	High        string
	Low         string
	Close       string
	Volume      string
	CloseTime   int64
	QuoteVolume string
	Trades      int64
}

func (k *Kline) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 9 {
		return fmt.Errorf("kline has %d fields, want at least 9", len(raw))
	}

	fields := []struct {
		idx int
		dst any
	}{
		{0, &k.OpenTime},
		{1, &k.Open},
		{2, &k.High},
		{3, &k.Low},
		{4, &k.Close},
		{5, &k.Volume},
		{6, &k.CloseTime},
		{7, &k.QuoteVolume},
		{8, &k.Trades},
	}
	for _, f := range fields {
		if err := json.Unmarshal(raw[f.idx], f.dst); err != nil {
			return fmt.Errorf("kline field %d: %w", f.idx, err)
		}
	}
	return nil
}
