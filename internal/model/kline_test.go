package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKlineUnmarshal(t *testing.T) {
	data := `[1499040000000,"0.01634790","0.80000000","0.01575800","0.01577100","148976.11427815",1499644799999,"2434.19055334",308,"1756.87402397","28.46694368","17928899.62484339"]`

	var k Kline
	require.NoError(t, json.Unmarshal([]byte(data), &k))
	assert.Equal(t, Kline{
		OpenTime:    1499040000000,
		Open:        "0.01634790",
		High:        "0.80000000",
		Low:         "0.01575800",
		Close:       "0.01577100",
		Volume:      "148976.11427815",
		CloseTime:   1499644799999,
		QuoteVolume: "2434.19055334",
		Trades:      308,
	}, k)
}

func TestKlineUnmarshalRejectsShortRow(t *testing.T) {
	var k Kline
	assert.Error(t, json.Unmarshal([]byte(`[1499040000000,"0.1"]`), &k))
}

func TestKlineUnmarshalRejectsWrongType(t *testing.T) {
	var k Kline
	assert.Error(t, json.Unmarshal([]byte(`["soon","0.1","0.1","0.1","0.1","1",1,"1",1]`), &k))
}
