package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexSignature = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestSignKnownVector(t *testing.T) {
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	payload := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"

	assert.Equal(t, "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71", Sign(secret, payload))
}

func TestSignEmptyKeyAndPayload(t *testing.T) {
	assert.Equal(t, "b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad", Sign("", ""))
}

func TestSignIsDeterministic(t *testing.T) {
	payload := "symbol=BTCUSDT&timestamp=1"
	first := Sign("abc", payload)

	assert.Equal(t, first, Sign("abc", payload))
	assert.Regexp(t, hexSignature, first)
	assert.NotEqual(t, first, Sign("abc", "symbol=BTCUSDT&timestamp=2"))
	assert.NotEqual(t, first, Sign("abd", payload))
}

func TestSignRequest(t *testing.T) {
	c, err := NewClient("", "abc", "https://api.example.com", "")
	require.NoError(t, err)

	payload := "symbol=BTCUSDT&timestamp=1"
	assert.Equal(t,
		"https://api.example.com/fapi/v1/order?"+payload+"&signature="+Sign("abc", payload),
		c.signRequest(FuturesOrder, payload),
	)
}

func TestSignRequestWithoutPayload(t *testing.T) {
	c, err := NewClient("", "abc", "https://api.example.com", "")
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("abc"))
	want := "&signature=" + hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, "https://api.example.com/fapi/v2/balance?"+want, c.signRequest(FuturesBalance, ""))
}
