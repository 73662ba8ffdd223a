package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 of payload keyed by secretKey.
// An empty payload signs the empty byte sequence.
func Sign(secretKey, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// signRequest builds host+path?payload&signature=hex. The payload is used
// verbatim and the signature is always the last parameter.
func (c *Client) signRequest(endpoint API, request string) string {
	signature := Sign(c.secretKey, request)
	return c.host + endpoint.Path() + "?" + request + "&signature=" + signature
}
