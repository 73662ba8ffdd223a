package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binance-futures-client/internal/model"
)

func TestClassifySuccess(t *testing.T) {
	var st model.ServerTime
	err := classify(http.StatusOK, []byte(`{"serverTime": 123456789}`), &st)

	require.NoError(t, err)
	assert.Equal(t, int64(123456789), st.ServerTime)
}

func TestClassifySuccessWithoutTarget(t *testing.T) {
	assert.NoError(t, classify(http.StatusOK, []byte(`not json`), nil))
}

func TestClassifyDecodeError(t *testing.T) {
	var st model.ServerTime
	err := classify(http.StatusOK, []byte(`{"serverTime": "soon"}`), &st)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "*model.ServerTime", decErr.TypeName)
	assert.Equal(t, `{"serverTime": "soon"}`, decErr.Body)
}

func TestClassifyDecodeErrorTruncatesBody(t *testing.T) {
	body := "[" + strings.Repeat("x", 1000)
	err := classify(http.StatusOK, []byte(body), &model.ServerTime{})

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Len(t, decErr.Body, snippetLimit)
}

func TestClassifyExchangeError(t *testing.T) {
	err := classify(http.StatusBadRequest, []byte(`{"code":-1121,"msg":"Invalid symbol."}`), nil)

	var exErr *ExchangeError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, &ExchangeError{Code: -1121, Message: "Invalid symbol."}, exErr)
	assert.True(t, IsExchangeError(err, -1121))
	assert.False(t, IsExchangeError(err, -1100))
}

func TestClassifyMalformedExchangeError(t *testing.T) {
	err := classify(http.StatusBadRequest, []byte(`<html>bad request</html>`), nil)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, decErr.Body, "bad request")
}

func TestClassifyStatusKinds(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusInternalServerError, ErrServerError},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}
	for _, tt := range tests {
		err := classify(tt.status, []byte(`{"code":-1,"msg":"ignored"}`), nil)
		assert.True(t, errors.Is(err, tt.want), "status %d: got %v", tt.status, err)
	}
}

func TestClassifyUnexpectedStatus(t *testing.T) {
	err := classify(http.StatusTeapot, []byte(`{"code":-1003}`), nil)

	var statusErr *UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 418, statusErr.Code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestHandlerReadFailure(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(failingReader{})}
	err := handler(resp, FuturesTime, &model.ServerTime{})

	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "futures.time", trErr.Endpoint)
}
