package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/adshao/go-binance/v2/common"
)

// handler reads the response body and maps it to v or to a classified error.
func handler(resp *http.Response, endpoint API, v any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read", Endpoint: endpoint.String(), Err: err}
	}
	return classify(resp.StatusCode, body, v)
}

// classify is the single place where status codes become results.
func classify(status int, body []byte, v any) error {
	switch status {
	case http.StatusOK:
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(body, v); err != nil {
			return &DecodeError{TypeName: fmt.Sprintf("%T", v), Body: snippet(body), Err: err}
		}
		return nil
	case http.StatusInternalServerError:
		return ErrServerError
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest:
		var apiErr common.APIError
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return &DecodeError{TypeName: "common.APIError", Body: snippet(body), Err: err}
		}
		return &ExchangeError{Code: apiErr.Code, Message: apiErr.Message}
	default:
		return &UnexpectedStatusError{Code: status}
	}
}
