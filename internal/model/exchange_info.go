package model

import "github.com/adshao/go-binance/v2/futures"

// ExchangeInfo is the response of /fapi/v1/exchangeInfo.
type ExchangeInfo = futures.ExchangeInfo

// Symbol is a single contract's trading rules inside ExchangeInfo.
type Symbol = futures.Symbol

// RateLimit is one entry of ExchangeInfo.RateLimits.
type RateLimit = futures.RateLimit
