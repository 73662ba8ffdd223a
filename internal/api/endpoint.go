package api

// API identifies one exchange operation. The set is closed: only the
// families declared in this package implement it.
type API interface {
	// Path returns the URL path of the endpoint, e.g. /fapi/v1/ping.
	Path() string
	String() string
	family() string
}

// Futures enumerates the USDⓈ-M futures endpoints.
type Futures int

const (
	FuturesPing Futures = iota
	FuturesTime
	FuturesExchangeInfo
	FuturesDepth
	FuturesTrades
	FuturesHistoricalTrades
	FuturesAggTrades
	FuturesKlines
	FuturesContinuousKlines
	FuturesPremiumIndex
	FuturesFundingRate
	FuturesTicker24hr
	FuturesTickerPrice
	FuturesBookTicker
	FuturesOpenInterest
	FuturesOrder
	FuturesOpenOrders
	FuturesAllOrders
	FuturesAccountInfo
	FuturesBalance
	FuturesPositionRisk
	FuturesUserTrades
	FuturesIncome
	FuturesLeverage
	FuturesMarginType
	FuturesPositionSide
	FuturesUserDataStream

	futuresEnd
)

var futuresPaths = [futuresEnd]string{
	FuturesPing:             "/fapi/v1/ping",
	FuturesTime:             "/fapi/v1/time",
	FuturesExchangeInfo:     "/fapi/v1/exchangeInfo",
	FuturesDepth:            "/fapi/v1/depth",
	FuturesTrades:           "/fapi/v1/trades",
	FuturesHistoricalTrades: "/fapi/v1/historicalTrades",
	FuturesAggTrades:        "/fapi/v1/aggTrades",
	FuturesKlines:           "/fapi/v1/klines",
	FuturesContinuousKlines: "/fapi/v1/continuousKlines",
	FuturesPremiumIndex:     "/fapi/v1/premiumIndex",
	FuturesFundingRate:      "/fapi/v1/fundingRate",
	FuturesTicker24hr:       "/fapi/v1/ticker/24hr",
	FuturesTickerPrice:      "/fapi/v1/ticker/price",
	FuturesBookTicker:       "/fapi/v1/ticker/bookTicker",
	FuturesOpenInterest:     "/fapi/v1/openInterest",
	FuturesOrder:            "/fapi/v1/order",
	FuturesOpenOrders:       "/fapi/v1/openOrders",
	FuturesAllOrders:        "/fapi/v1/allOrders",
	FuturesAccountInfo:      "/fapi/v2/account",
	FuturesBalance:          "/fapi/v2/balance",
	FuturesPositionRisk:     "/fapi/v2/positionRisk",
	FuturesUserTrades:       "/fapi/v1/userTrades",
	FuturesIncome:           "/fapi/v1/income",
	FuturesLeverage:         "/fapi/v1/leverage",
	FuturesMarginType:       "/fapi/v1/marginType",
	FuturesPositionSide:     "/fapi/v1/positionSide/dual",
	FuturesUserDataStream:   "/fapi/v1/listenKey",
}

var futuresNames = [futuresEnd]string{
	FuturesPing:             "ping",
	FuturesTime:             "time",
	FuturesExchangeInfo:     "exchangeInfo",
	FuturesDepth:            "depth",
	FuturesTrades:           "trades",
	FuturesHistoricalTrades: "historicalTrades",
	FuturesAggTrades:        "aggTrades",
	FuturesKlines:           "klines",
	FuturesContinuousKlines: "continuousKlines",
	FuturesPremiumIndex:     "premiumIndex",
	FuturesFundingRate:      "fundingRate",
	FuturesTicker24hr:       "ticker24hr",
	FuturesTickerPrice:      "tickerPrice",
	FuturesBookTicker:       "bookTicker",
	FuturesOpenInterest:     "openInterest",
	FuturesOrder:            "order",
	FuturesOpenOrders:       "openOrders",
	FuturesAllOrders:        "allOrders",
	FuturesAccountInfo:      "account",
	FuturesBalance:          "balance",
	FuturesPositionRisk:     "positionRisk",
	FuturesUserTrades:       "userTrades",
	FuturesIncome:           "income",
	FuturesLeverage:         "leverage",
	FuturesMarginType:       "marginType",
	FuturesPositionSide:     "positionSide",
	FuturesUserDataStream:   "userDataStream",
}

func (f Futures) Path() string {
	if f < 0 || f >= futuresEnd {
		return ""
	}
	return futuresPaths[f]
}

func (f Futures) String() string {
	if f < 0 || f >= futuresEnd {
		return "futures.unknown"
	}
	return "futures." + futuresNames[f]
}

func (Futures) family() string { return "futures" }

// Spot enumerates the spot endpoints used alongside futures calls.
type Spot int

const (
	SpotPing Spot = iota
	SpotTime
	SpotExchangeInfo
	SpotDepth
	SpotTickerPrice
	SpotBookTicker
	SpotOrder
	SpotOpenOrders
	SpotAccount
	SpotUserDataStream

	spotEnd
)

var spotPaths = [spotEnd]string{
	SpotPing:           "/api/v3/ping",
	SpotTime:           "/api/v3/time",
	SpotExchangeInfo:   "/api/v3/exchangeInfo",
	SpotDepth:          "/api/v3/depth",
	SpotTickerPrice:    "/api/v3/ticker/price",
	SpotBookTicker:     "/api/v3/ticker/bookTicker",
	SpotOrder:          "/api/v3/order",
	SpotOpenOrders:     "/api/v3/openOrders",
	SpotAccount:        "/api/v3/account",
	SpotUserDataStream: "/api/v3/userDataStream",
}

var spotNames = [spotEnd]string{
	SpotPing:           "ping",
	SpotTime:           "time",
	SpotExchangeInfo:   "exchangeInfo",
	SpotDepth:          "depth",
	SpotTickerPrice:    "tickerPrice",
	SpotBookTicker:     "bookTicker",
	SpotOrder:          "order",
	SpotOpenOrders:     "openOrders",
	SpotAccount:        "account",
	SpotUserDataStream: "userDataStream",
}

func (s Spot) Path() string {
	if s < 0 || s >= spotEnd {
		return ""
	}
	return spotPaths[s]
}

func (s Spot) String() string {
	if s < 0 || s >= spotEnd {
		return "spot.unknown"
	}
	return "spot." + spotNames[s]
}

func (Spot) family() string { return "spot" }
