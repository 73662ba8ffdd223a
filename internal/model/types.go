package model

// Empty decodes the {} bodies of ping and listen-key keep-alive calls.
type Empty struct{}

type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

type ListenKey struct {
	ListenKey string `json:"listenKey"`
}

// BookTicker is the best bid/ask of a symbol.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
	Time     int64  `json:"time"`
}

// AccountBalance is one asset of /fapi/v2/balance.
type AccountBalance struct {
	AccountAlias       string `json:"accountAlias"`
	Asset              string `json:"asset"`
	Balance            string `json:"balance"`
	CrossWalletBalance string `json:"crossWalletBalance"`
	CrossUnPnl         string `json:"crossUnPnl"`
	AvailableBalance   string `json:"availableBalance"`
	MaxWithdrawAmount  string `json:"maxWithdrawAmount"`
	UpdateTime         int64  `json:"updateTime"`
}
