package types

// MarketPrice 市场价格
type MarketPrice struct {
	Price string `json:"price"`
}

// MidpointResponse 中间价响应
type MidpointResponse struct {
	Mid string `json:"mid"`
}

// OrderBookSummary 订单簿快照。bids 按价格降序、asks 按价格升序，
// 估价器只读消费，核心不做任何修改。
type OrderBookSummary struct {
	Market       string         `json:"market"`
	AssetID      string         `json:"asset_id"`
	Timestamp    string         `json:"timestamp"`
	Bids         []OrderSummary `json:"bids"`
	Asks         []OrderSummary `json:"asks"`
	MinOrderSize string         `json:"min_order_size"`
	TickSize     string         `json:"tick_size"`
	NegRisk      bool           `json:"neg_risk"`
	Hash         string         `json:"hash"`
}

// OrderSummary 订单簿档位
type OrderSummary struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// BookParams 订单簿查询参数
type BookParams struct {
	TokenID string
	Side    Side
}

// TickSizeResponse /tick-size 响应
type TickSizeResponse struct {
	MinimumTickSize string `json:"minimum_tick_size"`
}

// NegRiskResponse /neg-risk 响应
type NegRiskResponse struct {
	NegRisk bool `json:"neg_risk"`
}

// FeeRateResponse /fee-rate 响应
type FeeRateResponse struct {
	MakerBaseFeeRateBps int `json:"makerBaseFeeRateBps"`
}

// ServerTimeResponse /time 响应（unix 秒）
type ServerTimeResponse int64

// Trade 交易记录
type Trade struct {
	ID              string `json:"id"`
	TakerOrderID    string `json:"taker_order_id"`
	Market          string `json:"market"`
	AssetID         string `json:"asset_id"`
	Side            Side   `json:"side"`
	Size            string `json:"size"`
	FeeRateBps      string `json:"fee_rate_bps"`
	Price           string `json:"price"`
	Status          string `json:"status"`
	MatchTime       string `json:"match_time"`
	LastUpdate      string `json:"last_update"`
	Outcome         string `json:"outcome"`
	Owner           string `json:"owner"`
	MakerAddress    string `json:"maker_address"`
	TransactionHash string `json:"transaction_hash"`
	TraderSide      string `json:"trader_side"` // "TAKER" | "MAKER"
}

// TradeParams 交易查询参数
type TradeParams struct {
	ID           *string
	MakerAddress *string
	Market       *string
	AssetID      *string
	Before       *string
	After        *string
}

// PaginationPayload 分页载荷
type PaginationPayload struct {
	Limit      int         `json:"limit"`
	Count      int         `json:"count"`
	NextCursor string      `json:"next_cursor"`
	Data       interface{} `json:"data"`
}

// 分页游标常量
const (
	InitialCursor = "MA=="
	EndCursor     = "LTE="
)

// MarketToken 市场下的单个 outcome token
type MarketToken struct {
	TokenID string  `json:"token_id"`
	Outcome string  `json:"outcome"`
	Price   float64 `json:"price"`
	Winner  bool    `json:"winner"`
}

// Market 单个市场的元数据（/markets/<condition_id> 响应）
type Market struct {
	ConditionID      string        `json:"condition_id"`
	QuestionID       string        `json:"question_id"`
	Question         string        `json:"question"`
	Description      string        `json:"description"`
	MarketSlug       string        `json:"market_slug"`
	EndDateISO       string        `json:"end_date_iso"`
	MinimumOrderSize string        `json:"minimum_order_size"`
	MinimumTickSize  string        `json:"minimum_tick_size"`
	Active           bool          `json:"active"`
	Closed           bool          `json:"closed"`
	Archived         bool          `json:"archived"`
	AcceptingOrders  bool          `json:"accepting_orders"`
	EnableOrderBook  bool          `json:"enable_order_book"`
	NegRisk          bool          `json:"neg_risk"`
	Tokens           []MarketToken `json:"tokens"`
}

// BalanceAllowanceParams 余额/授权查询参数。
// COLLATERAL 查 USDC，CONDITIONAL 需带 token_id。
type BalanceAllowanceParams struct {
	AssetType AssetType
	TokenID   string
}

// BalanceAllowanceResponse /balance-allowance 响应（最小单位字符串）
type BalanceAllowanceResponse struct {
	Balance   string `json:"balance"`
	Allowance string `json:"allowance"`
}
