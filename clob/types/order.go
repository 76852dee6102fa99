package types

import "math/big"

// UserOrder 用户限价单意图。Price 只在构造阶段存在，
// 换算为 maker/taker 金额后不会进入签名载荷。
type UserOrder struct {
	// TokenID 条件代币资产 ID
	TokenID string

	// Price 订单价格，开区间 (0, 1)
	Price float64

	// Size 条件代币的数量
	Size float64

	// Side 订单方向
	Side Side

	// FeeRateBps 手续费率（基点），可选，缺省时取市场费率
	FeeRateBps *int

	// Nonce 用于链上取消订单的 nonce，可选
	Nonce *int64

	// Expiration 订单过期时间戳（秒），0 表示永不过期，可选
	Expiration *int64

	// Taker 订单接受者地址，零地址表示公开订单，可选
	Taker *string
}

// UserMarketOrder 用户市价单意图
type UserMarketOrder struct {
	// TokenID 条件代币资产 ID
	TokenID string

	// Price 限定价格（可选，缺省时按订单簿估算）
	Price *float64

	// Amount 数量
	// BUY 订单: USDC 金额（名义额）
	// SELL 订单: 份额数量
	Amount float64

	// Side 订单方向
	Side Side

	// FeeRateBps 手续费率（基点），可选
	FeeRateBps *int

	// Nonce 用于链上取消订单的 nonce，可选
	Nonce *int64

	// Taker 订单接受者地址，零地址表示公开订单，可选
	Taker *string

	// OrderType 订单执行类型（仅 FOK 或 FAK）
	OrderType OrderType
}

// SignedOrder 已签名的订单，签名后不可变
type SignedOrder struct {
	Salt          string `json:"salt"`
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"`
	TakerAmount   string `json:"takerAmount"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	Side          Side   `json:"side"`
	SignatureType int    `json:"signatureType"`
	Signature     string `json:"signature"`
}

// NewOrder 提交到交易所的订单信封
type NewOrder struct {
	Order     SignedOrder `json:"order"`
	Owner     string      `json:"owner"`
	OrderType OrderType   `json:"orderType"`
}

// PostOrdersArgs 批量提交订单参数
type PostOrdersArgs struct {
	Order     SignedOrder
	OrderType OrderType
}

// OrderResponse 订单提交响应
type OrderResponse struct {
	Success           bool     `json:"success"`
	ErrorMsg          string   `json:"errorMsg"`
	OrderID           string   `json:"orderID"`
	TransactionHashes []string `json:"transactionsHashes"`
	Status            string   `json:"status"`
	TakingAmount      string   `json:"takingAmount"`
	MakingAmount      string   `json:"makingAmount"`
}

// OpenOrder 开放订单
type OpenOrder struct {
	ID              string   `json:"id"`
	Status          string   `json:"status"`
	Owner           string   `json:"owner"`
	MakerAddress    string   `json:"maker_address"`
	Market          string   `json:"market"`
	AssetID         string   `json:"asset_id"`
	Side            string   `json:"side"`
	OriginalSize    string   `json:"original_size"`
	SizeMatched     string   `json:"size_matched"`
	Price           string   `json:"price"`
	AssociateTrades []string `json:"associate_trades"`
	Outcome         string   `json:"outcome"`
	CreatedAt       int64    `json:"created_at"`
	Expiration      string   `json:"expiration"`
	OrderType       string   `json:"order_type"`
}

// OpenOrdersAPIResponse API 返回的开放订单响应结构
type OpenOrdersAPIResponse struct {
	Data       []OpenOrder `json:"data"`
	NextCursor string      `json:"next_cursor"`
	Limit      int         `json:"limit"`
	Count      int         `json:"count"`
}

// OpenOrderParams 查询开放订单参数
type OpenOrderParams struct {
	ID      *string
	Market  *string
	AssetID *string
}

// CreateOrderOptions 创建订单选项。显式配置值而非位置参数：
// 未提供的字段按 token 的缓存值解析。
type CreateOrderOptions struct {
	// TickSize 覆盖该 token 的价格精度
	TickSize *TickSize

	// NegRisk 覆盖该 token 的负风险标记
	NegRisk *bool

	// Salt 覆盖随机 salt（确定性测试用）
	Salt *big.Int
}

// OrderMarketCancelParams 按市场取消订单参数
type OrderMarketCancelParams struct {
	Market  *string
	AssetID *string
}

// CancelResponse 取消订单响应
type CancelResponse struct {
	Canceled    []string          `json:"canceled"`
	NotCanceled map[string]string `json:"not_canceled"`
}
