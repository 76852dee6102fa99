package stream

import "github.com/betbot/goclob/clob/types"

// MarketWebSocketURL CLOB 行情推送通道
const MarketWebSocketURL = "wss://ws-subscriptions-clob.polymarket.com/ws/market"

// 行情通道事件类型
const (
	EventTypeBook           = "book"
	EventTypePriceChange    = "price_change"
	EventTypeTickSizeChange = "tick_size_change"
	EventTypeLastTradePrice = "last_trade_price"
)

// subscribeMessage 行情通道订阅消息
type subscribeMessage struct {
	AssetIDs []string `json:"assets_ids"`
	Type     string   `json:"type"`
}

// BookEvent 订单簿快照事件（完整快照，非增量）
type BookEvent struct {
	EventType string               `json:"event_type"`
	AssetID   string               `json:"asset_id"`
	Market    string               `json:"market"`
	Timestamp string               `json:"timestamp"`
	Hash      string               `json:"hash"`
	Bids      []types.OrderSummary `json:"bids"`
	Asks      []types.OrderSummary `json:"asks"`
}

// Summary 转换为 REST 侧的订单簿快照结构，可直接喂给估价器
func (e *BookEvent) Summary() *types.OrderBookSummary {
	return &types.OrderBookSummary{
		Market:    e.Market,
		AssetID:   e.AssetID,
		Timestamp: e.Timestamp,
		Hash:      e.Hash,
		Bids:      e.Bids,
		Asks:      e.Asks,
	}
}

// PriceLevelChange 单个档位变化
type PriceLevelChange struct {
	Price string `json:"price"`
	Side  string `json:"side"`
	Size  string `json:"size"`
}

// PriceChangeEvent 档位增量事件
type PriceChangeEvent struct {
	EventType string             `json:"event_type"`
	AssetID   string             `json:"asset_id"`
	Market    string             `json:"market"`
	Timestamp string             `json:"timestamp"`
	Changes   []PriceLevelChange `json:"changes"`
}

// TickSizeChangeEvent tick size 变化事件
type TickSizeChangeEvent struct {
	EventType   string `json:"event_type"`
	AssetID     string `json:"asset_id"`
	Market      string `json:"market"`
	OldTickSize string `json:"old_tick_size"`
	NewTickSize string `json:"new_tick_size"`
	Timestamp   string `json:"timestamp"`
}

// LastTradePriceEvent 最近成交价事件
type LastTradePriceEvent struct {
	EventType string `json:"event_type"`
	AssetID   string `json:"asset_id"`
	Market    string `json:"market"`
	Price     string `json:"price"`
	Side      string `json:"side"`
	Size      string `json:"size"`
	Timestamp string `json:"timestamp"`
}

// Handlers 事件回调。为 nil 的回调直接跳过。
// 回调在读取 goroutine 里同步执行，耗时处理请自行异步化。
type Handlers struct {
	OnBook           func(*BookEvent)
	OnPriceChange    func(*PriceChangeEvent)
	OnTickSizeChange func(*TickSizeChangeEvent)
	OnLastTradePrice func(*LastTradePriceEvent)
}
