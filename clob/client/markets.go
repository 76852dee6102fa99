package client

import (
	"context"

	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/ratelimit"
)

// GetServerTime 获取交易所服务器时间（unix 秒）
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return 0, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var ts int64
	if err := c.httpClient.get(ctx, EndpointTime, nil, nil, &ts); err != nil {
		return 0, err
	}
	return ts, nil
}

// GetOrderBook 获取订单簿快照
func (c *Client) GetOrderBook(ctx context.Context, tokenID string) (*types.OrderBookSummary, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var book types.OrderBookSummary
	err := c.httpClient.get(ctx, EndpointGetOrderBook, nil, map[string]string{"token_id": tokenID}, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetOrderBooks 批量获取订单簿快照
func (c *Client) GetOrderBooks(ctx context.Context, params []types.BookParams) ([]types.OrderBookSummary, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	body := make([]map[string]string, 0, len(params))
	for _, p := range params {
		body = append(body, map[string]string{"token_id": p.TokenID})
	}
	var books []types.OrderBookSummary
	if err := c.httpClient.post(ctx, EndpointGetOrderBooks, nil, body, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetPrice 获取指定方向的最优价
func (c *Client) GetPrice(ctx context.Context, tokenID string, side types.Side) (*types.MarketPrice, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var price types.MarketPrice
	params := map[string]string{"token_id": tokenID, "side": string(side)}
	if err := c.httpClient.get(ctx, EndpointGetPrice, nil, params, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// GetPrices 批量获取最优价。返回 token_id -> side -> 价格
func (c *Client) GetPrices(ctx context.Context, params []types.BookParams) (map[string]map[string]string, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	body := make([]map[string]string, 0, len(params))
	for _, p := range params {
		body = append(body, map[string]string{"token_id": p.TokenID, "side": string(p.Side)})
	}
	var prices map[string]map[string]string
	if err := c.httpClient.post(ctx, EndpointGetPrices, nil, body, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// GetMidpoint 获取中间价
func (c *Client) GetMidpoint(ctx context.Context, tokenID string) (*types.MidpointResponse, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var mid types.MidpointResponse
	if err := c.httpClient.get(ctx, EndpointGetMidpoint, nil, map[string]string{"token_id": tokenID}, &mid); err != nil {
		return nil, err
	}
	return &mid, nil
}

// GetMidpoints 批量获取中间价。返回 token_id -> 中间价
func (c *Client) GetMidpoints(ctx context.Context, params []types.BookParams) (map[string]string, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	body := make([]map[string]string, 0, len(params))
	for _, p := range params {
		body = append(body, map[string]string{"token_id": p.TokenID})
	}
	var mids map[string]string
	if err := c.httpClient.post(ctx, EndpointGetMidpoints, nil, body, &mids); err != nil {
		return nil, err
	}
	return mids, nil
}

// GetLastTradePrice 获取最近成交价
func (c *Client) GetLastTradePrice(ctx context.Context, tokenID string) (*types.MarketPrice, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var price types.MarketPrice
	if err := c.httpClient.get(ctx, EndpointGetLastTradePrice, nil, map[string]string{"token_id": tokenID}, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

// GetMarkets 获取市场列表（单页）。nextCursor 传 types.InitialCursor 开始，
// 返回 types.EndCursor 表示没有更多页。
func (c *Client) GetMarkets(ctx context.Context, nextCursor string) (*types.PaginationPayload, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	if nextCursor == "" {
		nextCursor = types.InitialCursor
	}
	var page types.PaginationPayload
	if err := c.httpClient.get(ctx, EndpointGetMarkets, nil, map[string]string{"next_cursor": nextCursor}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMarket 按 condition_id 获取单个市场的元数据
func (c *Client) GetMarket(ctx context.Context, conditionID string) (*types.Market, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var market types.Market
	if err := c.httpClient.get(ctx, EndpointGetMarket+conditionID, nil, nil, &market); err != nil {
		return nil, err
	}
	return &market, nil
}

// fetchTickSize 从交易所拉取 token 的最小价格增量。
// token 不存在或返回值不可解析时报 UNKNOWN_TOKEN。
func (c *Client) fetchTickSize(ctx context.Context, tokenID string) (types.TickSize, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return "", types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var resp types.TickSizeResponse
	if err := c.httpClient.get(ctx, EndpointGetTickSize, nil, map[string]string{"token_id": tokenID}, &resp); err != nil {
		return "", err
	}
	ts, ok := types.ParseTickSize(resp.MinimumTickSize)
	if !ok {
		return "", types.NewError(types.ErrUnknownToken,
			"token %s 不存在或 tick size 无效: %q", tokenID, resp.MinimumTickSize)
	}
	return ts, nil
}

// fetchNegRisk 从交易所拉取 token 的负风险标记
func (c *Client) fetchNegRisk(ctx context.Context, tokenID string) (bool, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return false, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var resp types.NegRiskResponse
	if err := c.httpClient.get(ctx, EndpointGetNegRisk, nil, map[string]string{"token_id": tokenID}, &resp); err != nil {
		return false, err
	}
	return resp.NegRisk, nil
}

// fetchFeeRate 从交易所拉取 token 的 maker 基础费率（基点）
func (c *Client) fetchFeeRate(ctx context.Context, tokenID string) (int, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return 0, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var resp types.FeeRateResponse
	if err := c.httpClient.get(ctx, EndpointGetFeeRate, nil, map[string]string{"token_id": tokenID}, &resp); err != nil {
		return 0, err
	}
	return resp.MakerBaseFeeRateBps, nil
}

// GetSpread 获取买卖价差
func (c *Client) GetSpread(ctx context.Context, tokenID string) (string, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return "", types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	var resp struct {
		Spread string `json:"spread"`
	}
	if err := c.httpClient.get(ctx, EndpointGetSpreads, nil, map[string]string{"token_id": tokenID}, &resp); err != nil {
		return "", err
	}
	return resp.Spread, nil
}

// resolveFeeRateBps 解析订单费率：用户给的费率不能低于市场费率
func (c *Client) resolveFeeRateBps(ctx context.Context, tokenID string, userFeeRate *int) (int, error) {
	marketRate, err := c.GetFeeRateBps(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	if userFeeRate == nil {
		return marketRate, nil
	}
	if *userFeeRate < marketRate {
		return 0, types.NewError(types.ErrInvalidFeeRate,
			"用户费率 %d 低于市场费率 %d", *userFeeRate, marketRate)
	}
	return *userFeeRate, nil
}
