package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/ratelimit"
)

// signedBody 把载荷序列化为规范字符串。同一个字符串既参与 HMAC
// 签名又作为请求体发出，保证签名覆盖的字节与线上字节一致。
func signedBody(payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", types.WrapError(types.ErrTransport, err, "序列化请求体失败")
	}
	return string(b), nil
}

// postSigned 带 L2 签名的 POST
func (c *Client) postSigned(ctx context.Context, endpoint string, payload, out any) error {
	body, err := signedBody(payload)
	if err != nil {
		return err
	}
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodPost,
		RequestPath: endpoint,
		Body:        &body,
	})
	if err != nil {
		return err
	}
	return c.httpClient.post(ctx, endpoint, headers, body, out)
}

// deleteSigned 带 L2 签名的 DELETE
func (c *Client) deleteSigned(ctx context.Context, endpoint string, payload, out any) error {
	var bodyPtr *string
	var body any
	if payload != nil {
		s, err := signedBody(payload)
		if err != nil {
			return err
		}
		bodyPtr = &s
		body = s
	}
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodDelete,
		RequestPath: endpoint,
		Body:        bodyPtr,
	})
	if err != nil {
		return err
	}
	return c.httpClient.delete(ctx, endpoint, headers, body, out)
}

// getSigned 带 L2 签名的 GET
func (c *Client) getSigned(ctx context.Context, endpoint string, params map[string]string, out any) error {
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodGet,
		RequestPath: endpoint,
	})
	if err != nil {
		return err
	}
	return c.httpClient.get(ctx, endpoint, headers, params, out)
}

// PostOrder 提交一张已签名订单。Owner 为当前 L2 凭证的 key。
func (c *Client) PostOrder(ctx context.Context, order *types.SignedOrder, orderType types.OrderType) (*types.OrderResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	if orderType == "" {
		orderType = types.OrderTypeGTC
	}

	envelope := types.NewOrder{
		Order:     *order,
		Owner:     c.creds.Key,
		OrderType: orderType,
	}

	var resp types.OrderResponse
	if err := c.postSigned(ctx, EndpointPostOrder, envelope, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		log.WithField("order_id", resp.OrderID).
			WithField("error", resp.ErrorMsg).
			Warn("订单被交易所拒绝")
	}
	return &resp, nil
}

// PostOrders 批量提交已签名订单
func (c *Client) PostOrders(ctx context.Context, args []types.PostOrdersArgs) ([]types.OrderResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	envelopes := make([]types.NewOrder, 0, len(args))
	for _, a := range args {
		orderType := a.OrderType
		if orderType == "" {
			orderType = types.OrderTypeGTC
		}
		envelopes = append(envelopes, types.NewOrder{
			Order:     a.Order,
			Owner:     c.creds.Key,
			OrderType: orderType,
		})
	}

	var resp []types.OrderResponse
	if err := c.postSigned(ctx, EndpointPostOrders, envelopes, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateAndPostOrder 构造、签名并提交一张限价单（默认 GTC）
func (c *Client) CreateAndPostOrder(ctx context.Context, order *types.UserOrder, opts *types.CreateOrderOptions, orderType types.OrderType) (*types.OrderResponse, error) {
	signed, err := c.CreateOrder(ctx, order, opts)
	if err != nil {
		return nil, err
	}
	return c.PostOrder(ctx, signed, orderType)
}

// CreateAndPostMarketOrder 构造、签名并提交一张市价单（FOK/FAK）
func (c *Client) CreateAndPostMarketOrder(ctx context.Context, order *types.UserMarketOrder, opts *types.CreateOrderOptions) (*types.OrderResponse, error) {
	signed, err := c.CreateMarketOrder(ctx, order, opts)
	if err != nil {
		return nil, err
	}
	orderType := order.OrderType
	if orderType == "" {
		orderType = types.OrderTypeFOK
	}
	return c.PostOrder(ctx, signed, orderType)
}

// CancelOrder 取消单张订单
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*types.CancelResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	var resp types.CancelResponse
	payload := map[string]string{"orderID": orderID}
	if err := c.deleteSigned(ctx, EndpointCancelOrder, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelOrders 批量取消订单
func (c *Client) CancelOrders(ctx context.Context, orderIDs []string) (*types.CancelResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	var resp types.CancelResponse
	if err := c.deleteSigned(ctx, EndpointCancelOrders, orderIDs, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelAll 取消当前账号的全部开放订单
func (c *Client) CancelAll(ctx context.Context) (*types.CancelResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	var resp types.CancelResponse
	if err := c.deleteSigned(ctx, EndpointCancelAll, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelMarketOrders 按市场/资产取消订单
func (c *Client) CancelMarketOrders(ctx context.Context, params *types.OrderMarketCancelParams) (*types.CancelResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassOrder); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	payload := map[string]string{}
	if params != nil {
		if params.Market != nil {
			payload["market"] = *params.Market
		}
		if params.AssetID != nil {
			payload["asset_id"] = *params.AssetID
		}
	}

	var resp types.CancelResponse
	if err := c.deleteSigned(ctx, EndpointCancelMarketOrders, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder 查询单张订单
func (c *Client) GetOrder(ctx context.Context, orderID string) (*types.OpenOrder, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	var order types.OpenOrder
	if err := c.getSigned(ctx, EndpointGetOrder+orderID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOpenOrders 查询开放订单（单页）
func (c *Client) GetOpenOrders(ctx context.Context, params *types.OpenOrderParams, nextCursor string) (*types.OpenOrdersAPIResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	if nextCursor == "" {
		nextCursor = types.InitialCursor
	}
	query := map[string]string{"next_cursor": nextCursor}
	if params != nil {
		if params.ID != nil {
			query["id"] = *params.ID
		}
		if params.Market != nil {
			query["market"] = *params.Market
		}
		if params.AssetID != nil {
			query["asset_id"] = *params.AssetID
		}
	}

	var resp types.OpenOrdersAPIResponse
	if err := c.getSigned(ctx, EndpointGetOpenOrders, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTrades 查询成交记录（单页）
func (c *Client) GetTrades(ctx context.Context, params *types.TradeParams, nextCursor string) (*types.PaginationPayload, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	if nextCursor == "" {
		nextCursor = types.InitialCursor
	}
	query := map[string]string{"next_cursor": nextCursor}
	if params != nil {
		if params.ID != nil {
			query["id"] = *params.ID
		}
		if params.MakerAddress != nil {
			query["maker_address"] = *params.MakerAddress
		}
		if params.Market != nil {
			query["market"] = *params.Market
		}
		if params.AssetID != nil {
			query["asset_id"] = *params.AssetID
		}
		if params.Before != nil {
			query["before"] = *params.Before
		}
		if params.After != nil {
			query["after"] = *params.After
		}
	}

	var page types.PaginationPayload
	if err := c.getSigned(ctx, EndpointGetTrades, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBalanceAllowance 查询余额与授权额度。
// COLLATERAL 查 USDC，CONDITIONAL 必须带 token_id。
func (c *Client) GetBalanceAllowance(ctx context.Context, params *types.BalanceAllowanceParams) (*types.BalanceAllowanceResponse, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx, ratelimit.ClassData); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}

	query := map[string]string{"asset_type": string(types.AssetTypeCollateral)}
	if params != nil {
		if params.AssetType != "" {
			query["asset_type"] = string(params.AssetType)
		}
		if params.TokenID != "" {
			query["token_id"] = params.TokenID
		}
	}

	var resp types.BalanceAllowanceResponse
	if err := c.getSigned(ctx, EndpointGetBalanceAllowance, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
