package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/ratelimit"
)

// validateCreds 交易所返回的凭证 key 必须是合法 UUID，
// 否则视为响应损坏，不能直接拿去做 L2 签名。
func validateCreds(raw *types.ApiKeyRaw) (*types.ApiKeyCreds, error) {
	if _, err := uuid.Parse(raw.ApiKey); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "交易所返回的 API key 不是合法 UUID: %q", raw.ApiKey)
	}
	if raw.Secret == "" || raw.Passphrase == "" {
		return nil, types.NewError(types.ErrTransport, "交易所返回的凭证缺少 secret 或 passphrase")
	}
	return &types.ApiKeyCreds{
		Key:        raw.ApiKey,
		Secret:     raw.Secret,
		Passphrase: raw.Passphrase,
	}, nil
}

// CreateAPIKey 用 L1 钱包签名创建一组新的 API 凭证。
// 同一 (地址, nonce) 已存在凭证时交易所会拒绝，改用 DeriveAPIKey。
func (c *Client) CreateAPIKey(ctx context.Context, nonce *int64) (*types.ApiKeyCreds, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassAuth); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	headers, err := c.createL1Headers(ctx, nonce)
	if err != nil {
		return nil, err
	}

	var raw types.ApiKeyRaw
	if err := c.httpClient.post(ctx, EndpointCreateAPIKey, headers, nil, &raw); err != nil {
		return nil, err
	}
	return validateCreds(&raw)
}

// DeriveAPIKey 用 L1 钱包签名取回 (地址, nonce) 已存在的凭证。
// 凭证由签名确定性派生，重复调用返回同一组。
func (c *Client) DeriveAPIKey(ctx context.Context, nonce *int64) (*types.ApiKeyCreds, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassAuth); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	headers, err := c.createL1Headers(ctx, nonce)
	if err != nil {
		return nil, err
	}

	var raw types.ApiKeyRaw
	if err := c.httpClient.get(ctx, EndpointDeriveAPIKey, headers, nil, &raw); err != nil {
		return nil, err
	}
	return validateCreds(&raw)
}

// CreateOrDeriveAPIKey 先尝试创建，已存在时回退到派生。
// 两条路径返回的凭证对同一 (地址, nonce) 一致。
func (c *Client) CreateOrDeriveAPIKey(ctx context.Context, nonce *int64) (*types.ApiKeyCreds, error) {
	creds, err := c.CreateAPIKey(ctx, nonce)
	if err == nil {
		return creds, nil
	}
	log.WithField("err", err.Error()).Debug("创建 API key 失败，回退到派生")
	return c.DeriveAPIKey(ctx, nonce)
}

// GetAPIKeys 列出当前地址的所有 API key（L2 认证）
func (c *Client) GetAPIKeys(ctx context.Context) ([]string, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassAuth); err != nil {
		return nil, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodGet,
		RequestPath: EndpointGetAPIKeys,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		ApiKeys []string `json:"apiKeys"`
	}
	if err := c.httpClient.get(ctx, EndpointGetAPIKeys, headers, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ApiKeys, nil
}

// DeleteAPIKey 吊销当前 L2 凭证对应的 API key
func (c *Client) DeleteAPIKey(ctx context.Context) error {
	if err := c.limiter.Wait(ctx, ratelimit.ClassAuth); err != nil {
		return types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodDelete,
		RequestPath: EndpointDeleteAPIKey,
	})
	if err != nil {
		return err
	}
	return c.httpClient.delete(ctx, EndpointDeleteAPIKey, headers, nil, nil)
}

// GetClosedOnlyMode 查询账户是否处于只平仓状态（L2 认证）
func (c *Client) GetClosedOnlyMode(ctx context.Context) (bool, error) {
	if err := c.limiter.Wait(ctx, ratelimit.ClassAuth); err != nil {
		return false, types.WrapError(types.ErrTransport, err, "限速等待被取消")
	}
	headers, err := c.createL2Headers(ctx, &types.L2HeaderArgs{
		Method:      http.MethodGet,
		RequestPath: EndpointClosedOnly,
	})
	if err != nil {
		return false, err
	}

	var resp struct {
		ClosedOnly bool `json:"closed_only"`
	}
	if err := c.httpClient.get(ctx, EndpointClosedOnly, headers, nil, &resp); err != nil {
		return false, err
	}
	return resp.ClosedOnly, nil
}
