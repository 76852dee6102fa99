package client

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// CanL1Auth 检查是否可以进行 L1 认证（需要签名能力）
func (c *Client) CanL1Auth() error {
	if c.signer == nil {
		return types.NewError(types.ErrSigning, "L1 认证不可用: 未配置签名器")
	}
	return nil
}

// CanL2Auth 检查是否可以进行 L2 认证（需要签名器地址 + API 凭证）。
// 本地校验，在任何网络调用之前失败。
func (c *Client) CanL2Auth() error {
	if err := c.CanL1Auth(); err != nil {
		return err
	}
	if c.creds == nil {
		return types.NewError(types.ErrMissingCredentials, "L2 认证不可用: API 凭证未配置")
	}
	return nil
}

// GetAddress 获取账号地址（签名器地址）
func (c *Client) GetAddress() (common.Address, error) {
	if c.signer == nil {
		return common.Address{}, types.NewError(types.ErrSigning, "未配置签名器，无法获取地址")
	}
	return c.signer.Address(), nil
}

// authTimestamp 认证时间戳。配置了 useServerTime 时取交易所时间，
// 避免本地时钟漂移导致签名被拒。
func (c *Client) authTimestamp(ctx context.Context) (*int64, error) {
	if !c.useServerTime {
		return nil, nil
	}
	ts, err := c.GetServerTime(ctx)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// createL2Headers 为请求描述符生成 L2 认证头
func (c *Client) createL2Headers(ctx context.Context, args *types.L2HeaderArgs) (map[string]string, error) {
	if err := c.CanL2Auth(); err != nil {
		return nil, err
	}
	ts, err := c.authTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	if c.builder != nil {
		headers, err := signing.CreateL2WithBuilderHeaders(c.signer.Address(), c.creds, c.builder, args, ts)
		if err != nil {
			return nil, err
		}
		return headers.ToMap(), nil
	}

	headers, err := signing.CreateL2Headers(c.signer.Address(), c.creds, args, ts)
	if err != nil {
		return nil, err
	}
	return headers.ToMap(), nil
}

// createL1Headers 为密钥生命周期请求生成 L1 认证头
func (c *Client) createL1Headers(ctx context.Context, nonce *int64) (map[string]string, error) {
	if err := c.CanL1Auth(); err != nil {
		return nil, err
	}
	ts, err := c.authTimestamp(ctx)
	if err != nil {
		return nil, err
	}
	headers, err := signing.CreateL1Headers(ctx, c.signer, c.chainID, nonce, ts)
	if err != nil {
		return nil, err
	}
	return headers.ToMap(), nil
}
