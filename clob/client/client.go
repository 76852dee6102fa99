package client

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/ratelimit"
)

var log = logrus.WithField("module", "clob")

// Client CLOB 客户端。tick/负风险/费率缓存和凭证由实例持有，
// 随客户端创建和销毁；除此之外所有操作无共享可变状态，
// 可以在并发请求上下文中任意调用。
type Client struct {
	host    string
	chainID types.Chain

	signer  signing.Signer       // 可为 nil（纯公开数据客户端）
	creds   *types.ApiKeyCreds   // 可为 nil（无 L2 能力）
	builder *types.BuilderConfig // 可为 nil

	signatureType types.SignatureType
	funderAddress string // 资金地址（代理/合约钱包场景的 maker）

	useServerTime  bool
	priceBufferBps int64
	sizeDecimals   int32 // 条件代币精度

	httpClient *httpClient
	cache      *marketCache
	limiter    *ratelimit.Manager
}

// Option 客户端可选配置
type Option func(*Client)

// WithCreds 配置 L2 API 凭证
func WithCreds(creds *types.ApiKeyCreds) Option {
	return func(c *Client) { c.creds = creds }
}

// WithBuilderConfig 配置 Builder 计划凭证
func WithBuilderConfig(builder *types.BuilderConfig) Option {
	return func(c *Client) { c.builder = builder }
}

// WithSignatureType 配置签名类型（默认 EOA）
func WithSignatureType(sigType types.SignatureType) Option {
	return func(c *Client) { c.signatureType = sigType }
}

// WithFunderAddress 配置资金地址。代理钱包（PolyProxy/GnosisSafe）
// 场景下 maker 为资金地址，signer 为控制钱包。
func WithFunderAddress(funder string) Option {
	return func(c *Client) { c.funderAddress = funder }
}

// WithServerTime 认证时间戳改用交易所服务器时间
func WithServerTime() Option {
	return func(c *Client) { c.useServerTime = true }
}

// WithPriceBufferBps 覆盖市价估算的安全缓冲（基点）
func WithPriceBufferBps(bps int64) Option {
	return func(c *Client) { c.priceBufferBps = bps }
}

// WithSizeDecimals 覆盖条件代币精度（默认 6）
func WithSizeDecimals(decimals int32) Option {
	return func(c *Client) { c.sizeDecimals = decimals }
}

// NewClient 创建 CLOB 客户端。
// signer 为 nil 时只能访问公开数据端点。
func NewClient(host string, chainID types.Chain, signer signing.Signer, opts ...Option) *Client {
	c := &Client{
		host:           strings.TrimSuffix(host, "/"),
		chainID:        chainID,
		signer:         signer,
		signatureType:  types.SignatureTypeEOA,
		priceBufferBps: DefaultPriceBufferBps,
		sizeDecimals:   ConditionalTokenDecimals,
		httpClient:     newHTTPClient(host),
		cache:          newMarketCache(),
		limiter:        ratelimit.NewManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetHost 获取主机地址
func (c *Client) GetHost() string {
	return c.host
}

// GetChainID 获取链 ID
func (c *Client) GetChainID() types.Chain {
	return c.chainID
}

// SetCreds 设置 L2 凭证（通常在 CreateOrDeriveAPIKey 之后调用）
func (c *Client) SetCreds(creds *types.ApiKeyCreds) {
	c.creds = creds
}
