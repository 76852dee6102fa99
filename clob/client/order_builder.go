package client

import (
	"context"
	"math/big"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

// zeroAddress 公开订单的 taker
const zeroAddress = "0x0000000000000000000000000000000000000000"

// orderContext 构造一张订单所需的市场参数
type orderContext struct {
	tickSize types.TickSize
	negRisk  bool
	exchange string
}

// resolveOrderContext 解析 token 的 tick size / 负风险标记并选择
// 交易所合约。选项里显式给出的值优先于缓存。
func (c *Client) resolveOrderContext(ctx context.Context, tokenID string, opts *types.CreateOrderOptions) (*orderContext, error) {
	var (
		tickSize types.TickSize
		negRisk  bool
		err      error
	)

	if opts != nil && opts.TickSize != nil {
		tickSize = *opts.TickSize
	} else {
		tickSize, err = c.GetTickSize(ctx, tokenID)
		if err != nil {
			return nil, err
		}
	}

	if opts != nil && opts.NegRisk != nil {
		negRisk = *opts.NegRisk
	} else {
		negRisk, err = c.GetNegRisk(ctx, tokenID)
		if err != nil {
			return nil, err
		}
	}

	exchange, err := ResolveExchange(c.chainID, negRisk)
	if err != nil {
		return nil, err
	}

	return &orderContext{tickSize: tickSize, negRisk: negRisk, exchange: exchange}, nil
}

// resolveSalt 选项里给出的 salt 优先（确定性测试），否则随机
func resolveSalt(opts *types.CreateOrderOptions) (*big.Int, error) {
	if opts != nil && opts.Salt != nil {
		return opts.Salt, nil
	}
	return signing.RandomSalt()
}

// makerAndSigner 解析订单的 maker/signer 角色。
// EOA 场景两者同为签名地址；代理钱包场景 maker 为资金地址，
// signer 为控制钱包。
func (c *Client) makerAndSigner() (maker, signerAddr string) {
	signerAddr = c.signer.Address().Hex()
	maker = signerAddr
	if c.funderAddress != "" {
		maker = c.funderAddress
	}
	return maker, signerAddr
}

// buildSignedOrder 公共的签名组装路径：限价/市价共用
func (c *Client) buildSignedOrder(
	ctx context.Context,
	octx *orderContext,
	tokenID string,
	side types.Side,
	makerAmount, takerAmount *big.Int,
	feeRateBps int,
	nonce *int64,
	expiration *int64,
	taker *string,
	opts *types.CreateOrderOptions,
) (*types.SignedOrder, error) {
	salt, err := resolveSalt(opts)
	if err != nil {
		return nil, err
	}

	maker, signerAddr := c.makerAndSigner()

	takerAddr := zeroAddress
	if taker != nil && *taker != "" {
		takerAddr = *taker
	}

	var nonceVal, expirationVal int64
	if nonce != nil {
		nonceVal = *nonce
	}
	if expiration != nil {
		expirationVal = *expiration
	}

	tokenIDInt, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return nil, types.NewError(types.ErrUnknownToken, "token ID 不是十进制整数: %q", tokenID)
	}

	data := &signing.OrderData{
		Salt:          salt,
		Maker:         maker,
		Signer:        signerAddr,
		Taker:         takerAddr,
		TokenID:       tokenIDInt,
		MakerAmount:   makerAmount,
		TakerAmount:   takerAmount,
		Expiration:    big.NewInt(expirationVal),
		Nonce:         big.NewInt(nonceVal),
		FeeRateBps:    big.NewInt(int64(feeRateBps)),
		Side:          side,
		SignatureType: c.signatureType,
	}

	sig, err := signing.BuildOrderSignature(ctx, c.signer, c.chainID, octx.exchange, data)
	if err != nil {
		return nil, err
	}

	log.WithField("token_id", tokenID).
		WithField("side", side).
		WithField("maker_amount", makerAmount.String()).
		WithField("taker_amount", takerAmount.String()).
		Debug("订单签名完成")

	return signing.AttachSignature(data, tokenID, sig), nil
}

// CreateOrder 构造并签名一张限价单，不提交。
// 价格校验在任何换算之前完成；吸附方向与 RoundToTick 一致。
func (c *Client) CreateOrder(ctx context.Context, order *types.UserOrder, opts *types.CreateOrderOptions) (*types.SignedOrder, error) {
	if err := c.CanL1Auth(); err != nil {
		return nil, err
	}

	octx, err := c.resolveOrderContext(ctx, order.TokenID, opts)
	if err != nil {
		return nil, err
	}

	price, err := RoundToTick(order.Price, octx.tickSize, order.Side)
	if err != nil {
		return nil, err
	}

	feeRateBps, err := c.resolveFeeRateBps(ctx, order.TokenID, order.FeeRateBps)
	if err != nil {
		return nil, err
	}

	cfg, ok := RoundingConfig[octx.tickSize]
	if !ok {
		return nil, types.NewError(types.ErrInvalidPrice, "不支持的 tick size: %v", octx.tickSize)
	}

	makerAmount, takerAmount, err := AmountsForLimitOrder(order.Side, order.Size, price, cfg, c.sizeDecimals)
	if err != nil {
		return nil, err
	}

	return c.buildSignedOrder(ctx, octx, order.TokenID, order.Side,
		makerAmount, takerAmount, feeRateBps, order.Nonce, order.Expiration, order.Taker, opts)
}

// CreateMarketOrder 构造并签名一张市价单，不提交。
// Price 缺省时按订单簿深度估算（带安全缓冲）。
func (c *Client) CreateMarketOrder(ctx context.Context, order *types.UserMarketOrder, opts *types.CreateOrderOptions) (*types.SignedOrder, error) {
	if err := c.CanL1Auth(); err != nil {
		return nil, err
	}

	orderType := order.OrderType
	if orderType == "" {
		orderType = types.OrderTypeFOK
	}

	octx, err := c.resolveOrderContext(ctx, order.TokenID, opts)
	if err != nil {
		return nil, err
	}

	var price float64
	if order.Price != nil && *order.Price > 0 {
		price = *order.Price
	} else {
		price, err = c.CalculateMarketPrice(ctx, order.TokenID, order.Side, order.Amount, orderType)
		if err != nil {
			return nil, err
		}
	}

	price, err = RoundToTick(price, octx.tickSize, order.Side)
	if err != nil {
		return nil, err
	}

	feeRateBps, err := c.resolveFeeRateBps(ctx, order.TokenID, order.FeeRateBps)
	if err != nil {
		return nil, err
	}

	cfg, ok := RoundingConfig[octx.tickSize]
	if !ok {
		return nil, types.NewError(types.ErrInvalidPrice, "不支持的 tick size: %v", octx.tickSize)
	}

	makerAmount, takerAmount, err := AmountsForMarketOrder(order.Side, order.Amount, price, cfg, c.sizeDecimals)
	if err != nil {
		return nil, err
	}

	return c.buildSignedOrder(ctx, octx, order.TokenID, order.Side,
		makerAmount, takerAmount, feeRateBps, order.Nonce, nil, order.Taker, opts)
}
