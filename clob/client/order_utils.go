package client

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/betbot/goclob/clob/types"
)

// RoundConfig 各字段的小数位数
type RoundConfig struct {
	Price  int32 // 价格小数位数
	Size   int32 // 数量小数位数
	Amount int32 // 金额小数位数
}

// RoundingConfig tick size 对应的舍入配置
var RoundingConfig = map[types.TickSize]RoundConfig{
	types.TickSize01:    {Price: 1, Size: 2, Amount: 3},
	types.TickSize001:   {Price: 2, Size: 2, Amount: 4},
	types.TickSize0001:  {Price: 3, Size: 2, Amount: 5},
	types.TickSize00001: {Price: 4, Size: 2, Amount: 6},
}

// 基点分母
var tenThousand = big.NewInt(10000)

// PriceValid 价格必须落在 [tick, 1-tick] 内（开区间 (0,1) 收紧到 tick 边界）
func PriceValid(price float64, tickSize types.TickSize) bool {
	tick := tickSize.Float()
	return price >= tick && price <= 1.0-tick
}

// RoundToTick 把价格吸附到 tick size 的整数倍。
// 买单向下取整（绝不多付），卖单向上取整（绝不贱卖）。
// 对已吸附的价格是幂等的。价格越界返回 INVALID_PRICE。
func RoundToTick(price float64, tickSize types.TickSize, side types.Side) (float64, error) {
	if !PriceValid(price, tickSize) {
		tick := tickSize.Float()
		return 0, types.NewError(types.ErrInvalidPrice,
			"无效价格 %.6f，有效区间 [%v, %v]", price, tick, 1.0-tick)
	}

	p := decimal.NewFromFloat(price)
	tick := decimal.RequireFromString(string(tickSize))

	var snapped decimal.Decimal
	if side == types.SideBuy {
		snapped = p.Div(tick).Floor().Mul(tick)
	} else {
		snapped = p.Div(tick).Ceil().Mul(tick)
	}
	f, _ := snapped.Float64()
	return f, nil
}

// GetOrderRawAmounts 计算限价单的 maker/taker 原始数量（十进制）。
// 买入: maker = price*size (USDC), taker = size (tokens)
// 卖出: maker = size (tokens), taker = price*size (USDC)
func GetOrderRawAmounts(side types.Side, size, price float64, cfg RoundConfig) (rawMaker, rawTaker decimal.Decimal) {
	rawPrice := decimal.NewFromFloat(price).Round(cfg.Price)

	if side == types.SideBuy {
		rawTaker = decimal.NewFromFloat(size).RoundFloor(cfg.Size)
		rawMaker = rawTaker.Mul(rawPrice).Truncate(cfg.Amount)
		return rawMaker, rawTaker
	}

	rawMaker = decimal.NewFromFloat(size).RoundFloor(cfg.Size)
	rawTaker = rawMaker.Mul(rawPrice).Truncate(cfg.Amount)
	return rawMaker, rawTaker
}

// ToTokenUnits 折算为最小整数单位。最终整数转换采用四舍五入
// （decimal.Round 对正数即 round-half-up），之后价格不再进入载荷。
func ToTokenUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Round(0).BigInt()
}

// AmountsForLimitOrder 限价单金额换算，结果为 6 位精度整数单位。
// sizeDecimals 为条件代币精度（默认 6，可配置）。
func AmountsForLimitOrder(side types.Side, size, price float64, cfg RoundConfig, sizeDecimals int32) (makerAmount, takerAmount *big.Int, err error) {
	rawMaker, rawTaker := GetOrderRawAmounts(side, size, price, cfg)

	if side == types.SideBuy {
		makerAmount = ToTokenUnits(rawMaker, CollateralTokenDecimals)
		takerAmount = ToTokenUnits(rawTaker, sizeDecimals)
	} else {
		makerAmount = ToTokenUnits(rawMaker, sizeDecimals)
		takerAmount = ToTokenUnits(rawTaker, CollateralTokenDecimals)
	}

	if makerAmount.Sign() == 0 || takerAmount.Sign() == 0 {
		return nil, nil, types.NewError(types.ErrInvalidSize,
			"数量过小: size=%v price=%v 折算后为零", size, price)
	}
	return makerAmount, takerAmount, nil
}

// AmountsForMarketOrder 市价单金额换算。
// 买入: amount 为 USDC 名义额，按估算价换算份额；
// 卖出: amount 直接为份额数量。
func AmountsForMarketOrder(side types.Side, amount, price float64, cfg RoundConfig, sizeDecimals int32) (makerAmount, takerAmount *big.Int, err error) {
	rawPrice := decimal.NewFromFloat(price).Round(cfg.Price)
	if rawPrice.Sign() <= 0 {
		return nil, nil, types.NewError(types.ErrInvalidPrice, "市价单估算价格无效: %v", price)
	}

	if side == types.SideBuy {
		// maker = USDC 名义额, taker = 名义额/价格 得到的份额
		rawMaker := decimal.NewFromFloat(amount).Round(cfg.Amount)
		rawTaker := rawMaker.Div(rawPrice).RoundFloor(cfg.Size)
		makerAmount = ToTokenUnits(rawMaker, CollateralTokenDecimals)
		takerAmount = ToTokenUnits(rawTaker, sizeDecimals)
	} else {
		// maker = 份额, taker = 份额*价格 得到的 USDC
		rawMaker := decimal.NewFromFloat(amount).RoundFloor(cfg.Size)
		rawTaker := rawMaker.Mul(rawPrice).Truncate(cfg.Amount)
		makerAmount = ToTokenUnits(rawMaker, sizeDecimals)
		takerAmount = ToTokenUnits(rawTaker, CollateralTokenDecimals)
	}

	if makerAmount.Sign() == 0 || takerAmount.Sign() == 0 {
		return nil, nil, types.NewError(types.ErrInvalidSize,
			"数量过小: amount=%v price=%v 折算后为零", amount, price)
	}
	return makerAmount, takerAmount, nil
}

// ApplyFee 按基点扣除手续费，整数乘法后截断。
// net = amount * (10000 - bps) / 10000，截断方向保证不向 taker 倾斜。
// 订单载荷只携带 feeRateBps，实际扣费由交易所结算侧完成；
// 这里仅用于客户端侧的净额预估。
func ApplyFee(amount *big.Int, feeRateBps int64) *big.Int {
	if feeRateBps <= 0 {
		return new(big.Int).Set(amount)
	}
	net := new(big.Int).Mul(amount, big.NewInt(10000-feeRateBps))
	return net.Quo(net, tenThousand)
}
