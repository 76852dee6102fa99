package client

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/types"
)

func TestPriceValid(t *testing.T) {
	assert.True(t, PriceValid(0.01, types.TickSize001))
	assert.True(t, PriceValid(0.99, types.TickSize001))
	assert.True(t, PriceValid(0.5, types.TickSize001))
	assert.False(t, PriceValid(0.005, types.TickSize001))
	assert.False(t, PriceValid(0.995, types.TickSize001))
	assert.False(t, PriceValid(0, types.TickSize001))
	assert.False(t, PriceValid(1, types.TickSize001))

	// 更细的 tick 放宽有效区间
	assert.True(t, PriceValid(0.995, types.TickSize0001))
	assert.True(t, PriceValid(0.0001, types.TickSize00001))
}

func TestRoundToTick(t *testing.T) {
	// 买单向下吸附
	p, err := RoundToTick(0.523, types.TickSize001, types.SideBuy)
	require.NoError(t, err)
	assert.InDelta(t, 0.52, p, 1e-9)

	// 卖单向上吸附
	p, err = RoundToTick(0.523, types.TickSize001, types.SideSell)
	require.NoError(t, err)
	assert.InDelta(t, 0.53, p, 1e-9)

	// 已对齐的价格保持不变（幂等）
	p, err = RoundToTick(0.52, types.TickSize001, types.SideBuy)
	require.NoError(t, err)
	assert.InDelta(t, 0.52, p, 1e-9)
	p, err = RoundToTick(0.52, types.TickSize001, types.SideSell)
	require.NoError(t, err)
	assert.InDelta(t, 0.52, p, 1e-9)

	// 越界价格报 INVALID_PRICE
	_, err = RoundToTick(0.0005, types.TickSize001, types.SideBuy)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrInvalidPrice))

	_, err = RoundToTick(0.9995, types.TickSize001, types.SideSell)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrInvalidPrice))
}

func TestAmountsForLimitOrder_Buy(t *testing.T) {
	cfg := RoundingConfig[types.TickSize001]

	// 0.52 x 10: maker 5.2 USDC, taker 10 份
	maker, taker, err := AmountsForLimitOrder(types.SideBuy, 10, 0.52, cfg, ConditionalTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, int64(5_200_000), maker.Int64())
	assert.Equal(t, int64(10_000_000), taker.Int64())
}

func TestAmountsForLimitOrder_Sell(t *testing.T) {
	cfg := RoundingConfig[types.TickSize001]

	// 卖出镜像: maker 10 份, taker 5.2 USDC
	maker, taker, err := AmountsForLimitOrder(types.SideSell, 10, 0.52, cfg, ConditionalTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), maker.Int64())
	assert.Equal(t, int64(5_200_000), taker.Int64())
}

func TestAmountsForLimitOrder_FractionalSize(t *testing.T) {
	cfg := RoundingConfig[types.TickSize0001]

	// size 保留 2 位小数, 金额按 cfg.Amount 截断
	maker, taker, err := AmountsForLimitOrder(types.SideBuy, 3.456, 0.333, cfg, ConditionalTokenDecimals)
	require.NoError(t, err)
	// size floor -> 3.45, 3.45*0.333 = 1.14885 截断 5 位 = 1.14885
	assert.Equal(t, int64(1_148_850), maker.Int64())
	assert.Equal(t, int64(3_450_000), taker.Int64())
}

func TestAmountsForLimitOrder_ZeroSize(t *testing.T) {
	cfg := RoundingConfig[types.TickSize001]

	_, _, err := AmountsForLimitOrder(types.SideBuy, 0.001, 0.52, cfg, ConditionalTokenDecimals)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrInvalidSize))
}

func TestAmountsForMarketOrder_Buy(t *testing.T) {
	cfg := RoundingConfig[types.TickSize001]

	// 100 USDC @ 0.5: maker 100 USDC, taker 200 份
	maker, taker, err := AmountsForMarketOrder(types.SideBuy, 100, 0.5, cfg, ConditionalTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000_000), maker.Int64())
	assert.Equal(t, int64(200_000_000), taker.Int64())
}

func TestAmountsForMarketOrder_Sell(t *testing.T) {
	cfg := RoundingConfig[types.TickSize001]

	// 卖 8 份 @ 0.58: taker 4.64 USDC
	maker, taker, err := AmountsForMarketOrder(types.SideSell, 8, 0.58, cfg, ConditionalTokenDecimals)
	require.NoError(t, err)
	assert.Equal(t, int64(8_000_000), maker.Int64())
	assert.Equal(t, int64(4_640_000), taker.Int64())
}

func TestToTokenUnits_RoundHalfUp(t *testing.T) {
	// 整数转换采用四舍五入
	d := decimal.RequireFromString("1.0000005")
	assert.Equal(t, int64(1_000_001), ToTokenUnits(d, 6).Int64())

	d = decimal.RequireFromString("1.0000004")
	assert.Equal(t, int64(1_000_000), ToTokenUnits(d, 6).Int64())
}

func TestApplyFee(t *testing.T) {
	// 零费率原样返回
	net := ApplyFee(big.NewInt(1_000_000), 0)
	assert.Equal(t, int64(1_000_000), net.Int64())

	// 100 bps = 1%
	net = ApplyFee(big.NewInt(1_000_000), 100)
	assert.Equal(t, int64(990_000), net.Int64())

	// 截断方向: 999 * 9970 / 10000 = 996.003 -> 996
	net = ApplyFee(big.NewInt(999), 30)
	assert.Equal(t, int64(996), net.Int64())

	// 原值不被修改
	amount := big.NewInt(500)
	_ = ApplyFee(amount, 100)
	assert.Equal(t, int64(500), amount.Int64())
}

func TestAmountsForLimitOrder_PriceRoundTrip(t *testing.T) {
	cases := []struct {
		tick  types.TickSize
		price float64
	}{
		{types.TickSize001, 0.13},
		{types.TickSize001, 0.52},
		{types.TickSize001, 0.87},
		{types.TickSize0001, 0.055},
		{types.TickSize00001, 0.4999},
	}

	for _, tc := range cases {
		cfg := RoundingConfig[tc.tick]
		tick := tc.tick.Float()

		// 买单: maker(USDC)/taker(份额) 还原价格
		maker, taker, err := AmountsForLimitOrder(types.SideBuy, 3.456, tc.price, cfg, ConditionalTokenDecimals)
		require.NoError(t, err)
		ratio := float64(maker.Int64()) / float64(taker.Int64())
		assert.InDelta(t, tc.price, ratio, tick, "buy price=%v tick=%v", tc.price, tc.tick)

		// 卖单: taker(USDC)/maker(份额) 还原价格
		maker, taker, err = AmountsForLimitOrder(types.SideSell, 3.456, tc.price, cfg, ConditionalTokenDecimals)
		require.NoError(t, err)
		ratio = float64(taker.Int64()) / float64(maker.Int64())
		assert.InDelta(t, tc.price, ratio, tick, "sell price=%v tick=%v", tc.price, tc.tick)
	}
}
