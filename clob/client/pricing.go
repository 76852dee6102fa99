package client

import (
	"context"
	"strconv"

	"github.com/betbot/goclob/clob/types"
)

// DefaultPriceBufferBps 市价单估算价的安全缓冲（基点，乘法缓冲）。
// 0.5%：买单放大、卖单缩小，向 taker 不利方向加宽以保证成交。
// 该值是外部业务规则，未与交易所实际行为核对前不要改动。
const DefaultPriceBufferBps int64 = 50

// EstimateExecutionPrice 对给定订单簿估算市价单的可成交均价。
//
// 按优先顺序消耗对手盘（买单吃 asks，卖单吃 bids），累计到满足
// 请求数量或簿子耗尽，结果为消耗档位的数量加权均价，再按缓冲
// 加宽并吸附到 tick（方向与限价规则一致）。
//
// amount 语义: 买单为 USDC 名义额，卖单为份额数量。
// 簿子无法满足时返回 INSUFFICIENT_LIQUIDITY；FAK 例外，返回可用
// 深度上的最优均价，部分成交由交易所决定。filled 始终返回已能
// 满足的部分（与 amount 同单位）。
//
// 相同快照 + 相同输入 ⇒ 相同结果（顺序遍历，无随机性）。
func EstimateExecutionPrice(
	book *types.OrderBookSummary,
	side types.Side,
	amount float64,
	orderType types.OrderType,
	tickSize types.TickSize,
	bufferBps int64,
) (price float64, filled float64, err error) {
	var levels []types.OrderSummary
	if side == types.SideBuy {
		levels = book.Asks // 买入吃卖单，升序=最优价在前
	} else {
		levels = book.Bids // 卖出吃买单，降序=最优价在前
	}

	if len(levels) == 0 {
		return 0, 0, types.NewError(types.ErrInsufficientLiquidity, "订单簿为空")
	}

	remaining := amount
	totalCost := 0.0   // USDC
	totalShares := 0.0 // tokens

	for _, level := range levels {
		p, perr := strconv.ParseFloat(level.Price, 64)
		if perr != nil {
			return 0, 0, types.WrapError(types.ErrTransport, perr, "订单簿价格无效: %q", level.Price)
		}
		s, serr := strconv.ParseFloat(level.Size, 64)
		if serr != nil {
			return 0, 0, types.WrapError(types.ErrTransport, serr, "订单簿数量无效: %q", level.Size)
		}

		if side == types.SideBuy {
			levelValue := p * s
			if remaining <= levelValue {
				// 当前档位吃满剩余名义额
				totalShares += remaining / p
				totalCost += remaining
				remaining = 0
				break
			}
			totalShares += s
			totalCost += levelValue
			remaining -= levelValue
		} else {
			if remaining <= s {
				totalCost += remaining * p
				totalShares += remaining
				remaining = 0
				break
			}
			totalCost += s * p
			totalShares += s
			remaining -= s
		}
	}

	filled = amount - remaining

	if remaining > 0 && orderType != types.OrderTypeFAK {
		return 0, filled, types.NewError(types.ErrInsufficientLiquidity,
			"深度不足: 请求 %v，可成交 %v", amount, filled)
	}
	if totalShares == 0 {
		return 0, 0, types.NewError(types.ErrInsufficientLiquidity, "订单簿无可成交深度")
	}

	avg := totalCost / totalShares

	// 缓冲向 taker 不利方向加宽
	if side == types.SideBuy {
		avg = avg * (1.0 + float64(bufferBps)/10000.0)
	} else {
		avg = avg * (1.0 - float64(bufferBps)/10000.0)
	}

	// 收敛到合法价格区间再吸附 tick
	tick := tickSize.Float()
	if avg > 1.0-tick {
		avg = 1.0 - tick
	}
	if avg < tick {
		avg = tick
	}

	snapped, err := RoundToTick(avg, tickSize, side)
	if err != nil {
		return 0, filled, err
	}
	return snapped, filled, nil
}

// CalculateMarketPrice 拉取订单簿并估算市价单成交价。
// tick size 经缓存解析，保证与下单时使用的精度一致。
func (c *Client) CalculateMarketPrice(
	ctx context.Context,
	tokenID string,
	side types.Side,
	amount float64,
	orderType types.OrderType,
) (float64, error) {
	book, err := c.GetOrderBook(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	tickSize, err := c.GetTickSize(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	price, _, err := EstimateExecutionPrice(book, side, amount, orderType, tickSize, c.priceBufferBps)
	return price, err
}
