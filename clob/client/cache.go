package client

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/betbot/goclob/clob/types"
)

// marketCache 每个 token 的 tick size / 负风险 / 费率缓存。
// 客户端实例持有，随客户端创建和销毁，不是隐藏的全局状态。
// 条目一经写入在会话内不变，也不逐出（失效不在范围内）。
//
// 未命中路径经 singleflight 收敛：同一 token 的并发未命中
// 只触发一次抓取。抓取失败或被取消时不产生任何缓存写入。
type marketCache struct {
	mu        sync.RWMutex
	tickSizes map[string]types.TickSize
	negRisk   map[string]bool
	feeRates  map[string]int

	group singleflight.Group
}

func newMarketCache() *marketCache {
	return &marketCache{
		tickSizes: make(map[string]types.TickSize),
		negRisk:   make(map[string]bool),
		feeRates:  make(map[string]int),
	}
}

// tickSize 读取或填充 tick size
func (m *marketCache) tickSize(tokenID string, fetch func() (types.TickSize, error)) (types.TickSize, error) {
	m.mu.RLock()
	if ts, ok := m.tickSizes[tokenID]; ok {
		m.mu.RUnlock()
		return ts, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.group.Do("tick:"+tokenID, func() (interface{}, error) {
		ts, err := fetch()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.tickSizes[tokenID] = ts
		m.mu.Unlock()
		return ts, nil
	})
	if err != nil {
		return "", err
	}
	return v.(types.TickSize), nil
}

// negRiskFlag 读取或填充负风险标记
func (m *marketCache) negRiskFlag(tokenID string, fetch func() (bool, error)) (bool, error) {
	m.mu.RLock()
	if nr, ok := m.negRisk[tokenID]; ok {
		m.mu.RUnlock()
		return nr, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.group.Do("negrisk:"+tokenID, func() (interface{}, error) {
		nr, err := fetch()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.negRisk[tokenID] = nr
		m.mu.Unlock()
		return nr, nil
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// feeRate 读取或填充费率（基点）
func (m *marketCache) feeRate(tokenID string, fetch func() (int, error)) (int, error) {
	m.mu.RLock()
	if fr, ok := m.feeRates[tokenID]; ok {
		m.mu.RUnlock()
		return fr, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.group.Do("fee:"+tokenID, func() (interface{}, error) {
		fr, err := fetch()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.feeRates[tokenID] = fr
		m.mu.Unlock()
		return fr, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// GetTickSize 获取 token 的价格精度（带缓存）
func (c *Client) GetTickSize(ctx context.Context, tokenID string) (types.TickSize, error) {
	return c.cache.tickSize(tokenID, func() (types.TickSize, error) {
		return c.fetchTickSize(ctx, tokenID)
	})
}

// GetNegRisk 获取 token 的负风险标记（带缓存）
func (c *Client) GetNegRisk(ctx context.Context, tokenID string) (bool, error) {
	return c.cache.negRiskFlag(tokenID, func() (bool, error) {
		return c.fetchNegRisk(ctx, tokenID)
	})
}

// GetFeeRateBps 获取 token 的市场费率（基点，带缓存）
func (c *Client) GetFeeRateBps(ctx context.Context, tokenID string) (int, error) {
	return c.cache.feeRate(tokenID, func() (int, error) {
		return c.fetchFeeRate(ctx, tokenID)
	})
}
