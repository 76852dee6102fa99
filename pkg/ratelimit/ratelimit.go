package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket 令牌桶速率限制器
type TokenBucket struct {
	capacity   int // 桶容量
	tokens     int // 当前令牌数
	refillRate int // 每秒补充的令牌数
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket 创建新的令牌桶
func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill 补充令牌
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	tokensToAdd := int(elapsed.Seconds()) * tb.refillRate
	if tokensToAdd > 0 {
		tb.tokens = min(tb.capacity, tb.tokens+tokensToAdd)
		tb.lastRefill = now
	}
}

// Allow 检查是否允许请求
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Wait 等待直到允许请求，或 ctx 取消
func (tb *TokenBucket) Wait(ctx context.Context) error {
	for {
		if tb.Allow() {
			return nil
		}

		waitTime := time.Second
		tb.mu.Lock()
		if tb.refillRate > 0 {
			waitTime = time.Second / time.Duration(tb.refillRate)
		}
		tb.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// 端点类别
const (
	ClassData  = "data"  // 公开数据端点
	ClassOrder = "order" // 下单/取消端点
	ClassAuth  = "auth"  // 密钥管理端点
)

// Manager 按端点类别管理令牌桶
type Manager struct {
	mu      sync.RWMutex
	buckets map[string]*TokenBucket
}

// NewManager 创建限速管理器，预置交易所公布的速率档位
func NewManager() *Manager {
	return &Manager{
		buckets: map[string]*TokenBucket{
			ClassData:  NewTokenBucket(100, 50),
			ClassOrder: NewTokenBucket(30, 10),
			ClassAuth:  NewTokenBucket(5, 1),
		},
	}
}

// Wait 在指定类别上等待配额
func (m *Manager) Wait(ctx context.Context, class string) error {
	m.mu.RLock()
	tb, ok := m.buckets[class]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	return tb.Wait(ctx)
}

// Set 覆盖某一类别的速率档位
func (m *Manager) Set(class string, capacity, refillRate int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buckets[class] = NewTokenBucket(capacity, refillRate)
}
