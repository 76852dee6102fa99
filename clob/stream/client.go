package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "clob.stream")

// ClientConfig 行情流客户端配置
type ClientConfig struct {
	URL            string
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
	Reconnect      bool
	ReconnectDelay time.Duration
	MaxReconnect   int
}

// DefaultClientConfig returns a default stream client configuration
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		URL:            MarketWebSocketURL,
		PingInterval:   10 * time.Second,
		WriteTimeout:   10 * time.Second,
		ReadTimeout:    60 * time.Second,
		Reconnect:      true,
		ReconnectDelay: 5 * time.Second,
		MaxReconnect:   10,
	}
}

// Client 行情通道 WebSocket 客户端。订阅若干 token 的订单簿推送，
// 断线后自动重连并重放订阅。
type Client struct {
	cfg      *ClientConfig
	handlers Handlers

	conn     *websocket.Conn
	connMu   sync.Mutex
	assetIDs []string
	assetMu  sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	connected      bool
	connectedMu    sync.RWMutex
	reconnectCount int
}

// NewClient creates a market stream client
func NewClient(cfg *ClientConfig, handlers Handlers) *Client {
	if cfg == nil {
		cfg = DefaultClientConfig()
	}
	if cfg.URL == "" {
		cfg.URL = MarketWebSocketURL
	}
	if cfg.PingInterval == 0 {
		cfg.PingInterval = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 60 * time.Second
	}
	if cfg.ReconnectDelay == 0 {
		cfg.ReconnectDelay = 5 * time.Second
	}
	if cfg.MaxReconnect == 0 {
		cfg.MaxReconnect = 10
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		cfg:      cfg,
		handlers: handlers,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Connect establishes the WebSocket connection and starts the read loop
func (c *Client) Connect() error {
	dialer := websocket.Dialer{HandshakeTimeout: 30 * time.Second}

	conn, _, err := dialer.Dial(c.cfg.URL, nil)
	if err != nil {
		return errors.Wrapf(err, "连接行情通道失败 %s", c.cfg.URL)
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()
	c.setConnected(true)
	c.reconnectCount = 0

	c.wg.Add(1)
	go c.readLoop(conn)

	c.wg.Add(1)
	go c.pingLoop(conn)

	// 重连后重放订阅
	return c.resubscribe()
}

// Disconnect closes the connection and stops all goroutines
func (c *Client) Disconnect() error {
	c.cancel()
	c.setConnected(false)

	c.connMu.Lock()
	conn := c.conn
	c.conn = nil
	c.connMu.Unlock()

	var err error
	if conn != nil {
		err = conn.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		log.Warn("等待读取 goroutine 退出超时")
	}
	return err
}

// IsConnected returns whether the client is currently connected
func (c *Client) IsConnected() bool {
	c.connectedMu.RLock()
	defer c.connectedMu.RUnlock()
	return c.connected
}

func (c *Client) setConnected(connected bool) {
	c.connectedMu.Lock()
	c.connected = connected
	c.connectedMu.Unlock()
}

// Subscribe 订阅一批 token 的行情推送。追加到已有订阅集合，
// 重连后整组重放。
func (c *Client) Subscribe(assetIDs []string) error {
	c.assetMu.Lock()
	seen := make(map[string]struct{}, len(c.assetIDs))
	for _, id := range c.assetIDs {
		seen[id] = struct{}{}
	}
	for _, id := range assetIDs {
		if _, ok := seen[id]; !ok {
			c.assetIDs = append(c.assetIDs, id)
		}
	}
	c.assetMu.Unlock()

	return c.sendSubscribe(assetIDs)
}

func (c *Client) resubscribe() error {
	c.assetMu.RLock()
	ids := make([]string, len(c.assetIDs))
	copy(ids, c.assetIDs)
	c.assetMu.RUnlock()

	if len(ids) == 0 {
		return nil
	}
	return c.sendSubscribe(ids)
}

func (c *Client) sendSubscribe(assetIDs []string) error {
	if len(assetIDs) == 0 {
		return nil
	}
	if !c.IsConnected() {
		return errors.New("行情通道未连接")
	}

	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn == nil {
		return errors.New("行情通道未连接")
	}

	msg := subscribeMessage{AssetIDs: assetIDs, Type: "market"}
	c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.setConnected(false)
		return errors.Wrap(err, "发送订阅消息失败")
	}
	log.WithField("assets", len(assetIDs)).Debug("已订阅行情通道")
	return nil
}

func (c *Client) pingLoop(conn *websocket.Conn) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if !c.IsConnected() {
				return
			}
			c.connMu.Lock()
			if c.conn != conn {
				c.connMu.Unlock()
				return
			}
			conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			c.connMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer c.wg.Done()

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.ctx.Done():
				return
			default:
			}
			c.setConnected(false)
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("err", err.Error()).Warn("行情通道连接断开")
			}
			go c.handleDisconnect()
			return
		}
		c.dispatch(data)
	}
}

// handleDisconnect 带退避的自动重连
func (c *Client) handleDisconnect() {
	if !c.cfg.Reconnect {
		return
	}

	for c.reconnectCount < c.cfg.MaxReconnect {
		select {
		case <-c.ctx.Done():
			return
		case <-time.After(c.cfg.ReconnectDelay):
		}

		c.reconnectCount++
		log.WithField("attempt", c.reconnectCount).Info("尝试重连行情通道")
		if err := c.Connect(); err == nil {
			return
		}
	}
	log.WithField("max", c.cfg.MaxReconnect).Error("行情通道重连次数耗尽")
}

// dispatch 解析事件并派发回调。服务端把事件打包为数组推送。
func (c *Client) dispatch(data []byte) {
	var events []json.RawMessage
	if err := json.Unmarshal(data, &events); err != nil {
		// 单事件对象
		events = []json.RawMessage{data}
	}

	for _, raw := range events {
		var head struct {
			EventType string `json:"event_type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			log.WithField("err", err.Error()).Debug("行情事件解析失败")
			continue
		}

		switch head.EventType {
		case EventTypeBook:
			if c.handlers.OnBook == nil {
				continue
			}
			var ev BookEvent
			if err := json.Unmarshal(raw, &ev); err == nil {
				c.handlers.OnBook(&ev)
			}
		case EventTypePriceChange:
			if c.handlers.OnPriceChange == nil {
				continue
			}
			var ev PriceChangeEvent
			if err := json.Unmarshal(raw, &ev); err == nil {
				c.handlers.OnPriceChange(&ev)
			}
		case EventTypeTickSizeChange:
			if c.handlers.OnTickSizeChange == nil {
				continue
			}
			var ev TickSizeChangeEvent
			if err := json.Unmarshal(raw, &ev); err == nil {
				c.handlers.OnTickSizeChange(&ev)
			}
		case EventTypeLastTradePrice:
			if c.handlers.OnLastTradePrice == nil {
				continue
			}
			var ev LastTradePriceEvent
			if err := json.Unmarshal(raw, &ev); err == nil {
				c.handlers.OnLastTradePrice(&ev)
			}
		}
	}
}
