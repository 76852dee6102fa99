//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/betbot/goclob/clob/stream"
	"github.com/betbot/goclob/pkg/logger"
)

// 示例：订阅行情通道的订单簿推送
// 使用方法：
//   export TOKEN_ID="token_id"
//   export LOG_LEVEL=debug  # 可选
//   go run stream_orderbook.go

func main() {
	_ = godotenv.Load()

	// 行情客户端经全局 logrus 输出重连/订阅日志
	if err := logger.Init(logger.Config{Level: os.Getenv("LOG_LEVEL")}); err != nil {
		fmt.Fprintf(os.Stderr, "错误: 初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	tokenID := os.Getenv("TOKEN_ID")
	if tokenID == "" {
		fmt.Fprintf(os.Stderr, "错误: 请设置 TOKEN_ID 环境变量\n")
		os.Exit(1)
	}

	ws := stream.NewClient(nil, stream.Handlers{
		OnBook: func(ev *stream.BookEvent) {
			fmt.Printf("[book] asset=%s bids=%d asks=%d hash=%s\n",
				ev.AssetID, len(ev.Bids), len(ev.Asks), ev.Hash)
		},
		OnPriceChange: func(ev *stream.PriceChangeEvent) {
			for _, ch := range ev.Changes {
				fmt.Printf("[price_change] asset=%s side=%s price=%s size=%s\n",
					ev.AssetID, ch.Side, ch.Price, ch.Size)
			}
		},
		OnLastTradePrice: func(ev *stream.LastTradePriceEvent) {
			fmt.Printf("[last_trade] asset=%s price=%s size=%s\n", ev.AssetID, ev.Price, ev.Size)
		},
	})

	if err := ws.Connect(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: 连接失败: %v\n", err)
		os.Exit(1)
	}
	defer ws.Disconnect()

	if err := ws.Subscribe([]string{tokenID}); err != nil {
		fmt.Fprintf(os.Stderr, "错误: 订阅失败: %v\n", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	fmt.Println("退出")
}
