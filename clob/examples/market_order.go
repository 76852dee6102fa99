//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/betbot/goclob/clob/client"
	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/config"
	"github.com/betbot/goclob/pkg/logger"
)

// 示例：下市价单（按订单簿深度估价）
// 使用方法：
//   export PRIVATE_KEY="your_private_key_hex"  # 或 WALLET_MNEMONIC="..."
//   export TOKEN_ID="token_id"
//   export AMOUNT="10.0"  # BUY 为 USDC 金额，SELL 为份额数量
//   export SIDE="BUY"
//   export ORDER_TYPE="FOK"  # 可选，FOK 或 FAK，默认 FOK
//   export CHAIN_ID=137
//   export CLOB_API_URL="https://clob.polymarket.com"
//   go run market_order.go

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, OutputFile: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "错误: 初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	tokenID := os.Getenv("TOKEN_ID")
	if tokenID == "" {
		fmt.Fprintf(os.Stderr, "错误: 请设置 TOKEN_ID 环境变量\n")
		os.Exit(1)
	}

	amount, err := strconv.ParseFloat(os.Getenv("AMOUNT"), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: AMOUNT 必须是数字: %v\n", err)
		os.Exit(1)
	}

	var side types.Side
	switch strings.ToUpper(os.Getenv("SIDE")) {
	case "BUY":
		side = types.SideBuy
	case "SELL":
		side = types.SideSell
	default:
		fmt.Fprintf(os.Stderr, "错误: SIDE 必须是 BUY 或 SELL\n")
		os.Exit(1)
	}

	orderType := types.OrderTypeFOK
	if strings.ToUpper(os.Getenv("ORDER_TYPE")) == "FAK" {
		orderType = types.OrderTypeFAK
	}

	clobClient, err := client.NewClientFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 创建客户端失败: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := clobClient.CanL2Auth(); err != nil {
		creds, err := clobClient.CreateOrDeriveAPIKey(ctx, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "错误: 派生 API 密钥失败: %v\n", err)
			os.Exit(1)
		}
		clobClient.SetCreds(creds)
	}

	// 先看一眼估算价
	estimated, err := clobClient.CalculateMarketPrice(ctx, tokenID, side, amount, orderType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 估算市价失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("估算成交价: %.4f\n", estimated)

	resp, err := clobClient.CreateAndPostMarketOrder(ctx, &types.UserMarketOrder{
		TokenID:   tokenID,
		Amount:    amount,
		Side:      side,
		OrderType: orderType,
	}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 下单失败: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Printf("下单结果:\n%s\n", out)
}
