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

// 示例：下限价单
// 使用方法：
//   export PRIVATE_KEY="your_private_key_hex"  # 或 WALLET_MNEMONIC="..."
//   export TOKEN_ID="token_id"  # 条件代币资产 ID
//   export PRICE="0.65"  # 订单价格（小数）
//   export SIZE="1.0"  # 订单数量（条件代币数量）
//   export SIDE="BUY"  # BUY 或 SELL
//   export ORDER_TYPE="GTC"  # 可选，GTC/FOK/GTD/FAK，默认 GTC
//   export CLOB_API_KEY=...  # 可选，已有凭证时跳过派生
//   export CLOB_SECRET=...
//   export CLOB_PASS_PHRASE=...
//   export CHAIN_ID=137
//   export CLOB_API_URL="https://clob.polymarket.com"
//   export LOG_LEVEL=debug  # 可选
//   go run place_order.go

func main() {
	// 支持 .env 文件（不存在时忽略）
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

	price, err := strconv.ParseFloat(os.Getenv("PRICE"), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: PRICE 必须是数字: %v\n", err)
		os.Exit(1)
	}

	size, err := strconv.ParseFloat(os.Getenv("SIZE"), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: SIZE 必须是数字: %v\n", err)
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

	clobClient, err := client.NewClientFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 创建客户端失败: %v\n", err)
		os.Exit(1)
	}

	addr, err := clobClient.GetAddress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 请通过 PRIVATE_KEY 或 WALLET_MNEMONIC 配置钱包\n")
		os.Exit(1)
	}
	fmt.Printf("钱包地址: %s\n", addr.Hex())
	fmt.Printf("链 ID: %d\n", cfg.ChainID)
	fmt.Printf("API 地址: %s\n\n", cfg.Host)

	ctx := context.Background()

	// 环境里没有现成凭证时创建或派生
	if err := clobClient.CanL2Auth(); err != nil {
		fmt.Println("正在创建或派生 API 密钥...")
		creds, err := clobClient.CreateOrDeriveAPIKey(ctx, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "错误: 创建 API 密钥失败: %v\n", err)
			os.Exit(1)
		}
		clobClient.SetCreds(creds)
		fmt.Println("API 密钥已就绪")
	} else {
		fmt.Println("使用现有的 API 凭证")
	}

	orderTypeStr := strings.ToUpper(os.Getenv("ORDER_TYPE"))
	if orderTypeStr == "" {
		orderTypeStr = "GTC"
	}
	orderType := types.OrderType(orderTypeStr)

	// 构造、签名并提交订单
	resp, err := clobClient.CreateAndPostOrder(ctx, &types.UserOrder{
		TokenID: tokenID,
		Price:   price,
		Size:    size,
		Side:    side,
	}, nil, orderType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 下单失败: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Printf("下单结果:\n%s\n", out)
}
