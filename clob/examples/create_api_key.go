//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/betbot/goclob/clob/client"
	"github.com/betbot/goclob/pkg/config"
	"github.com/betbot/goclob/pkg/logger"
)

// 示例：创建或派生 API 密钥
// 使用方法：
//   export PRIVATE_KEY="your_private_key_hex"  # 或 WALLET_MNEMONIC="..."
//   export CHAIN_ID=137
//   export CLOB_API_URL="https://clob.polymarket.com"
//   export NONCE=0  # 可选
//   go run create_api_key.go

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

	var nonce *int64
	if nonceStr := os.Getenv("NONCE"); nonceStr != "" {
		n, err := strconv.ParseInt(nonceStr, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "错误: NONCE 必须是数字: %v\n", err)
			os.Exit(1)
		}
		nonce = &n
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

	creds, err := clobClient.CreateOrDeriveAPIKey(context.Background(), nonce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: 创建 API 密钥失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("API 凭证:")
	fmt.Printf("  CLOB_API_KEY=%s\n", creds.Key)
	fmt.Printf("  CLOB_SECRET=%s\n", creds.Secret)
	fmt.Printf("  CLOB_PASS_PHRASE=%s\n", creds.Passphrase)
}
