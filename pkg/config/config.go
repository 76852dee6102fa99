package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WalletConfig 钱包配置。PrivateKey 和 Mnemonic 二选一，
// 同时给出时 PrivateKey 优先。
type WalletConfig struct {
	PrivateKey     string `yaml:"private_key"`
	Mnemonic       string `yaml:"mnemonic"`
	DerivationPath string `yaml:"derivation_path"`
	FunderAddress  string `yaml:"funder_address"`
}

// CredsConfig L2 API 凭证
type CredsConfig struct {
	Key        string `yaml:"key"`
	Secret     string `yaml:"secret"`
	Passphrase string `yaml:"passphrase"`
}

// Config 客户端配置
type Config struct {
	Host           string       `yaml:"host"`
	ChainID        int64        `yaml:"chain_id"`
	Wallet         WalletConfig `yaml:"wallet"`
	Creds          *CredsConfig `yaml:"creds"`
	SignatureType  int          `yaml:"signature_type"`
	UseServerTime  bool         `yaml:"use_server_time"`
	PriceBufferBps int64        `yaml:"price_buffer_bps"`
	LogLevel       string       `yaml:"log_level"`
	LogFile        string       `yaml:"log_file"`
}

// 默认值
const (
	DefaultHost    = "https://clob.polymarket.com"
	DefaultChainID = 137
)

// LoadFromFile 从 YAML 文件加载配置，环境变量覆盖文件值
func LoadFromFile(filePath string) (*Config, error) {
	config := defaultConfig()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "读取配置文件失败 %s", filePath)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrapf(err, "解析配置文件失败 %s", filePath)
		}
	}

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromEnv 纯环境变量加载（无配置文件场景）
func LoadFromEnv() (*Config, error) {
	config := defaultConfig()
	applyEnv(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Host:     DefaultHost,
		ChainID:  DefaultChainID,
		LogLevel: "info",
	}
}

// applyEnv 环境变量优先级最高
func applyEnv(config *Config) {
	config.Host = getEnv("CLOB_API_URL", config.Host)
	config.ChainID = parseInt64Env("CHAIN_ID", config.ChainID)
	// PRIVATE_KEY 兼容旧命名，WALLET_PRIVATE_KEY 优先
	config.Wallet.PrivateKey = getEnv("WALLET_PRIVATE_KEY", getEnv("PRIVATE_KEY", config.Wallet.PrivateKey))
	config.Wallet.Mnemonic = getEnv("WALLET_MNEMONIC", config.Wallet.Mnemonic)
	config.Wallet.DerivationPath = getEnv("WALLET_DERIVATION_PATH", config.Wallet.DerivationPath)
	config.Wallet.FunderAddress = getEnv("WALLET_FUNDER_ADDRESS", config.Wallet.FunderAddress)
	config.SignatureType = int(parseInt64Env("SIGNATURE_TYPE", int64(config.SignatureType)))
	config.UseServerTime = parseBoolEnv("USE_SERVER_TIME", config.UseServerTime)
	config.PriceBufferBps = parseInt64Env("PRICE_BUFFER_BPS", config.PriceBufferBps)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.LogFile = getEnv("LOG_FILE", config.LogFile)

	key := os.Getenv("CLOB_API_KEY")
	secret := os.Getenv("CLOB_SECRET")
	passphrase := os.Getenv("CLOB_PASS_PHRASE")
	if key != "" && secret != "" && passphrase != "" {
		config.Creds = &CredsConfig{Key: key, Secret: secret, Passphrase: passphrase}
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host 不能为空")
	}
	if c.ChainID != 137 && c.ChainID != 80002 {
		return errors.Errorf("不支持的链 ID: %d（支持 137 和 80002）", c.ChainID)
	}
	if c.SignatureType < 0 || c.SignatureType > 2 {
		return errors.Errorf("无效的签名类型: %d", c.SignatureType)
	}
	if c.PriceBufferBps < 0 {
		return errors.Errorf("价格缓冲不能为负: %d", c.PriceBufferBps)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseInt64Env(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
