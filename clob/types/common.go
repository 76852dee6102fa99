package types

import "strconv"

// Side 订单方向
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType 订单类型
type OrderType string

const (
	OrderTypeGTC OrderType = "GTC" // Good Till Cancel - 一直有效直到取消
	OrderTypeFOK OrderType = "FOK" // Fill or Kill - 全部成交或全部取消
	OrderTypeGTD OrderType = "GTD" // Good Till Date - 指定日期前有效
	OrderTypeFAK OrderType = "FAK" // Fill and Kill - 部分成交，剩余取消
)

// Chain 区块链网络
type Chain int

const (
	ChainPolygon Chain = 137
	ChainAmoy    Chain = 80002
)

// SignatureType 签名类型（必须与交易所合约的枚举值一致）
type SignatureType int

const (
	SignatureTypeEOA        SignatureType = 0 // EOA - 标准以太坊钱包（MetaMask），直接 ECDSA 恢复
	SignatureTypePolyProxy  SignatureType = 1 // POLY_PROXY - Magic Link 代理钱包，signer 为控制钱包
	SignatureTypeGnosisSafe SignatureType = 2 // GNOSIS_SAFE - 合约钱包，链上 isValidSignature (EIP-1271) 验证
)

// AssetType 资产类型
type AssetType string

const (
	AssetTypeCollateral  AssetType = "COLLATERAL"
	AssetTypeConditional AssetType = "CONDITIONAL"
)

// TickSize 价格精度（市场接受的最小价格增量）
type TickSize string

const (
	TickSize01    TickSize = "0.1"
	TickSize001   TickSize = "0.01"
	TickSize0001  TickSize = "0.001"
	TickSize00001 TickSize = "0.0001"
)

// Float 返回 tick size 的浮点值
func (t TickSize) Float() float64 {
	f, _ := strconv.ParseFloat(string(t), 64)
	return f
}

// Decimals 返回 tick size 对应的价格小数位数
func (t TickSize) Decimals() int32 {
	switch t {
	case TickSize01:
		return 1
	case TickSize001:
		return 2
	case TickSize0001:
		return 3
	case TickSize00001:
		return 4
	}
	return 2
}

// ParseTickSize 解析 tick size 字符串，不认识的值返回 false
func ParseTickSize(s string) (TickSize, bool) {
	switch TickSize(s) {
	case TickSize01, TickSize001, TickSize0001, TickSize00001:
		return TickSize(s), true
	}
	return "", false
}

// ApiKeyCreds API 密钥凭证（L2 认证三元组），获取后不可变，由调用方负责存储
type ApiKeyCreds struct {
	Key        string
	Secret     string
	Passphrase string
}

// ApiKeyRaw 原始 API 密钥（API 返回格式）
type ApiKeyRaw struct {
	ApiKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// BuilderConfig Builder/做市商计划的备用凭证，与签名类型正交
type BuilderConfig struct {
	Creds ApiKeyCreds
}
