package types

// L2HeaderArgs L2 认证头参数（签名覆盖的请求描述符）
type L2HeaderArgs struct {
	Method      string
	RequestPath string
	// Body 请求体的规范化字符串；无载荷时为 nil，签名按空串处理
	Body *string
}

// L1PolyHeader L1 认证头（钱包 EIP712 签名验证，仅用于密钥生命周期）
type L1PolyHeader struct {
	PolyAddress   string `json:"POLY_ADDRESS"`
	PolySignature string `json:"POLY_SIGNATURE"`
	PolyTimestamp string `json:"POLY_TIMESTAMP"`
	PolyNonce     string `json:"POLY_NONCE"`
}

// ToMap 转换为请求头 map
func (h *L1PolyHeader) ToMap() map[string]string {
	return map[string]string{
		"POLY_ADDRESS":   h.PolyAddress,
		"POLY_SIGNATURE": h.PolySignature,
		"POLY_TIMESTAMP": h.PolyTimestamp,
		"POLY_NONCE":     h.PolyNonce,
	}
}

// L2PolyHeader L2 认证头（API 密钥 HMAC 验证，所有带凭证的调用）
type L2PolyHeader struct {
	PolyAddress    string `json:"POLY_ADDRESS"`
	PolySignature  string `json:"POLY_SIGNATURE"`
	PolyTimestamp  string `json:"POLY_TIMESTAMP"`
	PolyAPIKey     string `json:"POLY_API_KEY"`
	PolyPassphrase string `json:"POLY_PASSPHRASE"`
}

// ToMap 转换为请求头 map
func (h *L2PolyHeader) ToMap() map[string]string {
	return map[string]string{
		"POLY_ADDRESS":    h.PolyAddress,
		"POLY_SIGNATURE":  h.PolySignature,
		"POLY_TIMESTAMP":  h.PolyTimestamp,
		"POLY_API_KEY":    h.PolyAPIKey,
		"POLY_PASSPHRASE": h.PolyPassphrase,
	}
}

// L2WithBuilderHeader 附加 Builder 凭证的 L2 认证头
type L2WithBuilderHeader struct {
	L2PolyHeader
	PolyBuilderAPIKey     string `json:"POLY_BUILDER_API_KEY"`
	PolyBuilderTimestamp  string `json:"POLY_BUILDER_TIMESTAMP"`
	PolyBuilderPassphrase string `json:"POLY_BUILDER_PASSPHRASE"`
	PolyBuilderSignature  string `json:"POLY_BUILDER_SIGNATURE"`
}

// ToMap 转换为请求头 map
func (h *L2WithBuilderHeader) ToMap() map[string]string {
	m := h.L2PolyHeader.ToMap()
	m["POLY_BUILDER_API_KEY"] = h.PolyBuilderAPIKey
	m["POLY_BUILDER_TIMESTAMP"] = h.PolyBuilderTimestamp
	m["POLY_BUILDER_PASSPHRASE"] = h.PolyBuilderPassphrase
	m["POLY_BUILDER_SIGNATURE"] = h.PolyBuilderSignature
	return m
}
