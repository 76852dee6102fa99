package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/betbot/goclob/clob/types"
)

// BuildPolyHmacSignature 构建 L2 认证的 HMAC-SHA256 签名。
// 消息为 timestamp ‖ method ‖ requestPath ‖ body 的严格拼接；
// body 为 nil 时按空串处理（交易所按字节校验签名）。
// 返回 URL 安全的 base64（保留 = 填充）。
func BuildPolyHmacSignature(
	secret string,
	timestamp int64,
	method string,
	requestPath string,
	body *string,
) (string, error) {
	message := strconv.FormatInt(timestamp, 10) + method + requestPath
	if body != nil {
		message += *body
	}

	keyData, err := decodeSecret(secret)
	if err != nil {
		return "", types.WrapError(types.ErrSigning, err, "解码 secret 失败")
	}

	mac := hmac.New(sha256.New, keyData)
	mac.Write([]byte(message))
	signature := mac.Sum(nil)

	sigBase64 := base64.StdEncoding.EncodeToString(signature)

	// 转换为 URL 安全的 base64（保留 = 后缀）
	sigURLSafe := strings.ReplaceAll(sigBase64, "+", "-")
	sigURLSafe = strings.ReplaceAll(sigURLSafe, "/", "_")

	return sigURLSafe, nil
}

// decodeSecret 解码 base64 secret。
// 服务端下发的 secret 可能是 base64url 格式（- 和 _），统一转回标准字母表。
func decodeSecret(secret string) ([]byte, error) {
	sanitized := strings.ReplaceAll(secret, "-", "+")
	sanitized = strings.ReplaceAll(sanitized, "_", "/")

	sanitized = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '+' || r == '/' || r == '=' {
			return r
		}
		return -1
	}, sanitized)

	return base64.StdEncoding.DecodeString(sanitized)
}
