package signing

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/betbot/goclob/clob/types"
)

// clobAuthTypes L1 认证的 EIP712 类型定义。
// ClobAuth 域不含 verifyingContract（认证消息不绑定合约）。
func clobAuthTypes() apitypes.Types {
	return apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
		},
		"ClobAuth": {
			{Name: "address", Type: "address"},
			{Name: "timestamp", Type: "string"},
			{Name: "nonce", Type: "uint256"},
			{Name: "message", Type: "string"},
		},
	}
}

// ClobAuthDigest 计算 L1 认证消息的 EIP712 摘要：
// keccak256(0x1901 ‖ domainSeparator ‖ structHash)
func ClobAuthDigest(address common.Address, chainID types.Chain, timestamp int64, nonce int64) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types:       clobAuthTypes(),
		PrimaryType: "ClobAuth",
		Domain: apitypes.TypedDataDomain{
			Name:    ClobDomainName,
			Version: ClobVersion,
			ChainId: math.NewHexOrDecimal256(int64(chainID)),
		},
		Message: map[string]interface{}{
			"address":   address.Hex(),
			"timestamp": fmt.Sprintf("%d", timestamp),
			"nonce":     big.NewInt(nonce),
			"message":   MsgToSign,
		},
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "计算域分隔符失败")
	}
	structHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "计算消息哈希失败")
	}

	rawData := []byte("\x19\x01")
	rawData = append(rawData, domainSeparator...)
	rawData = append(rawData, structHash...)
	return crypto.Keccak256(rawData), nil
}

// BuildClobEip712Signature 构建 L1 认证的 EIP712 签名（0x 前缀十六进制）。
// 对相同的 (address, timestamp, nonce) 结果是确定的。
func BuildClobEip712Signature(
	ctx context.Context,
	signer Signer,
	chainID types.Chain,
	timestamp int64,
	nonce int64,
) (string, error) {
	digest, err := ClobAuthDigest(signer.Address(), chainID, timestamp, nonce)
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(ctx, digest)
	if err != nil {
		return "", err
	}

	return "0x" + common.Bytes2Hex(signature), nil
}
