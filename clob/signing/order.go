package signing

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/betbot/goclob/clob/types"
)

// OrderData 参与签名的订单字段。金额一律为最小整数单位，
// 价格在构造阶段已折算进 MakerAmount/TakerAmount。
type OrderData struct {
	Salt          *big.Int
	Maker         string
	Signer        string
	Taker         string
	TokenID       *big.Int
	MakerAmount   *big.Int
	TakerAmount   *big.Int
	Expiration    *big.Int
	Nonce         *big.Int
	FeeRateBps    *big.Int
	Side          types.Side
	SignatureType types.SignatureType
}

// orderTypes 订单的 EIP712 类型定义。
// 字段顺序是链上合约的线格式约定，任何偏差都会导致合约拒绝签名。
func orderTypes() apitypes.Types {
	return apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
			{Name: "verifyingContract", Type: "address"},
		},
		"Order": {
			{Name: "salt", Type: "uint256"},
			{Name: "maker", Type: "address"},
			{Name: "signer", Type: "address"},
			{Name: "taker", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
			{Name: "makerAmount", Type: "uint256"},
			{Name: "takerAmount", Type: "uint256"},
			{Name: "expiration", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "feeRateBps", Type: "uint256"},
			{Name: "side", Type: "uint8"},
			{Name: "signatureType", Type: "uint8"},
		},
	}
}

// sideValue 合约侧的方向编码：BUY = 0, SELL = 1
func sideValue(side types.Side) *big.Int {
	if side == types.SideBuy {
		return big.NewInt(0)
	}
	return big.NewInt(1)
}

// OrderDigest 计算订单的 EIP712 摘要。
// 域为 (ExchangeDomainName, ExchangeDomainVersion, chainId, exchangeAddress)。
func OrderDigest(chainID types.Chain, exchangeAddress string, order *OrderData) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types:       orderTypes(),
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              ExchangeDomainName,
			Version:           ExchangeDomainVersion,
			ChainId:           math.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: exchangeAddress,
		},
		Message: map[string]interface{}{
			"salt":          order.Salt,
			"maker":         common.HexToAddress(order.Maker).Hex(),
			"signer":        common.HexToAddress(order.Signer).Hex(),
			"taker":         common.HexToAddress(order.Taker).Hex(),
			"tokenId":       order.TokenID,
			"makerAmount":   order.MakerAmount,
			"takerAmount":   order.TakerAmount,
			"expiration":    order.Expiration,
			"nonce":         order.Nonce,
			"feeRateBps":    order.FeeRateBps,
			"side":          sideValue(order.Side),
			"signatureType": big.NewInt(int64(order.SignatureType)),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "计算订单 EIP712 哈希失败")
	}
	return digest, nil
}

// BuildOrderSignature 计算订单摘要并请求注入的签名能力签名。
// 签名失败不重试，原样上抛；相同输入 + 确定性签名器 ⇒ 字节级相同的签名。
func BuildOrderSignature(
	ctx context.Context,
	signer Signer,
	chainID types.Chain,
	exchangeAddress string,
	order *OrderData,
) (string, error) {
	digest, err := OrderDigest(chainID, exchangeAddress, order)
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(ctx, digest)
	if err != nil {
		return "", err
	}

	return "0x" + common.Bytes2Hex(signature), nil
}

// AttachSignature 组装最终的已签名订单载荷。
// 三种签名类型共用同一个组装路径，区别只在 maker/signer 角色与
// EIP-1271 的链上验证（客户端无法预校验，只负责附加签名）。
func AttachSignature(order *OrderData, tokenID string, signature string) *types.SignedOrder {
	return &types.SignedOrder{
		Salt:          order.Salt.String(),
		Maker:         order.Maker,
		Signer:        order.Signer,
		Taker:         order.Taker,
		TokenID:       tokenID,
		MakerAmount:   order.MakerAmount.String(),
		TakerAmount:   order.TakerAmount.String(),
		Expiration:    order.Expiration.String(),
		Nonce:         order.Nonce.String(),
		FeeRateBps:    order.FeeRateBps.String(),
		Side:          order.Side,
		SignatureType: int(order.SignatureType),
		Signature:     signature,
	}
}

// maxSalt = 2^256 - 1
var maxSalt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// RandomSalt 生成随机 256 位 salt
func RandomSalt() (*big.Int, error) {
	salt, err := rand.Int(rand.Reader, maxSalt)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "生成随机 salt 失败")
	}
	return salt, nil
}
