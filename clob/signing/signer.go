package signing

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/betbot/goclob/clob/types"
)

// Signer 签名能力。由调用方注入，可以是本地私钥、
// 硬件钱包或远程签名服务。Sign 对 32 字节摘要做 ECDSA 签名，
// 返回 65 字节 r(32) + s(32) + v(1)。
type Signer interface {
	Address() common.Address
	Sign(ctx context.Context, digest []byte) ([]byte, error)
}

// LocalSigner 基于内存私钥的 Signer 实现
type LocalSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewLocalSigner 从私钥创建本地签名器
func NewLocalSigner(key *ecdsa.PrivateKey) *LocalSigner {
	return &LocalSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// LocalSignerFromHex 从十六进制私钥字符串创建本地签名器
func LocalSignerFromHex(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "解析私钥失败")
	}
	return NewLocalSigner(key), nil
}

// Address 返回签名者地址
func (s *LocalSigner) Address() common.Address {
	return s.address
}

// Sign 对摘要做 ECDSA 签名。本地签名是幂等的纯操作，
// 失败直接上抛，绝不重试。
func (s *LocalSigner) Sign(ctx context.Context, digest []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "签名被取消")
	}
	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "ECDSA 签名失败")
	}
	return sig, nil
}

// PrivateKey 返回底层私钥（CTF 链上操作等场景需要）
func (s *LocalSigner) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}
