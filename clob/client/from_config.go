package client

import (
	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/config"
	"github.com/betbot/goclob/pkg/wallet"
)

// SignerFromWallet 从钱包配置解析签名器。
// PrivateKey 优先；只给助记词时按派生路径推导私钥。
// 两者都缺省返回 nil（纯公开数据客户端）。
func SignerFromWallet(w config.WalletConfig) (signing.Signer, error) {
	if w.PrivateKey != "" {
		return signing.LocalSignerFromHex(w.PrivateKey)
	}
	if w.Mnemonic != "" {
		derived, err := wallet.DeriveFromMnemonic(w.Mnemonic, w.DerivationPath)
		if err != nil {
			return nil, types.WrapError(types.ErrSigning, err, "助记词派生私钥失败")
		}
		return signing.LocalSignerFromHex(derived.PrivateKeyHex)
	}
	return nil, nil
}

// NewClientFromConfig 按 pkg/config 配置组装客户端。
// yaml 文件或环境变量加载的配置经此统一进入客户端选项。
func NewClientFromConfig(cfg *config.Config) (*Client, error) {
	signer, err := SignerFromWallet(cfg.Wallet)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithSignatureType(types.SignatureType(cfg.SignatureType)),
	}
	if cfg.Creds != nil {
		opts = append(opts, WithCreds(&types.ApiKeyCreds{
			Key:        cfg.Creds.Key,
			Secret:     cfg.Creds.Secret,
			Passphrase: cfg.Creds.Passphrase,
		}))
	}
	if cfg.Wallet.FunderAddress != "" {
		opts = append(opts, WithFunderAddress(cfg.Wallet.FunderAddress))
	}
	if cfg.UseServerTime {
		opts = append(opts, WithServerTime())
	}
	if cfg.PriceBufferBps > 0 {
		opts = append(opts, WithPriceBufferBps(cfg.PriceBufferBps))
	}

	return NewClient(cfg.Host, types.Chain(cfg.ChainID), signer, opts...), nil
}
