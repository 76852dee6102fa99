package wallet

import (
	"strings"

	"github.com/pkg/errors"

	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

// DefaultDerivationPath 以太坊标准派生路径的首个账户
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// DerivedWallet 从助记词派生出的钱包
type DerivedWallet struct {
	PrivateKeyHex string
	EOAAddress    string
}

// DeriveFromMnemonic 从 BIP39 助记词派生私钥。
// derivationPath 为空时使用 DefaultDerivationPath。
func DeriveFromMnemonic(mnemonic string, derivationPath string) (*DerivedWallet, error) {
	mnemonic = strings.TrimSpace(mnemonic)
	derivationPath = strings.TrimSpace(derivationPath)
	if mnemonic == "" {
		return nil, errors.New("mnemonic is required")
	}
	if derivationPath == "" {
		derivationPath = DefaultDerivationPath
	}

	w, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}

	path, err := hdwallet.ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid derivation path")
	}

	acct, err := w.Derive(path, false)
	if err != nil {
		return nil, errors.Wrap(err, "derive failed")
	}

	pk, err := w.PrivateKeyHex(acct)
	if err != nil {
		return nil, errors.Wrap(err, "private key failed")
	}

	return &DerivedWallet{
		PrivateKeyHex: pk,
		EOAAddress:    strings.ToLower(acct.Address.Hex()),
	}, nil
}
