package client

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/types"
	"github.com/betbot/goclob/pkg/config"
)

// go-ethereum-hdwallet 文档中的公开测试助记词
const testMnemonic = "tag volcano eight thank tide danger coast health above argue embrace heavy"

func TestNewClientFromConfig_PrivateKey(t *testing.T) {
	cfg := &config.Config{
		Host:    "https://clob.example.com",
		ChainID: 137,
		Wallet:  config.WalletConfig{PrivateKey: testPrivateKey},
	}

	c, err := NewClientFromConfig(cfg)
	require.NoError(t, err)

	addr, err := c.GetAddress()
	require.NoError(t, err)
	assert.Equal(t, newTestSigner(t).Address(), addr)
	assert.Equal(t, types.ChainPolygon, c.GetChainID())
}

func TestNewClientFromConfig_Mnemonic(t *testing.T) {
	cfg := &config.Config{
		Host:    "https://clob.example.com",
		ChainID: 137,
		Wallet:  config.WalletConfig{Mnemonic: testMnemonic},
	}

	c, err := NewClientFromConfig(cfg)
	require.NoError(t, err)

	addr, err := c.GetAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xC49926C4124cEe1cbA0Ea94Ea31a6c12318df947"), addr)
}

func TestNewClientFromConfig_Options(t *testing.T) {
	funder := "0x00000000000000000000000000000000000000aa"
	cfg := &config.Config{
		Host:    "https://clob.example.com/",
		ChainID: 80002,
		Wallet: config.WalletConfig{
			PrivateKey:    testPrivateKey,
			FunderAddress: funder,
		},
		Creds:          &config.CredsConfig{Key: "key", Secret: "secret", Passphrase: "pass"},
		SignatureType:  1,
		UseServerTime:  true,
		PriceBufferBps: 100,
	}

	c, err := NewClientFromConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, c.CanL2Auth())
	assert.Equal(t, types.ChainAmoy, c.GetChainID())
	assert.Equal(t, types.SignatureTypePolyProxy, c.signatureType)
	assert.Equal(t, funder, c.funderAddress)
	assert.True(t, c.useServerTime)
	assert.Equal(t, int64(100), c.priceBufferBps)
}

func TestNewClientFromConfig_BadWallet(t *testing.T) {
	_, err := NewClientFromConfig(&config.Config{
		Host:    "https://clob.example.com",
		ChainID: 137,
		Wallet:  config.WalletConfig{PrivateKey: "not-a-key"},
	})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))

	_, err = NewClientFromConfig(&config.Config{
		Host:    "https://clob.example.com",
		ChainID: 137,
		Wallet:  config.WalletConfig{Mnemonic: "not a valid mnemonic"},
	})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))
}

func TestNewClientFromConfig_NoWallet(t *testing.T) {
	// 无钱包 ⇒ 纯公开数据客户端
	c, err := NewClientFromConfig(&config.Config{
		Host:    "https://clob.example.com",
		ChainID: 137,
	})
	require.NoError(t, err)

	_, err = c.GetAddress()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))
}
