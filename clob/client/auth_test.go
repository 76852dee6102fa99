package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/signing"
	"github.com/betbot/goclob/clob/types"
)

const testPrivateKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func newTestSigner(t *testing.T) *signing.LocalSigner {
	t.Helper()
	signer, err := signing.LocalSignerFromHex(testPrivateKey)
	require.NoError(t, err)
	return signer
}

func TestCanL1Auth(t *testing.T) {
	c := NewClient("https://clob.example.com", types.ChainPolygon, nil)
	err := c.CanL1Auth()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))

	c = NewClient("https://clob.example.com", types.ChainPolygon, newTestSigner(t))
	assert.NoError(t, c.CanL1Auth())
}

func TestCanL2Auth_MissingCreds(t *testing.T) {
	c := NewClient("https://clob.example.com", types.ChainPolygon, newTestSigner(t))

	err := c.CanL2Auth()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrMissingCredentials))

	c.SetCreds(&types.ApiKeyCreds{Key: "k", Secret: "c2VjcmV0", Passphrase: "p"})
	assert.NoError(t, c.CanL2Auth())
}

func TestCreateL2Headers_FailsBeforeTransport(t *testing.T) {
	// 凭证缺失必须在本地失败，不发起任何网络调用
	// （host 指向不存在的地址，发出请求会报传输错误而非凭证错误）
	c := NewClient("http://127.0.0.1:1", types.ChainPolygon, newTestSigner(t))

	_, err := c.createL2Headers(context.Background(), &types.L2HeaderArgs{
		Method:      "GET",
		RequestPath: EndpointGetAPIKeys,
	})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrMissingCredentials))
}

func TestGetAddress(t *testing.T) {
	signer := newTestSigner(t)
	c := NewClient("https://clob.example.com", types.ChainPolygon, signer)

	addr, err := c.GetAddress()
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), addr)

	c = NewClient("https://clob.example.com", types.ChainPolygon, nil)
	_, err = c.GetAddress()
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))
}

func TestClientOptions(t *testing.T) {
	creds := &types.ApiKeyCreds{Key: "k", Secret: "s", Passphrase: "p"}
	c := NewClient("https://clob.example.com/", types.ChainAmoy, newTestSigner(t),
		WithCreds(creds),
		WithSignatureType(types.SignatureTypeGnosisSafe),
		WithFunderAddress("0x00000000000000000000000000000000000000aa"),
		WithPriceBufferBps(100),
	)

	assert.Equal(t, "https://clob.example.com", c.GetHost())
	assert.Equal(t, types.ChainAmoy, c.GetChainID())
	assert.Equal(t, creds, c.creds)
	assert.Equal(t, types.SignatureTypeGnosisSafe, c.signatureType)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", c.funderAddress)
	assert.Equal(t, int64(100), c.priceBufferBps)
}
