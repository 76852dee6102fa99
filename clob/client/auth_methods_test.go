package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/goclob/clob/types"
)

func requireL1Headers(t *testing.T, r *http.Request) {
	t.Helper()
	for _, key := range []string{"POLY_ADDRESS", "POLY_SIGNATURE", "POLY_TIMESTAMP", "POLY_NONCE"} {
		if r.Header.Get(key) == "" {
			t.Fatalf("missing header %s", key)
		}
	}
}

func TestCreateAPIKey(t *testing.T) {
	signer := newTestSigner(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/api-key", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		requireL1Headers(t, r)
		assert.Equal(t, signer.Address().Hex(), r.Header.Get("POLY_ADDRESS"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.ApiKeyRaw{
			ApiKey:     "2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39",
			Secret:     testApiSecret,
			Passphrase: "passphrase",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, signer)

	creds, err := c.CreateAPIKey(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39", creds.Key)
	assert.Equal(t, testApiSecret, creds.Secret)
	assert.Equal(t, "passphrase", creds.Passphrase)
}

func TestCreateAPIKey_RejectsMalformedKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/api-key", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.ApiKeyRaw{
			ApiKey:     "not-a-uuid",
			Secret:     testApiSecret,
			Passphrase: "passphrase",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, newTestSigner(t))

	_, err := c.CreateAPIKey(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrTransport))
}

func TestCreateOrDeriveAPIKey_FallsBackToDerive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/api-key", func(w http.ResponseWriter, r *http.Request) {
		// 已存在凭证时创建被拒
		http.Error(w, `{"error":"creds already exist"}`, http.StatusBadRequest)
	})
	mux.HandleFunc("/auth/derive-api-key", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		requireL1Headers(t, r)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.ApiKeyRaw{
			ApiKey:     "9f1b79a1-5e2c-40a7-9b65-0d4a8f25c001",
			Secret:     testApiSecret,
			Passphrase: "derived",
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, newTestSigner(t))

	creds, err := c.CreateOrDeriveAPIKey(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "9f1b79a1-5e2c-40a7-9b65-0d4a8f25c001", creds.Key)
	assert.Equal(t, "derived", creds.Passphrase)
}

func TestGetAPIKeys(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/api-keys", func(w http.ResponseWriter, r *http.Request) {
		requireL2Headers(t, r)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"apiKeys": {"2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39"},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, types.ChainPolygon, newTestSigner(t), WithCreds(testCreds()))

	keys, err := c.GetAPIKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39"}, keys)
}

func TestDeriveAPIKey_NoSigner(t *testing.T) {
	c := NewClient("https://clob.example.com", types.ChainPolygon, nil)

	_, err := c.DeriveAPIKey(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrSigning))
}
