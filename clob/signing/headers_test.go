package signing

import (
	"context"
	"testing"

	"github.com/betbot/goclob/clob/types"
)

func TestCreateL1Headers(t *testing.T) {
	signer := testSigner(t)
	ts := int64(1700000000)
	nonce := int64(3)

	headers, err := CreateL1Headers(context.Background(), signer, types.ChainPolygon, &nonce, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if headers.PolyAddress != signer.Address().Hex() {
		t.Fatalf("POLY_ADDRESS = %q", headers.PolyAddress)
	}
	if headers.PolyTimestamp != "1700000000" {
		t.Fatalf("POLY_TIMESTAMP = %q", headers.PolyTimestamp)
	}
	if headers.PolyNonce != "3" {
		t.Fatalf("POLY_NONCE = %q", headers.PolyNonce)
	}

	want, err := BuildClobEip712Signature(context.Background(), signer, types.ChainPolygon, ts, nonce)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}
	if headers.PolySignature != want {
		t.Fatalf("POLY_SIGNATURE = %q, want %q", headers.PolySignature, want)
	}

	m := headers.ToMap()
	for _, key := range []string{"POLY_ADDRESS", "POLY_SIGNATURE", "POLY_TIMESTAMP", "POLY_NONCE"} {
		if m[key] == "" {
			t.Fatalf("ToMap missing %s", key)
		}
	}
}

func TestCreateL2Headers(t *testing.T) {
	signer := testSigner(t)
	creds := &types.ApiKeyCreds{
		Key:        "2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39",
		Secret:     testSecret,
		Passphrase: "passphrase",
	}
	ts := int64(1700000000)
	body := `{"orderID":"0xabc"}`
	args := &types.L2HeaderArgs{Method: "DELETE", RequestPath: "/order", Body: &body}

	headers, err := CreateL2Headers(signer.Address(), creds, args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if headers.PolyAddress != signer.Address().Hex() {
		t.Fatalf("POLY_ADDRESS = %q", headers.PolyAddress)
	}
	if headers.PolyAPIKey != creds.Key || headers.PolyPassphrase != creds.Passphrase {
		t.Fatalf("creds fields: %q / %q", headers.PolyAPIKey, headers.PolyPassphrase)
	}
	if headers.PolyTimestamp != "1700000000" {
		t.Fatalf("POLY_TIMESTAMP = %q", headers.PolyTimestamp)
	}

	want, err := BuildPolyHmacSignature(creds.Secret, ts, "DELETE", "/order", &body)
	if err != nil {
		t.Fatalf("hmac: %v", err)
	}
	if headers.PolySignature != want {
		t.Fatalf("POLY_SIGNATURE = %q, want %q", headers.PolySignature, want)
	}
}

func TestCreateL2Headers_MissingCreds(t *testing.T) {
	signer := testSigner(t)
	args := &types.L2HeaderArgs{Method: "GET", RequestPath: "/auth/api-keys"}

	_, err := CreateL2Headers(signer.Address(), nil, args, nil)
	if err == nil {
		t.Fatal("expected error for nil creds")
	}
	if !types.IsKind(err, types.ErrMissingCredentials) {
		t.Fatalf("error kind = %q, want MISSING_CREDENTIALS", types.KindOf(err))
	}
}

func TestCreateL2WithBuilderHeaders(t *testing.T) {
	signer := testSigner(t)
	creds := &types.ApiKeyCreds{
		Key:        "2c08d0ef-8c2d-4d6f-8f5b-1b3f1e4cbb39",
		Secret:     testSecret,
		Passphrase: "passphrase",
	}
	builder := &types.BuilderConfig{
		Creds: types.ApiKeyCreds{
			Key:        "9f1b79a1-5e2c-40a7-9b65-0d4a8f25c001",
			Secret:     "+//+Pj8Bq83vECAwQFBgcA==",
			Passphrase: "builder-passphrase",
		},
	}
	ts := int64(1700000000)
	args := &types.L2HeaderArgs{Method: "POST", RequestPath: "/order"}

	headers, err := CreateL2WithBuilderHeaders(signer.Address(), creds, builder, args, &ts)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Builder 签名覆盖相同描述符但使用 Builder 的 secret
	if headers.PolyBuilderSignature == headers.PolySignature {
		t.Fatal("builder signature should differ from user signature")
	}
	if headers.PolyBuilderTimestamp != headers.PolyTimestamp {
		t.Fatal("builder timestamp should match user timestamp")
	}
	if headers.PolyBuilderAPIKey != builder.Creds.Key {
		t.Fatalf("builder key = %q", headers.PolyBuilderAPIKey)
	}

	want, err := BuildPolyHmacSignature(builder.Creds.Secret, ts, "POST", "/order", nil)
	if err != nil {
		t.Fatalf("hmac: %v", err)
	}
	if headers.PolyBuilderSignature != want {
		t.Fatalf("builder signature = %q, want %q", headers.PolyBuilderSignature, want)
	}

	m := headers.ToMap()
	for _, key := range []string{"POLY_ADDRESS", "POLY_SIGNATURE", "POLY_TIMESTAMP", "POLY_API_KEY",
		"POLY_PASSPHRASE", "POLY_BUILDER_API_KEY", "POLY_BUILDER_SIGNATURE"} {
		if m[key] == "" {
			t.Fatalf("ToMap missing %s", key)
		}
	}
}

func TestCreateL2WithBuilderHeaders_MissingBuilder(t *testing.T) {
	signer := testSigner(t)
	creds := &types.ApiKeyCreds{Key: "k", Secret: testSecret, Passphrase: "p"}
	args := &types.L2HeaderArgs{Method: "GET", RequestPath: "/data/orders"}

	_, err := CreateL2WithBuilderHeaders(signer.Address(), creds, nil, args, nil)
	if err == nil {
		t.Fatal("expected error for nil builder")
	}
	if !types.IsKind(err, types.ErrMissingCredentials) {
		t.Fatalf("error kind = %q, want MISSING_CREDENTIALS", types.KindOf(err))
	}
}
