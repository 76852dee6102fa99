package signing

import (
	"context"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/betbot/goclob/clob/types"
)

// CreateL1Headers 创建 L1 认证头（钱包 EIP712 签名）。
// 仅用于 API 密钥的创建/推导；相同 (address, timestamp, nonce) 下幂等。
func CreateL1Headers(
	ctx context.Context,
	signer Signer,
	chainID types.Chain,
	nonce *int64,
	timestamp *int64,
) (*types.L1PolyHeader, error) {
	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	var n int64
	if nonce != nil {
		n = *nonce
	}

	sig, err := BuildClobEip712Signature(ctx, signer, chainID, ts, n)
	if err != nil {
		return nil, err
	}

	return &types.L1PolyHeader{
		PolyAddress:   signer.Address().Hex(),
		PolySignature: sig,
		PolyTimestamp: strconv.FormatInt(ts, 10),
		PolyNonce:     strconv.FormatInt(n, 10),
	}, nil
}

// CreateL2Headers 创建 L2 认证头（API 密钥 HMAC 签名）。
// creds 未配置时返回 MISSING_CREDENTIALS，不发起任何网络调用。
func CreateL2Headers(
	address common.Address,
	creds *types.ApiKeyCreds,
	args *types.L2HeaderArgs,
	timestamp *int64,
) (*types.L2PolyHeader, error) {
	if creds == nil {
		return nil, types.NewError(types.ErrMissingCredentials, "L2 认证不可用: API 凭证未配置")
	}

	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := BuildPolyHmacSignature(
		creds.Secret,
		ts,
		args.Method,
		args.RequestPath,
		args.Body,
	)
	if err != nil {
		return nil, err
	}

	return &types.L2PolyHeader{
		PolyAddress:    address.Hex(),
		PolySignature:  sig,
		PolyTimestamp:  strconv.FormatInt(ts, 10),
		PolyAPIKey:     creds.Key,
		PolyPassphrase: creds.Passphrase,
	}, nil
}

// CreateL2WithBuilderHeaders 在 L2 认证头之上附加 Builder 凭证头。
// Builder 签名覆盖与 L2 相同的请求描述符，但使用 Builder 的 secret。
func CreateL2WithBuilderHeaders(
	address common.Address,
	creds *types.ApiKeyCreds,
	builder *types.BuilderConfig,
	args *types.L2HeaderArgs,
	timestamp *int64,
) (*types.L2WithBuilderHeader, error) {
	l2, err := CreateL2Headers(address, creds, args, timestamp)
	if err != nil {
		return nil, err
	}
	if builder == nil {
		return nil, types.NewError(types.ErrMissingCredentials, "Builder 凭证未配置")
	}

	ts, err := strconv.ParseInt(l2.PolyTimestamp, 10, 64)
	if err != nil {
		return nil, types.WrapError(types.ErrSigning, err, "解析时间戳失败")
	}

	sig, err := BuildPolyHmacSignature(
		builder.Creds.Secret,
		ts,
		args.Method,
		args.RequestPath,
		args.Body,
	)
	if err != nil {
		return nil, err
	}

	return &types.L2WithBuilderHeader{
		L2PolyHeader:          *l2,
		PolyBuilderAPIKey:     builder.Creds.Key,
		PolyBuilderTimestamp:  l2.PolyTimestamp,
		PolyBuilderPassphrase: builder.Creds.Passphrase,
		PolyBuilderSignature:  sig,
	}, nil
}
