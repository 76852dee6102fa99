package types

import "fmt"

// ErrorKind 错误分类，调用方可以按 kind 分支处理
type ErrorKind string

const (
	ErrInvalidPrice           ErrorKind = "INVALID_PRICE"
	ErrInvalidSize            ErrorKind = "INVALID_SIZE"
	ErrInvalidFeeRate         ErrorKind = "INVALID_FEE_RATE"
	ErrUnknownToken           ErrorKind = "UNKNOWN_TOKEN"
	ErrUnsupportedChain       ErrorKind = "UNSUPPORTED_CHAIN"
	ErrInvalidContractForChain ErrorKind = "INVALID_CONTRACT_FOR_CHAIN"
	ErrInsufficientLiquidity  ErrorKind = "INSUFFICIENT_LIQUIDITY"
	ErrSigning                ErrorKind = "SIGNING_ERROR"
	ErrMissingCredentials     ErrorKind = "MISSING_CREDENTIALS"
	ErrTransport              ErrorKind = "TRANSPORT_ERROR"
)

// ClobError 结构化错误（kind + 可读信息），绝不 panic
type ClobError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ClobError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ClobError) Unwrap() error {
	return e.Err
}

// NewError 创建结构化错误
func NewError(kind ErrorKind, format string, args ...interface{}) *ClobError {
	return &ClobError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError 包装底层错误并附加 kind
func WrapError(kind ErrorKind, err error, format string, args ...interface{}) *ClobError {
	return &ClobError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf 提取错误的分类；非 ClobError 返回空串
func KindOf(err error) ErrorKind {
	if ce, ok := err.(*ClobError); ok {
		return ce.Kind
	}
	return ""
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
