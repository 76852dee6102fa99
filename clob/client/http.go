package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/betbot/goclob/clob/types"
)

// httpClient resty 封装。负责重试与 429 限流退避；
// 认证头由调用侧注入，这一层不做任何签名逻辑。
type httpClient struct {
	client *resty.Client
}

func newHTTPClient(host string) *httpClient {
	// resty 会自动从环境变量读取代理配置（HTTP_PROXY, HTTPS_PROXY, http_proxy, https_proxy）
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(host, "/")).
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			// 429 限流时优先使用 Retry-After 头
			if resp.StatusCode() == http.StatusTooManyRequests {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
						return seconds, nil
					}
				}
				return 10 * time.Second, nil
			}
			return 0, nil
		})

	return &httpClient{client: client}
}

// requestOptions 单次请求的可选项
type requestOptions struct {
	headers map[string]string
	params  map[string]string
	body    any
}

func (h *httpClient) newRequest(ctx context.Context) *resty.Request {
	r := h.client.R()
	if ctx != nil {
		r.SetContext(ctx)
	}
	r.SetHeader("Accept", "*/*")
	r.SetHeader("Connection", "keep-alive")
	r.SetHeader("User-Agent", "@betbot/goclob")
	return r
}

// do 执行请求并把结果反序列化到 out。
// 非 2xx 或传输失败统一包装为 TRANSPORT_ERROR，原样透传给调用方。
func (h *httpClient) do(ctx context.Context, method, endpoint string, opt *requestOptions, out any) error {
	r := h.newRequest(ctx)
	if opt != nil {
		if opt.headers != nil {
			r.SetHeaders(opt.headers)
		}
		if opt.params != nil {
			r.SetQueryParams(opt.params)
		}
		if opt.body != nil {
			r.SetHeader("Content-Type", "application/json")
			switch b := opt.body.(type) {
			case string:
				r.SetBody(b)
			case []byte:
				r.SetBody(b)
			default:
				r.SetBody(opt.body)
			}
		}
	}
	if out != nil {
		r.SetResult(out)
	}

	var resp *resty.Response
	var err error
	switch strings.ToUpper(method) {
	case http.MethodGet:
		resp, err = r.Get(endpoint)
	case http.MethodPost:
		resp, err = r.Post(endpoint)
	case http.MethodDelete:
		resp, err = r.Delete(endpoint)
	case http.MethodPut:
		resp, err = r.Put(endpoint)
	default:
		return types.NewError(types.ErrTransport, "不支持的方法: %s", method)
	}

	if err != nil {
		return types.WrapError(types.ErrTransport, err, "%s %s 请求失败", method, endpoint)
	}
	if !resp.IsSuccess() {
		return types.WrapError(types.ErrTransport,
			errors.Errorf("http non-2xx: %s", summarizeBody(resp.Body())),
			"%s %s 返回 %d", method, endpoint, resp.StatusCode())
	}
	return nil
}

// get GET 请求
func (h *httpClient) get(ctx context.Context, endpoint string, headers, params map[string]string, out any) error {
	return h.do(ctx, http.MethodGet, endpoint, &requestOptions{headers: headers, params: params}, out)
}

// post POST 请求
func (h *httpClient) post(ctx context.Context, endpoint string, headers map[string]string, body any, out any) error {
	return h.do(ctx, http.MethodPost, endpoint, &requestOptions{headers: headers, body: body}, out)
}

// delete DELETE 请求
func (h *httpClient) delete(ctx context.Context, endpoint string, headers map[string]string, body any, out any) error {
	return h.do(ctx, http.MethodDelete, endpoint, &requestOptions{headers: headers, body: body}, out)
}

// summarizeBody 截取错误响应体用于日志
func summarizeBody(b []byte) string {
	var body any
	if err := json.Unmarshal(b, &body); err == nil {
		if s, err := json.Marshal(body); err == nil {
			b = s
		}
	}
	const max = 512
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
