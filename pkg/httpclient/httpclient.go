package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// 错误类型定义
var (
	ErrInvalidURL        = errors.New("invalid URL")
	ErrJSONMarshal       = errors.New("JSON marshal failed")
	ErrJSONUnmarshal     = errors.New("JSON unmarshal failed")
	ErrStatusNotOK       = errors.New("HTTP status code is not successful")
	ErrNotFound          = errors.New("resource not found")
	ErrEmptyResponseBody = errors.New("response body is empty")
)

func IsRetriableError(err error) bool {
	if err == nil {
		return false
	}

	// 检查是否是我们自定义的HTTP 500错误
	if strings.Contains(err.Error(), "server returned status code 5") {
		return true
	}

	// 检查常见的可重试网络错误
	if strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "TLS handshake timeout") {
		return true
	}

	return false
}

// Client 是 HTTP 客户端的主结构体
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Headers    map[string]string
	Retries    int
	Backoff    time.Duration

	tokenMu       sync.RWMutex
	token         string
	tokenProvider func() string

	limiter *rate.Limiter
	tracer  trace.Tracer
}

// Option 是配置客户端的函数类型
type Option func(*Client)

// WithTimeout 设置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = timeout
	}
}

// WithRetries 设置重试次数
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.Retries = retries
	}
}

// WithBackoff 设置重试退避时间
func WithBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		c.Backoff = backoff
	}
}

// WithHeader 设置默认请求头
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.Headers[key] = value
	}
}

// WithHTTPClient 使用自定义的HTTP客户端
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = client
	}
}

// WithToken 设置静态访问令牌
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTokenProvider 设置动态令牌提供函数，优先于静态令牌
func WithTokenProvider(provider func() string) Option {
	return func(c *Client) {
		c.tokenProvider = provider
	}
}

// WithRateLimit 设置客户端出站限流
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient 创建一个新的 HTTP 客户端
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Headers: make(map[string]string),
		Retries: 3,                      // 默认重试3次
		Backoff: 500 * time.Millisecond, // 默认退避500毫秒
		tracer:  otel.Tracer("go_admin_sdk/httpclient"),
	}

	// 应用选项
	for _, opt := range opts {
		opt(client)
	}

	// 设置默认Content-Type
	if _, exists := client.Headers["Content-Type"]; !exists {
		client.Headers["Content-Type"] = "application/json"
	}

	return client
}

// SetHeader 设置一个 HTTP 头
func (c *Client) SetHeader(key, value string) {
	c.Headers[key] = value
}

// SetToken 更新访问令牌（令牌刷新后调用）
func (c *Client) SetToken(token string) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()
}

// Token 返回当前生效的访问令牌
func (c *Client) Token() string {
	if c.tokenProvider != nil {
		return c.tokenProvider()
	}
	c.tokenMu.RLock()
	defer c.tokenMu.RUnlock()
	return c.token
}

// request 是发送 HTTP 请求的通用方法
func (c *Client) request(ctx context.Context, method, path string, params url.Values, body any, contentType string) (*http.Response, error) {
	// 构建URL
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}

	// 添加查询参数
	if params != nil {
		u.RawQuery = params.Encode()
	}

	// 处理请求体，序列化为字节以便重试时重建请求
	var bodyBytes []byte
	if body != nil {
		if reader, ok := body.(io.Reader); ok {
			bodyBytes, err = io.ReadAll(reader)
			if err != nil {
				return nil, err
			}
		} else {
			bodyBytes, err = json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrJSONMarshal, err)
			}
		}
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.url", u.String()),
		),
	)
	defer span.End()

	newRequest := func() (*http.Request, error) {
		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}
		req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
		if err != nil {
			return nil, err
		}

		// 添加自定义头
		for key, value := range c.Headers {
			req.Header.Set(key, value)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("X-Request-ID", uuid.NewString())
		return req, nil
	}

	// 执行请求（带重试逻辑）
	var resp *http.Response
	for i := 0; i <= c.Retries; i++ {
		// 出站限流
		if c.limiter != nil {
			if err = c.limiter.Wait(ctx); err != nil {
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
		}

		var req *http.Request
		req, err = newRequest()
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		resp, err = c.HTTPClient.Do(req)

		// 处理网络错误（如连接超时）
		if err != nil {
			if !IsRetriableError(err) {
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			// 可重试的网络错误，继续循环
		} else {
			// 检查HTTP状态码是否为可重试的服务器错误
			if resp.StatusCode >= 500 && resp.StatusCode < 600 {
				// 关闭响应体以便重试
				resp.Body.Close()
				err = fmt.Errorf("server returned status code %d", resp.StatusCode)
				if !IsRetriableError(err) {
					span.SetStatus(codes.Error, err.Error())
					return nil, err
				}
			} else {
				span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
				break
			}
		}

		// 重试前等待（使用指数退避）
		if i < c.Retries {
			backoffTime := c.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoffTime):
				continue
			case <-ctx.Done():
				span.SetStatus(codes.Error, ctx.Err().Error())
				return nil, ctx.Err()
			}
		}
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// Get 发送 GET 请求
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	return c.request(ctx, http.MethodGet, path, params, nil, "")
}

// Head 发送 HEAD 请求
func (c *Client) Head(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	return c.request(ctx, http.MethodHead, path, params, nil, "")
}

// Post 发送 POST 请求
func (c *Client) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPost, path, nil, body, "")
}

// Put 发送 PUT 请求
func (c *Client) Put(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPut, path, nil, body, "")
}

// Patch 发送 PATCH 请求
func (c *Client) Patch(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.request(ctx, http.MethodPatch, path, nil, body, "")
}

// Delete 发送 DELETE 请求
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil, "")
}

// DoJSON 发送任意方法的请求并解析JSON响应，response为nil时忽略响应体
func (c *Client) DoJSON(ctx context.Context, method, path string, params url.Values, body, response any) error {
	resp, err := c.request(ctx, method, path, params, body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.handleJSONResponse(resp, response)
}

// GetJSON 发送GET请求并解析JSON响应
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, response any) error {
	return c.DoJSON(ctx, http.MethodGet, path, params, nil, response)
}

// PostJSON 发送POST请求并解析JSON响应
func (c *Client) PostJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPost, path, nil, body, response)
}

// PutJSON 发送PUT请求并解析JSON响应
func (c *Client) PutJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPut, path, nil, body, response)
}

// PatchJSON 发送PATCH请求并解析JSON响应
func (c *Client) PatchJSON(ctx context.Context, path string, body, response any) error {
	return c.DoJSON(ctx, http.MethodPatch, path, nil, body, response)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func (c *Client) DeleteJSON(ctx context.Context, path string, response any) error {
	return c.DoJSON(ctx, http.MethodDelete, path, nil, nil, response)
}

// Payload 下载结果
type Payload struct {
	Data     []byte
	MIME     string
	Filename string
}

// Download 下载文件内容
func (c *Client) Download(ctx context.Context, path string, params url.Values) (*Payload, error) {
	resp, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, nil); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		Data: data,
		MIME: resp.Header.Get("Content-Type"),
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, cdParams, err := mime.ParseMediaType(cd); err == nil {
			payload.Filename = cdParams["filename"]
		}
	}
	return payload, nil
}

// UploadMultipart 以multipart表单上传文件并解析JSON响应
func (c *Client) UploadMultipart(ctx context.Context, path, field, filename string, file io.Reader, params url.Values, response any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	// 附加表单字段
	for key, values := range params {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return err
			}
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := c.request(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.handleJSONResponse(resp, response)
}

// checkStatus 校验响应状态码
func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, string(body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body == nil {
			body, _ = io.ReadAll(resp.Body)
		}
		return fmt.Errorf("%w: %d %s, body: %s", ErrStatusNotOK, resp.StatusCode, http.StatusText(resp.StatusCode), string(body))
	}
	return nil
}

// handleJSONResponse 处理JSON响应
func (c *Client) handleJSONResponse(resp *http.Response, response any) error {
	// 读取响应体
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// 检查状态码
	if err := checkStatus(resp, bodyBytes); err != nil {
		return err
	}

	// 如果响应体为空且不需要解析到结构体，则直接返回
	if len(bodyBytes) == 0 {
		if response == nil {
			return nil
		}
		return ErrEmptyResponseBody
	}
	if response == nil {
		return nil
	}

	// 解析JSON
	if err := json.Unmarshal(bodyBytes, response); err != nil {
		return fmt.Errorf("%w: %s, body: %s", ErrJSONUnmarshal, err, string(bodyBytes))
	}

	return nil
}
