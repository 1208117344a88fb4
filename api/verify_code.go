package api

import (
	"context"

	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// VerifyCodeClient 验证码客户端
type VerifyCodeClient struct {
	http *httpclient.Client
}

func newVerifyCodeClient(client *httpclient.Client) *VerifyCodeClient {
	return &VerifyCodeClient{http: client}
}

// sendResponse 验证码下发响应，key用于后续校验
type sendResponse struct {
	Key string `json:"key"`
}

// SendBySms 向手机号下发短信验证码，返回校验用key
func (c *VerifyCodeClient) SendBySms(ctx context.Context, mobile string) (string, error) {
	if mobile == "" {
		return "", errors.New("mobile is required")
	}

	var resp sendResponse
	if err := c.http.PostJSON(ctx, "/verify-code/sms", map[string]string{"mobile": mobile}, &resp); err != nil {
		return "", err
	}
	logger.Info(ctx, "Verification code sent", zap.String("channel", "sms"))
	return resp.Key, nil
}

// SendByEmail 向邮箱下发验证码，返回校验用key
func (c *VerifyCodeClient) SendByEmail(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.New("email is required")
	}

	var resp sendResponse
	if err := c.http.PostJSON(ctx, "/verify-code/email", map[string]string{"email": email}, &resp); err != nil {
		return "", err
	}
	logger.Info(ctx, "Verification code sent", zap.String("channel", "email"))
	return resp.Key, nil
}

// Check 校验验证码
func (c *VerifyCodeClient) Check(ctx context.Context, key, code string) (bool, error) {
	if key == "" || code == "" {
		return false, errors.New("key and code are required")
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.http.PostJSON(ctx, "/verify-code/check", map[string]string{"key": key, "code": code}, &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}
