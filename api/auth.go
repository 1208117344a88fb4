package api

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UserAuthenticateClient 用户认证客户端
type UserAuthenticateClient struct {
	http *httpclient.Client
}

func newUserAuthenticateClient(client *httpclient.Client) *UserAuthenticateClient {
	return &UserAuthenticateClient{http: client}
}

// Login 用户登录，成功后令牌自动注入后续请求
func (c *UserAuthenticateClient) Login(ctx context.Context, username, password string) (*models.Token, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	body := map[string]string{"username": username, "password": password}
	var token models.Token
	if err := c.http.PostJSON(ctx, "/authenticate/user/login", body, &token); err != nil {
		logger.Error(ctx, "Login failed", zap.Error(err), zap.String("username", username))
		return nil, err
	}
	fillExpiry(&token)
	c.http.SetToken(token.AccessToken)

	logger.Info(ctx, "Login successful", zap.String("username", username))
	return &token, nil
}

// Logout 退出登录并清除本地令牌
func (c *UserAuthenticateClient) Logout(ctx context.Context) error {
	if err := c.http.DoJSON(ctx, http.MethodPost, "/authenticate/user/logout", nil, nil, nil); err != nil {
		return err
	}
	c.http.SetToken("")
	logger.Info(ctx, "Logout successful")
	return nil
}

// CheckToken 校验令牌是否有效
func (c *UserAuthenticateClient) CheckToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, errors.New("token is required")
	}

	params := url.Values{}
	params.Set("token", token)
	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.http.GetJSON(ctx, "/authenticate/user/check", params, &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

// RefreshToken 使用刷新令牌换取新令牌
func (c *UserAuthenticateClient) RefreshToken(ctx context.Context, refreshToken string) (*models.Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is required")
	}

	body := map[string]string{"refresh_token": refreshToken}
	var token models.Token
	if err := c.http.PostJSON(ctx, "/authenticate/user/refresh", body, &token); err != nil {
		return nil, err
	}
	fillExpiry(&token)
	c.http.SetToken(token.AccessToken)

	logger.Info(ctx, "Token refreshed", zap.Time("expires_at", token.ExpiresAt))
	return &token, nil
}

// AppAuthenticateClient 应用认证客户端
type AppAuthenticateClient struct {
	http *httpclient.Client

	mu        sync.Mutex // 保护凭据与调度器
	appKey    string
	appSecret string
	scheduler *cron.Cron
	entryID   cron.EntryID
}

func newAppAuthenticateClient(client *httpclient.Client, appKey, appSecret string) *AppAuthenticateClient {
	return &AppAuthenticateClient{
		http:      client,
		appKey:    appKey,
		appSecret: appSecret,
	}
}

// Authenticate 应用认证，成功后令牌自动注入后续请求
func (c *AppAuthenticateClient) Authenticate(ctx context.Context, appKey, appSecret string) (*models.Token, error) {
	if appKey == "" || appSecret == "" {
		return nil, errors.New("app key and secret are required")
	}
	c.mu.Lock()
	c.appKey, c.appSecret = appKey, appSecret
	c.mu.Unlock()

	body := map[string]string{"app_key": appKey, "app_secret": appSecret}
	var token models.Token
	if err := c.http.PostJSON(ctx, "/authenticate/app", body, &token); err != nil {
		logger.Error(ctx, "App authentication failed", zap.Error(err), zap.String("app_key", appKey))
		return nil, err
	}
	fillExpiry(&token)
	c.http.SetToken(token.AccessToken)

	logger.Info(ctx, "App authenticated", zap.String("app_key", appKey), zap.Time("expires_at", token.ExpiresAt))
	return &token, nil
}

// StartAutoRefresh 按cron表达式周期性重新认证，刷新共享传输层的令牌
func (c *AppAuthenticateClient) StartAutoRefresh(spec string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.appKey == "" || c.appSecret == "" {
		return errors.New("authenticate before starting auto refresh")
	}
	if c.scheduler != nil {
		return errors.New("auto refresh already started")
	}

	scheduler := cron.New()
	entryID, err := scheduler.AddFunc(spec, func() {
		ctx := context.Background()
		c.mu.Lock()
		appKey, appSecret := c.appKey, c.appSecret
		c.mu.Unlock()
		if _, err := c.Authenticate(ctx, appKey, appSecret); err != nil {
			logger.Error(ctx, "Scheduled token refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return errors.Wrapf(err, "invalid cron spec %q", spec)
	}

	scheduler.Start()
	c.scheduler = scheduler
	c.entryID = entryID
	logger.Info(context.Background(), "Token auto refresh started", zap.String("spec", spec))
	return nil
}

// StopAutoRefresh 停止周期性令牌刷新
func (c *AppAuthenticateClient) StopAutoRefresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scheduler == nil {
		return
	}
	ctx := c.scheduler.Stop()
	<-ctx.Done() // 等待进行中的刷新结束
	c.scheduler = nil
	logger.Info(context.Background(), "Token auto refresh stopped")
}

// fillExpiry 服务端未给出过期时间时，从JWT声明中解析（不校验签名，签名由服务端持有密钥）
func fillExpiry(token *models.Token) {
	if !token.ExpiresAt.IsZero() || token.AccessToken == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.AccessToken, claims); err != nil {
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		token.ExpiresAt = exp.Time
	}
}

// ExpiresIn 返回令牌剩余有效时长
func ExpiresIn(token *models.Token) time.Duration {
	if token == nil || token.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(token.ExpiresAt)
}
