package api

import (
	"context"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CurrentUserClient 当前用户客户端，操作固定指向令牌对应的用户
type CurrentUserClient struct {
	http *httpclient.Client
}

func newCurrentUserClient(client *httpclient.Client) *CurrentUserClient {
	return &CurrentUserClient{http: client}
}

// Get 查询当前用户
func (c *CurrentUserClient) Get(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.http.GetJSON(ctx, "/me", nil, &user); err != nil {
		return nil, err
	}
	logger.Debug(ctx, "Retrieved current user", zap.String("username", user.Username))
	return &user, nil
}

// Update 更新当前用户资料
func (c *CurrentUserClient) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, errors.New("user cannot be nil")
	}

	var result models.User
	if err := c.http.PutJSON(ctx, "/me", user, &result); err != nil {
		return nil, err
	}
	logger.Info(ctx, "Updated current user", zap.String("username", result.Username))
	return &result, nil
}

// ChangePassword 修改当前用户密码，返回服务端修改时间戳
func (c *CurrentUserClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) (time.Time, error) {
	if oldPassword == "" || newPassword == "" {
		return time.Time{}, errors.New("old and new passwords are required")
	}

	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	var stamp string
	if err := c.http.PutJSON(ctx, "/me/password", body, &stamp); err != nil {
		return time.Time{}, err
	}

	modifyTime, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp in response: %q", stamp)
	}
	logger.Info(ctx, "Password changed")
	return modifyTime, nil
}

// UpdateAvatar 更新当前用户头像地址
func (c *CurrentUserClient) UpdateAvatar(ctx context.Context, avatarURL string) (time.Time, error) {
	body := map[string]string{"avatar_url": avatarURL}
	var stamp string
	if err := c.http.PutJSON(ctx, "/me/avatar", body, &stamp); err != nil {
		return time.Time{}, err
	}

	modifyTime, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp in response: %q", stamp)
	}
	return modifyTime, nil
}
