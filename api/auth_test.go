package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/api"
	"github.com/ayxworxfr/go_admin_sdk/config"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken 生成带exp声明的JWT（签名密钥任意，客户端不校验签名）
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestUserAuthenticateClient_Login(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	accessToken := signedToken(t, expiresAt)

	var authHeader string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/authenticate/user/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body["username"])
			// 服务端未返回expires_at，由客户端从JWT声明解析
			json.NewEncoder(w).Encode(map[string]string{
				"access_token":  accessToken,
				"refresh_token": "refresh-1",
				"token_type":    "Bearer",
			})
		case "/department/5":
			authHeader = r.Header.Get("Authorization")
			w.Write([]byte(`{"id":5,"name":"Sales"}`))
		}
	}))

	ctx := context.Background()
	token, err := client.UserAuthenticate().Login(ctx, "admin", "changeme")
	require.NoError(t, err)
	assert.Equal(t, accessToken, token.AccessToken)
	assert.Equal(t, expiresAt.UTC(), token.ExpiresAt.UTC())
	assert.InDelta(t, time.Hour.Seconds(), api.ExpiresIn(token).Seconds(), 5)

	// 登录后令牌自动注入后续请求
	_, err = client.Departments().Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+accessToken, authHeader)
}

func TestUserAuthenticateClient_Login_MissingInput(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))

	_, err := client.UserAuthenticate().Login(context.Background(), "", "changeme")
	assert.Error(t, err)
	_, err = client.UserAuthenticate().Login(context.Background(), "admin", "")
	assert.Error(t, err)
}

func TestUserAuthenticateClient_Logout(t *testing.T) {
	var authHeaders []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))

	ctx := context.Background()
	client.Transport().SetToken("stale-token")
	require.NoError(t, client.UserAuthenticate().Logout(ctx))

	// 退出后本地令牌被清除
	resp, err := client.Transport().Get(ctx, "/department", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Len(t, authHeaders, 2)
	assert.Equal(t, "Bearer stale-token", authHeaders[0])
	assert.Empty(t, authHeaders[1])
}

func TestUserAuthenticateClient_CheckToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authenticate/user/check", r.URL.Path)
		assert.Equal(t, "some-token", r.URL.Query().Get("token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true}`))
	}))

	valid, err := client.UserAuthenticate().CheckToken(context.Background(), "some-token")
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = client.UserAuthenticate().CheckToken(context.Background(), "")
	assert.Error(t, err)
}

func TestAppAuthenticateClient_Authenticate(t *testing.T) {
	accessToken := signedToken(t, time.Now().Add(30*time.Minute))
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/authenticate/app", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "app-1", body["app_key"])
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": accessToken})
	}))

	token, err := client.AppAuthenticate().Authenticate(context.Background(), "app-1", "secret-1")
	require.NoError(t, err)
	assert.False(t, token.ExpiresAt.IsZero())

	_, err = client.AppAuthenticate().Authenticate(context.Background(), "", "")
	assert.Error(t, err)
}

func TestAppAuthenticateClient_AutoRefresh(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"app-token"}`))
	}))

	appAuth := client.AppAuthenticate()

	// 认证前不允许开启自动刷新
	err := appAuth.StartAutoRefresh("@every 10m")
	assert.Error(t, err)

	_, err = appAuth.Authenticate(context.Background(), "app-1", "secret-1")
	require.NoError(t, err)

	// 非法cron表达式
	err = appAuth.StartAutoRefresh("not a cron spec")
	assert.Error(t, err)

	require.NoError(t, appAuth.StartAutoRefresh("@every 10m"))
	// 重复开启被拒绝
	assert.Error(t, appAuth.StartAutoRefresh("@every 10m"))
	appAuth.StopAutoRefresh()
	// 停止后可再次开启
	require.NoError(t, appAuth.StartAutoRefresh("@every 10m"))
	appAuth.StopAutoRefresh()
}

// 定时刷新运行期间的手动认证与调度协程并发读写凭据，须无数据竞争
func TestAppAuthenticateClient_ConcurrentAuthenticate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"app-token"}`))
	}))

	appAuth := client.AppAuthenticate()
	_, err := appAuth.Authenticate(context.Background(), "app-1", "secret-1")
	require.NoError(t, err)

	require.NoError(t, appAuth.StartAutoRefresh("@every 1s"))
	defer appAuth.StopAutoRefresh()

	deadline := time.Now().Add(1500 * time.Millisecond)
	for time.Now().Before(deadline) {
		_, err := appAuth.Authenticate(context.Background(), "app-2", "secret-2")
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNew_AutoRefreshFromConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"app-token"}`))
	}))
	t.Cleanup(server.Close)
	transport := httpclient.NewClient(server.URL)

	cfg := &config.Config{Auth: config.AuthConfig{
		AppKey: "app-1", AppSecret: "secret-1", RefreshCron: "@every 10m",
	}}
	client, err := api.New(cfg, api.WithTransport(transport))
	require.NoError(t, err)
	t.Cleanup(client.AppAuthenticate().StopAutoRefresh)

	// 构造时已开启定时刷新
	assert.Error(t, client.AppAuthenticate().StartAutoRefresh("@every 10m"))

	// 非法cron表达式导致构造失败
	bad := &config.Config{Auth: config.AuthConfig{
		AppKey: "app-1", AppSecret: "secret-1", RefreshCron: "not a cron spec",
	}}
	_, err = api.New(bad, api.WithTransport(transport))
	assert.Error(t, err)

	// 未配置刷新周期时不开启
	plain, err := api.New(&config.Config{}, api.WithTransport(transport))
	require.NoError(t, err)
	_, err = plain.AppAuthenticate().Authenticate(context.Background(), "app-1", "secret-1")
	require.NoError(t, err)
	require.NoError(t, plain.AppAuthenticate().StartAutoRefresh("@every 10m"))
	plain.AppAuthenticate().StopAutoRefresh()
}

func TestCurrentUserClient(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /me":
			w.Write([]byte(`{"id":1,"username":"admin"}`))
		case "PUT /me/password":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "old", body["old_password"])
			w.Write([]byte(`"2026-08-24T12:00:00Z"`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	ctx := context.Background()
	user, err := client.CurrentUser().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	modifyTime, err := client.CurrentUser().ChangePassword(ctx, "old", "new")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), modifyTime.UTC())

	_, err = client.CurrentUser().ChangePassword(ctx, "", "new")
	assert.Error(t, err)
}
