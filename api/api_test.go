package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/api"
	"github.com/ayxworxfr/go_admin_sdk/config"
	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport := httpclient.NewClient(server.URL, httpclient.WithRetries(1))
	client, err := api.New(&config.Config{}, api.WithTransport(transport))
	require.NoError(t, err)
	return client
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := api.New(nil)
	assert.Error(t, err)

	// 无自定义传输层时base_url必填
	_, err = api.New(&config.Config{})
	assert.Error(t, err)
}

func TestClient_FacadePaths(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":0,"content":[]}`))
	}))

	ctx := context.Background()
	tests := []struct {
		name string
		call func() error
		want string
	}{
		{name: "organizations", call: func() error {
			_, err := client.Organizations().List(ctx, nil)
			return err
		}, want: "/organization"},
		{name: "departments", call: func() error {
			_, err := client.Departments().List(ctx, nil)
			return err
		}, want: "/department"},
		{name: "devices", call: func() error {
			_, err := client.Devices().List(ctx, nil)
			return err
		}, want: "/device"},
		{name: "provinces", call: func() error {
			_, err := client.Provinces().List(ctx, nil)
			return err
		}, want: "/province"},
		{name: "user_roles", call: func() error {
			_, err := client.UserRoles().List(ctx, nil)
			return err
		}, want: "/user-role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.want, gotPath)
		})
	}
}

func TestDepartmentClient_ListByOrganization(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/department", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("organization_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"content":[{"id":1,"name":"Sales"}]}`))
	}))

	page, err := client.Departments().ListByOrganization(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestDictClient_Entries(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dict/7/entry/fruit", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"code":"fruit","name":"Fruit","value":"1"}`))
	}))

	ctx := context.Background()
	entries, err := client.Dicts().Entries(7)
	require.NoError(t, err)

	entry, err := entries.Get(ctx, "fruit")
	require.NoError(t, err)
	assert.Equal(t, "fruit", entry.Code)

	got, err := client.Dicts().GetEntry(ctx, 7, "fruit")
	require.NoError(t, err)
	assert.Equal(t, "fruit", got.Code)

	// 非法字典ID不发请求
	_, err = client.Dicts().Entries(3.14)
	assert.ErrorIs(t, err, apiclient.ErrInvalidID)
}

func TestEmployeeClient_GetByDepartment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("department_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_count":1,"content":[{"id":9,"username":"zhangsan"}]}`))
	}))

	page, err := client.Employees().GetByDepartment(context.Background(), 3, nil, nil)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "zhangsan", page.Content[0].Username)
}

func TestEmployeeClient_UpdatePhoto(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/employee/9/photo", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("photo")
		require.NoError(t, err)
		assert.Equal(t, "photo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"2026-08-24T12:00:00Z"`))
	}))

	modifyTime, err := client.Employees().UpdatePhoto(context.Background(), 9,
		strings.NewReader("fake-png-bytes"), "photo.png")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), modifyTime.UTC())
}

func TestEmployeeClient_DeleteMany(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/employee/batch", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`2`))
	}))

	count, err := client.Employees().DeleteMany(context.Background(), []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDeviceClient_UpdateHardware(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/device/4/hardware", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"2026-08-24T12:00:00Z"`))
	}))

	_, err := client.Devices().UpdateHardware(context.Background(), 4,
		&models.Hardware{Brand: "Dell", SerialNumber: "SN-1"})
	require.NoError(t, err)

	_, err = client.Devices().UpdateHardware(context.Background(), 4, nil)
	assert.Error(t, err)
}

func TestFeedbackClient_StateFlow(t *testing.T) {
	var gotPaths []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/feedback":
			w.Write([]byte(`{"id":11,"title":"crash on login"}`))
		case r.Method == http.MethodPut:
			w.Write([]byte(`"2026-08-24T12:00:00Z"`))
		case r.Method == http.MethodDelete:
			w.Write([]byte(`"2026-08-24T12:30:00Z"`))
		}
	}))

	ctx := context.Background()
	fb, err := client.Feedbacks().Add(ctx, &models.Feedback{Title: "crash on login"})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), fb.ID)

	_, err = client.Feedbacks().UpdateState(ctx, fb.ID, models.StateObsoleted)
	require.NoError(t, err)

	_, err = client.Feedbacks().Delete(ctx, fb.ID)
	require.NoError(t, err)
	require.NoError(t, client.Feedbacks().Restore(ctx, fb.ID))

	assert.Equal(t, []string{
		"POST /feedback",
		"PUT /feedback/11/state",
		"DELETE /feedback/11",
		"POST /feedback/11/restore",
	}, gotPaths)
}

func TestFeedbackClient_UpdateState_Invalid(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))

	// 非法状态值在发请求前被拒绝
	_, err := client.Feedbacks().UpdateState(context.Background(), 11, models.State("ARCHIVED"))
	assert.Error(t, err)
	_, err = client.Feedbacks().UpdateState(context.Background(), 11, models.State(""))
	assert.Error(t, err)
}

func TestVerifyCodeClient(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/verify-code/sms":
			w.Write([]byte(`{"key":"vk-123"}`))
		case "/verify-code/check":
			w.Write([]byte(`{"valid":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	ctx := context.Background()
	key, err := client.VerifyCode().SendBySms(ctx, "13800138000")
	require.NoError(t, err)
	assert.Equal(t, "vk-123", key)

	valid, err := client.VerifyCode().Check(ctx, "vk-123", "8642")
	require.NoError(t, err)
	assert.True(t, valid)
}
