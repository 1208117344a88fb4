package api

import (
	"context"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
)

// AppClient 应用资源客户端
type AppClient struct {
	*apiclient.Resource[models.App, models.AppInfo]
}

func newAppClient(client *httpclient.Client, indicator apiclient.Indicator) *AppClient {
	return &AppClient{
		Resource: resource[models.App, models.AppInfo](
			client, "App", "/app", models.AppSchema, indicator),
	}
}

// ListByOrganization 查询某组织下的应用
func (c *AppClient) ListByOrganization(ctx context.Context, organizationID uint64, page *apiclient.PageRequest) (*apiclient.Page[models.App], error) {
	return c.List(ctx, &apiclient.ListOptions{
		Page:     page,
		Criteria: apiclient.Criteria{"organizationId": organizationID},
	})
}

// UpdateIcon 更新应用图标地址
func (c *AppClient) UpdateIcon(ctx context.Context, id any, icon string) (time.Time, error) {
	return c.UpdateProperty(ctx, id, "icon", map[string]string{"icon": icon})
}
