package api

import (
	"context"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/samber/lo"
)

// OrganizationClient 组织资源客户端
type OrganizationClient struct {
	*apiclient.Resource[models.Organization, models.OrganizationInfo]
}

func newOrganizationClient(client *httpclient.Client, indicator apiclient.Indicator) *OrganizationClient {
	return &OrganizationClient{
		Resource: resource[models.Organization, models.OrganizationInfo](
			client, "Organization", "/organization", models.OrganizationSchema, indicator),
	}
}

// Save 更新组织（按实体自身ID定位）
func (c *OrganizationClient) Save(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	return c.Update(ctx, org.ID, org)
}

// DepartmentClient 部门资源客户端
type DepartmentClient struct {
	*apiclient.Resource[models.Department, models.DepartmentInfo]
}

func newDepartmentClient(client *httpclient.Client, indicator apiclient.Indicator) *DepartmentClient {
	return &DepartmentClient{
		Resource: resource[models.Department, models.DepartmentInfo](
			client, "Department", "/department", models.DepartmentSchema, indicator),
	}
}

// Save 更新部门（按实体自身ID定位）
func (c *DepartmentClient) Save(ctx context.Context, dept *models.Department) (*models.Department, error) {
	return c.Update(ctx, dept.ID, dept)
}

// ListByOrganization 查询某组织下的部门
func (c *DepartmentClient) ListByOrganization(ctx context.Context, organizationID uint64, page *apiclient.PageRequest) (*apiclient.Page[models.Department], error) {
	return c.List(ctx, &apiclient.ListOptions{
		Page:     page,
		Criteria: apiclient.Criteria{"organizationId": organizationID},
	})
}

// DeleteMany 按ID批量软删除部门
func (c *DepartmentClient) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	return c.BatchDelete(ctx, lo.Map(ids, func(id uint64, _ int) any { return id }))
}

// CategoryClient 类别资源客户端
type CategoryClient struct {
	*apiclient.Resource[models.Category, models.CategoryInfo]
}

func newCategoryClient(client *httpclient.Client, indicator apiclient.Indicator) *CategoryClient {
	return &CategoryClient{
		Resource: resource[models.Category, models.CategoryInfo](
			client, "Category", "/category", models.CategorySchema, indicator),
	}
}

// ListByTree 查询某类别树下的全部类别
func (c *CategoryClient) ListByTree(ctx context.Context, tree string) ([]models.Category, error) {
	return c.ListAll(ctx, apiclient.Criteria{"tree": tree})
}
