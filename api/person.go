package api

import (
	"context"
	"io"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/valyala/fasttemplate"
)

// PersonClient 人员资源客户端
type PersonClient struct {
	*apiclient.Resource[models.Person, models.PersonInfo]
}

func newPersonClient(client *httpclient.Client, indicator apiclient.Indicator) *PersonClient {
	return &PersonClient{
		Resource: resource[models.Person, models.PersonInfo](
			client, "Person", "/person", models.PersonSchema, indicator),
	}
}

// UpdateContact 更新人员联系方式
func (c *PersonClient) UpdateContact(ctx context.Context, id any, contact *models.Contact) (time.Time, error) {
	if contact == nil {
		return time.Time{}, errors.New("contact cannot be nil")
	}
	return c.UpdateProperty(ctx, id, "contact", contact)
}

// EmployeeClient 员工资源客户端
type EmployeeClient struct {
	*apiclient.Resource[models.Employee, models.EmployeeInfo]
	http *httpclient.Client
}

func newEmployeeClient(client *httpclient.Client, indicator apiclient.Indicator) *EmployeeClient {
	return &EmployeeClient{
		Resource: resource[models.Employee, models.EmployeeInfo](
			client, "Employee", "/employee", models.EmployeeSchema, indicator),
		http: client,
	}
}

// GetByDepartment 查询某部门下的员工
func (c *EmployeeClient) GetByDepartment(ctx context.Context, departmentID uint64, page *apiclient.PageRequest, sort *apiclient.SortRequest) (*apiclient.Page[models.Employee], error) {
	return c.List(ctx, &apiclient.ListOptions{
		Page:     page,
		Sort:     sort,
		Criteria: apiclient.Criteria{"departmentId": departmentID},
	})
}

// UpdatePhoto 上传并更新员工照片，返回服务端修改时间戳
func (c *EmployeeClient) UpdatePhoto(ctx context.Context, id any, photo io.Reader, filename string) (time.Time, error) {
	idStr, err := apiclient.FormatID(id)
	if err != nil {
		return time.Time{}, err
	}
	if photo == nil {
		return time.Time{}, errors.New("photo cannot be nil")
	}

	path := fasttemplate.ExecuteString("/employee/{id}/photo", "{", "}", map[string]any{"id": idStr})
	var stamp string
	if err := c.http.UploadMultipart(ctx, path, "photo", filename, photo, nil, &stamp); err != nil {
		return time.Time{}, err
	}
	modifyTime, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp in response: %q", stamp)
	}
	return modifyTime, nil
}

// DeleteMany 按ID批量软删除员工
func (c *EmployeeClient) DeleteMany(ctx context.Context, ids []uint64) (int64, error) {
	return c.BatchDelete(ctx, lo.Map(ids, func(id uint64, _ int) any { return id }))
}

// UserClient 用户资源客户端
type UserClient struct {
	*apiclient.Resource[models.User, models.UserInfo]
}

func newUserClient(client *httpclient.Client, indicator apiclient.Indicator) *UserClient {
	return &UserClient{
		Resource: resource[models.User, models.UserInfo](
			client, "User", "/user", models.UserSchema, indicator),
	}
}

// UserRoleClient 用户角色关联资源客户端
type UserRoleClient struct {
	*apiclient.Resource[models.UserRole, models.UserRoleInfo]
}

func newUserRoleClient(client *httpclient.Client, indicator apiclient.Indicator) *UserRoleClient {
	return &UserRoleClient{
		Resource: resource[models.UserRole, models.UserRoleInfo](
			client, "UserRole", "/user-role", models.UserRoleSchema, indicator),
	}
}

// ListByUser 查询某用户的全部角色关联
func (c *UserRoleClient) ListByUser(ctx context.Context, userID uint64) ([]models.UserRole, error) {
	return c.ListAll(ctx, apiclient.Criteria{"userId": userID})
}
