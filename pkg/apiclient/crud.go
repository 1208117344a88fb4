package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// 写操作入参的结构体标签校验器
var validate = validator.New()

// List 分页查询实体列表
func (r *Resource[T, I]) List(ctx context.Context, opts *ListOptions) (*Page[T], error) {
	return listPage[T](ctx, r, r.desc.Path, opts)
}

// ListInfo 分页查询信息投影列表
func (r *Resource[T, I]) ListInfo(ctx context.Context, opts *ListOptions) (*Page[I], error) {
	return listPage[I](ctx, r, r.desc.Path+"/info", opts)
}

// ListAll 查询全部实体（不分页）
func (r *Resource[T, I]) ListAll(ctx context.Context, criteria Criteria) ([]T, error) {
	page, err := r.List(ctx, &ListOptions{Criteria: criteria})
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// listPage 列表查询的公共实现
func listPage[E any, T any, I any](ctx context.Context, r *Resource[T, I], path string, opts *ListOptions) (*Page[E], error) {
	params, err := buildListParams(r.desc.Schema, opts)
	if err != nil {
		return nil, err
	}
	defer r.begin(OpListing)()

	var page Page[E]
	if err := r.http.GetJSON(ctx, path, params, &page); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Listed entities",
		zap.String("entity", r.desc.Name), zap.Int("count", len(page.Content)), zap.Int64("total", page.TotalCount))
	logger.Debug(ctx, "Listed entities detail", zap.String("entity", r.desc.Name), zap.Any("page", page))
	return &page, nil
}

// Get 根据ID查询实体
func (r *Resource[T, I]) Get(ctx context.Context, id any) (*T, error) {
	return getOne[T](ctx, r, "/{id}", "id", id)
}

// GetByCode 根据编码查询实体
func (r *Resource[T, I]) GetByCode(ctx context.Context, code string) (*T, error) {
	if err := CheckCode(code); err != nil {
		return nil, err
	}
	return getOne[T](ctx, r, "/code/{code}", "code", code)
}

// GetInfo 根据ID查询信息投影
func (r *Resource[T, I]) GetInfo(ctx context.Context, id any) (*I, error) {
	return getOne[I](ctx, r, "/{id}/info", "id", id)
}

// GetInfoByCode 根据编码查询信息投影
func (r *Resource[T, I]) GetInfoByCode(ctx context.Context, code string) (*I, error) {
	if err := CheckCode(code); err != nil {
		return nil, err
	}
	return getOne[I](ctx, r, "/code/{code}/info", "code", code)
}

// getOne 单实体查询的公共实现
func getOne[E any, T any, I any](ctx context.Context, r *Resource[T, I], suffix, keyName string, key any) (*E, error) {
	keyStr, err := FormatID(key)
	if err != nil {
		return nil, err
	}
	defer r.begin(OpGetting)()

	var result E
	if err := r.http.GetJSON(ctx, r.path(suffix, map[string]any{keyName: keyStr}), nil, &result); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Retrieved entity", zap.String("entity", r.desc.Name), zap.String(keyName, keyStr))
	logger.Debug(ctx, "Retrieved entity detail", zap.String("entity", r.desc.Name), zap.Any("data", result))
	return &result, nil
}

// Exists 判断实体是否存在
func (r *Resource[T, I]) Exists(ctx context.Context, id any) (bool, error) {
	idStr, err := FormatID(id)
	if err != nil {
		return false, err
	}
	return r.exists(ctx, r.path("/{id}", map[string]any{"id": idStr}))
}

// ExistsByCode 根据编码判断实体是否存在
func (r *Resource[T, I]) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if err := CheckCode(code); err != nil {
		return false, err
	}
	return r.exists(ctx, r.path("/code/{code}", map[string]any{"code": code}))
}

func (r *Resource[T, I]) exists(ctx context.Context, path string) (bool, error) {
	defer r.begin(OpGetting)()

	resp, err := r.http.Head(ctx, path, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, errors.Wrapf(httpclient.ErrStatusNotOK, "%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
}

// Add 新增实体，返回服务端赋予ID与时间戳后的实体
func (r *Resource[T, I]) Add(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, errors.New("entity cannot be nil")
	}
	if err := validate.Struct(entity); err != nil {
		return nil, errors.Wrap(err, "entity validation failed")
	}
	defer r.begin(OpAdding)()

	var result T
	if err := r.http.PostJSON(ctx, r.desc.Path, entity, &result); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Added entity", zap.String("entity", r.desc.Name))
	logger.Debug(ctx, "Added entity detail", zap.String("entity", r.desc.Name), zap.Any("data", result))
	return &result, nil
}

// Update 根据ID更新实体
func (r *Resource[T, I]) Update(ctx context.Context, id any, entity *T) (*T, error) {
	idStr, err := FormatID(id)
	if err != nil {
		return nil, err
	}
	return r.update(ctx, r.path("/{id}", map[string]any{"id": idStr}), "id", idStr, entity)
}

// UpdateByCode 根据编码更新实体
func (r *Resource[T, I]) UpdateByCode(ctx context.Context, code string, entity *T) (*T, error) {
	if err := CheckCode(code); err != nil {
		return nil, err
	}
	return r.update(ctx, r.path("/code/{code}", map[string]any{"code": code}), "code", code, entity)
}

func (r *Resource[T, I]) update(ctx context.Context, path, keyName, key string, entity *T) (*T, error) {
	if entity == nil {
		return nil, errors.New("entity cannot be nil")
	}
	if err := validate.Struct(entity); err != nil {
		return nil, errors.Wrap(err, "entity validation failed")
	}
	defer r.begin(OpUpdating)()

	var result T
	if err := r.http.PutJSON(ctx, path, entity, &result); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Updated entity", zap.String("entity", r.desc.Name), zap.String(keyName, key))
	logger.Debug(ctx, "Updated entity detail", zap.String("entity", r.desc.Name), zap.Any("data", result))
	return &result, nil
}

// UpdateState 更新实体状态，返回服务端修改时间戳
func (r *Resource[T, I]) UpdateState(ctx context.Context, id any, state string) (time.Time, error) {
	if state == "" {
		return time.Time{}, errors.New("state is required")
	}
	return r.UpdateProperty(ctx, id, "state", map[string]string{"state": state})
}

// UpdateStateByCode 根据编码更新实体状态
func (r *Resource[T, I]) UpdateStateByCode(ctx context.Context, code string, state string) (time.Time, error) {
	if err := CheckCode(code); err != nil {
		return time.Time{}, err
	}
	if state == "" {
		return time.Time{}, errors.New("state is required")
	}
	defer r.begin(OpUpdating)()

	path := r.path("/code/{code}/state", map[string]any{"code": code})
	return r.putTimestamp(ctx, path, "state", map[string]string{"state": state})
}

// UpdateProperty 更新实体的单个属性，返回服务端修改时间戳。
// 设备硬件/软件信息、员工照片等属性端点复用此实现。
func (r *Resource[T, I]) UpdateProperty(ctx context.Context, id any, property string, body any) (time.Time, error) {
	idStr, err := FormatID(id)
	if err != nil {
		return time.Time{}, err
	}
	defer r.begin(OpUpdating)()

	path := r.path("/{id}/{property}", map[string]any{"id": idStr, "property": property})
	return r.putTimestamp(ctx, path, property, body)
}

// putTimestamp 发送PUT请求并解析服务端返回的ISO-8601时间戳
func (r *Resource[T, I]) putTimestamp(ctx context.Context, path, property string, body any) (time.Time, error) {
	var stamp string
	if err := r.http.PutJSON(ctx, path, body, &stamp); err != nil {
		return time.Time{}, err
	}

	modifyTime, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp in response: %q", stamp)
	}

	logger.Info(ctx, "Updated entity property",
		zap.String("entity", r.desc.Name), zap.String("property", property), zap.Time("modify_time", modifyTime))
	return modifyTime, nil
}

// Delete 软删除实体，返回服务端删除时间戳
func (r *Resource[T, I]) Delete(ctx context.Context, id any) (time.Time, error) {
	idStr, err := FormatID(id)
	if err != nil {
		return time.Time{}, err
	}
	return r.deleteOne(ctx, r.path("/{id}", map[string]any{"id": idStr}), "id", idStr)
}

// DeleteByCode 根据编码软删除实体
func (r *Resource[T, I]) DeleteByCode(ctx context.Context, code string) (time.Time, error) {
	if err := CheckCode(code); err != nil {
		return time.Time{}, err
	}
	return r.deleteOne(ctx, r.path("/code/{code}", map[string]any{"code": code}), "code", code)
}

func (r *Resource[T, I]) deleteOne(ctx context.Context, path, keyName, key string) (time.Time, error) {
	defer r.begin(OpDeleting)()

	var stamp string
	if err := r.http.DeleteJSON(ctx, path, &stamp); err != nil {
		return time.Time{}, err
	}

	deleteTime, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp in response: %q", stamp)
	}

	logger.Info(ctx, "Deleted entity",
		zap.String("entity", r.desc.Name), zap.String(keyName, key), zap.Time("delete_time", deleteTime))
	return deleteTime, nil
}

// BatchDelete 批量软删除，返回删除数量
func (r *Resource[T, I]) BatchDelete(ctx context.Context, ids []any) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.New("ids cannot be empty")
	}
	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStr, err := FormatID(id)
		if err != nil {
			return 0, err
		}
		idStrs = append(idStrs, idStr)
	}
	defer r.begin(OpDeleting)()

	var count int64
	if err := r.http.DoJSON(ctx, http.MethodDelete, r.desc.Path+"/batch", nil, idStrs, &count); err != nil {
		return 0, err
	}

	logger.Info(ctx, "Batch deleted entities", zap.String("entity", r.desc.Name), zap.Int64("count", count))
	return count, nil
}

// Restore 恢复被软删除的实体
func (r *Resource[T, I]) Restore(ctx context.Context, id any) error {
	idStr, err := FormatID(id)
	if err != nil {
		return err
	}
	return r.restore(ctx, r.path("/{id}/restore", map[string]any{"id": idStr}), "id", idStr)
}

// RestoreByCode 根据编码恢复被软删除的实体
func (r *Resource[T, I]) RestoreByCode(ctx context.Context, code string) error {
	if err := CheckCode(code); err != nil {
		return err
	}
	return r.restore(ctx, r.path("/code/{code}/restore", map[string]any{"code": code}), "code", code)
}

func (r *Resource[T, I]) restore(ctx context.Context, path, keyName, key string) error {
	defer r.begin(OpRestoring)()

	if err := r.http.DoJSON(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return err
	}
	logger.Info(ctx, "Restored entity", zap.String("entity", r.desc.Name), zap.String(keyName, key))
	return nil
}

// Purge 清除单个已软删除的实体
func (r *Resource[T, I]) Purge(ctx context.Context, id any) error {
	idStr, err := FormatID(id)
	if err != nil {
		return err
	}
	return r.remove(ctx, OpPurging, r.path("/{id}/purge", map[string]any{"id": idStr}), "Purged", "id", idStr)
}

// PurgeByCode 根据编码清除已软删除的实体
func (r *Resource[T, I]) PurgeByCode(ctx context.Context, code string) error {
	if err := CheckCode(code); err != nil {
		return err
	}
	return r.remove(ctx, OpPurging, r.path("/code/{code}/purge", map[string]any{"code": code}), "Purged", "code", code)
}

// PurgeAll 清除该资源所有已软删除的实体，返回清除数量
func (r *Resource[T, I]) PurgeAll(ctx context.Context) (int64, error) {
	defer r.begin(OpPurging)()

	var count int64
	if err := r.http.DeleteJSON(ctx, r.desc.Path+"/purge", &count); err != nil {
		return 0, err
	}
	logger.Info(ctx, "Purged all deleted entities", zap.String("entity", r.desc.Name), zap.Int64("count", count))
	return count, nil
}

// Erase 彻底删除实体（无论是否已软删除）
func (r *Resource[T, I]) Erase(ctx context.Context, id any) error {
	idStr, err := FormatID(id)
	if err != nil {
		return err
	}
	return r.remove(ctx, OpErasing, r.path("/{id}/erase", map[string]any{"id": idStr}), "Erased", "id", idStr)
}

// EraseByCode 根据编码彻底删除实体
func (r *Resource[T, I]) EraseByCode(ctx context.Context, code string) error {
	if err := CheckCode(code); err != nil {
		return err
	}
	return r.remove(ctx, OpErasing, r.path("/code/{code}/erase", map[string]any{"code": code}), "Erased", "code", code)
}

func (r *Resource[T, I]) remove(ctx context.Context, op Operation, path, action, keyName, key string) error {
	defer r.begin(op)()

	if err := r.http.DeleteJSON(ctx, path, nil); err != nil {
		return err
	}
	logger.Info(ctx, action+" entity", zap.String("entity", r.desc.Name), zap.String(keyName, key))
	return nil
}

// GetByParentAndKey 根据父级标识与ID查询层级资源的实体
func (r *Resource[T, I]) GetByParentAndKey(ctx context.Context, parentID, id any) (*T, error) {
	sub, err := r.Sub(parentID)
	if err != nil {
		return nil, err
	}
	return sub.Get(ctx, id)
}

// ListByParent 查询某父级下的全部实体
func (r *Resource[T, I]) ListByParent(ctx context.Context, parentID any, opts *ListOptions) (*Page[T], error) {
	sub, err := r.Sub(parentID)
	if err != nil {
		return nil, err
	}
	return sub.List(ctx, opts)
}

// buildCriteriaParams 单独构建过滤条件查询参数（导出给导出操作使用）
func (r *Resource[T, I]) buildCriteriaParams(criteria Criteria, sort *SortRequest) (url.Values, error) {
	return buildListParams(r.desc.Schema, &ListOptions{Criteria: criteria, Sort: sort})
}
