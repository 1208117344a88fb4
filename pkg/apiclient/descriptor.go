package apiclient

import (
	"fmt"

	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/valyala/fasttemplate"
)

// Operation 操作类型，用于加载指示与日志标注
type Operation string

const (
	OpListing   Operation = "listing"
	OpGetting   Operation = "getting"
	OpAdding    Operation = "adding"
	OpUpdating  Operation = "updating"
	OpDeleting  Operation = "deleting"
	OpRestoring Operation = "restoring"
	OpPurging   Operation = "purging"
	OpErasing   Operation = "erasing"
	OpExporting Operation = "exporting"
	OpImporting Operation = "importing"
)

// Indicator 加载指示回调接口，默认实现为空操作
type Indicator interface {
	Start(op Operation)
	Done(op Operation)
}

type nopIndicator struct{}

func (nopIndicator) Start(Operation) {}
func (nopIndicator) Done(Operation)  {}

// NopIndicator 空操作加载指示器
var NopIndicator Indicator = nopIndicator{}

// Descriptor 资源描述符，声明实体的路径与过滤条件表
type Descriptor struct {
	// Name 实体名称，用于日志
	Name string
	// Path 资源根路径，可包含{parentId}占位符
	Path string
	// Schema 声明的过滤条件字段表，nil表示该资源不支持条件过滤
	Schema *CriteriaSchema
}

// Resource 通用资源客户端，T为实体类型，I为信息投影类型
type Resource[T any, I any] struct {
	desc      Descriptor
	http      *httpclient.Client
	indicator Indicator
}

// NewResource 创建资源客户端
func NewResource[T any, I any](client *httpclient.Client, desc Descriptor, indicator Indicator) *Resource[T, I] {
	if indicator == nil {
		indicator = NopIndicator
	}
	return &Resource[T, I]{
		desc:      desc,
		http:      client,
		indicator: indicator,
	}
}

// Name 返回实体名称
func (r *Resource[T, I]) Name() string {
	return r.desc.Name
}

// Sub 绑定父级标识，返回子资源客户端（如 /dict/{parentId}/entry）
func (r *Resource[T, I]) Sub(parentID any) (*Resource[T, I], error) {
	parent, err := FormatID(parentID)
	if err != nil {
		return nil, err
	}
	desc := r.desc
	desc.Path = expandPath(desc.Path, map[string]any{"parentId": parent})
	return &Resource[T, I]{
		desc:      desc,
		http:      r.http,
		indicator: r.indicator,
	}, nil
}

// expandPath 替换路径模板中的占位符
func expandPath(template string, vars map[string]any) string {
	return fasttemplate.ExecuteString(template, "{", "}", vars)
}

// path 在资源根路径后拼接子模板并替换占位符
func (r *Resource[T, I]) path(suffix string, vars map[string]any) string {
	if len(vars) == 0 {
		return r.desc.Path + suffix
	}
	return expandPath(r.desc.Path+suffix, vars)
}

func (r *Resource[T, I]) begin(op Operation) func() {
	r.indicator.Start(op)
	return func() { r.indicator.Done(op) }
}

// String 实现Stringer，便于调试输出
func (r *Resource[T, I]) String() string {
	return fmt.Sprintf("Resource(%s, %s)", r.desc.Name, r.desc.Path)
}
