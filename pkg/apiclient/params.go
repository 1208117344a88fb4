package apiclient

import (
	"net/url"
	"strconv"

	"github.com/ettle/strcase"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// SortOrder 排序方向
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

var (
	ErrInvalidPage = errors.New("invalid page request")
	ErrInvalidSort = errors.New("invalid sort request")
)

// PageRequest 分页请求参数
type PageRequest struct {
	PageIndex uint64 `json:"page_index"`
	PageSize  uint64 `json:"page_size"`
}

// Validate 校验分页参数范围
func (p *PageRequest) Validate() error {
	if p == nil {
		return nil
	}
	if p.PageSize < 1 || p.PageSize > 1000 {
		return errors.Wrapf(ErrInvalidPage, "page_size must be in [1, 1000], got %d", p.PageSize)
	}
	return nil
}

// SortRequest 排序请求参数
type SortRequest struct {
	SortField string    `json:"sort_field"`
	SortOrder SortOrder `json:"sort_order"`
}

// Validate 校验排序参数
func (s *SortRequest) Validate() error {
	if s == nil {
		return nil
	}
	if s.SortField == "" {
		return errors.Wrap(ErrInvalidSort, "sort_field is required")
	}
	if s.SortOrder != SortAsc && s.SortOrder != SortDesc {
		return errors.Wrapf(ErrInvalidSort, "sort_order must be ASC or DESC, got %q", s.SortOrder)
	}
	return nil
}

// Page 分页查询结果
type Page[T any] struct {
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
	PageIndex  int64 `json:"page_index"`
	PageSize   int64 `json:"page_size"`
	Content    []T   `json:"content"`
}

// ListOptions 列表查询选项
type ListOptions struct {
	Page     *PageRequest
	Sort     *SortRequest
	Criteria Criteria
	// Extra 自由选项包，字段合并进查询参数
	Extra any
}

// buildListParams 构建列表查询参数
func buildListParams(schema *CriteriaSchema, opts *ListOptions) (url.Values, error) {
	params := url.Values{}
	if opts == nil {
		return params, nil
	}

	if err := opts.Page.Validate(); err != nil {
		return nil, err
	}
	if opts.Page != nil {
		params.Set("page_index", strconv.FormatUint(opts.Page.PageIndex, 10))
		params.Set("page_size", strconv.FormatUint(opts.Page.PageSize, 10))
	}

	if err := opts.Sort.Validate(); err != nil {
		return nil, err
	}
	if opts.Sort != nil {
		params.Set("sort_field", strcase.ToSnake(opts.Sort.SortField))
		params.Set("sort_order", string(opts.Sort.SortOrder))
	}

	if err := encodeCriteria(params, schema, opts.Criteria); err != nil {
		return nil, err
	}

	if err := mergeExtra(params, opts.Extra); err != nil {
		return nil, err
	}
	return params, nil
}

// mergeExtra 将自由选项包合并进查询参数，空值字段被剔除
func mergeExtra(params url.Values, extra any) error {
	if extra == nil {
		return nil
	}

	fields := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &fields,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(extra); err != nil {
		return errors.Wrap(err, "failed to decode extra options")
	}

	for name, value := range fields {
		if value == nil {
			continue
		}
		str := stringifyValue(value)
		if str == "" {
			continue
		}
		params.Set(strcase.ToSnake(name), str)
	}
	return nil
}
