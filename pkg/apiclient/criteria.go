package apiclient

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ettle/strcase"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FieldKind 过滤条件字段类型
type FieldKind int

const (
	KindString FieldKind = iota + 1
	KindInt
	KindUint
	KindBool
	KindTime
	KindDecimal
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

var ErrInvalidCriteria = errors.New("invalid criteria")

// CriteriaSchema 声明某个资源允许的过滤条件字段及其类型
type CriteriaSchema struct {
	Fields map[string]FieldKind
}

// Criteria 过滤条件，键为驼峰字段名，多个条件按AND组合
type Criteria map[string]any

// Validate 校验过滤条件中的字段名与值类型是否符合声明
func (s *CriteriaSchema) Validate(c Criteria) error {
	if len(c) == 0 {
		return nil
	}
	if s == nil || len(s.Fields) == 0 {
		return errors.Wrap(ErrInvalidCriteria, "resource declares no criteria fields")
	}
	for name, value := range c {
		kind, ok := s.Fields[name]
		if !ok {
			return errors.Wrapf(ErrInvalidCriteria, "undeclared field %q", name)
		}
		if !matchKind(kind, value) {
			return errors.Wrapf(ErrInvalidCriteria, "field %q expects %s, got %T", name, kind, value)
		}
	}
	return nil
}

func matchKind(kind FieldKind, value any) bool {
	switch kind {
	case KindString:
		switch value.(type) {
		case string, fmt.Stringer:
			return true
		}
	case KindInt:
		switch value.(type) {
		case int, int8, int16, int32, int64:
			return true
		}
	case KindUint:
		switch value.(type) {
		case uint, uint8, uint16, uint32, uint64:
			return true
		}
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindTime:
		_, ok := value.(time.Time)
		return ok
	case KindDecimal:
		_, ok := value.(decimal.Decimal)
		return ok
	}
	return false
}

// encodeCriteria 将过滤条件写入查询参数，字段名转为下划线风格
func encodeCriteria(params url.Values, schema *CriteriaSchema, c Criteria) error {
	if len(c) == 0 {
		return nil
	}
	if err := schema.Validate(c); err != nil {
		return err
	}
	for name, value := range c {
		params.Set(strcase.ToSnake(name), stringifyValue(value))
	}
	return nil
}

// stringifyValue 将条件值转为查询参数字符串
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
