package apiclient

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// 参数校验错误，在任何网络调用发起前同步返回
var (
	ErrInvalidID   = errors.New("identifier must be string, integer or *big.Int")
	ErrInvalidCode = errors.New("code must be a non-empty string")
)

// FormatID 校验标识符类型并转为字符串。
// 数值型标识符统一字符串化，避免JSON数值精度丢失。
func FormatID(id any) (string, error) {
	switch v := id.(type) {
	case string:
		if v == "" {
			return "", errors.Wrap(ErrInvalidID, "empty string")
		}
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case *big.Int:
		if v == nil {
			return "", errors.Wrap(ErrInvalidID, "nil *big.Int")
		}
		return v.String(), nil
	default:
		return "", errors.Wrapf(ErrInvalidID, "got %T", id)
	}
}

// CheckCode 校验编码参数
func CheckCode(code string) error {
	if code == "" {
		return ErrInvalidCode
	}
	return nil
}
