package models

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// ToInfo 将实体转换为对应的信息投影，按字段名匹配复制
func ToInfo[I any](entity any) (*I, error) {
	if entity == nil {
		return nil, errors.New("entity cannot be nil")
	}
	var info I
	if err := copier.Copy(&info, entity); err != nil {
		return nil, errors.Wrap(err, "failed to convert entity to info")
	}
	return &info, nil
}
