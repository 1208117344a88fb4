package models

import "time"

// State 实体状态枚举
type State string

const (
	StateNormal    State = "NORMAL"
	StateLocked    State = "LOCKED"
	StateDisabled  State = "DISABLED"
	StateBlocked   State = "BLOCKED"
	StateObsoleted State = "OBSOLETED"
	StateDeleted   State = "DELETED"
)

func (s State) String() string {
	return string(s)
}

// IsValid 判断状态值是否合法
func (s State) IsValid() bool {
	switch s {
	case StateNormal, StateLocked, StateDisabled, StateBlocked, StateObsoleted, StateDeleted:
		return true
	}
	return false
}

// Audit 审计字段，所有实体内嵌
type Audit struct {
	CreateTime time.Time  `json:"create_time"`
	ModifyTime time.Time  `json:"modify_time"`
	DeleteTime *time.Time `json:"delete_time,omitempty"`
	Deleted    bool       `json:"deleted"`
}

// Ref 实体引用三元组（ID、编码、名称）
type Ref struct {
	ID   uint64 `json:"id,omitempty"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

// BaseInfo 通用信息投影字段
type BaseInfo struct {
	ID    uint64 `json:"id"`
	Code  string `json:"code,omitempty"`
	Name  string `json:"name"`
	State State  `json:"state,omitempty"`
}

// Contact 联系方式
type Contact struct {
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile string `json:"mobile,omitempty"`
	Phone  string `json:"phone,omitempty"`
}
