package models

import "time"

// App 应用模型
type App struct {
	ID           uint64 `json:"id,omitempty"`
	Code         string `json:"code,omitempty"`
	Name         string `json:"name" validate:"required"`
	Organization Ref    `json:"organization,omitempty"`
	Category     Ref    `json:"category,omitempty"`
	Icon         string `json:"icon,omitempty"`
	URL          string `json:"url,omitempty" validate:"omitempty,url"`
	State        State  `json:"state,omitempty"`
	Comment      string `json:"comment,omitempty"`
	Audit
}

// AppInfo 应用信息投影
type AppInfo struct {
	BaseInfo
}

// Dict 字典模型
type Dict struct {
	ID       uint64 `json:"id,omitempty"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name" validate:"required"`
	Category Ref    `json:"category,omitempty"`
	Standard string `json:"standard,omitempty"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	Comment  string `json:"comment,omitempty"`
	Audit
}

// DictInfo 字典信息投影
type DictInfo struct {
	BaseInfo
}

// DictEntry 字典条目模型
type DictEntry struct {
	ID      uint64 `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name" validate:"required"`
	Value   string `json:"value,omitempty"`
	Dict    Ref    `json:"dict,omitempty"`
	Parent  *Ref   `json:"parent,omitempty"`
	Comment string `json:"comment,omitempty"`
	Audit
}

// DictEntryInfo 字典条目信息投影
type DictEntryInfo struct {
	BaseInfo
	Value string `json:"value,omitempty"`
}

// Token 认证令牌
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// UserRole 用户角色关联
type UserRole struct {
	ID   uint64 `json:"id,omitempty"`
	User Ref    `json:"user,omitempty"`
	Role Ref    `json:"role,omitempty"`
	Audit
}

// UserRoleInfo 用户角色信息投影
type UserRoleInfo struct {
	ID   uint64 `json:"id"`
	User Ref    `json:"user,omitempty"`
	Role Ref    `json:"role,omitempty"`
}
