package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender 性别枚举
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Person 人员模型
type Person struct {
	ID               uint64     `json:"id,omitempty"`
	Name             string     `json:"name" validate:"required"`
	Username         string     `json:"username,omitempty"`
	Gender           Gender     `json:"gender,omitempty"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	CredentialType   string     `json:"credential_type,omitempty"`
	CredentialNumber string     `json:"credential_number,omitempty"`
	Contact          `json:"contact,omitempty"`
	Comment          string `json:"comment,omitempty"`
	Audit
}

// PersonInfo 人员信息投影
type PersonInfo struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
}

// Employee 员工模型
type Employee struct {
	ID           uint64          `json:"id,omitempty"`
	Code         string          `json:"code,omitempty"`
	Username     string          `json:"username,omitempty"`
	Person       Ref             `json:"person,omitempty"`
	Organization Ref             `json:"organization,omitempty"`
	Department   Ref             `json:"department,omitempty"`
	Title        string          `json:"title,omitempty"`
	Salary       decimal.Decimal `json:"salary,omitempty"`
	PhotoURL     string          `json:"photo_url,omitempty"`
	State        State           `json:"state,omitempty"`
	HireDate     *time.Time      `json:"hire_date,omitempty"`
	Contact      `json:"contact,omitempty"`
	Comment      string `json:"comment,omitempty"`
	Audit
}

// EmployeeInfo 员工信息投影
type EmployeeInfo struct {
	BaseInfo
	Username   string `json:"username,omitempty"`
	Department Ref    `json:"department,omitempty"`
}

// User 用户模型
type User struct {
	ID        uint64 `json:"id,omitempty"`
	Username  string `json:"username" validate:"required"`
	Name      string `json:"name,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Person    *Ref   `json:"person,omitempty"`
	Roles     []Ref  `json:"roles,omitempty"`
	State     State  `json:"state,omitempty"`
	Contact   `json:"contact,omitempty"`
	Audit
}

// UserInfo 用户信息投影
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	State    State  `json:"state,omitempty"`
}
