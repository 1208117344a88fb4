package models

// Organization 组织模型
type Organization struct {
	ID       uint64   `json:"id,omitempty"`
	Code     string   `json:"code,omitempty"`
	Name     string   `json:"name" validate:"required"`
	Category Ref      `json:"category,omitempty"`
	State    State    `json:"state,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Contact  `json:"contact,omitempty"`
	Comment  string `json:"comment,omitempty"`
	Audit
}

// OrganizationInfo 组织信息投影
type OrganizationInfo struct {
	BaseInfo
}

// Address 地址信息
type Address struct {
	Country  Ref    `json:"country,omitempty"`
	Province Ref    `json:"province,omitempty"`
	City     Ref    `json:"city,omitempty"`
	District Ref    `json:"district,omitempty"`
	Street   Ref    `json:"street,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Department 部门模型
type Department struct {
	ID           uint64 `json:"id,omitempty"`
	Code         string `json:"code,omitempty"`
	Name         string `json:"name" validate:"required"`
	Organization Ref    `json:"organization,omitempty"`
	Parent       *Ref   `json:"parent,omitempty"`
	State        State  `json:"state,omitempty"`
	Comment      string `json:"comment,omitempty"`
	Audit
}

// DepartmentInfo 部门信息投影
type DepartmentInfo struct {
	BaseInfo
}

// Category 类别模型
type Category struct {
	ID      uint64 `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name" validate:"required"`
	Tree    string `json:"tree,omitempty"`
	Parent  *Ref   `json:"parent,omitempty"`
	Comment string `json:"comment,omitempty"`
	Audit
}

// CategoryInfo 类别信息投影
type CategoryInfo struct {
	BaseInfo
}
