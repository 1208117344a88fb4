package models

// Country 国家模型
type Country struct {
	ID      uint64 `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Comment string `json:"comment,omitempty"`
	Audit
}

// CountryInfo 国家信息投影
type CountryInfo struct {
	BaseInfo
}

// Province 省份模型
type Province struct {
	ID      uint64 `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name" validate:"required"`
	Country Ref    `json:"country,omitempty"`
	Comment string `json:"comment,omitempty"`
	Audit
}

// ProvinceInfo 省份信息投影
type ProvinceInfo struct {
	BaseInfo
}

// City 城市模型
type City struct {
	ID       uint64 `json:"id,omitempty"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name" validate:"required"`
	Province Ref    `json:"province,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Comment  string `json:"comment,omitempty"`
	Audit
}

// CityInfo 城市信息投影
type CityInfo struct {
	BaseInfo
}

// District 区县模型
type District struct {
	ID      uint64 `json:"id,omitempty"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name" validate:"required"`
	City    Ref    `json:"city,omitempty"`
	Comment string `json:"comment,omitempty"`
	Audit
}

// DistrictInfo 区县信息投影
type DistrictInfo struct {
	BaseInfo
}

// Street 街道模型
type Street struct {
	ID       uint64 `json:"id,omitempty"`
	Code     string `json:"code,omitempty"`
	Name     string `json:"name" validate:"required"`
	District Ref    `json:"district,omitempty"`
	Comment  string `json:"comment,omitempty"`
	Audit
}

// StreetInfo 街道信息投影
type StreetInfo struct {
	BaseInfo
}
