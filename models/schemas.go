package models

import "github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"

// 各实体声明的过滤条件字段表。未声明的字段在请求发出前即被拒绝。

func schema(fields map[string]apiclient.FieldKind) *apiclient.CriteriaSchema {
	base := map[string]apiclient.FieldKind{
		"deleted":    apiclient.KindBool,
		"createTime": apiclient.KindTime,
		"modifyTime": apiclient.KindTime,
	}
	for name, kind := range fields {
		base[name] = kind
	}
	return &apiclient.CriteriaSchema{Fields: base}
}

var (
	OrganizationSchema = schema(map[string]apiclient.FieldKind{
		"name":       apiclient.KindString,
		"code":       apiclient.KindString,
		"state":      apiclient.KindString,
		"categoryId": apiclient.KindUint,
	})

	DepartmentSchema = schema(map[string]apiclient.FieldKind{
		"name":           apiclient.KindString,
		"code":           apiclient.KindString,
		"state":          apiclient.KindString,
		"organizationId": apiclient.KindUint,
		"parentId":       apiclient.KindUint,
	})

	EmployeeSchema = schema(map[string]apiclient.FieldKind{
		"name":           apiclient.KindString,
		"code":           apiclient.KindString,
		"username":       apiclient.KindString,
		"state":          apiclient.KindString,
		"title":          apiclient.KindString,
		"salary":         apiclient.KindDecimal,
		"organizationId": apiclient.KindUint,
		"departmentId":   apiclient.KindUint,
		"personId":       apiclient.KindUint,
		"hireDate":       apiclient.KindTime,
	})

	PersonSchema = schema(map[string]apiclient.FieldKind{
		"name":             apiclient.KindString,
		"username":         apiclient.KindString,
		"gender":           apiclient.KindString,
		"mobile":           apiclient.KindString,
		"email":            apiclient.KindString,
		"credentialNumber": apiclient.KindString,
	})

	UserSchema = schema(map[string]apiclient.FieldKind{
		"username": apiclient.KindString,
		"name":     apiclient.KindString,
		"state":    apiclient.KindString,
		"personId": apiclient.KindUint,
	})

	AppSchema = schema(map[string]apiclient.FieldKind{
		"name":           apiclient.KindString,
		"code":           apiclient.KindString,
		"state":          apiclient.KindString,
		"organizationId": apiclient.KindUint,
		"categoryId":     apiclient.KindUint,
	})

	CategorySchema = schema(map[string]apiclient.FieldKind{
		"name":     apiclient.KindString,
		"code":     apiclient.KindString,
		"tree":     apiclient.KindString,
		"parentId": apiclient.KindUint,
	})

	DictSchema = schema(map[string]apiclient.FieldKind{
		"name":       apiclient.KindString,
		"code":       apiclient.KindString,
		"standard":   apiclient.KindString,
		"categoryId": apiclient.KindUint,
	})

	DictEntrySchema = schema(map[string]apiclient.FieldKind{
		"name":     apiclient.KindString,
		"code":     apiclient.KindString,
		"value":    apiclient.KindString,
		"parentId": apiclient.KindUint,
	})

	DeviceSchema = schema(map[string]apiclient.FieldKind{
		"name":           apiclient.KindString,
		"code":           apiclient.KindString,
		"state":          apiclient.KindString,
		"organizationId": apiclient.KindUint,
		"registerTime":   apiclient.KindTime,
	})

	FeedbackSchema = schema(map[string]apiclient.FieldKind{
		"title":       apiclient.KindString,
		"category":    apiclient.KindString,
		"state":       apiclient.KindString,
		"appId":       apiclient.KindUint,
		"submitterId": apiclient.KindUint,
	})

	UserRoleSchema = schema(map[string]apiclient.FieldKind{
		"userId": apiclient.KindUint,
		"roleId": apiclient.KindUint,
	})

	CountrySchema = schema(map[string]apiclient.FieldKind{
		"name": apiclient.KindString,
		"code": apiclient.KindString,
	})

	ProvinceSchema = schema(map[string]apiclient.FieldKind{
		"name":        apiclient.KindString,
		"code":        apiclient.KindString,
		"countryCode": apiclient.KindString,
	})

	CitySchema = schema(map[string]apiclient.FieldKind{
		"name":         apiclient.KindString,
		"code":         apiclient.KindString,
		"provinceCode": apiclient.KindString,
	})

	DistrictSchema = schema(map[string]apiclient.FieldKind{
		"name":     apiclient.KindString,
		"code":     apiclient.KindString,
		"cityCode": apiclient.KindString,
	})

	StreetSchema = schema(map[string]apiclient.FieldKind{
		"name":         apiclient.KindString,
		"code":         apiclient.KindString,
		"districtCode": apiclient.KindString,
	})
)
