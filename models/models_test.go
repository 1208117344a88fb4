package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_IsValid(t *testing.T) {
	valid := []models.State{
		models.StateNormal, models.StateLocked, models.StateDisabled,
		models.StateBlocked, models.StateObsoleted, models.StateDeleted,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "state %s", s)
	}
	assert.False(t, models.State("ACTIVE").IsValid())
	assert.False(t, models.State("").IsValid())
}

func TestEmployee_JSONRoundTrip(t *testing.T) {
	hireDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	emp := models.Employee{
		ID:         7,
		Code:       "E007",
		Username:   "zhangsan",
		Department: models.Ref{ID: 3, Name: "Sales"},
		Title:      "Manager",
		Salary:     decimal.NewFromFloat(12500.50),
		State:      models.StateNormal,
		HireDate:   &hireDate,
		Contact:    models.Contact{Email: "zhangsan@example.com"},
	}

	data, err := json.Marshal(emp)
	require.NoError(t, err)

	// 线上格式为下划线字段名
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "hire_date")
	assert.Contains(t, raw, "create_time")
	assert.Equal(t, "NORMAL", raw["state"])
	assert.Equal(t, "12500.5", raw["salary"])

	var decoded models.Employee
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, emp.ID, decoded.ID)
	assert.True(t, emp.Salary.Equal(decoded.Salary))
	assert.Equal(t, hireDate, decoded.HireDate.UTC())
}

func TestToInfo(t *testing.T) {
	dept := &models.Department{
		ID:           5,
		Code:         "D005",
		Name:         "Sales",
		Organization: models.Ref{ID: 1, Name: "HQ"},
		State:        models.StateNormal,
	}

	info, err := models.ToInfo[models.DepartmentInfo](dept)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), info.ID)
	assert.Equal(t, "D005", info.Code)
	assert.Equal(t, "Sales", info.Name)
	assert.Equal(t, models.StateNormal, info.State)

	_, err = models.ToInfo[models.DepartmentInfo](nil)
	assert.Error(t, err)
}

func TestCriteriaSchemas_DeclareBaseFields(t *testing.T) {
	// 所有资源的条件表都允许按审计字段过滤
	assert.Contains(t, models.DepartmentSchema.Fields, "deleted")
	assert.Contains(t, models.DepartmentSchema.Fields, "createTime")
	assert.Contains(t, models.DepartmentSchema.Fields, "organizationId")
	assert.Contains(t, models.EmployeeSchema.Fields, "departmentId")
	assert.Contains(t, models.CitySchema.Fields, "provinceCode")
}
