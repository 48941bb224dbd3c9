package department

import (
	"strings"
	"testing"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepartmentRequest_Validate_Success(t *testing.T) {
	desc := "Builds and runs the product"
	req := CreateDepartmentRequest{Name: "Engineering", Description: &desc}
	assert.NoError(t, req.Validate())
}

func TestCreateDepartmentRequest_Validate_DescriptionOptional(t *testing.T) {
	req := CreateDepartmentRequest{Name: "Engineering"}
	assert.NoError(t, req.Validate())
}

func TestCreateDepartmentRequest_Validate_Name(t *testing.T) {
	tests := []struct {
		name     string
		deptName string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("x", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateDepartmentRequest{Name: tt.deptName}

			err := req.Validate()
			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "name")
		})
	}
}

func TestUpdateDepartmentRequest_Validate_PartialUpdate(t *testing.T) {
	req := UpdateDepartmentRequest{ID: "dept-1"}
	assert.NoError(t, req.Validate())
}

func TestUpdateDepartmentRequest_Validate_EmptyName(t *testing.T) {
	empty := ""
	req := UpdateDepartmentRequest{ID: "dept-1", Name: &empty}

	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "name")
}
