package employee

import (
	"testing"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		JobTitle: "Engineer",
		Salary:   "150000.00",
	}
}

func TestCreateEmployeeRequest_Validate_Success(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEmployeeRequest_Validate_Salary(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		valid  bool
	}{
		{"positive with decimals", "150000.00", true},
		{"positive integer", "60000", true},
		{"zero", "0", false},
		{"zero with decimals", "0.00", false},
		{"negative", "-100", false},
		{"negative cent", "-0.01", false},
		{"too many decimals", "1.234", false},
		{"not a number", "abc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.Salary = tt.salary

			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "salary")
		})
	}
}

func TestCreateEmployeeRequest_Validate_Email(t *testing.T) {
	req := validCreateRequest()
	req.Email = "not-an-email"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
}

func TestCreateEmployeeRequest_Validate_RequiredFields(t *testing.T) {
	req := CreateEmployeeRequest{Salary: "100.00"}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "job_title")
}

func TestUpdateEmployeeRequest_Validate_PartialFields(t *testing.T) {
	salary := "-5"
	req := UpdateEmployeeRequest{ID: "emp-1", Salary: &salary}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "salary")
}

func TestUpdateEmployeeRequest_Validate_EmptyIsValid(t *testing.T) {
	req := UpdateEmployeeRequest{ID: "emp-1"}
	assert.NoError(t, req.Validate())
}
