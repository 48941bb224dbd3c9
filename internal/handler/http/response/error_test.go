package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	HandleError(rec, err)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHandleError_DuplicateDayIsFieldError(t *testing.T) {
	code, resp := handle(t, attendance.ErrDuplicateForDay)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "work_date")
}

func TestHandleError_DuplicateDepartmentNameIsFieldError(t *testing.T) {
	code, resp := handle(t, department.ErrDepartmentNameExists)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "name")
}

func TestHandleError_NotClockedInIsNotFound(t *testing.T) {
	code, resp := handle(t, attendance.ErrNotClockedIn)

	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestHandleError_NotFound(t *testing.T) {
	code, _ := handle(t, department.ErrDepartmentNotFound)
	assert.Equal(t, http.StatusNotFound, code)
}
