package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.job_title, e.salary,
	e.department_id, e.hire_date, e.created_at,
	d.name AS department_name
`

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, email, job_title, salary, department_id, hire_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.JobTitle, emp.Salary,
		emp.DepartmentID, emp.HireDate,
	).Scan(&emp.CreatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.JobTitle, &emp.Salary,
		&emp.DepartmentID, &emp.HireDate, &emp.CreatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, 0)
}

func (r *employeeRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	return r.list(ctx, limit)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.created_at DESC, e.id
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.JobTitle, &emp.Salary,
			&emp.DepartmentID, &emp.HireDate, &emp.CreatedAt,
			&emp.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			job_title = COALESCE($4, job_title),
			salary = COALESCE($5::numeric, salary),
			hire_date = COALESCE($6::date, hire_date),
			department_id = CASE WHEN $8 THEN NULL ELSE COALESCE($7, department_id) END
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.Email, req.JobTitle, req.Salary,
		req.HireDate, req.DepartmentID, req.ClearDepartment,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// attendance and leave_requests cascade on employee deletion.
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}

	return count, nil
}
