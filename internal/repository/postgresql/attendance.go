package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.work_date, a.check_in, a.check_out,
	a.worked_hours, a.created_at, a.updated_at,
	e.name AS employee_name
`

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, work_date, check_in, check_out, worked_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.WorkDate, att.CheckIn, att.CheckOut, att.WorkedHours,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateForDay
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.WorkDate, &att.CheckIn, &att.CheckOut,
		&att.WorkedHours, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance: %w", err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.work_date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, workDate).Scan(
		&att.ID, &att.EmployeeID, &att.WorkDate, &att.CheckIn, &att.CheckOut,
		&att.WorkedHours, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by day: %w", err)
	}

	return &att, nil
}

// GetOrCreateForDay inserts the day's row with ON CONFLICT DO NOTHING and
// re-reads it, so two concurrent clock-ins converge on the same record.
func (r *attendanceRepositoryImpl) GetOrCreateForDay(ctx context.Context, employeeID string, workDate time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendance (id, employee_id, work_date, worked_hours, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 0, NOW(), NOW())
		ON CONFLICT (employee_id, work_date) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert, employeeID, workDate); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("upsert attendance day: %w", err)
	}

	att, err := r.GetByEmployeeAndDate(ctx, employeeID, workDate)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if att == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	return *att, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.work_date DESC, a.check_in DESC NULLS LAST
	`

	return r.queryMany(ctx, q, query)
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, workDate time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.work_date = $1
		ORDER BY e.name
	`

	return r.queryMany(ctx, q, query, workDate)
}

func (r *attendanceRepositoryImpl) queryMany(ctx context.Context, q database.Querier, query string, args ...any) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.WorkDate, &att.CheckIn, &att.CheckOut,
			&att.WorkedHours, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET work_date = $2,
			check_in = $3,
			check_out = $4,
			worked_hours = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, att.ID, att.WorkDate, att.CheckIn, att.CheckOut, att.WorkedHours)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrDuplicateForDay
		}
		return fmt.Errorf("update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
