package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		var d attendance.Day
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Date, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

func (r *attendanceRepository) ReplaceMonth(ctx context.Context, employeeID string, year, month int, days []attendance.Day) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx, `
			DELETE FROM attendance_days
			WHERE employee_id = $1
			  AND EXTRACT(YEAR FROM date) = $2
			  AND EXTRACT(MONTH FROM date) = $3
		`, employeeID, year, month)
		if err != nil {
			return fmt.Errorf("failed to clear attendance month: %w", err)
		}

		for _, d := range days {
			_, err := q.Exec(ctx, `
				INSERT INTO attendance_days (id, employee_id, date, status)
				VALUES ($1, $2, $3, $4)
			`, uuid.NewString(), employeeID, d.Date, d.Status)
			if err != nil {
				return fmt.Errorf("failed to insert attendance day: %w", err)
			}
		}

		return nil
	})
}
