package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/vacation"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}

const vacationColumns = `
	v.id, v.employee_id, v.start_date, v.end_date, v.days_count, v.status,
	v.payment_amount, v.average_salary, v.period_start, v.period_end,
	v.created_at, v.updated_at`

func scanVacation(row pgx.Row) (vacation.Request, error) {
	var req vacation.Request
	var employeeName string
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.DaysCount, &req.Status,
		&req.PaymentAmount, &req.AverageSalary, &req.PeriodStart, &req.PeriodEnd,
		&req.CreatedAt, &req.UpdatedAt, &employeeName,
	)
	if err != nil {
		return vacation.Request{}, err
	}
	req.EmployeeName = &employeeName
	return req, nil
}

func (r *vacationRepository) Create(ctx context.Context, request vacation.Request) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO vacation_requests (
				id, employee_id, start_date, end_date, days_count, status,
				payment_amount, average_salary, period_start, period_end
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT ` + vacationColumns + `, e.full_name
		FROM inserted v
		JOIN employees e ON e.id = v.employee_id
	`

	req, err := scanVacation(q.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID, request.StartDate, request.EndDate,
		request.DaysCount, request.Status, request.PaymentAmount, request.AverageSalary,
		request.PeriodStart, request.PeriodEnd,
	))
	if err != nil {
		return vacation.Request{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return req, nil
}

func (r *vacationRepository) GetByID(ctx context.Context, id string) (vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vacationColumns + `, e.full_name
		FROM vacation_requests v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.id = $1
	`

	req, err := scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return vacation.Request{}, vacation.ErrRequestNotFound
		}
		return vacation.Request{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	return req, nil
}

func (r *vacationRepository) List(ctx context.Context, filter vacation.RequestFilter) ([]vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + vacationColumns + `, e.full_name
		FROM vacation_requests v
		JOIN employees e ON e.id = v.employee_id
	`

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("v.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("v.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM v.start_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM v.start_date) = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY v.start_date DESC, v.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []vacation.Request
	for rows.Next() {
		req, err := scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *vacationRepository) UpdateStatus(ctx context.Context, id string, status vacation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE vacation_requests SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update vacation request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrRequestNotFound
	}

	return nil
}
