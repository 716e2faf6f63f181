package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type kpiRepository struct {
	db *database.DB
}

func NewKpiRepository(db *database.DB) kpi.KpiRepository {
	return &kpiRepository{db: db}
}

// Tiers are stored as a JSONB column; only tiered metrics have them.
func tiersToJSON(tiers []kpi.Tier) ([]byte, error) {
	if len(tiers) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(tiers)
}

func (r *kpiRepository) CreateMetric(ctx context.Context, metric kpi.Metric) (kpi.Metric, error) {
	q := GetQuerier(ctx, r.db)

	tiersJSON, err := tiersToJSON(metric.Tiers)
	if err != nil {
		return kpi.Metric{}, fmt.Errorf("failed to encode tiers: %w", err)
	}

	query := `
		INSERT INTO kpi_metrics (id, name, type, base_rate, tiers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, type, base_rate, tiers, created_at, updated_at
	`

	m, err := r.scanMetric(q.QueryRow(ctx, query,
		uuid.NewString(), metric.Name, metric.Type, metric.BaseRate, tiersJSON,
	))
	if err != nil {
		return kpi.Metric{}, fmt.Errorf("failed to create kpi metric: %w", err)
	}

	return m, nil
}

func (r *kpiRepository) scanMetric(row pgx.Row) (kpi.Metric, error) {
	var m kpi.Metric
	var tiersJSON []byte
	if err := row.Scan(&m.ID, &m.Name, &m.Type, &m.BaseRate, &tiersJSON, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return kpi.Metric{}, err
	}
	if len(tiersJSON) > 0 {
		if err := json.Unmarshal(tiersJSON, &m.Tiers); err != nil {
			return kpi.Metric{}, fmt.Errorf("failed to decode tiers: %w", err)
		}
	}
	return m, nil
}

func (r *kpiRepository) GetMetricByID(ctx context.Context, id string) (kpi.Metric, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, base_rate, tiers, created_at, updated_at
		FROM kpi_metrics
		WHERE id = $1
	`

	m, err := r.scanMetric(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Metric{}, kpi.ErrMetricNotFound
		}
		return kpi.Metric{}, fmt.Errorf("failed to get kpi metric: %w", err)
	}

	m.EmployeeIDs, err = r.listAssignments(ctx, m.ID)
	if err != nil {
		return kpi.Metric{}, err
	}

	return m, nil
}

func (r *kpiRepository) listAssignments(ctx context.Context, metricID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT employee_id FROM kpi_metric_assignments WHERE metric_id = $1 ORDER BY employee_id
	`, metricID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metric assignments: %w", err)
	}
	defer rows.Close()

	var employeeIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan metric assignment: %w", err)
		}
		employeeIDs = append(employeeIDs, id)
	}

	return employeeIDs, rows.Err()
}

func (r *kpiRepository) ListMetrics(ctx context.Context) ([]kpi.Metric, error) {
	return r.listMetricsWhere(ctx, "", nil)
}

func (r *kpiRepository) ListMetricsByEmployee(ctx context.Context, employeeID string) ([]kpi.Metric, error) {
	where := `WHERE m.id IN (SELECT metric_id FROM kpi_metric_assignments WHERE employee_id = $1)`
	return r.listMetricsWhere(ctx, where, []interface{}{employeeID})
}

func (r *kpiRepository) listMetricsWhere(ctx context.Context, where string, args []interface{}) ([]kpi.Metric, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.name, m.type, m.base_rate, m.tiers, m.created_at, m.updated_at
		FROM kpi_metrics m
		` + where + `
		ORDER BY m.name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi metrics: %w", err)
	}
	defer rows.Close()

	var metrics []kpi.Metric
	for rows.Next() {
		m, err := r.scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range metrics {
		metrics[i].EmployeeIDs, err = r.listAssignments(ctx, metrics[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return metrics, nil
}

func (r *kpiRepository) UpdateMetric(ctx context.Context, req kpi.UpdateMetricRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.BaseRate != nil {
		setParts = append(setParts, fmt.Sprintf("base_rate = $%d", argIdx))
		args = append(args, *req.BaseRate)
		argIdx++
	}
	if req.Tiers != nil {
		tiersJSON, err := tiersToJSON(req.Tiers)
		if err != nil {
			return fmt.Errorf("failed to encode tiers: %w", err)
		}
		setParts = append(setParts, fmt.Sprintf("tiers = $%d", argIdx))
		args = append(args, tiersJSON)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE kpi_metrics SET %s WHERE id = $1", strings.Join(setParts, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update kpi metric: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrMetricNotFound
	}

	return nil
}

func (r *kpiRepository) DeleteMetric(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM kpi_metric_assignments WHERE metric_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete metric assignments: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM kpi_results WHERE metric_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete metric results: %w", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM kpi_metrics WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete kpi metric: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return kpi.ErrMetricNotFound
		}

		return nil
	})
}

func (r *kpiRepository) ReplaceAssignments(ctx context.Context, metricID string, employeeIDs []string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM kpi_metric_assignments WHERE metric_id = $1`, metricID); err != nil {
			return fmt.Errorf("failed to clear metric assignments: %w", err)
		}

		for _, employeeID := range employeeIDs {
			_, err := q.Exec(ctx, `
				INSERT INTO kpi_metric_assignments (metric_id, employee_id)
				VALUES ($1, $2)
			`, metricID, employeeID)
			if err != nil {
				return fmt.Errorf("failed to insert metric assignment: %w", err)
			}
		}

		return nil
	})
}

func (r *kpiRepository) UpsertResult(ctx context.Context, result kpi.Result) (kpi.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kpi_results (
			id, employee_id, metric_id, period_year, period_month, value, calculated_bonus
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, metric_id, period_year, period_month) DO UPDATE SET
			value = EXCLUDED.value,
			calculated_bonus = EXCLUDED.calculated_bonus,
			updated_at = NOW()
		RETURNING id, employee_id, metric_id, period_year, period_month,
			value, calculated_bonus, created_at, updated_at
	`

	var res kpi.Result
	err := q.QueryRow(ctx, query,
		uuid.NewString(), result.EmployeeID, result.MetricID,
		result.PeriodYear, result.PeriodMonth, result.Value, result.CalculatedBonus,
	).Scan(
		&res.ID, &res.EmployeeID, &res.MetricID, &res.PeriodYear, &res.PeriodMonth,
		&res.Value, &res.CalculatedBonus, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return kpi.Result{}, fmt.Errorf("failed to upsert kpi result: %w", err)
	}

	return res, nil
}

func (r *kpiRepository) ListResultsByEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]kpi.Result, error) {
	where := `WHERE r.employee_id = $1 AND r.period_year = $2 AND r.period_month = $3`
	return r.listResultsWhere(ctx, where, []interface{}{employeeID, year, month})
}

func (r *kpiRepository) ListResultsByPeriod(ctx context.Context, year, month int) ([]kpi.Result, error) {
	where := `WHERE r.period_year = $1 AND r.period_month = $2`
	return r.listResultsWhere(ctx, where, []interface{}{year, month})
}

func (r *kpiRepository) listResultsWhere(ctx context.Context, where string, args []interface{}) ([]kpi.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.metric_id, r.period_year, r.period_month,
			   r.value, r.calculated_bonus, r.created_at, r.updated_at, m.name
		FROM kpi_results r
		JOIN kpi_metrics m ON m.id = r.metric_id
		` + where + `
		ORDER BY m.name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi results: %w", err)
	}
	defer rows.Close()

	var results []kpi.Result
	for rows.Next() {
		var res kpi.Result
		var metricName string
		if err := rows.Scan(
			&res.ID, &res.EmployeeID, &res.MetricID, &res.PeriodYear, &res.PeriodMonth,
			&res.Value, &res.CalculatedBonus, &res.CreatedAt, &res.UpdatedAt, &metricName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan kpi result: %w", err)
		}
		res.MetricName = &metricName
		results = append(results, res)
	}

	return results, rows.Err()
}
