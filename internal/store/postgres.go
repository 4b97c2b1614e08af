package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SemenBogdanov/remindbot2/internal/domain"
)

const syncTimeLayout = "02.01.2006 15:04"

// PostgresRepo implements Repo over the externally synchronized employee
// dictionary in Postgres.
type PostgresRepo struct {
	pool        *pgxpool.Pool
	departments []string // ILIKE patterns
	windowDays  int      // vacation relevance window
}

// OpenPostgres parses the connection URL, opens a pgx pool and verifies
// connectivity with a ping.
func OpenPostgres(ctx context.Context, url string, departments []string, windowDays int) (*PostgresRepo, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &PostgresRepo{pool: pool, departments: departments, windowDays: windowDays}, nil
}

// Close releases the underlying pool.
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

// ListBirthdays returns one row per employee from the latest dictionary
// snapshot: active status, non-null birthday, optionally narrowed to the
// configured departments.
func (r *PostgresRepo) ListBirthdays(ctx context.Context, allDepartments bool) ([]domain.EmployeeRecord, error) {
	q := `
		SELECT DISTINCT ON (fullname) fullname, birthday, department, status
		FROM nsi_data.dict_portal_ac_employees_tb_form
		WHERE status IS TRUE
		  AND "current_timestamp" = (
		      SELECT "current_timestamp"
		      FROM nsi_data.dict_portal_ac_employees_tb_form
		      ORDER BY "current_timestamp" DESC
		      LIMIT 1)
		  AND birthday IS NOT NULL`
	args := []any{}
	if !allDepartments {
		q += `
		  AND department ILIKE ANY($1)`
		args = append(args, r.departments)
	}
	q += `
		ORDER BY fullname`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	defer rows.Close()

	var res []domain.EmployeeRecord
	for rows.Next() {
		var (
			rec      domain.EmployeeRecord
			birthday *string
		)
		if err := rows.Scan(&rec.FullName, &birthday, &rec.Department, &rec.Active); err != nil {
			return nil, fmt.Errorf("scan birthday row: %w", err)
		}
		if birthday != nil {
			rec.Birthday = *birthday
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	return res, nil
}

// ListVacations returns intervals that have not ended yet and start
// within the relevance window, from the latest snapshot.
func (r *PostgresRepo) ListVacations(ctx context.Context) ([]domain.VacationRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (fullname, date_start) fullname, date_start, date_end
		FROM nsi_data.dict_portal_ac_vacations_tb_form
		WHERE "current_timestamp" = (
		    SELECT "current_timestamp"
		    FROM nsi_data.dict_portal_ac_vacations_tb_form
		    ORDER BY "current_timestamp" DESC
		    LIMIT 1)
		  AND date_end >= CURRENT_DATE
		  AND date_start <= CURRENT_DATE + $1::int
		ORDER BY fullname, date_start`,
		r.windowDays,
	)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	defer rows.Close()

	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VacationRecord, error) {
		var rec domain.VacationRecord
		err := row.Scan(&rec.FullName, &rec.Start, &rec.End)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan vacation rows: %w", err)
	}
	return recs, nil
}

// LastSyncTime returns the newest snapshot timestamp of the employee
// dictionary, formatted for message footers.
func (r *PostgresRepo) LastSyncTime(ctx context.Context) (string, error) {
	var ts time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT "current_timestamp"
		FROM nsi_data.dict_portal_ac_employees_tb_form
		ORDER BY "current_timestamp" DESC
		LIMIT 1`,
	).Scan(&ts)
	if err != nil {
		return "", fmt.Errorf("last sync time: %w", err)
	}
	return ts.Format(syncTimeLayout), nil
}
