package store

import (
	"context"

	"github.com/SemenBogdanov/remindbot2/internal/domain"
)

// Repo is the record source boundary. Queries return the latest snapshot
// of active employees; the categorization core never talks to the
// database itself.
type Repo interface {
	// ListBirthdays returns active employees with a non-null birthday.
	// The department filter is applied unless allDepartments is set.
	ListBirthdays(ctx context.Context, allDepartments bool) ([]domain.EmployeeRecord, error)
	// ListVacations returns vacation intervals overlapping the relevant
	// window (not yet ended, starting within windowDays).
	ListVacations(ctx context.Context) ([]domain.VacationRecord, error)
	// LastSyncTime returns the formatted timestamp of the latest
	// dictionary synchronization.
	LastSyncTime(ctx context.Context) (string, error)
	Close()
}
