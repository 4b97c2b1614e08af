package domain

import "time"

// EmployeeRecord is one row of the employee dictionary snapshot.
type EmployeeRecord struct {
	FullName   string
	Birthday   string // "DD.MM", may be empty when the dictionary has no date
	Department string
	Active     bool
}

// VacationRecord is one approved vacation interval, dates inclusive.
type VacationRecord struct {
	FullName string
	Start    time.Time
	End      time.Time
}

// Upcoming pairs an employee with the number of days until the next
// occurrence of their birthday.
type Upcoming struct {
	Record    EmployeeRecord
	DaysUntil int
}
