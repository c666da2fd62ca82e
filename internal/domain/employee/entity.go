package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Email        string
	PasswordHash *string
	FirstName    string
	LastName     string
	Role         Role

	// ManagerID is a self-reference into employees; nil for employees
	// at the top of the reporting chain.
	ManagerID *string

	VacationBalance decimal.Decimal
	SickBalance     decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
)

// BalanceKind selects which leave balance column an operation targets.
type BalanceKind string

const (
	BalanceVacation BalanceKind = "vacation_balance"
	BalanceSick     BalanceKind = "sick_balance"
)
