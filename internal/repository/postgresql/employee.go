package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, email, password_hash, first_name, last_name, role, manager_id,
	vacation_balance, sick_balance, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Email, &emp.PasswordHash, &emp.FirstName, &emp.LastName,
		&emp.Role, &emp.ManagerID,
		&emp.VacationBalance, &emp.SickBalance,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// GetManagerID implements employee.EmployeeRepository.
func (r *employeeRepository) GetManagerID(ctx context.Context, employeeID string) (*string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT manager_id
		FROM employees
		WHERE id = $1
	`

	var managerID *string
	if err := q.QueryRow(ctx, query, employeeID).Scan(&managerID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get manager ID: %w", err)
	}

	return managerID, nil
}

// DebitLeaveBalance implements employee.EmployeeRepository.
func (r *employeeRepository) DebitLeaveBalance(ctx context.Context, employeeID string, balance employee.BalanceKind, days int) error {
	q := GetQuerier(ctx, r.db)

	// BalanceKind is one of two known column names; never user input.
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - $2, updated_at = NOW()
		WHERE id = $1
	`, balance, balance)

	commandTag, err := q.Exec(ctx, query, employeeID, days)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
