package employee

import "context"

type EmployeeRepository interface {
	// GetByPhone resolves an employee from a kiosk request. Returns
	// ErrEmployeeNotFound when the phone is unknown.
	GetByPhone(ctx context.Context, phone string) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	Create(ctx context.Context, emp Employee) (Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	Delete(ctx context.Context, id string) error

	// List returns employees ordered by name, filtered by the active flag
	// and optionally by department.
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
}

type ListFilter struct {
	ActiveOnly bool
	Department *string
}
