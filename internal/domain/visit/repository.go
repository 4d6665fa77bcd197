package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	GetByVisitID(ctx context.Context, visitID string) (*Visit, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]Visit, error)
	Save(ctx context.Context, v *Visit) error
	// Delete removes the row permanently (hard delete). Callers must
	// have checked Status.Deletable first.
	Delete(ctx context.Context, visitID string) error
}
