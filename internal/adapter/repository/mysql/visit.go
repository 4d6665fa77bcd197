package mysql

import (
	"context"

	visitDomain "rentease-backend/internal/domain/visit"

	"gorm.io/gorm"
)

type VisitRepository struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) *VisitRepository { return &VisitRepository{db: db} }

func (r *VisitRepository) Create(ctx context.Context, v *visitDomain.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitRepository) Save(ctx context.Context, v *visitDomain.Visit) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VisitRepository) GetByVisitID(ctx context.Context, visitID string) (*visitDomain.Visit, error) {
	var out visitDomain.Visit
	res := r.db.WithContext(ctx).Where("visit_id = ?", visitID).First(&out)
	return &out, res.Error
}

func (r *VisitRepository) ListByTenantID(ctx context.Context, tenantID string) ([]visitDomain.Visit, error) {
	var out []visitDomain.Visit
	res := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("visit_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// Delete is a hard delete: cancelled/rejected visits removed from the
// list are gone, not soft-deleted.
func (r *VisitRepository) Delete(ctx context.Context, visitID string) error {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("visit_id = ?", visitID).
		Delete(&visitDomain.Visit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
