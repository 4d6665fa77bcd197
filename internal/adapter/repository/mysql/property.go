package mysql

import (
	"context"

	propertyDomain "rentease-backend/internal/domain/property"

	"gorm.io/gorm"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out)
	return &out, res.Error
}

func (r *PropertyRepository) FindAvailable(ctx context.Context, f propertyDomain.Filter) ([]propertyDomain.Property, error) {
	q := r.db.WithContext(ctx).Where("status = ?", propertyDomain.StatusAvailable)
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []propertyDomain.Property
	res := q.Order("price ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, propertyID string, to propertyDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&propertyDomain.Property{}).
		Where("property_id = ?", propertyID).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatusIf is the compare-and-swap on availability. The WHERE
// clause carries the expected prior status, so of two racing updates
// exactly one sees RowsAffected == 1.
func (r *PropertyRepository) UpdateStatusIf(ctx context.Context, propertyID string, from, to propertyDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&propertyDomain.Property{}).
		Where("property_id = ? AND status = ?", propertyID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a lost race from a missing property.
		var n int64
		if err := r.db.WithContext(ctx).
			Model(&propertyDomain.Property{}).
			Where("property_id = ?", propertyID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return propertyDomain.ErrStatusConflict
	}
	return nil
}
