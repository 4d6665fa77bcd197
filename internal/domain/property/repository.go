package property

import "context"

// Filter narrows FindAvailable. Zero values mean "no constraint".
type Filter struct {
	Location string
	MaxPrice float64
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByPropertyID(ctx context.Context, propertyID string) (*Property, error)
	FindAvailable(ctx context.Context, f Filter) ([]Property, error)
	// UpdateStatus is the sanctioned unconditional status write
	// (admin/landlord restore flows).
	UpdateStatus(ctx context.Context, propertyID string, to Status) error
	// UpdateStatusIf is the compare-and-swap variant: the transition
	// applies only if the row currently holds from, else
	// ErrStatusConflict. Payment verification uses this and nothing
	// else to flip availability.
	UpdateStatusIf(ctx context.Context, propertyID string, from, to Status) error
	Save(ctx context.Context, p *Property) error
}
