package interfaces

import (
	"context"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

// IOrderRepository abstracts the order transport API.
//
// GetByID returns a zero Order (empty ID) when the order does not exist.
// Update replaces the whole record; sending the same record twice is safe.
// Claim writes the record only while the stored order has no assignee; it
// returns assignment.ErrAlreadyAssigned when someone else got there first.
// Update and Claim return a zero Order when the order does not exist.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Claim(ctx context.Context, o entities.Order) (entities.Order, error)
}
