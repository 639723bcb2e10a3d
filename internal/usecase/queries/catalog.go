package queries

import (
	"context"

	"voicefront/internal/domain/catalog"
	"voicefront/internal/usecase/shared"
)

// CatalogQuery lists and resolves bookable items.
type CatalogQuery struct {
	gw shared.ReservationGateway
}

func NewCatalogQuery(gw shared.ReservationGateway) *CatalogQuery {
	return &CatalogQuery{gw: gw}
}

func (q *CatalogQuery) ListItems(ctx context.Context) ([]catalog.Item, error) {
	items, err := q.gw.ListItems(ctx)
	if err != nil {
		return nil, shared.MapItemGatewayError(err)
	}
	return items, nil
}

// ResolveItem matches a spoken item name against the live catalog.
func (q *CatalogQuery) ResolveItem(ctx context.Context, spoken string) (catalog.Item, error) {
	if spoken == "" {
		return catalog.Item{}, shared.NewMissingFields("Which activity would you like to book?", "item")
	}
	return shared.ResolveItem(ctx, q.gw, spoken)
}
