package shared

import (
	"context"

	"voicefront/internal/domain/catalog"
	"voicefront/internal/pkg/errs"
)

// ResolveItem loads the catalog and matches a spoken item name against it.
// An ambiguous match is returned as an AmbiguousItemsError for the caller to
// read back; it is never resolved by guessing.
func ResolveItem(ctx context.Context, gw ReservationGateway, spoken string) (catalog.Item, error) {
	items, err := gw.ListItems(ctx)
	if err != nil {
		return catalog.Item{}, MapItemGatewayError(err)
	}

	m := catalog.ResolveItem(spoken, items)
	switch m.Kind {
	case catalog.MatchResolved:
		return m.Item, nil
	case catalog.MatchAmbiguous:
		return catalog.Item{}, &AmbiguousItemsError{Spoken: spoken, Candidates: m.Candidates}
	default:
		return catalog.Item{}, errs.Mark(errs.Newf("no item matches %q", spoken), ErrItemNotFound)
	}
}
