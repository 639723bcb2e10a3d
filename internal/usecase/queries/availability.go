package queries

import (
	"context"

	"voicefront/internal/domain/catalog"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/shared"
)

const maxAlternates = 3

type AvailabilityInput struct {
	Item     string // spoken item name
	Date     string // spoken date; empty means "the coming days"
	EndDate  string // optional spoken range end
	Quantity string // spoken party size
}

type AvailabilityResult struct {
	Item      catalog.Item
	StartDate dates.Resolved
	EndDate   dates.Resolved
	// Requested is set when the caller asked about specific dates: whether
	// those dates are open, and the rate if they are.
	Requested *RequestedAvailability
	Days      []catalog.DayAvailability
	// Alternates are the first open days after a closed requested date.
	Alternates []catalog.DayAvailability
}

type RequestedAvailability struct {
	Open bool
	Rate string
}

// AvailabilityQuery answers "is X free on Y" and "when is X free".
type AvailabilityQuery struct {
	gw         shared.ReservationGateway
	resolver   *dates.Resolver
	windowDays int
}

func NewAvailabilityQuery(gw shared.ReservationGateway, resolver *dates.Resolver, windowDays int) *AvailabilityQuery {
	return &AvailabilityQuery{gw: gw, resolver: resolver, windowDays: windowDays}
}

func (q *AvailabilityQuery) Execute(ctx context.Context, in AvailabilityInput) (AvailabilityResult, error) {
	if in.Item == "" {
		return AvailabilityResult{}, shared.NewMissingFields("Which activity would you like to check?", "item")
	}
	item, err := shared.ResolveItem(ctx, q.gw, in.Item)
	if err != nil {
		return AvailabilityResult{}, err
	}

	start, end, specific, err := q.resolveWindow(in)
	if err != nil {
		return AvailabilityResult{}, err
	}

	// Look past the requested range so alternates can be offered.
	scanEnd := end.AddDays(q.windowDays)
	days, err := q.gw.ItemCalendar(ctx, item.ID, start.ISO(), scanEnd.ISO())
	if err != nil {
		return AvailabilityResult{}, shared.MapItemGatewayError(err)
	}

	result := AvailabilityResult{Item: item, StartDate: start, EndDate: end}
	for _, d := range days {
		if d.Date <= end.ISO() {
			result.Days = append(result.Days, d)
		}
	}

	if specific {
		result.Requested = q.checkRequested(days, start, end)
		if !result.Requested.Open {
			result.Alternates = alternatesAfter(days, end.ISO())
		}
	}
	return result, nil
}

func (q *AvailabilityQuery) resolveWindow(in AvailabilityInput) (start, end dates.Resolved, specific bool, err error) {
	if in.Date == "" {
		today := q.resolver.Today()
		return today, today.AddDays(q.windowDays), false, nil
	}
	start, err = q.resolver.ResolveDate(in.Date)
	if err != nil {
		return dates.Resolved{}, dates.Resolved{}, false, err
	}
	end = start
	if in.EndDate != "" {
		end, err = q.resolver.ResolveDate(in.EndDate)
		if err != nil {
			return dates.Resolved{}, dates.Resolved{}, false, err
		}
		if end.Before(start) {
			start, end = end, start
		}
	}
	return start, end, true, nil
}

// checkRequested requires every day in the requested range to be open.
func (q *AvailabilityQuery) checkRequested(days []catalog.DayAvailability, start, end dates.Resolved) *RequestedAvailability {
	open := false
	rate := ""
	for d := start; !end.Before(d); d = d.AddDays(1) {
		dayOpen := false
		for _, day := range days {
			if day.Date == d.ISO() && day.Open() {
				dayOpen = true
				if rate == "" {
					rate = day.Rate
				}
				break
			}
		}
		if !dayOpen {
			return &RequestedAvailability{Open: false}
		}
		open = true
	}
	return &RequestedAvailability{Open: open, Rate: rate}
}

func alternatesAfter(days []catalog.DayAvailability, afterISO string) []catalog.DayAvailability {
	var out []catalog.DayAvailability
	for _, d := range days {
		if d.Date > afterISO && d.Open() {
			out = append(out, d)
			if len(out) == maxAlternates {
				break
			}
		}
	}
	return out
}
