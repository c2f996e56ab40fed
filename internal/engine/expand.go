package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/NestCut/internal/model"
)

// ExpandParts turns raw part records into the ordered sequence of unit items
// fed to the packer. Records with non-positive width, height, or quantity
// are rejected individually; the batch never fails as a whole.
//
// With SortDescendingArea, units are ordered by descending area, then
// descending longer side, then input order (stable). SortInputOrder keeps
// the expanded input order. The ordering is a policy knob, not a
// correctness requirement, but it is part of the deterministic contract.
func ExpandParts(parts []model.PartSpec, order model.SortOrder) ([]model.Item, []model.Rejection) {
	var items []model.Item
	var rejected []model.Rejection

	for _, p := range parts {
		if p.Width <= 0 || p.Height <= 0 {
			rejected = append(rejected, model.Rejection{
				Part:   p,
				Reason: fmt.Sprintf("width and height must be positive, got %.2f x %.2f", p.Width, p.Height),
			})
			continue
		}
		if p.Quantity <= 0 {
			rejected = append(rejected, model.Rejection{
				Part:   p,
				Reason: fmt.Sprintf("quantity must be positive, got %d", p.Quantity),
			})
			continue
		}
		for i := 0; i < p.Quantity; i++ {
			items = append(items, model.Item{
				ID:        unitID(p, i),
				Width:     p.Width,
				Height:    p.Height,
				Rotatable: p.Rotatable,
			})
		}
	}

	if order != model.SortInputOrder {
		sort.SliceStable(items, func(i, j int) bool {
			ai, aj := items[i].Area(), items[j].Area()
			if ai != aj {
				return ai > aj
			}
			return items[i].LongSide() > items[j].LongSide()
		})
	}

	return items, rejected
}

// unitID derives a stable per-unit ID. Single-quantity parts keep their ID
// unchanged; multi-quantity parts get a 1-based suffix.
func unitID(p model.PartSpec, i int) string {
	if p.Quantity == 1 {
		return p.ID
	}
	return fmt.Sprintf("%s#%d", p.ID, i+1)
}
