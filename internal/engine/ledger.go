package engine

import (
	"github.com/piwi3910/NestCut/internal/model"
)

// Float comparisons use a small tolerance so that flush-fitting parts are
// not rejected by rounding noise.
const eps = 0.001

type rect struct {
	x, y, w, h float64
}

// ledger tracks the free space of one bin as a set of maximal free
// rectangles over the packable area (bin interior minus the border inset).
// Free rects may overlap each other; their union always equals the packable
// area minus the committed footprints. The ledger exclusively owns its free
// rects and committed footprints.
type ledger struct {
	binIndex               int
	minX, minY, maxX, maxY float64 // packable area bounds, bin coordinates
	kerf                   float64
	free                   []rect
	footprints             []rect // kerf-expanded, clipped to the packable area
}

// newLedger opens a bin: a single free rect covering the packable area.
func newLedger(binIndex int, cfg model.PackConfig) *ledger {
	l := &ledger{
		binIndex: binIndex,
		minX:     cfg.Margin,
		minY:     cfg.Margin,
		maxX:     cfg.BinWidth - cfg.Margin,
		maxY:     cfg.BinHeight - cfg.Margin,
		kerf:     cfg.Kerf,
	}
	l.free = []rect{{l.minX, l.minY, l.maxX - l.minX, l.maxY - l.minY}}
	return l
}

// fits reports whether an item of w x h fits in the given free rect with the
// kerf reserved as trailing clearance. A free rect that touches the packable
// area's far edge lends that edge's clearance to the border: a part may
// finish flush against the far edge, since no further part can be placed
// beyond it.
func (l *ledger) fits(fr rect, w, h float64) bool {
	availW := fr.w
	if fr.x+fr.w >= l.maxX-eps {
		availW += l.kerf
	}
	availH := fr.h
	if fr.y+fr.h >= l.maxY-eps {
		availH += l.kerf
	}
	return w+l.kerf <= availW+eps && h+l.kerf <= availH+eps
}

// commit places an item of as-placed size w x h at the bottom-left corner of
// the chosen free rect and re-derives the free set around the kerf-expanded
// footprint. The caller must have verified fits first.
func (l *ledger) commit(fr rect, itemID string, w, h float64, rotated bool) model.Placement {
	fp := rect{x: fr.x, y: fr.y, w: w + l.kerf, h: h + l.kerf}
	if fp.x+fp.w > l.maxX {
		fp.w = l.maxX - fp.x
	}
	if fp.y+fp.h > l.maxY {
		fp.h = l.maxY - fp.y
	}
	l.splitAround(fp)
	l.footprints = append(l.footprints, fp)

	return model.Placement{
		ItemID:   itemID,
		BinIndex: l.binIndex,
		X:        fr.x,
		Y:        fr.y,
		Width:    w,
		Height:   h,
		Rotated:  rotated,
	}
}

// splitAround removes every free rect overlapping the placed footprint and
// replaces it with up to four maximal remainder strips (left, right, below,
// above), then prunes contained rects. This keeps larger free areas than a
// guillotine split would, at the cost of overlapping free rects.
func (l *ledger) splitAround(placed rect) {
	var next []rect

	for _, r := range l.free {
		if !rectsOverlap(r, placed) {
			next = append(next, r)
			continue
		}

		// Left strip (full height of the original rect)
		if placed.x > r.x+eps {
			next = append(next, rect{x: r.x, y: r.y, w: placed.x - r.x, h: r.h})
		}
		// Right strip
		if placed.x+placed.w < r.x+r.w-eps {
			next = append(next, rect{x: placed.x + placed.w, y: r.y, w: (r.x + r.w) - (placed.x + placed.w), h: r.h})
		}
		// Bottom strip (full width of the original rect)
		if placed.y > r.y+eps {
			next = append(next, rect{x: r.x, y: r.y, w: r.w, h: placed.y - r.y})
		}
		// Top strip
		if placed.y+placed.h < r.y+r.h-eps {
			next = append(next, rect{x: r.x, y: placed.y + placed.h, w: r.w, h: (r.y + r.h) - (placed.y + placed.h)})
		}
	}

	l.free = pruneContained(next)
}

// rectsOverlap returns true if two rectangles overlap (not just touch).
func rectsOverlap(a, b rect) bool {
	return a.x < b.x+b.w-eps && a.x+a.w > b.x+eps &&
		a.y < b.y+b.h-eps && a.y+a.h > b.y+eps
}

// pruneContained removes any rect fully contained within another. When two
// rects are equal, the earlier one is kept.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	removed := make([]bool, len(rects))
	for i := range rects {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(rects); j++ {
			if removed[j] {
				continue
			}
			if containsRect(rects[i], rects[j]) {
				removed[j] = true
			} else if containsRect(rects[j], rects[i]) {
				removed[i] = true
				break
			}
		}
	}
	kept := make([]rect, 0, len(rects))
	for i, r := range rects {
		if !removed[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

// containsRect returns true if outer fully contains inner.
func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x+eps && outer.y <= inner.y+eps &&
		outer.x+outer.w >= inner.x+inner.w-eps &&
		outer.y+outer.h >= inner.y+inner.h-eps
}
