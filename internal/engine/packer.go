// Package engine implements the multi-bin rectangle packer: a greedy
// maximal-rectangles search with kerf and border handling, lazy bin
// opening, and a post-fill pass over leftover free space. The engine is a
// single deterministic sequential computation; it holds no state across
// runs and returns a result for any valid configuration.
package engine

import (
	"github.com/piwi3910/NestCut/internal/model"
)

// Packer runs the 2D bin-packing algorithm.
type Packer struct {
	Config model.PackConfig
}

func New(cfg model.PackConfig) *Packer {
	return &Packer{Config: cfg}
}

// Pack places the given parts into as few bins as needed. The only error is
// an invalid configuration; every per-part problem is reported inside the
// result (Rejected for invalid inputs, Unplaced for parts that fit nowhere).
func (p *Packer) Pack(parts []model.PartSpec) (model.PackResult, error) {
	if err := p.Config.Validate(); err != nil {
		return model.PackResult{}, err
	}
	cfg := p.Config

	items, rejected := ExpandParts(parts, cfg.SortOrder)

	var bins []*ledger
	var placements []model.Placement
	var unplaced []model.Item

	for _, it := range items {
		if pl, ok := p.place(bins, it); ok {
			placements = append(placements, pl)
			continue
		}

		// No open bin can host the item. Open a new bin only when the item
		// would fit a virgin packable area at all; otherwise it is
		// unplaceable and no bin is opened for it.
		if !p.fitsEmptyBin(it) {
			unplaced = append(unplaced, it)
			continue
		}
		if cfg.MaxBins > 0 && len(bins) >= cfg.MaxBins {
			unplaced = append(unplaced, it)
			continue
		}

		nb := newLedger(len(bins), cfg)
		bins = append(bins, nb)
		pl, ok := p.place([]*ledger{nb}, it)
		if !ok {
			// fitsEmptyBin guarantees this branch is unreachable; keep the
			// run total regardless.
			unplaced = append(unplaced, it)
			continue
		}
		placements = append(placements, pl)
	}

	placements, unplaced = p.postFill(bins, placements, unplaced)

	return p.assemble(bins, placements, unplaced, rejected), nil
}

// place scans the given bins exhaustively (bin order, then ledger order,
// then unrotated before rotated) for the best fitting free rect under the
// configured scoring rule, commits the winner, and returns the placement.
// Only strictly better scores replace the current best, so earlier
// candidates win all ties: lowest bin index, then ledger order, then the
// unrotated orientation.
func (p *Packer) place(bins []*ledger, it model.Item) (model.Placement, bool) {
	type candidate struct {
		bin     *ledger
		fr      rect
		w, h    float64
		rotated bool
	}

	var best candidate
	bestScore1 := -1.0
	bestScore2 := -1.0
	found := false

	tryRotated := p.Config.AllowRotation && it.Rotatable && it.Width != it.Height

	for _, b := range bins {
		for _, fr := range b.free {
			orientations := [][2]float64{{it.Width, it.Height}}
			if tryRotated {
				orientations = append(orientations, [2]float64{it.Height, it.Width})
			}
			for oi, o := range orientations {
				w, h := o[0], o[1]
				if !b.fits(fr, w, h) {
					continue
				}
				s1, s2 := p.score(fr, w, h)
				if !found || s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
					found = true
					bestScore1 = s1
					bestScore2 = s2
					best = candidate{bin: b, fr: fr, w: w, h: h, rotated: oi == 1}
				}
			}
		}
	}

	if !found {
		return model.Placement{}, false
	}
	return best.bin.commit(best.fr, it.ID, best.w, best.h, best.rotated), true
}

// score rates a fitting free rect; lower is better on both components.
// Best Short-Side Fit minimizes the leftover on the tighter axis and breaks
// ties on the other axis; it tends to leave usably shaped remainders rather
// than thin slivers. Best Area Fit minimizes leftover area and breaks ties
// on squareness of the fit.
func (p *Packer) score(fr rect, w, h float64) (float64, float64) {
	dw := fr.w - w
	dh := fr.h - h
	if p.Config.Scoring == model.ScoreBestArea {
		d := dw - dh
		if d < 0 {
			d = -d
		}
		return fr.w*fr.h - w*h, d
	}
	if dw < dh {
		return dw, dh
	}
	return dh, dw
}

// fitsEmptyBin reports whether the item fits alone in a freshly opened bin
// in any allowed orientation. A fresh bin's single free rect touches all
// far edges, so only the live dimensions matter.
func (p *Packer) fitsEmptyBin(it model.Item) bool {
	pw, ph := p.Config.PackableWidth(), p.Config.PackableHeight()
	if it.Width <= pw+eps && it.Height <= ph+eps {
		return true
	}
	if p.Config.AllowRotation && it.Rotatable {
		return it.Height <= pw+eps && it.Width <= ph+eps
	}
	return false
}

// postFill re-attempts every unplaced item against each bin's surviving
// free rects, bin by bin in open order, using the same search and commit as
// the primary pass. It never opens a bin and never touches committed
// placements; with nothing left unplaced it is a no-op.
func (p *Packer) postFill(bins []*ledger, placements []model.Placement, unplaced []model.Item) ([]model.Placement, []model.Item) {
	for _, b := range bins {
		if len(unplaced) == 0 {
			break
		}
		var still []model.Item
		for _, it := range unplaced {
			if pl, ok := p.place([]*ledger{b}, it); ok {
				placements = append(placements, pl)
			} else {
				still = append(still, it)
			}
		}
		unplaced = still
	}
	return placements, unplaced
}

// assemble converts the internal state into the externally visible result,
// applying the origin toggle as a pure transform. The ledger always works
// bottom-left, y-up; a top-left origin only changes reported coordinates.
func (p *Packer) assemble(bins []*ledger, placements []model.Placement, unplaced []model.Item, rejected []model.Rejection) model.PackResult {
	result := model.PackResult{
		Placements: placements,
		Unplaced:   unplaced,
		Rejected:   rejected,
	}
	for _, b := range bins {
		result.Bins = append(result.Bins, model.Bin{
			Index:  b.binIndex,
			Width:  p.Config.BinWidth,
			Height: p.Config.BinHeight,
		})
	}
	if p.Config.OriginTopLeft {
		for i := range result.Placements {
			pl := &result.Placements[i]
			pl.Y = p.Config.BinHeight - pl.Y - pl.Height
		}
	}
	return result
}
