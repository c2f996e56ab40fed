package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/NestCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D coordinate used while tracing DXF geometry.
type point struct {
	x, y float64
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// ImportDXF imports parts from a DXF file. Each closed shape (LWPOLYLINE,
// CIRCLE, or chain of connected LINEs/ARCs) becomes a separate PartSpec
// sized to the shape's bounding box. Only the rectangular bounding box is
// kept; the nesting engine packs axis-aligned rectangles.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment

	partNum := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylineToPoints(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToPoints(e, 64))

		case *entity.Arc:
			pts := arcToPoints(e, 32)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			seg := segment{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			}
			segments = append(segments, seg)

		default:
			// Unsupported entity types are silently skipped
		}
	}

	// Chain loose segments (LINEs and ARCs) into closed outlines
	for _, co := range chainSegments(segments, 0.01) {
		if len(co) >= 3 {
			outlines = append(outlines, co)
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for _, outline := range outlines {
		partNum++
		min, max := boundingBox(outline)
		width := max.x - min.x
		height := max.y - min.y

		if width < 0.01 || height < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f mm)", width, height))
			continue
		}

		result.Parts = append(result.Parts,
			model.NewPartSpec(fmt.Sprintf("DXF Part %d", partNum), width, height, 1))
	}

	return result
}

// lwPolylineToPoints converts a DXF LWPOLYLINE entity to a point sequence.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToPoints(lw *entity.LwPolyline) []point {
	var outline []point

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := point{x: v[0], y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			// This vertex has a bulge: interpolate an arc to the next vertex
			nextIdx := (i + 1) % len(lw.Vertices)
			next := point{x: lw.Vertices[nextIdx][0], y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 32)
			// Add all but the last point (next vertex will be added naturally)
			outline = append(outline, arcPts[:len(arcPts)-1]...)
		} else {
			outline = append(outline, current)
		}
	}

	return outline
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 point, bulge float64, numSegments int) []point {
	// Chord midpoint and length
	mx := (p1.x + p2.x) / 2
	my := (p1.y + p2.y) / 2
	dx := p2.x - p1.x
	dy := p2.y - p1.y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return []point{p1, p2}
	}

	// Sagitta and radius
	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	// Center of the arc, along the perpendicular from the chord midpoint
	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.y-cy, p1.x-cx)
	endAngle := math.Atan2(p2.y-cy, p2.x-cx)

	if bulge < 0 {
		// Clockwise arc
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		// Counter-clockwise arc
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	var pts []point
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, point{
			x: cx + radius*math.Cos(angle),
			y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToPoints approximates a circle as a regular polygon.
func circleToPoints(c *entity.Circle, numSegments int) []point {
	outline := make([]point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		outline[i] = point{
			x: cx + r*math.Cos(angle),
			y: cy + r*math.Sin(angle),
		}
	}
	return outline
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startDeg := a.Angle[0]
	endDeg := a.Angle[1]

	startRad := startDeg * math.Pi / 180
	endRad := endDeg * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = point{
			x: cx + r*math.Cos(angle),
			y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to a slice of connected segments.
func pointsToSegments(pts []point) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		// Find the first unused segment
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		// Try to extend the chain
		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Check if the chain is closed
		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			// Remove the duplicate closing point
			chain = chain[:len(chain)-1]
		}

		if len(chain) >= 3 {
			outlines = append(outlines, chain)
		}
	}

	// Sort outlines by area (largest first) for consistent ordering
	sort.Slice(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x * o[j].y
		area -= o[j].x * o[i].y
	}
	return math.Abs(area) / 2
}

// boundingBox returns the min and max corners of a point set.
func boundingBox(pts []point) (point, point) {
	min := point{x: math.Inf(1), y: math.Inf(1)}
	max := point{x: math.Inf(-1), y: math.Inf(-1)}
	for _, p := range pts {
		min.x = math.Min(min.x, p.x)
		min.y = math.Min(min.y, p.y)
		max.x = math.Max(max.x, p.x)
		max.y = math.Max(max.y, p.y)
	}
	return min, max
}
