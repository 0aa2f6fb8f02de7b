package go_aerotable

import (
	"fmt"
	"sort"
)

//DragTableCustom marks a drag curve built from user supplied points
const DragTableCustom byte = 0

//DragTableG1 is the standard G1 projectile drag curve (flat base, 2 caliber ogive)
const DragTableG1 byte = 1

//DragTableG7 is the standard G7 projectile drag curve (boat tail, long ogive).
//It is the closer of the two to a slender finned rocket body.
const DragTableG7 byte = 2

//DataPoint is one measured point of a Mach to drag coefficient curve
type DataPoint struct {
	Mach float64 `yaml:"mach"`
	CD   float64 `yaml:"cd"`
}

type curveSegment struct {
	a, b, c float64
}

//DragCurve interpolates the zero-lift pressure drag coefficient as a function of Mach.
//
//Every inner point is fitted by a parabola through it and its two
//neighbours; the first and the last points are extended linearly.
type DragCurve struct {
	table    byte
	points   []DataPoint
	segments []curveSegment
}

//StandardDragCurve returns one of the standard drag curves (DragTableG1 or DragTableG7)
func StandardDragCurve(table byte) (DragCurve, error) {
	switch table {
	case DragTableG1:
		return DragCurve{table: table, points: g1Points, segments: g1Segments}, nil
	case DragTableG7:
		return DragCurve{table: table, points: g7Points, segments: g7Segments}, nil
	default:
		return DragCurve{}, fmt.Errorf("DragCurve: unknown drag table %d", table)
	}
}

//CreateDragCurve creates a custom drag curve from measured points.
//
//At least two points with distinct, non-negative Mach numbers and positive
//drag coefficients are required. The points don't need to be sorted.
func CreateDragCurve(points []DataPoint) (DragCurve, error) {
	if len(points) < 2 {
		return DragCurve{}, fmt.Errorf("DragCurve: at least 2 points are required, got %d", len(points))
	}
	sorted := make([]DataPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Mach < sorted[j].Mach })

	for i, p := range sorted {
		if p.Mach < 0 || p.CD <= 0 {
			return DragCurve{}, fmt.Errorf("DragCurve: point M=%g CD=%g is out of range", p.Mach, p.CD)
		}
		if i > 0 && p.Mach == sorted[i-1].Mach {
			return DragCurve{}, fmt.Errorf("DragCurve: duplicate Mach %g", p.Mach)
		}
	}
	return DragCurve{table: DragTableCustom, points: sorted, segments: fitSegments(sorted)}, nil
}

//MustStandardDragCurve returns the standard drag curve but panics on unknown table
func MustStandardDragCurve(table byte) DragCurve {
	c, err := StandardDragCurve(table)
	if err != nil {
		panic(err)
	}
	return c
}

//Table returns the standard table of the curve or DragTableCustom
func (c DragCurve) Table() byte {
	return c.table
}

//Points returns the points the curve is built on, sorted by Mach
func (c DragCurve) Points() []DataPoint {
	return c.points
}

//MaxMach returns the highest Mach number covered by the curve data.
//Beyond it the curve is extrapolated linearly.
func (c DragCurve) MaxMach() float64 {
	if len(c.points) == 0 {
		return 0
	}
	return c.points[len(c.points)-1].Mach
}

//CD returns the drag coefficient at the Mach number specified
func (c DragCurve) CD(mach float64) float64 {
	if len(c.segments) == 0 {
		return 0
	}
	s := c.segments[c.nearest(mach)]
	return s.c + mach*(s.b+s.a*mach)
}

//nearest finds the point whose fitted segment is used for the mach specified
func (c DragCurve) nearest(mach float64) int {
	lo, hi := 0, len(c.points)-2
	if hi < 0 || mach < c.points[0].Mach {
		return 0
	}
	if mach > c.MaxMach() {
		return len(c.segments) - 1
	}
	for hi-lo > 1 {
		mid := (hi + lo) / 2
		if c.points[mid].Mach < mach {
			lo = mid
		} else {
			hi = mid
		}
	}
	if c.points[hi].Mach-mach > mach-c.points[lo].Mach {
		return lo
	}
	return hi
}

func fitSegments(points []DataPoint) []curveSegment {
	n := len(points)
	segments := make([]curveSegment, n)

	rate := (points[1].CD - points[0].CD) / (points[1].Mach - points[0].Mach)
	segments[0] = curveSegment{a: 0, b: rate, c: points[0].CD - points[0].Mach*rate}

	for i := 1; i < n-1; i++ {
		x1, x2, x3 := points[i-1].Mach, points[i].Mach, points[i+1].Mach
		y1, y2, y3 := points[i-1].CD, points[i].CD, points[i+1].CD
		a := ((y3-y1)*(x2-x1) - (y2-y1)*(x3-x1)) / ((x3*x3-x1*x1)*(x2-x1) - (x2*x2-x1*x1)*(x3-x1))
		b := (y2 - y1 - a*(x2*x2-x1*x1)) / (x2 - x1)
		segments[i] = curveSegment{a: a, b: b, c: y1 - (a*x1*x1 + b*x1)}
	}

	rate = (points[n-1].CD - points[n-2].CD) / (points[n-1].Mach - points[n-2].Mach)
	segments[n-1] = curveSegment{a: 0, b: rate, c: points[n-1].CD - points[n-1].Mach*rate}
	return segments
}

var g1Points = []DataPoint{
	{0.00, 0.2629}, {0.05, 0.2558}, {0.10, 0.2487}, {0.15, 0.2413},
	{0.20, 0.2344}, {0.25, 0.2278}, {0.30, 0.2214}, {0.35, 0.2155},
	{0.40, 0.2104}, {0.45, 0.2061}, {0.50, 0.2032}, {0.55, 0.2020},
	{0.60, 0.2034}, {0.70, 0.2165}, {0.725, 0.2230}, {0.75, 0.2313},
	{0.775, 0.2417}, {0.80, 0.2546}, {0.825, 0.2706}, {0.85, 0.2901},
	{0.875, 0.3136}, {0.90, 0.3415}, {0.925, 0.3734}, {0.95, 0.4084},
	{0.975, 0.4448}, {1.0, 0.4805}, {1.025, 0.5136}, {1.05, 0.5427},
	{1.075, 0.5677}, {1.10, 0.5883}, {1.125, 0.6053}, {1.15, 0.6191},
	{1.20, 0.6393}, {1.25, 0.6518}, {1.30, 0.6589}, {1.35, 0.6621},
	{1.40, 0.6625}, {1.45, 0.6607}, {1.50, 0.6573}, {1.55, 0.6528},
	{1.60, 0.6474}, {1.65, 0.6413}, {1.70, 0.6347}, {1.75, 0.6280},
	{1.80, 0.6210}, {1.85, 0.6141}, {1.90, 0.6072}, {1.95, 0.6003},
	{2.00, 0.5934}, {2.05, 0.5867}, {2.10, 0.5804}, {2.15, 0.5743},
	{2.20, 0.5685}, {2.25, 0.5630}, {2.30, 0.5577}, {2.35, 0.5527},
	{2.40, 0.5481}, {2.45, 0.5438}, {2.50, 0.5397}, {2.60, 0.5325},
	{2.70, 0.5264}, {2.80, 0.5211}, {2.90, 0.5168}, {3.00, 0.5133},
	{3.10, 0.5105}, {3.20, 0.5084}, {3.30, 0.5067}, {3.40, 0.5054},
	{3.50, 0.5040}, {3.60, 0.5030}, {3.70, 0.5022}, {3.80, 0.5016},
	{3.90, 0.5010}, {4.00, 0.5006}, {4.20, 0.4998}, {4.40, 0.4995},
	{4.60, 0.4992}, {4.80, 0.4990}, {5.00, 0.4988},
}

var g1Segments = fitSegments(g1Points)

var g7Points = []DataPoint{
	{0.00, 0.1198}, {0.05, 0.1197}, {0.10, 0.1196}, {0.15, 0.1194},
	{0.20, 0.1193}, {0.25, 0.1194}, {0.30, 0.1194}, {0.35, 0.1194},
	{0.40, 0.1193}, {0.45, 0.1193}, {0.50, 0.1194}, {0.55, 0.1193},
	{0.60, 0.1194}, {0.65, 0.1197}, {0.70, 0.1202}, {0.725, 0.1207},
	{0.75, 0.1215}, {0.775, 0.1226}, {0.80, 0.1242}, {0.825, 0.1266},
	{0.85, 0.1306}, {0.875, 0.1368}, {0.90, 0.1464}, {0.925, 0.1660},
	{0.95, 0.2054}, {0.975, 0.2993}, {1.0, 0.3803}, {1.025, 0.4015},
	{1.05, 0.4043}, {1.075, 0.4034}, {1.10, 0.4014}, {1.125, 0.3987},
	{1.15, 0.3955}, {1.20, 0.3884}, {1.25, 0.3810}, {1.30, 0.3732},
	{1.35, 0.3657}, {1.40, 0.3580}, {1.50, 0.3440}, {1.55, 0.3376},
	{1.60, 0.3315}, {1.65, 0.3260}, {1.70, 0.3209}, {1.75, 0.3160},
	{1.80, 0.3117}, {1.85, 0.3078}, {1.90, 0.3042}, {1.95, 0.3010},
	{2.00, 0.2980}, {2.05, 0.2951}, {2.10, 0.2922}, {2.15, 0.2892},
	{2.20, 0.2864}, {2.25, 0.2835}, {2.30, 0.2807}, {2.35, 0.2779},
	{2.40, 0.2752}, {2.45, 0.2725}, {2.50, 0.2697}, {2.55, 0.2670},
	{2.60, 0.2643}, {2.65, 0.2615}, {2.70, 0.2588}, {2.75, 0.2561},
	{2.80, 0.2533}, {2.85, 0.2506}, {2.90, 0.2479}, {2.95, 0.2451},
	{3.00, 0.2424}, {3.10, 0.2368}, {3.20, 0.2313}, {3.30, 0.2258},
	{3.40, 0.2205}, {3.50, 0.2154}, {3.60, 0.2106}, {3.70, 0.2060},
	{3.80, 0.2017}, {3.90, 0.1975}, {4.00, 0.1935}, {4.20, 0.1861},
	{4.40, 0.1793}, {4.60, 0.1730}, {4.80, 0.1672}, {5.00, 0.1618},
}

var g7Segments = fitSegments(g7Points)
