package geodesic

import (
	"github.com/npillmayer/cglabs"
	"github.com/npillmayer/cglabs/config"
)

// Leg is the great-circle connection between two consecutive stations.
type Leg struct {
	From, To cglabs.Pair   // map coordinates
	Polyline []cglabs.Pair // tessellated arc, in map coordinates
	Distance float32       // arc length on the globe
}

// Route is a sequence of stations on the map, connected by great circles.
type Route struct {
	conf     config.Globe
	proj     Projection
	stations []cglabs.Pair
	legs     []Leg
}

// NewRoute creates an empty route on a globe.
func NewRoute(conf config.Globe) *Route {
	return &Route{conf: conf, proj: NewProjection(conf.MaxLatitude)}
}

// Projection returns the map projection the route is computed with.
func (r *Route) Projection() Projection {
	return r.proj
}

// AddStation appends a station at map coordinates m. From the second station
// on, every station adds a leg from its predecessor, which is returned
// together with true.
func (r *Route) AddStation(m cglabs.Pair) (Leg, bool) {
	r.stations = append(r.stations, m)
	tracer().Debugf("station #%d at %s = %s", len(r.stations)-1, m, r.proj.ToSpherical(m))
	if len(r.stations) < 2 {
		return Leg{}, false
	}
	leg := r.connect(r.stations[len(r.stations)-2], m)
	r.legs = append(r.legs, leg)
	tracer().Infof("leg #%d: %.1f km, route total %.1f km", len(r.legs), leg.Distance, r.Total())
	return leg, true
}

func (r *Route) connect(from, to cglabs.Pair) Leg {
	p1 := SphericalToCartesian(r.proj.ToSpherical(from))
	p2 := SphericalToCartesian(r.proj.ToSpherical(to))
	arc := GreatCircle(p1, p2, r.conf.Segments)
	poly := make([]cglabs.Pair, len(arc))
	for i, p := range arc {
		poly[i] = r.proj.ToMercator(CartesianToSpherical(p))
	}
	return Leg{
		From:     from,
		To:       to,
		Polyline: poly,
		Distance: Distance(p1, p2, r.conf.Radius),
	}
}

// Stations returns a copy of the stations.
func (r *Route) Stations() []cglabs.Pair {
	return append([]cglabs.Pair(nil), r.stations...)
}

// Legs returns the legs of the route, in order.
func (r *Route) Legs() []Leg {
	return append([]Leg(nil), r.legs...)
}

// Distances returns the length of every leg.
func (r *Route) Distances() []float32 {
	d := make([]float32, len(r.legs))
	for i, leg := range r.legs {
		d[i] = leg.Distance
	}
	return d
}

// Total returns the length of the whole route.
func (r *Route) Total() float32 {
	var sum float32
	for _, leg := range r.legs {
		sum += leg.Distance
	}
	return sum
}
