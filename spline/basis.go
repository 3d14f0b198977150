package spline

import "github.com/npillmayer/cglabs"

// weights holds the four basis function values for a blend parameter u.
type weights [4]float32

// Catmull-Rom basis at u.
func basis(u float32) weights {
	u2 := u * u
	u3 := u2 * u
	return weights{
		-0.5*u3 + u2 - 0.5*u,
		1.5*u3 - 2.5*u2 + 1.0,
		-1.5*u3 + 2.0*u2 + 0.5*u,
		0.5*u3 - 0.5*u2,
	}
}

// First derivative of the Catmull-Rom basis at u.
func dbasis(u float32) weights {
	u2 := u * u
	return weights{
		-1.5*u2 + 2.0*u - 0.5,
		4.5*u2 - 5.0*u,
		-4.5*u2 + 4.0*u + 0.5,
		1.5*u2 - 1.0*u,
	}
}

func blend(h weights, p0, p1, p2, p3 cglabs.Pair) cglabs.Pair {
	return p0.Scaled(h[0]) + p1.Scaled(h[1]) + p2.Scaled(h[2]) + p3.Scaled(h[3])
}
