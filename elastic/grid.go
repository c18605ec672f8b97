package elastic

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// Plane selects one of the fixed coordinate planes for 1-D polar
// sweeps.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func ParsePlane(name string) (Plane, error) {
	switch name {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane %q (want xy, xz or yz)", name)
}

func (pl Plane) String() string {
	return [...]string{"xy", "xz", "yz"}[pl]
}

// Angles returns the (theta, phi) pair for sweep parameter t in the
// plane.
func (pl Plane) Angles(t float64) (theta, phi float64) {
	switch pl {
	case PlaneXY:
		return math.Pi / 2, t
	case PlaneXZ:
		return t, 0
	default:
		return t, math.Pi / 2
	}
}

// SphereGrid builds an n x n (theta, phi) meshgrid covering the full
// sphere, theta varying along rows.
func SphereGrid(n int) (Theta, Phi [][]float64) {
	var (
		thetas = utils.Linspace(0, math.Pi, n)
		phis   = utils.Linspace(0, 2*math.Pi, n)
	)
	Theta = make([][]float64, n)
	Phi = make([][]float64, n)
	for i := 0; i < n; i++ {
		Theta[i] = make([]float64, n)
		Phi[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			Theta[i][j] = thetas.AtVec(i)
			Phi[i][j] = phis.AtVec(j)
		}
	}
	return
}

// Field is a property evaluated over a meshgrid; the output shape
// matches the input grid.
type Field struct {
	Property      Property
	Theta, Phi    [][]float64
	Min, Ave, Max [][]float64
}

// EvalGrid evaluates the property at every grid node. Rows are
// fanned out across goroutines; each node is an independent pure
// evaluation, so no synchronization beyond the join is needed.
func (ev *Evaluator) EvalGrid(p Property, Theta, Phi [][]float64) (f Field) {
	var (
		nr = len(Theta)
		wg sync.WaitGroup
	)
	f = Field{Property: p, Theta: Theta, Phi: Phi}
	f.Min = make([][]float64, nr)
	f.Ave = make([][]float64, nr)
	f.Max = make([][]float64, nr)
	nWorkers := runtime.GOMAXPROCS(0)
	if nWorkers > nr {
		nWorkers = nr
	}
	rowCh := make(chan int, nr)
	for i := 0; i < nr; i++ {
		rowCh <- i
	}
	close(rowCh)
	wg.Add(nWorkers)
	for w := 0; w < nWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range rowCh {
				nc := len(Theta[i])
				f.Min[i] = make([]float64, nc)
				f.Ave[i] = make([]float64, nc)
				f.Max[i] = make([]float64, nc)
				for j := 0; j < nc; j++ {
					s := ev.Evaluate(p, Theta[i][j], Phi[i][j])
					f.Min[i][j] = s.Min
					f.Ave[i][j] = s.Ave
					f.Max[i][j] = s.Max
				}
			}
		}()
	}
	wg.Wait()
	return
}

// Sweep is a property evaluated along a 1-D path of directions.
type Sweep struct {
	Property      Property
	Theta, Phi    []float64
	Min, Ave, Max []float64
}

// EvalSweep evaluates the property along paired angle arrays.
func (ev *Evaluator) EvalSweep(p Property, theta, phi []float64) (sw Sweep, err error) {
	if len(theta) != len(phi) {
		err = fmt.Errorf("angle arrays differ in length: %d vs %d", len(theta), len(phi))
		return
	}
	sw = Sweep{Property: p, Theta: theta, Phi: phi}
	sw.Min = make([]float64, len(theta))
	sw.Ave = make([]float64, len(theta))
	sw.Max = make([]float64, len(theta))
	for i := range theta {
		s := ev.Evaluate(p, theta[i], phi[i])
		sw.Min[i], sw.Ave[i], sw.Max[i] = s.Min, s.Ave, s.Max
	}
	return
}

// EvalPlane sweeps the property around a fixed coordinate plane with
// n+1 samples over [0, 2*pi].
func (ev *Evaluator) EvalPlane(p Property, pl Plane, n int) (Sweep, error) {
	var (
		t     = utils.Linspace(0, 2*math.Pi, n+1)
		theta = make([]float64, n+1)
		phi   = make([]float64, n+1)
	)
	for i := 0; i <= n; i++ {
		theta[i], phi[i] = pl.Angles(t.AtVec(i))
	}
	return ev.EvalSweep(p, theta, phi)
}

// MillerCircle builds n+1 unit directions forming a circle in the
// plane whose normal is the Miller-index vector [h k l]. Two
// orthonormal in-plane vectors are taken as u (perpendicular to the
// normal's xy projection, or x-hat when the normal is on the z axis)
// and v = normal x u.
func MillerCircle(h, k, l float64, n int) (x, y, z []float64, err error) {
	norm := math.Sqrt(h*h + k*k + l*l)
	if norm == 0 {
		err = fmt.Errorf("plane normal [%g %g %g] has zero length", h, k, l)
		return
	}
	var u [3]float64
	if h == 0 && k == 0 {
		u = [3]float64{1, 0, 0}
	} else {
		m := math.Sqrt(h*h + k*k)
		u = [3]float64{k / m, -h / m, 0}
	}
	v := [3]float64{
		(k*u[2] - l*u[1]) / norm,
		(l*u[0] - h*u[2]) / norm,
		(h*u[1] - k*u[0]) / norm,
	}
	t := utils.Linspace(0, 2*math.Pi, n+1)
	x = make([]float64, n+1)
	y = make([]float64, n+1)
	z = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		c, s := math.Cos(t.AtVec(i)), math.Sin(t.AtVec(i))
		x[i] = u[0]*c + v[0]*s
		y[i] = u[1]*c + v[1]*s
		z[i] = u[2]*c + v[2]*s
	}
	return
}

// EvalSlice sweeps the property around the circle of directions lying
// in the Miller-index plane [h k l].
func (ev *Evaluator) EvalSlice(p Property, h, k, l float64, n int) (sw Sweep, err error) {
	x, y, z, err := MillerCircle(h, k, l, n)
	if err != nil {
		return
	}
	theta := make([]float64, len(x))
	phi := make([]float64, len(x))
	for i := range x {
		theta[i], phi[i] = tensor.DirectionToAngles(x[i], y[i], z[i])
	}
	return ev.EvalSweep(p, theta, phi)
}
