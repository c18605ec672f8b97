package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matmodlab/goelastic/utils"
)

// synthetic builds a full matrix for the class from distinct values at
// its independent positions.
func synthetic(c Class) utils.Matrix {
	dim := c.Dim()
	probe := utils.NewMatrix(dim, dim)
	for k, pos := range c.Independent() {
		val := 200 + 7*float64(k)
		probe.Set(pos.I, pos.J, val)
		probe.Set(pos.J, pos.I, val)
	}
	full, err := c.Complete(probe)
	if err != nil {
		panic(err)
	}
	return full
}

func TestIdentify(t *testing.T) {
	// Every class round-trips: complete from distinct independent
	// values, then identify
	{
		all := append(Order3D(), Order2D()...)
		for _, c := range all {
			got, err := Identify(synthetic(c), 1.e-6)
			assert.NoError(t, err)
			assert.Equal(t, c, got, c.String())
		}
	}
	// Iron is cubic
	{
		C := utils.NewMatrix(6, 6, []float64{
			230, 135, 135, 0, 0, 0,
			135, 230, 135, 0, 0, 0,
			135, 135, 230, 0, 0, 0,
			0, 0, 0, 117, 0, 0,
			0, 0, 0, 0, 117, 0,
			0, 0, 0, 0, 0, 117,
		})
		got, err := Identify(C, 1.e-6)
		assert.NoError(t, err)
		assert.Equal(t, Cubic, got)
	}
	// A hexagonal matrix built without its C66 constraint is only
	// tetragonal
	{
		C := synthetic(Hexagonal)
		C.Set(5, 5, C.At(5, 5)+10)
		got, err := Identify(C, 1.e-6)
		assert.NoError(t, err)
		assert.Equal(t, Tetragonal1, got)
	}
	// Tolerance: a slightly perturbed cubic matrix still matches with a
	// loose tolerance, not with a tight one
	{
		C := synthetic(Cubic)
		C.Set(1, 1, C.At(1, 1)+1.e-4)
		got, err := Identify(C, 1.e-2)
		assert.NoError(t, err)
		assert.Equal(t, Cubic, got)
		got, err = Identify(C, 1.e-9)
		assert.NoError(t, err)
		assert.NotEqual(t, Cubic, got)
	}
	// Shape errors
	{
		_, err := Identify(utils.NewMatrix(4, 4), 1.e-6)
		assert.Error(t, err)
		_, err = Identify(utils.NewMatrix(3, 6), 1.e-6)
		assert.Error(t, err)
	}
}

func TestComplete(t *testing.T) {
	// Cubic from three constants
	{
		probe := utils.NewMatrix(6, 6)
		probe.Set(0, 0, 230)
		probe.Set(0, 1, 135)
		probe.Set(3, 3, 117)
		C, err := Cubic.Complete(probe)
		assert.NoError(t, err)
		assert.Equal(t, 230., C.At(1, 1))
		assert.Equal(t, 230., C.At(2, 2))
		assert.Equal(t, 135., C.At(1, 2))
		assert.Equal(t, 135., C.At(2, 1))
		assert.Equal(t, 117., C.At(4, 4))
		assert.Equal(t, 117., C.At(5, 5))
	}
	// Hexagonal: C66 is the half difference
	{
		probe := utils.NewMatrix(6, 6)
		probe.Set(0, 0, 160)
		probe.Set(0, 1, 90)
		probe.Set(0, 2, 66)
		probe.Set(2, 2, 181)
		probe.Set(3, 3, 46.5)
		C, err := Hexagonal.Complete(probe)
		assert.NoError(t, err)
		assert.Equal(t, 35., C.At(5, 5))
		assert.Equal(t, 66., C.At(1, 2))
		assert.Equal(t, 46.5, C.At(4, 4))
	}
	// Trigonal_1: the C14 family with its sign flips
	{
		probe := utils.NewMatrix(6, 6)
		probe.Set(0, 0, 87)
		probe.Set(0, 1, 7)
		probe.Set(0, 2, 12)
		probe.Set(0, 3, 18)
		probe.Set(2, 2, 106)
		probe.Set(3, 3, 58)
		C, err := Trigonal1.Complete(probe)
		assert.NoError(t, err)
		assert.Equal(t, -18., C.At(1, 3))
		assert.Equal(t, -18., C.At(3, 1))
		assert.Equal(t, 18., C.At(4, 5))
		assert.Equal(t, 40., C.At(5, 5))
	}
	// Tetragonal_2: C26 = -C16
	{
		probe := utils.NewMatrix(6, 6)
		for k, pos := range Tetragonal2.Independent() {
			probe.Set(pos.I, pos.J, 50+float64(k))
		}
		C, err := Tetragonal2.Complete(probe)
		assert.NoError(t, err)
		assert.Equal(t, -C.At(0, 5), C.At(1, 5))
	}
	// 2D hexagonal
	{
		probe := utils.NewMatrix(3, 3)
		probe.Set(0, 0, 352.7)
		probe.Set(0, 1, 60.9)
		C, err := Hexagonal2D.Complete(probe)
		assert.NoError(t, err)
		assert.Equal(t, 352.7, C.At(1, 1))
		assert.InDelta(t, 145.9, C.At(2, 2), 1.e-12)
	}
	// Wrong shape for the class
	{
		_, err := Cubic.Complete(utils.NewMatrix(3, 3))
		assert.Error(t, err)
		_, err = Square2D.Complete(utils.NewMatrix(6, 6))
		assert.Error(t, err)
	}
}

func TestCellRoles(t *testing.T) {
	// Cubic: 3 independent, 6 dependent mirrors plus derived diagonal
	{
		roles := Cubic.CellRoles()
		assert.Equal(t, RoleIndependent, roles[0][0])
		assert.Equal(t, RoleIndependent, roles[0][1])
		assert.Equal(t, RoleIndependent, roles[3][3])
		assert.Equal(t, RoleDependent, roles[1][1])
		assert.Equal(t, RoleDependent, roles[5][5])
		assert.Equal(t, RoleDependent, roles[1][0]) // lower-triangle mirror
		assert.Equal(t, RoleZero, roles[0][3])
		assert.Equal(t, RoleZero, roles[3][4])
	}
	// Trigonal_1 fills the C14 family
	{
		roles := Trigonal1.CellRoles()
		assert.Equal(t, RoleIndependent, roles[0][3])
		assert.Equal(t, RoleDependent, roles[1][3])
		assert.Equal(t, RoleDependent, roles[4][5])
		assert.Equal(t, RoleZero, roles[0][4])
	}
	// 2D classes report on the 3x3 block
	{
		roles := Hexagonal2D.CellRoles()
		assert.Equal(t, 3, len(roles))
		assert.Equal(t, RoleIndependent, roles[0][0])
		assert.Equal(t, RoleDependent, roles[1][1])
		assert.Equal(t, RoleDependent, roles[2][2])
		assert.Equal(t, RoleZero, roles[0][2])
	}
}

func TestOrder(t *testing.T) {
	// Classification order is ascending independent count with the
	// total fallbacks last
	{
		o := Order3D()
		assert.Equal(t, Cubic, o[0])
		assert.Equal(t, Triclinic, o[len(o)-1])
		for i := 1; i < len(o); i++ {
			assert.LessOrEqual(t, o[i-1].NumIndependent(), o[i].NumIndependent())
		}
	}
	{
		o := Order2D()
		assert.Equal(t, Hexagonal2D, o[0])
		assert.Equal(t, Oblique2D, o[len(o)-1])
	}
}
