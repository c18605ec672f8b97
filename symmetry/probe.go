package symmetry

import "github.com/matmodlab/goelastic/utils"

// Role classifies a matrix cell for a given symmetry class. Used by
// front-ends to style editable cells; carries no numerical meaning.
type Role int

const (
	RoleZero Role = iota
	RoleIndependent
	RoleDependent
)

func (r Role) String() string {
	switch r {
	case RoleIndependent:
		return "independent"
	case RoleDependent:
		return "dependent"
	}
	return "zero"
}

// CellRoles assigns synthetic distinct values to the class's
// independent positions, runs completion, and reports for every cell
// whether it is independent, dependent (filled in as a side effect of
// completion), or always zero.
func (c Class) CellRoles() [][]Role {
	var (
		dim   = c.Dim()
		probe = utils.NewMatrix(dim, dim)
	)
	// Distinct values keep linear combinations like (C11-C12)/2 from
	// cancelling to zero.
	for k, pos := range c.Independent() {
		val := 100 + 10*float64(k)
		probe.Set(pos.I, pos.J, val)
		probe.Set(pos.J, pos.I, val)
	}
	full, err := c.Complete(probe)
	if err != nil {
		panic(err) // dim is taken from the class itself
	}
	roles := make([][]Role, dim)
	for i := range roles {
		roles[i] = make([]Role, dim)
	}
	for _, pos := range c.Independent() {
		roles[pos.I][pos.J] = RoleIndependent
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if roles[i][j] == RoleIndependent {
				continue
			}
			if v := full.At(i, j); v != 0 {
				roles[i][j] = RoleDependent
			}
		}
	}
	return roles
}
