// Package materials supplies named preset stiffness matrices and
// reads user-provided matrices from delimited text files. The contract
// with the numeric core is small: a (6,6) matrix plus an optional
// crystal-class label for validation.
package materials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// Material is one database entry. Cij is row-major, 6x6 for bulk
// crystals or 3x3 for 2D materials (widened on access).
type Material struct {
	Name         string      `json:"name"`
	Category     string      `json:"category,omitempty"`
	CrystalClass string      `json:"crystal_class,omitempty"`
	TwoD         bool        `json:"two_d,omitempty"`
	Cij          [][]float64 `json:"cij"`
}

// Matrix validates the entry shape and returns the stiffness matrix,
// auto-widened to 6x6 when stored as a 3x3 in-plane block.
func (m Material) Matrix() (C utils.Matrix, err error) {
	n := len(m.Cij)
	if n != 6 && n != 3 {
		err = fmt.Errorf("material %q: want 6 or 3 rows, got %d", m.Name, n)
		return
	}
	C = utils.NewMatrix(n, n)
	for i, row := range m.Cij {
		if len(row) != n {
			err = fmt.Errorf("material %q: row %d has %d entries, want %d",
				m.Name, i, len(row), n)
			return
		}
		for j, val := range row {
			C.Set(i, j, val)
		}
	}
	C = C.Symmetrize()
	if n == 3 {
		C, err = tensor.Embed2D(C)
	}
	return
}

type Database struct {
	Materials []Material `json:"materials"`
}

// DefaultPath is the per-user database location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".goelastic", "materials.yaml"), nil
}

// Load reads a YAML or JSON database file. An empty path falls back to
// DefaultPath, and a missing file falls back to the built-in presets.
func Load(path string) (db *Database, err error) {
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Builtin(), nil
		}
		return
	}
	db = &Database{}
	if err = yaml.Unmarshal(data, db); err != nil {
		err = fmt.Errorf("parsing material database %s: %w", path, err)
		return
	}
	return
}

// Save writes the database as YAML, creating the directory if needed.
func (db *Database) Save(path string) (err error) {
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return
		}
	}
	data, err := yaml.Marshal(db)
	if err != nil {
		return
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	return os.WriteFile(path, data, 0o644)
}

// Lookup finds a material by case-insensitive name.
func (db *Database) Lookup(name string) (Material, bool) {
	for _, m := range db.Materials {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Material{}, false
}

func (db *Database) Names() (names []string) {
	for _, m := range db.Materials {
		names = append(names, m.Name)
	}
	return
}

// Builtin is a small set of reference materials, stiffness in GPa.
func Builtin() *Database {
	return &Database{Materials: []Material{
		{
			Name: "Iron", Category: "elastic", CrystalClass: "Cubic",
			Cij: [][]float64{
				{230, 135, 135, 0, 0, 0},
				{135, 230, 135, 0, 0, 0},
				{135, 135, 230, 0, 0, 0},
				{0, 0, 0, 117, 0, 0},
				{0, 0, 0, 0, 117, 0},
				{0, 0, 0, 0, 0, 117},
			},
		},
		{
			Name: "Copper", Category: "elastic", CrystalClass: "Cubic",
			Cij: [][]float64{
				{169.1, 122.2, 122.2, 0, 0, 0},
				{122.2, 169.1, 122.2, 0, 0, 0},
				{122.2, 122.2, 169.1, 0, 0, 0},
				{0, 0, 0, 75.42, 0, 0},
				{0, 0, 0, 0, 75.42, 0},
				{0, 0, 0, 0, 0, 75.42},
			},
		},
		{
			Name: "Titanium", Category: "elastic", CrystalClass: "Hexagonal",
			Cij: [][]float64{
				{162.4, 92, 69, 0, 0, 0},
				{92, 162.4, 69, 0, 0, 0},
				{69, 69, 180.7, 0, 0, 0},
				{0, 0, 0, 46.7, 0, 0},
				{0, 0, 0, 0, 46.7, 0},
				{0, 0, 0, 0, 0, 35.2},
			},
		},
		{
			Name: "Quartz", Category: "elastic", CrystalClass: "Trigonal_1",
			Cij: [][]float64{
				{86.8, 7.04, 11.91, -18.04, 0, 0},
				{7.04, 86.8, 11.91, 18.04, 0, 0},
				{11.91, 11.91, 105.75, 0, 0, 0},
				{-18.04, 18.04, 0, 58.2, 0, 0},
				{0, 0, 0, 0, 58.2, -18.04},
				{0, 0, 0, 0, -18.04, 39.88},
			},
		},
		{
			Name: "Graphene", Category: "elastic", CrystalClass: "Hexagonal",
			TwoD: true,
			Cij: [][]float64{
				{352.7, 60.9, 0},
				{60.9, 352.7, 0},
				{0, 0, 145.9},
			},
		},
	}}
}
