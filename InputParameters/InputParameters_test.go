package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	// Full document
	{
		doc := `
Title: quartz survey
Resolution: 150
ChiSamples: 64
Tolerance: 1.e-5
Properties: [E, G, v]
Planes: [xy, xz]
Miller: [1, 1, 1]
TwoD: false
Materials:
  quartz: testdata/quartz.dat
  iron: testdata/iron.dat
`
		ap := DefaultAnalysisParameters()
		assert.NoError(t, ap.Parse([]byte(doc)))
		assert.Equal(t, "quartz survey", ap.Title)
		assert.Equal(t, 150, ap.Resolution)
		assert.Equal(t, 64, ap.ChiSamples)
		assert.Equal(t, 1.e-5, ap.Tolerance)
		assert.Equal(t, []string{"E", "G", "v"}, ap.Properties)
		assert.Equal(t, []string{"xy", "xz"}, ap.Planes)
		assert.Equal(t, []float64{1, 1, 1}, ap.Miller)
		assert.Equal(t, "testdata/quartz.dat", ap.Materials["quartz"])
	}
	// Partial document keeps the defaults
	{
		ap := DefaultAnalysisParameters()
		assert.NoError(t, ap.Parse([]byte("Title: sparse\n")))
		assert.Equal(t, "sparse", ap.Title)
		assert.Equal(t, 100, ap.Resolution)
		assert.Equal(t, 100, ap.ChiSamples)
		assert.Equal(t, 1.e-6, ap.Tolerance)
		assert.Equal(t, []string{"E", "G", "v"}, ap.Properties)
	}
	// Malformed YAML
	{
		ap := DefaultAnalysisParameters()
		assert.Error(t, ap.Parse([]byte("Resolution: [not an int\n")))
	}
}
