package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type AnalysisParameters struct {
	Title      string            `yaml:"Title"`
	Resolution int               `yaml:"Resolution"` // direction samples per sweep/grid axis
	ChiSamples int               `yaml:"ChiSamples"` // in-plane rotation samples for G and v
	Tolerance  float64           `yaml:"Tolerance"`  // symmetry classification tolerance
	Properties []string          `yaml:"Properties"` // property codes: E, G, B, v, H
	Planes     []string          `yaml:"Planes"`     // fixed sweep planes: xy, xz, yz
	Miller     []float64         `yaml:"Miller"`     // [h k l] slice-plane normal
	TwoD       bool              `yaml:"TwoD"`
	Materials  map[string]string `yaml:"Materials"` // name -> matrix file path
}

func DefaultAnalysisParameters() *AnalysisParameters {
	return &AnalysisParameters{
		Resolution: 100,
		ChiSamples: 100,
		Tolerance:  1e-6,
		Properties: []string{"E", "G", "v"},
	}
}

func (ap *AnalysisParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

func (ap *AnalysisParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%d]\t\t\t= Resolution\n", ap.Resolution)
	fmt.Printf("[%d]\t\t\t= ChiSamples\n", ap.ChiSamples)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ap.Tolerance)
	fmt.Printf("%v\t\t= Properties\n", ap.Properties)
	fmt.Printf("%v\t\t= Planes\n", ap.Planes)
	if len(ap.Miller) == 3 {
		fmt.Printf("[%g %g %g]\t\t= Miller\n", ap.Miller[0], ap.Miller[1], ap.Miller[2])
	}
	fmt.Printf("[%v]\t\t\t= TwoD\n", ap.TwoD)
	keys := make([]string, 0, len(ap.Materials))
	for k := range ap.Materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Materials[%s] = %v\n", key, ap.Materials[key])
	}
}
