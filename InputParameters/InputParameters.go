package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Excitations maps a named
// physical group of the mesh to its boundary condition; the first key is
// the group name, the second the parameter name (usually "voltage" or
// "permittivity").
type TracingParameters struct {
	Title            string                        `yaml:"Title"`
	Atol             float64                       `yaml:"Atol"`
	Energy           float64                       `yaml:"Energy"` // initial particle energy, eV
	Bounds           [3][2]float64                 `yaml:"Bounds"`
	ZMin             float64                       `yaml:"ZMin"`
	ZMax             float64                       `yaml:"ZMax"`
	NZSamples        int                           `yaml:"NZSamples"`
	SeriesField      bool                          `yaml:"SeriesField"` // trace on the fitted series instead of direct integration
	ThreeDimensional bool                          `yaml:"ThreeDimensional"`
	Excitations      map[string]map[string]float64 `yaml:"Excitations"`
}

func (tp *TracingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, tp)
}

func (tp *TracingParameters) Validate() error {
	if tp.Atol <= 0 {
		return fmt.Errorf("Atol must be positive, have %v", tp.Atol)
	}
	if tp.Energy <= 0 {
		return fmt.Errorf("Energy must be positive, have %v", tp.Energy)
	}
	for i := 0; i < 3; i++ {
		if tp.Bounds[i][0] >= tp.Bounds[i][1] {
			return fmt.Errorf("Bounds axis %d is empty: [%v,%v]", i, tp.Bounds[i][0], tp.Bounds[i][1])
		}
	}
	if tp.SeriesField {
		if tp.NZSamples < 4 {
			return fmt.Errorf("NZSamples must be at least 4 for a series field, have %d", tp.NZSamples)
		}
		if tp.ZMin >= tp.ZMax {
			return fmt.Errorf("z range is empty: [%v,%v]", tp.ZMin, tp.ZMax)
		}
	}
	return nil
}

func (tp *TracingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("%8.2e\t\t= Atol\n", tp.Atol)
	fmt.Printf("%8.5f\t\t= Energy (eV)\n", tp.Energy)
	fmt.Printf("%v\t= Bounds\n", tp.Bounds)
	if tp.SeriesField {
		fmt.Printf("[%8.5f,%8.5f] x %d\t= series z grid\n", tp.ZMin, tp.ZMax, tp.NZSamples)
	}
	keys := make([]string, len(tp.Excitations))
	i := 0
	for k := range tp.Excitations {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Excitations[%s] = %v\n", key, tp.Excitations[key])
	}
}
