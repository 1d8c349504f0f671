package InputParameters

import (
	"fmt"
	"os"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML plot parameter file
type PlotParameters struct {
	Title       string                 `json:"Title"`
	Load        *float64               `json:"Load,omitempty"`
	WarpFactor  *float64               `json:"WarpFactor,omitempty"`
	FieldName   string                 `json:"FieldName"`
	Components  int                    `json:"Components"`
	Output      string                 `json:"Output"`
	Camera      string                 `json:"Camera"`
	WindowSize  [2]int                 `json:"WindowSize"`
	MeshOptions map[string]interface{} `json:"MeshOptions"` // Passed to the renderer as is
}

func NewPlotParameters() *PlotParameters {
	return &PlotParameters{
		FieldName:  "Field",
		Components: 2,
		Camera:     "xy",
		WindowSize: [2]int{1024, 768},
	}
}

func (pp *PlotParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, pp); err != nil {
		return
	}
	return pp.Validate()
}

func (pp *PlotParameters) ReadFile(filename string) (err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	if err = pp.Parse(data); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func (pp *PlotParameters) Validate() error {
	if pp.Components < 1 || pp.Components > 3 {
		return fmt.Errorf("Components = %d, must be 1, 2 or 3", pp.Components)
	}
	switch pp.Camera {
	case "xy", "xz", "yz":
	default:
		return fmt.Errorf("Camera = %q, must be xy, xz or yz", pp.Camera)
	}
	if pp.WindowSize[0] < 1 || pp.WindowSize[1] < 1 {
		return fmt.Errorf("WindowSize = %v, must be positive", pp.WindowSize)
	}
	return nil
}

// PlotTitle is the Title with the load appended to three decimals when one
// is given
func (pp *PlotParameters) PlotTitle() string {
	switch {
	case pp.Load == nil:
		return pp.Title
	case pp.Title == "":
		return fmt.Sprintf("load %3.3f", *pp.Load)
	default:
		return fmt.Sprintf("%s - load %3.3f", pp.Title, *pp.Load)
	}
}

func (pp *PlotParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	if pp.Load != nil {
		fmt.Printf("%8.5f\t\t= Load\n", *pp.Load)
	}
	if pp.WarpFactor != nil {
		fmt.Printf("%8.5f\t\t= WarpFactor\n", *pp.WarpFactor)
	}
	fmt.Printf("[%s]\t\t\t= Field Name\n", pp.FieldName)
	fmt.Printf("[%d]\t\t\t\t= Components\n", pp.Components)
	fmt.Printf("[%s]\t\t\t= Camera\n", pp.Camera)
	fmt.Printf("%v\t\t= Window Size\n", pp.WindowSize)
	if pp.Output != "" {
		fmt.Printf("[%s]\t= Output\n", pp.Output)
	}
	keys := make([]string, len(pp.MeshOptions))
	i := 0
	for k := range pp.MeshOptions {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("MeshOptions[%s] = %v\n", key, pp.MeshOptions[key])
	}
}
