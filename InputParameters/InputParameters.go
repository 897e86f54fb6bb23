package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/notargets/gofem/FEM1D"
	"github.com/notargets/gofem/model_problems/MaterialVibration"
	"github.com/notargets/gofem/model_problems/Reaction1D"
)

type BCInput struct {
	Type  string  `json:"Type"`
	Alpha float64 `json:"Alpha"`
	G     float64 `json:"G"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title          string             `json:"Title"`
	Model          string             `json:"Model"` // MaterialVibration or Reaction
	Domain         []float64          `json:"Domain"`
	Elements       int                `json:"Elements"`
	P              float64            `json:"P"`
	Q              float64            `json:"Q"`
	Load           float64            `json:"Load"`
	BCs            map[string]BCInput `json:"BCs"` // Keyed by Left and Right
	Samples        int                `json:"Samples"`
	ParallelDegree int                `json:"ParallelDegree"`
	SplitKinks     bool               `json:"SplitKinks"`
}

const ExampleFile = `
########################################
Title: "Fixed end, prescribed flux"
Model: Reaction # Can be MaterialVibration
Domain: [0, 1]
Elements: 30
P: 1     # -P u'' + Q u = Load
Q: 0
Load: 1
BCs:
  Left:
    Type: Dirichlet
  Right:
    Type: Robin # P du/dn + Alpha u = G
    Alpha: 0
    G: 0
Samples: 2048
ParallelDegree: 1
SplitKinks: true
########################################
`

func (ip *InputParameters1D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return ip.validate()
}

func (ip *InputParameters1D) setDefaults() {
	if len(ip.Model) == 0 {
		ip.Model = "Reaction"
	}
	if len(ip.Domain) == 0 {
		ip.Domain = []float64{0, 1}
	}
	if ip.Elements == 0 {
		ip.Elements = 30
	}
	if ip.P == 0 {
		ip.P = 1
	}
	if ip.Samples == 0 {
		ip.Samples = 2048
	}
	if ip.ParallelDegree == 0 {
		ip.ParallelDegree = 1
	}
}

func (ip *InputParameters1D) validate() error {
	if len(ip.Domain) != 2 || !(ip.Domain[1] > ip.Domain[0]) {
		return fmt.Errorf("domain must be two increasing values, have %v", ip.Domain)
	}
	if ip.Elements < 1 {
		return fmt.Errorf("%w: Elements = %d", FEM1D.ErrDegenerateMesh, ip.Elements)
	}
	if ip.ParallelDegree < 1 {
		return fmt.Errorf("ParallelDegree must be positive, have %d", ip.ParallelDegree)
	}
	for key := range ip.BCs {
		if key != "Left" && key != "Right" {
			return fmt.Errorf("unknown boundary %q, use Left or Right", key)
		}
	}
	return nil
}

// NewProblem builds the problem described by the input deck
func (ip *InputParameters1D) NewProblem() (problem FEM1D.Problem, err error) {
	switch ip.Model {
	case "MaterialVibration":
		problem = MaterialVibration.MaterialVibration{}
	case "Reaction":
		var left, right Reaction1D.Boundary
		if left, err = ip.boundary("Left"); err != nil {
			return
		}
		if right, err = ip.boundary("Right"); err != nil {
			return
		}
		if ip.P <= 0 {
			err = fmt.Errorf("P must be positive, have %v", ip.P)
			return
		}
		problem = Reaction1D.NewReaction(FEM1D.NewRange(ip.Domain[0], ip.Domain[1]),
			ip.P, ip.Q, left, right).SetConstantLoad(ip.Load)
	default:
		err = fmt.Errorf("unknown model %q", ip.Model)
	}
	return
}

func (ip *InputParameters1D) boundary(key string) (bc Reaction1D.Boundary, err error) {
	bi := ip.BCs[key]
	if bc.Type, err = Reaction1D.NewBCType(bi.Type); err != nil {
		return
	}
	bc.Alpha, bc.G = bi.Alpha, bi.G
	return
}

// Options translates the solver settings of the deck
func (ip *InputParameters1D) Options() (opts []FEM1D.Option) {
	opts = append(opts, FEM1D.WithParallelDegree(ip.ParallelDegree))
	if ip.SplitKinks {
		opts = append(opts, FEM1D.WithKinkSplitting())
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Model\n", ip.Model)
	fmt.Printf("%v\t\t\t= Domain\n", ip.Domain)
	fmt.Printf("[%d]\t\t\t= Elements\n", ip.Elements)
	fmt.Printf("%8.5f\t\t= P\n", ip.P)
	fmt.Printf("%8.5f\t\t= Q\n", ip.Q)
	fmt.Printf("%8.5f\t\t= Load\n", ip.Load)
	fmt.Printf("[%d]\t\t\t= Samples\n", ip.Samples)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Printf("[%v]\t\t\t= Split Kinks\n", ip.SplitKinks)
	for _, key := range ip.BoundaryNames() {
		fmt.Printf("BCs[%s] = %+v\n", key, ip.BCs[key])
	}
}

// BoundaryNames lists the keys of BCs in sorted order
func (ip *InputParameters1D) BoundaryNames() (keys []string) {
	keys = maps.Keys(ip.BCs)
	slices.Sort(keys)
	return
}
