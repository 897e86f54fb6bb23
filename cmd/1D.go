/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofem/FEM1D"
	"github.com/notargets/gofem/InputParameters"
	"github.com/notargets/gofem/model_problems"
	"github.com/notargets/gofem/model_problems/MaterialVibration"
	"github.com/notargets/gofem/utils"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Boundary Value Problem Solutions",
	Long: `
Executes the Galerkin finite element solver for a model problem and samples the solution,

gofem 1D -m 0 -k 30 -o points.csv
gofem 1D -I deck.yaml --graph`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var m1d *Model1D
		fmt.Println("1D called")
		if m1d, err = NewModel1D(cmd); err != nil {
			return
		}
		return Run1D(m1d, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	var (
		ModelRun   = M_1DMaterialVibration
		K, Samples = Defaults(ModelRun)
	)
	OneDCmd.Flags().IntP("model", "m", int(ModelRun), "model to run: 0 = MaterialVibration, 1 = Reaction (from input file)")
	OneDCmd.Flags().IntP("k", "k", K, "Number of elements in model")
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input deck, selects the Reaction model")
	OneDCmd.Flags().StringP("output", "o", "points.csv", "CSV file for the sampled solution, empty to skip")
	OneDCmd.Flags().IntP("samples", "s", Samples, "number of sample points across the domain")
	OneDCmd.Flags().IntP("parallel", "p", 1, "number of goroutines used to assemble the system")
	OneDCmd.Flags().Bool("split", false, "integrate piecewise across basis function kinks")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution")
	OneDCmd.Flags().Bool("bases", false, "include the basis functions in the graph")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay between plotted series")
	OneDCmd.Flags().Int("hold", 10, "seconds to keep the graph open")
}

// NewModel1D reads the settings of the 1D command. Mesh size, sampling and
// parallel degree may also come from the config file or environment.
func NewModel1D(cmd *cobra.Command) (m1d *Model1D, err error) {
	if err = bindFlags(cmd, map[string]string{"elements": "k", "samples": "samples", "parallel": "parallel"}); err != nil {
		return
	}
	m1d = &Model1D{}
	mr, _ := cmd.Flags().GetInt("model")
	m1d.ModelRun = ModelType1D(mr)
	m1d.InputFile, _ = cmd.Flags().GetString("inputConditionsFile")
	m1d.OutputFile, _ = cmd.Flags().GetString("output")
	m1d.K = viper.GetInt("elements")
	m1d.Samples = viper.GetInt("samples")
	m1d.ParallelDegree = viper.GetInt("parallel")
	m1d.SplitKinks, _ = cmd.Flags().GetBool("split")
	m1d.Graph, _ = cmd.Flags().GetBool("graph")
	m1d.GraphBases, _ = cmd.Flags().GetBool("bases")
	dr, _ := cmd.Flags().GetInt("delay")
	m1d.Delay = time.Duration(dr) * time.Millisecond
	hold, _ := cmd.Flags().GetInt("hold")
	m1d.Hold = time.Duration(hold) * time.Second
	return
}

type Model1D struct {
	K, Samples, ParallelDegree int
	ModelRun                   ModelType1D
	InputFile, OutputFile      string
	SplitKinks                 bool
	Graph, GraphBases          bool
	Delay, Hold                time.Duration
}

type ModelType1D uint8

const (
	M_1DMaterialVibration ModelType1D = iota
	M_1DReaction
)

var (
	model_names = []string{"MaterialVibration", "Reaction"}
	def_K       = []int{30, 30}
	def_SAMPLES = []int{2048, 2048}
)

func (mt ModelType1D) String() string { return model_names[mt] }

func Defaults(model ModelType1D) (K, Samples int) {
	return def_K[model], def_SAMPLES[model]
}

// NewModel resolves the problem and solver options for a run. An input deck
// overrides the mesh, sampling and solver settings given on the command line.
func NewModel(m1d *Model1D) (problem FEM1D.Problem, opts []FEM1D.Option, err error) {
	if len(m1d.InputFile) != 0 {
		var (
			data []byte
			ip   = &InputParameters.InputParameters1D{}
		)
		if data, err = os.ReadFile(m1d.InputFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
		ip.Print()
		if problem, err = ip.NewProblem(); err != nil {
			return
		}
		m1d.K, m1d.Samples = ip.Elements, ip.Samples
		opts = ip.Options()
		return
	}
	switch m1d.ModelRun {
	case M_1DMaterialVibration:
		problem = MaterialVibration.MaterialVibration{}
	case M_1DReaction:
		ip := &InputParameters.InputParameters1D{}
		if err = ip.Parse([]byte(InputParameters.ExampleFile)); err != nil {
			return
		}
		fmt.Printf("No input deck supplied, using Example File:%s\n", InputParameters.ExampleFile)
		if problem, err = ip.NewProblem(); err != nil {
			return
		}
	default:
		panic(fmt.Sprintf("unknown model type %d", m1d.ModelRun))
	}
	if m1d.ParallelDegree < 1 {
		m1d.ParallelDegree = 1
	}
	opts = append(opts, FEM1D.WithParallelDegree(m1d.ParallelDegree))
	if m1d.SplitKinks {
		opts = append(opts, FEM1D.WithKinkSplitting())
	}
	return
}

func Run1D(m1d *Model1D, log io.Writer) (err error) {
	var (
		problem FEM1D.Problem
		opts    []FEM1D.Option
		cf      *FEM1D.ComputedFunction
	)
	if problem, opts, err = NewModel(m1d); err != nil {
		return
	}
	if m1d.Samples < 1 {
		return fmt.Errorf("need at least one sample point, have %d", m1d.Samples)
	}
	r := problem.Range()
	fmt.Fprintf(log, "Domain = [%8.4f, %8.4f), Num Elements K = %d, Samples = %d\n",
		r.Low, r.High, m1d.K, m1d.Samples)
	start := time.Now()
	if cf, err = FEM1D.FindSolution(problem, m1d.K, opts...); err != nil {
		return
	}
	fmt.Fprintf(log, "Solved for %d basis functions in %v, fingerprint %s\n",
		len(cf.Bases()), time.Since(start), cf.Fingerprint())
	xs := FEM1D.SampleGrid(r, m1d.Samples)
	ys := cf.Sample(xs)
	if len(m1d.OutputFile) != 0 {
		if err = writePointsFile(m1d.OutputFile, xs, ys); err != nil {
			return
		}
		fmt.Fprintf(log, "Wrote %d points to %s\n", len(xs), m1d.OutputFile)
	}
	var exact []float64
	if as, ok := problem.(FEM1D.AnalyticSolution); ok {
		if sp, derr := model_problems.Deviation(cf, as, xs); derr == nil {
			fmt.Fprintf(log, "Deviation from analytic solution: max = %10.4e, rms = %10.4e\n",
				sp.MaxErr, sp.RMSErr)
			exact = sampleExact(as, xs)
		}
	}
	fmt.Fprintf(log, "%s, BLAS = %s\n", utils.GetMemUsage(), utils.BLASImplementation)
	if m1d.Graph {
		err = plotSolution(m1d, xs, ys, exact, cf.Bases())
	}
	return
}

func sampleExact(as FEM1D.AnalyticSolution, xs []float64) (ys []float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i], _ = as.Exact(x)
	}
	return
}

func writePointsFile(path string, xs, ys []float64) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(path); err != nil {
		return
	}
	if err = WritePoints(f, xs, ys); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}

// WritePoints writes one "x, y" line per sample
func WritePoints(w io.Writer, xs, ys []float64) (err error) {
	if len(xs) != len(ys) {
		return fmt.Errorf("have %d abscissas and %d ordinates", len(xs), len(ys))
	}
	for i := range xs {
		if _, err = fmt.Fprintf(w, "%v, %v\n", xs[i], ys[i]); err != nil {
			return
		}
	}
	return
}

func plotSolution(m1d *Model1D, xs, ys, exact []float64, bases []FEM1D.BasisFunction) (err error) {
	var (
		fmin, fmax = utils.MinMax(0.1, ys, exact)
		lc         = utils.NewLineChart(1024, 1024, xs[0], xs[len(xs)-1], fmin, fmax)
	)
	if m1d.GraphBases {
		for _, b := range bases {
			bv := make([]float64, len(xs))
			for j, x := range xs {
				bv[j] = b.Regular(x)
			}
			if err = lc.AddSeries(xs, bv, utils.GetColor(utils.Blue)); err != nil {
				return
			}
		}
	}
	if exact != nil {
		if err = lc.AddSeries(xs, exact, utils.GetColor(utils.Green)); err != nil {
			return
		}
	}
	if err = lc.AddSeries(xs, ys, utils.GetColor(utils.Red)); err != nil {
		return
	}
	lc.Show(m1d.Delay, m1d.Hold)
	return
}
