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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofem/FEM1D"
	"github.com/notargets/gofem/model_problems"
)

var convergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Mesh refinement study against the analytic solution",
	Long: `
Solves a model problem on a sequence of meshes and reports the deviation from the closed form solution,

gofem converge -m 0 --meshes 10,20,40,80,160 -o study.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m1d    *Model1D
			meshes []int
		)
		if m1d, meshes, err = NewConvergenceModel(cmd); err != nil {
			return
		}
		return RunConvergence(m1d, meshes)
	},
}

func init() {
	rootCmd.AddCommand(convergeCmd)
	convergeCmd.Flags().IntP("model", "m", int(M_1DMaterialVibration), "model to run: 0 = MaterialVibration, 1 = Reaction (from input file)")
	convergeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input deck, selects the Reaction model")
	convergeCmd.Flags().StringP("output", "o", "", "CSV file for the study, empty to skip")
	convergeCmd.Flags().IntSlice("meshes", []int{10, 20, 40, 80, 160}, "element counts to solve on, coarse to fine")
	convergeCmd.Flags().IntP("samples", "s", 512, "number of sample points used to measure the deviation")
	convergeCmd.Flags().IntP("parallel", "p", 1, "number of goroutines used to assemble the system")
	convergeCmd.Flags().Bool("split", false, "integrate piecewise across basis function kinks")
}

// NewConvergenceModel reads the settings of the converge command, sampling and
// parallel degree may also come from the config file or environment
func NewConvergenceModel(cmd *cobra.Command) (m1d *Model1D, meshes []int, err error) {
	if err = bindFlags(cmd, map[string]string{"samples": "samples", "parallel": "parallel"}); err != nil {
		return
	}
	m1d = &Model1D{}
	mr, _ := cmd.Flags().GetInt("model")
	m1d.ModelRun = ModelType1D(mr)
	m1d.InputFile, _ = cmd.Flags().GetString("inputConditionsFile")
	m1d.OutputFile, _ = cmd.Flags().GetString("output")
	m1d.Samples = viper.GetInt("samples")
	m1d.ParallelDegree = viper.GetInt("parallel")
	m1d.SplitKinks, _ = cmd.Flags().GetBool("split")
	meshes, _ = cmd.Flags().GetIntSlice("meshes")
	return
}

func RunConvergence(m1d *Model1D, meshes []int) (err error) {
	var (
		problem FEM1D.Problem
		opts    []FEM1D.Option
		cs      *model_problems.ConvergenceStudy
	)
	if len(meshes) == 0 {
		return fmt.Errorf("no meshes given for the convergence study")
	}
	if problem, opts, err = NewModel(m1d); err != nil {
		return
	}
	ep, ok := problem.(model_problems.ExactProblem)
	if !ok {
		return fmt.Errorf("model %s has no analytic solution", m1d.ModelRun)
	}
	if m1d.Samples < 1 {
		m1d.Samples = 512
	}
	cs = model_problems.NewConvergenceStudy(studyTitle(m1d), m1d.Samples)
	if err = cs.Run(ep, meshes, opts...); err != nil {
		return
	}
	cs.Print()
	if !cs.Monotone() {
		fmt.Println("Warning: deviation does not decrease monotonically with refinement")
	}
	if len(m1d.OutputFile) != 0 {
		err = appendStudy(m1d.OutputFile, cs)
	}
	return
}

func studyTitle(m1d *Model1D) (title string) {
	title = m1d.ModelRun.String()
	if len(m1d.InputFile) != 0 {
		title = m1d.InputFile
	}
	if m1d.SplitKinks {
		title += "-split"
	}
	return
}

// appendStudy adds the study to the CSV file, writing a header when the file is new
func appendStudy(path string, cs *model_problems.ConvergenceStudy) (err error) {
	var (
		f      *os.File
		header bool
		w      io.Writer
	)
	if _, err = os.Stat(path); os.IsNotExist(err) {
		header = true
	}
	if f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return
	}
	w = f
	if err = cs.WriteCSV(w, header); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}
