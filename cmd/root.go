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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofem",
	Short: "Galerkin finite element solutions of one dimensional boundary value problems",
	Long: `
Solves second order boundary value problems on an interval using piecewise
linear (hat) basis functions, Gauss-Legendre quadrature and a dense LU solve.

gofem 1D -m 0 -k 30 -o points.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var mode string
		if mode, err = cmd.Flags().GetString("profile"); err != nil {
			return
		}
		profiler, err = startProfile(mode)
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofem.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a profile of the run to the current directory: cpu or mem")
}

func startProfile(mode string) (p interface{ Stop() }, err error) {
	switch mode {
	case "":
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		err = fmt.Errorf("unknown profile mode %q, use cpu or mem", mode)
	}
	return
}

// bindFlags points each viper key at the named flag of cmd. Commands share
// keys, so the binding is made for the command that is about to run.
func bindFlags(cmd *cobra.Command, keys map[string]string) (err error) {
	for key, name := range keys {
		if err = viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding %s to flag %s: %w", key, name, err)
		}
	}
	return
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gofem" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gofem")
	}
	viper.SetEnvPrefix("gofem")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
