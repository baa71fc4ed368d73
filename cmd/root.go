/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

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
	"log/slog"
	"os"
	"strings"

	"github.com/rotblauer/kinecalc/config"
	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/scenario"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var optConfigFile string
var optVerbosity string

// cfg holds the resolved flag, environment and file configuration.
var cfg = config.New()

// exit is os.Exit, swapped out in tests.
var exit = os.Exit

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   params.AppName,
	Short: "Compute velocity, distance and remaining fuel for a scenario",
	Long: `Computes, for one scenario, the new velocity (km/h) after constant acceleration,
the distance travelled (km), and the fuel left (kg) after burning at a constant rate.

Every input must be a finite, non-negative number. The first invalid input
aborts the run with a single "Error:" line and exit status 1.

Options (flag / environment / config file key):

  --velocity          KINECALC_VELOCITY         velocity         km/h   (10000)
  --acceleration      KINECALC_ACCELERATION     acceleration     m/s^2  (3)
  --time              KINECALC_TIME             time             s      (3600)
  --initial-distance  KINECALC_INITIALDISTANCE  initialDistance  km     (0)
  --remaining-fuel    KINECALC_REMAININGFUEL    remainingFuel    kg     (5000)
  --fuel-burn-rate    KINECALC_FUELBURNRATE     fuelBurnRate     kg/s   (0.5)

Examples:

  kinecalc
  kinecalc --time 60 --fuel-burn-rate 2
  KINECALC_VELOCITY=900 kinecalc --config scenario.yaml
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		if code := runScenario(cfg, optConfigFile, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
			exit(code)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		exit(1)
	}
}

func init() {
	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&optConfigFile, "config", "", "config file (default is $HOME/.kinecalc.yaml)")
	pFlags.StringVar(&optVerbosity, "verbosity", params.DefaultVerbosity, "log level: debug, info, warn, error")
	cobra.CheckErr(config.BindFlags(cfg, pFlags))
}

// setDefaultSlog installs a text logger on stderr at the --verbosity level.
func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(strings.TrimSpace(optVerbosity))); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown verbosity %q, using %s\n", optVerbosity, level)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadScenario reads the config file, if any, and resolves the scenario input.
func loadScenario(v *viper.Viper, configFile string) (scenario.Input, error) {
	if err := config.ReadFile(v, configFile); err != nil {
		return scenario.Input{}, err
	}
	return config.Load(v)
}

// runScenario computes and reports one scenario, returning the exit status.
// Results go to out; a failure is a single "Error:" line on errOut.
func runScenario(v *viper.Viper, configFile string, out, errOut io.Writer) int {
	in, err := loadScenario(v, configFile)
	if err != nil {
		return reportError(errOut, err)
	}
	res, err := scenario.Run(in)
	if err != nil {
		return reportError(errOut, err)
	}
	if _, err := res.WriteTo(out); err != nil {
		slog.Error("Failed to write results", "error", err)
		return 1
	}
	return 0
}

func reportError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "Error: %v\n", err)
	return 1
}
