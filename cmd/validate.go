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

	"github.com/rotblauer/kinecalc/config"
	"github.com/rotblauer/kinecalc/scenario"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate scenario inputs without computing",
	Long: `Checks every scenario input and reports all invalid ones, one "Error:" line each.
Prints "ok" when the scenario is valid.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		if code := runValidate(cfg, optConfigFile, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
			exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(v *viper.Viper, configFile string, out, errOut io.Writer) int {
	if err := config.ReadFile(v, configFile); err != nil {
		return reportError(errOut, err)
	}
	if err := scenario.CheckValues(config.Values(v)); err != nil {
		for _, e := range multierr.Errors(err) {
			reportError(errOut, e)
		}
		return 1
	}
	fmt.Fprintln(out, "ok")
	return 0
}
