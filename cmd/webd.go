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
	"log"
	"log/slog"

	"github.com/rotblauer/kinecalc/config"
	"github.com/rotblauer/kinecalc/daemon/webd"
	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/scenario"
	"github.com/spf13/cobra"
)

var optHTTPAddr string
var optCacheSize int

// webdCmd represents the serve command
var webdCmd = &cobra.Command{
	Use:   "webd",
	Short: "Start the webserver",
	Long: `Serves scenario computations over HTTP.

  GET  /ping      healthcheck
  GET  /status    uptime, counters and the default scenario
  GET  /scenario  result for the default scenario
  POST /scenario  result for a JSON object of options; left out options take the default

The default scenario comes from flags, environment and config file, like the root command.
When a config file is in use it is watched and the default scenario reloaded on change.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		slog.Info("webd.Run")

		defaults, err := loadScenario(cfg, optConfigFile)
		if err != nil {
			log.Fatalln(err)
		}
		daemonConfig := params.DefaultWebDaemonConfig()
		daemonConfig.Address = optHTTPAddr
		daemonConfig.ResultCacheSize = optCacheSize
		server, err := webd.NewWebDaemon(daemonConfig, defaults)
		if err != nil {
			log.Fatalln(err)
		}

		if cfg.ConfigFileUsed() != "" {
			config.Watch(cfg, func(in scenario.Input, err error) {
				if err != nil {
					slog.Error("Ignoring config change", "error", err)
					return
				}
				if err := server.SetDefaults(in); err != nil {
					slog.Error("Ignoring config change", "error", err)
				}
			})
		}

		if err := server.Run(); err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(webdCmd)

	defaults := params.DefaultWebDaemonConfig()
	flags := webdCmd.Flags()
	flags.StringVar(&optHTTPAddr, "address", defaults.Address, "HTTP address to listen on")
	flags.IntVar(&optCacheSize, "cache-size", defaults.ResultCacheSize, "Number of scenario results to memoize")
}
