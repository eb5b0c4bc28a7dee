// Command orderbench measures insertion workloads against the
// order-maintenance list and reports label-rewrite statistics.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mgnsk/orderlist/internal/bench"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "orderbench",
		Short:         "orderbench measures order-maintenance insertion workloads",
		Long:          "orderbench runs configurable insertion patterns (append, prepend, random, densest-point) against the order-maintenance list and reports insert counts, label rewrites and timings.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			cfg := bench.DefaultConfig()
			if cfgPath != "" {
				var err error
				if cfg, err = bench.LoadConfig(cfgPath); err != nil {
					logger.Error("invalid workload config", "path", cfgPath, "err", err)
					return err
				}
				logger.Debug("loaded workload config", "path", cfgPath, "workloads", len(cfg.Workloads))
			}

			results := bench.Run(cfg, logger)
			fmt.Fprintln(cmd.OutOrStdout(), bench.Table(results))

			return nil
		},
	}

	root.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a TOML workload config")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root.Execute()
}
