package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosecheck/rosecheck/check"
	"github.com/rosecheck/rosecheck/genlib"
)

func newRunCmd() *cobra.Command {
	var seed int64
	var numCases int
	var demoFail bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a bundled demo property and report the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := check.DefaultRunParametersWithSeed(seed)
			params.NumCases = numCases

			if configPath != "" {
				loaded, err := check.LoadRunParameters(configPath)
				if err != nil {
					return err
				}
				params = loaded
			}

			runner := check.NewRunner()

			prop := check.Property[[]int]{
				Name: "sliceStaysWithinBound",
				Gen:  genlib.SliceOf[int]{Element: genlib.IntRange{Min: -1000, Max: 1000}, MaxLen: 50},
				Check: func(v []int) bool {
					if demoFail {
						return len(v) < 3
					}
					return len(v) <= 50
				},
			}

			report := check.Run(cmd.Context(), runner, prop, params)

			fmt.Fprintf(cmd.OutOrStdout(), "property %q: passed=%v cases=%d\n",
				report.PropertyName, report.Passed, report.CasesRun)
			if !report.Passed {
				fmt.Fprintf(cmd.OutOrStdout(), "  failing value: %s\n  shrink tries: %d\n",
					report.FailingValue, report.ShrinkTries)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "master seed for the demo run")
	cmd.Flags().IntVar(&numCases, "cases", 100, "number of cases to run")
	cmd.Flags().BoolVar(&demoFail, "fail", false, "use a deliberately falsifiable property to demonstrate shrinking")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML RunParameters file")

	return cmd
}
