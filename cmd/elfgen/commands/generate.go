package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/elfgen/internal/app"
	"go.trai.ch/elfgen/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Build discovered programs and regenerate the bindings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			buildScript, _ := cmd.Flags().GetBool("build-script")
			keepGoing, _ := cmd.Flags().GetBool("keep-going")

			result, err := c.app.Generate(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if buildScript {
				// Stdout belongs to cargo when invoked from a build
				// script; emit directives only.
				for _, line := range app.BuildScriptDirectives(result) {
					_, _ = fmt.Fprintln(out, line)
				}
			} else {
				_, _ = fmt.Fprint(out, result.String())
			}

			if n := len(result.Report.Failures); n > 0 && !keepGoing {
				return zerr.With(domain.ErrBuildFailed, "failed_programs", n)
			}
			return nil
		},
	}
	cmd.Flags().Bool("build-script", false, "Emit cargo build-script directives on stdout instead of a summary")
	cmd.Flags().BoolP("keep-going", "k", false, "Exit zero even when some programs fail to build")
	return cmd
}
