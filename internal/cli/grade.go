package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codetestguard/internal/ui/pretty"
	"github.com/yaklabco/codetestguard/pkg/grade"
)

func newGradeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade <score>",
		Short: "Print the letter grade and color for a score",
		Long: `Print the letter grade and display color a report would show for a score.

Examples:
  codetestguard grade 92      # A #00b894
  codetestguard grade 79.9    # C #f39c12`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrade(cmd, args[0])
		},
	}

	return cmd
}

func runGrade(cmd *cobra.Command, arg string) error {
	score, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(score) {
		return fmt.Errorf("%w: invalid score %q: must be a number", ErrUsage, arg)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	g := grade.Classify(score)
	fmt.Fprintf(out, "%s %s\n", styles.Grade(g).Render(g.String()), g.Color)
	return nil
}
