package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/codetestguard/internal/configloader"
	"github.com/yaklabco/codetestguard/internal/logging"
)

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List supported environment variables",
		Long: `List the CODETESTGUARD_* environment variables. Each one overrides the
matching configuration file key and is itself overridden by CLI flags.`,
		Args: usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewInteractiveTo(cmd.OutOrStdout())

			logger.Info("environment overrides")
			for _, envVar := range configloader.ListEnvVars() {
				logger.Info(envVar.Name, logging.FieldDescription, envVar.Description)
			}
		},
	}
}
