package commands

import (
	"github.com/spf13/cobra"
)

var envFiles []string

func Execute() error {
	root := &cobra.Command{
		Use:           "landing",
		Short:         "Device-routed real-estate landing page",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "env files to load before the environment (missing files are skipped)")

	root.AddCommand(serveCmd(), classifyCmd())
	return root.Execute()
}
