package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/orgchart/internal/config"
)

// appFs is the filesystem config and roster files are read from.
var appFs = afero.NewOsFs()

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "orgchart",
	Short: "Model an org chart and its bonus approval workflow",
	Long: `Orgchart builds an org chart of technical and business leads from a
roster file and runs headcount, check-in, and bonus approval operations
against it.

Engineers report to technical leads, accountants report to business leads
and support one technical lead's team. Bonus requests travel from a
technical lead to its business manager and are granted by the accountant
supporting the team.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init(appFs, cfgFile)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/orgchart/config.yaml)")
}
