package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/orgchart/internal/roster"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the sample company and print every team",
	Long: `Build the sample company and print every team's status.

The sample has two technical leads with three and four engineers, and a
business lead with two accountants, one supporting each technical team.

Use --export to write the sample as a roster file to start from.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var demoExport string

func init() {
	demoCmd.Flags().StringVar(&demoExport, "export", "", "Write the sample roster to this file instead of printing it")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if demoExport != "" {
		if err := roster.Save(appFs, demoExport, roster.Demo()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote sample roster to %s\n", demoExport)
		return nil
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.build(roster.Demo())
	if err != nil {
		return err
	}

	s.printTeams(cmd, a)
	return nil
}
