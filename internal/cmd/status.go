package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/orgchart/internal/errors"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show team status for the leads in a roster",
	Long: `Show each lead's status followed by the status of its reports.

Without --roster the sample company is used. Use --lead to show a single
lead's team.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

var (
	statusRoster string
	statusLead   string
)

func init() {
	statusCmd.Flags().StringVarP(&statusRoster, "roster", "r", "", "Roster file (default: the sample company)")
	statusCmd.Flags().StringVar(&statusLead, "lead", "", "Only show this lead's team")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	a, err := s.load(statusRoster)
	if err != nil {
		return err
	}

	if statusLead == "" {
		s.printTeams(cmd, a)
		return nil
	}

	e, err := a.Employee(statusLead)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if tl, ok := e.AsTechnicalLead(); ok {
		fmt.Fprintln(out, s.printer.TeamStatus(tl.Employee, tl.TeamStatus()))
		return nil
	}
	if bl, ok := e.AsBusinessLead(); ok {
		fmt.Fprintln(out, s.printer.TeamStatus(bl.Employee, bl.TeamStatus()))
		return nil
	}
	return errors.NewCapabilityError(statusLead+" is not a lead", errors.ErrWrongRole).
		WithEmployee(uint64(e.ID())).
		WithRole(e.Role().String())
}
