package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDecisionCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decision",
		Short: "Record and list meeting decisions",
	}

	cmd.AddCommand(newDecisionAddCmd(deps))
	cmd.AddCommand(newDecisionListCmd(deps))

	return cmd
}

func newDecisionAddCmd(deps *Dependencies) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "add <meeting-id> <text>",
		Short: "Record a decision for a meeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := resolveMeeting(cmd.Context(), deps, args[0])
			if err != nil {
				return err
			}

			var ownerPtr *string
			if owner != "" {
				ownerPtr = &owner
			}

			decision, err := deps.Decisions.Add(cmd.Context(), meeting.ID, args[1], ownerPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded decision %s\n", decision.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "person responsible for the decision")

	return cmd
}

func newDecisionListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list [meeting-id]",
		Short: "List decisions for a meeting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idArg := ""
			if len(args) == 1 {
				idArg = args[0]
			}
			meeting, err := resolveMeeting(cmd.Context(), deps, idArg)
			if err != nil {
				return err
			}

			decisions, err := deps.Decisions.FindByMeetingID(cmd.Context(), meeting.ID)
			if err != nil {
				return err
			}
			if len(decisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No decisions recorded")
				return nil
			}
			for _, d := range decisions {
				if d.Owner != nil && *d.Owner != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (owner: %s)\n", d.ID, d.Text, *d.Owner)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.ID, d.Text)
				}
			}
			return nil
		},
	}
}
