package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

func newCreateCmd(deps *Dependencies) *cobra.Command {
	var attendees []string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting := entities.NewMeeting(args[0], parseAttendees(attendees))
			if err := deps.Meetings.Create(cmd.Context(), meeting); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created meeting %s\n", meeting.ID)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attendees, "attendee", "a", nil, `attendee, "Name" or "Name <email>" (repeatable)`)

	return cmd
}

func newListCmd(deps *Dependencies) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := deps.Meetings.FindAll(cmd.Context(), activeOnly)
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meetings found")
				return nil
			}
			for _, m := range meetings {
				fmt.Fprintln(cmd.OutOrStdout(), formatMeetingLine(m))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only meetings that have not ended")

	return cmd
}

func newSearchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search meeting titles (case-sensitive substring)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := deps.Meetings.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meetings found")
				return nil
			}
			for _, m := range meetings {
				fmt.Fprintln(cmd.OutOrStdout(), formatMeetingLine(m))
			}
			return nil
		},
	}
}

func newEndCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "end [meeting-id]",
		Short: "End a meeting (the active one when no id is given)",
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
			if err := deps.Meetings.EndMeeting(cmd.Context(), meeting); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ended meeting %s\n", meeting.ID)
			return nil
		},
	}
}

func newDeleteCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <meeting-id>",
		Short: "Delete a meeting and all of its transcript chunks and decisions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := resolveMeeting(cmd.Context(), deps, args[0])
			if err != nil {
				return err
			}
			if err := deps.Meetings.Delete(cmd.Context(), meeting); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meeting %s\n", meeting.ID)
			return nil
		},
	}
}
