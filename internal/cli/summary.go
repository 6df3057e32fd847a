package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetnotes/meetnotes/internal/usecase/export"
	"github.com/meetnotes/meetnotes/internal/usecase/summary"
)

func newSummaryCmd(deps *Dependencies) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "summary [meeting-id]",
		Short: "Show a meeting's summary, generating it when not cached",
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

			if refresh {
				if err := deps.Summaries.Invalidate(cmd.Context(), meeting); err != nil {
					return err
				}
			}

			result, err := deps.Summaries.GetOrGenerate(cmd.Context(), meeting)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary of %q\n\n", meeting.Title)
			for _, b := range result.Bullets {
				fmt.Fprintf(out, "  • %s\n", b)
			}
			if len(result.Decisions) > 0 {
				fmt.Fprintln(out, "\nDecisions:")
				for _, d := range result.Decisions {
					fmt.Fprintf(out, "  • %s\n", d)
				}
			}
			if len(result.ActionItems) > 0 {
				fmt.Fprintln(out, "\nAction items:")
				for _, raw := range result.ActionItems {
					item := summary.ParseActionItem(raw)
					if item.DueDate != "" {
						fmt.Fprintf(out, "  • %s [due %s]\n", item.Body, item.DueDate)
					} else {
						fmt.Fprintf(out, "  • %s\n", item.Body)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "drop the cached summary and regenerate")

	return cmd
}

func newExportCmd(deps *Dependencies) *cobra.Command {
	var (
		format string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "export [meeting-id]",
		Short: "Export a meeting and its summary to a file",
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

			result, err := deps.Summaries.GetOrGenerate(cmd.Context(), meeting)
			if err != nil {
				return err
			}

			decisions, err := deps.Decisions.FindByMeetingID(cmd.Context(), meeting.ID)
			if err != nil {
				return err
			}

			if dir == "" {
				dir = deps.Config.ExportDir
			}

			path, err := deps.Exporter.Export(meeting, result, decisions, dir, export.Format(format))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatMarkdown), `export format: "markdown" or "json"`)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "destination directory (defaults to MEETNOTES_EXPORT_DIR)")

	return cmd
}
