package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

func newChunkCmd(deps *Dependencies) *cobra.Command {
	var (
		index int
		start float64
		end   float64
	)

	cmd := &cobra.Command{
		Use:   "add-chunk <meeting-id> <text>",
		Short: "Append a transcript chunk to a meeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting, err := resolveMeeting(cmd.Context(), deps, args[0])
			if err != nil {
				return err
			}

			// With no explicit index, continue after the latest chunk.
			if !cmd.Flags().Changed("index") {
				latest, err := deps.Transcripts.FindLatest(cmd.Context(), meeting.ID)
				if err != nil {
					return err
				}
				if latest != nil {
					index = latest.Index + 1
				}
			}

			chunk := entities.NewTranscriptChunk(meeting.ID, index, args[1], start, end)
			if err := deps.Transcripts.Add(cmd.Context(), chunk); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added chunk %d to meeting %s\n", chunk.Index, meeting.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "sequence index (defaults to latest+1)")
	cmd.Flags().Float64Var(&start, "start", 0, "start offset in seconds")
	cmd.Flags().Float64Var(&end, "end", 0, "end offset in seconds")

	return cmd
}

func newTranscriptCmd(deps *Dependencies) *cobra.Command {
	var showChunks bool

	cmd := &cobra.Command{
		Use:   "transcript [meeting-id]",
		Short: "Print a meeting's transcript in chunk order",
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

			chunks, err := deps.Transcripts.FindByMeetingID(cmd.Context(), meeting.ID)
			if err != nil {
				return err
			}
			if len(chunks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transcript recorded")
				return nil
			}

			if showChunks {
				for _, c := range chunks {
					fmt.Fprintf(cmd.OutOrStdout(), "[%d] %.1f-%.1fs %s\n", c.Index, c.StartOffset, c.EndOffset, c.Text)
				}
				return nil
			}

			for i, c := range chunks {
				if i > 0 {
					fmt.Fprint(cmd.OutOrStdout(), " ")
				}
				fmt.Fprint(cmd.OutOrStdout(), c.Text)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&showChunks, "chunks", false, "print individual chunks with offsets")

	return cmd
}
