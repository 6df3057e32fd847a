package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meetnotes/meetnotes/internal/domain/repositories"
	"github.com/meetnotes/meetnotes/internal/usecase/export"
	"github.com/meetnotes/meetnotes/internal/usecase/summary"
	"github.com/meetnotes/meetnotes/pkg/config"
)

// Dependencies carries the store handles built once in main. There is no
// global state; every command receives what it needs by reference.
type Dependencies struct {
	Meetings    repositories.MeetingRepository
	Transcripts repositories.TranscriptRepository
	Decisions   repositories.DecisionRepository
	Summaries   *summary.Service
	Exporter    *export.Exporter
	Config      *config.Config
	Logger      *zap.Logger
}

// NewRootCmd builds the meetnotes command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "meetnotes",
		Short:         "Local store for meetings, transcripts and decisions",
		Long:          "A local, on-device store for meeting records with summary generation, caching and export.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newCreateCmd(deps))
	rootCmd.AddCommand(newListCmd(deps))
	rootCmd.AddCommand(newSearchCmd(deps))
	rootCmd.AddCommand(newEndCmd(deps))
	rootCmd.AddCommand(newDeleteCmd(deps))
	rootCmd.AddCommand(newChunkCmd(deps))
	rootCmd.AddCommand(newTranscriptCmd(deps))
	rootCmd.AddCommand(newDecisionCmd(deps))
	rootCmd.AddCommand(newSummaryCmd(deps))
	rootCmd.AddCommand(newExportCmd(deps))

	return rootCmd
}
