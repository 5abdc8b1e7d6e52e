package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/salary"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var getOffline bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one job by record id",
	Long:  "Show one active job from the store, or from the local snapshot with --offline.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getOffline, "offline", false, "read the last synced snapshot instead of the store")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := setup(os.Stderr)
	if err != nil {
		return err
	}

	var job *models.Job
	if getOffline {
		job, err = snapshotJob(cmd.Context(), cfg, args[0])
		if err != nil {
			return err
		}
	} else {
		service, err := newJobsService(cfg, newStoreClient(cfg))
		if err != nil {
			return err
		}
		job = service.GetJob(cmd.Context(), args[0])
	}

	if job == nil {
		return fmt.Errorf("job %s not found", args[0])
	}
	return printJob(cmd.OutOrStdout(), *job)
}

func snapshotJob(ctx context.Context, cfg *config.Config, id string) (*models.Job, error) {
	dbContext, err := openDb(cfg)
	if err != nil {
		return nil, err
	}
	defer dbContext.Close()

	return repositories.NewJobsRepository(dbContext.DB).GetByID(ctx, id)
}

func printJob(out io.Writer, job models.Job) error {
	fmt.Fprintf(out, "%s at %s (%s)\n", job.Title, job.Company, salary.Format(job.Salary))
	if len(job.Languages) > 0 {
		names := lo.Map(job.Languages, func(code models.LanguageCode, _ int) string {
			return models.LanguageDisplayName(code)
		})
		fmt.Fprintf(out, "Languages: %s\n", strings.Join(names, ", "))
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(job)
}
