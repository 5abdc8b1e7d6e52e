package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/salary"
	"github.com/spf13/cobra"
)

var (
	listSort    string
	listOffline bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active jobs",
	Long:  "List active jobs from the store, newest first, or from the local snapshot with --offline.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "date", "order by date or salary")
	listCmd.Flags().BoolVar(&listOffline, "offline", false, "read the last synced snapshot instead of the store")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if listSort != "date" && listSort != "salary" {
		return fmt.Errorf("--sort must be date or salary, got %q", listSort)
	}

	cfg, err := setup(os.Stderr)
	if err != nil {
		return err
	}

	var jobs []models.Job
	if listOffline {
		dbContext, err := openDb(cfg)
		if err != nil {
			return err
		}
		defer dbContext.Close()

		repo := repositories.NewJobsRepository(dbContext.DB)
		if listSort == "salary" {
			jobs, err = repo.GetAllBySalary(cmd.Context())
		} else {
			jobs, err = repo.GetAll(cmd.Context())
		}
		if err != nil {
			return err
		}
	} else {
		service, err := newJobsService(cfg, newStoreClient(cfg))
		if err != nil {
			return err
		}
		jobs = service.ListActiveJobs(cmd.Context())
		if listSort == "salary" {
			salary.SortByAnnualized(jobs)
		}
	}

	return printJobs(cmd.OutOrStdout(), jobs)
}

func printJobs(out io.Writer, jobs []models.Job) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tWORKPLACE\tSALARY\tPOSTED")
	for _, job := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			job.ID, job.Title, job.Company, job.WorkplaceType, salary.Format(job.Salary), job.PostedDate)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "%d active jobs\n", len(jobs))
	return err
}
