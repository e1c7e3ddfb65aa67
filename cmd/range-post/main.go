package main

import (
	"fmt"
	"os"

	"github.com/hochfrequenz/work-report/internal/config"
	"github.com/hochfrequenz/work-report/internal/format"
	"github.com/hochfrequenz/work-report/internal/github"
	"github.com/hochfrequenz/work-report/internal/hours"
	"github.com/hochfrequenz/work-report/internal/summary"
	"github.com/hochfrequenz/work-report/internal/timerange"
	"github.com/spf13/cobra"
)

var (
	configPath string
	startDate  string
	endDate    string
	issueNum   int
	tasksFile  string
	calendar   bool
	repoFlag   string

	rootCmd = &cobra.Command{
		Use:   "range-post",
		Short: "Compute cumulative hours for a date range and post a GitHub issue comment",
		Long: `range-post counts the days in an inclusive date range and posts a
markdown summary comment to a GitHub issue. When a tasks file with ISO-dated
lines (e.g. "2026-01-05 Worked 9 hours") is given, the exact per-day hours
are summed; otherwise a low/mid/high estimate is derived from the day count.
Re-runs update the previously posted comment instead of adding a new one.`,
		RunE: runRangePost,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.Flags().StringVar(&startDate, "start", "", "start date YYYY-MM-DD")
	rootCmd.Flags().StringVar(&endDate, "end", "", "end date YYYY-MM-DD")
	rootCmd.Flags().IntVar(&issueNum, "issue", 0, "GitHub issue number to post the summary to")
	rootCmd.Flags().StringVar(&tasksFile, "tasks-file", "", "tasks file to parse exact hours from (uses ISO dates in lines)")
	rootCmd.Flags().BoolVar(&calendar, "calendar", false, "count all calendar days instead of workdays")
	rootCmd.Flags().StringVar(&repoFlag, "repo", "", "owner/repo (defaults to GITHUB_REPOSITORY)")
	rootCmd.MarkFlagRequired("start")
	rootCmd.MarkFlagRequired("end")
	rootCmd.MarkFlagRequired("issue")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRangePost(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if repoFlag != "" {
		cfg.GitHub.Repo = repoFlag
	}

	// Configuration errors surface before any computation.
	if err := cfg.ValidatePublish(); err != nil {
		return err
	}

	rng, err := timerange.New(startDate, endDate)
	if err != nil {
		return err
	}

	workdaysOnly := !calendar
	dayCount := rng.Days(workdaysOnly)

	var exact *float64
	if tasksFile != "" {
		table, err := hours.ReadDailyHoursFile(tasksFile)
		if err != nil {
			return err
		}
		// A non-empty table switches to exact mode even when nothing falls
		// inside the range: an exact 0.00 tells the reader the file had
		// entries but none in range.
		if len(table) > 0 {
			total := rng.SumDaily(table, workdaysOnly)
			exact = &total
		}
	}

	body := summary.Build(rng, workdaysOnly, dayCount, exact,
		cfg.Estimate.LowHours, cfg.Estimate.MidHours, cfg.Estimate.HighHours)

	client := github.NewClient(cmd.Context(), cfg.GitHub.APIBaseURL, cfg.GitHub.Repo, cfg.GitHub.Token)
	id, updated, err := client.UpsertComment(cmd.Context(), issueNum, summary.Marker, body)
	if err != nil {
		return err
	}

	if updated {
		fmt.Println(format.Success(fmt.Sprintf("Updated comment id=%d", id)))
	} else {
		fmt.Println(format.Success(fmt.Sprintf("Posted new comment id=%d", id)))
	}
	return nil
}
