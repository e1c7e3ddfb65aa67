package main

import (
	"fmt"
	"os"

	"github.com/hochfrequenz/work-report/internal/config"
	"github.com/hochfrequenz/work-report/internal/format"
	"github.com/hochfrequenz/work-report/internal/hours"
	"github.com/hochfrequenz/work-report/internal/report"
	"github.com/spf13/cobra"
)

var (
	configPath string
	reportDir  string

	rootCmd = &cobra.Command{
		Use:   "report-hours [task_file]",
		Short: "Create a Report folder and total hours from task descriptions",
		Long: `report-hours reads a text file of task descriptions, extracts time
markers like "2 hours" or "30 min" from each line, and writes a markdown
report with per-task and total hours.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.Flags().StringVar(&reportDir, "report-dir", "", `directory for the generated report (default "Report")`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	taskFile := "tasks.txt"
	if len(args) == 1 {
		taskFile = args[0]
	}

	tasks, err := hours.ReadTasksFile(taskFile)
	if err != nil {
		return err
	}

	dir := cfg.Report.Dir
	if reportDir != "" {
		dir = reportDir
	}

	reportPath, err := report.Write(dir, cfg.Report.Filename, tasks)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", format.Dim("Report saved to:"), reportPath)
	fmt.Printf("%s %s\n", format.Dim("Total hours:"), format.Hours(report.Total(tasks)))
	return nil
}
