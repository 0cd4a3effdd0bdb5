package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fireplan/fireplan/internal/config"
	"github.com/fireplan/fireplan/internal/fire"
	"github.com/fireplan/fireplan/internal/output"
	"github.com/fireplan/fireplan/internal/sensitivity"
	"github.com/fireplan/fireplan/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fireplan",
	Short: "FIRE projection calculator",
	Long:  "Projects Traditional, Coast and Barista FIRE targets, timelines and portfolio trajectories from a plan file",
}

var projectCmd = &cobra.Command{
	Use:   "project [plan-file]",
	Short: "Project FIRE targets and timelines for a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		proj := fire.NewEngine().Project(*plan)
		return output.GenerateReport(proj, format)
	},
}

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory [plan-file]",
	Short: "Dump the monthly portfolio trajectories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		proj := fire.NewEngine().Project(*plan)
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "csv":
			out, err := output.TrajectoryCSV(proj)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, out)
			return nil
		case "json":
			out, err := (&output.JSONFormatter{Pretty: true}).Format(proj)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, out)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [plan-file]",
	Short: "Sweep one parameter and report the impact per value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("parameter")
		minStr, _ := cmd.Flags().GetString("min")
		maxStr, _ := cmd.Flags().GetString("max")
		steps, _ := cmd.Flags().GetInt("steps")

		minVal, err := decimal.NewFromString(minStr)
		if err != nil {
			return fmt.Errorf("invalid --min %q: %w", minStr, err)
		}
		maxVal, err := decimal.NewFromString(maxStr)
		if err != nil {
			return fmt.Errorf("invalid --max %q: %w", maxStr, err)
		}

		analysis, err := sensitivity.NewAnalyzer().AnalyzeParameter(*plan, sensitivity.Parameter{
			Name:  name,
			Min:   minVal,
			Max:   maxVal,
			Steps: steps,
		})
		if err != nil {
			return err
		}

		formatter := &output.SensitivityFormatter{}
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "console":
			fmt.Fprint(os.Stdout, formatter.FormatConsole(analysis))
			return nil
		case "json":
			out, err := formatter.FormatJSON(analysis)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, out)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [plan-file]",
	Short: "Interactive what-if screen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		program := tea.NewProgram(tui.NewModel(*plan), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

var initCmd = &cobra.Command{
	Use:   "init [plan-file]",
	Short: "Write a starter plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.WriteExampleFile(path); err != nil {
			return err
		}
		fmt.Printf("Wrote starter plan to %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "fireplan %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func init() {
	projectCmd.Flags().String("format", "console", "Output format: console, json, csv")
	trajectoryCmd.Flags().String("format", "csv", "Output format: csv, json")
	sensitivityCmd.Flags().String("parameter", sensitivity.ParamReturnRate, "Parameter to sweep")
	sensitivityCmd.Flags().String("min", "0.03", "Sweep range minimum")
	sensitivityCmd.Flags().String("max", "0.10", "Sweep range maximum")
	sensitivityCmd.Flags().Int("steps", 8, "Number of sweep values")
	sensitivityCmd.Flags().String("format", "console", "Output format: console, json")

	rootCmd.AddCommand(projectCmd, trajectoryCmd, sensitivityCmd, tuiCmd, initCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
