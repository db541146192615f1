package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/disabilitycalc/internal/calculation"
	"github.com/rgehrsitz/disabilitycalc/internal/config"
	"github.com/rgehrsitz/disabilitycalc/internal/output"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "disabilitycalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate disability insurance needs",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCalculate(cmd, args[0]); err != nil {
				log.Fatal(err)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, html, json, csv, pdf)")
	cmd.Flags().String("template", "", "Custom report template file for console or html output")
	cmd.Flags().Bool("no-schedule", false, "Leave the month-by-month schedule out of the report")
	cmd.Flags().Bool("debug", false, "Enable debug output for the calculation")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	addInputFlags(cmd)
	return cmd
}

func runCalculate(cmd *cobra.Command, inputFile string) error {
	parser := config.NewInputParser()
	configData, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return err
	}
	applyInputOverrides(cmd, configData)

	input, err := parser.Resolve(configData)
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("format")
	formatter, err := output.LookupFormatter(outputFormat)
	if err != nil {
		return err
	}
	if templateFile, _ := cmd.Flags().GetString("template"); templateFile != "" {
		tmpl, err := report.LoadTemplate(templateFile)
		if err != nil {
			return err
		}
		switch formatter.Name() {
		case "console":
			formatter = output.NewConsoleFormatter(tmpl)
		case "html":
			formatter = output.NewHTMLFormatter(tmpl)
		default:
			return fmt.Errorf("--template applies only to console and html output, not %s", formatter.Name())
		}
	}

	engine := calculation.NewEngine(input.Parameters)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.SetInputs(input.Inputs)
	engine.SetMonthlyDisabilityExpenses(input.MonthlyDisabilityExpenses)
	noSchedule, _ := cmd.Flags().GetBool("no-schedule")
	engine.Calculate(!noSchedule)

	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile != "" || formatter.Name() == "pdf" {
		written, err := output.WriteFormatted(formatter, engine, outputFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
		return nil
	}

	data, err := formatter.Format(engine)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			inputFile := args[0]

			parser := config.NewInputParser()
			if _, err := parser.LoadFromFile(inputFile); err != nil {
				log.Fatal(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Generate an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			outputFile := "example_input.yaml"
			if len(args) == 1 {
				outputFile = args[0]
			}

			parser := config.NewInputParser()
			if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), outputFile); err != nil {
				log.Fatal(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration saved to %s\n", outputFile)
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "disabilitycalc",
		Short: "Disability insurance needs calculator",
		Long: "Estimates how much disability insurance coverage you need by comparing your " +
			"expenses while disabled against your current coverage, month by month.",
	}
	root.AddCommand(calculateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exampleCmd())
	root.AddCommand(versionCmd())
	return root
}

var rootCmd = newRootCmd()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
