package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/synthehr/synthehr/internal/config"
	"github.com/synthehr/synthehr/internal/synth"
	"github.com/synthehr/synthehr/internal/validate"
	"github.com/synthehr/synthehr/pkg/tabular"
)

// version is set at build time via -ldflags.
var version = "dev"

const previewRows = 5

func main() {
	rootCmd := &cobra.Command{
		Use:   "synthehr",
		Short: "Synthetic patient-record dataset generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(dev bool) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic patient-record dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			p := synth.Params{
				Patients:        cfg.PatientCount,
				Seed:            cfg.Seed,
				ReadmissionRate: cfg.ReadmissionRate,
				SepsisRate:      cfg.SepsisRate,
				MortalityRate:   cfg.MortalityRate,
			}
			out := cfg.OutputPath

			// Flags override env-driven config when explicitly set.
			flags := cmd.Flags()
			if flags.Changed("count") {
				p.Patients, _ = flags.GetInt("count")
			}
			if flags.Changed("seed") {
				p.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("readmission-rate") {
				p.ReadmissionRate, _ = flags.GetFloat64("readmission-rate")
			}
			if flags.Changed("sepsis-rate") {
				p.SepsisRate, _ = flags.GetFloat64("sepsis-rate")
			}
			if flags.Changed("mortality-rate") {
				p.MortalityRate, _ = flags.GetFloat64("mortality-rate")
			}
			if flags.Changed("out") {
				out, _ = flags.GetString("out")
			}

			logger := newLogger(cfg.IsDev())
			runID := uuid.New()
			logger.Info().
				Str("run_id", runID.String()).
				Int("patients", p.Patients).
				Int64("seed", p.Seed).
				Msg("generating dataset")

			tbl, err := synth.Generate(p)
			if err != nil {
				return err
			}
			summary, err := synth.Summarize(tbl)
			if err != nil {
				return err
			}

			fmt.Printf("Generated %d patients\n", summary.Patients)
			fmt.Printf("Readmission rate: %.2f%%\n", summary.ReadmissionRate*100)
			fmt.Printf("Sepsis rate: %.2f%%\n", summary.SepsisRate*100)
			fmt.Printf("Mortality rate: %.2f%%\n", summary.MortalityRate*100)
			fmt.Print(tbl.Head(previewRows))

			if out != "" {
				if err := writeCSVFile(tbl, out); err != nil {
					return err
				}
				logger.Info().Str("run_id", runID.String()).Str("path", out).Msg("dataset written")
			}
			return nil
		},
	}

	d := synth.DefaultParams()
	cmd.Flags().Int("count", d.Patients, "Number of patient records to generate")
	cmd.Flags().Int64("seed", d.Seed, "Random seed (fully determines the output)")
	cmd.Flags().Float64("readmission-rate", d.ReadmissionRate, "Target 30-day readmission rate")
	cmd.Flags().Float64("sepsis-rate", d.SepsisRate, "Target sepsis onset rate")
	cmd.Flags().Float64("mortality-rate", d.MortalityRate, "Target mortality rate")
	cmd.Flags().String("out", "", "Write the dataset to this CSV file")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate a patient-record CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()

			tbl, err := tabular.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("parse dataset: %w", err)
			}
			if err := validate.Validate(tbl); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Printf("%s: %d rows, valid\n", args[0], tbl.Len())
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the synthehr version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("synthehr", version)
		},
	}
}

func writeCSVFile(t *tabular.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
