// namefix corrects noisy personal names against the reference vocabularies,
// either one name at a time (-name) or over a whole tabular file (-input).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/HxshPatil/indian-names-corrector/internal/batch"
	"github.com/HxshPatil/indian-names-corrector/internal/config"
	nc "github.com/HxshPatil/indian-names-corrector/internal/corrector"
	"github.com/HxshPatil/indian-names-corrector/internal/oracle"
	"github.com/HxshPatil/indian-names-corrector/internal/vocabulary"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	name := flag.String("name", "", "correct a single name and exit")
	input := flag.String("input", "", "tabular input file (.csv or .xlsx) with firstName and lastName columns")
	output := flag.String("output", "", "output CSV path (default: corrected_<input>_<id>.csv next to the input)")
	workers := flag.Int("workers", 0, "batch worker count (default: number of CPUs)")
	flag.Parse()

	if *name == "" && *input == "" {
		fmt.Fprintln(os.Stderr, "usage: namefix -name \"Ametabh Bacchan\" | namefix -input names.csv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	corrector, err := buildCorrector(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	ctx := context.Background()

	if *name != "" {
		corrected, err := corrector.CorrectFullName(ctx, *name)
		if err != nil {
			color.Red("please enter a name in 'First Last' format")
			os.Exit(1)
		}
		fmt.Println(corrected)
		return
	}

	rows, err := batch.ReadTable(*input)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	results := batch.NewProcessor(corrector, *workers).Process(ctx, rows)

	outPath := *output
	if outPath == "" {
		outPath = batch.OutputPath(*input)
	}
	if err := batch.WriteCSV(outPath, results); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	corrected := 0
	for _, r := range results {
		if r.WasCorrected == "Yes" {
			corrected++
		}
	}
	color.Green("processed %d rows (%d corrected)", len(results), corrected)
	fmt.Printf("output written to %s\n", outPath)
}

func buildCorrector(cfg *config.Config) (*nc.NameCorrector, error) {
	firstNames, err := vocabulary.LoadCSV(cfg.Vocabulary.FirstNames, "firstName")
	if err != nil {
		return nil, fmt.Errorf("first-name vocabulary: %w", err)
	}
	lastNames, err := vocabulary.LoadCSV(cfg.Vocabulary.LastNames, "lastName")
	if err != nil {
		return nil, fmt.Errorf("last-name vocabulary: %w", err)
	}

	opts := []nc.Option{
		nc.WithMaxEditDistance(cfg.Corrector.MaxEditDistance),
		nc.WithTopKCandidates(cfg.Corrector.TopKCandidates),
	}
	if key := cfg.AnthropicAPIKey(); key != "" {
		opts = append(opts, nc.WithOracle(oracle.NewAnthropicClient(
			key, cfg.Oracle.Model, cfg.Oracle.RequestsPerMinute, cfg.OracleTimeout(), slog.Default())))
	}
	return nc.New(firstNames, lastNames, opts...), nil
}
