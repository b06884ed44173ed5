// Package main searches for steering and flocking parameters that make a pool
// settle quickly and tightly onto a moving target, using Nelder-Mead over
// headless simulations.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/optimize"

	"github.com/kevin-pek/cv-hand-boids/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	ticks := flag.Int("ticks", 1200, "Simulation ticks per evaluation")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 150, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewEvaluator(params, int32(*ticks), evalSeeds, baseCfg)

	// Open eval log
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "score"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	evalCount := 0
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			score := evaluator.Evaluate(raw)

			evalCount++
			record := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.4f", score)}
			for _, v := range raw {
				record = append(record, fmt.Sprintf("%.5f", v))
			}
			logWriter.Write(record)
			logWriter.Flush()

			fmt.Printf("eval %d: score=%.4f\n", evalCount, score)
			return score
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
	}

	initX := params.Normalize(params.DefaultVector())

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		log.Printf("optimization stopped: %v", err)
	}

	best := params.Denormalize(result.X)
	fmt.Printf("\nbest score: %.4f\n", result.F)
	for i, spec := range params.Specs {
		fmt.Printf("  %-18s %.5f\n", spec.Name, best[i])
	}

	// Save best parameters as a config overlay
	bestCfg := *baseCfg
	params.Apply(best, &bestCfg)
	bestPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(bestPath); err != nil {
		log.Fatalf("failed to write best config: %v", err)
	}
	fmt.Printf("wrote %s\n", bestPath)
}
