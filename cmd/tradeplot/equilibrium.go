package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/output"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/parser"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/trade"
)

var (
	pretty      bool
	xlsxPath    string
	pngPath     string
	randomCount int
	randomSeed  int64
	moves       []string
	solver      trade.SolverParams
)

func newEquilibriumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equilibrium [SCENARIO]",
		Short: "Solve the trade equilibrium of a scenario",
		Long: `equilibrium reads countries from a YAML file or xlsx workbook, solves
wages and trade flows, and prints the report as JSON. Countries can also be
placed at random with --random, and moved with --move "X,Y=NX,NY", which picks
the country at X,Y the way a click does.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEquilibrium,
	}

	def := trade.DefaultSolverParams()
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the report as an xlsx workbook")
	cmd.Flags().StringVar(&pngPath, "png", "", "Also draw the flow map as a PNG")
	cmd.Flags().IntVar(&randomCount, "random", 0, "Add this many countries at random positions")
	cmd.Flags().Int64Var(&randomSeed, "seed", 1, "Seed for --random")
	cmd.Flags().StringArrayVar(&moves, "move", nil, `Move the country at X,Y to NX,NY ("X,Y=NX,NY", repeatable)`)
	cmd.Flags().Float64Var(&solver.Theta, "theta", def.Theta, "Trade elasticity")
	cmd.Flags().Float64Var(&solver.Tolerance, "tol", def.Tolerance, "Convergence tolerance on excess demand")
	cmd.Flags().Float64Var(&solver.Psi, "psi", def.Psi, "Wage adjustment step")
	cmd.Flags().IntVar(&solver.MaxIterations, "max-iter", def.MaxIterations, "Iteration cap")
	return cmd
}

func runEquilibrium(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && randomCount <= 0 {
		return errors.New("a scenario file or --random is required")
	}

	model, err := buildModel(args)
	if err != nil {
		return err
	}
	report := model.Solve()
	slog.Info("equilibrium solved",
		"countries", len(report.Countries),
		"iterations", report.Iterations,
		"converged", report.Converged,
	)
	if !report.Converged {
		slog.Warn("equilibrium did not converge", "iterations", report.Iterations)
	}

	jsonData, err := output.ReportToJSON(&report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))

	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(w io.Writer) error { return output.WriteWorkbook(w, &report) }); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}
	if pngPath != "" {
		if err := writeFile(pngPath, func(w io.Writer) error { return renderPNG(w, &report) }); err != nil {
			return fmt.Errorf("failed to write flow map: %w", err)
		}
	}
	return nil
}

// buildModel places the scenario and random countries, then applies tariff
// edits, moves and solver parameters. Tariffs go last among the placements
// since adding a country resets them.
func buildModel(args []string) (*trade.Model, error) {
	scenario := &models.Scenario{}
	if len(args) == 1 {
		s, err := parser.LoadScenario(args[0])
		if err != nil {
			return nil, fmt.Errorf("load scenario: %w", err)
		}
		scenario = s
	}

	model, err := trade.FromScenario(models.Scenario{
		MaxCountries: scenario.MaxCountries,
		Countries:    scenario.Countries,
	})
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	rng := rand.New(rand.NewSource(randomSeed))
	for i := 0; i < randomCount; i++ {
		if _, err := model.AddRandomCountry(rng, trade.RandomPadding); err != nil {
			return nil, fmt.Errorf("random country %d: %w", i+1, err)
		}
	}
	if model.Len() == 0 {
		return nil, output.ErrNoCountries
	}

	for _, t := range scenario.Tariffs {
		if err := model.UpdateTariff(t.From, t.To, t.Value); err != nil {
			return nil, fmt.Errorf("build model: %w", err)
		}
	}

	for _, mv := range moves {
		if err := applyMove(model, mv); err != nil {
			return nil, err
		}
	}

	if err := model.Calculator().SetParams(solver); err != nil {
		return nil, err
	}
	return model, nil
}

func applyMove(model *trade.Model, arg string) error {
	from, to, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("invalid move %q (expected X,Y=NX,NY)", arg)
	}
	x, y, err := parsePoint(from)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", arg, err)
	}
	nx, ny, err := parsePoint(to)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", arg, err)
	}

	i := model.FindClosest(x, y, trade.PickThreshold)
	if i < 0 {
		return fmt.Errorf("move %q: no country within %v of (%v, %v)", arg, trade.PickThreshold, x, y)
	}
	slog.Debug("moving country", "index", i, "x", nx, "y", ny)
	return model.MoveCountry(i, nx, ny)
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q is not X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func renderPNG(w io.Writer, report *models.EquilibriumReport) error {
	return output.RenderFlowMap(w, report, output.DefaultFlowMapOptions())
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("file written", "path", path)
	return nil
}
