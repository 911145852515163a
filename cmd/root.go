package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/portfolio-sim/portfolio-sim/sim"
	"github.com/portfolio-sim/portfolio-sim/sim/covariates"
	"github.com/portfolio-sim/portfolio-sim/sim/record"
	"github.com/portfolio-sim/portfolio-sim/sim/risk"
)

var (
	// CLI flags shared across subcommands
	logLevel string // Log verbosity level
	dbPath   string // Optional SQLite database for persisted output

	// simulate flags
	seed         int64  // Seed for the partitioned RNG
	borrowers    int    // Portfolio size
	horizonDays  int    // Simulation horizon in days
	scenarioFile string // Optional YAML scenario file
	csvPath      string // Optional long-format CSV output path

	// project flags
	hazard01          float64 // Constant current→mild hazard (per day)
	hazard01CSV       string  // Optional fitted per-day current→mild hazard CSV
	hazard12          float64 // Constant mild→severe hazard (per day)
	hazard23          float64 // Constant severe→default hazard (per day)
	projectionHorizon int     // Projection horizon in days
	redisAddr         string  // Optional Redis address for the score cache
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "portfolio-sim",
	Short: "Multi-state delinquency simulator for synthetic loan portfolios",
}

// simulateCmd runs the portfolio simulation and emits the event table.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate borrower delinquency paths and emit the interval table",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		scenario := DefaultScenario()
		if scenarioFile != "" {
			loaded, err := LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to load scenario: %v", err)
			}
			scenario = loaded
		}
		if cmd.Flags().Changed("seed") {
			scenario.Seed = seed
		}
		if cmd.Flags().Changed("borrowers") {
			scenario.Borrowers = borrowers
		}
		if cmd.Flags().Changed("horizon") {
			scenario.HorizonDays = horizonDays
		}

		logrus.Infof("Starting simulation: %d borrowers, horizon=%d days, seed=%d",
			scenario.Borrowers, scenario.HorizonDays, scenario.Seed)
		startTime := time.Now()

		prng := sim.NewPartitionedRNG(sim.NewSimulationKey(scenario.Seed))
		panel, err := covariates.Generate(scenario.Covariates, scenario.Borrowers, scenario.HorizonDays, prng)
		if err != nil {
			logrus.Fatalf("covariate generation failed: %v", err)
		}

		s, err := sim.NewSimulator(scenario.Config, panel, prng)
		if err != nil {
			logrus.Fatalf("simulator setup failed: %v", err)
		}
		table := s.Run()
		s.Metrics.Print()
		logrus.Infof("Simulation took %s", time.Since(startTime))

		// Diagnostic concordance of initial balance against first-exit times.
		times, events := risk.FirstExit(table)
		scores := make([]float64, scenario.Borrowers)
		for b := 0; b < scenario.Borrowers; b++ {
			scores[b] = panel.Value(covariates.AmountOutstanding, b, 0)
		}
		if c, err := risk.Concordance(times, events, scores); err == nil {
			logrus.Infof("Concordance of initial balance vs. first exit: %.3f", c)
		}

		if csvPath != "" {
			if err := table.WriteCSVFile(csvPath); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Event table written to %s", csvPath)
		}
		rec := newRecorder()
		defer rec.Close()
		if err := rec.RecordIntervals(table); err != nil {
			logrus.Fatalf("persist intervals: %v", err)
		}
		if dbPath != "" {
			logrus.Infof("Event table persisted to %s", dbPath)
		}
	},
}

// projectCmd propagates fitted hazards forward and prints the probability of
// default within the projection horizon.
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project default probability from fitted hazards",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var curve risk.HazardCurve = risk.ConstantHazard(hazard01)
		fingerprint := fmt.Sprintf("h01=%g", hazard01)
		if hazard01CSV != "" {
			fitted, err := loadHazardCSV(hazard01CSV)
			if err != nil {
				logrus.Fatalf("unable to load fitted hazard: %v", err)
			}
			curve = fitted
			fingerprint = fmt.Sprintf("h01-csv=%s", hazard01CSV)
		}

		var cache risk.ScoreCache = risk.NewMemoryCache()
		if redisAddr != "" {
			cache = risk.NewRedisCache(redisAddr)
		}
		key := fmt.Sprintf("portfolio-sim:risk:%s|h12=%g|h23=%g|horizon=%d",
			fingerprint, hazard12, hazard23, projectionHorizon)
		if cached, ok := cache.Get(key); ok {
			fmt.Printf("P(default within %d days) = %s (cached)\n", projectionHorizon, cached)
			return
		}

		projector := &risk.Projector{
			Hazard01: curve,
			Hazard12: hazard12,
			Hazard23: hazard23,
		}
		prob, err := projector.DefaultProbability(projectionHorizon)
		if err != nil {
			logrus.Fatalf("projection failed: %v", err)
		}
		if err := cache.Set(key, strconv.FormatFloat(prob, 'g', -1, 64)); err != nil {
			logrus.Warnf("score cache write failed: %v", err)
		}
		rec := newRecorder()
		defer rec.Close()
		if err := rec.RecordRiskScore(key, projectionHorizon, prob); err != nil {
			logrus.Fatalf("persist risk score: %v", err)
		}

		fmt.Printf("P(default within %d days) = %.4f\n", projectionHorizon, prob)
	},
}

// newRecorder picks the recorder implementation from the --db flag: SQLite
// when a path is given, otherwise the no-op recorder.
func newRecorder() record.Recorder {
	if dbPath == "" {
		return record.NewNoopRecorder()
	}
	rec, err := record.NewSQLiteRecorder(dbPath)
	if err != nil {
		logrus.Fatalf("sqlite recorder: %v", err)
	}
	return rec
}

// setupLogging applies the --log flag to logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path for persisted output (empty = disabled)")

	simulateCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the partitioned RNG")
	simulateCmd.Flags().IntVar(&borrowers, "borrowers", 1000, "Number of borrowers in the portfolio")
	simulateCmd.Flags().IntVar(&horizonDays, "horizon", 365, "Simulation horizon in days")
	simulateCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (empty = built-in default)")
	simulateCmd.Flags().StringVar(&csvPath, "csv", "", "Long-format CSV output path (empty = disabled)")

	projectCmd.Flags().Float64Var(&hazard01, "hazard01", 0.002, "Constant current→mild hazard per day")
	projectCmd.Flags().StringVar(&hazard01CSV, "hazard01-csv", "", "CSV of fitted per-day current→mild hazards (overrides --hazard01)")
	projectCmd.Flags().Float64Var(&hazard12, "hazard12", 0.01, "Constant mild→severe hazard per day")
	projectCmd.Flags().Float64Var(&hazard23, "hazard23", 0.02, "Constant severe→default hazard per day")
	projectCmd.Flags().IntVar(&projectionHorizon, "projection-horizon", risk.DefaultHorizonDays, "Projection horizon in days")
	projectCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the score cache (empty = in-memory)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(projectCmd)
}
