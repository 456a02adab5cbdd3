package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/metacomm-sim/metacomm-sim/sim"
	"github.com/metacomm-sim/metacomm-sim/sim/occu"
)

var (
	// CLI flags for the simulation design
	seed     int64  // Seed for the partitioned RNG
	logLevel string // Log verbosity level
	scenario string // Optional YAML scenario file (overrides design flags)
	nsite    int    // Number of sites
	nspec    int    // Number of species
	nrep     int    // Survey visits per site

	// CLI flags for community and filter hyperparameters
	meanPsi      float64 // Community mean occurrence probability
	meanP        float64 // Community mean detection probability
	muLpsi       float64 // Environmental (occurrence) filter strength
	muLp         float64 // Detection filter strength
	sigmaLpsi    float64 // Spread of occurrence intercepts
	sigmaLp      float64 // Spread of detection intercepts
	betaLpsi     float64 // Occurrence slope on the site gradient
	betaLp       float64 // Detection slope on the survey date
	gradientDist string  // Gradient distribution (normal, uniform)
	dateDist     string  // Date distribution (normal, uniform)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "metacomm-sim",
	Short: "Meta-community occupancy-detection simulator",
}

// buildConfig assembles a sim.Config from the scenario file (if given) or
// from the design flags.
func buildConfig() (*sim.Config, error) {
	if scenario != "" {
		return sim.LoadConfig(scenario)
	}
	return &sim.Config{
		NSite:          nsite,
		NSpec:          nspec,
		NRep:           nrep,
		MeanPsi:        meanPsi,
		MeanP:          meanP,
		MuFTFilterLpsi: muLpsi,
		MuFTFilterLp:   muLp,
		SigmaLpsi:      sigmaLpsi,
		SigmaLp:        sigmaLp,
		BetaLpsi:       betaLpsi,
		BetaLp:         betaLp,
		GradientDist:   gradientDist,
		DateDist:       dateDist,
		Seed:           seed,
	}, nil
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd simulates one community dataset and reports its summary
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one meta-community dataset",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("unable to read scenario config; %v", err)
		}

		ds, err := sim.Simulate(cfg)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		s := ds.Summarize()
		logrus.Infof("simulated %d sites x %d species x %d visits (seed=%d)",
			cfg.NSite, cfg.NSpec, cfg.NRep, cfg.Seed)
		logrus.Infof("true occupancy=%.4f naive occupancy=%.4f", s.TrueOccupancy, s.NaiveOccupancy)
		logrus.Infof("species never present: %d, species never detected: %d",
			s.UnoccupiedSpecies, s.UnobservedSpecies)
	},
}

// correctCmd simulates a dataset, runs the per-species occupancy fits, and
// compares naive and detection-corrected occupancy
var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Simulate, fit per-species occupancy models, and report the detection-corrected community",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("unable to read scenario config; %v", err)
		}

		ds, err := sim.Simulate(cfg)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		cf := occu.FitCommunity(occu.GLMEstimator{}, ds)
		corrected := occu.CorrectedMatrix(ds, cf)

		cells := float64(cfg.NSite * cfg.NSpec)
		correctedTotal := 0
		for i := range corrected {
			for k := range corrected[i] {
				if corrected[i][k] == 1 {
					correctedTotal++
				}
			}
		}

		s := ds.Summarize()
		logrus.Infof("fitted %d species (%d failed)", cfg.NSpec-cf.Failed(), cf.Failed())
		logrus.Infof("occupancy: true=%.4f naive=%.4f corrected=%.4f",
			s.TrueOccupancy, s.NaiveOccupancy, float64(correctedTotal)/cells)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addDesignFlags registers the shared simulation flags on a command
func addDesignFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random covariate and state generation")
	cmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "YAML scenario file (overrides design flags)")

	cmd.Flags().IntVar(&nsite, "nsite", 100, "Number of sites")
	cmd.Flags().IntVar(&nspec, "nspec", 50, "Number of species in the pool")
	cmd.Flags().IntVar(&nrep, "nrep", 3, "Survey visits per site")

	cmd.Flags().Float64Var(&meanPsi, "mean-psi", 0.5, "Community mean occurrence probability")
	cmd.Flags().Float64Var(&meanP, "mean-p", 0.5, "Community mean detection probability")
	cmd.Flags().Float64Var(&muLpsi, "mu-ftfilter-lpsi", 0, "Trait filter strength on occurrence (logit scale)")
	cmd.Flags().Float64Var(&muLp, "mu-ftfilter-lp", 0, "Trait filter strength on detection (logit scale)")
	cmd.Flags().Float64Var(&sigmaLpsi, "sigma-lpsi", 0.5, "Spread of occurrence intercepts")
	cmd.Flags().Float64Var(&sigmaLp, "sigma-lp", 0.5, "Spread of detection intercepts")
	cmd.Flags().Float64Var(&betaLpsi, "beta-lpsi", 1, "Occurrence slope on the site gradient")
	cmd.Flags().Float64Var(&betaLp, "beta-lp", -1, "Detection slope on the survey date")
	cmd.Flags().StringVar(&gradientDist, "gradient-dist", "normal", "Gradient distribution (normal, uniform)")
	cmd.Flags().StringVar(&dateDist, "date-dist", "normal", "Survey-date distribution (normal, uniform)")
}

// init sets up CLI flags and subcommands
func init() {
	addDesignFlags(runCmd)
	addDesignFlags(correctCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(correctCmd)
}
