package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/luisoro0494/vast-interview/sim"
	"github.com/luisoro0494/vast-interview/sim/trace"
)

const (
	envConfigPath = "HELIUM_SIM_CONFIG" // default for --config
	envLogLevel   = "HELIUM_SIM_LOG"    // default for --log
)

var (
	opts       runOptions // fleet parameters in operator units
	configPath string     // Optional YAML fleet file
	envFile    string     // Optional .env file with HELIUM_SIM_* defaults
	logLevel   string     // Log verbosity level
	traceLevel string     // Transition trace verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "helium-sim",
	Short: "Tick-driven simulator for a lunar Helium-3 mining fleet",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnvDefaults(cmd)
	},
}

// runCmd executes the simulation using parameters from CLI flags and the optional config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the mining fleet simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		resolved := opts
		if configPath != "" {
			file, err := LoadFleetFile(configPath)
			if err != nil {
				logrus.Fatalf("unable to read fleet config; %v", err)
			}
			resolved = file.merge(opts, cmd.Flags().Changed)
		}
		cfg := resolved.fleetConfig()

		log := logrus.WithField("run_id", uuid.NewString())
		log.Infof("Starting simulation with %d trucks, %d stations, horizon=%dticks, unload=%d, travel=%d, mining=[%d,%d], seed=%d",
			cfg.NumTrucks, cfg.NumStations, cfg.Horizon, cfg.UnloadDuration, cfg.TravelDuration, cfg.MiningMin, cfg.MiningMax, cfg.Seed)

		startTime := time.Now()

		st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		s, err := sim.NewSimulator(cfg, sim.MultiSink{sim.LogSink{}, st})
		if err != nil {
			log.Fatalf("unable to build simulator; %v", err)
		}
		m := s.Run()
		m.Print(os.Stdout)
		if st.Config.Level == trace.TraceLevelTransitions {
			printTraceSummary(os.Stdout, trace.Summarize(st))
		}

		log.WithField("elapsed", time.Since(startTime)).Info("Simulation complete.")
	},
}

// loadEnvDefaults reads the .env file, if any, and lets HELIUM_SIM_* variables
// stand in for flags the user did not set.
func loadEnvDefaults(cmd *cobra.Command) {
	if err := godotenv.Load(envFile); err != nil {
		if cmd.Flags().Changed("env-file") {
			logrus.Warnf("could not load env file %s: %v", envFile, err)
		} else {
			logrus.Debugf("no env file at %s (using environment variables)", envFile)
		}
	}
	if v := os.Getenv(envConfigPath); v != "" && !cmd.Flags().Changed("config") {
		configPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !cmd.Flags().Changed("log") {
		logLevel = v
	}
}

// printTraceSummary writes the transition trace statistics.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Transition Trace ===")
	fmt.Fprintf(w, "Transitions          : %d\n", s.TotalTransitions)
	fmt.Fprintf(w, "Completed Loads      : %d\n", s.CompletedLoads)
	fmt.Fprintf(w, "Queue Registrations  : %d (deepest position %d)\n", s.QueueRegistrations, s.MaxQueuePosition)
	fmt.Fprintf(w, "Promotions           : %d\n", s.Promotions)

	ids := make([]int, 0, len(s.PromotionsByStation))
	for id := range s.PromotionsByStation {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  station %d          : %d\n", id, s.PromotionsByStation[id])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := sim.DefaultFleetConfig()

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file with HELIUM_SIM_* defaults")

	runCmd.Flags().Int64Var(&opts.Seed, "seed", def.Seed, "Seed for per-truck mining durations")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Transition trace level (none, transitions)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML fleet config file; explicit flags override it")

	// Fleet configs
	runCmd.Flags().IntVar(&opts.Trucks, "trucks", def.NumTrucks, "Number of mining trucks")
	runCmd.Flags().IntVar(&opts.Stations, "stations", def.NumStations, "Number of unloading stations")
	runCmd.Flags().Int64Var(&opts.DurationHours, "duration-hours", def.Horizon/sim.MinutesPerHour, "Simulated duration (hours)")
	runCmd.Flags().Int64Var(&opts.UnloadMinutes, "unload-minutes", def.UnloadDuration, "Unload duration at a station (minutes)")
	runCmd.Flags().Int64Var(&opts.TravelMinutes, "travel-minutes", def.TravelDuration, "Travel time from the mine to the stations (minutes)")
	runCmd.Flags().Int64Var(&opts.MiningMinHours, "mining-min-hours", def.MiningMin/sim.MinutesPerHour, "Shortest mining duration (hours)")
	runCmd.Flags().Int64Var(&opts.MiningMaxHours, "mining-max-hours", def.MiningMax/sim.MinutesPerHour, "Longest mining duration (hours)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
