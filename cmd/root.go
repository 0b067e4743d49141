package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/router-sim/router-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed           int64    // Seed for all random draws (traffic and service)
	packets        int      // Number of packets to offer per engine
	logLevel       string   // Log verbosity level
	configPath     string   // Optional YAML config file
	engines        []string // Engines to run and compare
	bufferSize     int      // Router buffer capacity in packets
	chokeThreshold int      // Buffer depth that trips the choke flag
	routerSpeed    float64  // Per-step service probability in (0,1]
	sizeMin        int      // Smallest generated packet size
	sizeMax        int      // Largest generated packet size
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "router-sim",
	Short: "Bottleneck router simulator comparing QoS admission and scheduling disciplines",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the traffic simulation and print the engine comparison",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig(cmd)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		for _, name := range engines {
			if !sim.ValidEngines[name] {
				logrus.Fatalf("Unknown engine %q (valid: %s)", name, strings.Join(sim.EngineNames, ", "))
			}
		}

		logrus.Infof("Starting simulation: %d packets, buffer=%d, speed=%.2f, seed=%d, engines=%s",
			cfg.TotalPackets, cfg.BufferSize, cfg.RouterSpeed, seed, strings.Join(engines, ","))

		startTime := time.Now()
		results := sim.RunAll(cfg, sim.NewSimulationKey(seed), engines)
		sim.NewReport(engines, results).Print()

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// validateCmd checks a YAML config file without running anything
var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Validate a simulation config file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := sim.LoadConfig(args[0]); err != nil {
			logrus.Fatalf("Invalid config %s: %v", args[0], err)
		}
		logrus.Infof("Config %s is valid.", args[0])
	},
}

// buildConfig assembles the run configuration: defaults, then the optional
// YAML file, then explicitly-set CLI flags (highest precedence).
func buildConfig(cmd *cobra.Command) *sim.Config {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		loaded, err := sim.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Unable to read config %s: %v", configPath, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("packets") {
		cfg.TotalPackets = packets
	}
	if flags.Changed("buffer-size") {
		cfg.BufferSize = bufferSize
	}
	if flags.Changed("choke-threshold") {
		cfg.ChokeThreshold = chokeThreshold
	}
	if flags.Changed("router-speed") {
		cfg.RouterSpeed = routerSpeed
	}
	if flags.Changed("size-min") {
		cfg.SizeMin = sizeMin
	}
	if flags.Changed("size-max") {
		cfg.SizeMax = sizeMax
	}
	return cfg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for traffic generation and service coin flips")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (flags override file values)")
	runCmd.Flags().StringSliceVar(&engines, "engines", sim.EngineNames, "Comma-separated engines to run")

	runCmd.Flags().IntVar(&packets, "packets", 50000, "Number of packets to offer per engine")
	runCmd.Flags().IntVar(&bufferSize, "buffer-size", 20, "Router buffer capacity in packets")
	runCmd.Flags().IntVar(&chokeThreshold, "choke-threshold", 10, "Buffer depth that activates the choke flag")
	runCmd.Flags().Float64Var(&routerSpeed, "router-speed", 0.7, "Per-step service probability in (0,1]")
	runCmd.Flags().IntVar(&sizeMin, "size-min", 1, "Smallest generated packet size")
	runCmd.Flags().IntVar(&sizeMax, "size-max", 3, "Largest generated packet size")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
