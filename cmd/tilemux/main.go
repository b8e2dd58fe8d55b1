// Package main provides the tilemux CLI application entry point.
// tilemux is a sway/i3-compatible tiling session manager; this binary loads
// and validates its configuration and hands the session off to the runtime.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tilemux/internal/logger"
	"tilemux/internal/session"
	"tilemux/internal/version"
)

var (
	logLevel   string
	logFile    string
	testMode   bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tilemux",
	Short: "tilemux - tiling session manager",
	Long: `tilemux is a sway/i3-compatible tiling session manager.
It reads an i3-style config file, binds modes and keys, and defers
runtime commands until the compositor backend is up.`,
	Run: runSession,
}

// runCmd is the explicit version of the default behavior
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the session",
	Long:  `Load the configuration and start the tilemux session.`,
	Run:   runSession,
}

// checkCmd validates a config file without starting a session
var checkCmd = &cobra.Command{
	Use:   "check [config]",
	Short: "Validate a config file",
	Long: `Parse a config file without starting a session and print the
resulting configuration as YAML. Exits non-zero when any directive fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of tilemux.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search standard locations)")

	// Bind flags to viper
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("test-mode", rootCmd.PersistentFlags().Lookup("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding test-mode flag: %v\n", err)
		os.Exit(1)
	}

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runSession(_ *cobra.Command, _ []string) {
	logger.Info("Starting tilemux", "version", version.GetVersion())

	controller, err := session.NewController(session.NewProcessRuntime())
	if err != nil {
		logger.Fatal("Failed to set up session", "error", err)
	}

	res, err := controller.Startup(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	if !res.OK {
		logger.Warn("Config loaded with errors", "errors", len(res.Diagnostics))
	}

	// The compositor backend owns the event loop; once it is up the
	// deferred directives run in source order.
	controller.RuntimeReady()
	logger.Info("Session ready")
}

func runCheck(_ *cobra.Command, args []string) error {
	path := configPath
	if len(args) == 1 {
		path = args[0]
	}

	controller, err := session.NewController(session.NewProcessRuntime())
	if err != nil {
		return err
	}

	res, err := controller.Startup(path)
	if err != nil {
		return err
	}

	out, err := controller.Manager().Current().RenderYAML()
	if err != nil {
		return err
	}
	fmt.Print(string(out))

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "line %d: %s: %s\n", d.Line, d.Message, d.Text)
	}
	if !res.OK {
		return fmt.Errorf("config check failed")
	}
	return nil
}
