package main

import (
	"context"
	"os"
	"runtime/debug"
	"time"

	"github.com/pterm/pterm"

	"github.com/brizzai/map-signin/internal/auth"
	"github.com/brizzai/map-signin/internal/config"
	"github.com/brizzai/map-signin/internal/logger"
	"github.com/brizzai/map-signin/internal/profile"
	"github.com/brizzai/map-signin/internal/screen"
	"github.com/brizzai/map-signin/internal/store"
	"github.com/brizzai/map-signin/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// lifecycleTimeout bounds starting and stopping the fx app
const lifecycleTimeout = 15 * time.Second

func main() {
	Execute()
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "map-signin",
	Short: "Sign in and browse a map of locations",
	Long: `Map Sign-In signs you in with an OAuth identity provider, keeps your profile
in a local store and shows a map of locations with a carousel to move between them.`,
	Run: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Place version check in PreRun to ensure flags are parsed first
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			pterm.Info.Println(config.GetVersionInfo())
			os.Exit(0)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Show version information")

	rootCmd.AddCommand(catalogCmd, profileCmd)
}

// loadConfig reads the configuration or exits with a readable error
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		pterm.Error.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runTUI is the main function that runs the TUI
func runTUI(cmd *cobra.Command, args []string) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("\nCaught panic: %v\n", r)
			pterm.Error.Printf("%s\n", debug.Stack())
			os.Exit(2)
		}
	}()

	cfg := loadConfig(cmd)
	logCfg := logger.ForTerminalUI(cfg.Logging)
	if err := logger.InitLogger(&logCfg); err != nil {
		pterm.Error.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	var ctrl *screen.Controller
	app := fx.New(
		fx.Supply(cfg),
		store.Module,
		auth.Module,
		profile.Module,
		screen.Module,
		fx.Populate(&ctrl),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.GetLogger()}
		}),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		pterm.Error.Printf("Error starting: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := tea.NewProgram(tui.NewAppModel(ctx, ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	m, runErr := p.Run()
	// Aborts a sign-in still waiting for the browser
	cancel()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop cleanly", zap.Error(err))
	}

	if runErr != nil {
		pterm.Error.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}

	if final, ok := m.(tui.AppModel); ok && final.State().LoggedIn() {
		pterm.Info.Printfln("Signed in as %s.", pterm.LightGreen(final.State().Profile.DisplayName()))
	}
}
