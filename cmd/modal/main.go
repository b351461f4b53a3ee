package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/modal/internal/config"
	"github.com/mark3labs/modal/internal/logger"
	"github.com/mark3labs/modal/internal/tui/icon"
	"github.com/mark3labs/modal/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▄▀█ █▀█ █▀▄ ▄▀█ █"
	logoText2 = "█ ▀ █ █▄█ █▄▀ █▀█ █▄▄"
)

// Version set via ldflags during build
var version = "dev"

// cfg is loaded before any subcommand runs
var cfg *config.Config

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "modal",
	Short:             "Show accessible modal dialogs in the terminal",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

modal shows a dialog with a title, a message, a close control and a row of
action buttons, then prints what the user chose. Dialogs come from a YAML
descriptor or from flags.

Keyboard: tab and shift+tab move focus, enter or space activates, esc closes.
The mouse works too.`

	rootCmd.PersistentFlags().String("theme", theme.DefaultName, "Color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.PersistentFlags().String("icons", "unicode", "Icon set ("+strings.Join(icon.Names(), ", ")+")")
	rootCmd.PersistentFlags().Int("width", config.Default().Width, "Dialog content width in cells")
	rootCmd.PersistentFlags().Bool("show-hints", true, "Show the key hint bar")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig resolves configuration for the running command and applies
// the logging and theme settings.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logger.Configure(c.LogLevel, c.LogFile); err != nil {
		return err
	}
	if err := theme.SetCurrent(c.Theme); err != nil {
		return err
	}
	cfg = c
	return nil
}
