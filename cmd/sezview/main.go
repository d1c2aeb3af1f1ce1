// cmd/sezview/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/yackko/sez2ecef/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("sezview needs an interactive terminal; use sez2ecef for scripted conversion")

// startFunc runs a bubbletea model until it quits.
type startFunc func(tea.Model) error

func startProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// runView opens the form. An empty logPath discards debug logs.
func runView(logPath string, isTTY bool, start startFunc) error {
	if !isTTY {
		return errNoTerminal
	}

	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger.Debug("starting sezview")
	if err := start(tui.NewFormModel(logger)); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "sezview",
	Short: "Interactively convert an SEZ vector to ECEF coordinates.",
	Long: `Opens a terminal form with the six sez2ecef inputs. The ECEF result updates as
values are typed.

Examples:
  sezview
  sezview --log-file /tmp/sezview.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		logPath, _ := cmd.Flags().GetString("log-file")
		return runView(logPath, term.IsTerminal(int(os.Stdin.Fd())), startProgram)
	},
}

func init() {
	rootCmd.Flags().String("log-file", "", "Write debug logs of each conversion to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
