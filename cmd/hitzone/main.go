// Package main provides the CLI entrypoint for hitzone.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hitzone/internal/config"
	"github.com/verte-zerg/hitzone/internal/game"
	"github.com/verte-zerg/hitzone/internal/model"
	"github.com/verte-zerg/hitzone/internal/server"
	"github.com/verte-zerg/hitzone/internal/settings"
	"github.com/verte-zerg/hitzone/internal/sound"
	"github.com/verte-zerg/hitzone/internal/stats"
	"github.com/verte-zerg/hitzone/internal/tui"
)

const shutdownTimeout = 10 * time.Second

var (
	gameDifficulty string
	gameHits       int
	gameSpeed      float64
	gameSound      bool

	logFile  string
	logLevel string

	serveHost    string
	servePort    string
	serveHostKey string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hitzone",
		Short:         "Terminal reflex game: stop the pointer inside the shrinking zone",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPlayCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&gameDifficulty, "difficulty", string(model.DifficultyNormal), "difficulty level (normal or hard)")
	flags.IntVar(&gameHits, "hits", settings.DefaultCountHits, "hits needed to win")
	flags.Float64Var(&gameSpeed, "speed", settings.DefaultSpeed, "pointer speed multiplier")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&gameSound, "sound", false, "play sound cues")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCurveCmd())

	return rootCmd
}

// resolveSettings layers config file, environment and flags, in increasing priority.
func resolveSettings(cmd *cobra.Command) (model.GameSettings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.GameSettings{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.GameSettings{}, err
	}
	merged := fileCfg.Game.Overlay(envCfg)
	applyStringConfig(cmd, "difficulty", &gameDifficulty, merged.Difficulty)
	applyIntConfig(cmd, "hits", &gameHits, merged.CountHits)
	applyFloatConfig(cmd, "speed", &gameSpeed, merged.Speed)
	if cmd.Flags().Lookup("sound") != nil {
		applyBoolConfig(cmd, "sound", &gameSound, merged.Sound)
	}

	difficulty, err := config.ParseDifficulty(gameDifficulty)
	if err != nil {
		return model.GameSettings{}, fmt.Errorf("--difficulty: %w", err)
	}
	cfg := model.GameSettings{
		Speed:      gameSpeed,
		Difficulty: difficulty,
		CountHits:  gameHits,
	}
	if err := config.ValidateSettings(cfg); err != nil {
		return model.GameSettings{}, err
	}
	return cfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("hitzone needs an interactive terminal")
	}

	logger, closeLog, err := newLogger(logFile, logLevel, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	player, closePlayer := openPlayer(gameSound, openSpeaker, logger)
	defer closePlayer()

	session, err := tui.NewSession(cfg, player, lipgloss.DefaultRenderer(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logErrf("failed to close session: %v\n", cerr)
		}
	}()

	logger.Info("starting game", "difficulty", cfg.Difficulty, "hits", cfg.CountHits, "speed", cfg.Speed)
	program := tea.NewProgram(session.Model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	report, err := session.Report(context.Background())
	if err != nil {
		return fmt.Errorf("failed to summarize session: %w", err)
	}
	if report.Summary.Games > 0 {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), stats.SummaryLine(report.Summary, time.Now())); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over SSH",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from HITZONE_SSH_HOST or ::)")
	cmd.Flags().StringVar(&servePort, "port", "", "listen port (default from HITZONE_SSH_PORT or 2222)")
	cmd.Flags().StringVar(&serveHostKey, "host-key", "", "host key path, generated when missing")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	srvCfg, err := config.LoadServerEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("host") {
		srvCfg.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		srvCfg.Port = servePort
	}
	if cmd.Flags().Changed("host-key") {
		srvCfg.HostKeyPath = serveHostKey
	}

	logger, closeLog, err := newLogger(logFile, logLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	srv, err := server.New(srvCfg, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting SSH server", "addr", srv.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("stopping SSH server", "active", srv.Active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newCurveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curve",
		Short: "Print how the hit zone shrinks for the chosen settings",
		Args:  cobra.NoArgs,
		RunE:  runCurveCmd,
	}
}

func runCurveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s difficulty, %d hits to win\n", cfg.Difficulty, cfg.CountHits); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, line := range stats.CurveLines(game.Curve(cfg.CountHits, cfg.Difficulty), cfg.CountHits) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// playerCloser is a sound player holding an audio device.
type playerCloser interface {
	sound.Player
	Close()
}

var _ playerCloser = (*sound.SpeakerPlayer)(nil)

func openSpeaker() (playerCloser, error) {
	sp, err := sound.NewSpeakerPlayer()
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// openPlayer returns a silent player unless sound is enabled and the device opens.
func openPlayer(enabled bool, open func() (playerCloser, error), logger *log.Logger) (sound.Player, func()) {
	if !enabled {
		return sound.Nop{}, func() {}
	}
	p, err := open()
	if err != nil {
		logErrf("sound disabled: %v\n", err)
		logger.Warn("sound disabled", "err", err)
		return sound.Nop{}, func() {}
	}
	return p, p.Close
}

// newLogger opens the log destination. Without a file, logs go to fallback.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	w := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "hitzone",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hitzone configuration
# Uncomment a value to enable it.
# Precedence: CLI flags, then HITZONE_* environment variables, then this file.

[game]
# difficulty = %q     # normal or hard
# count-hits = %d           # Hits needed to win
# speed = %.2f            # Pointer speed multiplier
# sound = false             # Play sound cues
`,
		model.DifficultyNormal,
		settings.DefaultCountHits,
		settings.DefaultSpeed,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
