package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/verte-zerg/hitzone/internal/config"
	"github.com/verte-zerg/hitzone/internal/sound"
)

func runCurve(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"curve"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HITZONE_DIFFICULTY", "")
	t.Setenv("HITZONE_COUNT_HITS", "")
	t.Setenv("HITZONE_SPEED", "")
	_ = os.Unsetenv("HITZONE_DIFFICULTY")
	_ = os.Unsetenv("HITZONE_COUNT_HITS")
	_ = os.Unsetenv("HITZONE_SPEED")
	return config.DefaultConfigPath()
}

func TestCurveCommandDefaults(t *testing.T) {
	isolateConfig(t)
	out, err := runCurve(t)
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "normal difficulty, 6 hits to win") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "40.000") || !strings.Contains(out, "win") {
		t.Fatalf("expected zone table with win row:\n%s", out)
	}
}

func TestCurveCommandFlags(t *testing.T) {
	isolateConfig(t)
	out, err := runCurve(t, "--difficulty", "HARD", "--hits", "2")
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "hard difficulty, 2 hits to win") || !strings.Contains(out, "66.667") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSettingsPrecedence(t *testing.T) {
	path := isolateConfig(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[game]\ncount-hits = 4\ndifficulty = \"hard\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCurve(t)
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "hard difficulty, 4 hits") {
		t.Fatalf("expected file values, got:\n%s", out)
	}

	t.Setenv("HITZONE_COUNT_HITS", "3")
	out, err = runCurve(t)
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "hard difficulty, 3 hits") {
		t.Fatalf("expected env to override file, got:\n%s", out)
	}

	out, err = runCurve(t, "--hits", "5", "--difficulty", "normal")
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "normal difficulty, 5 hits") {
		t.Fatalf("expected flags to override env, got:\n%s", out)
	}
}

func TestInvalidSettingsRejected(t *testing.T) {
	isolateConfig(t)
	if _, err := runCurve(t, "--difficulty", "insane"); err == nil {
		t.Fatalf("expected unknown difficulty to fail")
	}
	if _, err := runCurve(t, "--hits", "0"); err == nil {
		t.Fatalf("expected zero hits to fail")
	}
	if _, err := runCurve(t, "--speed", "-1"); err == nil {
		t.Fatalf("expected negative speed to fail")
	}
}

func TestConfigTemplateDecodes(t *testing.T) {
	path := isolateConfig(t)
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template should decode: %v", err)
	}
	if cfg.Game.Difficulty != nil || cfg.Game.CountHits != nil {
		t.Fatalf("template values should be commented out: %+v", cfg.Game)
	}

	if err := os.WriteFile(path, []byte("[game]\nspeed = 2.0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := writeConfigTemplate(path); err != nil {
		t.Fatalf("rewrite template: %v", err)
	}
	cfg, err = config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Speed == nil || *cfg.Game.Speed != 2.0 {
		t.Fatalf("existing config must not be overwritten: %+v", cfg.Game)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud", os.Stderr); err == nil {
		t.Fatalf("expected invalid level to fail")
	}
	logger, closeFn, err := newLogger(filepath.Join(t.TempDir(), "hitzone.log"), "debug", os.Stderr)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hello")
	closeFn()
}

type fakeSpeaker struct {
	played []sound.Cue
	closed int
}

func (f *fakeSpeaker) Play(c sound.Cue) {
	f.played = append(f.played, c)
}

func (f *fakeSpeaker) Close() {
	f.closed++
}

func TestOpenPlayer(t *testing.T) {
	logger := log.New(io.Discard)
	opened := 0
	fake := &fakeSpeaker{}
	open := func() (playerCloser, error) {
		opened++
		return fake, nil
	}

	p, closeFn := openPlayer(false, open, logger)
	if _, ok := p.(sound.Nop); !ok || opened != 0 {
		t.Fatalf("expected silent player without opening the device")
	}
	closeFn()

	p, closeFn = openPlayer(true, open, logger)
	p.Play(sound.CueHit)
	closeFn()
	if len(fake.played) != 1 || fake.closed != 1 {
		t.Fatalf("expected device used and closed once, got %+v", fake)
	}

	failing := func() (playerCloser, error) {
		return nil, errors.New("no audio device")
	}
	p, closeFn = openPlayer(true, failing, logger)
	if _, ok := p.(sound.Nop); !ok {
		t.Fatalf("expected fallback to silent player")
	}
	closeFn()
}
