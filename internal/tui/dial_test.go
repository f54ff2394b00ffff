package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/verte-zerg/hitzone/internal/model"
)

func TestDialCellsMarksZone(t *testing.T) {
	st := model.GameState{IsRotating: true, CenterRange: 180, CurrentHitRange: 120}
	kinds := dialCells(st, 36)
	zone := 0
	for i, k := range kinds {
		if k == cellZone {
			zone++
			a := (float64(i) + 0.5) * 10
			if a < 120 || a > 240 {
				t.Fatalf("cell %d at %v° marked as zone", i, a)
			}
		}
	}
	if zone != 12 {
		t.Fatalf("expected 12 zone cells, got %d", zone)
	}
}

func TestDialCellsEmptyBeforeRound(t *testing.T) {
	for _, k := range dialCells(model.GameState{CurrentHitRange: 120}, 30) {
		if k != cellTrack {
			t.Fatalf("expected no zone before the first round")
		}
	}
}

func TestPointerCellBounds(t *testing.T) {
	if pointerCell(0, 36) != 0 || pointerCell(359.99, 36) != 35 || pointerCell(360, 36) != 35 {
		t.Fatalf("pointer cell out of bounds")
	}
	if pointerCell(180, 36) != 18 {
		t.Fatalf("expected cell 18 for 180°")
	}
}

func TestRenderDial(t *testing.T) {
	st := model.GameState{IsRotating: true, CenterRange: 180, CurrentHitRange: 60, PointerAngle: 90}
	out := renderDial(newStyles(lipgloss.NewRenderer(io.Discard)), st, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "━") || !strings.Contains(lines[0], "─") {
		t.Fatalf("expected track with zone: %q", lines[0])
	}
	if !strings.Contains(lines[1], "▲") {
		t.Fatalf("expected pointer marker: %q", lines[1])
	}
	if !strings.Contains(lines[2], "180°") {
		t.Fatalf("expected scale labels: %q", lines[2])
	}
}

func TestScaleLineFitsCells(t *testing.T) {
	line := scaleLine(minDialCells)
	if !strings.HasPrefix(line, "0°") || !strings.HasSuffix(line, "360°") {
		t.Fatalf("unexpected scale line: %q", line)
	}
}

func rendererWithProfile(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return r
}

func TestRenderDialUsesSessionRenderer(t *testing.T) {
	st := model.GameState{IsRotating: true, CenterRange: 180, CurrentHitRange: 60, PointerAngle: 180, IsOverHitZone: true}

	color := renderDial(newStyles(rendererWithProfile(termenv.TrueColor)), st, 40)
	lines := strings.Split(color, "\n")
	// #52C41A as a 24-bit foreground.
	const green = "38;2;82;196;26"
	if !strings.Contains(lines[0], green) {
		t.Fatalf("expected zone cells in the zone color: %q", lines[0])
	}
	if !strings.Contains(lines[1], green) {
		t.Fatalf("expected pointer over the zone in the zone color: %q", lines[1])
	}

	plain := renderDial(newStyles(rendererWithProfile(termenv.Ascii)), st, 40)
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("expected no escape sequences for a colorless terminal: %q", plain)
	}
}
