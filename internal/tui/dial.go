package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hitzone/internal/game"
	"github.com/verte-zerg/hitzone/internal/model"
)

const (
	minDialCells = 24
	maxDialCells = 90
)

type cellKind int

const (
	cellTrack cellKind = iota
	cellZone
)

// dialCells maps each cell of the track to whether it lies in the hit zone.
func dialCells(st model.GameState, cells int) []cellKind {
	out := make([]cellKind, cells)
	if st.CenterRange == 0 && !st.IsRotating && !st.Terminal() {
		return out
	}
	for i := range out {
		a := (float64(i) + 0.5) * 360 / float64(cells)
		if game.InHitZone(a, st.CenterRange, st.CurrentHitRange) {
			out[i] = cellZone
		}
	}
	return out
}

func pointerCell(angle float64, cells int) int {
	idx := int(angle / 360 * float64(cells))
	if idx < 0 {
		return 0
	}
	if idx >= cells {
		return cells - 1
	}
	return idx
}

// renderDial draws the unrolled 0-360° track with the zone and a pointer marker.
func renderDial(sty styles, st model.GameState, width int) string {
	cells := width - 4
	if cells < minDialCells {
		cells = minDialCells
	}
	if cells > maxDialCells {
		cells = maxDialCells
	}
	kinds := dialCells(st, cells)
	pointer := pointerCell(st.PointerAngle, cells)

	var track strings.Builder
	for _, k := range kinds {
		if k == cellZone {
			track.WriteString(sty.zone.Render("━"))
		} else {
			track.WriteString(sty.track.Render("─"))
		}
	}
	marker := "▲"
	style := sty.pointer
	if st.IsOverHitZone {
		style = sty.pointerHot
	}
	pointerLine := strings.Repeat(" ", pointer) + style.Render(marker)
	scale := scaleLine(cells)
	return track.String() + "\n" + pointerLine + "\n" + sty.muted.Render(scale)
}

func scaleLine(cells int) string {
	left, mid, right := "0°", "180°", "360°"
	line := []rune(strings.Repeat(" ", cells))
	place := func(label string, at int) {
		w := runewidth.StringWidth(label)
		if at+w > len(line) {
			at = len(line) - w
		}
		if at < 0 {
			at = 0
		}
		copy(line[at:], []rune(label))
	}
	place(left, 0)
	place(mid, cells/2-runewidth.StringWidth(mid)/2)
	place(right, cells)
	return strings.TrimRight(string(line), " ")
}
