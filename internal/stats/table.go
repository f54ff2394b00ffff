package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hitzone/internal/model"
)

// ResultLines renders recent games as an aligned plain-text table.
// first is the session game number of results[0].
func ResultLines(results []model.RoundResult, first int) []string {
	headers := []string{"#", "Result", "Level", "Hits", "Zone°", "Time"}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			humanize.Ordinal(first + i),
			string(r.Outcome),
			string(r.Difficulty),
			fmt.Sprintf("%d/%d", r.Hits, r.TargetHits),
			fmt.Sprintf("%.1f", r.FinalRange),
			r.EndedAt.Sub(r.StartedAt).Round(100 * time.Millisecond).String(),
		})
	}
	return formatTable(headers, rows, map[int]bool{3: true, 4: true, 5: true})
}

// CurveLines renders hit-zone widths per hit count.
func CurveLines(curve []float64, target int) []string {
	headers := []string{"Hits", "Zone°", ""}
	rows := make([][]string, 0, len(curve))
	for n, width := range curve {
		mark := ""
		if n == target {
			mark = "win"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", n), fmt.Sprintf("%.3f", width), mark})
	}
	return formatTable(headers, rows, map[int]bool{0: true, 1: true})
}

// FirstRecentGame returns the game number of the oldest entry in r.Recent.
func FirstRecentGame(r Report) int {
	if n := r.Summary.Games - len(r.Recent) + 1; n > 1 {
		return n
	}
	return 1
}

// SummaryLine renders one line of session totals.
func SummaryLine(sum model.ResultSummary, now time.Time) string {
	if sum.Games == 0 {
		return "No games yet"
	}
	segments := []string{
		fmt.Sprintf("%s played", humanize.Comma(int64(sum.Games))),
		fmt.Sprintf("%d won (%.0f%%)", sum.Wins, WinRate(sum)*100),
		fmt.Sprintf("best %d hits", sum.BestHits),
		fmt.Sprintf("streak %d", sum.BestStreak),
	}
	if !sum.LastEnded.IsZero() {
		segments = append(segments, "last "+humanize.RelTime(sum.LastEnded, now, "ago", "from now"))
	}
	return strings.Join(segments, " · ")
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	if rightAlign {
		return runewidth.FillLeft(value, width)
	}
	return runewidth.FillRight(value, width)
}
