package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
)

const (
	indexWidth     = 5
	scoreWidth     = 8
	processedWidth = 16
)

// renderMain stacks the header, search line, results box, page controls and
// command bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	search := m.renderSearch()
	controls := m.renderControls()
	footer := m.renderCommandBar()

	used := lipgloss.Height(header) + lipgloss.Height(search) + lipgloss.Height(controls) + lipgloss.Height(footer)
	boxHeight := maxInt(4, m.height-used)
	box := m.renderResults(m.width, boxHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, search, box, controls, footer)
}

// renderHeader renders the status line: connection state, endpoint, counts
// and scan counters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	status := m.status
	if m.snapshot.GaveUp {
		status = state.StatusDisconnected
	}
	indicator := bg.Render("● "+status.String(), styles.StatusStyle(statusClass(status)).Background(lipgloss.Color(m.theme.Surface)))

	parts := []string{
		bg.Render("scanboard", styles.Logo),
		indicator,
	}
	if m.endpoint != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.endpoint, 40), styles.FaintText))
	}
	parts = append(parts,
		bg.Render("Records:", styles.MutedText)+bg.Space()+
			bg.Render(strconv.Itoa(m.view.TotalCount), styles.Text))

	if m.snapshot.HasProgress {
		p := m.snapshot.Progress
		parts = append(parts,
			bg.Render("Scanned:", styles.MutedText)+bg.Space()+bg.Render(strconv.Itoa(p.Counter), styles.Text),
			bg.Render("Pending:", styles.MutedText)+bg.Space()+bg.Render(strconv.Itoa(p.Pending), styles.WarningText),
			bg.Render("Graded:", styles.MutedText)+bg.Space()+bg.Render(strconv.Itoa(p.Graded), styles.SuccessText),
		)
	}
	if m.view.Paused {
		parts = append(parts, bg.Render("PAUSED", styles.WarningText.Bold(true)))
	}
	if m.snapshot.Reloads > 0 {
		parts = append(parts,
			bg.Render("Reloads:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(m.snapshot.Reloads), styles.Text))
	}

	lines := []string{styles.Header.Width(m.width).Render(bg.Join(parts, "  "))}

	if problem := m.connectionProblem(); problem != "" {
		lines = append(lines, styles.Header.Width(m.width).Render(
			bg.Render(truncate(problem, maxInt(10, m.width-4)), styles.DangerText)))
	}
	return strings.Join(lines, "\n")
}

// connectionProblem describes the last channel error, if any is relevant.
func (m Model) connectionProblem() string {
	switch {
	case m.snapshot.GaveUp && m.snapshot.LastError != nil:
		return "Stopped reconnecting: " + m.snapshot.LastError.Error()
	case m.status == state.StatusConnected:
		return ""
	case m.statusErr != nil:
		return m.statusErr.Error()
	case m.snapshot.LastError != nil && m.snapshot.IsOffline():
		return fmt.Sprintf("Offline after %d attempts: %v", m.snapshot.ConsecutiveFailures, m.snapshot.LastError)
	}
	return ""
}

// statusClass maps a status to its theme color key. Connecting has its own
// color even though it shares the "disconnected" class on the wire.
func statusClass(s state.Status) string {
	if s == state.StatusConnecting {
		return "connecting"
	}
	return s.Class()
}

// renderSearch renders the search box or the active query.
func (m Model) renderSearch() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	var line string
	switch {
	case m.searching:
		line = m.search.View()
	case m.search.Value() != "":
		line = bg.Render("/"+m.search.Value(), styles.AccentText) + bg.Spaces(2) +
			bg.Render("esc clears", styles.FaintText)
	default:
		line = bg.Render("/ to search", styles.FaintText)
	}
	return bg.FillLine(" "+line, m.width)
}

// renderResults draws the table rows inside a titled box.
func (m Model) renderResults(width, height int) string {
	focused := m.view.Filtering
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	inner := maxInt(20, width-2)
	fileWidth := maxInt(8, inner-indexWidth-scoreWidth-processedWidth-4)

	lines := []string{
		bg.Render(padLeft("#", indexWidth)+" "+padRight("File", fileWidth)+" "+
			padLeft("Score", scoreWidth)+" "+padRight("Processed", processedWidth), styles.MutedText.Bold(true)),
	}

	if len(m.view.Rows) == 0 {
		msg := "Waiting for results..."
		if m.view.Filtering {
			msg = fmt.Sprintf("No records match %q", m.view.Query)
		}
		lines = append(lines, bg.Render(msg, styles.FaintText))
	}

	rowsHeight := maxInt(1, height-3)
	start, end := scrollWindow(len(m.view.Rows), m.selected, rowsHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.view.Rows[i], i == m.selected, fileWidth, inner, styles, bg))
	}

	return m.renderTitledBox(m.resultsTitle(), strings.Join(lines, "\n"), width, height, focused)
}

func (m Model) renderRow(row results.Row, selected bool, fileWidth, inner int, styles Styles, bg BgStyle) string {
	processed := "-"
	if !row.Record.ProcessedAt.IsZero() {
		processed = row.Record.ProcessedAt.Local().Format("2006-01-02 15:04")
	}
	text := padLeft(strconv.Itoa(row.Index+1), indexWidth) + " " +
		padRight(truncateMiddle(row.Record.FileName, fileWidth), fileWidth) + " " +
		padLeft(truncate(row.Record.Score, scoreWidth), scoreWidth) + " " +
		padRight(processed, processedWidth)
	text = padRight(text, inner)

	switch {
	case selected:
		return m.theme.Styles().Selected.Render(text)
	case row.Highlighted:
		return m.theme.Styles().Highlight.Render(text)
	default:
		return bg.Render(text, styles.Text)
	}
}

func (m Model) resultsTitle() string {
	if m.view.Filtering {
		return fmt.Sprintf("Results %d of %d", m.view.VisibleCount, m.view.TotalCount)
	}
	if m.view.TotalPages > 1 {
		return fmt.Sprintf("Results page %d/%d", m.view.CurrentPage, m.view.TotalPages)
	}
	return "Results"
}

// scrollWindow returns the slice of rows to draw so the selection stays
// visible.
func scrollWindow(total, selected, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	return start, minInt(total, start+height)
}

// renderTitledBox draws a bordered box with the title embedded in the top
// border.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := maxInt(len(title)+4, width-2)
	leftPad := (innerWidth - len(title) - 2) / 2
	rightPad := innerWidth - len(title) - 2 - leftPad

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := maxInt(1, height-2)

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}

// renderControls renders the « 1 2 3 » page controls, or the match count
// while a search is active.
func (m Model) renderControls() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	if m.view.Filtering {
		label := fmt.Sprintf("%d matches", m.view.VisibleCount)
		if m.view.VisibleCount == 1 {
			label = "1 match"
		}
		return bg.FillLine(" "+bg.Render(label, styles.MutedText), m.width)
	}
	if !m.view.ControlsVisible {
		return bg.FillLine("", m.width)
	}

	active := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true)
	parts := make([]string, 0, len(m.view.Controls))
	for _, c := range m.view.Controls {
		label := " " + c.Label() + " "
		switch {
		case c.Disabled:
			parts = append(parts, bg.Render(label, styles.FaintText))
		case c.Active:
			parts = append(parts, active.Render(label))
		default:
			parts = append(parts, bg.Render(label, styles.Text))
		}
	}
	return bg.FillLine(" "+strings.Join(parts, bg.Space()), m.width)
}

// renderCommandBar renders the key hints and the last action result.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	segments := []string{m.help.ShortHelpView(m.keys.ShortHelp())}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+bg.Sep(":")+bg.Render(m.theme.Name, styles.FaintText))

	if m.flash != "" {
		style := styles.InfoText
		if m.flashError {
			style = styles.DangerText
		}
		segments = append(segments, bg.Render(truncate(m.flash, 60), style))
	}

	return styles.Footer.Width(m.width).Render(strings.Join(segments, sep))
}
