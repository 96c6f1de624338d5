package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ListViewport shows a window over a list of rows with a 1-column scrollbar on
// the right. Unlike a log view it never follows new content; callers keep the
// cursor row visible with EnsureVisible.
type ListViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewListViewport creates a ListViewport. The width includes the scrollbar column.
func NewListViewport(width, height int) ListViewport {
	vp := viewport.New(max(width-1, 0), height)
	vp.SetContent("")

	return ListViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetSize updates the dimensions, keeping the scroll offset in range.
func (l *ListViewport) SetSize(width, height int) {
	if l.width == width && l.height == height {
		return
	}

	l.width = width
	l.height = height
	l.viewport.Width = max(width-1, 0)
	l.viewport.Height = height
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// SetLines replaces the rows, keeping the scroll offset in range.
func (l *ListViewport) SetLines(lines []string) {
	l.lines = append([]string(nil), lines...)
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// EnsureVisible scrolls the minimum amount needed to show row i.
func (l *ListViewport) EnsureVisible(i int) {
	if i < 0 || i >= len(l.lines) || l.height <= 0 {
		return
	}

	top := l.viewport.YOffset
	switch {
	case i < top:
		l.viewport.SetYOffset(i)
	case i >= top+l.height:
		l.viewport.SetYOffset(i - l.height + 1)
	}
}

// YOffset returns the index of the first visible row.
func (l ListViewport) YOffset() int {
	return l.viewport.YOffset
}

// Height returns the number of visible rows.
func (l ListViewport) Height() int {
	return l.height
}

// View renders the visible rows padded to the content width, followed by the scrollbar.
func (l ListViewport) View() string {
	if l.height <= 0 {
		return ""
	}

	rows := strings.Split(l.viewport.View(), "\n")
	bar := renderScrollbar(l.height, len(l.lines), l.viewport.YOffset)
	contentWidth := max(l.width-1, 0)

	var b strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		b.WriteString(row)
		if pad := contentWidth - lipgloss.Width(row); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(bar[i])
	}
	return b.String()
}

// renderScrollbar returns one cell per visible row. It is blank until the
// rows overflow; then a thumb (█) sized to the visible fraction moves along a track (│).
func renderScrollbar(viewHeight, contentHeight, yOffset int) []string {
	cells := make([]string, viewHeight)
	if contentHeight <= viewHeight {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	thumbMaxTop := viewHeight - thumbSize
	thumbTop := yOffset * thumbMaxTop / (contentHeight - viewHeight)
	thumbTop = min(max(thumbTop, 0), thumbMaxTop)

	for i := range cells {
		if i >= thumbTop && i < thumbTop+thumbSize {
			cells[i] = "█"
		} else {
			cells[i] = "│"
		}
	}
	return cells
}
