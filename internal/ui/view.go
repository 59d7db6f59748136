package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slack-tui/internal/chat"
	"github.com/atomicstack/slack-tui/internal/format/table"
	"github.com/atomicstack/slack-tui/internal/pane"
	uistate "github.com/atomicstack/slack-tui/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	sidebarMinWidth = 16
	sidebarMaxWidth = 32
	teamsBoxHeight  = 3
	inputBoxHeight  = 3
)

// View implements tea.Model. It reads the state snapshot once and draws the
// panes; it never mutates anything other than list viewport offsets.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.size()
	bottom := []string{m.statusLine(width)}
	if m.showFooter {
		bottom = append(bottom, truncateText(m.help.View(m.keys), width))
	}
	bodyH := height - len(bottom)
	if bodyH < teamsBoxHeight+4 {
		bodyH = teamsBoxHeight + 4
	}

	sideW := width / 4
	if sideW < sidebarMinWidth {
		sideW = sidebarMinWidth
	}
	if sideW > sidebarMaxWidth {
		sideW = sidebarMaxWidth
	}
	mainW := width - sideW
	if mainW < 10 {
		mainW = 10
	}

	listsH := bodyH - teamsBoxHeight
	channelsH := listsH / 2
	usersH := listsH - channelsH
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPane(pane.Teams, "Teams", m.teamLines(), sideW, teamsBoxHeight),
		m.renderPane(pane.Channels, "Channels", listLines(m.channels, channelsH-2), sideW, channelsH),
		m.renderPane(pane.Users, "Users", listLines(m.users, usersH-2), sideW, usersH),
	)

	messagesH := bodyH - inputBoxHeight
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPane(pane.Messages, m.messagesTitle(), m.messageLines(mainW-2), mainW, messagesH),
		m.renderPane(pane.Input, "Input", []string{m.inputLine(mainW - 2)}, mainW, inputBoxHeight),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, bottom...)...)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderPane(p pane.Pane, title string, lines []string, width, height int) string {
	border := styles.Border(m.focus.Active() == p, m.focus.Hovered() == p)
	return renderBox(title, lines, width, height, border)
}

func (m *Model) teamLines() []string {
	teams := m.directory.Teams()
	if len(teams) == 0 {
		return []string{styles.Placeholder.Render("loading…")}
	}
	return []string{styles.Item.Render(strings.Join(teams, ", "))}
}

// listLines scrolls the list's viewport to the selection before drawing, since
// only the layout knows how many rows the list gets.
func listLines[T uistate.Item](list *uistate.List[T], maxVisible int) []string {
	if list.Len() == 0 {
		return []string{styles.Placeholder.Render("(no entries)")}
	}
	list.EnsureVisible(maxVisible)
	visible, start := list.Window(maxVisible)
	selected, hasSelection := list.Selected()
	lines := make([]string, 0, len(visible))
	for i, item := range visible {
		style := styles.Item
		if hasSelection && start+i == selected {
			style = styles.SelectedItem
		}
		lines = append(lines, style.Render(item.Label()))
	}
	return lines
}

func (m *Model) messagesTitle() string {
	title := "Messages"
	if !m.conversation.IsZero() {
		title = "Messages: " + m.conversation.Name
	}
	if m.loading && m.pendingLabel != "" {
		title += " (loading " + m.pendingLabel + "…)"
	}
	return title
}

// messageLines renders the history newest first as "[HH:MM] <author> text",
// aligning the author column and wrapping text under itself.
func (m *Model) messageLines(width int) []string {
	if len(m.messages) == 0 {
		if m.conversation.IsZero() {
			return []string{styles.Placeholder.Render("select a channel or user")}
		}
		return []string{styles.Placeholder.Render("(no messages)")}
	}
	rows := make([][]string, 0, len(m.messages))
	for i := len(m.messages) - 1; i >= 0; i-- {
		rows = append(rows, []string{messageStamp(m.messages[i]), "<" + m.messages[i].Author + ">"})
	}
	prefixes := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	lines := make([]string, 0, len(rows))
	for i, prefix := range prefixes {
		msg := m.messages[len(m.messages)-1-i]
		prefix += " "
		prefixW := uistate.StringWidth(prefix)
		textW := width - prefixW
		if textW < 1 {
			textW = 1
		}
		wrapped := strings.Split(wordwrap.String(msg.Text, textW), "\n")
		for j, part := range wrapped {
			lead := strings.Repeat(" ", prefixW)
			if j == 0 {
				stamp := len(rows[i][0])
				lead = styles.Timestamp.Render(prefix[:stamp]) + styles.Author.Render(prefix[stamp:])
			}
			lines = append(lines, lead+styles.MessageText.Render(part))
		}
	}
	return lines
}

func messageStamp(msg chat.Message) string {
	ts := msg.Time()
	if ts.IsZero() {
		return "[--:--]"
	}
	return ts.Format("[15:04]")
}

// inputLine draws the buffer, scrolled so the cursor column stays visible.
// The caret is only drawn while the Input pane is active.
func (m *Model) inputLine(width int) string {
	chars := m.input.Chars()
	active := m.focus.Active() == pane.Input
	if len(chars) == 0 && !active {
		return styles.Placeholder.Render("select Input and press enter to type")
	}
	index := m.input.Index()
	column := m.input.CursorColumn()
	start := 0
	for column >= width && start < index {
		column -= uistate.RuneWidth(chars[start])
		start++
	}
	before := string(chars[start:index])
	if !active {
		return styles.Input.Render(before + string(chars[index:]))
	}
	under := " "
	after := ""
	if index < len(chars) {
		under = string(chars[index])
		after = string(chars[index+1:])
	}
	m.caret.SetChar(under)
	return styles.Input.Render(before) + m.caret.View() + styles.Input.Render(after)
}

func (m *Model) statusLine(width int) string {
	if m.errMsg != "" {
		return styles.Error.Render(truncateText("Error: "+m.errMsg, width))
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return styles.Error.Render(truncateText("Refresh failed: "+msg, width))
	}
	status := fmt.Sprintf("hovered %s  active %s", m.focus.Hovered(), m.focus.Active())
	if m.sending {
		status += "  sending…"
	}
	return styles.Footer.Render(truncateText(status, width))
}

// renderBox builds a bordered box with exactly height rows and width
// columns. Body lines may carry ANSI styling.
func renderBox(title string, lines []string, width, height int, border *lipgloss.Style) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	// ╭─ title ───────╮
	titleSeg := " " + title + " "
	if ansi.StringWidth(titleSeg) > innerW-1 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(innerW-1, 0)), "…")
	}
	dashes := innerW - 1 - ansi.StringWidth(titleSeg)
	if dashes < 0 {
		dashes = 0
	}
	rows := make([]string, 0, innerH+2)
	rows = append(rows, border.Render(tlc+hz)+styles.Title.Render(titleSeg)+border.Render(strings.Repeat(hz, dashes)+trc))
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		w := ansi.StringWidth(content)
		if w > innerW {
			content = ansi.Truncate(content, innerW, "…")
			w = ansi.StringWidth(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
