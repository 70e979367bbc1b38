package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	tabsRegionHeight = 3 // border, label row, border
	minFrameWidth    = 4
	minContentHeight = 3 // borders plus at least one body row

	tabsTitle    = "Tabs"
	contentTitle = "Content"
	tabPadding   = " "
	tabDivider   = "│"
	truncateTail = "…"
)

var frameBorder = lipgloss.RoundedBorder()

// View implements tea.Model. Every call produces a complete frame: the tab
// strip on top and the active tab's content filling the remaining rows.
func (m *Model) View() string {
	m.renders++
	width, height := m.frameSize()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(width),
		m.viewContent(width, height-tabsRegionHeight),
	)
}

func (m *Model) frameSize() (int, int) {
	width, height := m.width, m.height
	if width < minFrameWidth {
		width = minFrameWidth
	}
	if height < tabsRegionHeight+minContentHeight {
		height = tabsRegionHeight + minContentHeight
	}
	return width, height
}

func (m *Model) viewTabs(width int) string {
	return box(tabsTitle, m.tabStrip(width-2), "", width, tabsRegionHeight-2)
}

// tabStrip renders every label in order with the active one highlighted.
func (m *Model) tabStrip(width int) string {
	labels := m.tabs.Labels()
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := styles.Tab
		if i == m.sel.Current {
			style = styles.ActiveTab
		}
		parts[i] = tabPadding + render(style, label) + tabPadding
	}
	strip := strings.Join(parts, render(styles.Divider, tabDivider))
	return ansi.Truncate(strip, width, truncateTail)
}

func (m *Model) viewContent(width, height int) string {
	footer := ""
	if m.showFooter {
		m.help.Width = width - 2
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return box(contentTitle, m.content.View(), footer, width, height-2)
}

// syncContent sizes the content viewport to the bottom region and loads the
// active tab's text into it. Missing content leaves the region blank.
func (m *Model) syncContent() {
	width, height := m.frameSize()
	innerWidth := width - 2
	innerHeight := height - tabsRegionHeight - 2
	m.content.Width = innerWidth
	m.content.Height = innerHeight

	body := m.tabs.Content(m.sel.Current)
	if body != "" {
		body = styles.Content.Width(innerWidth).Render(body)
	}
	m.content.SetContent(body)
	m.content.GotoTop()
}

// box draws a bordered region whose top edge carries title and whose bottom
// edge optionally carries footer. innerHeight is the number of body rows.
func box(title, body, footer string, width, innerHeight int) string {
	innerWidth := width - 2
	top := borderLine(frameBorder.TopLeft, frameBorder.Top, frameBorder.TopRight, render(styles.Title, title), innerWidth)
	bottom := borderLine(frameBorder.BottomLeft, frameBorder.Bottom, frameBorder.BottomRight, footer, innerWidth)
	sides := lipgloss.NewStyle().
		Border(frameBorder, false, true, false, true).
		BorderForeground(styles.Border.GetForeground()).
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(innerHeight)
	return lipgloss.JoinVertical(lipgloss.Left, top, sides.Render(body), bottom)
}

func borderLine(left, fill, right, label string, width int) string {
	label = ansi.Truncate(label, width, "")
	used := ansi.StringWidth(label)
	rest := width - used
	if rest < 0 {
		rest = 0
	}
	return render(styles.Border, left) + label + render(styles.Border, strings.Repeat(fill, rest)+right)
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = *styles.HelpKey
	h.Styles.ShortDesc = *styles.HelpDesc
	h.Styles.ShortSeparator = *styles.HelpDivider
	return h
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
