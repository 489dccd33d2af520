package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/waypoint/internal/chrome"
	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/navstate"
	"github.com/alexisbeaulieu97/waypoint/internal/screens"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctx.Snapshot()
	bar := chrome.Build(snap.Mode, snap.Collapsed, m.Items())
	content := m.renderContent()

	var body string
	switch snap.Mode {
	case layout.Sidebar:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(bar, cells(snap.Geometry.Left, CellWidth)), content)
	case layout.BottomTabs:
		body = lipgloss.JoinVertical(lipgloss.Left, content, m.renderTabBar(bar))
	default:
		sections := []string{m.renderMenuBar()}
		if m.menuOpen {
			sections = append(sections, m.renderSidebar(bar, cells(m.ctx.Metrics().SidebarWidth, CellWidth)))
		} else {
			sections = append(sections, content)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter(snap.Mode, snap.Geometry, snap.Collapsed))
}

func (m Model) renderContent() string {
	var lines []string
	if m.state.ShowBack() {
		lines = append(lines, backStyle.Render("‹ back"))
	}

	if m.state.ModalOpen() {
		lines = append(lines, m.renderEntry(m.state.Underlying()))
		modal := modalStyle.Render(m.renderEntry(m.state.Current()))
		lines = append(lines, modal, statusStyle.Render("presentation: "+layout.Presentation(m.mode)))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.renderEntry(m.state.Current()))
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(entry navstate.Entry) string {
	screen, ok := m.screenFor(entry)
	if !ok {
		return titleStyle.Render(entry.Route)
	}
	return screens.Render(screen, entry.Params)
}

func (m Model) renderSidebar(bar chrome.Bar, width int) string {
	lines := make([]string, 0, len(bar.Items)+1)
	for i, item := range bar.Items {
		text := item.Icon
		if bar.ShowLabels {
			text = strings.TrimSpace(item.Icon + " " + item.Label)
		}
		lines = append(lines, m.itemStyle(i, item).Render(text))
	}
	if bar.ToggleIcon != "" {
		lines = append(lines, backStyle.Render(bar.ToggleIcon))
	}
	return chromeStyle.BorderRight(true).Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderTabBar(bar chrome.Bar) string {
	tabs := make([]string, 0, len(bar.Items))
	for i, item := range bar.Items {
		tabs = append(tabs, m.itemStyle(i, item).Render(item.Label))
	}
	return chromeStyle.BorderTop(true).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderMenuBar() string {
	title := m.state.ActiveTab().DisplayLabel()
	return chromeStyle.BorderBottom(true).Render(fmt.Sprintf("☰ %s", title))
}

func (m Model) itemStyle(i int, item chrome.Item) lipgloss.Style {
	switch {
	case i == m.cursor:
		return cursorItemStyle
	case item.Focused:
		return focusedItemStyle
	default:
		return itemStyle
	}
}

func (m Model) renderFooter(mode layout.Mode, g layout.Geometry, collapsed bool) string {
	status := fmt.Sprintf("%s • %dx%d • margin %s", mode, m.width, m.height, g.CSS())
	if mode == layout.Sidebar && collapsed {
		status += " • collapsed"
	}
	lines := []string{statusStyle.Render(status)}

	if m.inputMode {
		lines = append(lines, m.input.View())
	} else if m.message != "" {
		if m.isError {
			lines = append(lines, errorStyle.Render(m.message))
		} else {
			lines = append(lines, statusStyle.Render(m.message))
		}
	}

	lines = append(lines, m.help.View(m.Keys))
	return strings.Join(lines, "\n")
}

func cells(px float64, perCell int) int {
	return int(math.Ceil(px / float64(perCell)))
}
