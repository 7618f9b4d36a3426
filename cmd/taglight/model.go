package main

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	tea "charm.land/bubbletea/v2"

	"github.com/deltasrc/taglight/style"
	"github.com/deltasrc/taglight/style/theme"
)

// model is the interactive pager: a single scrollable viewport over every
// matched file's highlighted content, with live theme switching.
//
// Grounded on cmd/nyaml/model.go's shape, scaled down to the single
// viewport + status bar this engine's CLI promises (no diff mode, no
// search overlay, no multi-revision tracking).
type model struct {
	files        []fileEntry
	viewport     viewport.Model
	themeName    string
	themeList    []string
	themeIndex   int
	themePicking bool
	width        int
	height       int
}

func newModel(files []fileEntry, themeName string) model {
	themeList := theme.List(style.Dark)
	themeList = append(themeList, theme.List(style.Light)...)
	sort.Strings(themeList)

	m := model{
		files:      files,
		viewport:   viewport.New(),
		themeName:  themeName,
		themeList:  themeList,
		themeIndex: max(0, slices.Index(themeList, themeName)),
	}

	m.renderContent()

	return m
}

func (m *model) renderContent() {
	var sb strings.Builder

	if err := printFiles(&sb, m.files, m.themeName); err != nil {
		slog.Error("render files", slog.Any("error", err))
	}

	m.viewport.SetContent(sb.String())
}

// Init implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1) // Reserve 1 line for the status bar.

	case tea.KeyPressMsg:
		if m.themePicking {
			m.updateThemeInput(msg)

			return m, nil
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("t"))):
			m.themePicking = true

		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			m.viewport.GotoTop()

		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *model) updateThemeInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "esc"))):
		m.themePicking = false

	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		if m.themeIndex < len(m.themeList)-1 {
			m.themeIndex++
			m.themeName = m.themeList[m.themeIndex]
			m.renderContent()
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		if m.themeIndex > 0 {
			m.themeIndex--
			m.themeName = m.themeList[m.themeIndex]
			m.renderContent()
		}
	}
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) View() tea.View {
	base := lipgloss.JoinVertical(
		lipgloss.Top,
		m.viewport.View(),
		m.statusBar(),
	)

	v := tea.NewView(base)
	v.AltScreen = true

	return v
}

func (m *model) statusBar() string {
	left := fmt.Sprintf(" %s ", m.themeName)

	barStyle := lipgloss.NewStyle().
		Background(charmtone.Charcoal).
		Foreground(charmtone.Salt).
		Inline(true)

	if m.themePicking {
		pickStyle := lipgloss.NewStyle().
			Background(charmtone.Mustard).
			Foreground(charmtone.Ox).
			Inline(true)

		left = pickStyle.Render(fmt.Sprintf(" theme: %s (j/k, enter) ", m.themeName))
	} else {
		left = barStyle.Render(left)
	}

	right := fmt.Sprintf("%d%% ", int(m.viewport.ScrollPercent()*100))

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))

	return left + barStyle.Render(strings.Repeat(" ", padding)+right)
}
