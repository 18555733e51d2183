package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lexpath/lexpath"
	"github.com/lexpath/lexpath/pathid"
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

type TeaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	grammar   lexpath.Grammar
	strict    bool
	idHandler *pathid.Handler

	input textinput.Model

	fullWidthWithBorders  int
	splitWidthWithBorders int

	ready bool
}

func NewTeaModel(grammar lexpath.Grammar, strict bool, cancel context.CancelFunc) TeaModel {
	input := textinput.New()
	input.Placeholder = "/usr/local/share/doc/readme.txt"
	input.Prompt = "path> "
	input.Focus()

	return TeaModel{
		grammar:   grammar,
		strict:    strict,
		idHandler: pathid.NewHandler(grammar),
		input:     input,
		cancel:    cancel,
		ready:     false,
	}
}

func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		textinput.Blink,
	)
}

//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "tab":
			if m.grammar == lexpath.Posix {
				m.grammar = lexpath.Windows
			} else {
				m.grammar = lexpath.Posix
			}
			m.idHandler = pathid.NewHandler(m.grammar)

			return m, nil

		case "ctrl+g":
			m.strict = !m.strict

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.splitWidthWithBorders = (m.width / 2) - 2

		// Input should match the content width.
		m.input.Width = m.fullWidthWithBorders - len(m.input.Prompt) - 2

		m.ready = true
	}

	// Handle input updates.
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	path := m.input.Value()

	inputSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Path Inspector"),
				m.input.View(),
			),
		)

	detailSection := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(m.splitWidthWithBorders).Render(m.formatClassifyView(path)),
		borderStyle.Width(m.splitWidthWithBorders).Render(m.formatDecomposeView(path)),
	)

	normalizeSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(m.formatNormalizeView(path))

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("tab: switch grammar • ctrl+g: toggle strict • esc: quit gui • ctrl+c: quit program")

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		inputSection,
		detailSection,
		normalizeSection,
		helpSection,
	))

	return s.String()
}

func (m TeaModel) formatClassifyView(path string) string {
	mode := "lenient"
	if m.strict {
		mode = "strict"
	}

	details := fmt.Sprintf(
		"Grammar: %s (%s)\n"+
			"Absolute: %s\n"+
			"Has Drive: %s\n"+
			"Drive: %s\n"+
			"Valid: %s\n",
		m.grammar, mode,
		formatBool(m.grammar.Abs(path, m.strict)),
		formatBool(m.grammar.HasDrive(path)),
		formatOptional(m.grammar.Drive(path)),
		formatBool(m.grammar.Validate(path, m.strict)),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.splitWidthWithBorders).Render("Classification"),
		"", // Empty line for spacing.
		infoStyle.Width(m.splitWidthWithBorders).Render(details),
	)

	return content
}

func (m TeaModel) formatDecomposeView(path string) string {
	details := fmt.Sprintf(
		"Dir: %s\n"+
			"Filename: %s\n"+
			"Stem: %s\n"+
			"Ext: %s\n"+
			"Components: %d\n",
		formatOptional(m.grammar.DirPath(path)),
		formatValue(m.grammar.Filename(path)),
		formatValue(m.grammar.Stem(path)),
		formatOptional(m.grammar.Ext(path)),
		len(m.grammar.SplitList(path)),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.splitWidthWithBorders).Render("Decomposition"),
		"", // Empty line for spacing.
		infoStyle.Width(m.splitWidthWithBorders).Render(details),
	)

	return content
}

func (m TeaModel) formatNormalizeView(path string) string {
	details := fmt.Sprintf(
		"Normalized: %s\n"+
			"Canonical: %s\n"+
			"ID: %s\n",
		formatValue(m.grammar.Normalize(path)),
		formatValue(m.idHandler.Canonical(path)),
		m.idHandler.ShortID(path),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.fullWidthWithBorders).Render("Normalization"),
		"", // Empty line for spacing.
		infoStyle.Width(m.fullWidthWithBorders).Render(details),
	)

	return content
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func formatValue(value string) string {
	if value == "" {
		return "(empty)"
	}

	return value
}

func formatOptional(value string, present bool) string {
	if !present {
		return "(none)"
	}

	return formatValue(value)
}
