package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fontscan/internal/schema"
	"github.com/dustin/go-humanize"
)

const maxLogLines = 100

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// failStyle defines the style for failed copy attempts.
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// DiscoveredMsg is a [tea.Msg] with the result of a copy's discovery.
type DiscoveredMsg struct {
	Total int
	Bytes uint64
}

// CopiedMsg is a [tea.Msg] with the outcome of one copy attempt.
type CopiedMsg struct {
	Detail schema.CopyDetail
}

// FinishedMsg is a [tea.Msg] announcing the end of a copy.
type FinishedMsg struct{}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	title  string
	cancel context.CancelFunc

	fullWidthWithBorders int

	total       int
	totalBytes  uint64
	succeeded   int
	failed      int
	copiedBytes uint64
	lastFile    string

	copyProgress progress.Model
	logsViewport viewport.Model
	logs         []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(title string, cancel context.CancelFunc) TeaModel {
	return TeaModel{
		title:  title,
		cancel: cancel,
		copyProgress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(80),
		),
		logsViewport: viewport.New(80, 20),
		logs:         make([]string, 0, maxLogLines),
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.copyProgress.Width = m.fullWidthWithBorders

		// Progress panel takes a fixed height, logs take the rest.
		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = max(m.height-12, 1)
		m.refreshLogs()

		m.ready = true

	case DiscoveredMsg:
		m.total = msg.Total
		m.totalBytes = msg.Bytes

		cmds = append(cmds, m.copyProgress.SetPercent(m.percent()))

	case CopiedMsg:
		m.lastFile = msg.Detail.Name

		if msg.Detail.Success {
			m.succeeded++
			m.copiedBytes += msg.Detail.Size
		} else {
			m.failed++
			m.appendLog(failStyle.Render(fmt.Sprintf("%s: %s", msg.Detail.Name, msg.Detail.Error)) + "\n")
		}

		cmds = append(cmds, m.copyProgress.SetPercent(m.percent()))

	case FinishedMsg:
		return m, tea.Quit

	case LogMsg:
		m.appendLog(string(msg))

	case progress.FrameMsg:
		updated, cmd := m.copyProgress.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.copyProgress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// percent returns the share of attempted files as a fraction.
func (m TeaModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.succeeded+m.failed) / float64(m.total)
}

func (m *TeaModel) appendLog(line string) {
	if len(m.logs) >= maxLogLines {
		m.logs = m.logs[1:]
	}
	m.logs = append(m.logs, line)

	m.refreshLogs()
}

func (m *TeaModel) refreshLogs() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	details := fmt.Sprintf(
		"Files: %d/%d (Success=%d, Failed=%d)\n"+
			"Bytes: %s of %s\n"+
			"Last:  %s\n",
		m.succeeded+m.failed,
		m.total,
		m.succeeded,
		m.failed,
		humanize.IBytes(m.copiedBytes),
		humanize.IBytes(m.totalBytes),
		m.lastFile,
	)

	progressSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render(m.title),
				"",
				m.copyProgress.View(),
				"",
				infoStyle.Width(m.fullWidthWithBorders).Render(details),
			),
		)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		progressSection,
		logsSection,
		helpSection,
	)
}
