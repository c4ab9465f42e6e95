// Package ui renders the interactive progress of a fix run.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bankiru/PHP-CS-Fixer/internal/driver"
)

const (
	maxActive = 8 // файлов в работе на экране
	maxFailed = 3 // последних ошибок на экране
)

// Итоговые статусы файла в порядке вывода сводки.
var tallyOrder = []string{"fixed", "clean", "cached", "error"}

var statusColors = map[string]lipgloss.Color{
	"fixed":   "3",
	"clean":   "2",
	"cached":  "2",
	"error":   "1",
	"reading": "6",
	"fixing":  "6",
	"writing": "6",
}

// stageWeight is the share of a file's work done once it enters a stage.
var stageWeight = map[driver.Stage]float64{
	driver.StageRead:  0.1,
	driver.StageFix:   0.5,
	driver.StageWrite: 0.9,
}

type fileState struct {
	path   string
	status string
	stage  driver.Stage
	active bool
	final  bool
}

type failure struct {
	path string
	err  error
}

// progressModel shows tallies, the files currently being worked on and the
// most recent failures. Large projects have thousands of files, so finished
// files are only counted.
type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileState
	index   map[string]int
	tally   map[string]int
	failed  []failure
	width   int
	done    bool
}

type (
	eventMsg driver.Event
	doneMsg  struct{}
)

// NewProgressModel returns a Bubble Tea model fed by events; it quits when
// events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		files:   make([]fileState, len(files)),
		index:   make(map[string]int, len(files)),
		tally:   make(map[string]int, len(tallyOrder)),
		width:   80,
	}
	m.bar.Width = m.width - 4
	for i, path := range files {
		m.files[i] = fileState{path: path, status: "queued"}
		m.index[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	i, ok := m.index[ev.File]
	if !ok || m.files[i].final {
		return nil
	}
	label := statusLabel(ev)
	if label == "" {
		return nil
	}
	f := &m.files[i]
	f.status, f.stage = label, ev.Stage
	f.active = ev.Status == driver.StatusWorking
	if ev.Status == driver.StatusDone || ev.Status == driver.StatusError {
		f.final = true
		m.tally[label]++
	}
	if ev.Status == driver.StatusError {
		m.failed = append(m.failed, failure{path: ev.File, err: ev.Err})
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.files) == 0 {
		return 0
	}
	var sum float64
	for _, f := range m.files {
		if f.final {
			sum++
		} else {
			sum += stageWeight[f.stage]
		}
	}
	return sum / float64(len(m.files))
}

func (m *progressModel) finished() int {
	n := 0
	for _, c := range m.tally {
		n += c
	}
	return n
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	var b strings.Builder
	header := fmt.Sprintf("%s %d/%d", m.title, m.finished(), len(m.files))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n")

	parts := make([]string, 0, len(tallyOrder))
	for _, status := range tallyOrder {
		parts = append(parts, styleStatus(status).Render(fmt.Sprintf("%s %d", status, m.tally[status])))
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n\n")

	nameWidth := max(m.width-14, 20)
	shown := 0
	for _, f := range m.files {
		if !f.active || shown == maxActive {
			continue
		}
		shown++
		fmt.Fprintf(&b, "  %s %s\n", styleStatus(f.status).Render(fmt.Sprintf("%8s", f.status)), truncate(f.path, nameWidth))
	}
	for _, f := range m.failed[max(0, len(m.failed)-maxFailed):] {
		line := f.path
		if f.err != nil {
			line += ": " + f.err.Error()
		}
		fmt.Fprintf(&b, "  %s %s\n", styleStatus("error").Render("   error"), truncate(line, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func statusLabel(ev driver.Event) string {
	switch ev.Status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusError:
		return "error"
	case driver.StatusDone:
		switch {
		case ev.Cached:
			return "cached"
		case ev.Changed:
			return "fixed"
		}
		return "clean"
	case driver.StatusWorking:
		switch ev.Stage {
		case driver.StageRead:
			return "reading"
		case driver.StageFix:
			return "fixing"
		case driver.StageWrite:
			return "writing"
		}
	}
	return ""
}

func styleStatus(status string) lipgloss.Style {
	color, ok := statusColors[status]
	if !ok {
		color = "7"
	}
	return lipgloss.NewStyle().Foreground(color)
}

// truncate shortens value to width display cells, ending with "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
