package cli

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SlideModel - Interactive slide presentation
// =============================================================================

// clipDoneMsg reports that the player process for a clip exited.
type clipDoneMsg struct {
	index int
	err   error
}

// playerFunc builds the command that plays one clip.
type playerFunc func(clip string) *exec.Cmd

// SlideModel is the bubbletea model that plays slide clips one at a time,
// waiting for a key between them.
type SlideModel struct {
	Title   string
	Clips   []string
	Current int  // clip shown or about to be shown
	Playing bool // player process running
	Err     error

	play playerFunc
}

// NewSlideModel creates a slide model playing clips with play.
func NewSlideModel(title string, clips []string, play playerFunc) SlideModel {
	return SlideModel{Title: title, Clips: clips, play: play}
}

// Init plays the first slide.
func (m SlideModel) Init() tea.Cmd {
	if len(m.Clips) == 0 {
		return tea.Quit
	}
	return m.playCurrent()
}

func (m *SlideModel) playCurrent() tea.Cmd {
	m.Playing = true
	idx := m.Current
	return tea.ExecProcess(m.play(m.Clips[idx]), func(err error) tea.Msg {
		return clipDoneMsg{index: idx, err: err}
	})
}

// Done reports whether every slide has been shown.
func (m SlideModel) Done() bool { return !m.Playing && m.Current >= len(m.Clips)-1 }

func (m SlideModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clipDoneMsg:
		m.Playing = false
		if msg.err != nil {
			m.Err = fmt.Errorf("play %s: %w", m.Clips[msg.index], msg.err)
			return m, tea.Quit
		}
	case tea.KeyMsg:
		if m.Playing {
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "right", "pgdown", "enter", "n":
			if m.Current >= len(m.Clips)-1 {
				return m, tea.Quit
			}
			m.Current++
			return m, m.playCurrent()
		case "left", "pgup", "p":
			if m.Current > 0 {
				m.Current--
			}
			return m, m.playCurrent()
		case "r":
			return m, m.playCurrent()
		}
	}
	return m, nil
}

func (m SlideModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("space/→ next  ← previous  r replay  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Clips))
	for i, clip := range m.Clips {
		cursor := "  "
		if i == m.Current {
			cursor = "▸ "
		}
		state := ""
		switch {
		case i < m.Current:
			state = iconSuccess
		case i == m.Current && m.Playing:
			state = "playing"
		}
		rows[i] = []string{cursor, fmt.Sprintf("%d", i+1), filepath.Base(clip), state}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Clip", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == m.Current:
				return listSelectedStyle
			case row < m.Current:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  [%s/%s]", StyleNumber.Render(fmt.Sprintf("%d", m.Current+1)), StyleNumber.Render(fmt.Sprintf("%d", len(m.Clips))))
	if m.Done() {
		status += listDimStyle.Render("  last slide, any key to finish")
	}
	b.WriteString(status)

	return b.String()
}
