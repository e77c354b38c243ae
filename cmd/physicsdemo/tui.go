package main

import (
	"fmt"
	"strings"
	"time"

	physics "github.com/BAVDE1/2d-physics"
	"github.com/BAVDE1/2d-physics/actor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tuiWidth     = 78
	tuiHeight    = 22
	tickDuration = time.Second / 60
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	staticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// tickMsg drives one world step; the TUI advances the simulation on its own
// clock rather than on keypresses.
type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickDuration, func(time.Time) tea.Msg { return tickMsg{} })
}

// tuiModel renders a World's bodies as a scatter of glyphs inside a fixed
// character grid, reading body pose only between steps (§5: the core stays
// ignorant of any renderer; this is that renderer).
type tuiModel struct {
	world     *physics.World
	maxSteps  int
	stepCount int
	quitting  bool
}

func newTUIModel(w *physics.World, maxSteps int) tuiModel {
	return tuiModel{world: w, maxSteps: maxSteps}
}

func (m tuiModel) Init() tea.Cmd {
	return tick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.world.Step()
		m.stepCount++
		if m.maxSteps > 0 && m.stepCount >= m.maxSteps {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.quitting {
		return fmt.Sprintf("stopped after %d steps\n", m.stepCount)
	}

	grid := make([][]rune, tuiHeight)
	for y := range grid {
		grid[y] = make([]rune, tuiWidth)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	var group actor.Group
	for _, b := range m.world.Bodies {
		group.Add(b)
	}
	for _, b := range group.SortedByLayer() {
		plotBody(grid, b)
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	header := headerStyle.Render(fmt.Sprintf("step %d — %d bodies (q to quit)", m.stepCount, len(m.world.Bodies)))
	legend := bodyStyle.Render("o/# dynamic") + "  " + staticStyle.Render("= static")
	return header + "\n" + frameStyle.Render(sb.String()) + "\n" + legend
}

// plotBody maps a body's world position onto the character grid, clamped to
// its bounds; static bodies are drawn dim, dynamic bodies bright.
func plotBody(grid [][]rune, b *actor.Body) {
	const worldWidth, worldHeight = 200.0, 200.0

	x := int(b.Transform.Pos.X / worldWidth * float64(tuiWidth))
	y := int(b.Transform.Pos.Y / worldHeight * float64(tuiHeight))
	if x < 0 || x >= tuiWidth || y < 0 || y >= tuiHeight {
		return
	}

	glyph := rune('o')
	if b.IsStatic {
		glyph = '='
	} else if _, isCircle := b.Shape.(*actor.Circle); !isCircle {
		glyph = '#'
	}
	grid[y][x] = glyph
}
