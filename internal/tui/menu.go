package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tinyraster/internal/config"
	"github.com/san-kum/tinyraster/internal/display"
	"github.com/san-kum/tinyraster/internal/gen"
	"github.com/san-kum/tinyraster/internal/raster"
	"github.com/san-kum/tinyraster/internal/scene"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	msgInvalidOption = "Please select a valid option"
	msgInvalidInput  = "Invalid UserInput"
)

type state int

const (
	stateMenu state = iota
	stateAsk
	stateLambda
	stateView
)

type model struct {
	state   state
	cursor  int
	scenes  []scene.Scene
	current scene.Scene

	cfg     *config.Config
	lambda  float64
	editBuf string
	message string

	frame string
	err   error
}

// NewMenu returns the scene picker for cfg.
func NewMenu(cfg *config.Config) tea.Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return model{
		state:  stateMenu,
		scenes: scene.Default().Scenes(),
		cfg:    cfg,
		lambda: cfg.Squares.Lambda,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateAsk:
		return m.askKey(msg)
	case stateLambda:
		return m.lambdaKey(msg)
	case stateView:
		return m.viewKey(msg)
	}
	return m, nil
}

// exitChoice is the menu number that quits.
func (m model) exitChoice() int { return len(m.scenes) + 1 }

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.scenes) {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.choose(m.cursor + 1)
	}
	if n, err := strconv.Atoi(key); err == nil {
		return m.choose(n)
	}
	m.message = msgInvalidOption
	return m, nil
}

func (m model) choose(n int) (model, tea.Cmd) {
	if n == m.exitChoice() {
		return m, tea.Quit
	}
	if n < 1 || n > len(m.scenes) {
		m.message = msgInvalidOption
		return m, nil
	}
	m.cursor = n - 1
	m.current = m.scenes[n-1]
	m.message = ""
	if m.current.Kind == scene.RotatedSquares {
		m.state = stateAsk
		return m, nil
	}
	if m.current.Kind == scene.BranchingTrees {
		m.message = fmt.Sprintf("Using the Default value of lambda = %.1f to generate Trees...", scene.TreeLambda)
	}
	return m.render(), nil
}

func (m model) askKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.state = stateLambda
		m.editBuf = ""
	case "n":
		m.lambda = gen.DefaultLambda
		m.message = fmt.Sprintf("Using the Default value of lambda = %.1f to generate Squares...", gen.DefaultLambda)
		return m.render(), nil
	case "esc":
		m.state = stateMenu
	default:
		m.message = msgInvalidInput
		m.state = stateMenu
	}
	return m, nil
}

func (m model) lambdaKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
		m.editBuf = ""
		if err == nil && gen.ValidLambda(v) {
			m.lambda = v
			m.message = fmt.Sprintf("Using the value of lambda = %f to generate Squares...", v)
		} else {
			m.lambda = gen.DefaultLambda
			m.message = fmt.Sprintf("Invalid Input Entered!! Using the Default value of lambda = %.1f to generate Squares...", gen.DefaultLambda)
		}
		return m.render(), nil
	case "esc":
		m.editBuf = ""
		m.state = stateMenu
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.state = stateMenu
		m.frame = ""
		m.message = ""
	case "r":
		m.cfg.Seed++
		return m.render(), nil
	}
	return m, nil
}

// render draws the current scene into a headless panel and keeps the
// braille text of it.
func (m model) render() model {
	m.state = stateView
	p := m.cfg.SceneParams(m.current.Kind)
	p.Lambda = m.lambda

	panel := display.NewHeadless(m.cfg.Display.Width, m.cfg.Display.Height)
	m.err = scene.Render(m.current.Kind, p, panel, display.NoDelay)
	m.frame = ""
	if m.err != nil {
		return m
	}
	m.frame = display.Braille(panel.Framebuffer, raster.Black).Render()
	return m
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateAsk, stateLambda:
		return m.viewAsk()
	case stateView:
		return m.viewFrame()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("t i n y r a s t e r") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, s := range m.scenes {
		m.menuLine(&b, i, fmt.Sprintf("%d. %-10s", i+1, s.Name), s.Summary)
	}
	m.menuLine(&b, len(m.scenes), fmt.Sprintf("%d. %-10s", m.exitChoice(), "exit"), "")

	if m.message != "" {
		b.WriteString("\n      " + yellow.Render(m.message) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   1-5 or enter choose   q quit") + "\n")

	return b.String()
}

func (m model) menuLine(b *strings.Builder, i int, label, desc string) {
	if i == m.cursor {
		b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + "  " + dim.Render(desc) + "\n")
	} else {
		b.WriteString("        " + dim.Render(label) + "  " + dimmer.Render(desc) + "\n")
	}
}

func (m model) viewAsk() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.current.Name) + "  " + dim.Render(m.current.Summary) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	if m.state == stateAsk {
		b.WriteString("      Do you want to enter a lambda value (y/n): \n")
	} else {
		b.WriteString("      Enter the value of lambda (0 < lambda < 1): " + magenta.Render(m.editBuf+"▋") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter confirm  esc back") + "\n")
	return b.String()
}

func (m model) viewFrame() string {
	var b strings.Builder

	b.WriteString("\n   " + cyan.Render(m.current.Name) + "  " + dim.Render(fmt.Sprintf("seed %d", m.cfg.Seed)) + "\n")
	if m.message != "" {
		b.WriteString("   " + yellow.Render(m.message) + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("   " + yellow.Render(m.err.Error()) + "\n")
	} else {
		for _, line := range strings.Split(strings.TrimRight(m.frame, "\n"), "\n") {
			b.WriteString("   " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   r reseed   esc back   q quit") + "\n")
	return b.String()
}

// RunMenu starts the scene menu full-screen.
func RunMenu(cfg *config.Config) error {
	p := tea.NewProgram(NewMenu(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
