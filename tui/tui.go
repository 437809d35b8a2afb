// Package tui is an interactive terminal fretboard.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretchord/chord"
	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/fretboard"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/sound"
)

type styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Exact    lipgloss.Style
	Chord    lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C6C6C")),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("#3C3C3C")).
			Foreground(lipgloss.Color("#FFFFFF")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8700")).
			Bold(true),
		Exact: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Chord: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")),
	}
}

type Model struct {
	selection  *fretboard.Selection
	recognizer chord.Recognizer
	player     *sound.Player
	styles     styles

	cursor   model.Coordinate
	chords   []model.MatchResult
	status   string
	quitting bool
}

// New starts with the cursor on the open low E string.
func New(t fretboard.Tuning, r chord.Recognizer, p *sound.Player) Model {
	return Model{
		selection:  fretboard.NewSelection(t),
		recognizer: r,
		player:     p,
		styles:     newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Cursor() model.Coordinate {
	return m.cursor
}

func (m Model) Chords() []model.MatchResult {
	return m.chords
}

func (m Model) Notes() []string {
	return m.selection.PitchClasses()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	numStrings := len(m.selection.Tuning())
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if m.cursor.Fret > 0 {
			m.cursor.Fret--
		}
	case "right", "l":
		if m.cursor.Fret < constants.MaxFret {
			m.cursor.Fret++
		}
	// higher strings are drawn on top
	case "up", "k":
		if m.cursor.String < numStrings-1 {
			m.cursor.String++
		}
	case "down", "j":
		if m.cursor.String > 0 {
			m.cursor.String--
		}
	case " ", "enter", "x":
		m.toggle()
	case "c":
		m.selection.Clear()
		m.recognize()
		m.status = "cleared"
	case "s":
		if m.player.Toggle() {
			m.status = "sound on"
		} else {
			m.status = "sound off"
		}
	}
	return m, nil
}

func (m *Model) toggle() {
	on, err := m.selection.Toggle(m.cursor)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.recognize()

	if !on {
		m.status = ""
		return
	}
	res, err := m.player.PlayPosition(m.selection.Tuning(), m.cursor)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s %s", res.Status, res.Note)
}

func (m *Model) recognize() {
	m.chords = m.recognizer.Recognize(m.selection.PitchClasses())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Fretboard Chord Identifier"))
	b.WriteString("\n")

	b.WriteString("   ")
	for fret := 0; fret <= constants.MaxFret; fret++ {
		switch fretboard.MarkerAt(fret) {
		case fretboard.SingleMarker:
			b.WriteString(m.styles.Muted.Render(" • "))
		case fretboard.DoubleMarker:
			b.WriteString(m.styles.Muted.Render(" ••"))
		default:
			b.WriteString("   ")
		}
	}
	b.WriteString("\n")

	tuning := m.selection.Tuning()
	for s := len(tuning) - 1; s >= 0; s-- {
		fmt.Fprintf(&b, "%-2s|", tuning[s].Name)
		for fret := 0; fret <= constants.MaxFret; fret++ {
			c := model.Coordinate{String: s, Fret: fret}
			cell := "-"
			if m.selection.Has(c) {
				cell = fretboard.ResolvePitchClass(tuning, s, fret)
			}
			cell = fmt.Sprintf("%-3s", cell)
			switch {
			case c == m.cursor:
				cell = m.styles.Cursor.Render(cell)
			case m.selection.Has(c):
				cell = m.styles.Selected.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Notes: %s\n", strings.Join(m.selection.PitchClasses(), " "))
	if len(m.chords) == 0 {
		b.WriteString(m.styles.Muted.Render("No chords recognized"))
		b.WriteString("\n")
	}
	for _, c := range m.chords {
		line := fmt.Sprintf("%-8s %-14s %3d%%", c.Name, c.Type, c.Confidence)
		if c.IsExactMatch {
			b.WriteString(m.styles.Exact.Render(line + "  exact"))
		} else {
			b.WriteString(m.styles.Chord.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	soundState := "off"
	if m.player.Enabled() {
		soundState = "on"
	}
	footer := fmt.Sprintf("%s  |  sound %s  |  arrows move, space toggles, c clears, s sound, q quits",
		m.selection.Tuning().Label(m.cursor), soundState)
	b.WriteString(m.styles.Muted.Render(footer))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	return b.String()
}
