package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kataras/textframes/pkg/export"
)

// SaveModel is the bubbletea model of the save dialog: a single line
// editor prefilled with the suggested path.
type SaveModel struct {
	Prompt    string
	Value     []rune
	Cursor    int
	Confirmed bool
	Done      bool
}

// NewSaveModel returns a save dialog showing prompt with defaultName filled in.
func NewSaveModel(defaultName, prompt string) SaveModel {
	v := []rune(defaultName)
	return SaveModel{Prompt: prompt, Value: v, Cursor: len(v)}
}

func (m SaveModel) Init() tea.Cmd {
	return nil
}

func (m SaveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.Done = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.Done = true
		m.Confirmed = strings.TrimSpace(string(m.Value)) != ""
		return m, tea.Quit
	case tea.KeyLeft:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case tea.KeyRight:
		if m.Cursor < len(m.Value) {
			m.Cursor++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		m.Cursor = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.Cursor = len(m.Value)
	case tea.KeyBackspace:
		if m.Cursor > 0 {
			m.Value = append(m.Value[:m.Cursor-1:m.Cursor-1], m.Value[m.Cursor:]...)
			m.Cursor--
		}
	case tea.KeyCtrlU:
		m.Value, m.Cursor = nil, 0
	case tea.KeyRunes, tea.KeySpace:
		ins := key.Runes
		if key.Type == tea.KeySpace {
			ins = []rune{' '}
		}
		v := make([]rune, 0, len(m.Value)+len(ins))
		v = append(v, m.Value[:m.Cursor]...)
		v = append(v, ins...)
		m.Value = append(v, m.Value[m.Cursor:]...)
		m.Cursor += len(ins)
	}
	return m, nil
}

func (m SaveModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.Prompt))
	b.WriteString("\n")

	before, after := string(m.Value[:m.Cursor]), string(m.Value[m.Cursor:])
	b.WriteString(styleNormal.Render(before) + styleFocused.Render("▏") + styleNormal.Render(after))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("⏎ save  esc cancel"))

	return stylePanel.Render(b.String()) + "\n"
}

// Path returns the edited path without surrounding spaces.
func (m SaveModel) Path() string {
	return strings.TrimSpace(string(m.Value))
}

// SaveDialog is an export.FileHost that asks for the output path on the
// terminal.
type SaveDialog struct {
	Options []tea.ProgramOption
}

var _ export.FileHost = SaveDialog{}

// SaveDialog implements export.FileHost. Esc or an empty path cancels.
func (d SaveDialog) SaveDialog(defaultName, prompt string) (export.Handle, error) {
	final, err := tea.NewProgram(NewSaveModel(defaultName, prompt), d.Options...).Run()
	if err != nil {
		return nil, err
	}

	m := final.(SaveModel)
	if !m.Confirmed {
		return nil, nil
	}
	return export.NewFile(export.ExpandHome(m.Path())), nil
}
