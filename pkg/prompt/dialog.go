package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/order"
	"github.com/kataras/textframes/pkg/target"
)

const (
	dialogTitle  = "Extract TextFrame contents"
	cancelLabel  = "Cancel"
	confirmLabel = "Extract contents"
)

// focus zones of the option dialog, in tab order.
const (
	focusTargets = iota
	focusOrders
	focusButtons
	numFocus
)

const (
	buttonCancel = iota
	buttonConfirm
)

// Choice is what the option dialog selects.
type Choice struct {
	Target target.Key
	Order  order.Key
}

// OptionDialog is the bubbletea model of the option dialog: one radio
// group per registry and a Cancel / Extract contents button pair.
type OptionDialog struct {
	Choice    Choice
	Focus     int
	Button    int
	Confirmed bool
	Done      bool
}

// NewOptionDialog returns a dialog preselecting initial with the confirm
// button active.
func NewOptionDialog(initial Choice) OptionDialog {
	return OptionDialog{Choice: initial, Button: buttonConfirm}
}

func (m OptionDialog) Init() tea.Cmd {
	return nil
}

func (m OptionDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q", "ctrl+c":
		m.Done = true
		return m, tea.Quit
	case "enter":
		m.Done = true
		m.Confirmed = m.Focus != focusButtons || m.Button == buttonConfirm
		return m, tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "tab":
		m.Focus = (m.Focus + 1) % numFocus
	case "shift+tab":
		m.Focus = (m.Focus + numFocus - 1) % numFocus
	case "left", "h":
		if m.Focus == focusButtons {
			m.Button = buttonCancel
		} else {
			m.Focus = focusTargets
		}
	case "right", "l":
		if m.Focus == focusButtons {
			m.Button = buttonConfirm
		} else {
			m.Focus = focusOrders
		}
	}
	return m, nil
}

// move shifts the radio selection of the focused group, clamped to its ends.
func (m *OptionDialog) move(delta int) {
	switch m.Focus {
	case focusTargets:
		keys := target.Keys()
		m.Choice.Target = keys[clamp(indexOf(keys, m.Choice.Target)+delta, len(keys))]
	case focusOrders:
		keys := order.Keys()
		m.Choice.Order = keys[clamp(indexOf(keys, m.Choice.Order)+delta, len(keys))]
	}
}

func (m OptionDialog) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(dialogTitle))
	b.WriteString("\n\n")

	targets := make([]string, 0, len(target.Keys()))
	for _, k := range target.Keys() {
		targets = append(targets, target.Lookup(k).Label)
	}
	writeGroup(&b, "Export Targets", targets, indexOf(target.Keys(), m.Choice.Target), m.Focus == focusTargets)
	b.WriteString("\n")

	orders := make([]string, 0, len(order.Keys()))
	for _, k := range order.Keys() {
		orders = append(orders, order.Lookup(k).Label)
	}
	writeGroup(&b, "Order", orders, indexOf(order.Keys(), m.Choice.Order), m.Focus == focusOrders)
	b.WriteString("\n")

	cancel, confirm := styleButton, styleButton
	if m.Focus == focusButtons {
		if m.Button == buttonCancel {
			cancel = styleActive
		} else {
			confirm = styleActive
		}
	}
	b.WriteString(cancel.Render(cancelLabel) + "  " + confirm.Render(confirmLabel))
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render("↑/↓ choose  tab switch  ⏎ extract  esc cancel"))

	return stylePanel.Render(b.String()) + "\n"
}

func writeGroup(b *strings.Builder, title string, labels []string, selected int, focused bool) {
	b.WriteString(styleGroup.Render(title))
	b.WriteString("\n")
	for i, label := range labels {
		mark, style := "( )", styleNormal
		if i == selected {
			mark = "(•)"
			if focused {
				style = styleFocused
			}
		}
		b.WriteString(style.Render(mark + " " + label))
		b.WriteString("\n")
	}
}

func indexOf[K comparable](keys []K, k K) int {
	for i, v := range keys {
		if v == k {
			return i
		}
	}
	return 0
}

func clamp(i, n int) int {
	return max(0, min(i, n-1))
}

// RunOptionDialog shows the dialog on the terminal and blocks until the user
// confirms or cancels. The boolean is false on cancel.
func RunOptionDialog(initial Choice, opts ...tea.ProgramOption) (Choice, bool, error) {
	final, err := tea.NewProgram(NewOptionDialog(initial), opts...).Run()
	if err != nil {
		return initial, false, err
	}

	m := final.(OptionDialog)
	return m.Choice, m.Confirmed, nil
}

// Dialog asks for the target and order policies on the terminal.
type Dialog struct {
	Options []tea.ProgramOption
}

// Choose presents the dialog preselecting p and returns p with the chosen
// target and order. Direction and normalization are kept.
func (d Dialog) Choose(p extract.Policy) (extract.Policy, bool, error) {
	c, ok, err := RunOptionDialog(Choice{Target: p.Target, Order: p.Order}, d.Options...)
	if err != nil || !ok {
		return p, false, err
	}
	p.Target, p.Order = c.Target, c.Order
	return p, true, nil
}
