package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/prefrontal-labs/mindly-app/internal/ui/theme"
)

// Choice is a single-select option list driven by arrow keys or number
// keys.
type Choice struct {
	Prompt    string
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
}

// NewChoice creates a new option list.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.Chosen = c.Selected
	default:
		// Number keys select and submit in one stroke.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Selected = idx
				c.Submitted = true
				c.Chosen = idx
			}
		}
	}

	return c, nil
}

// View renders the option list.
func (c Choice) View() string {
	s := ""
	if c.Prompt != "" {
		s = theme.Body.Bold(true).Render(c.Prompt) + "\n\n"
	}

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case c.Submitted && i == c.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case c.Submitted:
			s += theme.Hint.Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Value returns the chosen index, or -1 before submission.
func (c Choice) Value() int {
	if !c.Submitted {
		return -1
	}
	return c.Chosen
}
