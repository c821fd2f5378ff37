package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"homebox-inventory-tool/internal/inventory"
)

type Model struct {
	messages       []string
	input          string
	width          int
	height         int
	service        *inventory.Service
	loading        bool
	animationFrame int

	// Last listing context so /page can re-issue it.
	lastQuery      string
	lastLocationID string
}

func NewModel(service *inventory.Service) Model {
	messages := []string{
		"Homebox inventory browser. Type to search, /help for commands.",
		"",
	}
	if !service.Configured() {
		messages = append(messages,
			"Warning: HOMEBOX_URL is not set, so lookups will fail until it is configured.",
			"",
		)
	}

	return Model{
		messages: messages,
		input:    "",
		service:  service,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

type animationTickMsg struct{}

// reportMsg carries a finished operation's formatted report back into
// the update loop.
type reportMsg struct {
	report string
}
