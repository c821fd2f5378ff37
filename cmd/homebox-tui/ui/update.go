package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case animationTickMsg:
		return m.handleAnimation(msg)
	case reportMsg:
		return m.handleReport(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleAnimation(msg animationTickMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		m.animationFrame++
		return m, animationTimer()
	}
	return m, nil
}

func (m Model) handleReport(msg reportMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		m.messages = m.messages[:len(m.messages)-1]
		m.messages = append(m.messages, strings.Split(msg.report, "\n")...)
		m.messages = append(m.messages, "")
		m.loading = false
	}
	return m, nil
}

// "q" is deliberately not a quit key: queries contain letters. Use
// ctrl+c, esc or /quit instead.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		input := strings.TrimSpace(m.input)
		if input == "" || m.loading {
			return m, nil
		}
		m.input = ""
		return m.runCommand(input)

	case "backspace":
		if len(m.input) > 0 && !m.loading {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	default:
		if len(msg.String()) == 1 && !m.loading {
			m.input += msg.String()
		}
		return m, nil
	}
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, "> "+input)

	if strings.HasPrefix(input, "/") {
		fields := strings.Fields(input)
		switch fields[0] {
		case "/quit", "/q":
			return m, tea.Quit

		case "/help":
			m.messages = append(m.messages, helpLines()...)
			m.messages = append(m.messages, "")
			return m, nil

		case "/locations":
			return m.startOp(listLocationsCmd(m.service))

		case "/item":
			if len(fields) < 2 {
				m.messages = append(m.messages, "Usage: /item <item-id>", "")
				return m, nil
			}
			return m.startOp(itemDetailsCmd(m.service, fields[1]))

		case "/loc":
			if len(fields) < 2 {
				m.messages = append(m.messages, "Usage: /loc <location-id>", "")
				return m, nil
			}
			m.lastQuery = ""
			m.lastLocationID = fields[1]
			return m.startOp(locationItemsCmd(m.service, fields[1], 1))

		case "/page":
			if len(fields) < 2 {
				m.messages = append(m.messages, "Usage: /page <number>", "")
				return m, nil
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				m.messages = append(m.messages, "Usage: /page <number>", "")
				return m, nil
			}
			if m.lastQuery == "" && m.lastLocationID == "" {
				m.messages = append(m.messages, "Nothing to page through yet. Search first.", "")
				return m, nil
			}
			if m.lastLocationID != "" {
				return m.startOp(locationItemsCmd(m.service, m.lastLocationID, n))
			}
			return m.startOp(searchCmd(m.service, m.lastQuery, n))

		default:
			m.messages = append(m.messages, "Unknown command. Try /help", "")
			return m, nil
		}
	}

	// Free text searches the inventory.
	m.lastQuery = input
	m.lastLocationID = ""
	return m.startOp(searchCmd(m.service, input, 1))
}

func (m Model) startOp(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.animationFrame = 0
	m.messages = append(m.messages, "")
	m.messages = append(m.messages, "LOADING_ANIMATION")
	return m, tea.Batch(cmd, animationTimer())
}

func helpLines() []string {
	return []string{
		"Commands:",
		"  <text>          search items by name or description",
		"  /item <id>      show full details for an item",
		"  /locations      list all storage locations",
		"  /loc <id>       list items stored in a location",
		"  /page <n>       fetch another page of the last listing",
		"  /help           show this help",
		"  /quit           exit (also ctrl+c or esc)",
	}
}
