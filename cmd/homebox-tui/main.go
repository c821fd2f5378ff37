// The homebox-tui binary is a terminal browser for the Homebox
// inventory, built on Bubble Tea. It drives the same operations the
// tool service exposes, so reports look identical in both surfaces.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"homebox-inventory-tool/cmd/homebox-tui/ui"
	"homebox-inventory-tool/internal/config"
	"homebox-inventory-tool/internal/inventory"
)

func main() {
	cfg := config.Load()
	service := inventory.NewService(cfg.HomeboxURL, cfg.CFAccessClientID, cfg.CFAccessClientSecret)

	p := tea.NewProgram(ui.NewModel(service), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
