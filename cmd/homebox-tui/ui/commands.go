package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"homebox-inventory-tool/internal/inventory"
)

func animationTimer() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

func searchCmd(service *inventory.Service, query string, page int) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{report: service.SearchItems(context.Background(), query, page, 0)}
	}
}

func itemDetailsCmd(service *inventory.Service, itemID string) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{report: service.GetItemDetails(context.Background(), itemID)}
	}
}

func listLocationsCmd(service *inventory.Service) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{report: service.ListLocations(context.Background())}
	}
}

func locationItemsCmd(service *inventory.Service, locationID string, page int) tea.Cmd {
	return func() tea.Msg {
		return reportMsg{report: service.SearchItemsByLocation(context.Background(), locationID, page, 0)}
	}
}
