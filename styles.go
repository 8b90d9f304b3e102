package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"banktui/health"
	"banktui/messages"
)

type styles struct {
	docStyle     lipgloss.Style
	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	balanceStyle lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		labelStyle:   lipgloss.NewStyle().Foreground(theme.SecondaryText),
		balanceStyle: lipgloss.NewStyle().Foreground(theme.Income).Bold(true),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}

func createMessageStyles(theme Theme) messages.Styles {
	return messages.Styles{
		Info:    lipgloss.NewStyle().Foreground(theme.SecondaryText),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Error:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
	}
}

func createHealthStyles(theme Theme) health.Styles {
	return health.Styles{
		Online:  lipgloss.NewStyle().Foreground(theme.Success),
		Offline: lipgloss.NewStyle().Foreground(theme.Error),
		Unknown: lipgloss.NewStyle().Foreground(theme.Muted),
	}
}
