package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var flagListKind string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with its kind.

Frame games run in real time in the terminal; text games are played one
line at a time.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListKind, "kind", "", "Only list games of this kind (frame or text)")
}

func runList(cmd *cobra.Command, _ []string) error {
	games := registry.List()
	switch flagListKind {
	case "":
	case registry.KindFrame.String():
		games = registry.ListKind(registry.KindFrame)
	case registry.KindText.String():
		games = registry.ListKind(registry.KindText)
	default:
		return fmt.Errorf("unknown kind %q (want frame or text)", flagListKind)
	}

	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "KIND", "TITLE")
	for _, g := range games {
		t.Row(g.ID, g.Kind.String(), g.Title)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
	return nil
}
