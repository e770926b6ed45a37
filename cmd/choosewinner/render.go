package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ezBadminton/choosewinner/internal"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#39FF14")).
			Padding(0, 1)
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#39FF14"))
	loserStyle  = lipgloss.NewStyle().Faint(true)
	columnStyle = lipgloss.NewStyle().PaddingRight(3)
	pendingText = "?"
	pathMarker  = " *"
)

func renderPairing(label string, p *internal.Pairing) string {
	card1 := cardStyle.Render("1  " + p.ItemA.Name())
	card2 := cardStyle.Render("2  " + p.ItemB.Name())
	cards := lipgloss.JoinHorizontal(lipgloss.Center, card1, "  vs.  ", card2)
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), cards)
}

func renderChampion(champion *internal.Item) string {
	if champion == nil {
		return labelStyle.Render("No winner")
	}
	return winnerStyle.Render(fmt.Sprintf("Winner: %s", champion.Name()))
}

// Renders the columns of the bracket side by side.
// The champion's way through the bracket is highlighted and
// cards that never won a pairing are dimmed.
func renderBracket(tree *internal.Tree, engine *internal.Engine) string {
	onPath := make(map[[2]int]bool)
	if champion := engine.Champion(); champion != nil {
		for _, entry := range tree.Graph().PathOf(champion) {
			onPath[[2]int{entry.Column, entry.Index}] = true
		}
	}

	columns := make([]string, 0, tree.NumColumns())
	for k, column := range tree.Columns() {
		lines := make([]string, 0, len(column)+1)
		lines = append(lines, labelStyle.Render(columnTitle(k, tree.NumColumns())))
		for i, item := range column {
			lines = append(lines, bracketLine(item, onPath[[2]int{k, i}], engine.WasChosen(item)))
		}
		columns = append(columns, columnStyle.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func bracketLine(item *internal.Item, onPath, chosen bool) string {
	switch {
	case item == nil:
		return pendingText
	case onPath:
		return winnerStyle.Render(item.Name() + pathMarker)
	case !chosen:
		return loserStyle.Render(item.Name())
	}
	return item.Name()
}

func columnTitle(k, numColumns int) string {
	switch {
	case k == 0:
		return "Cards"
	case k == numColumns-1:
		return "Winner"
	}
	return fmt.Sprintf("Round %d", k)
}
