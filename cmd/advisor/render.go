package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/pokeradvisor/advisor"
	"github.com/lox/pokeradvisor/analysis"
	"github.com/lox/pokeradvisor/internal/config"
	"github.com/shopspring/decimal"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	actionStyles = map[advisor.ActionKind]lipgloss.Style{
		advisor.ActionNone:  dimStyle,
		advisor.ActionCheck: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		advisor.ActionCall:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		advisor.ActionFold:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		advisor.ActionBet:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		advisor.ActionRaise: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		advisor.ActionAllIn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	}
)

func chips(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func renderDecision(w io.Writer, s advisor.Snapshot, d advisor.Decision) {
	fmt.Fprintf(w, "%s %s", headerStyle.Render(s.Street().String()), cardStyle.Render(strings.Join(s.HoleCards, " ")))
	if len(s.BoardCards) > 0 {
		fmt.Fprintf(w, " %s %s", dimStyle.Render("on"), cardStyle.Render(strings.Join(s.BoardCards, " ")))
	}
	fmt.Fprintln(w)

	action := actionStyles[d.Action].Render(d.Name)
	if d.Amount > 0 {
		action += " " + chips(d.Amount)
	}
	fmt.Fprintf(w, "\n%s\n\n", action)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("reason"), d.Reason)
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("equity"), percent(d.Equity))
	fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("confidence"), percent(d.Confidence))
	if d.HasHandLabel() {
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("hand"), d.HandLabel)
	}
	if s.Acting != nil {
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("pot"), chips(s.TotalPot))
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("to call"), chips(s.Acting.CallAmount))
		fmt.Fprintf(tw, "%s\t%s\n", labelStyle.Render("legal"), s.Acting.Capabilities)
	}
	tw.Flush()
}

func renderEquity(w io.Writer, hole, board []string, opponents int, res analysis.EquityResult) {
	if len(board) > 0 {
		fmt.Fprintf(w, "%s\n%s\n\n", headerStyle.Render("board"), cardStyle.Render(strings.Join(board, " ")))
	}

	lower, upper := res.ConfidenceInterval()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("vs"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))
	fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
		cardStyle.Render(strings.Join(hole, " ")),
		opponents,
		percent(res.WinRate()),
		percent(res.TieRate()),
		percent(res.Equity()))
	tw.Flush()

	fmt.Fprintf(w, "\n%d simulations, 95%% interval %s - %s\n", res.Total, percent(lower), percent(upper))
}

func renderProfiles(w io.Writer, profiles []config.NamedProfile, selected string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("profile"),
		headerStyle.Render("aggression"),
		headerStyle.Render("vpip"),
		headerStyle.Render("pfr"),
		headerStyle.Render("source"))
	for _, p := range profiles {
		name := p.Name
		if name == selected {
			name = cardStyle.Render(name + " *")
		}
		source := "file"
		if p.Builtin {
			source = dimStyle.Render("built-in")
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%s\n", name, p.Aggression, p.VPIP, p.PFR, source)
	}
	tw.Flush()
}
