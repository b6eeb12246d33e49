package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/kevinlinxc/pokerogue-biomes/core"
	"github.com/kevinlinxc/pokerogue-biomes/route"
	"github.com/kevinlinxc/pokerogue-biomes/validate"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	colorCertain = lipgloss.Color("#2CD7C7")
	colorLikely  = lipgloss.Color("#F4D03F")
	colorRare    = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")

	styleNode    = lipgloss.NewStyle().Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleCertain = lipgloss.NewStyle().Foreground(colorCertain)
	styleLikely  = lipgloss.NewStyle().Foreground(colorLikely)
	styleRare    = lipgloss.NewStyle().Foreground(colorRare)
	styleOK      = lipgloss.NewStyle().Foreground(colorCertain).Bold(true)
	styleFail    = lipgloss.NewStyle().Foreground(colorRare).Bold(true)
)

// renderer writes command results as text or JSON.
type renderer struct {
	w      io.Writer
	format string
	color  bool
}

func newRenderer(w io.Writer, format string, noColor bool) (*renderer, error) {
	switch format {
	case formatText, formatJSON:
	default:
		return nil, fmt.Errorf("--output: unknown format %q (want text or json)", format)
	}

	return &renderer{w: w, format: format, color: !noColor && isTerminal(w)}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}

	return s.Render(text)
}

// percent renders p as a whole percentage, rounding halves up.
func percent(p float64) string {
	return strconv.Itoa(int(math.Round(p*100))) + "%"
}

// probabilityStyle colors certain, even-or-better and rare transitions.
func probabilityStyle(p float64) lipgloss.Style {
	switch {
	case p >= 1:
		return styleCertain
	case p >= 0.5:
		return styleLikely
	default:
		return styleRare
	}
}

func (r *renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// formatPath renders "Town -100%-> Plains -50%-> Lake".
func (r *renderer) formatPath(p core.Path) string {
	var sb strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			prob := p.Probabilities[i-1]
			sb.WriteString(" -")
			sb.WriteString(r.style(probabilityStyle(prob), percent(prob)))
			sb.WriteString("-> ")
		}
		sb.WriteString(r.style(styleNode, n))
	}

	return sb.String()
}

func (r *renderer) result(res *route.Result) error {
	if r.format == formatJSON {
		return r.writeJSON(res)
	}

	q := res.Query
	if res.Substituted {
		fmt.Fprintln(r.w, r.style(styleMuted, "likeliest cycles are not supported; showing shortest cycles"))
	}
	if len(res.Paths) == 0 {
		switch {
		case res.Strategy == route.StrategyNone:
			fmt.Fprintln(r.w, "nothing to search")
		case q.Mode == route.ModeCycle:
			fmt.Fprintf(r.w, "no cycle through %s\n", q.Source)
		default:
			fmt.Fprintf(r.w, "no route from %s to %s\n", q.Source, q.Destination)
		}
		return nil
	}

	for i, p := range res.Paths {
		summary := fmt.Sprintf("[%d hops, %s]", p.Hops(), percent(p.Probability()))
		fmt.Fprintf(r.w, "%d. %s  %s\n", i+1, r.formatPath(p), r.style(styleMuted, summary))
	}

	return nil
}

func (r *renderer) report(rep *validate.Report) error {
	if r.format == formatJSON {
		return r.writeJSON(rep)
	}

	if rep.OK() {
		fmt.Fprintf(r.w, "%s: %d nodes reachable from %s\n", r.style(styleOK, "valid"), rep.Visited, rep.Root)
		return nil
	}
	fmt.Fprintf(r.w, "%s: %d violation(s) from root %s\n", r.style(styleFail, "invalid"), len(rep.Violations), rep.Root)
	for _, k := range []validate.Kind{
		validate.KindUnknownRoot,
		validate.KindUndeclared,
		validate.KindUnreferenced,
		validate.KindUnreachable,
	} {
		if nodes := rep.Nodes(k); len(nodes) > 0 {
			fmt.Fprintf(r.w, "  %s: %s\n", k, strings.Join(nodes, ", "))
		}
	}

	return nil
}

type nodeView struct {
	Name        string      `json:"name"`
	OutDegree   int         `json:"out_degree"`
	Transitions []core.Edge `json:"transitions"`
}

func (r *renderer) nodes(g *core.Graph) error {
	ids := g.Nodes()
	if r.format == formatJSON {
		views := make([]nodeView, 0, len(ids))
		for _, id := range ids {
			edges := g.Neighbors(id)
			if edges == nil {
				edges = []core.Edge{}
			}
			views = append(views, nodeView{Name: id, OutDegree: len(edges), Transitions: edges})
		}
		return r.writeJSON(views)
	}

	width := 0
	for _, id := range ids {
		width = max(width, len(id))
	}
	for _, id := range ids {
		targets := make([]string, 0, g.OutDegree(id))
		for _, e := range g.Neighbors(id) {
			targets = append(targets, e.To+" "+r.style(probabilityStyle(e.Probability), percent(e.Probability)))
		}
		line := strings.Join(targets, ", ")
		if line == "" {
			line = r.style(styleMuted, "(no transitions)")
		}
		fmt.Fprintf(r.w, "%-*s  %s\n", width, id, line)
	}

	return nil
}
