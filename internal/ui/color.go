package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chriserin/gwt/parser"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func FeatureLine(w io.Writer, path, name string) {
	fmt.Fprintln(w, headerStyle.Render(name)+"  "+faintStyle.Render(path))
}

// ResultLine prints one scenario outcome. failure is the failing step
// ("Then x (line 7)") and is ignored for passing results.
func ResultLine(w io.Writer, pass bool, name, failure string) {
	if name == "" {
		name = faintStyle.Render("(unnamed)")
	}
	if pass {
		fmt.Fprintln(w, "  "+passStyle.Render("pass")+"  "+name)
		return
	}
	fmt.Fprintln(w, "  "+failStyle.Render("FAIL")+"  "+name)
	if failure != "" {
		fmt.Fprintln(w, "        "+faintStyle.Render(failure))
	}
}

func ParseErrorLine(w io.Writer, path string, err error) {
	fmt.Fprintln(w, failStyle.Render("error")+"  "+path+": "+err.Error())
}

func SummaryLine(w io.Writer, passed, failed int) {
	total := passed + failed
	noun := "scenarios"
	if total == 1 {
		noun = "scenario"
	}
	fmt.Fprintf(w, "%d %s, %d passed, %d failed\n", total, noun, passed, failed)
}

// ShowOutline prints a parsed feature with its steps and line numbers.
func ShowOutline(w io.Writer, o *parser.Outline) {
	fmt.Fprintln(w, keywordStyle.Render("Feature:")+" "+headerStyle.Render(o.Name))
	if o.Comment != "" {
		for _, line := range strings.Split(o.Comment, "\n") {
			fmt.Fprintln(w, faintStyle.Render(line))
		}
	}
	if o.Background != nil {
		fmt.Fprintln(w)
		showCase(w, *o.Background)
	}
	for _, sc := range o.Scenarios {
		fmt.Fprintln(w)
		showCase(w, sc)
	}
}

func showCase(w io.Writer, c parser.CaseOutline) {
	header := keywordStyle.Render(c.Keyword + ":")
	if c.Name != "" {
		header += " " + c.Name
	}
	fmt.Fprintf(w, "%s  %s\n", header, faintStyle.Render(fmt.Sprintf("line %d", c.Line)))
	for _, s := range c.Steps {
		fmt.Fprintf(w, "  %-5s %s  %s\n", keywordStyle.Render(s.Keyword), s.Text, faintStyle.Render(fmt.Sprintf("line %d", s.Line)))
	}
}

// ListRow prints one recorded run, padding columns to the given widths.
func ListRow(w io.Writer, id, started, path, name string, passed, failed int, pathWidth, nameWidth int) {
	status := passStyle.Render("pass")
	if failed > 0 {
		status = failStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "%s  %s  %-*s  %-*s  %s  %d/%d\n",
		faintStyle.Render(id), started, pathWidth, path, nameWidth, name, status, passed, passed+failed)
}

// StatusRow prints the latest outcome of one feature file.
func StatusRow(w io.Writer, path string, passed, failed int) {
	status := passStyle.Render("pass")
	if failed > 0 {
		status = failStyle.Render("FAIL")
	}
	fmt.Fprintf(w, "  %s  %s  %d/%d\n", status, path, passed, passed+failed)
}
