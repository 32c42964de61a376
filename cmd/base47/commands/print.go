package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/base47/internal/ui/output"
	"go.trai.ch/base47/internal/ui/style"
	"go.trai.ch/zerr"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errUnknownFormat = zerr.New("unknown output format, expected 'text' or 'json'")

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return zerr.With(errUnknownFormat, "format", format)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		Headers(headers...).
		Rows(rows...)
	_, _ = fmt.Fprintln(w, t.String())
}

// marker renders an on/off switch as a colored icon.
func marker(out *termenv.Output, on bool) string {
	if on {
		return out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	}
	return out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Slate))).String()
}

func success(w io.Writer, msg string) {
	out := output.New(w)
	_, _ = fmt.Fprintln(w, out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()+" "+msg)
}
