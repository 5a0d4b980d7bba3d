package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Garik-/mididecode/pkg/midi"
	"github.com/charmbracelet/lipgloss"
	gomidi "gitlab.com/gomidi/midi/v2"
)

var (
	locationStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rawStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	categoryStyle     = lipgloss.NewStyle().Bold(true).Width(16)
	malformedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	unrecognizedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	refStyle          = lipgloss.NewStyle().Faint(true)
)

type printer struct {
	w   io.Writer
	ref bool
}

func newPrinter(w io.Writer, ref bool) *printer {
	return &printer{w: w, ref: ref}
}

func (p *printer) print(location string, raw []byte, m midi.Message, err error) {
	parts := []string{
		locationStyle.Render(fmt.Sprintf("%-20s", location)),
		rawStyle.Render(fmt.Sprintf("%-12s", fmt.Sprintf("% x", raw))),
	}

	switch {
	case midi.IsMalformed(err):
		parts = append(parts, malformedStyle.Render(err.Error()))
	case err != nil:
		parts = append(parts, unrecognizedStyle.Render(err.Error()))
	default:
		parts = append(parts, categoryStyle.Render(m.Category().String()), m.String())
	}

	if p.ref {
		parts = append(parts, refStyle.Render("ref: "+gomidi.Message(raw).String()))
	}

	fmt.Fprintln(p.w, strings.Join(parts, " "))
}
