package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gamh86/exifer"
)

const labelWidth = 20

type printer struct {
	w       io.Writer
	section *color.Color
	label   *color.Color
	value   *color.Color
	wiped   *color.Color
	note    *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:       w,
		section: color.New(color.Underline, color.Bold, color.FgHiBlack),
		label:   color.New(color.FgWhite),
		value:   color.New(color.FgRed),
		wiped:   color.New(color.CrossedOut, color.Faint, color.FgRed),
		note:    color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.section, p.label, p.value, p.wiped, p.note} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) warn(msg string) {
	_, _ = p.note.Fprintln(p.w, msg)
}

func (p *printer) report(path string, r *exifer.Report) {
	if r == nil {
		return
	}
	_, _ = fmt.Fprintln(p.w)
	_, _ = p.section.Fprintln(p.w, path)
	if !r.Segment.Found() {
		p.warn("no EXIF data found")
		return
	}
	if !r.OrderDetected {
		p.warn(fmt.Sprintf("byte order mark not found, assuming %s", r.Order))
	}
	p.fields("Date/Time", r.Dates)
	p.fields("Device", r.Device)
	p.fields("Miscellaneous", r.Misc)
	wiped := 0
	for _, f := range r.Fields() {
		if f.Wiped {
			wiped++
		}
	}
	_, _ = fmt.Fprintf(p.w, "\n%d field(s) found, %d wiped\n", r.Count(), wiped)
}

func (p *printer) fields(title string, fields []exifer.Field) {
	if len(fields) == 0 {
		return
	}
	_, _ = fmt.Fprintln(p.w)
	_, _ = p.section.Fprintln(p.w, title)
	for _, f := range fields {
		_, _ = p.label.Fprintf(p.w, "%*s ", labelWidth, f.Label+":")
		if f.Wiped {
			_, _ = p.wiped.Fprintln(p.w, f.Value)
		} else {
			_, _ = p.value.Fprintln(p.w, f.Value)
		}
	}
}
