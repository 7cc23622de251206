// File: debugx.go
// Title: Debug Printer
// Description: Options, Render, Fprint and Print.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package debugx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/stringx"
)

// Styler decorates the header and footer lines, for example with terminal colours
type Styler func(line string) string

// Options control the frame of a debug block
type Options struct {
	Header    string
	Separator string
	Length    int
	Style     Styler
}

// DefaultOptions returns a header of "debug" framed by 50 "=" characters
func DefaultOptions() Options {
	return Options{
		Header:    "debug",
		Separator: "=",
		Length:    50,
	}
}

// Render returns the debug block for v
func Render(v interface{}, opts Options) string {
	length := opts.Length
	if length < 0 {
		length = 0
	}

	header := stringx.PadBoth(strings.ToUpper(" "+opts.Header+" "), length, opts.Separator)
	footer := strings.Repeat(opts.Separator, length)
	if opts.Style != nil {
		header = opts.Style(header)
		footer = opts.Style(footer)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(encode(v))
	b.WriteString("\n")
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

// Fprint writes the debug block for v to w
func Fprint(w io.Writer, v interface{}, opts Options) error {
	_, err := io.WriteString(w, Render(v, opts))
	return err
}

// Print writes the debug block for v to standard output
func Print(v interface{}, opts Options) {
	_ = Fprint(os.Stdout, v, opts)
}

// encode returns v as JSON indented by four spaces, or "" if v cannot be encoded
func encode(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(v); err != nil {
		mdwlog.GetDefault().DebugWithErr("debug value not encodable", err, mdwlog.Fields{
			"type": fmt.Sprintf("%T", v),
		})
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
