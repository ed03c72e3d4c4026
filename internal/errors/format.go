package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

var colorEnabled = true

// SetColor enables or disables ANSI colors in Format.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format renders the error for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString(paint(colorRed+colorBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(paint(colorBold, " "+e.Code))
	}
	b.WriteString(": " + e.Message + "\n")

	if e.Location != nil {
		b.WriteString("\n  " + paint(colorCyan, e.Location.String()) + "\n")
		e.writeContext(&b)
	}

	if e.Detail != "" {
		b.WriteString("\n")
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  " + line + "\n")
		}
	}

	if e.Wrapped != nil {
		b.WriteString("\n  " + paint(colorGray, "Cause: ") + e.Wrapped.Error() + "\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  " + paint(colorBlue, "Hint: ") + e.Suggestion + "\n")
	}
	return b.String()
}

func (e *Error) writeContext(b *strings.Builder) {
	if len(e.Context) == 0 {
		return
	}
	b.WriteString("\n")
	for i, line := range e.Context {
		n := e.contextStart + i
		marker := "    "
		if n == e.Location.Line {
			marker = "  " + paint(colorRed, "→ ")
		}
		fmt.Fprintf(b, "%s%4d%s%s\n", marker, n, paint(colorGray, " │ "), line)
		if n == e.Location.Line && e.Location.Column > 0 {
			fmt.Fprintf(b, "        %s%s%s\n", paint(colorGray, "│ "),
				strings.Repeat(" ", e.Location.Column-1), paint(colorRed, "^"))
		}
	}
}

// FormatCompact returns a single-line rendering: "file:line:col: CODE: message".
func (e *Error) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	parts = append(parts, e.Error())
	return strings.Join(parts, ": ")
}

type jsonError struct {
	Code       string    `json:"code,omitempty"`
	Category   Category  `json:"category"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Cause      string    `json:"cause,omitempty"`
}

// MarshalJSON encodes the error for machine-readable CLI output.
func (e *Error) MarshalJSON() ([]byte, error) {
	j := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		j.Cause = e.Wrapped.Error()
	}
	return json.Marshal(j)
}

func wrapText(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Print writes err to w, formatted if it is or wraps an *Error.
func Print(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "%s: %v\n", paint(colorRed+colorBold, "ERROR"), err)
}
