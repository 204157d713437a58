package style

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/wincross/wincross/pkg/errors"
)

// Status of a diagnostic line.
type Status string

const (
	StatusOK      Status = "ok"
	StatusProblem Status = "problem"
)

// StatusStyle returns the pterm style for a diagnostic status.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusProblem:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderStatusLine renders "<indicator> <label>: <message>".
func RenderStatusLine(status Status, label, message string) string {
	indicator := SuccessIndicator
	if status == StatusProblem {
		indicator = ErrorIndicator
	}
	return fmt.Sprintf("%s %s: %s", indicator, StatusStyle(status).Sprint(label), message)
}

// RenderError formats an error for the terminal, naming its code when it
// carries one.
func RenderError(err error) string {
	if err == nil {
		return ""
	}
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return ErrorStyle.Render("Error:") + " " + err.Error()
	}
	var wErr *errors.WincrossError
	msg := err.Error()
	if stderrors.As(err, &wErr) {
		msg = wErr.Message
		if wErr.Wrapped != nil {
			msg += ": " + wErr.Wrapped.Error()
		}
	}
	return ErrorStyle.Render("Error:") + " " + msg + " " + MutedStyle.Render("["+string(code)+"]")
}

// PrintError writes the rendered error followed by a newline.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, RenderError(err))
}
