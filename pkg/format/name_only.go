package format

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pkgls/pkg/catalog"
	"github.com/arthur-debert/pkgls/pkg/ui/columns"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var noticeStyle = lipgloss.NewStyle().Bold(true)

// NameOnly prints the package names in terminal-fitted columns. On an
// interactive terminal it is preceded by a one-line package count.
func NameOnly(w io.Writer, names []string, cat catalog.Catalog, opts Options) error {
	if opts.Interactive {
		if _, err := fmt.Fprintln(w, notice(fmt.Sprintf("%d packages.", len(names)))); err != nil {
			return err
		}
	}

	if len(names) == 0 {
		return nil
	}

	ncols, widths := columns.Layout(names, opts.Width)
	return columns.Render(w, names, ncols, widths)
}

// notice styles a status line, falling back to plain text on
// terminals without color support.
func notice(msg string) string {
	msg = "==> " + msg
	if termenv.ColorProfile() == termenv.Ascii {
		return msg
	}
	return noticeStyle.Render(msg)
}
