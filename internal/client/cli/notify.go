package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/FBurak/Restaurant-Web/internal/client/console"
	"github.com/fatih/color"
)

// colorNotifier prints transient notices as coloured lines.
type colorNotifier struct {
	w       io.Writer
	success *color.Color
	info    *color.Color
	failure *color.Color
}

func newColorNotifier(w io.Writer) *colorNotifier {
	return &colorNotifier{
		w:       w,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (n *colorNotifier) Notify(note console.Notice) {
	switch note.Level {
	case console.LevelSuccess:
		n.success.Fprintln(n.w, "✔ "+note.Text)
	case console.LevelError:
		n.failure.Fprintln(n.w, "✘ "+note.Text)
	default:
		n.info.Fprintln(n.w, "• "+note.Text)
	}
}

func printBanner(w io.Writer, restaurantID string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(w, "Restaurant admin console")
	fmt.Fprintf(w, " for %s (type 'help' for commands)\n", restaurantID)
}

// report shows err unless the console session already did.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	var oe *console.OpError
	if !errors.As(err, &oe) {
		a.notifier.Notify(console.Notice{Level: console.LevelError, Text: err.Error(), Err: err})
	}
	return err
}

func (a *App) info(text string) {
	a.notifier.Notify(console.Notice{Level: console.LevelInfo, Text: text})
}
