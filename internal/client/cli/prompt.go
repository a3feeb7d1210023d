package cli

import (
	"errors"
	"io"
	"os"

	"github.com/FBurak/Restaurant-Web/internal/client/console"
	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"
)

// Interactive widgets are package variables so tests can replace them.
var (
	runSelect = func(label string, items []string) (int, error) {
		p := promptui.Select{Label: label, Items: items}
		i, _, err := p.Run()
		return i, err
	}

	runConfirm = func(label string) (bool, error) {
		p := promptui.Prompt{Label: label, IsConfirm: true}
		if _, err := p.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}

	newProgress = func(size int64, desc string) io.Writer {
		return progressbar.NewOptions64(size,
			progressbar.OptionSetDescription(desc),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	}
)

const (
	choiceDelete = "Delete"
	choiceKeep   = "Keep"
)

// discardChooser asks Delete or Keep. Esc, Ctrl-C and end of input close
// the prompt without a choice.
var discardChooser = console.ChooserFunc(func() (console.Choice, error) {
	i, err := runSelect("You have unsaved changes", []string{choiceDelete, choiceKeep})
	if err != nil {
		return console.ChoiceClose, err
	}
	if i == 0 {
		return console.ChoiceDelete, nil
	}
	return console.ChoiceKeep, nil
})

// progressFor returns a progress bar sized for the file at path, or nil
// when the file cannot be inspected. The upload reports that error itself.
func progressFor(path, desc string) io.Writer {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return nil
	}
	return newProgress(fi.Size(), desc)
}
