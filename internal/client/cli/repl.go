package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Show(ctx context.Context) error

	EditField(ctx context.Context, name, value string) error
	SetSocial(ctx context.Context, network, value string) error
	Save(ctx context.Context) error
	Discard(ctx context.Context) error

	SetName(ctx context.Context, name string) error
	ToggleVisibility(ctx context.Context) error
	SetHeader(ctx context.Context, path string) error
	ClearHeader(ctx context.Context) error

	AddGalleryImage(ctx context.Context, path string) error
	RemoveGalleryImage(ctx context.Context, id string) error

	AddPassword(ctx context.Context) error
	SetPasswordTitle(ctx context.Context, id, title string) error
	SetPasswordValue(ctx context.Context, id, value string) error
	TogglePassword(ctx context.Context, id string) error
	DeletePassword(ctx context.Context, id string) error
}

const helpSignedOut = "Available commands: login, exit"

const helpSignedIn = `Available commands:
  show                          show the website content
  about [markdown]              edit the about text
  video [url] | google [url]    edit a link (no url clears it)
  social <network> [url]        instagram, youtube, tiktok, facebook, linkedin
  save | discard                write or drop unsaved form edits
  name <text>                   rename the restaurant
  visible                       toggle website visibility
  header <path> | header clear  set or clear the header image
  gallery add <path> | gallery rm <id>
  pw add | pw title <id> <text> | pw value <id> <text> | pw toggle <id> | pw rm <id>
  logout | exit`

// rest joins everything after the first n fields of line.
func rest(line string, n int) string {
	s := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		_, after, found := strings.Cut(s, " ")
		if !found {
			return ""
		}
		s = strings.TrimSpace(after)
	}
	return s
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands and missing
// arguments are reported back to the user. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rc (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := func(i int) string {
			if i < len(parts) {
				return parts[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "show", "s":
			_ = a.Show(ctx)

		case "about":
			_ = a.EditField(ctx, "about", rest(line, 1))

		case "video":
			_ = a.EditField(ctx, "video_url", arg(1))

		case "google":
			_ = a.EditField(ctx, "google_url", arg(1))

		case "social":
			if len(parts) < 2 {
				printlnFn("Usage: social <network> [url]")
				continue
			}
			_ = a.SetSocial(ctx, parts[1], arg(2))

		case "save":
			_ = a.Save(ctx)

		case "discard":
			_ = a.Discard(ctx)

		case "name":
			if len(parts) < 2 {
				printlnFn("Usage: name <text>")
				continue
			}
			_ = a.SetName(ctx, rest(line, 1))

		case "visible":
			_ = a.ToggleVisibility(ctx)

		case "header":
			switch {
			case len(parts) < 2:
				printlnFn("Usage: header <path> | header clear")
			case parts[1] == "clear":
				_ = a.ClearHeader(ctx)
			default:
				_ = a.SetHeader(ctx, rest(line, 1))
			}

		case "gallery":
			switch {
			case len(parts) >= 3 && parts[1] == "add":
				_ = a.AddGalleryImage(ctx, rest(line, 2))
			case len(parts) == 3 && parts[1] == "rm":
				_ = a.RemoveGalleryImage(ctx, parts[2])
			default:
				printlnFn("Usage: gallery add <path> | gallery rm <id>")
			}

		case "pw":
			runPasswordCommand(ctx, a, parts, line)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func runPasswordCommand(ctx context.Context, a execIface, parts []string, line string) {
	sub := ""
	if len(parts) > 1 {
		sub = parts[1]
	}

	switch {
	case sub == "add":
		_ = a.AddPassword(ctx)
	case sub == "title" && len(parts) >= 4:
		_ = a.SetPasswordTitle(ctx, parts[2], rest(line, 3))
	case sub == "value" && len(parts) >= 4:
		_ = a.SetPasswordValue(ctx, parts[2], rest(line, 3))
	case sub == "toggle" && len(parts) == 3:
		_ = a.TogglePassword(ctx, parts[2])
	case sub == "rm" && len(parts) == 3:
		_ = a.DeletePassword(ctx, parts[2])
	default:
		printlnFn("Usage: pw add | pw title <id> <text> | pw value <id> <text> | pw toggle <id> | pw rm <id>")
	}
}
