package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/client/editbuffer"
	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/fatih/color"
)

const unset = "-"

func orUnset(s string) string {
	if s == "" {
		return unset
	}
	return s
}

func renderProfile(w io.Writer, p *models.Profile, buf editbuffer.Fields, st editbuffer.State) {
	bold := color.New(color.Bold)
	if p == nil {
		fmt.Fprintln(w, "No restaurant loaded")
		return
	}

	bold.Fprintln(w, p.Name)
	visible := color.GreenString("visible")
	if !p.IsVisible {
		visible = color.YellowString("hidden")
	}
	fmt.Fprintf(w, "  site:    %s\n", visible)
	fmt.Fprintf(w, "  header:  %s\n", orUnset(models.Value(p.HeaderImageURL)))

	state := color.GreenString(st.String())
	if st == editbuffer.Dirty {
		state = color.YellowString(st.String())
	}
	bold.Fprintf(w, "Form (%s)\n", state)
	fmt.Fprintf(w, "  about:   %s\n", orUnset(preview(buf.About, 72)))
	fmt.Fprintf(w, "  video:   %s\n", orUnset(buf.VideoURL))
	fmt.Fprintf(w, "  google:  %s\n", orUnset(buf.GoogleURL))
	for _, k := range editbuffer.SocialKeys {
		fmt.Fprintf(w, "  %-8s %s\n", string(k)+":", orUnset(buf.Socials[k]))
	}
}

func renderGallery(w io.Writer, items []models.GalleryItem) {
	color.New(color.Bold).Fprintf(w, "Gallery (%d)\n", len(items))
	for _, it := range items {
		fmt.Fprintf(w, "  [%s] #%d %s\n", it.ID, it.SortOrder, it.URL)
	}
}

func renderPasswords(w io.Writer, items []models.PasswordItem) {
	color.New(color.Bold).Fprintf(w, "Passwords (%d)\n", len(items))
	for _, it := range items {
		mark := ""
		if it.Hidden {
			mark = color.YellowString(" (hidden, locked)")
		}
		fmt.Fprintf(w, "  [%s] %s: %s%s\n", it.ID, it.Title, it.Value, mark)
	}
}

// preview shortens multi-line text to its first line.
func preview(s string, n int) string {
	s, _, _ = strings.Cut(s, "\n")
	if len(s) > n {
		return s[:n] + "…"
	}
	return s
}
