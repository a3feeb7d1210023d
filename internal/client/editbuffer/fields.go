package editbuffer

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrUnknownField  = errors.New("unknown form field")
	ErrUnknownSocial = errors.New("unknown social network")
)

// Field names a buffered scalar form field.
type Field string

const (
	FieldAbout     Field = "about"
	FieldVideoURL  Field = "video_url"
	FieldGoogleURL Field = "google_url"
)

// SocialKey names a supported social network.
type SocialKey string

const (
	SocialInstagram SocialKey = "instagram"
	SocialYouTube   SocialKey = "youtube"
	SocialTikTok    SocialKey = "tiktok"
	SocialFacebook  SocialKey = "facebook"
	SocialLinkedIn  SocialKey = "linkedin"
)

// SocialKeys lists the networks in display order.
var SocialKeys = []SocialKey{SocialInstagram, SocialYouTube, SocialTikTok, SocialFacebook, SocialLinkedIn}

// ParseSocialKey accepts a network name as typed by the user.
func ParseSocialKey(s string) (SocialKey, error) {
	for _, k := range SocialKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSocial, s)
}

// ParseField accepts a field name as typed by the user.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldAbout, FieldVideoURL, FieldGoogleURL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Socials maps a network to its link. A missing key means no link.
type Socials map[SocialKey]string

// Fields is the buffered subset of the restaurant document.
type Fields struct {
	About     string
	VideoURL  string
	GoogleURL string
	Socials   Socials
}

// Clone returns a deep copy; the Socials map of the copy is never nil.
func (f Fields) Clone() Fields {
	out := f
	out.Socials = make(Socials, len(f.Socials))
	maps.Copy(out.Socials, f.Socials)
	return out
}

// Equal reports whether both field sets hold the same values. A nil and
// an empty Socials map compare equal.
func (f Fields) Equal(o Fields) bool {
	return f.About == o.About &&
		f.VideoURL == o.VideoURL &&
		f.GoogleURL == o.GoogleURL &&
		maps.Equal(f.Socials, o.Socials)
}

func (f *Fields) set(field Field, value string) error {
	switch field {
	case FieldAbout:
		f.About = value
	case FieldVideoURL:
		f.VideoURL = value
	case FieldGoogleURL:
		f.GoogleURL = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Get returns the value of field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldAbout:
		return f.About
	case FieldVideoURL:
		return f.VideoURL
	case FieldGoogleURL:
		return f.GoogleURL
	}
	return ""
}
