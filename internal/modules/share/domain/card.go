package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	Title     = "10 Second Calm"
	Quote     = "A small pause changes a whole day."
	PromoText = "I did my 10 seconds today. Join me."
	Footer    = "Stay calm. Stay consistent."
	FileName  = "10secondcalm.png"
	noDate    = "—"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps anything but "light" to dark, the default theme.
func ParseTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Card is everything the card surface shows. Values arrive validated.
type Card struct {
	Streak   int
	LastDate string
	HasLast  bool
	Theme    Theme
	Quote    string
}

func (c Card) StreakText() string {
	return fmt.Sprintf("%d days", c.Streak)
}

func (c Card) LastDateText() string {
	if !c.HasLast {
		return noDate
	}
	return c.LastDate
}

// Palette holds the card colors as #rrggbb strings.
type Palette struct {
	Background [3]string
	Backdrop   string
	Text       string
	Sub        string
	Hint       string
	Orb        [3]string
	Glow       string
	GlowAlpha  float64
}

func PaletteFor(theme Theme) Palette {
	if theme == ThemeLight {
		return Palette{
			Background: [3]string{"#ffffff", "#eef2ff", "#dbeafe"},
			Backdrop:   "#ffffff",
			Text:       "#111827",
			Sub:        "#374151",
			Hint:       "#6b7280",
			Orb:        [3]string{"#60a5fa", "#93c5fd", "#2563eb"},
			Glow:       "#2563eb",
			GlowAlpha:  0.35,
		}
	}
	return Palette{
		Background: [3]string{"#1e293b", "#334155", "#3b82f6"},
		Backdrop:   "#0f172a",
		Text:       "#ffffff",
		Sub:        "#cbd5e1",
		Hint:       "#94a3b8",
		Orb:        [3]string{"#60a5fa", "#818cf8", "#1e40af"},
		Glow:       "#3b82f6",
		GlowAlpha:  0.45,
	}
}

type Platform string

const (
	PlatformWeb      Platform = "web"
	PlatformX        Platform = "x"
	PlatformFacebook Platform = "facebook"
	PlatformLinkedIn Platform = "linkedin"
	PlatformReddit   Platform = "reddit"
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	PlatformEmail    Platform = "email"
)

var platformLabels = map[Platform]string{
	PlatformWeb:      "Link",
	PlatformX:        "X/Twitter",
	PlatformFacebook: "Facebook",
	PlatformLinkedIn: "LinkedIn",
	PlatformReddit:   "Reddit",
	PlatformWhatsApp: "WhatsApp",
	PlatformTelegram: "Telegram",
	PlatformEmail:    "Email",
}

// Platforms lists every share target in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformWeb, PlatformX, PlatformFacebook, PlatformLinkedIn,
		PlatformReddit, PlatformWhatsApp, PlatformTelegram, PlatformEmail,
	}
}

func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p Platform) Known() bool {
	_, ok := platformLabels[p]
	return ok
}

// Link builds <origin>/?streak=<n>&date=<YYYY-MM-DD>.
func Link(origin string, streak int, day string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return "", fmt.Errorf("parse origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("origin %q must be an absolute URL", origin)
	}
	base := u.Scheme + "://" + u.Host
	return base + "/?streak=" + strconv.Itoa(streak) + "&date=" + escape(day), nil
}

// TargetURL returns the outbound share URL for p. Unknown platforms get the
// link itself.
func TargetURL(p Platform, link string) string {
	text := escape(PromoText)
	u := escape(link)
	title := escape(Title)
	switch p {
	case PlatformX:
		return "https://twitter.com/intent/tweet?text=" + text + "&url=" + u
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + u
	case PlatformLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + u
	case PlatformReddit:
		return "https://www.reddit.com/submit?url=" + u + "&title=" + title
	case PlatformWhatsApp:
		return "https://api.whatsapp.com/send?text=" + text + "%20" + u
	case PlatformTelegram:
		return "https://t.me/share/url?url=" + u + "&text=" + text
	case PlatformEmail:
		return "mailto:?subject=" + title + "&body=" + text + "%20" + u
	default:
		return link
	}
}

// escape percent-encodes a query component, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
