package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"calm/internal/modules/share/domain"
)

func TestLinkFormat(t *testing.T) {
	t.Parallel()
	link, err := domain.Link("https://10secondcalm.app/", 6, "2024-01-02")
	require.NoError(t, err)
	require.Equal(t, "https://10secondcalm.app/?streak=6&date=2024-01-02", link)

	link, err = domain.Link("http://localhost:5173/some/path", 0, "2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5173/?streak=0&date=2024-06-01", link)

	_, err = domain.Link("10secondcalm.app", 1, "2024-06-01")
	require.Error(t, err)
}

func TestTargetURLs(t *testing.T) {
	t.Parallel()
	link := "https://10secondcalm.app/?streak=3&date=2024-06-01"
	enc := "https%3A%2F%2F10secondcalm.app%2F%3Fstreak%3D3%26date%3D2024-06-01"
	text := "I%20did%20my%2010%20seconds%20today.%20Join%20me."
	title := "10%20Second%20Calm"

	want := map[domain.Platform]string{
		domain.PlatformWeb:      link,
		domain.PlatformX:        "https://twitter.com/intent/tweet?text=" + text + "&url=" + enc,
		domain.PlatformFacebook: "https://www.facebook.com/sharer/sharer.php?u=" + enc,
		domain.PlatformLinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + enc,
		domain.PlatformReddit:   "https://www.reddit.com/submit?url=" + enc + "&title=" + title,
		domain.PlatformWhatsApp: "https://api.whatsapp.com/send?text=" + text + "%20" + enc,
		domain.PlatformTelegram: "https://t.me/share/url?url=" + enc + "&text=" + text,
		domain.PlatformEmail:    "mailto:?subject=" + title + "&body=" + text + "%20" + enc,
	}
	require.Len(t, domain.Platforms(), len(want))
	for _, p := range domain.Platforms() {
		require.Equal(t, want[p], domain.TargetURL(p, link), string(p))
	}
	require.Equal(t, link, domain.TargetURL("myspace", link))
}

func TestCardText(t *testing.T) {
	t.Parallel()
	empty := domain.Card{Streak: 0}
	require.Equal(t, "0 days", empty.StreakText())
	require.Equal(t, "—", empty.LastDateText())

	full := domain.Card{Streak: 12, LastDate: "2024-06-01", HasLast: true}
	require.Equal(t, "12 days", full.StreakText())
	require.Equal(t, "2024-06-01", full.LastDateText())
}

func TestParseThemeAndPalettes(t *testing.T) {
	t.Parallel()
	require.Equal(t, domain.ThemeLight, domain.ParseTheme("LIGHT"))
	require.Equal(t, domain.ThemeDark, domain.ParseTheme(""))
	require.Equal(t, domain.ThemeDark, domain.ParseTheme("sepia"))
	require.NotEqual(t, domain.PaletteFor(domain.ThemeDark), domain.PaletteFor(domain.ThemeLight))
	require.Equal(t, "X/Twitter", domain.PlatformX.Label())
	require.False(t, domain.Platform("myspace").Known())
}
