package view

import "testing"

func TestSocialIconFor(t *testing.T) {
	cases := map[string]string{
		"GitHub":    "lucide:github",
		" linkedin": "lucide:linkedin",
		"Email":     "lucide:mail",
		"mail":      "lucide:mail",
		"RSS":       "lucide:rss",
		"Website":   "lucide:globe",
		"mastodon":  DefaultSocialIcon,
		"":          DefaultSocialIcon,
	}
	for name, want := range cases {
		if got := SocialIconFor(name); got != want {
			t.Fatalf("SocialIconFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSocialIconsReturnsCopy(t *testing.T) {
	icons := SocialIcons()
	if len(icons) != 5 || icons[0].Key != "website" {
		t.Fatalf("unexpected icons: %#v", icons)
	}
	icons[0].Icon = "changed"
	if SocialIconFor("website") != "lucide:globe" {
		t.Fatalf("expected definitions to be unaffected by caller mutation")
	}
}
