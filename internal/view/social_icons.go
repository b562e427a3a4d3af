package view

import "strings"

// SocialIcon 描述一个社交平台及其图标名。
type SocialIcon struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DefaultSocialIcon 用于未知平台。
const DefaultSocialIcon = "lucide:link"

var (
	socialIconDefinitions = []SocialIcon{
		{Key: "website", Label: "Website", Icon: "lucide:globe"},
		{Key: "github", Label: "GitHub", Icon: "lucide:github"},
		{Key: "linkedin", Label: "LinkedIn", Icon: "lucide:linkedin"},
		{Key: "email", Label: "Email", Icon: "lucide:mail"},
		{Key: "rss", Label: "RSS", Icon: "lucide:rss"},
	}
	socialIconLookup = func() map[string]SocialIcon {
		lookup := make(map[string]SocialIcon, len(socialIconDefinitions))
		for _, icon := range socialIconDefinitions {
			lookup[icon.Key] = icon
		}
		return lookup
	}()
)

// SocialIcons lists the known platforms in display order.
func SocialIcons() []SocialIcon {
	return append([]SocialIcon(nil), socialIconDefinitions...)
}

// SocialIconFor resolves the icon for a platform name, case-insensitive,
// falling back to DefaultSocialIcon.
func SocialIconFor(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "mail" {
		key = "email"
	}
	if icon, ok := socialIconLookup[key]; ok {
		return icon.Icon
	}
	return DefaultSocialIcon
}
