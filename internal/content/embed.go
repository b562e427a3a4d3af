package content

import (
	"fmt"
	htmlstd "html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	embedLinePattern = regexp.MustCompile(`^<?(https?://[^\s<>]+)>?$`)
	embedSrcPattern  = regexp.MustCompile(`^https://(?:www\.youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)`)
	embedTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`)
	orderedListItem  = regexp.MustCompile(`^\d+\.\s+`)
	headingIDPattern = regexp.MustCompile(`^[\p{L}\p{N}\p{M}_-]+$`)
)

// videoEmbed 是一行独立视频链接解析出的播放器信息。
type videoEmbed struct {
	Platform string
	Source   string
	EmbedURL string
}

// newSanitizer extends the UGC policy with unicode heading ids and the
// markup produced by expandVideoEmbeds. Iframes are only kept for known
// player origins.
func newSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Matching(headingIDPattern).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowElements("iframe")
	policy.AllowAttrs("class", "data-video-platform", "data-video-source").OnElements("div")
	policy.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

// expandVideoEmbeds replaces lines holding nothing but a YouTube or Vimeo
// link with a player block. Code blocks, quotes and list items are left alone.
func expandVideoEmbeds(markdown string) string {
	if !strings.Contains(markdown, "http") {
		return markdown
	}

	lines := strings.Split(markdown, "\n")
	fence := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
			continue
		}
		if fence != "" || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, ">") || isListItem(trimmed) {
			continue
		}

		match := embedLinePattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		if embed, ok := parseVideoEmbed(match[1]); ok {
			lines[i] = embed.html()
		}
	}
	return strings.Join(lines, "\n")
}

func fenceMarker(line string) string {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(line, marker) {
			return marker
		}
	}
	return ""
}

func isListItem(line string) bool {
	for _, bullet := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, bullet) {
			return true
		}
	}
	return orderedListItem.MatchString(line)
}

func parseVideoEmbed(raw string) (videoEmbed, bool) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return videoEmbed{}, false
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be" || hostWithin(host, "youtube.com"):
		return parseYouTube(u, raw)
	case hostWithin(host, "vimeo.com"):
		return parseVimeo(u, raw)
	default:
		return videoEmbed{}, false
	}
}

func parseYouTube(u *url.URL, source string) (videoEmbed, bool) {
	path := strings.Trim(u.Path, "/")
	videoID := ""
	if strings.ToLower(u.Hostname()) == "youtu.be" {
		videoID = path
	} else if path == "watch" {
		videoID = u.Query().Get("v")
	} else {
		for _, prefix := range []string{"shorts/", "embed/", "live/"} {
			if strings.HasPrefix(path, prefix) {
				videoID = strings.TrimPrefix(path, prefix)
				break
			}
		}
	}
	videoID, _, _ = strings.Cut(videoID, "/")
	if videoID == "" {
		return videoEmbed{}, false
	}

	params := url.Values{}
	params.Set("rel", "0")
	if start := youTubeStart(u.Query()); start > 0 {
		params.Set("start", strconv.Itoa(start))
	}
	return videoEmbed{
		Platform: "youtube",
		Source:   source,
		EmbedURL: "https://www.youtube-nocookie.com/embed/" + url.PathEscape(videoID) + "?" + params.Encode(),
	}, true
}

func parseVimeo(u *url.URL, source string) (videoEmbed, bool) {
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	videoID := segments[len(segments)-1]
	if videoID == "" || strings.Trim(videoID, "0123456789") != "" {
		return videoEmbed{}, false
	}
	return videoEmbed{
		Platform: "vimeo",
		Source:   source,
		EmbedURL: "https://player.vimeo.com/video/" + videoID,
	}, true
}

// youTubeStart 解析 t / start 参数，支持纯秒数与 1h2m3s 形式。
func youTubeStart(query url.Values) int {
	value := query.Get("start")
	if value == "" {
		value = query.Get("t")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return max(seconds, 0)
	}

	total := 0
	for _, m := range embedTimePattern.FindAllStringSubmatch(value, -1) {
		n, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func (e videoEmbed) html() string {
	return fmt.Sprintf(
		`<div class="video-embed" data-video-platform="%s" data-video-source="%s">`+
			`<iframe src="%s" title="%s video player" loading="lazy" allow="encrypted-media; picture-in-picture; web-share" allowfullscreen referrerpolicy="strict-origin-when-cross-origin"></iframe>`+
			`</div>`,
		htmlstd.EscapeString(e.Platform),
		htmlstd.EscapeString(e.Source),
		htmlstd.EscapeString(e.EmbedURL),
		htmlstd.EscapeString(e.Platform),
	)
}

func hostWithin(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
