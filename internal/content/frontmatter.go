package content

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// parseDocument splits a markdown file into front matter fields and body.
// Files without front matter yield an empty field map.
func parseDocument(raw []byte) (map[string]interface{}, string, error) {
	fields := map[string]interface{}{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fields)
	if err != nil {
		return nil, "", err
	}
	return fields, strings.TrimSpace(string(body)), nil
}

func fieldString(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case fmt.Stringer:
			return v.String()
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func fieldBool(fields map[string]interface{}, key string) bool {
	switch v := fields[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

func fieldInt(fields map[string]interface{}, key string) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(math.Round(v))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return parsed
		}
	}
	return 0
}

func fieldStrings(fields map[string]interface{}, key string) []string {
	switch v := fields[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// fieldTime accepts both decoded timestamps (TOML) and date strings (YAML).
func fieldTime(fields map[string]interface{}, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		switch v := fields[key].(type) {
		case time.Time:
			return v, true
		case string:
			raw := strings.TrimSpace(v)
			if raw == "" {
				continue
			}
			for _, layout := range dateLayouts {
				if parsed, err := time.Parse(layout, raw); err == nil {
					return parsed, true
				}
			}
		}
	}
	return time.Time{}, false
}
