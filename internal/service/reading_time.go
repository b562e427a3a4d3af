package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const wordsPerMinute = 200

var tagStripper = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// WordCount strips HTML tags and counts whitespace separated tokens.
func WordCount(body string) int {
	if strings.TrimSpace(body) == "" {
		return 0
	}
	return len(strings.Fields(tagStripper.Sanitize(body)))
}

// ReadingMinutes rounds words/200 to the nearest minute, never below 1.
func ReadingMinutes(words int) int {
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ReadingTime formats the estimate shown next to entries, e.g. "3 min read".
func ReadingTime(words int) string {
	return fmt.Sprintf("%d min read", ReadingMinutes(words))
}
