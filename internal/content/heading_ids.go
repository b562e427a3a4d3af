package content

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// headingIDs generates github-slugger style ids: lower case, letters of any
// script kept, punctuation dropped, spaces turned into "-". Repeats get a
// numeric suffix. One instance serves one document.
type headingIDs struct {
	used map[string]struct{}
}

var _ parser.IDs = (*headingIDs)(nil)

func newHeadingIDs() *headingIDs {
	return &headingIDs{used: map[string]struct{}{}}
}

func (h *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := slugify(string(value))
	if base == "" {
		base = "heading"
	}
	slug := base
	for i := 1; ; i++ {
		if _, taken := h.used[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(i)
	}
	h.used[slug] = struct{}{}
	return []byte(slug)
}

// Put 记录显式写出的 id，避免自动生成时重复。
func (h *headingIDs) Put(value []byte) {
	h.used[string(value)] = struct{}{}
}

func slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
