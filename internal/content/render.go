package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Heading 是渲染后正文中的一个标题。
type Heading struct {
	Slug  string `json:"slug"`
	Text  string `json:"text"`
	Depth int    `json:"depth"`
}

// Rendered 汇总 markdown 渲染结果。
type Rendered struct {
	HTML     string    `json:"html"`
	Headings []Heading `json:"headings"`
}

// Renderer converts markdown bodies to sanitized HTML and collects headings.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewRenderer builds the markdown pipeline used for every collection.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithXHTML(), html.WithUnsafe()),
		),
		sanitizer: newSanitizer(),
	}
}

// Render parses body once, walks the AST for headings and renders HTML.
func (r *Renderer) Render(body string) (*Rendered, error) {
	source := []byte(expandVideoEmbeds(body))
	pctx := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	doc := r.md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	headings := make([]Heading, 0)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		headings = append(headings, Heading{
			Slug:  headingID(heading),
			Text:  strings.TrimSpace(nodeText(heading, source)),
			Depth: heading.Level,
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, err
	}

	return &Rendered{
		HTML:     string(r.sanitizer.SanitizeBytes(buf.Bytes())),
		Headings: headings,
	}, nil
}

func headingID(h *ast.Heading) string {
	raw, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}

func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	collectText(n, source, &buf)
	return buf.String()
}

func collectText(n ast.Node, source []byte, buf *bytes.Buffer) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch v := child.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		default:
			collectText(child, source, buf)
		}
	}
}
