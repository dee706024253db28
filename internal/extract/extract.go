// Package extract turns HTML and Markdown documents into plain text with
// blank lines between blocks, so paragraph breaks survive segmentation.
package extract

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
)

// Format names an input format.
type Format string

const (
	Text     Format = "text"
	HTML     Format = "html"
	Markdown Format = "markdown"
)

// ParseFormat accepts the format names used on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "txt", "plain":
		return Text, nil
	case "html", "htm":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", internalerr.ErrInvalidInput, name)
}

// Extract converts src according to f.
func Extract(f Format, src []byte) (string, error) {
	switch f {
	case Text:
		return string(src), nil
	case HTML:
		return FromHTML(string(src))
	case Markdown:
		return FromMarkdown(src), nil
	}
	return "", fmt.Errorf("%w: unknown format %q", internalerr.ErrInvalidInput, f)
}

var htmlBlocks = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "header": true, "footer": true,
	"blockquote": true, "li": true, "ul": true, "ol": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "pre": true,
}

var htmlSkip = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "head": true,
}

// FromHTML returns the text content of an HTML document.
func FromHTML(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if htmlSkip[n.Data] {
				return
			}
			if n.Data == "br" {
				buf.WriteString("\n")
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && htmlBlocks[n.Data] {
			buf.WriteString("\n\n")
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String()), nil
}

// FromMarkdown returns the text of paragraphs, headings and list items.
// Inline markup is kept as written; code and raw HTML blocks are dropped.
func FromMarkdown(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			lines := n.Lines()
			parts := make([]string, 0, lines.Len())
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				parts = append(parts, strings.TrimRight(string(seg.Value(src)), "\r\n"))
			}
			if block := strings.Join(parts, "\n"); strings.TrimSpace(block) != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}
