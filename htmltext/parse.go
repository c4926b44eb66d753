package htmltext

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ethitter/gutenberg/richtext"
)

// Parse converts an HTML fragment into a rich-text value. Element nesting
// becomes per-character format stacks (outermost element first), <br>
// becomes a newline, and when multilineTag is non-empty, top-level elements
// of that tag become segments joined by the line separator. Whitespace runs
// in text are collapsed to a single space unless preserveWhitespace is set.
//
// The returned value has a collapsed caret at offset 0 and carries the
// multiline tag.
func Parse(markup, multilineTag string, preserveWhitespace bool) (richtext.Value, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return richtext.Value{}, fmt.Errorf("parsing html: %w", err)
	}

	b := &builder{preserve: preserveWhitespace}
	if multilineTag == "" {
		for _, n := range nodes {
			b.walk(n, nil)
		}
	} else {
		first := true
		for _, n := range nodes {
			if n.Type == html.TextNode && !preserveWhitespace && strings.TrimSpace(n.Data) == "" {
				// Formatting whitespace between wrapper elements.
				continue
			}
			if n.Type == html.ElementNode && n.Data == multilineTag {
				if !first {
					b.append(richtext.LineSeparator, nil)
				}
				first = false
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					b.walk(c, nil)
				}
				continue
			}
			first = false
			b.walk(n, nil)
		}
	}

	return richtext.Value{
		Text:         b.text,
		Formats:      b.formats,
		MultilineTag: multilineTag,
	}, nil
}

// builder accumulates characters and their format stacks.
type builder struct {
	text     []rune
	formats  [][]richtext.Format
	preserve bool
}

func (b *builder) append(r rune, stack []richtext.Format) {
	b.text = append(b.text, r)
	if len(stack) == 0 {
		b.formats = append(b.formats, nil)
	} else {
		b.formats = append(b.formats, append([]richtext.Format(nil), stack...))
	}
}

func (b *builder) walk(n *html.Node, stack []richtext.Format) {
	switch n.Type {
	case html.TextNode:
		data := n.Data
		if !b.preserve {
			data = collapseWhitespace(data)
		}
		for _, r := range data {
			b.append(r, stack)
		}
	case html.ElementNode:
		if n.Data == "br" {
			b.append('\n', stack)
			return
		}
		childStack := append(append([]richtext.Format(nil), stack...), richtext.Format{
			Type:       n.Data,
			Attributes: attrMap(n),
		})
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.walk(c, childStack)
		}
	}
	// Comments, doctypes and the rest contribute nothing.
}

func attrMap(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

// collapseWhitespace reduces every whitespace run to a single space, the
// way HTML rendering treats text outside preformatted contexts.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	inRun := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inRun {
				sb.WriteByte(' ')
				inRun = true
			}
		default:
			sb.WriteRune(r)
			inRun = false
		}
	}
	return sb.String()
}
