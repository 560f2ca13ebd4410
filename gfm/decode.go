package gfm

import (
	"bytes"
	"strings"

	goldmarkast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/yuin/goldmark/extension"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/arcflow-go/richtext/ast"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse decodes GFM source text into a Document. Goldmark's GFM-aware
// parser supplies block and inline tokenization; the only non-obvious
// work here is recognizing slack:// deep links and turning them into
// mention or broadcast nodes. Unknown block constructs degrade to
// paragraphs containing their raw text rather than producing an error.
func Parse(source string) (*ast.Document, error) {
	src := []byte(source)
	root := md.Parser().Parse(text.NewReader(src))

	var blocks []ast.Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		b, err := convertBlock(n, src)
		if err != nil {
			return nil, err
		}
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return ast.NewDocument(blocks...), nil
}

func convertBlocks(parent goldmarkast.Node, src []byte) ([]ast.Node, error) {
	var out []ast.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b, err := convertBlock(n, src)
		if err != nil {
			return nil, err
		}
		if b != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func convertBlock(n goldmarkast.Node, src []byte) (ast.Node, error) {
	switch node := n.(type) {
	case *goldmarkast.Paragraph:
		inlines, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		return ast.NewParagraph(inlines...), nil

	case *goldmarkast.TextBlock:
		inlines, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		return ast.NewParagraph(inlines...), nil

	case *goldmarkast.Heading:
		inlines, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		level := node.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return ast.NewHeading(level, inlines...), nil

	case *goldmarkast.FencedCodeBlock:
		lang := string(node.Language(src))
		content := linesText(node.Lines(), src)
		if lang != "" {
			return ast.NewCodeBlockWithLanguage(content, lang), nil
		}
		return ast.NewCodeBlock(content), nil

	case *goldmarkast.CodeBlock:
		return ast.NewCodeBlock(linesText(node.Lines(), src)), nil

	case *goldmarkast.Blockquote:
		blocks, err := convertBlocks(node, src)
		if err != nil {
			return nil, err
		}
		return ast.NewQuote(blocks...), nil

	case *goldmarkast.List:
		return convertList(node, src)

	case *goldmarkast.ThematicBreak:
		return ast.NewHorizontalRule(), nil

	default:
		// Unknown block constructs (e.g. tables) degrade to a paragraph
		// carrying their raw text rather than erroring.
		return ast.NewParagraph(ast.NewText(rawNodeText(n, src))), nil
	}
}

func linesText(lines *text.Segments, src []byte) string {
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func rawNodeText(n goldmarkast.Node, src []byte) string {
	if fc, ok := n.(interface{ Lines() *text.Segments }); ok {
		return linesText(fc.Lines(), src)
	}
	return ""
}

func convertList(n *goldmarkast.List, src []byte) (ast.Node, error) {
	ordered := n.IsOrdered()
	start := n.Start
	if !ordered || start <= 0 {
		start = 1
	}
	var items []ast.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		li, ok := child.(*goldmarkast.ListItem)
		if !ok {
			continue
		}
		children, err := convertBlocks(li, src)
		if err != nil {
			return nil, err
		}
		items = append(items, ast.NewListItem(flattenTightItem(children)...))
	}
	return ast.NewList(ordered, start, items...), nil
}

// flattenTightItem unwraps a single-Paragraph tight list item down to its
// bare inlines, so a tight list's items carry inline content directly
// rather than an unnecessary nested Paragraph. A loose item (more than one
// block, or a nested List) is left as its block children.
func flattenTightItem(children []ast.Node) []ast.Node {
	if len(children) == 1 {
		if p, ok := children[0].(*ast.Paragraph); ok {
			return p.Inlines()
		}
	}
	return children
}

func convertInlines(n goldmarkast.Node, src []byte) ([]ast.Node, error) {
	var out []ast.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		nodes, err := convertInline(child, src)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func convertInline(n goldmarkast.Node, src []byte) ([]ast.Node, error) {
	switch node := n.(type) {
	case *goldmarkast.Text:
		s := string(node.Segment.Value(src))
		var out []ast.Node
		if s != "" {
			out = append(out, ast.NewText(s))
		}
		switch {
		case node.HardLineBreak():
			out = append(out, ast.NewText("\n"))
		case node.SoftLineBreak():
			out = append(out, ast.NewText(" "))
		}
		return out, nil

	case *goldmarkast.Emphasis:
		inner, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		if node.Level >= 2 {
			return []ast.Node{ast.NewBold(inner...)}, nil
		}
		return []ast.Node{ast.NewItalic(inner...)}, nil

	case *extast.Strikethrough:
		inner, err := convertInlines(node, src)
		if err != nil {
			return nil, err
		}
		return []ast.Node{ast.NewStrikethrough(inner...)}, nil

	case *goldmarkast.CodeSpan:
		return []ast.Node{ast.NewCode(string(node.Text(src)))}, nil

	case *goldmarkast.Link:
		return convertLink(string(node.Destination), node, src)

	case *goldmarkast.AutoLink:
		url := string(node.URL(src))
		return []ast.Node{ast.NewLink(url, ast.NewText(url))}, nil

	case *goldmarkast.Image:
		alt := string(node.Text(src))
		url := string(node.Destination)
		if alt == "" {
			return []ast.Node{ast.NewLink(url)}, nil
		}
		return []ast.Node{ast.NewLink(url, ast.NewText(alt))}, nil

	case *goldmarkast.RawHTML:
		return nil, nil

	default:
		if n.HasChildren() {
			return convertInlines(n, src)
		}
		return nil, nil
	}
}

// convertLink turns a goldmark Link into either a mention/broadcast node
// (when its destination is a recognized slack:// deep link) or a plain
// Link carrying its rendered label inlines.
func convertLink(dest string, labelHost goldmarkast.Node, src []byte) ([]ast.Node, error) {
	if dl, ok := parseDeepLink(dest); ok {
		label, err := plainLabel(labelHost, src)
		if err != nil {
			return nil, err
		}
		switch dl.entity {
		case "user":
			bare := func(id string) ast.Node { return ast.NewUserMention(id) }
			named := func(id, name string) ast.Node { return ast.NewUserMentionNamed(id, name) }
			return []ast.Node{mentionFromDeepLink(dl, label, "@", bare, named)}, nil
		case "channel":
			bare := func(id string) ast.Node { return ast.NewChannelMention(id) }
			named := func(id, name string) ast.Node { return ast.NewChannelMentionNamed(id, name) }
			return []ast.Node{mentionFromDeepLink(dl, label, "#", bare, named)}, nil
		case "usergroup":
			bare := func(id string) ast.Node { return ast.NewUsergroupMention(id) }
			named := func(id, name string) ast.Node { return ast.NewUsergroupMentionNamed(id, name) }
			return []ast.Node{mentionFromDeepLink(dl, label, "@", bare, named)}, nil
		case "broadcast":
			r := ast.BroadcastRange(dl.rng)
			if r.Valid() {
				return []ast.Node{ast.NewBroadcast(r)}, nil
			}
		}
	}
	inlines, err := convertInlines(labelHost, src)
	if err != nil {
		return nil, err
	}
	return []ast.Node{ast.NewLink(dest, inlines...)}, nil
}

// mentionFromDeepLink builds a mention node, stripping the leading sigil
// from the rendered label. A label equal to the bare ID (the renderer's
// own fallback when no name is known) is treated as "no known name" so a
// round trip without a name reproduces the unnamed mention exactly.
func mentionFromDeepLink(dl deepLink, label, sigil string, bare func(string) ast.Node, named func(string, string) ast.Node) ast.Node {
	stripped := strings.TrimPrefix(label, sigil)
	if stripped == "" || stripped == dl.id {
		return bare(dl.id)
	}
	return named(dl.id, stripped)
}

func plainLabel(n goldmarkast.Node, src []byte) (string, error) {
	inlines, err := convertInlines(n, src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, in := range inlines {
		if t, ok := in.(*ast.Text); ok {
			sb.WriteString(t.Text())
		}
	}
	return sb.String(), nil
}
