package rtjson

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

// Render encodes a Document into the RT JSON wire shape: an object with
// "type":"rich_text" and an "elements" array.
func Render(doc *ast.Document) ([]byte, error) {
	elements, err := renderBlocks(doc.Blocks())
	if err != nil {
		return nil, err
	}
	wire := wireDocument{Type: "rich_text", Elements: elements}
	out, err := json.Marshal(wire)
	if err != nil {
		return nil, &rterr.RenderError{Format: "rtjson", Message: err.Error()}
	}
	return out, nil
}

func renderBlocks(blocks []ast.Node) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(blocks))
	for _, block := range blocks {
		raw, err := renderBlock(block)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func renderBlock(block ast.Node) (json.RawMessage, error) {
	switch n := block.(type) {
	case *ast.Paragraph:
		inlines, err := renderInlines(n.Inlines())
		if err != nil {
			return nil, err
		}
		return marshal(wireSection{Type: "rich_text_section", Elements: inlines})

	case *ast.CodeBlock:
		content := strings.TrimSuffix(n.Content(), "\n")
		text, err := marshal(wireText{Type: "text", Text: content})
		if err != nil {
			return nil, err
		}
		return marshal(wirePreformatted{Type: "rich_text_preformatted", Elements: []json.RawMessage{text}})

	case *ast.Quote:
		inlines, err := renderQuoteInlines(n.Blocks())
		if err != nil {
			return nil, err
		}
		return marshal(wireSection{Type: "rich_text_quote", Elements: inlines})

	case *ast.List:
		items := make([]json.RawMessage, 0, len(n.Items()))
		for _, itemNode := range n.Items() {
			item, ok := itemNode.(*ast.ListItem)
			if !ok {
				return nil, &rterr.RenderError{Format: "rtjson", Kind: itemNode.Kind().String(), Message: "list item of unexpected kind"}
			}
			inlineOnly, err := assertInlineOnly(item.Children())
			if err != nil {
				return nil, err
			}
			inlines, err := renderInlines(inlineOnly)
			if err != nil {
				return nil, err
			}
			raw, err := marshal(wireSection{Type: "rich_text_section", Elements: inlines})
			if err != nil {
				return nil, err
			}
			items = append(items, raw)
		}
		style := "bullet"
		if n.Ordered() {
			style = "ordered"
		}
		return marshal(wireList{Type: "rich_text_list", Style: style, Elements: items})

	default:
		return nil, &rterr.RenderError{
			Format:  "rtjson",
			Kind:    block.Kind().String(),
			Message: "block kind has no rich_text representation",
		}
	}
}

// renderQuoteInlines flattens a Quote's nested Paragraph blocks into a
// single inline sequence, joining paragraph boundaries with a literal
// newline Text node. The rtjson and mrkdwn decoders produce a single
// Paragraph per Quote, so for them this is a direct pass-through; the gfm
// decoder can produce several blocks.
func renderQuoteInlines(blocks []ast.Node) ([]json.RawMessage, error) {
	var inlines []ast.Node
	for i, b := range blocks {
		p, ok := b.(*ast.Paragraph)
		if !ok {
			return nil, &rterr.RenderError{Format: "rtjson", Kind: b.Kind().String(), Message: "rich_text_quote supports only paragraph content"}
		}
		if i > 0 {
			inlines = append(inlines, ast.NewText("\n"))
		}
		inlines = append(inlines, p.Inlines()...)
	}
	return renderInlines(inlines)
}

func assertInlineOnly(children []ast.Node) ([]ast.Node, error) {
	for _, c := range children {
		if c.Kind().IsBlock() {
			return nil, &rterr.RenderError{
				Format:  "rtjson",
				Kind:    c.Kind().String(),
				Message: "rich_text_list item contains nested block content not representable in rich_text_list",
			}
		}
	}
	return children, nil
}

// styleFlags accumulates the active Bold/Italic/Strikethrough/Code state
// while descending through a style-wrapper chain.
type styleFlags struct {
	bold, italic, strike, code bool
}

func (s styleFlags) toWire() *wireStyle {
	if !s.bold && !s.italic && !s.strike && !s.code {
		return nil
	}
	return &wireStyle{Bold: s.bold, Italic: s.italic, Strike: s.strike, Code: s.code}
}

func renderInlines(inlines []ast.Node) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(inlines))
	for _, inline := range inlines {
		raws, err := renderInlineChain(inline, styleFlags{})
		if err != nil {
			return nil, err
		}
		out = append(out, raws...)
	}
	return out, nil
}

// renderInlineChain walks a (possibly multi-child) style-wrapper subtree,
// accumulating flags as it descends, and emits one wire element per leaf
// text/code run plus one element per non-text inline (link, mention,
// emoji, date). A wrapper with multiple children emits multiple elements,
// each carrying the accumulated style (spec §4.2: "multiple leaf runs
// inside a wrapper emit multiple elements each carrying the wrapper
// style").
func renderInlineChain(node ast.Node, flags styleFlags) ([]json.RawMessage, error) {
	switch n := node.(type) {
	case *ast.Text:
		raw, err := marshal(wireText{Type: "text", Text: n.Text(), Style: flags.toWire()})
		if err != nil {
			return nil, err
		}
		return []json.RawMessage{raw}, nil

	case *ast.Code:
		flags.code = true
		raw, err := marshal(wireText{Type: "text", Text: n.Content(), Style: flags.toWire()})
		if err != nil {
			return nil, err
		}
		return []json.RawMessage{raw}, nil

	case *ast.Bold:
		flags.bold = true
		return renderChildrenChain(n.Inlines(), flags)

	case *ast.Italic:
		flags.italic = true
		return renderChildrenChain(n.Inlines(), flags)

	case *ast.Strikethrough:
		flags.strike = true
		return renderChildrenChain(n.Inlines(), flags)

	case *ast.Link:
		label, err := flattenPlainInlines(n.Inlines())
		if err != nil {
			return nil, err
		}
		raw, err := marshal(wireLink{Type: "link", URL: n.URL(), Text: label})
		if err != nil {
			return nil, err
		}
		return []json.RawMessage{raw}, nil

	case *ast.UserMention:
		raw, err := marshal(wireUser{Type: "user", UserID: n.UserID()})
		return wrapSingle(raw, err)

	case *ast.ChannelMention:
		raw, err := marshal(wireChannel{Type: "channel", ChannelID: n.ChannelID()})
		return wrapSingle(raw, err)

	case *ast.UsergroupMention:
		raw, err := marshal(wireUsergroup{Type: "usergroup", UsergroupID: n.UsergroupID()})
		return wrapSingle(raw, err)

	case *ast.Broadcast:
		raw, err := marshal(wireBroadcast{Type: "broadcast", Range: string(n.Range())})
		return wrapSingle(raw, err)

	case *ast.Emoji:
		unicode, _ := n.Unicode()
		raw, err := marshal(wireEmoji{Type: "emoji", Name: n.Name(), Unicode: unicode})
		return wrapSingle(raw, err)

	case *ast.DateTimestamp:
		format, _ := n.Format()
		fallback, _ := n.Fallback()
		raw, err := marshal(wireDate{Type: "date", Timestamp: n.EpochSeconds(), Format: format, Fallback: fallback})
		return wrapSingle(raw, err)

	default:
		return nil, &rterr.RenderError{Format: "rtjson", Kind: node.Kind().String(), Message: "inline kind has no rich_text representation"}
	}
}

func renderChildrenChain(children []ast.Node, flags styleFlags) ([]json.RawMessage, error) {
	var out []json.RawMessage
	for _, child := range children {
		raws, err := renderInlineChain(child, flags)
		if err != nil {
			return nil, err
		}
		out = append(out, raws...)
	}
	return out, nil
}

func flattenPlainInlines(inlines []ast.Node) (string, error) {
	var sb strings.Builder
	for _, inline := range inlines {
		switch n := inline.(type) {
		case *ast.Text:
			sb.WriteString(n.Text())
		case *ast.Code:
			sb.WriteString(n.Content())
		default:
			return "", &rterr.RenderError{Format: "rtjson", Kind: inline.Kind().String(), Message: "link label must be plain text"}
		}
	}
	return sb.String(), nil
}

func wrapSingle(raw json.RawMessage, err error) ([]json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	return []json.RawMessage{raw}, nil
}

func marshal(v any) (json.RawMessage, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, &rterr.RenderError{Format: "rtjson", Message: err.Error()}
	}
	return out, nil
}
