package rtjson

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

// Parse decodes RT JSON into a Document. It accepts either an object with
// "type":"rich_text" and an "elements" array, or a bare elements array.
func Parse(data []byte) (*ast.Document, error) {
	trimmed := bytes.TrimSpace(data)
	var raw []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
	} else {
		var doc wireDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		raw = doc.Elements
	}
	blocks, err := decodeBlocks(raw)
	if err != nil {
		return nil, err
	}
	return ast.NewDocument(blocks...), nil
}

func decodeBlocks(elements []json.RawMessage) ([]ast.Node, error) {
	blocks := make([]ast.Node, 0, len(elements))
	for i, raw := range elements {
		block, err := decodeBlock(raw, i)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func decodeBlock(raw json.RawMessage, position int) (ast.Node, error) {
	var tag typeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
	}
	switch tag.Type {
	case "rich_text_section":
		var sec wireSection
		if err := json.Unmarshal(raw, &sec); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		inlines, err := decodeInlines(sec.Elements)
		if err != nil {
			return nil, err
		}
		return ast.NewParagraph(inlines...), nil

	case "rich_text_preformatted":
		var pre wirePreformatted
		if err := json.Unmarshal(raw, &pre); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		var buf bytes.Buffer
		for _, el := range pre.Elements {
			text, err := flattenInlineToText(el)
			if err != nil {
				return nil, err
			}
			buf.WriteString(text)
		}
		return ast.NewCodeBlock(buf.String()), nil

	case "rich_text_quote":
		var sec wireSection
		if err := json.Unmarshal(raw, &sec); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		inlines, err := decodeInlines(sec.Elements)
		if err != nil {
			return nil, err
		}
		return ast.NewQuote(ast.NewParagraph(inlines...)), nil

	case "rich_text_list":
		var list wireList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		if list.Style != "bullet" && list.Style != "ordered" {
			return nil, &rterr.ParseError{
				Format:  "rtjson",
				Offset:  position,
				Message: fmt.Sprintf("rich_text_list: unrecognized style %q", list.Style),
			}
		}
		items := make([]ast.Node, 0, len(list.Elements))
		for _, itemRaw := range list.Elements {
			var item wireSection
			if err := json.Unmarshal(itemRaw, &item); err != nil {
				return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
			}
			inlines, err := decodeInlines(item.Elements)
			if err != nil {
				return nil, err
			}
			items = append(items, ast.NewListItem(inlines...))
		}
		return ast.NewList(list.Style == "ordered", 1, items...), nil

	default:
		return nil, &rterr.ParseError{
			Format:  "rtjson",
			Offset:  position,
			Message: fmt.Sprintf("unknown element type %q", tag.Type),
		}
	}
}

func decodeInlines(elements []json.RawMessage) ([]ast.Node, error) {
	inlines := make([]ast.Node, 0, len(elements))
	for i, raw := range elements {
		inline, err := decodeInline(raw, i)
		if err != nil {
			return nil, err
		}
		inlines = append(inlines, inline)
	}
	return inlines, nil
}

func decodeInline(raw json.RawMessage, position int) (ast.Node, error) {
	var tag typeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
	}
	switch tag.Type {
	case "text":
		var wt wireText
		if err := json.Unmarshal(raw, &wt); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		return decodeStyledText(wt), nil

	case "link":
		var wl wireLink
		if err := json.Unmarshal(raw, &wl); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		var inlines []ast.Node
		if wl.Text != "" {
			inlines = []ast.Node{ast.NewText(wl.Text)}
		}
		return ast.NewLink(wl.URL, inlines...), nil

	case "user":
		var wu wireUser
		if err := json.Unmarshal(raw, &wu); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		return ast.NewUserMention(wu.UserID), nil

	case "channel":
		var wc wireChannel
		if err := json.Unmarshal(raw, &wc); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		return ast.NewChannelMention(wc.ChannelID), nil

	case "usergroup":
		var wug wireUsergroup
		if err := json.Unmarshal(raw, &wug); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		return ast.NewUsergroupMention(wug.UsergroupID), nil

	case "broadcast":
		var wb wireBroadcast
		if err := json.Unmarshal(raw, &wb); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		r := ast.BroadcastRange(wb.Range)
		if !r.Valid() {
			return nil, &rterr.ParseError{
				Format:  "rtjson",
				Offset:  position,
				Message: fmt.Sprintf("broadcast: unrecognized range %q", wb.Range),
			}
		}
		return ast.NewBroadcast(r), nil

	case "emoji":
		var we wireEmoji
		if err := json.Unmarshal(raw, &we); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		if we.Unicode != "" {
			return ast.NewEmojiWithUnicode(we.Name, we.Unicode), nil
		}
		return ast.NewEmoji(we.Name), nil

	case "date":
		var wd wireDate
		if err := json.Unmarshal(raw, &wd); err != nil {
			return nil, &rterr.ParseError{Format: "rtjson", Offset: position, Message: err.Error()}
		}
		var opts []ast.DateTimestampOption
		if wd.Format != "" {
			opts = append(opts, ast.WithFormat(wd.Format))
		}
		if wd.Fallback != "" {
			opts = append(opts, ast.WithFallback(wd.Fallback))
		}
		return ast.NewDateTimestamp(wd.Timestamp, opts...), nil

	default:
		return nil, &rterr.ParseError{
			Format:  "rtjson",
			Offset:  position,
			Message: fmt.Sprintf("unknown inline element type %q", tag.Type),
		}
	}
}

// decodeStyledText builds the Strikethrough ⊃ Italic ⊃ Bold ⊃ Code ⊃ Text
// nesting chain for one styled text run (invariant 3, spec §4.2). A code
// style replaces the leaf Text with a Code node carrying the same raw
// content, since Code itself never wraps a child Text node (invariant 1).
func decodeStyledText(wt wireText) ast.Node {
	var node ast.Node
	if wt.Style != nil && wt.Style.Code {
		node = ast.NewCode(wt.Text)
	} else {
		node = ast.NewText(wt.Text)
	}
	if wt.Style != nil {
		if wt.Style.Bold {
			node = ast.NewBold(node)
		}
		if wt.Style.Italic {
			node = ast.NewItalic(node)
		}
		if wt.Style.Strike {
			node = ast.NewStrikethrough(node)
		}
	}
	return node
}

// flattenInlineToText implements the rich_text_preformatted flattening
// rule: links emit their text or url, mentions emit their ID, other
// inlines emit a plain-text approximation.
func flattenInlineToText(raw json.RawMessage) (string, error) {
	var tag typeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
	}
	switch tag.Type {
	case "text":
		var wt wireText
		if err := json.Unmarshal(raw, &wt); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return wt.Text, nil
	case "link":
		var wl wireLink
		if err := json.Unmarshal(raw, &wl); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		if wl.Text != "" {
			return wl.Text, nil
		}
		return wl.URL, nil
	case "user":
		var wu wireUser
		if err := json.Unmarshal(raw, &wu); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return wu.UserID, nil
	case "channel":
		var wc wireChannel
		if err := json.Unmarshal(raw, &wc); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return wc.ChannelID, nil
	case "usergroup":
		var wug wireUsergroup
		if err := json.Unmarshal(raw, &wug); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return wug.UsergroupID, nil
	case "broadcast":
		var wb wireBroadcast
		if err := json.Unmarshal(raw, &wb); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return "@" + wb.Range, nil
	case "emoji":
		var we wireEmoji
		if err := json.Unmarshal(raw, &we); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		return ":" + we.Name + ":", nil
	case "date":
		var wd wireDate
		if err := json.Unmarshal(raw, &wd); err != nil {
			return "", &rterr.ParseError{Format: "rtjson", Offset: -1, Message: err.Error()}
		}
		if wd.Fallback != "" {
			return wd.Fallback, nil
		}
		return strconv.FormatInt(wd.Timestamp, 10), nil
	default:
		return "", &rterr.ParseError{
			Format:  "rtjson",
			Offset:  -1,
			Message: fmt.Sprintf("unknown inline element type %q inside preformatted block", tag.Type),
		}
	}
}
