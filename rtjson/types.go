// Package rtjson implements the Rich Text JSON codec: decoding a
// "rich_text" JSON tree (or a bare elements array) into the common AST,
// and rendering an AST back into that JSON shape. JSON marshaling goes
// through goccy/go-json, a drop-in encoding/json replacement.
package rtjson

import json "github.com/goccy/go-json"

// typeTag sniffs the "type" discriminator shared by every RT element
// before deciding which concrete wire struct to decode into.
type typeTag struct {
	Type string `json:"type"`
}

// wireDocument is the outer "rich_text" object form accepted by Parse.
type wireDocument struct {
	Type     string            `json:"type"`
	Elements []json.RawMessage `json:"elements"`
}

// wireSection covers rich_text_section and rich_text_quote, which share
// a shape: a type tag plus a flat inline elements array.
type wireSection struct {
	Type     string            `json:"type"`
	Elements []json.RawMessage `json:"elements"`
}

// wirePreformatted covers rich_text_preformatted.
type wirePreformatted struct {
	Type     string            `json:"type"`
	Elements []json.RawMessage `json:"elements"`
}

// wireList covers rich_text_list. Each entry of Elements is itself a
// rich_text_section-shaped object representing one list item's inline
// content.
type wireList struct {
	Type     string            `json:"type"`
	Style    string            `json:"style"`
	Indent   int               `json:"indent,omitempty"`
	Border   int               `json:"border,omitempty"`
	Elements []json.RawMessage `json:"elements"`
}

// wireStyle carries the four style booleans attached to a "text" element.
type wireStyle struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`
	Strike bool `json:"strike,omitempty"`
	Code   bool `json:"code,omitempty"`
}

func (s *wireStyle) isZero() bool {
	return s == nil || (!s.Bold && !s.Italic && !s.Strike && !s.Code)
}

type wireText struct {
	Type  string     `json:"type"`
	Text  string     `json:"text"`
	Style *wireStyle `json:"style,omitempty"`
}

type wireLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Text string `json:"text,omitempty"`
}

type wireUser struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

type wireChannel struct {
	Type      string `json:"type"`
	ChannelID string `json:"channel_id"`
}

type wireUsergroup struct {
	Type        string `json:"type"`
	UsergroupID string `json:"usergroup_id"`
}

type wireBroadcast struct {
	Type  string `json:"type"`
	Range string `json:"range"`
}

type wireEmoji struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Unicode string `json:"unicode,omitempty"`
}

type wireDate struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Format    string `json:"format,omitempty"`
	Fallback  string `json:"fallback,omitempty"`
}
