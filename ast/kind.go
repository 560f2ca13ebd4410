// Package ast defines the common tagged-tree representation shared by the
// Rich Text, Mrkdwn, and GFM codecs. A tree rooted at a single Document is
// the only contract between decoders, transformers, and encoders.
package ast

// Kind classifies a Node into one of the fixed block or inline variants.
// The set is closed: every Node implementation corresponds to exactly one
// Kind, and every Kind has exactly one Node implementation.
type Kind uint8

const (
	// Block kinds. These may appear as direct children of Document, Quote,
	// or ListItem.

	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindCodeBlock
	KindQuote
	KindList
	KindListItem
	KindHorizontalRule

	// Inline kinds. These may appear as children of paragraphs, headings,
	// list items, style wrappers, or link labels.

	KindText
	KindBold
	KindItalic
	KindStrikethrough
	KindCode
	KindLink
	KindUserMention
	KindChannelMention
	KindUsergroupMention
	KindBroadcast
	KindEmoji
	KindDateTimestamp
)

// String returns a human-readable name for the kind, used by the debug
// printer and in parse/render error context.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindParagraph:
		return "Paragraph"
	case KindHeading:
		return "Heading"
	case KindCodeBlock:
		return "CodeBlock"
	case KindQuote:
		return "Quote"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindText:
		return "Text"
	case KindBold:
		return "Bold"
	case KindItalic:
		return "Italic"
	case KindStrikethrough:
		return "Strikethrough"
	case KindCode:
		return "Code"
	case KindLink:
		return "Link"
	case KindUserMention:
		return "UserMention"
	case KindChannelMention:
		return "ChannelMention"
	case KindUsergroupMention:
		return "UsergroupMention"
	case KindBroadcast:
		return "Broadcast"
	case KindEmoji:
		return "Emoji"
	case KindDateTimestamp:
		return "DateTimestamp"
	default:
		return "Unknown"
	}
}

// IsBlock reports whether the kind may appear as a direct child of
// Document, Quote, or ListItem.
func (k Kind) IsBlock() bool {
	return k <= KindHorizontalRule
}

// IsInline reports whether the kind may appear as a child of a paragraph,
// heading, list item, style wrapper, or link label.
func (k Kind) IsInline() bool {
	return !k.IsBlock()
}
