package ast

import "errors"

// SkipChildren is returned by a Visitor method to stop Walk from descending
// into the node's children, without treating the walk as failed.
var SkipChildren = errors.New("ast: skip children")

// Visitor is implemented by read-only tree walkers. One method per Kind;
// Walk dispatches to the matching method via a type switch and then
// recurses into the node's children, unless the method returns
// SkipChildren or a non-nil error.
type Visitor interface {
	VisitDocument(*Document) error
	VisitParagraph(*Paragraph) error
	VisitHeading(*Heading) error
	VisitCodeBlock(*CodeBlock) error
	VisitQuote(*Quote) error
	VisitList(*List) error
	VisitListItem(*ListItem) error
	VisitHorizontalRule(*HorizontalRule) error

	VisitText(*Text) error
	VisitBold(*Bold) error
	VisitItalic(*Italic) error
	VisitStrikethrough(*Strikethrough) error
	VisitCode(*Code) error
	VisitLink(*Link) error
	VisitUserMention(*UserMention) error
	VisitChannelMention(*ChannelMention) error
	VisitUsergroupMention(*UsergroupMention) error
	VisitBroadcast(*Broadcast) error
	VisitEmoji(*Emoji) error
	VisitDateTimestamp(*DateTimestamp) error
}

// BaseVisitor implements Visitor with no-op methods, so callers need only
// override the kinds they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitDocument(*Document) error                   { return nil }
func (BaseVisitor) VisitParagraph(*Paragraph) error                 { return nil }
func (BaseVisitor) VisitHeading(*Heading) error                     { return nil }
func (BaseVisitor) VisitCodeBlock(*CodeBlock) error                 { return nil }
func (BaseVisitor) VisitQuote(*Quote) error                         { return nil }
func (BaseVisitor) VisitList(*List) error                           { return nil }
func (BaseVisitor) VisitListItem(*ListItem) error                   { return nil }
func (BaseVisitor) VisitHorizontalRule(*HorizontalRule) error       { return nil }
func (BaseVisitor) VisitText(*Text) error                           { return nil }
func (BaseVisitor) VisitBold(*Bold) error                           { return nil }
func (BaseVisitor) VisitItalic(*Italic) error                       { return nil }
func (BaseVisitor) VisitStrikethrough(*Strikethrough) error         { return nil }
func (BaseVisitor) VisitCode(*Code) error                           { return nil }
func (BaseVisitor) VisitLink(*Link) error                           { return nil }
func (BaseVisitor) VisitUserMention(*UserMention) error             { return nil }
func (BaseVisitor) VisitChannelMention(*ChannelMention) error       { return nil }
func (BaseVisitor) VisitUsergroupMention(*UsergroupMention) error   { return nil }
func (BaseVisitor) VisitBroadcast(*Broadcast) error                 { return nil }
func (BaseVisitor) VisitEmoji(*Emoji) error                         { return nil }
func (BaseVisitor) VisitDateTimestamp(*DateTimestamp) error         { return nil }

// Walk performs a depth-first, pre-order traversal of node, dispatching
// each node to the matching Visitor method before descending into its
// children. A method returning SkipChildren stops the descent for that
// node without failing the walk; any other non-nil error aborts the walk
// entirely and is returned to the caller.
func Walk(node Node, v Visitor) error {
	if node == nil {
		return nil
	}
	err := dispatch(node, v)
	if err == SkipChildren {
		return nil
	}
	if err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := Walk(child, v); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(node Node, v Visitor) error {
	switch n := node.(type) {
	case *Document:
		return v.VisitDocument(n)
	case *Paragraph:
		return v.VisitParagraph(n)
	case *Heading:
		return v.VisitHeading(n)
	case *CodeBlock:
		return v.VisitCodeBlock(n)
	case *Quote:
		return v.VisitQuote(n)
	case *List:
		return v.VisitList(n)
	case *ListItem:
		return v.VisitListItem(n)
	case *HorizontalRule:
		return v.VisitHorizontalRule(n)
	case *Text:
		return v.VisitText(n)
	case *Bold:
		return v.VisitBold(n)
	case *Italic:
		return v.VisitItalic(n)
	case *Strikethrough:
		return v.VisitStrikethrough(n)
	case *Code:
		return v.VisitCode(n)
	case *Link:
		return v.VisitLink(n)
	case *UserMention:
		return v.VisitUserMention(n)
	case *ChannelMention:
		return v.VisitChannelMention(n)
	case *UsergroupMention:
		return v.VisitUsergroupMention(n)
	case *Broadcast:
		return v.VisitBroadcast(n)
	case *Emoji:
		return v.VisitEmoji(n)
	case *DateTimestamp:
		return v.VisitDateTimestamp(n)
	default:
		return nil
	}
}
