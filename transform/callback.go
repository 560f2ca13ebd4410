package transform

import (
	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

// Callbacks is a set of per-variant rewrite functions with the same
// contract as ast.TransformVisitor: each may keep, replace, or delete the
// node it is given. A nil field leaves that variant untouched. An error
// returned by any callback is wrapped as an *rterr.TransformError and
// aborts the walk.
type Callbacks struct {
	Document         func(*ast.Document) (ast.Node, ast.TransformAction, error)
	Paragraph        func(*ast.Paragraph) (ast.Node, ast.TransformAction, error)
	Heading          func(*ast.Heading) (ast.Node, ast.TransformAction, error)
	CodeBlock        func(*ast.CodeBlock) (ast.Node, ast.TransformAction, error)
	Quote            func(*ast.Quote) (ast.Node, ast.TransformAction, error)
	List             func(*ast.List) (ast.Node, ast.TransformAction, error)
	ListItem         func(*ast.ListItem) (ast.Node, ast.TransformAction, error)
	HorizontalRule   func(*ast.HorizontalRule) (ast.Node, ast.TransformAction, error)
	Text             func(*ast.Text) (ast.Node, ast.TransformAction, error)
	Bold             func(*ast.Bold) (ast.Node, ast.TransformAction, error)
	Italic           func(*ast.Italic) (ast.Node, ast.TransformAction, error)
	Strikethrough    func(*ast.Strikethrough) (ast.Node, ast.TransformAction, error)
	Code             func(*ast.Code) (ast.Node, ast.TransformAction, error)
	Link             func(*ast.Link) (ast.Node, ast.TransformAction, error)
	UserMention      func(*ast.UserMention) (ast.Node, ast.TransformAction, error)
	ChannelMention   func(*ast.ChannelMention) (ast.Node, ast.TransformAction, error)
	UsergroupMention func(*ast.UsergroupMention) (ast.Node, ast.TransformAction, error)
	Broadcast        func(*ast.Broadcast) (ast.Node, ast.TransformAction, error)
	Emoji            func(*ast.Emoji) (ast.Node, ast.TransformAction, error)
	DateTimestamp    func(*ast.DateTimestamp) (ast.Node, ast.TransformAction, error)
}

// Apply walks doc, invoking the matching callback (if any) on every node,
// and returns the rewritten Document.
func Apply(doc *ast.Document, cb Callbacks) (*ast.Document, error) {
	out, err := ast.Transform(doc, &callbackTransformer{cb: cb})
	if err != nil {
		return nil, err
	}
	result, ok := out.(*ast.Document)
	if !ok {
		return nil, &rterr.TransformError{Kind: "Document", Err: errDocumentDeleted}
	}
	return result, nil
}

var errDocumentDeleted = &rterr.ValidationError{Kind: "Document", Field: "root", Message: "callback deleted the document root"}

type callbackTransformer struct {
	ast.BaseTransformVisitor
	cb Callbacks
}

func wrap(kind string, action ast.TransformAction, err error) (ast.TransformAction, error) {
	if err != nil {
		return ast.ActionKeep, &rterr.TransformError{Kind: kind, Err: err}
	}
	return action, nil
}

func (t *callbackTransformer) TransformDocument(n *ast.Document) (ast.Node, ast.TransformAction, error) {
	if t.cb.Document == nil {
		return t.BaseTransformVisitor.TransformDocument(n)
	}
	node, action, err := t.cb.Document(n)
	action, err = wrap("Document", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformParagraph(n *ast.Paragraph) (ast.Node, ast.TransformAction, error) {
	if t.cb.Paragraph == nil {
		return t.BaseTransformVisitor.TransformParagraph(n)
	}
	node, action, err := t.cb.Paragraph(n)
	action, err = wrap("Paragraph", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformHeading(n *ast.Heading) (ast.Node, ast.TransformAction, error) {
	if t.cb.Heading == nil {
		return t.BaseTransformVisitor.TransformHeading(n)
	}
	node, action, err := t.cb.Heading(n)
	action, err = wrap("Heading", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformCodeBlock(n *ast.CodeBlock) (ast.Node, ast.TransformAction, error) {
	if t.cb.CodeBlock == nil {
		return t.BaseTransformVisitor.TransformCodeBlock(n)
	}
	node, action, err := t.cb.CodeBlock(n)
	action, err = wrap("CodeBlock", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformQuote(n *ast.Quote) (ast.Node, ast.TransformAction, error) {
	if t.cb.Quote == nil {
		return t.BaseTransformVisitor.TransformQuote(n)
	}
	node, action, err := t.cb.Quote(n)
	action, err = wrap("Quote", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformList(n *ast.List) (ast.Node, ast.TransformAction, error) {
	if t.cb.List == nil {
		return t.BaseTransformVisitor.TransformList(n)
	}
	node, action, err := t.cb.List(n)
	action, err = wrap("List", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformListItem(n *ast.ListItem) (ast.Node, ast.TransformAction, error) {
	if t.cb.ListItem == nil {
		return t.BaseTransformVisitor.TransformListItem(n)
	}
	node, action, err := t.cb.ListItem(n)
	action, err = wrap("ListItem", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformHorizontalRule(n *ast.HorizontalRule) (ast.Node, ast.TransformAction, error) {
	if t.cb.HorizontalRule == nil {
		return t.BaseTransformVisitor.TransformHorizontalRule(n)
	}
	node, action, err := t.cb.HorizontalRule(n)
	action, err = wrap("HorizontalRule", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformText(n *ast.Text) (ast.Node, ast.TransformAction, error) {
	if t.cb.Text == nil {
		return t.BaseTransformVisitor.TransformText(n)
	}
	node, action, err := t.cb.Text(n)
	action, err = wrap("Text", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformBold(n *ast.Bold) (ast.Node, ast.TransformAction, error) {
	if t.cb.Bold == nil {
		return t.BaseTransformVisitor.TransformBold(n)
	}
	node, action, err := t.cb.Bold(n)
	action, err = wrap("Bold", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformItalic(n *ast.Italic) (ast.Node, ast.TransformAction, error) {
	if t.cb.Italic == nil {
		return t.BaseTransformVisitor.TransformItalic(n)
	}
	node, action, err := t.cb.Italic(n)
	action, err = wrap("Italic", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformStrikethrough(n *ast.Strikethrough) (ast.Node, ast.TransformAction, error) {
	if t.cb.Strikethrough == nil {
		return t.BaseTransformVisitor.TransformStrikethrough(n)
	}
	node, action, err := t.cb.Strikethrough(n)
	action, err = wrap("Strikethrough", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformCode(n *ast.Code) (ast.Node, ast.TransformAction, error) {
	if t.cb.Code == nil {
		return t.BaseTransformVisitor.TransformCode(n)
	}
	node, action, err := t.cb.Code(n)
	action, err = wrap("Code", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformLink(n *ast.Link) (ast.Node, ast.TransformAction, error) {
	if t.cb.Link == nil {
		return t.BaseTransformVisitor.TransformLink(n)
	}
	node, action, err := t.cb.Link(n)
	action, err = wrap("Link", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformUserMention(n *ast.UserMention) (ast.Node, ast.TransformAction, error) {
	if t.cb.UserMention == nil {
		return t.BaseTransformVisitor.TransformUserMention(n)
	}
	node, action, err := t.cb.UserMention(n)
	action, err = wrap("UserMention", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformChannelMention(n *ast.ChannelMention) (ast.Node, ast.TransformAction, error) {
	if t.cb.ChannelMention == nil {
		return t.BaseTransformVisitor.TransformChannelMention(n)
	}
	node, action, err := t.cb.ChannelMention(n)
	action, err = wrap("ChannelMention", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformUsergroupMention(n *ast.UsergroupMention) (ast.Node, ast.TransformAction, error) {
	if t.cb.UsergroupMention == nil {
		return t.BaseTransformVisitor.TransformUsergroupMention(n)
	}
	node, action, err := t.cb.UsergroupMention(n)
	action, err = wrap("UsergroupMention", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformBroadcast(n *ast.Broadcast) (ast.Node, ast.TransformAction, error) {
	if t.cb.Broadcast == nil {
		return t.BaseTransformVisitor.TransformBroadcast(n)
	}
	node, action, err := t.cb.Broadcast(n)
	action, err = wrap("Broadcast", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformEmoji(n *ast.Emoji) (ast.Node, ast.TransformAction, error) {
	if t.cb.Emoji == nil {
		return t.BaseTransformVisitor.TransformEmoji(n)
	}
	node, action, err := t.cb.Emoji(n)
	action, err = wrap("Emoji", action, err)
	return node, action, err
}

func (t *callbackTransformer) TransformDateTimestamp(n *ast.DateTimestamp) (ast.Node, ast.TransformAction, error) {
	if t.cb.DateTimestamp == nil {
		return t.BaseTransformVisitor.TransformDateTimestamp(n)
	}
	node, action, err := t.cb.DateTimestamp(n)
	action, err = wrap("DateTimestamp", action, err)
	return node, action, err
}
