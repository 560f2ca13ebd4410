package ast

// TransformAction tells Transform what to do with a node's result once its
// TransformVisitor method has run.
type TransformAction uint8

const (
	// ActionKeep keeps the returned node in place of the original.
	ActionKeep TransformAction = iota
	// ActionReplace substitutes the returned node, which need not share the
	// original's Kind.
	ActionReplace
	// ActionDelete removes the node (and its subtree) from its parent.
	ActionDelete
)

// String returns a human-readable name for the action.
func (a TransformAction) String() string {
	switch a {
	case ActionKeep:
		return "Keep"
	case ActionReplace:
		return "Replace"
	case ActionDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// TransformVisitor is implemented by tree rewriters. One method per Kind.
// Transform calls these post-order: a node's children are fully
// transformed and spliced back in before the node's own method runs, so a
// TransformX implementation always sees final children, never originals.
type TransformVisitor interface {
	TransformDocument(*Document) (Node, TransformAction, error)
	TransformParagraph(*Paragraph) (Node, TransformAction, error)
	TransformHeading(*Heading) (Node, TransformAction, error)
	TransformCodeBlock(*CodeBlock) (Node, TransformAction, error)
	TransformQuote(*Quote) (Node, TransformAction, error)
	TransformList(*List) (Node, TransformAction, error)
	TransformListItem(*ListItem) (Node, TransformAction, error)
	TransformHorizontalRule(*HorizontalRule) (Node, TransformAction, error)

	TransformText(*Text) (Node, TransformAction, error)
	TransformBold(*Bold) (Node, TransformAction, error)
	TransformItalic(*Italic) (Node, TransformAction, error)
	TransformStrikethrough(*Strikethrough) (Node, TransformAction, error)
	TransformCode(*Code) (Node, TransformAction, error)
	TransformLink(*Link) (Node, TransformAction, error)
	TransformUserMention(*UserMention) (Node, TransformAction, error)
	TransformChannelMention(*ChannelMention) (Node, TransformAction, error)
	TransformUsergroupMention(*UsergroupMention) (Node, TransformAction, error)
	TransformBroadcast(*Broadcast) (Node, TransformAction, error)
	TransformEmoji(*Emoji) (Node, TransformAction, error)
	TransformDateTimestamp(*DateTimestamp) (Node, TransformAction, error)
}

// BaseTransformVisitor implements TransformVisitor by keeping every node
// unchanged, so callers need only override the kinds they rewrite.
type BaseTransformVisitor struct{}

func (BaseTransformVisitor) TransformDocument(n *Document) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformParagraph(n *Paragraph) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformHeading(n *Heading) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformCodeBlock(n *CodeBlock) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformQuote(n *Quote) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformList(n *List) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformListItem(n *ListItem) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformHorizontalRule(n *HorizontalRule) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformText(n *Text) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformBold(n *Bold) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformItalic(n *Italic) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformStrikethrough(n *Strikethrough) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformCode(n *Code) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformLink(n *Link) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformUserMention(n *UserMention) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformChannelMention(n *ChannelMention) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformUsergroupMention(n *UsergroupMention) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformBroadcast(n *Broadcast) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformEmoji(n *Emoji) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}
func (BaseTransformVisitor) TransformDateTimestamp(n *DateTimestamp) (Node, TransformAction, error) {
	return n, ActionKeep, nil
}

// Transform rewrites node and its subtree post-order: children are
// transformed and spliced back first, then the (possibly child-rewritten)
// node itself is passed to its TransformVisitor method. A node deleted by
// its own method is reported to the parent, which drops it from the
// rebuilt children slice. Transform on the root itself returns (nil, nil)
// if the root's own method deletes it.
func Transform(node Node, v TransformVisitor) (Node, error) {
	if node == nil {
		return nil, nil
	}
	rebuilt, err := transformChildren(node, v)
	if err != nil {
		return nil, err
	}
	result, action, err := dispatchTransform(rebuilt, v)
	if err != nil {
		return nil, err
	}
	if action == ActionDelete {
		return nil, nil
	}
	return result, nil
}

// transformChildren recurses into node's children (if any) and returns a
// copy of node with its children slice replaced by the transformed,
// deletion-filtered results. Leaf nodes and nodes with nil children are
// returned unchanged.
func transformChildren(node Node, v TransformVisitor) (Node, error) {
	children := node.Children()
	if children == nil {
		return node, nil
	}
	next := make([]Node, 0, len(children))
	for _, child := range children {
		out, err := Transform(child, v)
		if err != nil {
			return nil, err
		}
		if out != nil {
			next = append(next, out)
		}
	}
	return withChildren(node, next), nil
}

// withChildren returns a shallow copy of node with its children replaced.
// Leaf kinds have no children and are returned unchanged.
func withChildren(node Node, children []Node) Node {
	switch n := node.(type) {
	case *Document:
		return &Document{base{kind: KindDocument, children: children}}
	case *Paragraph:
		return &Paragraph{base{kind: KindParagraph, children: children}}
	case *Heading:
		return &Heading{base{kind: KindHeading, children: children}, n.level}
	case *Quote:
		return &Quote{base{kind: KindQuote, children: children}}
	case *List:
		return &List{base{kind: KindList, children: children}, n.ordered, n.start}
	case *ListItem:
		return &ListItem{base{kind: KindListItem, children: children}}
	case *Bold:
		return &Bold{styleWrapper{base{kind: KindBold, children: children}}}
	case *Italic:
		return &Italic{styleWrapper{base{kind: KindItalic, children: children}}}
	case *Strikethrough:
		return &Strikethrough{styleWrapper{base{kind: KindStrikethrough, children: children}}}
	case *Link:
		return &Link{base{kind: KindLink, children: children}, n.url}
	default:
		return node
	}
}

func dispatchTransform(node Node, v TransformVisitor) (Node, TransformAction, error) {
	switch n := node.(type) {
	case *Document:
		return v.TransformDocument(n)
	case *Paragraph:
		return v.TransformParagraph(n)
	case *Heading:
		return v.TransformHeading(n)
	case *CodeBlock:
		return v.TransformCodeBlock(n)
	case *Quote:
		return v.TransformQuote(n)
	case *List:
		return v.TransformList(n)
	case *ListItem:
		return v.TransformListItem(n)
	case *HorizontalRule:
		return v.TransformHorizontalRule(n)
	case *Text:
		return v.TransformText(n)
	case *Bold:
		return v.TransformBold(n)
	case *Italic:
		return v.TransformItalic(n)
	case *Strikethrough:
		return v.TransformStrikethrough(n)
	case *Code:
		return v.TransformCode(n)
	case *Link:
		return v.TransformLink(n)
	case *UserMention:
		return v.TransformUserMention(n)
	case *ChannelMention:
		return v.TransformChannelMention(n)
	case *UsergroupMention:
		return v.TransformUsergroupMention(n)
	case *Broadcast:
		return v.TransformBroadcast(n)
	case *Emoji:
		return v.TransformEmoji(n)
	case *DateTimestamp:
		return v.TransformDateTimestamp(n)
	default:
		return node, ActionKeep, nil
	}
}
