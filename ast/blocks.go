package ast

// Document is the root of every AST. Its Blocks are in source order;
// adjacent Paragraphs are never merged (invariant 4).
type Document struct {
	base
}

// NewDocument builds a Document from its top-level blocks.
func NewDocument(blocks ...Node) *Document {
	return &Document{base{kind: KindDocument, children: cloneChildren(blocks)}}
}

// Blocks returns the document's top-level block children.
func (n *Document) Blocks() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *Document) Equal(other Node) bool {
	o, ok := other.(*Document)
	return ok && equalChildren(n.children, o.children)
}

// Paragraph is a run of inline content terminated by a block boundary.
type Paragraph struct {
	base
}

// NewParagraph builds a Paragraph from its inline children.
func NewParagraph(inlines ...Node) *Paragraph {
	return &Paragraph{base{kind: KindParagraph, children: cloneChildren(inlines)}}
}

// Inlines returns the paragraph's inline children.
func (n *Paragraph) Inlines() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *Paragraph) Equal(other Node) bool {
	o, ok := other.(*Paragraph)
	return ok && equalChildren(n.children, o.children)
}

// Heading is an ATX-style header, level 1 through 6.
type Heading struct {
	base
	level int
}

// NewHeading builds a Heading. The level is not validated here: callers
// pass a value in [1,6] (the GFM decoder clamps its input into that range
// before calling this constructor).
func NewHeading(level int, inlines ...Node) *Heading {
	return &Heading{base{kind: KindHeading, children: cloneChildren(inlines)}, level}
}

// Level returns the heading level, 1 through 6.
func (n *Heading) Level() int { return n.level }

// Inlines returns the heading's inline children.
func (n *Heading) Inlines() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *Heading) Equal(other Node) bool {
	o, ok := other.(*Heading)
	return ok && n.level == o.level && equalChildren(n.children, o.children)
}

// CodeBlock is a fenced or preformatted block. Per invariant 1, it carries
// no child inlines: Content is the final text, verbatim.
type CodeBlock struct {
	content  string
	language string // empty means "no language"
	hasLang  bool
}

// NewCodeBlock builds a CodeBlock with no declared language.
func NewCodeBlock(content string) *CodeBlock {
	return &CodeBlock{content: content}
}

// NewCodeBlockWithLanguage builds a CodeBlock with a declared language.
func NewCodeBlockWithLanguage(content, language string) *CodeBlock {
	return &CodeBlock{content: content, language: language, hasLang: language != ""}
}

// Kind returns KindCodeBlock.
func (n *CodeBlock) Kind() Kind { return KindCodeBlock }

// Children always returns nil for a CodeBlock.
func (n *CodeBlock) Children() []Node { return nil }

// Content returns the raw code text, verbatim.
func (n *CodeBlock) Content() string { return n.content }

// Language returns the declared language and whether one was set.
func (n *CodeBlock) Language() (string, bool) { return n.language, n.hasLang }

// Equal performs deep structural comparison with another node.
func (n *CodeBlock) Equal(other Node) bool {
	o, ok := other.(*CodeBlock)
	return ok && n.content == o.content && n.language == o.language && n.hasLang == o.hasLang
}

// Quote is a block quote; its Blocks are nested block content.
type Quote struct {
	base
}

// NewQuote builds a Quote from its nested blocks.
func NewQuote(blocks ...Node) *Quote {
	return &Quote{base{kind: KindQuote, children: cloneChildren(blocks)}}
}

// Blocks returns the quote's nested block children.
func (n *Quote) Blocks() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *Quote) Equal(other Node) bool {
	o, ok := other.(*Quote)
	return ok && equalChildren(n.children, o.children)
}

// List is an ordered or unordered (bullet) list. Start is the first
// ordinal for ordered lists (default 1); it is ignored for bullet lists.
type List struct {
	base
	ordered bool
	start   int
}

// NewList builds a List from its items. Start defaults to 1 when ordered
// and zero/negative is passed.
func NewList(ordered bool, start int, items ...Node) *List {
	if start <= 0 {
		start = 1
	}
	return &List{base{kind: KindList, children: cloneChildren(items)}, ordered, start}
}

// Ordered reports whether this is a numbered list.
func (n *List) Ordered() bool { return n.ordered }

// Start returns the first ordinal for an ordered list.
func (n *List) Start() int { return n.start }

// Items returns the list's ListItem children.
func (n *List) Items() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *List) Equal(other Node) bool {
	o, ok := other.(*List)
	if !ok || n.ordered != o.ordered {
		return false
	}
	if n.ordered && n.start != o.start {
		return false
	}
	return equalChildren(n.children, o.children)
}

// ListItem is a single item of a List. Its children may be a mix of block
// and inline nodes (a loose item may contain multiple paragraphs and a
// nested List; a tight item typically contains only inlines).
type ListItem struct {
	base
}

// NewListItem builds a ListItem from its mixed block/inline children.
func NewListItem(children ...Node) *ListItem {
	return &ListItem{base{kind: KindListItem, children: cloneChildren(children)}}
}

// Equal performs deep structural comparison with another node.
func (n *ListItem) Equal(other Node) bool {
	o, ok := other.(*ListItem)
	return ok && equalChildren(n.children, o.children)
}

// HorizontalRule is a thematic break with no content.
type HorizontalRule struct{}

// NewHorizontalRule builds a HorizontalRule.
func NewHorizontalRule() *HorizontalRule { return &HorizontalRule{} }

// Kind returns KindHorizontalRule.
func (n *HorizontalRule) Kind() Kind { return KindHorizontalRule }

// Children always returns nil for a HorizontalRule.
func (n *HorizontalRule) Children() []Node { return nil }

// Equal reports true for any other HorizontalRule.
func (n *HorizontalRule) Equal(other Node) bool {
	_, ok := other.(*HorizontalRule)
	return ok
}
