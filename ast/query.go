package ast

// FindAll walks node's subtree and returns every node for which match
// returns true, in pre-order.
func FindAll(node Node, match func(Node) bool) []Node {
	var out []Node
	_ = Walk(node, collectorVisitor{match: match, out: &out})
	return out
}

// collectorVisitor adapts a predicate into a Visitor that records matches
// without ever stopping the walk.
type collectorVisitor struct {
	BaseVisitor
	match func(Node) bool
	out   *[]Node
}

func (c collectorVisitor) record(n Node) error {
	if c.match(n) {
		*c.out = append(*c.out, n)
	}
	return nil
}

func (c collectorVisitor) VisitDocument(n *Document) error             { return c.record(n) }
func (c collectorVisitor) VisitParagraph(n *Paragraph) error           { return c.record(n) }
func (c collectorVisitor) VisitHeading(n *Heading) error               { return c.record(n) }
func (c collectorVisitor) VisitCodeBlock(n *CodeBlock) error           { return c.record(n) }
func (c collectorVisitor) VisitQuote(n *Quote) error                   { return c.record(n) }
func (c collectorVisitor) VisitList(n *List) error                     { return c.record(n) }
func (c collectorVisitor) VisitListItem(n *ListItem) error             { return c.record(n) }
func (c collectorVisitor) VisitHorizontalRule(n *HorizontalRule) error { return c.record(n) }
func (c collectorVisitor) VisitText(n *Text) error                     { return c.record(n) }
func (c collectorVisitor) VisitBold(n *Bold) error                     { return c.record(n) }
func (c collectorVisitor) VisitItalic(n *Italic) error                 { return c.record(n) }
func (c collectorVisitor) VisitStrikethrough(n *Strikethrough) error   { return c.record(n) }
func (c collectorVisitor) VisitCode(n *Code) error                     { return c.record(n) }
func (c collectorVisitor) VisitLink(n *Link) error                     { return c.record(n) }
func (c collectorVisitor) VisitUserMention(n *UserMention) error       { return c.record(n) }
func (c collectorVisitor) VisitChannelMention(n *ChannelMention) error { return c.record(n) }
func (c collectorVisitor) VisitUsergroupMention(n *UsergroupMention) error {
	return c.record(n)
}
func (c collectorVisitor) VisitBroadcast(n *Broadcast) error           { return c.record(n) }
func (c collectorVisitor) VisitEmoji(n *Emoji) error                   { return c.record(n) }
func (c collectorVisitor) VisitDateTimestamp(n *DateTimestamp) error   { return c.record(n) }

// Mention is the common shape of the three ID-bearing mention kinds,
// returned by CollectMentions so callers needn't switch on concrete type
// for the common case of "every ID this document references".
type Mention struct {
	Kind Kind
	ID   string
}

// CollectMentions returns every UserMention, ChannelMention, and
// UsergroupMention in node's subtree, in document order.
func CollectMentions(node Node) []Mention {
	var out []Mention
	_ = Walk(node, mentionVisitor{out: &out})
	return out
}

type mentionVisitor struct {
	BaseVisitor
	out *[]Mention
}

func (m mentionVisitor) VisitUserMention(n *UserMention) error {
	*m.out = append(*m.out, Mention{KindUserMention, n.UserID()})
	return nil
}

func (m mentionVisitor) VisitChannelMention(n *ChannelMention) error {
	*m.out = append(*m.out, Mention{KindChannelMention, n.ChannelID()})
	return nil
}

func (m mentionVisitor) VisitUsergroupMention(n *UsergroupMention) error {
	*m.out = append(*m.out, Mention{KindUsergroupMention, n.UsergroupID()})
	return nil
}
