package ast

// Text is literal, unformatted text content. It is always a leaf.
type Text struct {
	text string
}

// NewText builds a Text node.
func NewText(text string) *Text { return &Text{text: text} }

// Kind returns KindText.
func (n *Text) Kind() Kind { return KindText }

// Children always returns nil for Text.
func (n *Text) Children() []Node { return nil }

// Text returns the literal text content.
func (n *Text) Text() string { return n.text }

// Equal performs deep structural comparison with another node.
func (n *Text) Equal(other Node) bool {
	o, ok := other.(*Text)
	return ok && n.text == o.text
}

// styleWrapper is the shared shape of Bold, Italic, and Strikethrough: a
// style marker wrapping a run of inline content. It is not itself exported;
// each wrapper kind gets its own named type so type switches in visitors
// read naturally.
type styleWrapper struct {
	base
}

func newStyleWrapper(kind Kind, inlines []Node) styleWrapper {
	return styleWrapper{base{kind: kind, children: cloneChildren(inlines)}}
}

// Inlines returns the wrapped inline content.
func (n *styleWrapper) Inlines() []Node { return n.Children() }

// Bold wraps inline content that should render with strong emphasis.
type Bold struct{ styleWrapper }

// NewBold builds a Bold wrapper around the given inlines.
func NewBold(inlines ...Node) *Bold { return &Bold{newStyleWrapper(KindBold, inlines)} }

// Equal performs deep structural comparison with another node.
func (n *Bold) Equal(other Node) bool {
	o, ok := other.(*Bold)
	return ok && equalChildren(n.children, o.children)
}

// Italic wraps inline content that should render with emphasis.
type Italic struct{ styleWrapper }

// NewItalic builds an Italic wrapper around the given inlines.
func NewItalic(inlines ...Node) *Italic { return &Italic{newStyleWrapper(KindItalic, inlines)} }

// Equal performs deep structural comparison with another node.
func (n *Italic) Equal(other Node) bool {
	o, ok := other.(*Italic)
	return ok && equalChildren(n.children, o.children)
}

// Strikethrough wraps inline content that should render struck through.
type Strikethrough struct{ styleWrapper }

// NewStrikethrough builds a Strikethrough wrapper around the given inlines.
func NewStrikethrough(inlines ...Node) *Strikethrough {
	return &Strikethrough{newStyleWrapper(KindStrikethrough, inlines)}
}

// Equal performs deep structural comparison with another node.
func (n *Strikethrough) Equal(other Node) bool {
	o, ok := other.(*Strikethrough)
	return ok && equalChildren(n.children, o.children)
}

// Code is an inline code span. Per invariant 1, it carries no children;
// Content is the final text, verbatim.
type Code struct {
	content string
}

// NewCode builds an inline Code span.
func NewCode(content string) *Code { return &Code{content} }

// Kind returns KindCode.
func (n *Code) Kind() Kind { return KindCode }

// Children always returns nil for Code.
func (n *Code) Children() []Node { return nil }

// Content returns the code span's literal text.
func (n *Code) Content() string { return n.content }

// Equal performs deep structural comparison with another node.
func (n *Code) Equal(other Node) bool {
	o, ok := other.(*Code)
	return ok && n.content == o.content
}

// Link is a hyperlink. Per invariant 2, URL is non-empty; when Inlines is
// empty, renderers display the URL itself as the label.
type Link struct {
	base
	url string
}

// NewLink builds a Link. Callers at a decode boundary are responsible for
// rejecting an empty url; neither encoder checks it.
func NewLink(url string, inlines ...Node) *Link {
	return &Link{base{kind: KindLink, children: cloneChildren(inlines)}, url}
}

// URL returns the link destination.
func (n *Link) URL() string { return n.url }

// Inlines returns the visible label content, possibly empty.
func (n *Link) Inlines() []Node { return n.Children() }

// Equal performs deep structural comparison with another node.
func (n *Link) Equal(other Node) bool {
	o, ok := other.(*Link)
	return ok && n.url == o.url && equalChildren(n.children, o.children)
}

// UserMention references a user by canonical ID (invariant 5). Username is
// advisory display data.
type UserMention struct {
	userID   string
	username string
	hasName  bool
}

// NewUserMention builds a UserMention with no known display name.
func NewUserMention(userID string) *UserMention { return &UserMention{userID: userID} }

// NewUserMentionNamed builds a UserMention with a known display name.
func NewUserMentionNamed(userID, username string) *UserMention {
	return &UserMention{userID: userID, username: username, hasName: username != ""}
}

// Kind returns KindUserMention.
func (n *UserMention) Kind() Kind { return KindUserMention }

// Children always returns nil for UserMention.
func (n *UserMention) Children() []Node { return nil }

// UserID returns the canonical user ID (e.g. "U1234").
func (n *UserMention) UserID() string { return n.userID }

// Username returns the advisory display name and whether one is known.
func (n *UserMention) Username() (string, bool) { return n.username, n.hasName }

// Equal performs deep structural comparison with another node.
func (n *UserMention) Equal(other Node) bool {
	o, ok := other.(*UserMention)
	return ok && n.userID == o.userID && n.username == o.username && n.hasName == o.hasName
}

// ChannelMention references a channel by canonical ID.
type ChannelMention struct {
	channelID   string
	channelName string
	hasName     bool
}

// NewChannelMention builds a ChannelMention with no known display name.
func NewChannelMention(channelID string) *ChannelMention {
	return &ChannelMention{channelID: channelID}
}

// NewChannelMentionNamed builds a ChannelMention with a known display name.
func NewChannelMentionNamed(channelID, channelName string) *ChannelMention {
	return &ChannelMention{channelID: channelID, channelName: channelName, hasName: channelName != ""}
}

// Kind returns KindChannelMention.
func (n *ChannelMention) Kind() Kind { return KindChannelMention }

// Children always returns nil for ChannelMention.
func (n *ChannelMention) Children() []Node { return nil }

// ChannelID returns the canonical channel ID (e.g. "C1234").
func (n *ChannelMention) ChannelID() string { return n.channelID }

// ChannelName returns the advisory display name and whether one is known.
func (n *ChannelMention) ChannelName() (string, bool) { return n.channelName, n.hasName }

// Equal performs deep structural comparison with another node.
func (n *ChannelMention) Equal(other Node) bool {
	o, ok := other.(*ChannelMention)
	return ok && n.channelID == o.channelID && n.channelName == o.channelName && n.hasName == o.hasName
}

// UsergroupMention references a usergroup (subteam) by canonical ID.
type UsergroupMention struct {
	usergroupID   string
	usergroupName string
	hasName       bool
}

// NewUsergroupMention builds a UsergroupMention with no known display name.
func NewUsergroupMention(usergroupID string) *UsergroupMention {
	return &UsergroupMention{usergroupID: usergroupID}
}

// NewUsergroupMentionNamed builds a UsergroupMention with a known display name.
func NewUsergroupMentionNamed(usergroupID, usergroupName string) *UsergroupMention {
	return &UsergroupMention{usergroupID: usergroupID, usergroupName: usergroupName, hasName: usergroupName != ""}
}

// Kind returns KindUsergroupMention.
func (n *UsergroupMention) Kind() Kind { return KindUsergroupMention }

// Children always returns nil for UsergroupMention.
func (n *UsergroupMention) Children() []Node { return nil }

// UsergroupID returns the canonical usergroup ID (e.g. "S1234").
func (n *UsergroupMention) UsergroupID() string { return n.usergroupID }

// UsergroupName returns the advisory display name and whether one is known.
func (n *UsergroupMention) UsergroupName() (string, bool) { return n.usergroupName, n.hasName }

// Equal performs deep structural comparison with another node.
func (n *UsergroupMention) Equal(other Node) bool {
	o, ok := other.(*UsergroupMention)
	return ok && n.usergroupID == o.usergroupID && n.usergroupName == o.usergroupName && n.hasName == o.hasName
}

// BroadcastRange is the closed set of legal Broadcast.Range values
// (invariant 6).
type BroadcastRange string

const (
	BroadcastHere      BroadcastRange = "here"
	BroadcastChannel   BroadcastRange = "channel"
	BroadcastEveryone  BroadcastRange = "everyone"
)

// Valid reports whether r is one of the three legal broadcast ranges.
func (r BroadcastRange) Valid() bool {
	switch r {
	case BroadcastHere, BroadcastChannel, BroadcastEveryone:
		return true
	default:
		return false
	}
}

// Broadcast is a platform meta-mention: @here, @channel, or @everyone.
type Broadcast struct {
	rangeVal BroadcastRange
}

// NewBroadcast builds a Broadcast node. Callers must validate r.Valid()
// at the parse boundary; an invalid range is a ParseError, not a panic.
func NewBroadcast(r BroadcastRange) *Broadcast { return &Broadcast{r} }

// Kind returns KindBroadcast.
func (n *Broadcast) Kind() Kind { return KindBroadcast }

// Children always returns nil for Broadcast.
func (n *Broadcast) Children() []Node { return nil }

// Range returns the broadcast target.
func (n *Broadcast) Range() BroadcastRange { return n.rangeVal }

// Equal performs deep structural comparison with another node.
func (n *Broadcast) Equal(other Node) bool {
	o, ok := other.(*Broadcast)
	return ok && n.rangeVal == o.rangeVal
}

// Emoji is a named emoji, optionally resolved to its Unicode form.
type Emoji struct {
	name    string
	unicode string
	hasUni  bool
}

// NewEmoji builds an Emoji with no known Unicode form.
func NewEmoji(name string) *Emoji { return &Emoji{name: name} }

// NewEmojiWithUnicode builds an Emoji with a resolved Unicode form.
func NewEmojiWithUnicode(name, unicode string) *Emoji {
	return &Emoji{name: name, unicode: unicode, hasUni: unicode != ""}
}

// Kind returns KindEmoji.
func (n *Emoji) Kind() Kind { return KindEmoji }

// Children always returns nil for Emoji.
func (n *Emoji) Children() []Node { return nil }

// Name returns the emoji's colon-delimited name, without colons.
func (n *Emoji) Name() string { return n.name }

// Unicode returns the resolved Unicode form and whether one is known.
func (n *Emoji) Unicode() (string, bool) { return n.unicode, n.hasUni }

// Equal performs deep structural comparison with another node.
func (n *Emoji) Equal(other Node) bool {
	o, ok := other.(*Emoji)
	return ok && n.name == o.name && n.unicode == o.unicode && n.hasUni == o.hasUni
}

// DateTimestamp is a platform-local timestamp rendered client-side from
// EpochSeconds, with an optional format token and a fallback string for
// platforms (like GFM) that cannot render it live.
type DateTimestamp struct {
	epochSeconds int64
	format       string
	hasFormat    bool
	fallback     string
	hasFallback  bool
}

// DateTimestampOption configures optional DateTimestamp fields.
type DateTimestampOption func(*DateTimestamp)

// WithFormat sets the format token (e.g. "{date_short}").
func WithFormat(format string) DateTimestampOption {
	return func(d *DateTimestamp) {
		d.format = format
		d.hasFormat = format != ""
	}
}

// WithFallback sets the plain-text fallback shown where live rendering is
// unavailable.
func WithFallback(fallback string) DateTimestampOption {
	return func(d *DateTimestamp) {
		d.fallback = fallback
		d.hasFallback = fallback != ""
	}
}

// NewDateTimestamp builds a DateTimestamp node.
func NewDateTimestamp(epochSeconds int64, opts ...DateTimestampOption) *DateTimestamp {
	d := &DateTimestamp{epochSeconds: epochSeconds}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Kind returns KindDateTimestamp.
func (n *DateTimestamp) Kind() Kind { return KindDateTimestamp }

// Children always returns nil for DateTimestamp.
func (n *DateTimestamp) Children() []Node { return nil }

// EpochSeconds returns the Unix timestamp.
func (n *DateTimestamp) EpochSeconds() int64 { return n.epochSeconds }

// Format returns the format token and whether one was set.
func (n *DateTimestamp) Format() (string, bool) { return n.format, n.hasFormat }

// Fallback returns the plain-text fallback and whether one was set.
func (n *DateTimestamp) Fallback() (string, bool) { return n.fallback, n.hasFallback }

// Equal performs deep structural comparison with another node.
func (n *DateTimestamp) Equal(other Node) bool {
	o, ok := other.(*DateTimestamp)
	return ok && n.epochSeconds == o.epochSeconds &&
		n.format == o.format && n.hasFormat == o.hasFormat &&
		n.fallback == o.fallback && n.hasFallback == o.hasFallback
}
