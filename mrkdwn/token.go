// Package mrkdwn implements the Mrkdwn tokenizer and parser: a two-state
// (OUTSIDE / INSIDE_FENCE) lexer feeding a linear parser that builds the
// common AST. Mrkdwn has no formal grammar; correctness here comes from
// ordered per-state rules and bounded lookahead, not a generated parser.
package mrkdwn

// TokenKind enumerates every token the lexer can produce.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenText
	TokenBoldOpen
	TokenBoldClose
	TokenItalicOpen
	TokenItalicClose
	TokenStrikeOpen
	TokenStrikeClose
	TokenInlineCode
	TokenFenceOpen
	TokenFenceClose
	TokenLink
	TokenUserMention
	TokenChannelMention
	TokenUsergroupMention
	TokenBroadcast
	TokenEmoji
	TokenDate
	TokenNewline
	TokenBlankLine
	TokenQuoteMarker
	TokenListMarker
)

// String returns a human-readable token kind name, used in parse error
// context.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenText:
		return "Text"
	case TokenBoldOpen:
		return "BoldOpen"
	case TokenBoldClose:
		return "BoldClose"
	case TokenItalicOpen:
		return "ItalicOpen"
	case TokenItalicClose:
		return "ItalicClose"
	case TokenStrikeOpen:
		return "StrikeOpen"
	case TokenStrikeClose:
		return "StrikeClose"
	case TokenInlineCode:
		return "InlineCode"
	case TokenFenceOpen:
		return "FenceOpen"
	case TokenFenceClose:
		return "FenceClose"
	case TokenLink:
		return "Link"
	case TokenUserMention:
		return "UserMention"
	case TokenChannelMention:
		return "ChannelMention"
	case TokenUsergroupMention:
		return "UsergroupMention"
	case TokenBroadcast:
		return "Broadcast"
	case TokenEmoji:
		return "Emoji"
	case TokenDate:
		return "Date"
	case TokenNewline:
		return "Newline"
	case TokenBlankLine:
		return "BlankLine"
	case TokenQuoteMarker:
		return "QuoteMarker"
	case TokenListMarker:
		return "ListMarker"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit. Only the fields relevant to Kind are
// populated; the rest are zero.
type Token struct {
	Kind   TokenKind
	Offset int

	Text string // TokenText content, TokenInlineCode content

	URL         string // TokenLink
	Label       string // TokenLink / mention display label
	HasLabel    bool
	ID          string // mention ID
	Range       string // TokenBroadcast
	Name        string // TokenEmoji

	EpochSeconds int64 // TokenDate
	Format       string
	HasFormat    bool
	Fallback     string
	HasFallback  bool

	Ordered bool // TokenListMarker
	Number  int  // TokenListMarker start value, when Ordered
}
