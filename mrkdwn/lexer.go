package mrkdwn

import "strings"

type lexState uint8

const (
	stateOutside lexState = iota
	stateInsideFence
)

type markRole uint8

const (
	markNone markRole = iota
	markOpen
	markClose
)

const bullet = "•" // U+2022 BULLET

// Lexer tokenizes Mrkdwn source text. It has two states, OUTSIDE and
// INSIDE_FENCE, toggled only by a literal fence run of length three; the
// rest of its behavior is an ordered set of per-position rules (spec
// §4.3), tried in a fixed order at every OUTSIDE position.
type Lexer struct {
	src         string
	pos         int
	state       lexState
	atLineStart bool
	peeked      *Token
	hasPeek     bool

	paraStart int
	marksFor  int
	marksEnd  int
	marks     map[int]markRole
}

// NewLexer builds a Lexer over source text.
func NewLexer(source string) *Lexer {
	return &Lexer{src: source, atLineStart: true, marksFor: -1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if !l.hasPeek {
		t := l.advance()
		l.peeked = &t
		l.hasPeek = true
	}
	return *l.peeked
}

// Next consumes and returns the next token.
func (l *Lexer) Next() Token {
	if l.hasPeek {
		t := *l.peeked
		l.hasPeek = false
		l.peeked = nil
		return t
	}
	return l.advance()
}

// All drains the lexer, returning every token including the trailing EOF.
func (l *Lexer) All() []Token {
	var out []Token
	for {
		t := l.Next()
		out = append(out, t)
		if t.Kind == TokenEOF {
			return out
		}
	}
}

func (l *Lexer) advance() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Offset: l.pos}
	}
	if l.state == stateInsideFence {
		return l.nextInsideFence()
	}
	return l.nextOutside()
}

func (l *Lexer) nextInsideFence() Token {
	if strings.HasPrefix(l.src[l.pos:], "```") {
		off := l.pos
		l.pos += 3
		l.state = stateOutside
		l.paraStart = l.pos
		l.marksFor = -1
		l.atLineStart = false
		return Token{Kind: TokenFenceClose, Offset: off}
	}
	if l.src[l.pos] == '<' {
		if end, content, ok := scanAngleBody(l.src, l.pos); ok && hasURLScheme(content) {
			off := l.pos
			l.pos = end + 1
			return Token{Kind: TokenText, Offset: off, Text: content}
		}
		off := l.pos
		l.pos++
		return Token{Kind: TokenText, Offset: off, Text: "<"}
	}
	off := l.pos
	start := l.pos
	for l.pos < len(l.src) {
		if strings.HasPrefix(l.src[l.pos:], "```") || l.src[l.pos] == '<' {
			break
		}
		l.pos++
	}
	return Token{Kind: TokenText, Offset: off, Text: l.src[start:l.pos]}
}

func (l *Lexer) nextOutside() Token {
	c := l.src[l.pos]

	// Rule 1: fence open.
	if strings.HasPrefix(l.src[l.pos:], "```") {
		off := l.pos
		l.pos += 3
		l.state = stateInsideFence
		l.atLineStart = false
		return Token{Kind: TokenFenceOpen, Offset: off}
	}

	// Newlines: not part of the spec's numbered rule list, but must be
	// recognized before text accumulation so paragraph boundaries land on
	// token edges.
	if c == '\n' {
		off := l.pos
		n := 0
		for l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
			n++
		}
		l.atLineStart = true
		if n >= 2 {
			l.paraStart = l.pos
			l.marksFor = -1
			return Token{Kind: TokenBlankLine, Offset: off}
		}
		return Token{Kind: TokenNewline, Offset: off}
	}

	// Rule 2: angle-bracketed content.
	if c == '<' {
		t := l.lexAngle()
		l.atLineStart = false
		return t
	}

	// Rule 3: inline code span.
	if c == '`' {
		t := l.lexInlineCode()
		l.atLineStart = false
		return t
	}

	// Emoji shorthand. Not part of the spec's numbered OUTSIDE rules, but
	// Emoji is a token kind the parser must be able to produce; colon
	// delimiters never conflict with any other rule's trigger character.
	if c == ':' {
		if name, end, ok := scanEmoji(l.src, l.pos); ok {
			off := l.pos
			l.pos = end
			l.atLineStart = false
			return Token{Kind: TokenEmoji, Offset: off, Name: name}
		}
		off := l.pos
		l.pos++
		l.atLineStart = false
		return Token{Kind: TokenText, Offset: off, Text: ":"}
	}

	// Rules 4-6: style markers, resolved via the paragraph-wide prescan.
	if c == '*' || c == '_' || c == '~' {
		if t, ok := l.lexStyleMarker(c); ok {
			l.atLineStart = false
			return t
		}
		// '*' that is not a matched style marker may still be a bullet.
		if c == '*' && l.atLineStart && l.pos+1 < len(l.src) && l.src[l.pos+1] == ' ' {
			off := l.pos
			l.pos += 2
			l.atLineStart = false
			return Token{Kind: TokenListMarker, Offset: off, Ordered: false}
		}
		off := l.pos
		l.pos++
		l.atLineStart = false
		return Token{Kind: TokenText, Offset: off, Text: string(c)}
	}

	// Rule 7: line-start quote/list markers.
	if l.atLineStart {
		if t, ok := l.lexLineStart(); ok {
			l.atLineStart = false
			return t
		}
	}

	// Rule 8: backslash escapes.
	if c == '\\' && l.pos+1 < len(l.src) && isEscapable(l.src[l.pos+1]) {
		off := l.pos
		esc := l.src[l.pos+1]
		l.pos += 2
		l.atLineStart = false
		return Token{Kind: TokenText, Offset: off, Text: string(esc)}
	}

	// Rule 9: accumulate plain text.
	t := l.lexText()
	l.atLineStart = false
	return t
}

func isEscapable(b byte) bool {
	switch b {
	case '<', '>', '*', '_', '~', '`':
		return true
	default:
		return false
	}
}

func (l *Lexer) lexAngle() Token {
	end, content, ok := scanAngleBody(l.src, l.pos)
	if !ok {
		off := l.pos
		l.pos++
		return Token{Kind: TokenText, Offset: off, Text: "<"}
	}
	off := l.pos
	tok := classifyAngle(content, off)
	l.pos = end + 1
	return tok
}

// scanAngleBody finds the content between an unescaped '<' at pos and
// the next unescaped '>'. It reports the index of the closing '>' and
// whether one was found at all.
func scanAngleBody(src string, pos int) (closeIdx int, content string, ok bool) {
	for i := pos + 1; i < len(src); i++ {
		if src[i] == '>' && src[i-1] != '\\' {
			return i, src[pos+1 : i], true
		}
	}
	return 0, "", false
}

func (l *Lexer) lexInlineCode() Token {
	off := l.pos
	end := l.paragraphEnd(l.pos)
	idx := strings.IndexByte(l.src[l.pos+1:end], '`')
	if idx < 0 {
		l.pos++
		return Token{Kind: TokenText, Offset: off, Text: "`"}
	}
	closeIdx := l.pos + 1 + idx
	content := l.src[l.pos+1 : closeIdx]
	l.pos = closeIdx + 1
	return Token{Kind: TokenInlineCode, Offset: off, Text: content}
}

func (l *Lexer) lexStyleMarker(c byte) (Token, bool) {
	role := l.markRoleAt(l.pos)
	if role == markNone {
		return Token{}, false
	}
	off := l.pos
	l.pos++
	switch c {
	case '*':
		if role == markOpen {
			return Token{Kind: TokenBoldOpen, Offset: off}, true
		}
		return Token{Kind: TokenBoldClose, Offset: off}, true
	case '_':
		if role == markOpen {
			return Token{Kind: TokenItalicOpen, Offset: off}, true
		}
		return Token{Kind: TokenItalicClose, Offset: off}, true
	default: // '~'
		if role == markOpen {
			return Token{Kind: TokenStrikeOpen, Offset: off}, true
		}
		return Token{Kind: TokenStrikeClose, Offset: off}, true
	}
}

func (l *Lexer) lexLineStart() (Token, bool) {
	rest := l.src[l.pos:]

	if strings.HasPrefix(rest, "&gt;") {
		off := l.pos
		l.pos += 4
		if l.pos < len(l.src) && l.src[l.pos] == ' ' {
			l.pos++
		}
		return Token{Kind: TokenQuoteMarker, Offset: off}, true
	}
	if strings.HasPrefix(rest, ">") {
		off := l.pos
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == ' ' {
			l.pos++
		}
		return Token{Kind: TokenQuoteMarker, Offset: off}, true
	}
	if strings.HasPrefix(rest, bullet+" ") {
		off := l.pos
		l.pos += len(bullet) + 1
		return Token{Kind: TokenListMarker, Offset: off, Ordered: false}, true
	}
	if n := digitRun(rest); n > 0 && strings.HasPrefix(rest[n:], ". ") {
		off := l.pos
		number := atoiSafe(rest[:n])
		l.pos += n + 2
		return Token{Kind: TokenListMarker, Offset: off, Ordered: true, Number: number}, true
	}
	return Token{}, false
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func atoiSafe(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func (l *Lexer) lexText() Token {
	off := l.pos
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\n' || c == '<' || c == '`' || c == '*' || c == '_' || c == '~' || c == '\\' || c == ':' {
			break
		}
		if strings.HasPrefix(l.src[l.pos:], "```") {
			break
		}
		l.pos++
	}
	if l.pos == start {
		// Guarantee forward progress for any byte not otherwise handled.
		l.pos++
	}
	return Token{Kind: TokenText, Offset: off, Text: l.src[start:l.pos]}
}

// paragraphEnd returns the end offset of the logical paragraph containing
// pos: the next blank line, fence-open, or end of input.
func (l *Lexer) paragraphEnd(pos int) int {
	rest := l.src[pos:]
	end := len(l.src)
	if idx := strings.Index(rest, "\n\n"); idx >= 0 && pos+idx < end {
		end = pos + idx
	}
	if idx := strings.Index(rest, "```"); idx >= 0 && pos+idx < end {
		end = pos + idx
	}
	return end
}

// markRoleAt returns the precomputed open/close role of the style marker
// at pos, recomputing the paragraph-wide prescan if pos has moved outside
// the cached range.
func (l *Lexer) markRoleAt(pos int) markRole {
	if l.marksFor != l.paraStart || pos < l.paraStart || pos >= l.marksEnd {
		l.recomputeMarks(pos)
	}
	return l.marks[pos]
}

func (l *Lexer) recomputeMarks(pos int) {
	start := l.paraStart
	if pos < start {
		start = pos
	}
	end := l.paragraphEnd(start)
	text := l.src[start:end]
	excluded := excludedRanges(text)

	marks := make(map[int]markRole)
	for _, marker := range []byte{'*', '_', '~'} {
		matchMarkerRune(text, marker, start, excluded, marks)
	}
	l.marksFor = l.paraStart
	l.marksEnd = end
	l.marks = marks
}

// excludedRanges marks byte offsets (relative to text) that fall inside
// an inline code span or an angle-bracketed body, where style markers are
// never recognized as such, plus each line-start "* " bullet marker so
// that it is never paired as bold.
func excludedRanges(text string) []bool {
	excluded := make([]bool, len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '*':
			if (i == 0 || text[i-1] == '\n') && i+1 < len(text) && text[i+1] == ' ' {
				excluded[i] = true
			}
		case '`':
			j := strings.IndexByte(text[i+1:], '`')
			if j < 0 {
				continue
			}
			closeIdx := i + 1 + j
			for k := i; k <= closeIdx && k < len(excluded); k++ {
				excluded[k] = true
			}
			i = closeIdx
		case '<':
			closeIdx, _, ok := scanAngleBody(text, i)
			if !ok {
				continue
			}
			for k := i; k <= closeIdx && k < len(excluded); k++ {
				excluded[k] = true
			}
			i = closeIdx
		}
	}
	return excluded
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// matchMarkerRune implements the single-pending-open matching discipline
// shared by bold, italic, and strikethrough (spec §4.3 rules 4-6): a
// marker opens when not preceded by an alphanumeric, and the most recent
// unmatched open closes at the next marker not followed by an
// alphanumeric. Unmatched opens are left out of the result, which makes
// them literal text.
func matchMarkerRune(text string, marker byte, base int, excluded []bool, out map[int]markRole) {
	pending := -1
	for i := 0; i < len(text); i++ {
		if text[i] != marker || excluded[i] {
			continue
		}
		prevAlnum := i > 0 && isAlnum(text[i-1])
		nextAlnum := i+1 < len(text) && isAlnum(text[i+1])
		if pending >= 0 && !nextAlnum {
			out[base+pending] = markOpen
			out[base+i] = markClose
			pending = -1
			continue
		}
		if !prevAlnum {
			pending = i
		}
	}
}
