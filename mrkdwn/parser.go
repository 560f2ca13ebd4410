package mrkdwn

import (
	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

// Parse tokenizes and parses Mrkdwn source text into a Document.
func Parse(source string) (*ast.Document, error) {
	p := &parser{lex: NewLexer(source)}
	return p.parseDocument()
}

type parser struct {
	lex    *Lexer
	blocks []ast.Node
}

func (p *parser) parseDocument() (*ast.Document, error) {
	for {
		tok := p.lex.Peek()
		switch tok.Kind {
		case TokenEOF:
			return ast.NewDocument(p.blocks...), nil
		case TokenBlankLine:
			p.lex.Next()
		case TokenFenceOpen:
			block, err := p.parseCodeBlock()
			if err != nil {
				return nil, err
			}
			p.blocks = append(p.blocks, block)
		case TokenQuoteMarker:
			block, err := p.parseQuote()
			if err != nil {
				return nil, err
			}
			p.blocks = append(p.blocks, block)
		case TokenListMarker:
			block, err := p.parseList()
			if err != nil {
				return nil, err
			}
			p.blocks = append(p.blocks, block)
		default:
			block, err := p.parseParagraph()
			if err != nil {
				return nil, err
			}
			p.blocks = append(p.blocks, block)
		}
	}
}

func (p *parser) parseCodeBlock() (ast.Node, error) {
	p.lex.Next() // FenceOpen
	var content string
	for {
		tok := p.lex.Next()
		switch tok.Kind {
		case TokenFenceClose:
			content = trimFenceEdges(content)
			return ast.NewCodeBlock(content), nil
		case TokenEOF:
			return nil, &rterr.ParseError{Format: "mrkdwn", Offset: tok.Offset, Message: "unterminated code fence"}
		case TokenText:
			content += tok.Text
		default:
			// INSIDE_FENCE only ever emits Text and FenceClose.
		}
	}
}

// trimFenceEdges removes exactly one leading newline (left by the fence
// marker's own line terminator) and exactly one trailing newline (left
// before the closing fence), per spec §4.3.
func trimFenceEdges(content string) string {
	if len(content) > 0 && content[0] == '\n' {
		content = content[1:]
	}
	if len(content) > 0 && content[len(content)-1] == '\n' {
		content = content[:len(content)-1]
	}
	return content
}

func (p *parser) parseQuote() (ast.Node, error) {
	var inlines []ast.Node
	for {
		p.lex.Next() // QuoteMarker
		lineInlines, terminal, err := p.parseInlineRun(isLineOrBlockEnd)
		if err != nil {
			return nil, err
		}
		if len(inlines) > 0 && len(lineInlines) > 0 {
			inlines = appendText(inlines, " ")
		}
		inlines = append(inlines, lineInlines...)

		if terminal.Kind == TokenNewline {
			p.lex.Next()
			if p.lex.Peek().Kind == TokenQuoteMarker {
				continue
			}
		}
		break
	}
	return ast.NewQuote(ast.NewParagraph(inlines...)), nil
}

func (p *parser) parseList() (ast.Node, error) {
	first := p.lex.Peek()
	ordered := first.Ordered
	var items []ast.Node
	for {
		tok := p.lex.Peek()
		if tok.Kind != TokenListMarker || tok.Ordered != ordered {
			break
		}
		p.lex.Next()
		inlines, terminal, err := p.parseInlineRun(isLineOrBlockEnd)
		if err != nil {
			return nil, err
		}
		items = append(items, ast.NewListItem(inlines...))
		if terminal.Kind == TokenNewline {
			p.lex.Next()
			continue
		}
		break
	}
	return ast.NewList(ordered, first.Number, items...), nil
}

func (p *parser) parseParagraph() (ast.Node, error) {
	inlines, terminal, err := p.parseInlineRun(func(t Token) bool {
		return t.Kind == TokenEOF || t.Kind == TokenBlankLine
	})
	if err != nil {
		return nil, err
	}
	if terminal.Kind == TokenBlankLine {
		p.lex.Next()
	}
	return ast.NewParagraph(inlines...), nil
}

// isLineOrBlockEnd stops an inline run at end of input, a paragraph
// break, or a single line break (the caller decides whether to continue
// onto a following quoted/list line).
func isLineOrBlockEnd(t Token) bool {
	return t.Kind == TokenEOF || t.Kind == TokenBlankLine || t.Kind == TokenNewline
}

// frame is one open style-wrapper scope on the inline-run stack.
type frame struct {
	kind     ast.Kind
	children []ast.Node
}

func buildWrapper(kind ast.Kind, children []ast.Node) ast.Node {
	switch kind {
	case ast.KindBold:
		return ast.NewBold(children...)
	case ast.KindItalic:
		return ast.NewItalic(children...)
	default: // ast.KindStrikethrough
		return ast.NewStrikethrough(children...)
	}
}

// parseInlineRun consumes tokens, building inline nodes, until stopAt
// reports true for the next (unconsumed) token. It returns the built
// inlines and that terminal token so the caller can decide how to
// continue (e.g. a quote joining the next quoted line).
func (p *parser) parseInlineRun(stopAt func(Token) bool) ([]ast.Node, Token, error) {
	var base []ast.Node
	var stack []frame

	level := func() *[]ast.Node {
		if len(stack) > 0 {
			return &stack[len(stack)-1].children
		}
		return &base
	}
	appendNode := func(n ast.Node) {
		lvl := level()
		*lvl = append(*lvl, n)
	}
	appendTextRun := func(s string) {
		lvl := level()
		*lvl = appendText(*lvl, s)
	}
	closeFrame := func(target ast.Kind) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := buildWrapper(top.kind, top.children)
			appendNode(node)
			if top.kind == target {
				break
			}
		}
	}

	for {
		tok := p.lex.Peek()
		if stopAt(tok) {
			break
		}
		switch tok.Kind {
		case TokenEOF:
			break
		case TokenNewline:
			p.lex.Next()
			appendTextRun(" ")
			continue
		case TokenText:
			p.lex.Next()
			appendTextRun(tok.Text)
			continue
		case TokenInlineCode:
			p.lex.Next()
			appendNode(ast.NewCode(tok.Text))
			continue
		case TokenBoldOpen:
			p.lex.Next()
			stack = append(stack, frame{kind: ast.KindBold})
			continue
		case TokenBoldClose:
			p.lex.Next()
			closeFrame(ast.KindBold)
			continue
		case TokenItalicOpen:
			p.lex.Next()
			stack = append(stack, frame{kind: ast.KindItalic})
			continue
		case TokenItalicClose:
			p.lex.Next()
			closeFrame(ast.KindItalic)
			continue
		case TokenStrikeOpen:
			p.lex.Next()
			stack = append(stack, frame{kind: ast.KindStrikethrough})
			continue
		case TokenStrikeClose:
			p.lex.Next()
			closeFrame(ast.KindStrikethrough)
			continue
		case TokenLink:
			p.lex.Next()
			var inlines []ast.Node
			if tok.HasLabel {
				inlines = []ast.Node{ast.NewText(tok.Label)}
			}
			appendNode(ast.NewLink(tok.URL, inlines...))
			continue
		case TokenUserMention:
			p.lex.Next()
			if tok.HasLabel {
				appendNode(ast.NewUserMentionNamed(tok.ID, tok.Label))
			} else {
				appendNode(ast.NewUserMention(tok.ID))
			}
			continue
		case TokenChannelMention:
			p.lex.Next()
			if tok.HasLabel {
				appendNode(ast.NewChannelMentionNamed(tok.ID, tok.Label))
			} else {
				appendNode(ast.NewChannelMention(tok.ID))
			}
			continue
		case TokenUsergroupMention:
			p.lex.Next()
			if tok.HasLabel {
				appendNode(ast.NewUsergroupMentionNamed(tok.ID, tok.Label))
			} else {
				appendNode(ast.NewUsergroupMention(tok.ID))
			}
			continue
		case TokenBroadcast:
			p.lex.Next()
			r := ast.BroadcastRange(tok.Range)
			if !r.Valid() {
				return nil, Token{}, &rterr.ParseError{Format: "mrkdwn", Offset: tok.Offset, Message: "broadcast: unrecognized range"}
			}
			appendNode(ast.NewBroadcast(r))
			continue
		case TokenEmoji:
			p.lex.Next()
			appendNode(ast.NewEmoji(tok.Name))
			continue
		case TokenDate:
			p.lex.Next()
			var opts []ast.DateTimestampOption
			if tok.HasFormat {
				opts = append(opts, ast.WithFormat(tok.Format))
			}
			if tok.HasFallback {
				opts = append(opts, ast.WithFallback(tok.Fallback))
			}
			appendNode(ast.NewDateTimestamp(tok.EpochSeconds, opts...))
			continue
		default:
			// QuoteMarker, ListMarker, FenceOpen, FenceClose mid-run: these
			// only make sense at a line start the caller already consumed
			// past, so treat them as a run boundary.
		}
		break
	}

	// Guarantee against EOF mid-paragraph with dangling style frames: the
	// lexer only ever pairs markers within one paragraph, so this should
	// not normally fire, but an unterminated run must still produce a
	// well-formed tree rather than lose content.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := buildWrapper(top.kind, top.children)
		appendNode(node)
	}

	return base, p.lex.Peek(), nil
}

// appendText merges s into a trailing Text node of level, or appends a
// new one.
func appendText(level []ast.Node, s string) []ast.Node {
	if n := len(level); n > 0 {
		if t, ok := level[n-1].(*ast.Text); ok {
			level[n-1] = ast.NewText(t.Text() + s)
			return level
		}
	}
	return append(level, ast.NewText(s))
}
