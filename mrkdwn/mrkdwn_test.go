package mrkdwn

import (
	"testing"

	"github.com/arcflow-go/richtext/ast"
)

func TestLexer_FenceAngleStripping(t *testing.T) {
	lex := NewLexer("```\n<https://example.com>\n```")
	toks := lex.All()

	var texts []string
	for _, tok := range toks {
		if tok.Kind == TokenText {
			texts = append(texts, tok.Text)
		}
	}
	joined := ""
	for _, s := range texts {
		joined += s
	}
	if joined != "\nhttps://example.com\n" {
		t.Errorf("expected stripped URL text, got %q", joined)
	}
}

func TestParse_CodeBlockTrimsFenceEdges(t *testing.T) {
	doc, err := Parse("```\n<https://example.com>\n```")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Blocks()) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks()))
	}
	cb, ok := doc.Blocks()[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("expected *ast.CodeBlock, got %T", doc.Blocks()[0])
	}
	if cb.Content() != "https://example.com" {
		t.Errorf("expected content %q, got %q", "https://example.com", cb.Content())
	}
}

func TestParse_CombinedBoldItalic(t *testing.T) {
	doc, err := Parse("*_bold italic_*")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	if len(para.Inlines()) != 1 {
		t.Fatalf("expected 1 inline, got %d", len(para.Inlines()))
	}
	bold, ok := para.Inlines()[0].(*ast.Bold)
	if !ok {
		t.Fatalf("expected outer *ast.Bold, got %T", para.Inlines()[0])
	}
	italic, ok := bold.Inlines()[0].(*ast.Italic)
	if !ok {
		t.Fatalf("expected *ast.Italic inside Bold, got %T", bold.Inlines()[0])
	}
	text, ok := italic.Inlines()[0].(*ast.Text)
	if !ok || text.Text() != "bold italic" {
		t.Fatalf("expected Text(%q), got %#v", "bold italic", italic.Inlines()[0])
	}
}

func TestParse_Broadcast(t *testing.T) {
	doc, err := Parse("hello <!channel>")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	inlines := para.Inlines()
	if len(inlines) != 2 {
		t.Fatalf("expected 2 inlines, got %d", len(inlines))
	}
	bc, ok := inlines[1].(*ast.Broadcast)
	if !ok || bc.Range() != ast.BroadcastChannel {
		t.Fatalf("expected Broadcast(channel), got %#v", inlines[1])
	}
}

func TestParse_UserMentionWithName(t *testing.T) {
	doc, err := Parse("hi <@U123|bob>")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	mention, ok := para.Inlines()[1].(*ast.UserMention)
	if !ok {
		t.Fatalf("expected *ast.UserMention, got %T", para.Inlines()[1])
	}
	if mention.UserID() != "U123" {
		t.Errorf("expected UserID U123, got %s", mention.UserID())
	}
	name, hasName := mention.Username()
	if !hasName || name != "bob" {
		t.Errorf("expected Username bob, got %q (hasName=%v)", name, hasName)
	}
}

func TestParse_BulletList(t *testing.T) {
	doc, err := Parse("* one\n* two")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	list, ok := doc.Blocks()[0].(*ast.List)
	if !ok {
		t.Fatalf("expected *ast.List, got %T", doc.Blocks()[0])
	}
	if list.Ordered() {
		t.Error("expected unordered list")
	}
	if len(list.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items()))
	}
}

func TestParse_OrderedList(t *testing.T) {
	doc, err := Parse("1. first\n2. second")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	list, ok := doc.Blocks()[0].(*ast.List)
	if !ok || !list.Ordered() {
		t.Fatalf("expected ordered *ast.List, got %#v", doc.Blocks()[0])
	}
	if list.Start() != 1 {
		t.Errorf("expected start 1, got %d", list.Start())
	}
}

func TestParse_Quote(t *testing.T) {
	doc, err := Parse("> first line\n> second line")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	quote, ok := doc.Blocks()[0].(*ast.Quote)
	if !ok {
		t.Fatalf("expected *ast.Quote, got %T", doc.Blocks()[0])
	}
	if len(quote.Blocks()) != 1 {
		t.Fatalf("expected quote to join into 1 paragraph, got %d", len(quote.Blocks()))
	}
}

func TestParse_ParagraphBreakOnBlankLine(t *testing.T) {
	doc, err := Parse("first\n\nsecond")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Blocks()) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Blocks()))
	}
}

func TestParse_SingleNewlineBecomesSpace(t *testing.T) {
	doc, err := Parse("first\nsecond")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	text := para.Inlines()[0].(*ast.Text)
	if text.Text() != "first second" {
		t.Errorf("expected %q, got %q", "first second", text.Text())
	}
}

func TestParse_EmojiShorthand(t *testing.T) {
	doc, err := Parse("nice :+1: work")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	var found bool
	for _, n := range para.Inlines() {
		if e, ok := n.(*ast.Emoji); ok && e.Name() == "+1" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an Emoji(+1) inline, got %#v", para.Inlines())
	}
}

func TestParse_UnrecognizedBroadcastRange(t *testing.T) {
	_, err := Parse("hello <!bogus>")
	if err != nil {
		t.Fatalf("unexpected error for unrecognized !bogus (should degrade to literal text): %v", err)
	}
}

func TestParse_InlineCodeNoStyleParsingInside(t *testing.T) {
	doc, err := Parse("`*not bold*`")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	code, ok := para.Inlines()[0].(*ast.Code)
	if !ok || code.Content() != "*not bold*" {
		t.Fatalf("expected literal Code(%q), got %#v", "*not bold*", para.Inlines()[0])
	}
}
