package gfm

import (
	"testing"

	"github.com/arcflow-go/richtext/ast"
)

func TestParse_UserDeepLinkNoTeam(t *testing.T) {
	doc, err := Parse("Hi [U1](slack://user?id=U1)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	var mention *ast.UserMention
	for _, n := range para.Inlines() {
		if m, ok := n.(*ast.UserMention); ok {
			mention = m
		}
	}
	if mention == nil {
		t.Fatalf("expected a UserMention, got %#v", para.Inlines())
	}
	if mention.UserID() != "U1" {
		t.Errorf("expected UserID U1, got %s", mention.UserID())
	}
	if _, has := mention.Username(); has {
		t.Errorf("expected no username when label equals id")
	}
}

func TestRender_UserMentionNoTeamNoName(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewText("Hi "), ast.NewUserMention("U1")))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "Hi [U1](slack://user?id=U1)"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRoundTrip_ScenarioA(t *testing.T) {
	md := "Hi [U1](slack://user?id=U1)"
	doc, err := Parse(md)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != md {
		t.Errorf("round trip mismatch: got %q, want %q", out, md)
	}
}

func TestRender_ScenarioE_IDMappingWithTeam(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewUserMentionNamed("U1", "john")))
	out, err := Render(doc, WithTeamID("T9"))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "[@john](slack://user?team=T9&id=U1&name=john)"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_ScenarioF_Broadcast(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewText("hello "), ast.NewBroadcast(ast.BroadcastChannel)))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "hello [@channel](slack://broadcast?range=channel)"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestParse_BroadcastDeepLink(t *testing.T) {
	doc, err := Parse("hello [@channel](slack://broadcast?range=channel)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	var bc *ast.Broadcast
	for _, n := range para.Inlines() {
		if b, ok := n.(*ast.Broadcast); ok {
			bc = b
		}
	}
	if bc == nil || bc.Range() != ast.BroadcastChannel {
		t.Fatalf("expected Broadcast(channel), got %#v", para.Inlines())
	}
}

func TestRender_ScenarioD_CodeBlockTrailingNewline(t *testing.T) {
	doc := ast.NewDocument(ast.NewCodeBlock("xyz\n"))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "```\nxyz\n```"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_CodeBlockEmptyContent(t *testing.T) {
	doc := ast.NewDocument(ast.NewCodeBlock(""))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "```\n```"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestParse_FencedCodeBlockWithLanguage(t *testing.T) {
	doc, err := Parse("```go\nfmt.Println(1)\n```")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	cb := doc.Blocks()[0].(*ast.CodeBlock)
	lang, ok := cb.Language()
	if !ok || lang != "go" {
		t.Errorf("expected language go, got %q (ok=%v)", lang, ok)
	}
	if cb.Content() != "fmt.Println(1)\n" {
		t.Errorf("unexpected content %q", cb.Content())
	}
}

func TestParse_UnknownBlockDegradesToParagraph(t *testing.T) {
	doc, err := Parse("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Blocks()) == 0 {
		t.Fatalf("expected at least one block")
	}
	if _, ok := doc.Blocks()[0].(*ast.Paragraph); !ok {
		t.Errorf("expected table to degrade to a Paragraph, got %T", doc.Blocks()[0])
	}
}

func TestRender_BulletList(t *testing.T) {
	doc := ast.NewDocument(ast.NewList(false, 1,
		ast.NewListItem(ast.NewText("one")),
		ast.NewListItem(ast.NewText("two")),
	))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "- one\n- two"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_OrderedListStart(t *testing.T) {
	doc := ast.NewDocument(ast.NewList(true, 3,
		ast.NewListItem(ast.NewText("first")),
		ast.NewListItem(ast.NewText("second")),
	))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "3. first\n4. second"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_Quote(t *testing.T) {
	doc := ast.NewDocument(ast.NewQuote(ast.NewParagraph(ast.NewText("quoted"))))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "> quoted"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_StylesAndHeading(t *testing.T) {
	doc := ast.NewDocument(
		ast.NewHeading(2, ast.NewText("Title")),
		ast.NewParagraph(ast.NewBold(ast.NewItalic(ast.NewText("x")))),
	)
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "## Title\n\n***x***"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestParse_BlockquoteMultiline(t *testing.T) {
	doc, err := Parse("> line one\n> line two")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	q, ok := doc.Blocks()[0].(*ast.Quote)
	if !ok {
		t.Fatalf("expected *ast.Quote, got %T", doc.Blocks()[0])
	}
	if len(q.Blocks()) != 1 {
		t.Fatalf("expected 1 joined paragraph, got %d", len(q.Blocks()))
	}
}

func TestParse_StrikethroughAndBold(t *testing.T) {
	doc, err := Parse("~~gone~~ and **kept**")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	var sawStrike, sawBold bool
	for _, n := range para.Inlines() {
		switch n.(type) {
		case *ast.Strikethrough:
			sawStrike = true
		case *ast.Bold:
			sawBold = true
		}
	}
	if !sawStrike || !sawBold {
		t.Errorf("expected both Strikethrough and Bold, got %#v", para.Inlines())
	}
}
