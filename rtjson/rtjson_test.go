package rtjson

import (
	"strings"
	"testing"

	"github.com/arcflow-go/richtext/ast"
)

func TestParse_SectionWithUserMention(t *testing.T) {
	input := `{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"text","text":"Hi "},{"type":"user","user_id":"U1"}]}]}`

	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	blocks := doc.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	para, ok := blocks[0].(*ast.Paragraph)
	if !ok {
		t.Fatalf("expected *ast.Paragraph, got %T", blocks[0])
	}
	inlines := para.Inlines()
	if len(inlines) != 2 {
		t.Fatalf("expected 2 inlines, got %d", len(inlines))
	}
	text, ok := inlines[0].(*ast.Text)
	if !ok || text.Text() != "Hi " {
		t.Errorf("expected Text(%q), got %#v", "Hi ", inlines[0])
	}
	mention, ok := inlines[1].(*ast.UserMention)
	if !ok || mention.UserID() != "U1" {
		t.Errorf("expected UserMention(U1), got %#v", inlines[1])
	}
}

func TestParse_BareElementsArray(t *testing.T) {
	input := `[{"type":"rich_text_section","elements":[{"type":"text","text":"hi"}]}]`
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Blocks()) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks()))
	}
}

func TestParse_StyledTextNestingOrder(t *testing.T) {
	input := `{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[
		{"type":"text","text":"x","style":{"bold":true,"italic":true,"strike":true,"code":true}}
	]}]}`
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	para := doc.Blocks()[0].(*ast.Paragraph)
	node := para.Inlines()[0]

	strike, ok := node.(*ast.Strikethrough)
	if !ok {
		t.Fatalf("outermost expected *ast.Strikethrough, got %T", node)
	}
	italic, ok := strike.Inlines()[0].(*ast.Italic)
	if !ok {
		t.Fatalf("expected *ast.Italic inside Strikethrough, got %T", strike.Inlines()[0])
	}
	bold, ok := italic.Inlines()[0].(*ast.Bold)
	if !ok {
		t.Fatalf("expected *ast.Bold inside Italic, got %T", italic.Inlines()[0])
	}
	code, ok := bold.Inlines()[0].(*ast.Code)
	if !ok || code.Content() != "x" {
		t.Fatalf("expected innermost Code(%q), got %#v", "x", bold.Inlines()[0])
	}
}

func TestParse_UnknownElementType(t *testing.T) {
	input := `{"type":"rich_text","elements":[{"type":"rich_text_bogus"}]}`
	_, err := Parse([]byte(input))
	if err == nil {
		t.Fatal("expected parse error for unknown element type")
	}
}

func TestParse_BroadcastInvalidRange(t *testing.T) {
	input := `{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"broadcast","range":"bogus"}]}]}`
	_, err := Parse([]byte(input))
	if err == nil {
		t.Fatal("expected parse error for invalid broadcast range")
	}
}

func TestRoundTrip_SectionWithUserMention(t *testing.T) {
	input := `{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"text","text":"Hi "},{"type":"user","user_id":"U1"}]}]}`
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	doc2, err := Parse(out)
	if err != nil {
		t.Fatalf("re-Parse returned error: %v", err)
	}
	if !doc.Equal(doc2) {
		t.Errorf("round trip not a fixed point:\n got %s", out)
	}
}

func TestRender_CodeBlockStripsTrailingNewline(t *testing.T) {
	doc := ast.NewDocument(ast.NewCodeBlock("xyz\n"))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(string(out), `xyz\n`) {
		t.Errorf("expected trailing newline stripped from rendered content, got %s", out)
	}
	if !strings.Contains(string(out), `"text":"xyz"`) {
		t.Errorf("expected content %q, got %s", "xyz", out)
	}
}

func TestRender_StyleChainCollapsesToOneElement(t *testing.T) {
	node := ast.NewStrikethrough(ast.NewItalic(ast.NewBold(ast.NewText("hi"))))
	doc := ast.NewDocument(ast.NewParagraph(node))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	got := string(out)
	if strings.Count(got, `"type":"text"`) != 1 {
		t.Errorf("expected exactly one collapsed text element, got %s", got)
	}
	for _, want := range []string{`"bold":true`, `"italic":true`, `"strike":true`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %s in rendered style, got %s", want, got)
		}
	}
}

func TestRender_LinkEmptyLabelOmitsText(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewLink("https://example.com")))
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(string(out), `"text"`) {
		t.Errorf("expected no text field for empty-label link, got %s", out)
	}
}

func TestRender_HeadingUnsupportedByRichText(t *testing.T) {
	doc := ast.NewDocument(ast.NewHeading(1, ast.NewText("hi")))
	_, err := Render(doc)
	if err == nil {
		t.Fatal("expected RenderError for Heading, which rich_text cannot represent")
	}
}
