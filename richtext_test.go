package richtext

import (
	"strings"
	"testing"

	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/transform"
)

// Scenario (a): RT round-trip with mentions.
func TestScenarioA_RTRoundTripWithMentions(t *testing.T) {
	input := []byte(`{"type":"rich_text","elements":[{"type":"rich_text_section","elements":[{"type":"text","text":"Hi "},{"type":"user","user_id":"U1"}]}]}`)

	gfm, err := ConvertRTJSONToGFM(input, Options{})
	if err != nil {
		t.Fatalf("ConvertRTJSONToGFM failed: %v", err)
	}
	if gfm != "Hi [U1](slack://user?id=U1)" {
		t.Errorf("got GFM %q", gfm)
	}

	doc, err := ParseGFM(gfm, Options{})
	if err != nil {
		t.Fatalf("ParseGFM failed: %v", err)
	}
	out, err := RenderRTJSON(doc, Options{})
	if err != nil {
		t.Fatalf("RenderRTJSON failed: %v", err)
	}
	if !jsonEquivalent(t, string(out), string(input)) {
		t.Errorf("round trip mismatch: got %s, want %s", out, input)
	}
}

// Scenario (b): MK angle-stripping inside a fence.
func TestScenarioB_AngleStrippingInsideFence(t *testing.T) {
	input := "```\n<https://example.com>\n```"
	gfm, err := ConvertMrkdwnToGFM(input, Options{})
	if err != nil {
		t.Fatalf("ConvertMrkdwnToGFM failed: %v", err)
	}
	want := "```\nhttps://example.com\n```"
	if gfm != want {
		t.Errorf("got %q, want %q", gfm, want)
	}
}

// Scenario (c): combined bold+italic styles.
func TestScenarioC_CombinedStyles(t *testing.T) {
	input := "*_bold italic_*"
	gfm, err := ConvertMrkdwnToGFM(input, Options{})
	if err != nil {
		t.Fatalf("ConvertMrkdwnToGFM failed: %v", err)
	}
	if gfm != "***bold italic***" {
		t.Errorf("got %q, want ***bold italic***", gfm)
	}
}

// Scenario (d): code-block trailing newline, driven from RT input.
func TestScenarioD_CodeBlockTrailingNewline(t *testing.T) {
	input := []byte(`{"type":"rich_text","elements":[{"type":"rich_text_preformatted","elements":[{"type":"text","text":"xyz\n"}]}]}`)
	gfm, err := ConvertRTJSONToGFM(input, Options{})
	if err != nil {
		t.Fatalf("ConvertRTJSONToGFM failed: %v", err)
	}
	want := "```\nxyz\n```"
	if gfm != want {
		t.Errorf("got %q, want %q", gfm, want)
	}
}

// Scenario (e): ID mapping chained into GFM rendering.
func TestScenarioE_IDMapping(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewUserMention("U1")))

	mapped, err := transform.MapNames(doc, transform.IDMaps{
		UserNames: map[string]string{"U1": "john"},
	})
	if err != nil {
		t.Fatalf("MapNames failed: %v", err)
	}

	gfm, err := RenderGFM(mapped, Options{TeamID: "T9"})
	if err != nil {
		t.Fatalf("RenderGFM failed: %v", err)
	}
	want := "[@john](slack://user?team=T9&id=U1&name=john)"
	if gfm != want {
		t.Errorf("got %q, want %q", gfm, want)
	}
}

// Scenario (f): MK broadcast parses into a Broadcast node and renders
// through to its GFM deep link.
func TestScenarioF_BroadcastParse(t *testing.T) {
	input := "hello <!channel>"
	doc, err := ParseMrkdwn(input, Options{})
	if err != nil {
		t.Fatalf("ParseMrkdwn failed: %v", err)
	}

	found := ast.FindAll(doc, func(n ast.Node) bool {
		b, ok := n.(*ast.Broadcast)
		return ok && b.Range() == "channel"
	})
	if len(found) != 1 {
		t.Fatalf("expected exactly one Broadcast{channel}, found %d", len(found))
	}

	gfm, err := RenderGFM(doc, Options{})
	if err != nil {
		t.Fatalf("RenderGFM failed: %v", err)
	}
	want := "hello [@channel](slack://broadcast?range=channel)"
	if gfm != want {
		t.Errorf("got %q, want %q", gfm, want)
	}
}

func TestParseRTJSON_BestEffortFallsBackToRawParagraph(t *testing.T) {
	doc, err := ParseRTJSON([]byte("not json"), Options{})
	if err != nil {
		t.Fatalf("expected best-effort mode to absorb the error, got %v", err)
	}
	para, ok := doc.Blocks()[0].(*ast.Paragraph)
	if !ok || len(para.Inlines()) != 1 {
		t.Fatalf("expected a single-paragraph fallback, got %#v", doc.Blocks())
	}
	text, ok := para.Inlines()[0].(*ast.Text)
	if !ok || text.Text() != "not json" {
		t.Errorf("expected raw text preserved, got %#v", para.Inlines()[0])
	}
}

func TestParseRTJSON_StrictPropagatesError(t *testing.T) {
	_, err := ParseRTJSON([]byte("not json"), Options{Strict: true})
	if err == nil {
		t.Fatal("expected strict mode to propagate the decode error")
	}
}

func TestRenderRTJSON_BestEffortDegradesHeading(t *testing.T) {
	doc := ast.NewDocument(ast.NewHeading(2, ast.NewText("Title")))
	out, err := RenderRTJSON(doc, Options{})
	if err != nil {
		t.Fatalf("expected best-effort mode to degrade the heading, got %v", err)
	}
	if !strings.Contains(string(out), "Title") {
		t.Errorf("expected degraded output to retain the heading text, got %s", out)
	}
}

func TestRenderRTJSON_StrictPropagatesError(t *testing.T) {
	doc := ast.NewDocument(ast.NewHeading(2, ast.NewText("Title")))
	_, err := RenderRTJSON(doc, Options{Strict: true})
	if err == nil {
		t.Fatal("expected strict mode to propagate the render error for an unrepresentable heading")
	}
}

// jsonEquivalent compares two JSON documents for structural equality,
// ignoring key order, matching invariant 1's "modulo key order" clause.
func jsonEquivalent(t *testing.T, got, want string) bool {
	t.Helper()
	a, err := ParseRTJSON([]byte(got), Options{Strict: true})
	if err != nil {
		t.Fatalf("failed to parse got JSON: %v", err)
	}
	b, err := ParseRTJSON([]byte(want), Options{Strict: true})
	if err != nil {
		t.Fatalf("failed to parse want JSON: %v", err)
	}
	return transform.Sprint(a) == transform.Sprint(b)
}
