package theme

import (
	"strings"
	"testing"

	"github.com/arcflow-go/richtext/ast"
)

func TestRenderStyled_WrapsStyledSpansAndKeepsPlainText(t *testing.T) {
	doc := ast.NewDocument(
		ast.NewParagraph(
			ast.NewText("hi "),
			ast.NewBold(ast.NewText("there")),
			ast.NewText(" "),
			ast.NewUserMention("U1"),
		),
	)

	out := defaultTheme.RenderStyled(doc)

	if !strings.Contains(out, "hi ") {
		t.Errorf("expected plain text preserved, got %q", out)
	}
	if !strings.Contains(out, "there") {
		t.Errorf("expected bold text content preserved, got %q", out)
	}
	if !strings.Contains(out, "@U1") {
		t.Errorf("expected mention rendered as @U1, got %q", out)
	}

	plain := defaultTheme.StyleFor(ast.KindBold).Render("there")
	if !strings.Contains(out, plain) {
		t.Errorf("expected bold span styled via StyleFor(KindBold), got %q", out)
	}
}

func TestRenderStyled_CodeBlockAndList(t *testing.T) {
	doc := ast.NewDocument(
		ast.NewCodeBlock("x := 1\n"),
		ast.NewList(false, 1, ast.NewListItem(ast.NewParagraph(ast.NewText("item")))),
	)

	out := defaultTheme.RenderStyled(doc)
	if !strings.Contains(out, "x := 1") {
		t.Errorf("expected code block content preserved, got %q", out)
	}
	if !strings.Contains(out, "- item") {
		t.Errorf("expected bullet list item rendered, got %q", out)
	}
}
