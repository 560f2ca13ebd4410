package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

func TestMapNames_ScenarioE(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewUserMention("U1")))
	out, err := MapNames(doc, IDMaps{UserNames: map[string]string{"U1": "john"}})
	if err != nil {
		t.Fatalf("MapNames returned error: %v", err)
	}
	para := out.Blocks()[0].(*ast.Paragraph)
	mention := para.Inlines()[0].(*ast.UserMention)
	name, ok := mention.Username()
	if !ok || name != "john" {
		t.Errorf("expected mapped username john, got %q (ok=%v)", name, ok)
	}
}

func TestMapNames_NonMatchingIDUnchanged(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewUserMention("U1")))
	out, err := MapNames(doc, IDMaps{UserNames: map[string]string{"U2": "someone else"}})
	if err != nil {
		t.Fatalf("MapNames returned error: %v", err)
	}
	mention := out.Blocks()[0].(*ast.Paragraph).Inlines()[0].(*ast.UserMention)
	if _, ok := mention.Username(); ok {
		t.Errorf("expected unmapped mention to stay unnamed")
	}
}

func TestApply_TextRewriteCallback(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewText("hello")))
	out, err := Apply(doc, Callbacks{
		Text: func(n *ast.Text) (ast.Node, ast.TransformAction, error) {
			return ast.NewText(strings.ToUpper(n.Text())), ast.ActionReplace, nil
		},
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	text := out.Blocks()[0].(*ast.Paragraph).Inlines()[0].(*ast.Text)
	if text.Text() != "HELLO" {
		t.Errorf("expected HELLO, got %q", text.Text())
	}
}

func TestApply_DeleteNode(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewText("keep"), ast.NewEmoji("wave")))
	out, err := Apply(doc, Callbacks{
		Emoji: func(n *ast.Emoji) (ast.Node, ast.TransformAction, error) {
			return nil, ast.ActionDelete, nil
		},
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	inlines := out.Blocks()[0].(*ast.Paragraph).Inlines()
	if len(inlines) != 1 {
		t.Fatalf("expected emoji to be deleted, got %d inlines", len(inlines))
	}
}

func TestApply_CallbackErrorWrapsAsTransformError(t *testing.T) {
	doc := ast.NewDocument(ast.NewParagraph(ast.NewText("x")))
	boom := errors.New("boom")
	_, err := Apply(doc, Callbacks{
		Text: func(n *ast.Text) (ast.Node, ast.TransformAction, error) {
			return nil, ast.ActionKeep, boom
		},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	var terr *rterr.TransformError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *rterr.TransformError, got %T", err)
	}
	if !errors.Is(terr, boom) {
		t.Errorf("expected wrapped error to unwrap to boom")
	}
}

func TestSprint_Basic(t *testing.T) {
	doc := ast.NewDocument(
		ast.NewParagraph(ast.NewText("hi "), ast.NewUserMention("U1")),
	)
	out := Sprint(doc)
	if !strings.Contains(out, "Document") || !strings.Contains(out, "Paragraph") {
		t.Errorf("expected tree to mention Document and Paragraph, got:\n%s", out)
	}
	if !strings.Contains(out, "user_id=U1") {
		t.Errorf("expected mention detail in output, got:\n%s", out)
	}
}

func TestSprint_Indentation(t *testing.T) {
	doc := ast.NewDocument(ast.NewQuote(ast.NewParagraph(ast.NewText("x"))))
	out := Sprint(doc)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (Document, Quote, Paragraph, Text), got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "  Quote") {
		t.Errorf("expected Quote indented by 2 spaces, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    Paragraph") {
		t.Errorf("expected Paragraph indented by 4 spaces, got %q", lines[2])
	}
}
