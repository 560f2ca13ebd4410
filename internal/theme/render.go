package theme

import (
	"strconv"
	"strings"

	"github.com/arcflow-go/richtext/ast"
)

// RenderStyled walks doc and renders it as plain text with every styled
// span (Bold, Italic, Strikethrough, Code, Link, mentions, Broadcast,
// Emoji, DateTimestamp) wrapped in the style StyleFor returns for its
// kind, so the view command can show a highlighted rendering of a
// document side by side with its raw source.
func (t *Theme) RenderStyled(doc *ast.Document) string {
	blocks := make([]string, 0, len(doc.Blocks()))
	for _, b := range doc.Blocks() {
		blocks = append(blocks, t.renderBlock(b))
	}
	return strings.Join(blocks, "\n\n")
}

func (t *Theme) renderBlock(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Paragraph:
		return t.renderInlines(n.Inlines())
	case *ast.Heading:
		return t.renderInlines(n.Inlines())
	case *ast.CodeBlock:
		return t.StyleFor(ast.KindCodeBlock).Render(n.Content())
	case *ast.Quote:
		lines := make([]string, 0, len(n.Blocks()))
		for _, b := range n.Blocks() {
			lines = append(lines, "> "+t.renderBlock(b))
		}
		return strings.Join(lines, "\n")
	case *ast.List:
		return t.renderList(n)
	case *ast.HorizontalRule:
		return "---"
	default:
		return ""
	}
}

func (t *Theme) renderList(n *ast.List) string {
	lines := make([]string, 0, len(n.Items()))
	for i, item := range n.Items() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "-"
		if n.Ordered() {
			marker = strconv.Itoa(n.Start()+i) + "."
		}
		sep := ""
		parts := make([]string, 0, len(li.Children()))
		for _, c := range li.Children() {
			if c.Kind().IsInline() {
				parts = append(parts, t.renderInline(c))
				continue
			}
			sep = " "
			parts = append(parts, t.renderBlock(c))
		}
		lines = append(lines, marker+" "+strings.Join(parts, sep))
	}
	return strings.Join(lines, "\n")
}

func (t *Theme) renderInlines(inlines []ast.Node) string {
	parts := make([]string, 0, len(inlines))
	for _, n := range inlines {
		parts = append(parts, t.renderInline(n))
	}
	return strings.Join(parts, "")
}

func (t *Theme) renderInline(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Text:
		return n.Text()
	case *ast.Bold:
		return t.StyleFor(ast.KindBold).Render(t.renderInlines(n.Inlines()))
	case *ast.Italic:
		return t.StyleFor(ast.KindItalic).Render(t.renderInlines(n.Inlines()))
	case *ast.Strikethrough:
		return t.StyleFor(ast.KindStrikethrough).Render(t.renderInlines(n.Inlines()))
	case *ast.Code:
		return t.StyleFor(ast.KindCode).Render(n.Content())
	case *ast.Link:
		return t.StyleFor(ast.KindLink).Render(t.renderInlines(n.Inlines()))
	case *ast.UserMention:
		return t.StyleFor(ast.KindUserMention).Render("@" + n.UserID())
	case *ast.ChannelMention:
		return t.StyleFor(ast.KindChannelMention).Render("#" + n.ChannelID())
	case *ast.UsergroupMention:
		return t.StyleFor(ast.KindUsergroupMention).Render("@" + n.UsergroupID())
	case *ast.Broadcast:
		return t.StyleFor(ast.KindBroadcast).Render("@" + string(n.Range()))
	case *ast.Emoji:
		return t.StyleFor(ast.KindEmoji).Render(":" + n.Name() + ":")
	case *ast.DateTimestamp:
		label := strconv.FormatInt(n.EpochSeconds(), 10)
		if fb, ok := n.Fallback(); ok {
			label = fb
		}
		return t.StyleFor(ast.KindDateTimestamp).Render(label)
	default:
		return ""
	}
}
