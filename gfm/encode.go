package gfm

import (
	"strconv"
	"strings"

	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/rterr"
)

// RenderOption configures a Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	teamID  string
	hasTeam bool
}

// WithTeamID configures the renderer to include team=<teamID> on every
// mention deep link it produces, ahead of id= per §6.
func WithTeamID(teamID string) RenderOption {
	return func(c *renderConfig) {
		c.teamID = teamID
		c.hasTeam = teamID != ""
	}
}

// Render walks doc and produces GFM text. Blocks are joined by a blank
// line; the result never ends with a trailing newline.
func Render(doc *ast.Document, opts ...RenderOption) (string, error) {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	parts := make([]string, 0, len(doc.Blocks()))
	for _, b := range doc.Blocks() {
		s, err := renderBlock(b, &cfg)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n"), nil
}

func renderBlock(n ast.Node, cfg *renderConfig) (string, error) {
	switch b := n.(type) {
	case *ast.Paragraph:
		return renderInlines(b.Inlines(), cfg)

	case *ast.Heading:
		inlines, err := renderInlines(b.Inlines(), cfg)
		if err != nil {
			return "", err
		}
		return strings.Repeat("#", b.Level()) + " " + inlines, nil

	case *ast.CodeBlock:
		lang, _ := b.Language()
		return renderCodeBlock(lang, b.Content()), nil

	case *ast.Quote:
		var lines []string
		for _, child := range b.Blocks() {
			s, err := renderBlock(child, cfg)
			if err != nil {
				return "", err
			}
			lines = append(lines, prefixEachLine(s, "> "))
		}
		return strings.Join(lines, "\n"), nil

	case *ast.List:
		return renderList(b, cfg)

	case *ast.HorizontalRule:
		return "---", nil

	default:
		return "", &rterr.RenderError{Format: "gfm", Kind: n.Kind().String(), Message: "block kind has no gfm representation"}
	}
}

// renderCodeBlock implements §4.4's exact fence formula: a backtick fence,
// optional language, a newline, the content, a newline iff the content
// does not already end in one, and the closing fence. Empty content is a
// special case producing a single separating newline rather than a blank
// content line.
func renderCodeBlock(lang, content string) string {
	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(lang)
	sb.WriteString("\n")
	if content == "" {
		sb.WriteString("```")
		return sb.String()
	}
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

func prefixEachLine(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func renderList(n *ast.List, cfg *renderConfig) (string, error) {
	var items []string
	for i, itemNode := range n.Items() {
		item, ok := itemNode.(*ast.ListItem)
		if !ok {
			continue
		}
		body, err := renderListItemBody(item, cfg)
		if err != nil {
			return "", err
		}
		marker := "- "
		if n.Ordered() {
			marker = strconv.Itoa(n.Start()+i) + ". "
		}
		lines := strings.Split(body, "\n")
		var sb strings.Builder
		sb.WriteString(marker)
		sb.WriteString(lines[0])
		for _, l := range lines[1:] {
			sb.WriteString("\n  ")
			sb.WriteString(l)
		}
		items = append(items, sb.String())
	}
	return strings.Join(items, "\n"), nil
}

// renderListItemBody renders a ListItem's children. A tight item's
// children are inlines rendered as one run; a loose item's children are
// block nodes rendered and joined by a blank line.
func renderListItemBody(item *ast.ListItem, cfg *renderConfig) (string, error) {
	children := item.Children()
	allInline := true
	for _, c := range children {
		if c.Kind().IsBlock() {
			allInline = false
			break
		}
	}
	if allInline {
		return renderInlines(children, cfg)
	}
	var parts []string
	for _, c := range children {
		s, err := renderBlock(c, cfg)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n"), nil
}

func renderInlines(inlines []ast.Node, cfg *renderConfig) (string, error) {
	var sb strings.Builder
	for _, n := range inlines {
		s, err := renderInline(n, cfg)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func renderInline(n ast.Node, cfg *renderConfig) (string, error) {
	switch v := n.(type) {
	case *ast.Text:
		return v.Text(), nil

	case *ast.Bold:
		inner, err := renderInlines(v.Inlines(), cfg)
		if err != nil {
			return "", err
		}
		return "**" + inner + "**", nil

	case *ast.Italic:
		inner, err := renderInlines(v.Inlines(), cfg)
		if err != nil {
			return "", err
		}
		return "*" + inner + "*", nil

	case *ast.Strikethrough:
		inner, err := renderInlines(v.Inlines(), cfg)
		if err != nil {
			return "", err
		}
		return "~~" + inner + "~~", nil

	case *ast.Code:
		return "`" + v.Content() + "`", nil

	case *ast.Link:
		label, err := renderInlines(v.Inlines(), cfg)
		if err != nil {
			return "", err
		}
		if label == "" {
			label = v.URL()
		}
		return "[" + label + "](" + v.URL() + ")", nil

	case *ast.UserMention:
		name, hasName := v.Username()
		return renderMention(cfg, "user", v.UserID(), "@", name, hasName), nil

	case *ast.ChannelMention:
		name, hasName := v.ChannelName()
		return renderMention(cfg, "channel", v.ChannelID(), "#", name, hasName), nil

	case *ast.UsergroupMention:
		name, hasName := v.UsergroupName()
		return renderMention(cfg, "usergroup", v.UsergroupID(), "@", name, hasName), nil

	case *ast.Broadcast:
		r := string(v.Range())
		return "[@" + r + "](" + buildBroadcastLink(r) + ")", nil

	case *ast.Emoji:
		return ":" + v.Name() + ":", nil

	case *ast.DateTimestamp:
		if fb, ok := v.Fallback(); ok {
			return fb, nil
		}
		return strconv.FormatInt(v.EpochSeconds(), 10), nil

	default:
		return "", &rterr.RenderError{Format: "gfm", Kind: n.Kind().String(), Message: "inline kind has no gfm representation"}
	}
}

// renderMention renders a mention as a deep link. The label falls back to
// the bare ID when no display name is known; otherwise it is the sigil
// ("@" or "#") followed by the name, per §4.4.
func renderMention(cfg *renderConfig, entity, id, sigil, name string, hasName bool) string {
	url := buildDeepLink(entity, id, cfg.hasTeam, cfg.teamID, hasName, name)
	label := id
	if hasName {
		label = sigil + name
	}
	return "[" + label + "](" + url + ")"
}
