package transform

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcflow-go/richtext/ast"
)

// Sprint renders node as an indented textual tree, for debugging. It is
// pure and side-effect-free: it never mutates node and has no observable
// effect beyond its return value.
func Sprint(node ast.Node) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, node)
	return buf.String()
}

// Fprint streams the same tree Sprint produces to w, without buffering
// the whole result.
func Fprint(w io.Writer, node ast.Node) error {
	p := &printer{w: w}
	p.printNode(node, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) printNode(node ast.Node, depth int) {
	if p.err != nil {
		return
	}
	if node == nil {
		p.writeString(strings.Repeat("  ", depth) + "<nil>\n")
		return
	}
	p.writeString(strings.Repeat("  ", depth))
	p.writeString(node.Kind().String())
	p.writeString(detail(node))
	p.writeString("\n")
	for _, child := range node.Children() {
		p.printNode(child, depth+1)
	}
}

// detail returns the node's leaf data formatted as "(...)", or an empty
// string for nodes with no scalar fields of their own.
func detail(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Heading:
		return fmt.Sprintf("(level=%d)", n.Level())
	case *ast.CodeBlock:
		lang, hasLang := n.Language()
		if hasLang {
			return fmt.Sprintf("(language=%s, content=%s)", lang, quote(n.Content()))
		}
		return fmt.Sprintf("(content=%s)", quote(n.Content()))
	case *ast.List:
		if n.Ordered() {
			return fmt.Sprintf("(ordered, start=%d)", n.Start())
		}
		return "(bullet)"
	case *ast.Text:
		return fmt.Sprintf("(%s)", quote(n.Text()))
	case *ast.Code:
		return fmt.Sprintf("(%s)", quote(n.Content()))
	case *ast.Link:
		return fmt.Sprintf("(url=%s)", quote(n.URL()))
	case *ast.UserMention:
		if name, ok := n.Username(); ok {
			return fmt.Sprintf("(user_id=%s, username=%s)", n.UserID(), quote(name))
		}
		return fmt.Sprintf("(user_id=%s)", n.UserID())
	case *ast.ChannelMention:
		if name, ok := n.ChannelName(); ok {
			return fmt.Sprintf("(channel_id=%s, channel_name=%s)", n.ChannelID(), quote(name))
		}
		return fmt.Sprintf("(channel_id=%s)", n.ChannelID())
	case *ast.UsergroupMention:
		if name, ok := n.UsergroupName(); ok {
			return fmt.Sprintf("(usergroup_id=%s, usergroup_name=%s)", n.UsergroupID(), quote(name))
		}
		return fmt.Sprintf("(usergroup_id=%s)", n.UsergroupID())
	case *ast.Broadcast:
		return fmt.Sprintf("(range=%s)", n.Range())
	case *ast.Emoji:
		if uni, ok := n.Unicode(); ok {
			return fmt.Sprintf("(name=%s, unicode=%s)", n.Name(), quote(uni))
		}
		return fmt.Sprintf("(name=%s)", n.Name())
	case *ast.DateTimestamp:
		parts := []string{"epoch=" + strconv.FormatInt(n.EpochSeconds(), 10)}
		if format, ok := n.Format(); ok {
			parts = append(parts, "format="+quote(format))
		}
		if fallback, ok := n.Fallback(); ok {
			parts = append(parts, "fallback="+quote(fallback))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return ""
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}
