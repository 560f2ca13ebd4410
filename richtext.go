// Package richtext is a thin convenience layer over the rtjson, mrkdwn,
// and gfm codecs. It adds one thing none of them has on its own: the
// strict-vs-best-effort error policy from the error handling design.
//
// Strict mode propagates the first error encountered, exactly as calling
// a codec directly would. Best-effort mode — the default, for backward
// compatibility — absorbs a decode error by wrapping the raw input as a
// single Paragraph[Text(raw)]. On encode it replaces every Heading and
// HorizontalRule block with a Paragraph holding that block's printed form
// and renders once more; an encode error from any other node still
// propagates.
package richtext

import (
	"github.com/arcflow-go/richtext/ast"
	"github.com/arcflow-go/richtext/gfm"
	"github.com/arcflow-go/richtext/mrkdwn"
	"github.com/arcflow-go/richtext/rtjson"
	"github.com/arcflow-go/richtext/transform"
)

// Options configures a convenience call's error policy and, for GFM
// rendering, the team ID stamped onto mention deep links.
type Options struct {
	// Strict selects strict mode. The zero value is best-effort.
	Strict bool
	// TeamID is forwarded to gfm.Render via gfm.WithTeamID when non-empty.
	TeamID string
}

func (o Options) gfmOpts() []gfm.RenderOption {
	if o.TeamID == "" {
		return nil
	}
	return []gfm.RenderOption{gfm.WithTeamID(o.TeamID)}
}

// ParseRTJSON decodes RT JSON into a Document. In best-effort mode a
// decode error yields Paragraph[Text(raw)] instead of propagating.
func ParseRTJSON(data []byte, opts Options) (*ast.Document, error) {
	doc, err := rtjson.Parse(data)
	if err == nil {
		return doc, nil
	}
	if opts.Strict {
		return nil, err
	}
	return bestEffortDecode(string(data)), nil
}

// ParseMrkdwn decodes Mrkdwn into a Document, with the same best-effort
// fallback as ParseRTJSON.
func ParseMrkdwn(source string, opts Options) (*ast.Document, error) {
	doc, err := mrkdwn.Parse(source)
	if err == nil {
		return doc, nil
	}
	if opts.Strict {
		return nil, err
	}
	return bestEffortDecode(source), nil
}

// ParseGFM decodes GFM into a Document, with the same best-effort
// fallback as ParseRTJSON. gfm.Parse does not currently return an error:
// goldmark accepts any input, and a slack:// link it cannot decode as a
// mention stays a plain Link, so the fallback is not reached in practice.
func ParseGFM(source string, opts Options) (*ast.Document, error) {
	doc, err := gfm.Parse(source)
	if err == nil {
		return doc, nil
	}
	if opts.Strict {
		return nil, err
	}
	return bestEffortDecode(source), nil
}

func bestEffortDecode(raw string) *ast.Document {
	return ast.NewDocument(ast.NewParagraph(ast.NewText(raw)))
}

// RenderRTJSON encodes doc to RT JSON. In best-effort mode, a block that
// rtjson cannot represent (Heading, HorizontalRule) is degraded to its
// printable form via the debug printer rather than failing the call.
func RenderRTJSON(doc *ast.Document, opts Options) ([]byte, error) {
	data, err := rtjson.Render(doc)
	if err == nil {
		return data, nil
	}
	if opts.Strict {
		return nil, err
	}
	return rtjson.Render(degrade(doc))
}

// RenderGFM encodes doc to GFM text, with the same best-effort fallback
// as RenderRTJSON.
func RenderGFM(doc *ast.Document, opts Options) (string, error) {
	out, err := gfm.Render(doc, opts.gfmOpts()...)
	if err == nil {
		return out, nil
	}
	if opts.Strict {
		return "", err
	}
	return gfm.Render(degrade(doc), opts.gfmOpts()...)
}

// ConvertRTJSONToGFM parses RT JSON and renders it as GFM in one call.
func ConvertRTJSONToGFM(data []byte, opts Options) (string, error) {
	doc, err := ParseRTJSON(data, opts)
	if err != nil {
		return "", err
	}
	return RenderGFM(doc, opts)
}

// ConvertMrkdwnToGFM parses Mrkdwn and renders it as GFM in one call.
func ConvertMrkdwnToGFM(source string, opts Options) (string, error) {
	doc, err := ParseMrkdwn(source, opts)
	if err != nil {
		return "", err
	}
	return RenderGFM(doc, opts)
}

// ConvertGFMToRTJSON parses GFM and renders it as RT JSON in one call.
func ConvertGFMToRTJSON(source string, opts Options) ([]byte, error) {
	doc, err := ParseGFM(source, opts)
	if err != nil {
		return nil, err
	}
	return RenderRTJSON(doc, opts)
}

// degrade replaces every block rtjson cannot represent (Heading,
// HorizontalRule) with a Paragraph holding its printed form, so the
// document as a whole can still be rendered in best-effort mode.
func degrade(doc *ast.Document) *ast.Document {
	out, err := ast.Transform(doc, &degrader{})
	if err != nil {
		// The degrader's own callbacks never error; this path is
		// unreachable in practice.
		return doc
	}
	return out.(*ast.Document)
}

type degrader struct {
	ast.BaseTransformVisitor
}

func (degrader) TransformHeading(n *ast.Heading) (ast.Node, ast.TransformAction, error) {
	return ast.NewParagraph(ast.NewText(transform.Sprint(n))), ast.ActionReplace, nil
}

func (degrader) TransformHorizontalRule(n *ast.HorizontalRule) (ast.Node, ast.TransformAction, error) {
	return ast.NewParagraph(ast.NewText(transform.Sprint(n))), ast.ActionReplace, nil
}
