package transform

import "github.com/arcflow-go/richtext/ast"

// IDMaps holds the ID→display-name tables used by MapNames. Any mention
// whose ID is absent from the relevant map is left unchanged.
type IDMaps struct {
	UserNames      map[string]string
	ChannelNames   map[string]string
	UsergroupNames map[string]string
}

// MapNames replaces mention nodes whose canonical ID appears in maps with
// copies carrying the mapped display name. Mentions with no matching
// entry pass through unchanged, per §4.5.
func MapNames(doc *ast.Document, maps IDMaps) (*ast.Document, error) {
	out, err := ast.Transform(doc, &idMapTransformer{maps: maps})
	if err != nil {
		return nil, err
	}
	return out.(*ast.Document), nil
}

type idMapTransformer struct {
	ast.BaseTransformVisitor
	maps IDMaps
}

func (t *idMapTransformer) TransformUserMention(n *ast.UserMention) (ast.Node, ast.TransformAction, error) {
	if name, ok := t.maps.UserNames[n.UserID()]; ok {
		return ast.NewUserMentionNamed(n.UserID(), name), ast.ActionReplace, nil
	}
	return n, ast.ActionKeep, nil
}

func (t *idMapTransformer) TransformChannelMention(n *ast.ChannelMention) (ast.Node, ast.TransformAction, error) {
	if name, ok := t.maps.ChannelNames[n.ChannelID()]; ok {
		return ast.NewChannelMentionNamed(n.ChannelID(), name), ast.ActionReplace, nil
	}
	return n, ast.ActionKeep, nil
}

func (t *idMapTransformer) TransformUsergroupMention(n *ast.UsergroupMention) (ast.Node, ast.TransformAction, error) {
	if name, ok := t.maps.UsergroupNames[n.UsergroupID()]; ok {
		return ast.NewUsergroupMentionNamed(n.UsergroupID(), name), ast.ActionReplace, nil
	}
	return n, ast.ActionKeep, nil
}
