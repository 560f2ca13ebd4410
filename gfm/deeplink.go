// Package gfm is the GitHub-Flavored Markdown codec: it parses GFM text
// into the common node tree via goldmark and renders a tree back to GFM,
// recognizing and producing the platform's slack:// deep links for
// mentions and broadcasts along the way.
package gfm

import "net/url"

// deepLink is the decomposed form of a slack:// URL, in either direction:
// parseDeepLink builds one from a URL string, and buildDeepLink renders
// one back out.
type deepLink struct {
	entity  string // "user", "channel", "usergroup", "broadcast"
	id      string
	team    string
	hasTeam bool
	name    string
	hasName bool
	rng     string
}

// parseDeepLink recognizes a slack://<entity>?... URL and decomposes its
// query parameters. Per §6, parsers accept any order of query parameters
// and ignore unknown ones.
func parseDeepLink(raw string) (deepLink, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "slack" {
		return deepLink{}, false
	}
	q := u.Query()
	switch u.Host {
	case "user", "channel", "usergroup":
		id := q.Get("id")
		if id == "" {
			return deepLink{}, false
		}
		team := q.Get("team")
		name := q.Get("name")
		return deepLink{entity: u.Host, id: id, team: team, hasTeam: team != "", name: name, hasName: name != ""}, true
	case "broadcast":
		rng := q.Get("range")
		if rng == "" {
			return deepLink{}, false
		}
		return deepLink{entity: "broadcast", rng: rng}, true
	default:
		return deepLink{}, false
	}
}

// buildDeepLink renders a slack://<entity> URL. Query parameters are
// emitted team, then id, then name, per §6's schema table.
func buildDeepLink(entity, id string, hasTeam bool, team string, hasName bool, name string) string {
	q := url.Values{}
	if hasTeam {
		q.Set("team", team)
	}
	q.Set("id", id)
	if hasName {
		q.Set("name", name)
	}
	return "slack://" + entity + "?" + encodeOrdered(q, hasTeam, hasName)
}

// encodeOrdered encodes exactly the team/id/name parameters present, in
// that fixed order. url.Values.Encode() sorts keys alphabetically (id,
// name, team), which would violate the schema's team-before-id ordering,
// so the query string is built by hand instead.
func encodeOrdered(q url.Values, hasTeam, hasName bool) string {
	s := "id=" + url.QueryEscape(q.Get("id"))
	if hasTeam {
		s = "team=" + url.QueryEscape(q.Get("team")) + "&" + s
	}
	if hasName {
		s = s + "&name=" + url.QueryEscape(q.Get("name"))
	}
	return s
}

func buildBroadcastLink(rng string) string {
	return "slack://broadcast?range=" + url.QueryEscape(rng)
}
