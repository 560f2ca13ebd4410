package mrkdwn

import (
	"strconv"
	"strings"
)

// urlSchemes lists the schemes recognized both for bare angle-bracketed
// links and for the INSIDE_FENCE bracket-stripping rule.
var urlSchemes = []string{"http://", "https://", "mailto:"}

func hasURLScheme(s string) bool {
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// classifyAngle converts the content between an unescaped `<` and `>`
// into a Token, per spec §4.3's angle-parse rules. offset is the source
// position of the opening `<`.
func classifyAngle(content string, offset int) Token {
	switch {
	case strings.HasPrefix(content, "@U"):
		id, name, hasName := splitPipe(content[1:])
		return Token{Kind: TokenUserMention, Offset: offset, ID: id, Label: name, HasLabel: hasName}

	case strings.HasPrefix(content, "#C"):
		id, name, hasName := splitPipe(content[1:])
		return Token{Kind: TokenChannelMention, Offset: offset, ID: id, Label: name, HasLabel: hasName}

	case strings.HasPrefix(content, "!subteam^"):
		rest := strings.TrimPrefix(content, "!subteam^")
		id, name, hasName := splitPipe(rest)
		return Token{Kind: TokenUsergroupMention, Offset: offset, ID: id, Label: name, HasLabel: hasName}

	case strings.HasPrefix(content, "!date^"):
		return classifyDate(content, offset)

	case content == "!here" || strings.HasPrefix(content, "!here|"):
		return classifyBroadcast("here", content, offset)
	case content == "!channel" || strings.HasPrefix(content, "!channel|"):
		return classifyBroadcast("channel", content, offset)
	case content == "!everyone" || strings.HasPrefix(content, "!everyone|"):
		return classifyBroadcast("everyone", content, offset)

	case hasURLScheme(content):
		url, label, hasLabel := splitPipe(content)
		return Token{Kind: TokenLink, Offset: offset, URL: url, Label: label, HasLabel: hasLabel}

	default:
		return Token{Kind: TokenText, Offset: offset, Text: "<" + content + ">"}
	}
}

func classifyBroadcast(r, content string, offset int) Token {
	_, label, hasLabel := splitPipe(content)
	return Token{Kind: TokenBroadcast, Offset: offset, Range: r, Label: label, HasLabel: hasLabel}
}

// classifyDate parses "!date^<unix>^<format>|<fallback>". A malformed
// date body degrades to literal text rather than failing the whole
// parse; the caller treats an unrecognized angle body as plain text too.
func classifyDate(content string, offset int) Token {
	rest := strings.TrimPrefix(content, "!date^")
	fallback := ""
	hasFallback := false
	if idx := strings.IndexByte(rest, '|'); idx >= 0 {
		fallback = rest[idx+1:]
		hasFallback = true
		rest = rest[:idx]
	}
	parts := strings.SplitN(rest, "^", 2)
	epoch, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Token{Kind: TokenText, Offset: offset, Text: "<" + content + ">"}
	}
	format := ""
	hasFormat := false
	if len(parts) == 2 {
		format = parts[1]
		hasFormat = format != ""
	}
	return Token{
		Kind: TokenDate, Offset: offset,
		EpochSeconds: epoch,
		Format:       format, HasFormat: hasFormat,
		Fallback: fallback, HasFallback: hasFallback,
	}
}

// splitPipe splits "value|label" into its two parts. If there is no pipe,
// label is empty and hasLabel is false.
func splitPipe(s string) (value, label string, hasLabel bool) {
	if idx := strings.IndexByte(s, '|'); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
}
