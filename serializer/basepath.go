package serializer

import (
	"net/url"
	"path"

	"github.com/yosida95/uritemplate/v3"

	"github.com/erraggy/oaspath/internal/pathutil"
	"github.com/erraggy/oaspath/parser"
)

// BasePath derives the request path prefix from the document's first
// server: server variables are expanded with their defaults, and the path
// component of the resulting URL is returned cleaned and without its
// trailing '/'.
// A document without servers, or with an unparsable server URL, yields "".
//
//	https://petshop.com/api        -> /api
//	/v1/                           -> /v1
//	{scheme}://{host}/{basePath}   -> /<basePath default>
func BasePath(doc *parser.OAS3Document) string {
	if doc == nil || len(doc.Servers) == 0 || doc.Servers[0] == nil {
		return ""
	}
	server := doc.Servers[0]

	u, err := url.Parse(expandServerURL(server))
	if err != nil {
		return ""
	}
	p := u.EscapedPath()
	if p == "" {
		return ""
	}
	// empty variables leave doubled slashes behind
	if p = path.Clean(p); p == "/" || p == "." {
		return ""
	}
	return p
}

// expandServerURL substitutes server variable defaults into the server URL.
// Variables are expanded as RFC 6570 reserved expansions so that defaults
// containing '/' stay intact. Names that are not valid template variables
// (such as names containing '-') are substituted literally.
func expandServerURL(server *parser.Server) string {
	raw := server.URL
	if !pathutil.HasPlaceholders(raw) {
		return raw
	}

	tmpl, err := uritemplate.New(pathutil.PathParamRegex.ReplaceAllString(raw, "{+$1}"))
	if err == nil {
		values := uritemplate.Values{}
		for name, v := range server.Variables {
			values.Set(name, uritemplate.String(v.Default))
		}
		if expanded, err := tmpl.Expand(values); err == nil {
			return expanded
		}
	}

	for name, v := range server.Variables {
		raw = pathutil.ReplacePlaceholder(raw, name, v.Default)
	}
	// undeclared variables expand to nothing
	return pathutil.PathParamRegex.ReplaceAllString(raw, "")
}
