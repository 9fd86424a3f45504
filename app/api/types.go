package api

import "net/http/httputil"

// Handler serves the feed document and the service descriptions that point
// clients at the feed and search endpoints. Search is only served, and only
// advertised, when an answer service is configured.
type Handler struct {
	feedFile   string
	publicURL  string
	feedPath   string
	searchPath string
	version    string

	answerProxy *httputil.ReverseProxy
}

// PluginManifest is served at /.well-known/ai-plugin.json
type PluginManifest struct {
	SchemaVersion       string       `json:"schema_version"`
	NameForHuman        string       `json:"name_for_human"`
	NameForModel        string       `json:"name_for_model"`
	DescriptionForHuman string       `json:"description_for_human"`
	DescriptionForModel string       `json:"description_for_model"`
	Auth                ManifestAuth `json:"auth"`
	API                 ManifestAPI  `json:"api"`
}

type ManifestAuth struct {
	Type string `json:"type"`
}

type ManifestAPI struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
