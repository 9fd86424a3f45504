package api

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type openAPIDocument struct {
	OpenAPI string                          `yaml:"openapi"`
	Info    openAPIInfo                     `yaml:"info"`
	Servers []openAPIServer                 `yaml:"servers"`
	Paths   map[string]map[string]operation `yaml:"paths"`
}

type openAPIInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

type openAPIServer struct {
	URL string `yaml:"url"`
}

type operation struct {
	OperationID string              `yaml:"operationId"`
	Summary     string              `yaml:"summary"`
	Parameters  []parameter         `yaml:"parameters,omitempty"`
	Responses   map[string]response `yaml:"responses"`
}

type parameter struct {
	Name        string `yaml:"name"`
	In          string `yaml:"in"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description"`
	Schema      schema `yaml:"schema"`
}

type response struct {
	Description string               `yaml:"description"`
	Content     map[string]mediaType `yaml:"content,omitempty"`
}

type mediaType struct {
	Schema schema `yaml:"schema"`
}

type schema struct {
	Type       string            `yaml:"type"`
	Properties map[string]schema `yaml:"properties,omitempty"`
	Items      *schema           `yaml:"items,omitempty"`
}

var sourceSchema = schema{
	Type: "object",
	Properties: map[string]schema{
		"url":      {Type: "string"},
		"headline": {Type: "string"},
	},
}

func (h *Handler) openAPI() openAPIDocument {
	errorBody := map[string]mediaType{
		"application/json": {Schema: schema{Type: "object", Properties: map[string]schema{"error": {Type: "string"}}}},
	}

	doc := openAPIDocument{
		OpenAPI: "3.0.1",
		Info: openAPIInfo{
			Title:       "newsdesk",
			Description: "News feed and natural language search over its articles",
			Version:     h.version,
		},
		Servers: []openAPIServer{{URL: h.publicURL}},
		Paths: map[string]map[string]operation{
			h.feedPath: {
				"get": {
					OperationID: "getFeed",
					Summary:     "The news feed document",
					Responses: map[string]response{
						"200": {Description: "RSS document", Content: map[string]mediaType{"application/xml": {Schema: schema{Type: "string"}}}},
						"404": {Description: "No feed available", Content: errorBody},
					},
				},
			},
		},
	}

	if h.SearchEnabled() {
		doc.Paths[h.searchPath] = map[string]operation{
			"get": searchOperation(errorBody),
		}
	}

	return doc
}

func searchOperation(errorBody map[string]mediaType) operation {
	return operation{
		OperationID: "searchNews",
		Summary:     "Answer a question using the indexed news articles",
		Parameters: []parameter{{
			Name:        "q",
			In:          "query",
			Required:    true,
			Description: "Free-text question",
			Schema:      schema{Type: "string"},
		}},
		Responses: map[string]response{
			"200": {
				Description: "Answer with cited sources",
				Content: map[string]mediaType{
					"application/json": {Schema: schema{
						Type: "object",
						Properties: map[string]schema{
							"answer":      {Type: "string"},
							"source_data": {Type: "array", Items: &sourceSchema},
						},
					}},
				},
			},
			"400": {Description: "Missing q parameter", Content: errorBody},
			"500": {Description: "Search failed", Content: errorBody},
			"502": {Description: "Answer service unavailable", Content: errorBody},
		},
	}
}

func (h *Handler) openAPIYAML() ([]byte, error) {
	data, err := yaml.Marshal(h.openAPI())
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	return data, nil
}
