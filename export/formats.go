package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extensions maps each format to its file extension.
var extensions = map[Format]string{
	FormatTurtle:   ".ttl",
	FormatNTriples: ".nt",
	FormatJSONLD:   ".jsonld",
}

// ParseFormat resolves a format name or file extension ("ttl", ".nt").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for format, ext := range extensions {
		if name == string(format) || name == ext || "."+name == ext {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
}

// JSONLDDocument is a flattened JSON-LD document.
type JSONLDDocument struct {
	Context map[string]any `json:"@context"`
	Graph   []JSONLDNode   `json:"@graph"`
}

// JSONLDNode is one subject of a JSON-LD graph. Properties sit next to @id and
// @type in the encoded form.
type JSONLDNode struct {
	ID         string
	Type       []string
	Properties map[string]any
}

func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	for k, v := range n.Properties {
		m[k] = v
	}
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	return json.Marshal(m)
}

func (n *JSONLDNode) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	n.ID, _ = m["@id"].(string)
	types, _ := m["@type"].([]any)
	for _, t := range types {
		if s, ok := t.(string); ok {
			n.Type = append(n.Type, s)
		}
	}
	delete(m, "@id")
	delete(m, "@type")
	n.Properties = m
	return nil
}

// ParseJSONLD decodes a document produced by FormatJSONLD.
func ParseJSONLD(data []byte) (*JSONLDDocument, error) {
	var doc JSONLDDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json-ld: %w", err)
	}
	return &doc, nil
}
