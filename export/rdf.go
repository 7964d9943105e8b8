// Package export serializes systematics graphs to RDF with BFO/CCO/PROV-O
// alignment.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/vocabulary/systematics"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// RDFExporter exports entities to RDF with configurable ontology profiles.
type RDFExporter struct {
	asserter *TypeAsserter
	entities []Entity
	prefixes map[string]string
}

// NewRDFExporter creates a new RDF exporter with the specified profile.
func NewRDFExporter(profile Profile) *RDFExporter {
	return &RDFExporter{
		asserter: NewTypeAsserter(profile),
		entities: make([]Entity, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":         "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":        "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":         "http://www.w3.org/2001/XMLSchema#",
		"dc":          "http://purl.org/dc/terms/",
		"skos":        "http://www.w3.org/2004/02/skos/core#",
		"prov":        "http://www.w3.org/ns/prov#",
		"bfo":         "http://purl.obolibrary.org/obo/",
		"cco":         "http://www.ontologyrepository.com/CommonCoreOntologies/",
		"systematics": systematics.Namespace,
		"entity":      systematics.EntityNamespace,
	}
}

// AddEntity adds an entity to be exported.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// AddGraph adds every entry and link of g.
func (e *RDFExporter) AddGraph(g *graph.Graph) {
	e.entities = append(e.entities, Entities(g)...)
}

// Len returns the number of entities added.
func (e *RDFExporter) Len() int { return len(e.entities) }

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Graph serializes g in format using profile.
func Graph(g *graph.Graph, format Format, profile Profile) (string, error) {
	exporter := NewRDFExporter(profile)
	exporter.AddGraph(g)
	return exporter.Export(format)
}

func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder
	prefixes := make([]string, 0, len(e.prefixes))
	for p := range e.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p, e.prefixes[p])
	}
	sb.WriteString("\n")

	for _, entity := range e.entities {
		types := e.asserter.GetTypeIRIs(entity.Kind)
		fmt.Fprintf(&sb, "<%s>\n", systematics.EntityIRI(entity.ID))
		for i, typeIRI := range types {
			last := i == len(types)-1 && len(entity.Triples) == 0
			fmt.Fprintf(&sb, "    a <%s>%s\n", typeIRI, terminator(last))
		}
		for i, triple := range entity.Triples {
			fmt.Fprintf(&sb, "    <%s> %s%s\n", e.predicateIRI(triple.Predicate),
				formatObject(triple.Object), terminator(i == len(entity.Triples)-1))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func terminator(last bool) string {
	if last {
		return " ."
	}
	return " ;"
}

func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder
	for _, entity := range e.entities {
		iri := systematics.EntityIRI(entity.ID)
		for _, typeIRI := range e.asserter.GetTypeIRIs(entity.Kind) {
			fmt.Fprintf(&sb, "<%s> <%s> <%s> .\n", iri, rdfType, typeIRI)
		}
		for _, triple := range entity.Triples {
			fmt.Fprintf(&sb, "<%s> <%s> %s .\n", iri, e.predicateIRI(triple.Predicate),
				formatObjectNTriples(triple.Object))
		}
	}
	return sb.String()
}

func (e *RDFExporter) toJSONLD() (string, error) {
	doc := JSONLDDocument{
		Context: make(map[string]any, len(e.prefixes)),
		Graph:   make([]JSONLDNode, 0, len(e.entities)),
	}
	for k, v := range e.prefixes {
		doc.Context[k] = v
	}
	for _, entity := range e.entities {
		props := make(map[string]any, len(entity.Triples))
		for _, triple := range entity.Triples {
			key := e.predicateIRI(triple.Predicate)
			value := formatObjectJSONLD(triple.Object)
			switch prev := props[key].(type) {
			case nil:
				props[key] = value
			case []any:
				props[key] = append(prev, value)
			default:
				props[key] = []any{prev, value}
			}
		}
		doc.Graph = append(doc.Graph, JSONLDNode{
			ID:         systematics.EntityIRI(entity.ID),
			Type:       e.asserter.GetTypeIRIs(entity.Kind),
			Properties: props,
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return string(data), nil
}

func (e *RDFExporter) predicateIRI(predicate string) string {
	if e.asserter.profile.TranslatePredicates {
		return systematics.GetPredicateIRI(predicate)
	}
	return systematics.Namespace + predicate
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case Ref:
		return fmt.Sprintf("<%s>", systematics.EntityIRI(string(v)))
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float64:
		return fmt.Sprintf("\"%s\"^^xsd:decimal", formatDecimal(v))
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case Ref:
		return fmt.Sprintf("<%s>", systematics.EntityIRI(string(v)))
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float64:
		return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#decimal>", formatDecimal(v))
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectJSONLD converts an object value to its JSON-LD form.
func formatObjectJSONLD(obj any) any {
	switch v := obj.(type) {
	case Ref:
		return map[string]string{"@id": systematics.EntityIRI(string(v))}
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return map[string]string{"@id": v}
		}
		return v
	default:
		return v
	}
}

// formatDecimal writes v as an xsd:decimal lexical value.
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
