// Package publish sends built graphs to the knowledge graph ingestion stream.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/export"
	"github.com/c360studio/systematics/graph"
	"github.com/c360studio/systematics/identifier"
)

// GraphIngestSubject is the default subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// Source is recorded on every published triple.
const Source = "systematics"

// Stream publishes to a JetStream subject. *natsclient.Client satisfies it.
type Stream interface {
	PublishToStream(ctx context.Context, subject string, data []byte) error
}

// Recorder receives publish counts.
type Recorder interface {
	Published(language entry.Language, n int)
}

// Publisher converts graphs into entity messages.
type Publisher struct {
	stream   Stream
	subject  string
	profile  export.Profile
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithSubject overrides GraphIngestSubject.
func WithSubject(subject string) Option {
	return func(p *Publisher) { p.subject = subject }
}

// WithProfile selects the type assertions added to each entity.
func WithProfile(profile export.Profile) Option {
	return func(p *Publisher) { p.profile = profile }
}

// WithMetrics records the number of published messages.
func WithMetrics(r Recorder) Option {
	return func(p *Publisher) { p.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// New creates a Publisher. A nil stream makes Publish a no-op.
func New(stream Stream, opts ...Option) *Publisher {
	p := &Publisher{
		stream:  stream,
		subject: GraphIngestSubject,
		profile: export.ProfileMinimal,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Publish sends one message per entry and link of g and returns how many were
// sent. It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, g *graph.Graph) (int, error) {
	if p.stream == nil {
		return 0, nil
	}
	language := g.Language()

	now := p.now()
	sent := 0
	defer func() {
		if p.recorder != nil && sent > 0 {
			p.recorder.Published(language, sent)
		}
	}()

	for _, entity := range export.Entities(g) {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		payload := Payload(language, entity, p.profile, now)
		msg := message.NewBaseMessage(EntityType, payload, Source)
		data, err := json.Marshal(msg)
		if err != nil {
			return sent, fmt.Errorf("marshal entity %s: %w", entity.ID, err)
		}
		if err := p.stream.PublishToStream(ctx, p.subject, data); err != nil {
			return sent, fmt.Errorf("publish entity %s: %w", entity.ID, err)
		}
		sent++
	}

	p.logger.Info("Published graph", "language", language, "entities", sent, "subject", p.subject)
	return sent, nil
}

// Payload converts entity into its ingestion payload. Subjects and references
// become entity IDs in the language's namespace.
func Payload(language entry.Language, entity export.Entity, profile export.Profile, now time.Time) *EntityPayload {
	id := EntityID(language, entity.Kind, entity.ID)

	triples := export.TypeTriples(identifier.ID(entity.ID), profile, Source)
	for i := range triples {
		triples[i].Subject = id
		triples[i].Timestamp = now
	}

	for _, t := range entity.Triples {
		object := t.Object
		if ref, ok := object.(export.Ref); ok {
			object = RefID(language, identifier.ID(ref))
		}
		triples = append(triples, message.Triple{
			Subject:    id,
			Predicate:  t.Predicate,
			Object:     object,
			Source:     Source,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	return &EntityPayload{
		EntityID_:  id,
		Language:   string(language),
		TripleData: triples,
		UpdatedAt:  now,
	}
}

// EntityID generates a consistent entity ID for an entry or link.
// Format: systematics.local.graph.<language>.<kind>.<id>
func EntityID(language entry.Language, kind identifier.Kind, id string) string {
	return fmt.Sprintf("systematics.local.graph.%s.%s.%s", strings.ToLower(string(language)), kind, id)
}

// RefID returns the entity ID of a referenced entry or link, inferring its
// kind from the identifier.
func RefID(language entry.Language, id identifier.ID) string {
	kind, ok := export.InferKind(id)
	if !ok {
		kind = "unknown"
	}
	return EntityID(language, kind, string(id))
}

// Graph publishes g with default options.
func Graph(ctx context.Context, stream Stream, g *graph.Graph) (int, error) {
	return New(stream).Publish(ctx, g)
}
