package publish

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	ssgraph "github.com/c360studio/semstreams/graph"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "systematics",
		Category:    "entity",
		Version:     "v1",
		Description: "Systematics entry or link with its triples for graph ingestion",
		Factory:     func() any { return &EntityPayload{} },
	})
	if err != nil {
		panic("failed to register EntityPayload: " + err.Error())
	}
}

// EntityType is the message type for systematics entity payloads.
var EntityType = message.Type{Domain: "systematics", Category: "entity", Version: "v1"}

var (
	_ message.Payload   = (*EntityPayload)(nil)
	_ ssgraph.Graphable = (*EntityPayload)(nil)
)

// EntityPayload carries one entry or link of a graph.
type EntityPayload struct {
	EntityID_  string           `json:"id"`
	Language   string           `json:"language"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (e *EntityPayload) EntityID() string          { return e.EntityID_ }
func (e *EntityPayload) Triples() []message.Triple { return e.TripleData }
func (e *EntityPayload) Schema() message.Type      { return EntityType }

func (e *EntityPayload) Validate() error {
	if e.EntityID_ == "" {
		return errors.New("entity ID is required")
	}
	if len(e.TripleData) == 0 {
		return errors.New("entity has no triples")
	}
	return nil
}

func (e *EntityPayload) MarshalJSON() ([]byte, error) {
	type Alias EntityPayload
	return json.Marshal((*Alias)(e))
}

func (e *EntityPayload) UnmarshalJSON(data []byte) error {
	type Alias EntityPayload
	return json.Unmarshal(data, (*Alias)(e))
}
