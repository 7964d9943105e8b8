package systematics

// Namespace is the base IRI prefix for all systematics ontology terms.
const Namespace = "https://systematics.dev/ontology/"

// EntityNamespace is the base IRI for entry instances.
const EntityNamespace = "https://systematics.dev/entity/"

// Class IRIs, one per entry kind.
const (
	// ClassOrder represents a system order (1-12).
	ClassOrder = Namespace + "Order"

	// ClassPosition represents a position index within an order.
	ClassPosition = Namespace + "Position"

	// ClassLocation represents a (order, position) pair.
	ClassLocation = Namespace + "Location"

	// ClassSystemName represents the name of an order (Monad, Dyad...).
	ClassSystemName = Namespace + "SystemName"

	// ClassCoherenceAttribute represents the coherence of an order.
	ClassCoherenceAttribute = Namespace + "CoherenceAttribute"

	// ClassTermDesignation names what the terms of an order are called.
	ClassTermDesignation = Namespace + "TermDesignation"

	// ClassConnectiveDesignation names what the connectives of an order are called.
	ClassConnectiveDesignation = Namespace + "ConnectiveDesignation"

	// ClassTerm binds a character to a location.
	ClassTerm = Namespace + "Term"

	// ClassCoordinate is the spatial point of a location.
	ClassCoordinate = Namespace + "Coordinate"

	// ClassColour is the palette colour of a location.
	ClassColour = Namespace + "Colour"

	// ClassCharacter is a word in a given language.
	ClassCharacter = Namespace + "Character"

	// ClassLine is the geometric edge between two coordinates.
	ClassLine = Namespace + "Line"

	// ClassConnective is the semantic edge between two locations.
	ClassConnective = Namespace + "Connective"
)

// EntityIRI returns the IRI of an entry or link identifier.
func EntityIRI(id string) string {
	return EntityNamespace + id
}
