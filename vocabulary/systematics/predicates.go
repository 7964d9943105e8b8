package systematics

import "github.com/c360studio/semstreams/vocabulary"

// Entry predicates apply to every entry regardless of kind.
const (
	// EntryKind is the entry kind (order, location, term...).
	EntryKind = "systematics.entry.kind"

	// EntryLanguage is the language of the graph the entry belongs to.
	EntryLanguage = "systematics.entry.language"
)

// Structural predicates describe orders, positions and locations.
const (
	// OrderValue is the integer value of an order entry (1-12).
	OrderValue = "systematics.order.value"

	// PositionValue is the integer value of a position entry (1-12).
	PositionValue = "systematics.position.value"

	// LocationOrder links a location to its order entry.
	LocationOrder = "systematics.location.order"

	// LocationPosition links a location to its position entry.
	LocationPosition = "systematics.location.position"
)

// Label predicates describe the order-level labels: system name, coherence
// attribute, term designation and connective designation.
const (
	// LabelOrder links a label to the order it describes.
	LabelOrder = "systematics.label.order"

	// LabelValue is the text of the label.
	LabelValue = "systematics.label.value"
)

// Location-level predicates describe terms, coordinates and colours.
const (
	// TermLocation links a term to its location.
	TermLocation = "systematics.term.location"

	// TermCharacter links a term to the character it carries.
	TermCharacter = "systematics.term.character"

	// CoordinateLocation links a coordinate to its location.
	CoordinateLocation = "systematics.coordinate.location"

	// CoordinateX is the x component of a coordinate.
	CoordinateX = "systematics.coordinate.x"

	// CoordinateY is the y component of a coordinate.
	CoordinateY = "systematics.coordinate.y"

	// CoordinateZ is the z component of a coordinate.
	CoordinateZ = "systematics.coordinate.z"

	// ColourLocation links a colour to its location.
	ColourLocation = "systematics.colour.location"

	// ColourHex is the #RRGGBB value of a colour.
	ColourHex = "systematics.colour.hex"

	// ColourName is the palette name of a colour.
	ColourName = "systematics.colour.name"
)

// Character predicates.
const (
	// CharacterLanguage is the language a character belongs to.
	CharacterLanguage = "systematics.character.language"

	// CharacterValue is the word itself.
	CharacterValue = "systematics.character.value"
)

// Link predicates. A link is published both as its own entity (kind, base,
// target, tag) and as a direct relationship between its endpoints.
const (
	// LinkKind is line or connective.
	LinkKind = "systematics.link.kind"

	// LinkBase is the lower endpoint of a link.
	LinkBase = "systematics.link.base"

	// LinkTarget is the higher endpoint of a link.
	LinkTarget = "systematics.link.target"

	// LinkTag links a connective to the character that labels it.
	LinkTag = "systematics.link.tag"

	// LinkLine relates two coordinates joined by a line.
	LinkLine = "systematics.relation.line"

	// LinkConnective relates two locations joined by a connective.
	LinkConnective = "systematics.relation.connective"
)

// Standard metadata predicates.
const (
	// DCTitle is the human-readable title of an entry.
	DCTitle = "dc.terms.title"

	// SKOSPrefLabel is the preferred label of a character.
	SKOSPrefLabel = "skos.label.preferred"
)

func registerStructurePredicates() {
	vocabulary.Register(EntryKind,
		vocabulary.WithDescription("Entry kind"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"kind"))

	vocabulary.Register(EntryLanguage,
		vocabulary.WithDescription("Graph language"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"language"))

	vocabulary.Register(OrderValue,
		vocabulary.WithDescription("Order value"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("1-12"),
		vocabulary.WithIRI(Namespace+"orderValue"))

	vocabulary.Register(PositionValue,
		vocabulary.WithDescription("Position value"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"positionValue"))

	vocabulary.Register(LocationOrder,
		vocabulary.WithDescription("Order the location is part of"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"inOrder"))

	vocabulary.Register(LocationPosition,
		vocabulary.WithDescription("Position of the location"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"atPosition"))
}

func registerLabelPredicates() {
	vocabulary.Register(LabelOrder,
		vocabulary.WithDescription("Order the label describes"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"describes"))

	vocabulary.Register(LabelValue,
		vocabulary.WithDescription("Label text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"labelValue"))
}

func registerLocationPredicates() {
	vocabulary.Register(TermLocation,
		vocabulary.WithDescription("Location the term occupies"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"atLocation"))

	vocabulary.Register(TermCharacter,
		vocabulary.WithDescription("Character carried by the term"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasCharacter"))

	vocabulary.Register(CoordinateLocation,
		vocabulary.WithDescription("Location the coordinate places"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"placesLocation"))

	vocabulary.Register(CoordinateX,
		vocabulary.WithDescription("X component"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"x"))

	vocabulary.Register(CoordinateY,
		vocabulary.WithDescription("Y component"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"y"))

	vocabulary.Register(CoordinateZ,
		vocabulary.WithDescription("Z component"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"z"))

	vocabulary.Register(ColourLocation,
		vocabulary.WithDescription("Location the colour marks"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"colours"))

	vocabulary.Register(ColourHex,
		vocabulary.WithDescription("Colour as #RRGGBB"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hex"))

	vocabulary.Register(ColourName,
		vocabulary.WithDescription("Colour name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"colourName"))
}

func registerCharacterPredicates() {
	vocabulary.Register(CharacterLanguage,
		vocabulary.WithDescription("Character language"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"characterLanguage"))

	vocabulary.Register(CharacterValue,
		vocabulary.WithDescription("Character text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))
}

func registerLinkPredicates() {
	vocabulary.Register(LinkKind,
		vocabulary.WithDescription("Link kind"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"linkKind"))

	vocabulary.Register(LinkBase,
		vocabulary.WithDescription("Lower endpoint"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"base"))

	vocabulary.Register(LinkTarget,
		vocabulary.WithDescription("Higher endpoint"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"target"))

	vocabulary.Register(LinkTag,
		vocabulary.WithDescription("Character labelling the connective"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"tag"))

	vocabulary.Register(LinkLine,
		vocabulary.WithDescription("Line between two coordinates"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"line"))

	vocabulary.Register(LinkConnective,
		vocabulary.WithDescription("Connective between two locations"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"connective"))
}

func registerStandardPredicates() {
	vocabulary.Register(DCTitle,
		vocabulary.WithDescription("Title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(SKOSPrefLabel,
		vocabulary.WithDescription("Preferred label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))
}

func init() {
	registerStructurePredicates()
	registerLabelPredicates()
	registerLocationPredicates()
	registerCharacterPredicates()
	registerLinkPredicates()
	registerStandardPredicates()
}
