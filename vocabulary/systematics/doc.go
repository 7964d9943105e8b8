// Package systematics provides the graph predicates of the twelve systems.
//
// Predicates use three-level dotted notation (systematics.category.property) and
// are registered with the semstreams vocabulary registry in init(), so that
// importing the package is enough to make them resolvable:
//
//	import _ "github.com/c360studio/systematics/vocabulary/systematics"
//
// # Ontology Alignment
//
// Entry kinds map to standard ontology classes:
//
//	Kind                 → BFO Class                       → CCO Class
//	order, position      → GenericallyDependentContinuant  → InformationContentEntity
//	location             → GenericallyDependentContinuant  → InformationContentEntity
//	designation labels   → GenericallyDependentContinuant  → InformationContentEntity
//	term, character      → GenericallyDependentContinuant  → InformationContentEntity
//	coordinate, colour   → Quality                         → (none)
//
// Lines and connectives carry only their systematics class. They are also
// exported as direct relations between their endpoints. See mappings.go for the
// predicate IRI table.
package systematics
