package entity

// Ontology selects an optional ontology database whose term and ID the model
// should report. Any value is interpolated verbatim.
type Ontology string

// OntologyNone disables the ontology instruction and schema fields.
const OntologyNone Ontology = "None"

// Well-known ontologies offered by the CLI.
const (
	OntologyGO       Ontology = "Gene Ontology (GO)"
	OntologyChEBI    Ontology = "ChEBI"
	OntologyMeSH     Ontology = "MeSH"
	OntologyTaxonomy Ontology = "NCBI Taxonomy"
	OntologyReactome Ontology = "Reactome"
)

// KnownOntologies lists the ontologies above in display order.
var KnownOntologies = []Ontology{OntologyNone, OntologyGO, OntologyChEBI, OntologyMeSH, OntologyTaxonomy, OntologyReactome}

// IsNone reports whether the ontology selector is unset. The empty string
// counts as None.
func (o Ontology) IsNone() bool {
	return o == "" || o == OntologyNone
}

// EntityQuery is the input of one lookup.
type EntityQuery struct {
	OriginalName string
	TypeHint     string
	Background   string
	Ontology     Ontology
	DeepSearch   bool
}

// Deep returns a copy of q with DeepSearch enabled.
func (q EntityQuery) Deep() EntityQuery {
	q.DeepSearch = true
	return q
}
