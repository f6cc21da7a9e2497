package entity

// Entity types reported in entity_type.
const (
	TypeChemical = "chemical"
	TypeProtein  = "protein"
	TypeGene     = "gene"
	TypeUnknown  = "unknown"
)

// Identifiers holds database identifiers; nil means not found.
type Identifiers struct {
	PubChemCID *string `json:"PubChem CID"`
	ChEMBLID   *string `json:"ChEMBL ID"`
	KEGG       *string `json:"KEGG"`
	UniProt    *string `json:"UniProt"`
	RefSeq     *string `json:"RefSeq"`
	Ensembl    *string `json:"Ensembl"`
	InterPro   *string `json:"InterPro"`
	InChIKey   *string `json:"InChIKey"`
	SMILES     *string `json:"SMILES"`
}

// Links holds direct database links; nil means not found.
type Links struct {
	PubChem *string `json:"PubChem Link"`
	ChEMBL  *string `json:"ChEMBL Link"`
	KEGG    *string `json:"KEGG Link"`
	UniProt *string `json:"UniProt Link"`
}

// EntityResult is the decoded provider reply.
type EntityResult struct {
	CorrectedName      string      `json:"corrected_name"`
	EntityType         string      `json:"entity_type"`
	Synonyms           []string    `json:"synonyms"`
	ResolvedName       string      `json:"resolved_name"`
	ValidationIssues   []string    `json:"validation_issues"`
	Pathways           []string    `json:"pathways"`
	BiologicalFunction []string    `json:"biological_function"`
	CellularComponent  []string    `json:"cellular_component"`
	Identifiers        Identifiers `json:"identifiers"`
	Links              Links       `json:"links"`
	OntologyID         *string     `json:"ontology_id,omitempty"`
	OntologyTerm       *string     `json:"ontology_term,omitempty"`
}

// IdentifierMap returns the non-empty identifiers keyed by database name.
func (r *EntityResult) IdentifierMap() map[string]string {
	ids := r.Identifiers
	out := map[string]string{}
	for key, value := range map[string]*string{
		"PubChem CID": ids.PubChemCID,
		"ChEMBL ID":   ids.ChEMBLID,
		"KEGG":        ids.KEGG,
		"UniProt":     ids.UniProt,
		"RefSeq":      ids.RefSeq,
		"Ensembl":     ids.Ensembl,
		"InterPro":    ids.InterPro,
		"InChIKey":    ids.InChIKey,
		"SMILES":      ids.SMILES,
	} {
		if value != nil && *value != "" {
			out[key] = *value
		}
	}
	return out
}

// Found reports whether the provider resolved the entity: either it raised
// no validation issues or it returned at least one identifier.
func (r *EntityResult) Found() bool {
	if r == nil {
		return false
	}
	return len(r.ValidationIssues) == 0 || len(r.IdentifierMap()) > 0
}
