package entity

import (
	"encoding/json"
	"testing"
)

func sampleReply(t *testing.T) []byte {
	t.Helper()
	return []byte(`{
		"corrected_name": "Glucose",
		"entity_type": "chemical",
		"synonyms": ["Dextrose", "D-Glucose"],
		"resolved_name": "D-Glucose",
		"validation_issues": [],
		"pathways": ["Glycolysis"],
		"biological_function": ["Energy source"],
		"cellular_component": ["Cytoplasm"],
		"identifiers": {
			"PubChem CID": "5793",
			"ChEMBL ID": "CHEMBL1222250",
			"KEGG": "C00031",
			"UniProt": null,
			"RefSeq": null,
			"Ensembl": null,
			"InterPro": null,
			"InChIKey": "WQZGKKKJIJFFOK-GASJEMHNSA-N",
			"SMILES": null
		},
		"links": {
			"PubChem Link": "https://pubchem.ncbi.nlm.nih.gov/compound/5793",
			"ChEMBL Link": null,
			"KEGG Link": null,
			"UniProt Link": null
		},
		"ontology_id": "CHEBI:4167",
		"ontology_term": "D-glucopyranose"
	}`)
}

func TestEntityResultDecode(t *testing.T) {
	var r EntityResult
	if err := json.Unmarshal(sampleReply(t), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if r.ResolvedName != "D-Glucose" || r.EntityType != TypeChemical {
		t.Errorf("unexpected names %+v", r)
	}
	if r.Identifiers.PubChemCID == nil || *r.Identifiers.PubChemCID != "5793" {
		t.Errorf("expected PubChem CID, got %v", r.Identifiers.PubChemCID)
	}
	if r.Identifiers.UniProt != nil {
		t.Error("expected null UniProt to decode as nil")
	}
	if r.Links.PubChem == nil {
		t.Error("expected PubChem link")
	}
	if r.OntologyID == nil || *r.OntologyID != "CHEBI:4167" {
		t.Errorf("unexpected ontology id %v", r.OntologyID)
	}

	ids := r.IdentifierMap()
	if len(ids) != 4 || ids["KEGG"] != "C00031" {
		t.Errorf("unexpected identifier map %v", ids)
	}
}

func TestEntityResultFound(t *testing.T) {
	kegg := "C00031"
	empty := ""

	tests := []struct {
		name   string
		result *EntityResult
		want   bool
	}{
		{"nil", nil, false},
		{"no issues", &EntityResult{}, true},
		{"issues without ids", &EntityResult{ValidationIssues: []string{"No definitive IDs found in any database"}}, false},
		{"issues with empty id", &EntityResult{ValidationIssues: []string{"x"}, Identifiers: Identifiers{KEGG: &empty}}, false},
		{"issues with id", &EntityResult{ValidationIssues: []string{"partial"}, Identifiers: Identifiers{KEGG: &kegg}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Found(); got != tt.want {
				t.Errorf("Found() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOntologyIsNone(t *testing.T) {
	if !OntologyNone.IsNone() || !Ontology("").IsNone() {
		t.Error("expected None and empty to be none")
	}
	if OntologyGO.IsNone() {
		t.Error("GO is not none")
	}
	if len(KnownOntologies) == 0 || KnownOntologies[0] != OntologyNone {
		t.Error("expected None first in known ontologies")
	}
}

func TestQueryDeep(t *testing.T) {
	q := EntityQuery{OriginalName: "x"}
	d := q.Deep()
	if q.DeepSearch || !d.DeepSearch || d.OriginalName != "x" {
		t.Errorf("Deep() must copy: %+v %+v", q, d)
	}
}
