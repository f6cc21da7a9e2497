package entity

import (
	"github.com/leofalp/entitylens/internal/jsonschema"
)

// Response field names.
const (
	FieldCorrectedName      = "corrected_name"
	FieldEntityType         = "entity_type"
	FieldSynonyms           = "synonyms"
	FieldResolvedName       = "resolved_name"
	FieldValidationIssues   = "validation_issues"
	FieldPathways           = "pathways"
	FieldBiologicalFunction = "biological_function"
	FieldCellularComponent  = "cellular_component"
	FieldIdentifiers        = "identifiers"
	FieldLinks              = "links"
	FieldOntologyID         = "ontology_id"
	FieldOntologyTerm       = "ontology_term"
)

// IdentifierKeys are the database identifiers requested for every entity.
var IdentifierKeys = []string{"PubChem CID", "ChEMBL ID", "KEGG", "UniProt", "RefSeq", "Ensembl", "InterPro", "InChIKey", "SMILES"}

// LinkKeys are the database links requested for every entity.
var LinkKeys = []string{"PubChem Link", "ChEMBL Link", "KEGG Link", "UniProt Link"}

// RequiredFields lists the properties every reply must carry.
var RequiredFields = []string{
	FieldCorrectedName, FieldEntityType, FieldSynonyms, FieldResolvedName, FieldValidationIssues,
	FieldPathways, FieldBiologicalFunction, FieldCellularComponent, FieldIdentifiers, FieldLinks,
}

// BuildSchema returns a fresh response schema. When ontology is not None the
// optional ontology_id and ontology_term properties are added.
func BuildSchema(ontology Ontology) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type: jsonschema.TypeObject,
		Properties: map[string]*jsonschema.Schema{
			FieldCorrectedName:      jsonschema.String("The spell-corrected name of the entity."),
			FieldEntityType:         jsonschema.String("The determined type: 'chemical', 'protein', 'gene', or 'unknown'."),
			FieldSynonyms:           jsonschema.StringArray("A list of common synonyms."),
			FieldResolvedName:       jsonschema.String("The most common or official name for the entity."),
			FieldValidationIssues:   jsonschema.StringArray("List of issues if entity cannot be found or identified."),
			FieldPathways:           jsonschema.StringArray("List of biological pathways this entity is involved in."),
			FieldBiologicalFunction: jsonschema.StringArray("List of biological functions of this entity."),
			FieldCellularComponent:  jsonschema.StringArray("List of cellular components where this entity is found."),
			FieldIdentifiers:        nullableStrings(IdentifierKeys),
			FieldLinks:              nullableStrings(LinkKeys),
		},
		Required: append([]string(nil), RequiredFields...),
	}

	if !ontology.IsNone() {
		name := string(ontology)
		schema.Properties[FieldOntologyID] = jsonschema.NullableString("The primary ID from the " + name + " database (e.g., GO:0008150, CHEBI:16236).")
		schema.Properties[FieldOntologyTerm] = jsonschema.NullableString("The corresponding term name from " + name + ".")
	}

	return schema
}

func nullableStrings(keys []string) *jsonschema.Schema {
	obj := &jsonschema.Schema{
		Type:       jsonschema.TypeObject,
		Properties: make(map[string]*jsonschema.Schema, len(keys)),
	}
	for _, key := range keys {
		obj.Properties[key] = &jsonschema.Schema{Type: jsonschema.TypeString, Nullable: true}
	}
	return obj
}
