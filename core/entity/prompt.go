package entity

import "strings"

const noBackground = "None provided."

const quickTemplate = `You are an expert chemist and biologist acting as a data aggregation service. Your task is to analyze a given entity name, correct it, and find its identifiers, pathways, function, and cellular location from scientific databases.

You MUST respond ONLY with a valid JSON object that conforms to the provided schema. Do not include any explanatory text, markdown formatting, or anything outside the JSON object.

Entity Name to Analyze: "{{name}}"
User Provided Type Hint: "{{type}}"
Additional Background Context: "{{background}}"

Based on the entity name and context, perform the following actions:
1. Correct any spelling errors in the entity name.
2. Determine the entity's type (e.g., 'chemical', 'protein', 'gene'). Prioritize the user's hint but correct it if it's clearly wrong.
3. Find common synonyms for the corrected name.
4. Search relevant databases (PubChem, ChEMBL, KEGG, UniProt, Gene Ontology, etc.).
5. Retrieve standard identifiers and direct links.
6. Find its biological pathways (e.g., "Glycolysis", "MAPK signaling pathway").
7. Describe its biological function (e.g., "Enzyme catalysis", "Transcription factor").
8. Identify its cellular component/location (e.g., "Mitochondrion", "Nucleus", "Cytoplasm").
9. {{ontology}}
10. If you cannot find the entity, populate 'validation_issues' with a descriptive message like "No definitive IDs found in any database". Otherwise, leave it as an empty array and fill the other fields.
11. Ensure all data is sourced from high-quality, peer-reviewed databases and cross-validated.

Return your findings in the specified JSON format.
`

const deepTemplate = `You are an expert research assistant performing a deep, exhaustive search for a biological or chemical entity. A previous quick search failed to find it. You must now try harder, using alternative search strategies.

You MUST respond ONLY with a valid JSON object that conforms to the provided schema.

Entity Name to Analyze: "{{name}}"
User Provided Type Hint: "{{type}}"
Additional Background Context: "{{background}}"

Perform the following actions with maximum effort:
1. The name "{{name}}" might be misspelled, an obscure synonym, or an abbreviation. Brainstorm and search for alternative spellings and related terms.
2. Search across a WIDE range of databases. Do not give up easily. Check PubChem, ChEMBL, KEGG, UniProt, Gene Ontology, Reactome, STRING, and perform general web searches for research papers or wikis mentioning the term.
3. Find its biological pathways (e.g., "Glycolysis").
4. Describe its biological function (e.g., "Enzyme catalysis").
5. Identify its cellular component/location (e.g., "Mitochondrion").
6. {{ontology}}
7. Retrieve any standard identifiers and direct links you can find, even if it's just one.
8. If, after an exhaustive search, you still cannot find anything, populate 'validation_issues' with "Exhaustive search failed to find a match". Otherwise, provide as much information as you discovered.
9. Ensure all identifiers are cross-referenced and validated against multiple sources where possible.

Return your findings in the specified JSON format.
`

// OntologyInstruction returns the sentence asking for the ontology term and
// ID, or "" when o is None.
func OntologyInstruction(o Ontology) string {
	if o.IsNone() {
		return ""
	}
	return "Additionally, find its corresponding term and ID from the " + string(o) + " database."
}

// BuildPrompt renders the quick or the deep-search prompt for q. Values are
// inserted without escaping.
func BuildPrompt(q EntityQuery) string {
	background := q.Background
	if background == "" {
		background = noBackground
	}

	tmpl := quickTemplate
	if q.DeepSearch {
		tmpl = deepTemplate
	}

	// single pass, so placeholders inside user values are left alone
	return strings.NewReplacer(
		"{{name}}", q.OriginalName,
		"{{type}}", q.TypeHint,
		"{{background}}", background,
		"{{ontology}}", OntologyInstruction(q.Ontology),
	).Replace(tmpl)
}
