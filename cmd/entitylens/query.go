package main

import (
	"github.com/spf13/cobra"

	"github.com/leofalp/entitylens/core/entity"
)

// queryFlags are shared by lookup and prompt.
type queryFlags struct {
	typeHint   string
	background string
	ontology   string
	deep       bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.typeHint, "type", "t", "", "Entity type hint, e.g. chemical, protein, gene")
	cmd.Flags().StringVarP(&f.background, "background", "b", "", "Additional background context")
	cmd.Flags().StringVarP(&f.ontology, "ontology", "o", string(entity.OntologyNone), "Ontology to map the entity to")
	cmd.Flags().BoolVar(&f.deep, "deep", false, "Use the exhaustive deep-search prompt")
}

func (f *queryFlags) query(name string) entity.EntityQuery {
	return entity.EntityQuery{
		OriginalName: name,
		TypeHint:     f.typeHint,
		Background:   f.background,
		Ontology:     entity.Ontology(f.ontology),
		DeepSearch:   f.deep,
	}
}
