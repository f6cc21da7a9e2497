package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leofalp/entitylens/core/entity"
)

func newPromptCmd() *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "prompt <name>",
		Short: "Print the prompt and response schema for a lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := flags.query(args[0])

			schema, err := json.MarshalIndent(entity.BuildSchema(q.Ontology), "", "  ")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgCyan, color.Bold).Fprintln(out, "Prompt")
			fmt.Fprintln(out, entity.BuildPrompt(q))
			color.New(color.FgCyan, color.Bold).Fprintln(out, "Response schema")
			fmt.Fprintln(out, string(schema))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
