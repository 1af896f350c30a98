package cli

import (
	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/pkg/catalog"
)

// CodeCompletionFunc completes catalog codes of kind for cobra flags and
// arguments. Loading errors yield no candidates.
func CodeCompletionFunc(kind catalog.CodeKind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		ctx, err := NewCommandContext(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		store, err := ctx.Store()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return CompletionCandidates(store, kind, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// CompletionCandidates formats matching codes as "code\tdescription"
func CompletionCandidates(store *catalog.Store, kind catalog.CodeKind, prefix string) []string {
	matches := store.Codes().Complete(kind, prefix)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Description != "" {
			candidates = append(candidates, m.Code+"\t"+m.Description)
		} else {
			candidates = append(candidates, m.Code)
		}
	}
	return candidates
}

// RegisterQueryCompletions wires code completion into the filter flags
func RegisterQueryCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("entity", CodeCompletionFunc(catalog.CodeEntity))
	_ = cmd.RegisterFlagCompletionFunc("datatype", CodeCompletionFunc(catalog.CodeDatatype))
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"normal", "wildcard", "regex"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "entity", "attribute"}, cobra.ShellCompDirectiveNoFileComp
	})
}
