package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/vocval/rules"
)

// rulesCmd lists the checklist, mostly so that rule IDs for --config
// rules.skip can be looked up without reading source.
func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the validation rules in evaluation order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, r := range rules.All() {
				scope := "all vocabularies"
				if len(r.Flavours) > 0 {
					names := make([]string, 0, len(r.Flavours))
					for _, f := range r.Flavours {
						names = append(names, string(f))
					}
					scope = strings.Join(names, ", ")
				}
				fmt.Printf("%-16s %s (%s)\n", r.ID, r.Description, scope)
			}
		},
	}
}
