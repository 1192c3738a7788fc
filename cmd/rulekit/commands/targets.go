package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func newTargetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the targets declared in the schema with their field rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newReporter(cmd.OutOrStdout(), a.jsonOut).targets(describeTargets(a.engine.Store()))
		},
	}
}

func describeTargets(store *validator.MetadataStore) []targetInfo {
	var out []targetInfo
	for _, t := range store.Targets() {
		info := targetInfo{Name: string(t)}
		for _, fb := range store.Bindings(t) {
			f := fieldInfo{Name: fb.Field, Label: fb.Label, Rules: []string{}}
			for _, b := range fb.Bindings {
				f.Rules = append(f.Rules, ruleString(b))
			}
			info.Fields = append(info.Fields, f)
		}
		out = append(out, info)
	}
	return out
}

// ruleString renders a binding as "name:p1,p2".
func ruleString(b validator.Binding) string {
	name := b.Rule
	if name == "" {
		name = validator.CustomRuleName
	}
	if len(b.Params) == 0 {
		return name
	}
	params := make([]string, len(b.Params))
	for i, p := range b.Params {
		params[i] = fmt.Sprint(p)
	}
	return name + ":" + strings.Join(params, ",")
}
