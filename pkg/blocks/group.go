package blocks

import "github.com/devw-tools/devw/pkg/types"

// scopeGroup is the slice of a block's rules that target one scope.
type scopeGroup struct {
	scope string
	rules []types.BlockRule
}

// groupByScope partitions rules by scope. Groups appear in the order their
// scope first occurs and keep the block's rule order.
func groupByScope(rules []types.BlockRule) []scopeGroup {
	var groups []scopeGroup
	index := make(map[string]int)
	for _, rule := range rules {
		i, ok := index[rule.Scope]
		if !ok {
			i = len(groups)
			index[rule.Scope] = i
			groups = append(groups, scopeGroup{scope: rule.Scope})
		}
		groups[i].rules = append(groups[i].rules, rule)
	}
	return groups
}
