package analyzer

import (
	"github.com/glimpsovstar/terraform-rum-analysis/internal/extract"
)

// Group partitions rows by (module, resource_type, resource_name,
// provider) and sums instance counts per partition. One summary row is
// emitted per distinct key tuple, in first-appearance order, so the
// output keeps the same schema as the input rows. The summed counts
// always conserve the input row total.
func Group(rows []extract.Row) []extract.Row {
	type key struct {
		module, rtype, rname, provider string
	}

	index := make(map[key]int, len(rows))
	out := make([]extract.Row, 0, len(rows))
	for _, row := range rows {
		k := key{row.Module, row.ResourceType, row.ResourceName, row.Provider}
		if i, ok := index[k]; ok {
			out[i].InstanceCount += row.InstanceCount
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out
}
