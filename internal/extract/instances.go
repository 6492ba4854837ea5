package extract

import (
	"fmt"

	"github.com/glimpsovstar/terraform-rum-analysis/internal/state"
	"github.com/zclconf/go-cty/cty"
)

// InstanceRecord is one materialized instance of a targeted resource
// type, with its full attribute map decoded for comparison and display.
type InstanceRecord struct {
	Address    string
	Attributes cty.Value
}

// CollectInstances gathers every instance of one exact resource type,
// in document order.
func CollectInstances(st *state.State, resourceType string) ([]InstanceRecord, error) {
	var recs []InstanceRecord
	for _, r := range st.Resources {
		if !MatchesType(r, resourceType) {
			continue
		}
		for _, inst := range r.Instances {
			attrs, err := inst.DecodeAttributes()
			if err != nil {
				return nil, fmt.Errorf("decode attributes of %s.%s: %w", r.Type, r.Name, err)
			}
			recs = append(recs, InstanceRecord{
				Address:    r.Type + "." + r.Name,
				Attributes: attrs,
			})
		}
	}
	return recs, nil
}

// DedupeInstances removes records whose attribute values are equal,
// keeping the first occurrence. Addresses are not compared: two
// resources with identical attributes count as one unique instance.
func DedupeInstances(recs []InstanceRecord) []InstanceRecord {
	out := make([]InstanceRecord, 0, len(recs))
	for _, rec := range recs {
		dup := false
		for _, kept := range out {
			if kept.Attributes.RawEquals(rec.Attributes) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, rec)
		}
	}
	return out
}
