package state

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Resource modes as they appear in the state file.
const (
	ModeManaged = "managed"
	ModeData    = "data"
)

// Sentinel values applied when optional resource fields are absent.
const (
	RootModule      = "root"
	UnknownProvider = "unknown"
)

// State is the in-memory shape of a raw terraform.tfstate document
// (format version 4). Only the fields the analysis pipeline reads are
// modeled; everything else in the file is ignored on decode.
type State struct {
	Version          int        `json:"version"`
	TerraformVersion string     `json:"terraform_version"`
	Serial           int64      `json:"serial"`
	Lineage          string     `json:"lineage"`
	Resources        []Resource `json:"resources"`
}

// Resource is one declared resource block in the state, possibly
// expanded into multiple instances by count or for_each.
type Resource struct {
	Module    string     `json:"module,omitempty"`
	Mode      string     `json:"mode"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Provider  string     `json:"provider,omitempty"`
	Instances []Instance `json:"instances"`
}

// Instance is one materialized occurrence of a resource. Attribute
// values are kept raw and decoded on demand: the attribute map is open
// and heterogeneous, and most pipeline stages never look inside it.
type Instance struct {
	SchemaVersion int                        `json:"schema_version"`
	Attributes    map[string]json.RawMessage `json:"attributes"`
}

// Attr decodes a single attribute into a cty.Value using its implied
// type. The second return value reports whether the attribute exists.
func (i Instance) Attr(name string) (cty.Value, bool, error) {
	raw, ok := i.Attributes[name]
	if !ok {
		return cty.NilVal, false, nil
	}
	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, true, fmt.Errorf("attribute %q: %w", name, err)
	}
	val, err := ctyjson.Unmarshal(raw, ty)
	if err != nil {
		return cty.NilVal, true, fmt.Errorf("attribute %q: %w", name, err)
	}
	return val, true, nil
}

// StringAttr returns the attribute as a string, or "" when the
// attribute is absent, null, undecodable, or not a string.
func (i Instance) StringAttr(name string) string {
	val, ok, err := i.Attr(name)
	if err != nil || !ok || val.IsNull() || val.Type() != cty.String {
		return ""
	}
	return val.AsString()
}

// DecodeAttributes decodes the full attribute map into a single cty
// object value, suitable for whole-instance comparison and display.
func (i Instance) DecodeAttributes() (cty.Value, error) {
	if len(i.Attributes) == 0 {
		return cty.EmptyObjectVal, nil
	}
	attrs := make(map[string]cty.Value, len(i.Attributes))
	for name := range i.Attributes {
		val, _, err := i.Attr(name)
		if err != nil {
			return cty.NilVal, err
		}
		attrs[name] = val
	}
	return cty.ObjectVal(attrs), nil
}
