package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Loader failure kinds, distinguishable with errors.Is. A missing file
// and an undecodable file are reported differently to the operator.
var (
	ErrNotFound  = errors.New("state file not found")
	ErrMalformed = errors.New("state file is not valid JSON")
)

// Load reads and decodes a raw terraform.tfstate document from path.
// A missing or null "resources" list decodes to an empty slice, which
// is a valid, reportable outcome for the pipeline, not an error.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return &st, nil
}
