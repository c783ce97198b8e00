// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/ava-labs/movegenesis/objects"
	"github.com/ava-labs/movegenesis/utils/filesystem"
)

// GenesisState is the content of an objects file. IDs are CB58 strings and
// object contents are standard base64.
//
//	objects:
//	- id: 2Z36RnQuk1hvsnFeGWzfZUfXNr7w1SjzmDQ78YxfTVNAkDq3nZ
//	  owner: 6HgC8KRBEhXYbF4riJyJFLSHt37UNuRt
//	  version: 1
//	  type: 0x2::coin::Coin
//	  contents: AQID
//	genesisContext:
//	  epoch: 0
type GenesisState struct {
	Objects []objects.Object `json:"objects"`
	// GenesisContext is optional. When omitted the default genesis context is
	// used.
	GenesisContext *objects.TxContext `json:"genesisContext,omitempty"`
}

// LoadObjects reads and parses the YAML or JSON objects file at [path].
func LoadObjects(reader filesystem.Reader, path string) (GenesisState, error) {
	content, err := reader.ReadFile(path)
	if err != nil {
		return GenesisState{}, fmt.Errorf("couldn't read objects file %q: %w", path, err)
	}
	return ParseObjects(content)
}

// ParseObjects parses YAML or JSON [content]. Unknown fields are rejected.
func ParseObjects(content []byte) (GenesisState, error) {
	var state GenesisState
	if err := yaml.UnmarshalStrict(content, &state); err != nil {
		return GenesisState{}, fmt.Errorf("couldn't parse objects file: %w", err)
	}
	return state, nil
}
