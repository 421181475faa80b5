// Package complexdeps models a multi-level dependency tree with conflicting
// license inheritance for scanner testing.
//
// The simulated tree:
//
//	Root Project (MIT)
//	├── Module A (Apache-2.0)
//	│   ├── Module A1 (BSD-3-Clause)
//	│   │   └── Module A1a (GPL-3.0)  <- copyleft infection
//	│   └── Module A2 (LGPL-2.1)
//	└── Module B (GPL-2.0)
//	    └── Module B2 (AGPL-3.0)      <- network copyleft
//
// Root is nominally MIT licensed, but the GPL-3.0 leaf makes the effective
// license of the combined work copyleft. Multiple licenses apply.
//
// SPDX-License-Identifier: MIT
package complexdeps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is a toy dependency manifest with per-module license labels.
type Manifest struct {
	Name    string            `toml:"name"`
	License string            `toml:"license"`
	Deps    map[string]string `toml:"deps"` // module -> license
}

// ParseManifest decodes a TOML dependency manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// EncodeManifest renders a manifest back to TOML.
func EncodeManifest(m *Manifest) ([]byte, error) {
	return toml.Marshal(m)
}

// EffectiveLicense computes the license of the combined work: any copyleft
// dependency wins over the declared license.
func (m *Manifest) EffectiveLicense() string {
	for _, lic := range m.Deps {
		if isCopyleft(lic) {
			return lic
		}
	}
	return m.License
}

// ConflictingDeps lists dependencies whose license conflicts with the
// declared root license.
func (m *Manifest) ConflictingDeps() []string {
	var out []string
	for dep, lic := range m.Deps {
		if isCopyleft(lic) && !isCopyleft(m.License) {
			out = append(out, dep)
		}
	}
	sort.Strings(out)
	return out
}

func isCopyleft(license string) bool {
	upper := strings.ToUpper(license)
	return strings.HasPrefix(upper, "GPL") ||
		strings.HasPrefix(upper, "AGPL") ||
		strings.HasPrefix(upper, "LGPL")
}
