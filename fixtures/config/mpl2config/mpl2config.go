// Package mpl2config carries an MPL-2.0 license header for scanner testing.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// Covered Software is provided under this License on an "as is" basis,
// without warranty of any kind, either expressed, implied, or statutory,
// including, without limitation, warranties that the Covered Software is
// free of defects, merchantable, fit for a particular purpose or non-infringing.
//
// SPDX-License-Identifier: MPL-2.0
package mpl2config

import (
	"fmt"
	"strings"
)

// Manager is a toy INI-flavored configuration holder.
type Manager struct {
	values map[string]string
}

// NewManager returns an empty configuration manager.
func NewManager() *Manager {
	return &Manager{values: make(map[string]string)}
}

// ParseINI loads simple key=value lines, ignoring comments and sections.
func (m *Manager) ParseINI(content string) error {
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("line %d: not a key=value pair: %q", i+1, line)
		}
		m.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

// Get returns the value for key and whether it was present.
func (m *Manager) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetDefault returns the value for key, or fallback when absent.
func (m *Manager) GetDefault(key, fallback string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return fallback
}

// Len returns the number of stored keys.
func (m *Manager) Len() int {
	return len(m.values)
}
