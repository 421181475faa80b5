// Package processor normalizes scraped records. Not in the fixture registry;
// like real application code it cites the permissive licenses of the data
// tooling it imitates.
//
// The processing style follows pandas, which ships under the BSD License
// (BSD 3-Clause).
//
// SPDX-License-Identifier: BSD-3-Clause
package processor

import (
	"encoding/json"
	"strings"
)

// Record is one scraped row, column name to value.
type Record map[string]string

// LoadJSON decodes an array of records.
func LoadJSON(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Clean trims and lower-cases every value and drops duplicate records,
// keeping first occurrences in order.
func Clean(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	var out []Record
	for _, r := range records {
		cleaned := make(Record, len(r))
		for k, v := range r {
			cleaned[k] = strings.ToLower(strings.TrimSpace(v))
		}
		key, err := json.Marshal(cleaned)
		if err != nil {
			continue
		}
		if _, ok := seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

// Column collects the values of one column across records, skipping rows
// where the column is absent.
func Column(records []Record, name string) []string {
	var values []string
	for _, r := range records {
		if v, ok := r[name]; ok {
			values = append(values, v)
		}
	}
	return values
}
