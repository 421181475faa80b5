// Package apacheutils carries an Apache-2.0 license header for scanner testing.
//
// Copyright 2023 Apache Software Foundation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package apacheutils

import (
	"sort"
	"strings"
)

// RecordProcessor groups string records by a key function, in the style of
// Apache Commons collection utilities.
type RecordProcessor struct {
	records []string
}

// NewRecordProcessor returns a processor over the given records.
func NewRecordProcessor(records []string) *RecordProcessor {
	return &RecordProcessor{records: records}
}

// GroupByPrefix buckets records by their prefix up to the first separator.
func (p *RecordProcessor) GroupByPrefix(sep string) map[string][]string {
	groups := make(map[string][]string)
	for _, r := range p.records {
		key := r
		if idx := strings.Index(r, sep); idx >= 0 {
			key = r[:idx]
		}
		groups[key] = append(groups[key], r)
	}
	return groups
}

// Deduplicate returns the records with duplicates removed, sorted.
func (p *RecordProcessor) Deduplicate() []string {
	seen := make(map[string]struct{}, len(p.records))
	var out []string
	for _, r := range p.records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of records.
func (p *RecordProcessor) Count() int {
	return len(p.records)
}
