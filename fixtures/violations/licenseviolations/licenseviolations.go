// Package licenseviolations simulates deliberate license violation patterns
// for scanner testing. Never use this package outside the test corpus.
//
// Original GPL-3.0 Licensed Code (Violation Pattern)
//
// This code is derived from GPL-3.0 licensed software but is presented as
// proprietary commercial software without GPL compliance.
//
// VIOLATION: Using GPL code in proprietary software without:
// 1. Making source code available
// 2. Including GPL license text
// 3. Maintaining GPL license for derivative works
//
// Original GPL Notice:
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License.
//
// PROPRIETARY VIOLATION NOTICE:
// Copyright (c) 2023 ProprietaryCorp. All rights reserved.
// This derivative work is distributed under a commercial license in
// violation of the original GPL terms.
package licenseviolations

import "strings"

// Violation describes one simulated compliance failure.
type Violation struct {
	Kind     string // "missing_attribution", "relicensed_copyleft", "stripped_notice"
	Source   string
	Severity string
}

// KnownViolations returns the simulated violations this fixture embeds.
func KnownViolations() []Violation {
	return []Violation{
		{Kind: "relicensed_copyleft", Source: "GPL-3.0", Severity: "critical"},
		{Kind: "missing_attribution", Source: "GPL-3.0", Severity: "high"},
		{Kind: "stripped_notice", Source: "Apache-2.0", Severity: "medium"},
	}
}

// StripNotices removes copyright lines from text, imitating the violation
// pattern where headers are scrubbed from copied code.
func StripNotices(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "copyright") || strings.Contains(lower, "license") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// CriticalCount tallies violations of critical severity.
func CriticalCount(violations []Violation) int {
	count := 0
	for _, v := range violations {
		if v.Severity == "critical" {
			count++
		}
	}
	return count
}
