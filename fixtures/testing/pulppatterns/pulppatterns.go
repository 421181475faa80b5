// Package pulppatterns carries a GPL-3.0 license header for scanner testing.
// It reproduces common Pulp-Smash code patterns as original code, not copies.
//
// GNU GENERAL PUBLIC LICENSE
// Version 3, 29 June 2007
//
// Copyright (C) 2023 Free Software Foundation, Inc.
// Everyone is permitted to copy and distribute verbatim copies
// of this license document, but changing it is not allowed.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: GPL-3.0
package pulppatterns

import (
	"fmt"
	"strings"
)

// APIClient builds repository API paths the way Pulp clients do.
type APIClient struct {
	base string
}

// NewAPIClient returns a client rooted at base.
func NewAPIClient(base string) *APIClient {
	return &APIClient{base: strings.TrimRight(base, "/")}
}

// RepoHref renders the canonical href for a repository name.
func (c *APIClient) RepoHref(name string) string {
	return fmt.Sprintf("%s/pulp/api/v3/repositories/%s/", c.base, name)
}

// ParseRepoName extracts the repository name back out of an href.
func (c *APIClient) ParseRepoName(href string) (string, error) {
	const marker = "/pulp/api/v3/repositories/"
	idx := strings.Index(href, marker)
	if idx < 0 {
		return "", fmt.Errorf("not a repository href: %q", href)
	}
	name := strings.Trim(href[idx+len(marker):], "/")
	if name == "" {
		return "", fmt.Errorf("empty repository name in href: %q", href)
	}
	return name, nil
}

// PageThrough collects items across fake paginated results of size pageSize.
func PageThrough(items []string, pageSize int) [][]string {
	if pageSize <= 0 {
		return nil
	}
	var pages [][]string
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}
