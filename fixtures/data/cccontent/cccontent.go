// Package cccontent carries Creative Commons license headers for scanner testing.
//
// Creative Commons Attribution 4.0 International License (CC BY 4.0)
// This work is licensed under a Creative Commons Attribution 4.0 International License.
// You should have received a copy of the license along with this work.
// If not, see <http://creativecommons.org/licenses/by/4.0/>.
//
// Creative Commons Attribution-ShareAlike 4.0 International License (CC BY-SA 4.0)
// Some portions are licensed under CC BY-SA 4.0
// See <http://creativecommons.org/licenses/by-sa/4.0/>.
//
// Creative Commons Attribution-NonCommercial 4.0 International License (CC BY-NC 4.0)
// Some portions are licensed under CC BY-NC 4.0
// See <http://creativecommons.org/licenses/by-nc/4.0/>.
package cccontent

import (
	"fmt"
	"strings"
)

// Attribution describes a CC-licensed work's required credit line.
type Attribution struct {
	Title   string
	Author  string
	License string
	URL     string
}

// CreditLine renders the standard "Title by Author, licensed under X" form.
func (a Attribution) CreditLine() string {
	return fmt.Sprintf("%q by %s, licensed under %s (%s)", a.Title, a.Author, a.License, a.URL)
}

// Templates returns the built-in CC-licensed content templates keyed by kind.
func Templates() map[string]string {
	return map[string]string{
		"documentation": "This documentation template is licensed under CC BY 4.0.",
		"wiki":          "This wiki-style content is licensed under CC BY-SA 4.0; derivatives must share alike.",
		"research":      "This research content is licensed under CC BY-NC 4.0; commercial use is not permitted.",
	}
}

// WordCount counts whitespace-separated words in CC-licensed content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// RequiresShareAlike reports whether a CC license tag carries the SA clause.
func RequiresShareAlike(license string) bool {
	return strings.Contains(strings.ToUpper(license), "BY-SA")
}

// AllowsCommercialUse reports whether a CC license tag permits commercial use.
func AllowsCommercialUse(license string) bool {
	return !strings.Contains(strings.ToUpper(license), "BY-NC")
}
