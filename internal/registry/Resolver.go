/*

This file resolves upstream protocol display names to registry records,
tolerating the naming inconsistencies of the pools data source.

*/

package registry

import (
	"regexp"
	"strings"

	"github.com/clementfrmd/safeyield/internal/types"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	versionSuffix = regexp.MustCompile(`-v\d+$`)
)

// Normalize converts a protocol display name to slug form: lowercased, with
// every whitespace run replaced by a single hyphen.
func Normalize(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// Resolve maps a protocol display name (as carried on a pool record, e.g.
// "Aave V3" or "Morpho Blue") to its registry record.
//
// Resolution order:
//  1. Normalize and match against slugs and aliases.
//  2. Strip a trailing "-v<digits>" suffix and retry. Stripping only ever
//     widens the lookup; it never substitutes a different version, so
//     "Euler V5" stays unresolved when only "euler-v2" is registered.
//  3. Scan all records comparing display names case-insensitively against
//     the original input.
//
// A miss returns (nil, false) and means "no enhancement data available",
// never an error. Resolve is deterministic and side-effect free.
func Resolve(protocolName string) (*types.ProtocolRecord, bool) {
	normalized := Normalize(protocolName)

	if record, ok := slugIndex[normalized]; ok {
		return record, true
	}

	if stripped := versionSuffix.ReplaceAllString(normalized, ""); stripped != normalized {
		if record, ok := slugIndex[stripped]; ok {
			return record, true
		}
	}

	for _, record := range All() {
		if strings.EqualFold(record.Name, protocolName) {
			return record, true
		}
	}

	return nil, false
}
