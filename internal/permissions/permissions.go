// Package permissions evaluates whether a role's stored permission
// list grants a requested permission string.
//
// Permission strings are dot-separated capability identifiers such as
// "projects.edit". A list entry may be a trailing wildcard like
// "projects.*", or the full wildcard "*" which grants everything.
package permissions

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// Wildcard grants every permission when present in a list.
const Wildcard = "*"

// Granted reports whether the permission list grants required.
//
// Matching order: full wildcard, verbatim match, then trailing
// wildcard entries ("projects.*" matches "projects.view" but not
// "projectsother" — the dot is kept when the trailing star is
// stripped). An empty or nil list denies everything.
func Granted(list []string, required string) bool {
	for _, entry := range list {
		if entry == Wildcard {
			return true
		}
	}
	for _, entry := range list {
		if entry == required {
			return true
		}
	}
	for _, entry := range list {
		if !strings.HasSuffix(entry, ".*") {
			continue
		}
		prefix := entry[:len(entry)-1]
		if strings.HasPrefix(required, prefix) {
			return true
		}
	}
	return false
}

// GrantsAny reports whether the list grants at least one of required.
func GrantsAny(list []string, required ...string) bool {
	for _, permission := range required {
		if Granted(list, permission) {
			return true
		}
	}
	return false
}

// Parse decodes a JSON permission column into a string slice.
// Malformed or empty content yields an empty list, which denies all.
func Parse(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

// Normalize trims entries and drops empties and duplicates, keeping
// the original order of first occurrence.
func Normalize(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, entry := range list {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// Validate rejects permission strings that do not look like capability
// identifiers: the full wildcard, "resource.action" or "resource.*".
func Validate(list []string) error {
	for _, entry := range list {
		if entry == Wildcard {
			continue
		}
		dot := strings.Index(entry, ".")
		if dot <= 0 || dot == len(entry)-1 {
			return fmt.Errorf("permissions: invalid entry %q", entry)
		}
		if strings.Contains(entry, " ") {
			return fmt.Errorf("permissions: invalid entry %q", entry)
		}
	}
	return nil
}

// Marshal encodes a permission list for storage in a JSON column.
func Marshal(list []string) (datatypes.JSON, error) {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
