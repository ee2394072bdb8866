// Package keys is the single authority for the storage key layout shared by
// the repositories and the planner listing. Every persisted record lives
// under a small family of string keys:
//
//	note:<id>           JSON-encoded note items
//	note:name:<id>      cached holiday name
//	note:desc:<id>      cached holiday description
//	reminder:<id>       notification id of the active reminder
//	reminder:body:<id>  notification message
//	reminder:time:<id>  display clock string
//	reminder:name:<id>  cached holiday name
//	reminder:desc:<id>  cached holiday description
//
// Sidecar keys are never written without their base key in the same batch,
// and are removed together with it. Keeping encode and decode in one place
// removes the fragility of prefix literals scattered across call sites.
package keys

import "strings"

// Kind discriminates the two persisted entity families.
type Kind string

const (
	KindNote     Kind = "note"
	KindReminder Kind = "reminder"
)

// Field names one slot of an entity's key family. FieldBase is the primary
// key; the rest are sidecars.
type Field string

const (
	FieldBase Field = ""
	FieldName Field = "name"
	FieldDesc Field = "desc"
	FieldBody Field = "body"
	FieldTime Field = "time"
)

const (
	segmentSep   = ":"
	compositeSep = "|"
)

// sidecars lists the sidecar fields of each kind, in the order they are
// persisted and fetched.
var sidecars = map[Kind][]Field{
	KindNote:     {FieldName, FieldDesc},
	KindReminder: {FieldBody, FieldTime, FieldName, FieldDesc},
}

// Encode builds the storage key for one field of one holiday's record.
func Encode(kind Kind, field Field, holidayID string) string {
	if field == FieldBase {
		return string(kind) + segmentSep + holidayID
	}
	return string(kind) + segmentSep + string(field) + segmentSep + holidayID
}

// Decode splits a storage key back into its kind, field and holiday id.
// Returns ok=false for keys that do not belong to the planner's layout.
//
// Holiday ids containing the segment separator still decode correctly: a
// second segment that is not a known sidecar field of the kind is treated as
// part of the id.
func Decode(key string) (Kind, Field, string, bool) {
	parts := strings.SplitN(key, segmentSep, 3)
	if len(parts) < 2 || parts[1] == "" {
		return "", FieldBase, "", false
	}

	kind := Kind(parts[0])
	if _, known := sidecars[kind]; !known {
		return "", FieldBase, "", false
	}

	if len(parts) == 2 {
		return kind, FieldBase, parts[1], true
	}

	for _, f := range sidecars[kind] {
		if Field(parts[1]) == f {
			if parts[2] == "" {
				return "", FieldBase, "", false
			}
			return kind, f, parts[2], true
		}
	}

	// second segment is part of a composite id, not a sidecar field
	return kind, FieldBase, parts[1] + segmentSep + parts[2], true
}

// All returns every key of the given kind for one holiday, base key first,
// sidecars in persistence order.
func All(kind Kind, holidayID string) []string {
	fields := sidecars[kind]
	all := make([]string, 0, len(fields)+1)
	all = append(all, Encode(kind, FieldBase, holidayID))
	for _, f := range fields {
		all = append(all, Encode(kind, f, holidayID))
	}
	return all
}

// NormalizeID canonicalizes a holiday identifier at the boundary. Both the
// bare ISO date and the composite "date|slug" form are accepted; surrounding
// whitespace and empty slug segments are dropped.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	date, slug, found := strings.Cut(id, compositeSep)
	date = strings.TrimSpace(date)
	if !found {
		return date
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return date
	}
	return date + compositeSep + slug
}

// DatePart extracts the ISO date component of an identifier, i.e. the prefix
// before the composite separator, or the whole id when it is a bare date.
func DatePart(id string) string {
	date, _, _ := strings.Cut(id, compositeSep)
	return strings.TrimSpace(date)
}

// DisplayName derives a fallback human-readable label from an identifier by
// turning its separators into spaces. Used when a record's name sidecar is
// missing.
func DisplayName(id string) string {
	name := strings.ReplaceAll(id, compositeSep, " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}
