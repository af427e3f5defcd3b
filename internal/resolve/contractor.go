package resolve

import (
	"strings"

	"github.com/fieldlog/fieldlog/internal/entity"
)

// Contractor-scoped sub-entities (activity, personnel counts, equipment rows)
// resolve per contractor with the same tiering as scalar fields, plus a
// secondary match path: freeform capture means the AI never saw contractor
// ids, so an id miss falls back to a case-insensitive exact name match.

// ContractorRecord finds the AI-tier record for one contractor inside the
// collection at aiPath. The collection may be a map keyed by contractor id or
// a list of records carrying contractorId/contractorName. Returns nil when no
// record matches.
func ContractorRecord(ai map[string]any, aiPath string, c entity.Contractor) map[string]any {
	coll := Lookup(ai, aiPath)
	if coll == nil {
		return nil
	}

	id := c.ID.String()
	switch t := coll.(type) {
	case map[string]any:
		if rec, ok := t[id].(map[string]any); ok {
			return rec
		}
		// Name-keyed maps appear in freeform refinements.
		for k, v := range t {
			if strings.EqualFold(k, c.Name) {
				if rec, ok := v.(map[string]any); ok {
					return rec
				}
			}
		}
	case []any:
		for _, item := range t {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if rid, _ := rec["contractorId"].(string); rid != "" && rid == id {
				return rec
			}
		}
		for _, item := range t {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if name, _ := rec["contractorName"].(string); name != "" && strings.EqualFold(name, c.Name) {
				return rec
			}
		}
	}
	return nil
}

// ContractorValue resolves one field of a contractor-scoped record:
// user edit at editKey, then the named key of the contractor's AI record,
// then the fallback. The report tier does not apply; legacy payloads carry
// contractor rows, not per-field values.
func ContractorValue(src Sources, aiPath string, c entity.Contractor, editKey, recordKey string, fallback any) any {
	if v, ok := defined(src.UserEdits[editKey]); ok {
		return v
	}
	if rec := ContractorRecord(src.AI, aiPath, c); rec != nil {
		if v, ok := defined(rec[recordKey]); ok {
			return v
		}
	}
	if v, ok := defined(fallback); ok {
		return v
	}
	return fallback
}

// RosterMatch resolves a denormalized contractor name against the roster by
// case-insensitive exact match. Returns nil when no contractor matches.
func RosterMatch(roster []entity.Contractor, name string) *entity.Contractor {
	if name == "" {
		return nil
	}
	for i := range roster {
		if strings.EqualFold(roster[i].Name, name) {
			return &roster[i]
		}
	}
	return nil
}
