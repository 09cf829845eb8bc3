// Package normalize decodes the JSON-encoded list fields of the raw dataset
// records into typed, filtered lists. Every decode is defensive: a field
// that fails to parse yields an empty list and a log line, never an error
// that aborts the pipeline.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/utils"
)

// Bibliometric per-entry clamps. Source rows have been observed carrying
// concatenation artifacts ("8.29.112.4" style), so each entry is bounded
// before it contributes to a sum.
const (
	maxImpactFactor = 100
	maxCitations    = 10_000_000
	maxHIndex       = 10_000
)

// systemFields never make an entry "valid" on their own; they are bookkeeping
// columns, not departmental answers.
var systemFields = map[string]bool{
	"id": true, "dept_id": true, "department": true, "a_year": true,
	"year_key": true, "serial_number": true, "sr_no": true, "srno": true,
}

type Normalizer struct {
	log *logger.Logger
}

func New(baseLog *logger.Logger) *Normalizer {
	return &Normalizer{log: baseLog.With("component", "Normalizer")}
}

// DecodeList decodes a JSON array-of-objects field. Invalid JSON or a
// non-array payload decodes to nil.
func (n *Normalizer) DecodeList(raw datatypes.JSON, field string) []map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		n.log.Warn("json list field failed to decode, substituting empty list", "field", field, "error", err)
		return nil
	}
	return out
}

// DecodeCounts decodes a JSON object of item-name → count (the Section V
// storage shape). Invalid JSON decodes to nil.
func (n *Normalizer) DecodeCounts(raw datatypes.JSON, field string) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	var loose map[string]interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		n.log.Warn("json counts field failed to decode, substituting empty map", "field", field, "error", err)
		return nil
	}
	out := make(map[string]float64, len(loose))
	for k, v := range loose {
		out[k] = utils.ToFloat(v)
	}
	return out
}

// isYearField recognizes per-entry year columns (year founded, year passed),
// which legitimately hold 0 while still being meaningful data.
func isYearField(name string) bool {
	return strings.Contains(strings.ToLower(name), "year")
}

// EntryValid applies the keep rule: at least one non-system field must hold
// a non-empty value that is not the "-" sentinel, or a year field must hold
// a bare numeric value (including "0").
func EntryValid(entry map[string]interface{}) bool {
	for k, v := range entry {
		if systemFields[strings.ToLower(strings.TrimSpace(k))] {
			continue
		}
		s := utils.ToString(v)
		if isYearField(k) {
			if s != "" {
				if _, err := strconv.ParseFloat(s, 64); err == nil {
					return true
				}
			}
			continue
		}
		if s != "" && s != "-" {
			return true
		}
	}
	return false
}

// FilterValid drops sentinel-empty entries from a decoded list.
func FilterValid(entries []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if EntryValid(e) {
			out = append(out, e)
		}
	}
	return out
}

// CountedList decodes, filters and counts a plain list field (NEP
// initiatives, support initiatives and similar).
func (n *Normalizer) CountedList(raw datatypes.JSON, field string) []map[string]interface{} {
	return FilterValid(n.DecodeList(raw, field))
}

// CountedPracticeList is the Section III variant of CountedList: entries
// whose only content is "0" are placeholders there and are dropped too.
func (n *Normalizer) CountedPracticeList(raw datatypes.JSON, field string) []map[string]interface{} {
	entries := n.DecodeList(raw, field)
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		if !EntryValid(e) {
			continue
		}
		if practiceBlank(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func practiceBlank(entry map[string]interface{}) bool {
	for k, v := range entry {
		if systemFields[strings.ToLower(strings.TrimSpace(k))] {
			continue
		}
		s := utils.ToString(v)
		if s != "" && s != "-" && s != "0" {
			return false
		}
	}
	return true
}

// Narrative normalizes a free-text answer: trimmed, with the "no response"
// sentinels collapsed to the empty string.
func Narrative(s string) string {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "", "-", "not provided", "na", "n/a", "nil":
		return ""
	}
	return t
}

// StringFields renders an entry's values as trimmed strings for display.
func StringFields(entry map[string]interface{}) map[string]string {
	out := make(map[string]string, len(entry))
	for k, v := range entry {
		out[k] = utils.ToString(v)
	}
	return out
}
