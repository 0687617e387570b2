package markdown

import (
	"strconv"
	"strings"

	"github.com/mdwbs/wbs/internal/model"
)

// applyMetadata decodes a metadata comment's inner payload ("key: value
// | key: value | ...") onto n, per spec §4.1 step 3 and §6. Unknown
// keys become custom fields; invalid enum/date values warn and fall
// back to the column default; duplicate keys keep the last occurrence
// and warn.
func applyMetadata(n model.Node, payload string) (model.Node, []model.Warning) {
	var warnings []model.Warning
	seen := map[string]bool{}

	for _, field := range strings.Split(payload, "|") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, ok := splitKeyValue(field)
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if seen[key] {
			warnings = append(warnings, model.Warning{
				Kind: "DuplicateKey", Message: "duplicate metadata key '" + key + "'; last occurrence wins",
			})
		}
		seen[key] = true

		switch key {
		case "status":
			s := model.Status(value)
			if !s.IsValid() {
				warnings = append(warnings, model.Warning{Kind: "InvalidEnum", Message: "invalid status '" + value + "', defaulting to TODO"})
				s = model.StatusTodo
			}
			n.Status = s
		case "priority":
			p := model.Priority(value)
			if !p.IsValid() {
				warnings = append(warnings, model.Warning{Kind: "InvalidEnum", Message: "invalid priority '" + value + "', defaulting to MEDIUM"})
				p = model.PriorityMedium
			}
			n.Priority = p
		case "assignee":
			n.Assignee = value
		case "duration":
			n.Duration = value
		case "start":
			if value != "" {
				if _, ok := model.ParseDate(value); !ok {
					warnings = append(warnings, model.Warning{Kind: "InvalidDate", Message: "invalid start date '" + value + "'"})
					value = ""
				}
			}
			n.Start = value
		case "end":
			if value != "" {
				if _, ok := model.ParseDate(value); !ok {
					warnings = append(warnings, model.Warning{Kind: "InvalidDate", Message: "invalid end date '" + value + "'"})
					value = ""
				}
			}
			n.End = value
		case "milestone":
			b, err := strconv.ParseBool(value)
			if err != nil {
				warnings = append(warnings, model.Warning{Kind: "InvalidEnum", Message: "invalid milestone '" + value + "', defaulting to false"})
				b = false
			}
			n.Milestone = b
		case "progress":
			p, err := strconv.Atoi(value)
			if err != nil {
				warnings = append(warnings, model.Warning{Kind: "InvalidEnum", Message: "invalid progress '" + value + "', defaulting to 0"})
				p = 0
			}
			if p < 0 {
				p = 0
			}
			if p > 100 {
				p = 100
			}
			n.Progress = p
		case "depends":
			n.Depends = splitDepends(value)
		default:
			n = n.WithCustomValue(key, value)
			n.Edited = false // decoding from source is not an edit
		}
	}

	if n.Milestone && n.Start != "" {
		n.End = n.Start
	}

	return n, warnings
}

// splitKeyValue splits "key: value" on the first colon.
func splitKeyValue(field string) (key, value string, ok bool) {
	idx := strings.Index(field, ":")
	if idx < 0 {
		return "", "", false
	}
	return field[:idx], field[idx+1:], true
}

// splitDepends splits a depends field's value on ';', trimming and
// dropping empties while preserving order (spec §4.1 step 4).
func splitDepends(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
