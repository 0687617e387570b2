package commandlog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mdwbs/wbs/internal/model"
)

// fieldValue returns field's current value on node as a string, the
// same textual form SetField accepts, so undo can restore it exactly.
func fieldValue(node model.Node, field string) (string, error) {
	switch field {
	case "title":
		return node.Title, nil
	case "status":
		return string(node.Status), nil
	case "priority":
		return string(node.Priority), nil
	case "assignee":
		return node.Assignee, nil
	case "duration":
		return node.Duration, nil
	case "start":
		return node.Start, nil
	case "end":
		return node.End, nil
	case "progress":
		return strconv.Itoa(node.Progress), nil
	case "milestone":
		return strconv.FormatBool(node.Milestone), nil
	case "depends":
		return strings.Join(node.Depends, ";"), nil
	case "memo":
		return string(node.Memo), nil
	case "file":
		return node.SourceFile, nil
	}
	if v, ok := node.CustomValue(field); ok {
		return v, nil
	}
	return "", nil
}

// withField returns a copy of node with field set to value, parsed and
// validated by the column's type (spec §3.1, §4.4, §7).
func withField(node model.Node, field, value string) (model.Node, error) {
	switch field {
	case "title":
		if value == "" {
			return node, fmt.Errorf("%w: title must not be empty", model.ErrFieldTypeMismatch)
		}
		node.Title = value
		return node, nil
	case "status":
		s := model.Status(value)
		if !s.IsValid() {
			return node, fmt.Errorf("%w: invalid status %q", model.ErrFieldTypeMismatch, value)
		}
		node.Status = s
		return node, nil
	case "priority":
		p := model.Priority(value)
		if !p.IsValid() {
			return node, fmt.Errorf("%w: invalid priority %q", model.ErrFieldTypeMismatch, value)
		}
		node.Priority = p
		return node, nil
	case "assignee":
		node.Assignee = value
		return node, nil
	case "duration":
		node.Duration = value
		return node, nil
	case "start":
		if value != "" {
			if _, ok := model.ParseDate(value); !ok {
				return node, fmt.Errorf("%w: invalid start date %q", model.ErrFieldTypeMismatch, value)
			}
		}
		node.Start = value
		node.StartExplicit = value != ""
		return node, nil
	case "end":
		if value != "" {
			if _, ok := model.ParseDate(value); !ok {
				return node, fmt.Errorf("%w: invalid end date %q", model.ErrFieldTypeMismatch, value)
			}
		}
		node.End = value
		node.EndExplicit = value != ""
		return node, nil
	case "progress":
		p, err := strconv.Atoi(value)
		if err != nil || p < 0 || p > 100 {
			return node, fmt.Errorf("%w: invalid progress %q", model.ErrFieldTypeMismatch, value)
		}
		node.Progress = p
		return node, nil
	case "milestone":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return node, fmt.Errorf("%w: invalid milestone %q", model.ErrFieldTypeMismatch, value)
		}
		node.Milestone = b
		return node, nil
	case "depends":
		var deps []string
		for _, d := range strings.Split(value, ";") {
			d = strings.TrimSpace(d)
			if d != "" {
				deps = append(deps, d)
			}
		}
		node.Depends = deps
		return node, nil
	case "memo":
		node.Memo = []byte(value)
		return node, nil
	case "file":
		return node, fmt.Errorf("%w: file", model.ErrComputedField)
	}

	if !model.IsBuiltin(field) {
		return node.WithCustomValue(field, value), nil
	}
	return node, fmt.Errorf("%w: %q", model.ErrUnknownColumn, field)
}
