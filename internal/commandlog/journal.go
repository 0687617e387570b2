package commandlog

import (
	"encoding/json"
	"fmt"
)

// Journal is the on-disk form of a Log's undo/redo stacks, letting a
// one-shot CLI invocation (cmd/wbs) resume undo/redo across separate
// process runs, unlike an interactive session that keeps a *Log in
// memory for its lifetime.
type Journal struct {
	Undo []Record `json:"undo"`
	Redo []Record `json:"redo"`
}

// Record is one tagged, JSON-serializable Command.
type Record struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ToJournal captures l's current stacks as a Journal.
func (l *Log) ToJournal() (Journal, error) {
	undo, err := encodeAll(l.undo)
	if err != nil {
		return Journal{}, err
	}
	redo, err := encodeAll(l.redo)
	if err != nil {
		return Journal{}, err
	}
	return Journal{Undo: undo, Redo: redo}, nil
}

// FromJournal rebuilds a Log from a previously captured Journal.
func FromJournal(j Journal) (*Log, error) {
	undo, err := decodeAll(j.Undo)
	if err != nil {
		return nil, err
	}
	redo, err := decodeAll(j.Redo)
	if err != nil {
		return nil, err
	}
	return &Log{undo: undo, redo: redo}, nil
}

func encodeAll(cmds []Command) ([]Record, error) {
	out := make([]Record, 0, len(cmds))
	for _, c := range cmds {
		r, err := encodeCommand(c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeAll(records []Record) ([]Command, error) {
	out := make([]Command, 0, len(records))
	for _, r := range records {
		c, err := decodeCommand(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func encodeCommand(c Command) (Record, error) {
	typ, ok := commandTypeName(c)
	if !ok {
		return Record{}, fmt.Errorf("commandlog: cannot journal command of type %T", c)
	}
	data, err := json.Marshal(c)
	if err != nil {
		return Record{}, fmt.Errorf("commandlog: encode %s: %w", typ, err)
	}
	return Record{Type: typ, Data: data}, nil
}

func decodeCommand(r Record) (Command, error) {
	c, ok := newCommandByType(r.Type)
	if !ok {
		return nil, fmt.Errorf("commandlog: unknown journaled command type %q", r.Type)
	}
	if err := json.Unmarshal(r.Data, c); err != nil {
		return nil, fmt.Errorf("commandlog: decode %s: %w", r.Type, err)
	}
	return c, nil
}

func commandTypeName(c Command) (string, bool) {
	switch c.(type) {
	case *AddChild:
		return "AddChild", true
	case *AddSibling:
		return "AddSibling", true
	case *Delete:
		return "Delete", true
	case *RestoreNode:
		return "RestoreNode", true
	case *RenameTitle:
		return "RenameTitle", true
	case *SetField:
		return "SetField", true
	case *MoveUp:
		return "MoveUp", true
	case *MoveDown:
		return "MoveDown", true
	case *Indent:
		return "Indent", true
	case *Outdent:
		return "Outdent", true
	case *ReorderInColumn:
		return "ReorderInColumn", true
	case *SetStatus:
		return "SetStatus", true
	default:
		return "", false
	}
}

func newCommandByType(typ string) (Command, bool) {
	switch typ {
	case "AddChild":
		return &AddChild{}, true
	case "AddSibling":
		return &AddSibling{}, true
	case "Delete":
		return &Delete{}, true
	case "RestoreNode":
		return &RestoreNode{}, true
	case "RenameTitle":
		return &RenameTitle{}, true
	case "SetField":
		return &SetField{}, true
	case "MoveUp":
		return &MoveUp{}, true
	case "MoveDown":
		return &MoveDown{}, true
	case "Indent":
		return &Indent{}, true
	case "Outdent":
		return &Outdent{}, true
	case "ReorderInColumn":
		return &ReorderInColumn{}, true
	case "SetStatus":
		return &SetStatus{}, true
	default:
		return nil, false
	}
}
