package model

import (
	"errors"
	"testing"
)

func TestNode_ValidateEmptyTitle(t *testing.T) {
	n := NewNode("x", 1)
	n.Title = ""
	if err := n.Validate(); !errors.Is(err, ErrFieldTypeMismatch) {
		t.Fatalf("want ErrFieldTypeMismatch, got %v", err)
	}
}

func TestNode_ValidateDepthRange(t *testing.T) {
	n := NewNode("x", 7)
	if err := n.Validate(); !errors.Is(err, ErrFieldTypeMismatch) {
		t.Fatalf("want ErrFieldTypeMismatch, got %v", err)
	}
}

func TestNode_MilestoneGeometry(t *testing.T) {
	n := NewNode("Launch", 1)
	n.Milestone = true
	n.Start = "2026-03-06"
	n.End = "2026-03-06"
	if err := n.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n.End = "2026-03-07"
	if err := n.Validate(); !errors.Is(err, ErrFieldTypeMismatch) {
		t.Fatalf("want conflict error, got %v", err)
	}
}

func TestNode_WithCustomValue(t *testing.T) {
	n := NewNode("x", 1)
	n = n.WithCustomValue("team", "infra")
	n = n.WithCustomValue("team", "platform")
	v, ok := n.CustomValue("team")
	if !ok || v != "platform" {
		t.Fatalf("got %q,%v want platform,true", v, ok)
	}
	if len(n.Custom) != 1 {
		t.Fatalf("expected single custom entry, got %d", len(n.Custom))
	}
}

func TestProject_FindByTitleFirstInDocumentOrder(t *testing.T) {
	a := NewNode("Dup", 1)
	b := NewNode("Dup", 1)
	proj := Project{Documents: []Document{
		{Path: "a.wbs.md", Roots: []Node{a}},
		{Path: "b.wbs.md", Roots: []Node{b}},
	}}
	found, ok := proj.FindByTitle("Dup")
	if !ok || found.ID != a.ID {
		t.Fatalf("expected first document's node, got ok=%v id=%v", ok, found.ID)
	}
}
