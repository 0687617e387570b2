package model

import "testing"

func TestReconcileProgress_ThreeLeafChildren(t *testing.T) {
	parent := NewNode("Parent", 1)
	parent.Children = []Node{
		withStatus(NewNode("A", 2), StatusDone),
		withStatus(NewNode("B", 2), StatusDone),
		withStatus(NewNode("C", 2), StatusTodo),
	}

	got := ReconcileProgress(parent)

	if got.Progress != 66 {
		t.Fatalf("progress = %d, want 66", got.Progress)
	}
}

func TestReconcileProgress_LeafKeepsExplicitValue(t *testing.T) {
	leaf := NewNode("Leaf", 1)
	leaf.Progress = 42

	got := ReconcileProgress(leaf)

	if got.Progress != 42 {
		t.Fatalf("progress = %d, want 42 (leaf progress is explicit)", got.Progress)
	}
}

func TestReconcileProgress_MilestonesExcludedFromCount(t *testing.T) {
	parent := NewNode("Parent", 1)
	parent.Children = []Node{
		withStatus(NewNode("A", 2), StatusDone),
		milestoneNode("M", 2),
	}

	got := ReconcileProgress(parent)

	if got.Progress != 100 {
		t.Fatalf("progress = %d, want 100 (milestone excluded from denominator)", got.Progress)
	}
}

func TestReconcileProgress_Monotonicity(t *testing.T) {
	statuses := []Status{StatusTodo, StatusInProgress, StatusDone}
	prev := -1
	for _, s := range statuses {
		parent := NewNode("Parent", 1)
		parent.Children = []Node{
			withStatus(NewNode("A", 2), s),
			withStatus(NewNode("B", 2), StatusDone),
		}
		got := ReconcileProgress(parent)
		if got.Progress < prev {
			t.Fatalf("progress decreased as status advanced: %d -> %d", prev, got.Progress)
		}
		prev = got.Progress
	}
}

func withStatus(n Node, s Status) Node {
	n.Status = s
	return n
}

func milestoneNode(title string, depth int) Node {
	n := NewNode(title, depth)
	n.Milestone = true
	n.Start = "2026-01-01"
	n.End = "2026-01-01"
	return n
}
