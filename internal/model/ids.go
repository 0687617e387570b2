package model

import "github.com/google/uuid"

// NodeID is an opaque per-process node identifier. It is generated once
// when a Node is created (by the parser or by a command) and is never
// written to disk — on the next parse, nodes get fresh IDs.
type NodeID string

// NewNodeID returns a fresh, process-unique node identifier.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}
