package models

import "fmt"

// DanglingPolicy decides what happens to a channel whose parent id points at
// a channel the template does not contain.
type DanglingPolicy string

const (
	// DanglingDrop omits the channel and everything below it.
	DanglingDrop DanglingPolicy = "drop"
	// DanglingPromote lists the channel as a root.
	DanglingPromote DanglingPolicy = "promote"
)

func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	switch DanglingPolicy(s) {
	case DanglingDrop, DanglingPromote:
		return DanglingPolicy(s), nil
	case "":
		return DanglingDrop, nil
	}
	return "", fmt.Errorf("unknown dangling parent policy %q", s)
}

// ChannelNode is a channel placed in the tree. ParentID is only a reference;
// a node is owned by the Children slice of its parent or by the root list.
type ChannelNode struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	ParentID *int64         `json:"parentId"`
	Children []*ChannelNode `json:"children"`
}

// BuildChannelTree turns the flat channel list into a forest. Siblings keep
// input order. When ids repeat, the last record wins but the id keeps the
// slot of its first occurrence.
func BuildChannelTree(records []ChannelRecord, policy DanglingPolicy) []*ChannelNode {
	nodes := make(map[int64]*ChannelNode, len(records))
	order := make([]int64, 0, len(records))

	for _, rec := range records {
		if _, seen := nodes[rec.ID]; !seen {
			order = append(order, rec.ID)
		}
		nodes[rec.ID] = &ChannelNode{
			ID:       rec.ID,
			Name:     rec.Name,
			ParentID: rec.ParentID,
			Children: []*ChannelNode{},
		}
	}

	roots := make([]*ChannelNode, 0)
	for _, id := range order {
		node := nodes[id]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*node.ParentID]; ok {
			parent.Children = append(parent.Children, node)
			continue
		}
		if policy == DanglingPromote {
			roots = append(roots, node)
		}
	}
	return roots
}

// DanglingChannels returns the records whose parent id matches no channel in
// records, in input order.
func DanglingChannels(records []ChannelRecord) []ChannelRecord {
	ids := make(map[int64]struct{}, len(records))
	for _, rec := range records {
		ids[rec.ID] = struct{}{}
	}

	var dangling []ChannelRecord
	for _, rec := range records {
		if rec.ParentID == nil {
			continue
		}
		if _, ok := ids[*rec.ParentID]; !ok {
			dangling = append(dangling, rec)
		}
	}
	return dangling
}

// CountChannels returns the number of nodes reachable from roots.
func CountChannels(roots []*ChannelNode) int {
	count := 0
	stack := append([]*ChannelNode(nil), roots...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, node.Children...)
	}
	return count
}
