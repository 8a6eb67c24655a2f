package account

import (
	"github.com/google/uuid"
)

// Node is an account together with its children.
type Node struct {
	Account  *Account
	Children []*Node
}

// BuildHierarchy arranges accounts into a forest. The first pass indexes
// every account, the second attaches each node under its parent. An account
// whose parent is absent from the input becomes a root.
func BuildHierarchy(accounts []*Account) []*Node {
	nodes := make(map[uuid.UUID]*Node, len(accounts))
	for _, a := range accounts {
		nodes[a.ID] = &Node{Account: a}
	}

	var roots []*Node

	for _, a := range accounts {
		n := nodes[a.ID]

		if a.ParentID != nil {
			if parent, ok := nodes[*a.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}

		roots = append(roots, n)
	}

	return roots
}
