package pages

import (
	"sort"

	"github.com/artcom/cheminova-backend/internal/models"
)

// Node is a page in a Tree.
type Node struct {
	Page     *models.Page
	Parent   *Node
	Children []*Node
}

// Tree links pages through parent pointers and a child index. Pages whose
// parent is not part of the input become roots.
type Tree struct {
	nodes map[uint64]*Node
	roots []*Node
}

// NewTree builds a tree from a flat page list. Children keep tree path order.
func NewTree(list []models.Page) *Tree {
	sorted := make([]*models.Page, len(list))
	for i := range list {
		sorted[i] = &list[i]
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	t := &Tree{nodes: make(map[uint64]*Node, len(sorted))}
	for _, p := range sorted {
		t.nodes[p.ID] = &Node{Page: p}
	}

	for _, p := range sorted {
		node := t.nodes[p.ID]
		if p.ParentID != nil {
			if parent, ok := t.nodes[*p.ParentID]; ok {
				node.Parent = parent
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		t.roots = append(t.roots, node)
	}

	return t
}

// Node returns the node of a page.
func (t *Tree) Node(id uint64) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Roots returns the top level nodes.
func (t *Tree) Roots() []*Node {
	return t.roots
}

// Children returns the direct children of a page.
func (t *Tree) Children(id uint64) []*Node {
	if n, ok := t.nodes[id]; ok {
		return n.Children
	}
	return nil
}

// OfType returns the nodes of a page type in tree order, optionally limited to a locale.
func (t *Tree) OfType(pageType string, localeID *uint64) []*Node {
	var result []*Node
	t.Walk(func(n *Node, _ int) bool {
		if n.Page.Type == pageType && matchesLocale(n.Page, localeID) {
			result = append(result, n)
		}
		return true
	})
	return result
}

// Walk visits all nodes depth first in tree order. Returning false skips the subtree.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	for _, r := range t.roots {
		walk(r, 0, fn)
	}
}

// Subtree visits n and its descendants down to maxDepth levels below n.
// A negative maxDepth is unlimited.
func Subtree(n *Node, maxDepth int, fn func(n *Node, depth int)) {
	walk(n, 0, func(node *Node, depth int) bool {
		fn(node, depth)
		return maxDepth < 0 || depth < maxDepth
	})
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

func matchesLocale(p *models.Page, localeID *uint64) bool {
	if localeID == nil {
		return true
	}
	return p.LocaleID != nil && *p.LocaleID == *localeID
}
