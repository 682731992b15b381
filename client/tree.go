package client

import (
	"context"
	"sync"

	"github.com/aksoydev/tamirstore-api/models"
)

// NodeState tags one category node in the lazy-loaded tree.
type NodeState int

const (
	NodeUnloaded NodeState = iota
	NodeLoading
	NodeCollapsed // children fetched, node folded
	NodeExpanded  // children fetched, node open
)

// rootKey indexes the synthetic root level (parent "null") in the flat node
// map; category ids start at 1 so 0 is free.
const rootKey uint = 0

type treeNode struct {
	state    NodeState
	children []models.Category
}

// CategoryTree loads the category hierarchy one level at a time. State lives
// in a flat map keyed by category id, so toggling a deep node never copies
// its ancestors. Children are fetched once per node and reused across
// collapse/expand cycles.
//
// Concurrent Toggle calls on the same node are serialized by the mutex; the
// loading tag keeps a second caller from refetching while the first fetch is
// in flight.
type CategoryTree struct {
	client *Client

	mu    sync.Mutex
	nodes map[uint]*treeNode
}

func NewCategoryTree(client *Client) *CategoryTree {
	return &CategoryTree{
		client: client,
		nodes:  map[uint]*treeNode{},
	}
}

// LoadRoot fetches the top-level categories.
func (t *CategoryTree) LoadRoot(ctx context.Context) ([]models.Category, error) {
	return t.load(ctx, rootKey)
}

// Toggle expands a collapsed node (fetching its children on first expand)
// or collapses an expanded one. It returns the node's children and whether
// the node is now expanded.
func (t *CategoryTree) Toggle(ctx context.Context, id uint) ([]models.Category, bool, error) {
	t.mu.Lock()
	node := t.node(id)
	switch node.state {
	case NodeExpanded:
		node.state = NodeCollapsed
		children := node.children
		t.mu.Unlock()
		return children, false, nil
	case NodeCollapsed:
		node.state = NodeExpanded
		children := node.children
		t.mu.Unlock()
		return children, true, nil
	case NodeLoading:
		children := node.children
		t.mu.Unlock()
		return children, false, nil
	}
	node.state = NodeLoading
	t.mu.Unlock()

	children, err := t.fetch(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		node.state = NodeUnloaded
		return nil, false, err
	}
	node.children = children
	node.state = NodeExpanded
	return children, true, nil
}

// State reports a node's current tag.
func (t *CategoryTree) State(id uint) NodeState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.node(id).state
}

// Children returns the cached children of a node; nil when not yet loaded.
func (t *CategoryTree) Children(id uint) []models.Category {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.node(id).children
}

func (t *CategoryTree) node(id uint) *treeNode {
	n, ok := t.nodes[id]
	if !ok {
		n = &treeNode{}
		t.nodes[id] = n
	}
	return n
}

// load fetches (or returns cached) children for a node without changing its
// expanded/collapsed disposition beyond marking it loaded.
func (t *CategoryTree) load(ctx context.Context, id uint) ([]models.Category, error) {
	t.mu.Lock()
	node := t.node(id)
	if node.state == NodeCollapsed || node.state == NodeExpanded {
		children := node.children
		t.mu.Unlock()
		return children, nil
	}
	node.state = NodeLoading
	t.mu.Unlock()

	children, err := t.fetch(ctx, id)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		node.state = NodeUnloaded
		return nil, err
	}
	node.children = children
	node.state = NodeExpanded
	return children, nil
}

func (t *CategoryTree) fetch(ctx context.Context, id uint) ([]models.Category, error) {
	if id == rootKey {
		return t.client.CategoryChildren(ctx, nil)
	}
	parent := id
	return t.client.CategoryChildren(ctx, &parent)
}
