package scene

// Tree is a Graph that hands out *Transform nodes and remembers them.
type Tree struct {
	nodes []*Transform
}

func NewTree() *Tree {
	return &Tree{}
}

func (g *Tree) NewNode(name string) Node {
	return g.Add(name)
}

// Add is NewNode with the concrete type.
func (g *Tree) Add(name string) *Transform {
	t := NewTransform(name)
	g.nodes = append(g.nodes, t)
	return t
}

// Nodes returns every node created by the tree in creation order.
func (g *Tree) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n
	}
	return out
}

// Flatten lists root and its descendants depth-first, parents before children.
func Flatten(root Node) []Node {
	out := []Node{root}
	for _, c := range root.Children() {
		out = append(out, Flatten(c)...)
	}
	return out
}
