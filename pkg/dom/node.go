package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <p>, etc.
	KindText                // Plain text run
	KindComment             // <!-- comment -->
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// RootTag is the tag of the synthetic container element every parse
// produces, so fragments and full documents share a single entry point.
const RootTag = "#root"

// Node is one node in a parsed markup tree.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name, lower case (e.g. "div")
	Attrs    []Attr  // Attributes in declaration order
	Children []*Node // Child nodes
	Text     string  // For KindText and KindComment
}

// Attr is a single attribute. Declaration order carries no semantic
// weight; it is preserved in the tree only so snapshots can show the
// element as written.
type Attr struct {
	Key   string
	Value string
}

// IsRoot returns true if this is the synthetic container element.
func (n *Node) IsRoot() bool {
	return n.Kind == KindElement && n.Tag == RootTag
}
