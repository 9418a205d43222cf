package parser

// CST node type tags. Consumers of the tree rely on fixed child counts and
// positions per tag, so both the tags and each production's child layout are
// part of the package contract.
const (
	NodeProgram       = "PROGRAM"
	NodeWorldDef      = "WORLD_DEF"
	NodeDeclarations  = "DECLARATIONS"
	NodeDeclaration   = "DECLARATION"
	NodeVarTail       = "VAR_TAIL"
	NodeType          = "TYPE"
	NodeStatements    = "STATEMENTS"
	NodeBlock         = "BLOCK"
	NodeAssignment    = "ASSIGNMENT"
	NodeIfStatement   = "IF_STATEMENT"
	NodeElsePart      = "ELSE_PART"
	NodeWhileStmt     = "WHILE_STATEMENT"
	NodeAction        = "ACTION"
	NodeCondition     = "CONDITION"
	NodeConditionTail = "CONDITION_TAIL"
	NodeRelOp         = "REL_OP"
	NodeExpression    = "EXPRESSION"
	NodeExprTail      = "EXPRESSION_TAIL"
	NodeTerm          = "TERM"
	NodeTermTail      = "TERM_TAIL"
	NodeFactor        = "FACTOR"
	NodeLiteral       = "LITERAL"
	NodeAddOp         = "ADD_OP"
	NodeMulOp         = "MUL_OP"
	NodeTerminal      = "TERMINAL"
)

// CSTNode is one node of the concrete syntax tree. Interior nodes carry a
// production tag and ordered children; terminal nodes carry the consumed
// token's text in Value. Optional grammar parts that are absent still yield
// an empty placeholder node (e.g. ELSE_PART, EXPRESSION_TAIL) so every node
// type has a fixed child layout.
type CSTNode struct {
	Type     string     `json:"type"`
	Value    string     `json:"value,omitempty"`
	Children []*CSTNode `json:"children,omitempty"`
}

// NewNode creates an interior node with the given production tag.
func NewNode(nodeType string) *CSTNode {
	return &CSTNode{Type: nodeType}
}

// NewTerminal creates a leaf node holding a consumed token's text.
func NewTerminal(value string) *CSTNode {
	return &CSTNode{Type: NodeTerminal, Value: value}
}

// AddChild appends a child, preserving production order.
func (n *CSTNode) AddChild(child *CSTNode) {
	n.Children = append(n.Children, child)
}

// Child returns the i-th child, or nil when the index is out of range.
// Positional access is how the converter walks the tree.
func (n *CSTNode) Child(i int) *CSTNode {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Empty reports whether the node is a childless placeholder, i.e. an
// optional production that matched epsilon.
func (n *CSTNode) Empty() bool {
	return len(n.Children) == 0
}

// String renders the node for debugging.
func (n *CSTNode) String() string {
	if n.Value != "" {
		return "<" + n.Type + ": " + n.Value + ">"
	}
	return "<" + n.Type + ">"
}
