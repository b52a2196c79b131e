package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeValue | 1
	NodeTypeFloat  = nodeTypeValue | 2
	NodeTypeSymbol = nodeTypeValue | 4
	NodeTypeAtom   = nodeTypeValue | 8
	NodeTypeString = nodeTypeValue | 16

	NodeTypeList       = nodeTypeVector | 1
	NodeTypeMap        = nodeTypeVector | 2
	NodeTypeExpression = nodeTypeVector | 4
)

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:        "int",
	NodeTypeFloat:      "float",
	NodeTypeSymbol:     "symbol",
	NodeTypeAtom:       "atom",
	NodeTypeString:     "string",
	NodeTypeList:       "list",
	NodeTypeMap:        "map",
	NodeTypeExpression: "expression",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}

// IsValue returns true for types that hold a single value
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for types that hold child nodes
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}
