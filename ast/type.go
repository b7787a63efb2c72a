package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeAtom   NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeSymbol = nodeTypeAtom | 1
	NodeTypeNumber = nodeTypeAtom | 2
	NodeTypeBool   = nodeTypeAtom | 4

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol: "symbol",
	NodeTypeNumber: "number",
	NodeTypeBool:   "bool",
	NodeTypeList:   "list",
}
