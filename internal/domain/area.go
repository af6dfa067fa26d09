package domain

// NodeCategory classifies a point of interest inside an area graph.
type NodeCategory string

const (
	NodeStation  NodeCategory = "station"
	NodeLandmark NodeCategory = "landmark"
	NodeShop     NodeCategory = "shop"
	NodeFood     NodeCategory = "food"
	NodeActivity NodeCategory = "activity"
)

// Valid reports whether c is one of the known categories.
func (c NodeCategory) Valid() bool {
	switch c {
	case NodeStation, NodeLandmark, NodeShop, NodeFood, NodeActivity:
		return true
	}
	return false
}

// LabelSide hints on which side of the pin a client should draw the label.
// Empty means the client default (top).
type LabelSide string

const (
	LabelTop    LabelSide = "top"
	LabelBottom LabelSide = "bottom"
	LabelLeft   LabelSide = "left"
	LabelRight  LabelSide = "right"
)

// EdgeMode is the optional travel mode of an area edge.
type EdgeMode string

const (
	EdgeWalk   EdgeMode = "walk"
	EdgeTrain  EdgeMode = "train"
	EdgeSubway EdgeMode = "subway"
)

// AreaNode is a point of interest authored directly in percentage space.
type AreaNode struct {
	ID          string       `json:"id" yaml:"id"`
	Label       string       `json:"label" yaml:"label"`
	X           float64      `json:"x" yaml:"x"`
	Y           float64      `json:"y" yaml:"y"`
	Category    NodeCategory `json:"category" yaml:"category"`
	LabelSide   LabelSide    `json:"label_side,omitempty" yaml:"label_side"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Tips        string       `json:"tips,omitempty" yaml:"tips"`
}

// Position returns the node's authored position.
func (n AreaNode) Position() ProjectedPosition {
	return ProjectedPosition{X: n.X, Y: n.Y}
}

// AreaEdge connects two nodes of the same area. Label is usually a walking
// time such as "2'".
type AreaEdge struct {
	From  string   `json:"from" yaml:"from"`
	To    string   `json:"to" yaml:"to"`
	Label string   `json:"label,omitempty" yaml:"label"`
	Mode  EdgeMode `json:"mode,omitempty" yaml:"mode"`
}

// ResolvedEdge is an AreaEdge with both endpoint positions filled in.
type ResolvedEdge struct {
	AreaEdge
	FromPos ProjectedPosition `json:"from_pos"`
	ToPos   ProjectedPosition `json:"to_pos"`
}

// Area is a neighborhood-scale graph of points of interest.
type Area struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Tips        []string   `json:"tips,omitempty" yaml:"tips"`
	Nodes       []AreaNode `json:"nodes" yaml:"nodes"`
	Edges       []AreaEdge `json:"edges" yaml:"edges"`
}
