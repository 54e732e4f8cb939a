package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, the document tree and the component table
// used to resolve instance names.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components,omitempty"`
	SchemaVersion int                  `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
// Figma answers null for IDs it cannot resolve.
type NodesResponse struct {
	Name         string               `json:"name"`
	LastModified string               `json:"lastModified"`
	Version      string               `json:"version"`
	Nodes        map[string]*NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and the components it references.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
}

// Component represents a Figma component definition with its metadata.
// Instances refer to components by ID; the component name is what gets exported.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Only the properties needed to locate and label text are decoded.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible,omitempty"`
	Children            []Node     `json:"children,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	ComponentID         string     `json:"componentId,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// IsVisible reports whether the node is shown. Figma omits the field for
// visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
