package objects

import (
	"fmt"
	"sort"
)

// SortedZIndexObject is a GameObject that draws its children in
// z-index order. The game scene uses it as the root so the playfield,
// bucket, droplets, HUD, and overlays layer predictably regardless of
// insertion order. Insertion order breaks ties between equal z-indexes.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is the child objects ordered by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	o.sorted = append(o.sorted, child)
	sort.SliceStable(o.sorted, func(i, j int) bool {
		return o.sorted[i].GetZIndex() < o.sorted[j].GetZIndex()
	})
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	for i, obj := range o.sorted {
		if obj.GetID() == id {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("child not found in sorted list")
}

// GetChildren returns a snapshot of the children in z-index order.
// Text effects remove themselves from their parent while the tree is
// being walked, so callers must not see that mutation mid-range.
func (o *SortedZIndexObject) GetChildren() []GameObject {
	children := make([]GameObject, len(o.sorted))
	copy(children, o.sorted)
	return children
}
