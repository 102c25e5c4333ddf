package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// objectIndex tracks child objects by id while preserving insertion order.
type objectIndex struct {
	idxIDObjects map[string]GameObject
	order        []string
}

func newObjectIndex() *objectIndex {
	return &objectIndex{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (idx *objectIndex) Add(id string, obj GameObject) {
	if _, ok := idx.idxIDObjects[id]; !ok {
		idx.order = append(idx.order, id)
	}
	idx.idxIDObjects[id] = obj
}

func (idx *objectIndex) Get(id string) GameObject {
	return idx.idxIDObjects[id]
}

func (idx *objectIndex) Remove(id string) {
	if _, ok := idx.idxIDObjects[id]; !ok {
		return
	}
	delete(idx.idxIDObjects, id)
	for i, childID := range idx.order {
		if childID == id {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
}

func (idx *objectIndex) All() []GameObject {
	objs := make([]GameObject, 0, len(idx.order))
	for _, id := range idx.order {
		objs = append(objs, idx.idxIDObjects[id])
	}
	return objs
}

// BaseObject provides identity and parent/child bookkeeping for game
// objects. Concrete objects embed it and override the Lifecycle
// methods they care about.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *objectIndex
}

type NewBaseObjectOpts struct {
	// ZIndex is the draw order of the object relative to its siblings.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newObjectIndex(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

// GetChildren returns a snapshot of the child objects in insertion
// order, so children may remove themselves while the tree is walked.
func (o *BaseObject) GetChildren() []GameObject {
	if o.children == nil {
		return nil
	}
	return o.children.All()
}

func (o *BaseObject) GetChild(id string) GameObject {
	if o.children == nil {
		return nil
	}
	return o.children.Get(id)
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children == nil {
		o.children = newObjectIndex()
	}
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	if o.children == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object does not have a parent")
	}
	return o.parent.RemoveChild(o.id)
}
