package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	// Identity methods
	GetID() string
	GetZIndex() int

	// Tree methods
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	GetChild(id string) GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// InitTree initializes the object and all of its children.
func InitTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the object and all of its children. Children
// are destroyed before their parent.
func DestroyTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates the object and all of its children.
func UpdateTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws the object and all of its children. Children draw on
// top of their parent.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	if obj == nil {
		return
	}
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
