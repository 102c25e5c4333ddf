// Package physics wraps a Box2D world for the falling-droplet game.
// The API speaks display units; conversion to simulation meters
// happens only at this boundary.
package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"github.com/cbodonnell/drizzle/pkg/game/types"
	"github.com/cbodonnell/drizzle/pkg/kinematic"
)

// PixelsPerMeter is the scale between display units and simulation
// meters.
const PixelsPerMeter float64 = 100.0

// Collision filter categories.
const (
	CategoryBucket   uint16 = 1 << 0
	CategoryDroplet  uint16 = 1 << 1
	CategoryBoundary uint16 = 1 << 2
)

const (
	dropletDensity     float64 = 1.0
	dropletFriction    float64 = 0.1
	dropletRestitution float64 = 0.3
)

// bodyData is attached to every body as user data. role never changes
// for the lifetime of the body; removal is tracked separately on the
// droplet record.
type bodyData struct {
	role    types.Role
	droplet *droplet
}

type droplet struct {
	id      uint64
	body    *box2d.B2Body
	radius  float64
	removed bool
}

// NewWorldOptions contains options for creating a new World. All
// lengths are display units.
type NewWorldOptions struct {
	// Width and Height bound the playfield.
	Width  float64
	Height float64
	// GravityY is the vertical gravity in m/s^2, negative downward.
	GravityY float64
	// WallThickness is the thickness of the static boundary boxes.
	WallThickness float64
	// Bucket geometry. BucketY is the fixed height of the bucket's
	// bottom edge.
	BucketWidth  float64
	BucketHeight float64
	BucketY      float64
	// BucketStartingX is the initial x position of the bucket's left
	// edge.
	BucketStartingX float64
}

// World owns the Box2D world, the kinematic bucket, the static
// boundaries, and the dynamic droplets.
type World struct {
	world box2d.B2World

	width  float64
	height float64

	bucket       *box2d.B2Body
	bucketWidth  float64
	bucketHeight float64
	bucketY      float64

	droplets      []*droplet
	nextDropletID uint64

	listener *contactListener
}

// NewWorld creates a world with gravity, the static ground and walls,
// and the kinematic bucket.
func NewWorld(opts NewWorldOptions) (*World, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid playfield size %gx%g", opts.Width, opts.Height)
	}
	if opts.BucketWidth <= 0 || opts.BucketHeight <= 0 {
		return nil, fmt.Errorf("invalid bucket size %gx%g", opts.BucketWidth, opts.BucketHeight)
	}
	if opts.WallThickness <= 0 {
		opts.WallThickness = 10.0
	}

	w := &World{
		world:        box2d.MakeB2World(box2d.MakeB2Vec2(0, opts.GravityY)),
		width:        opts.Width,
		height:       opts.Height,
		bucketWidth:  opts.BucketWidth,
		bucketHeight: opts.BucketHeight,
		bucketY:      opts.BucketY,
	}

	w.createBoundaries(opts.WallThickness)
	w.createBucket(opts.BucketStartingX)

	w.listener = &contactListener{world: w}
	w.world.SetContactListener(w.listener)

	return w, nil
}

// createBoundaries creates the static ground below the playfield and
// one wall outside each vertical edge. Boundaries only collide with
// droplets.
func (w *World) createBoundaries(thickness float64) {
	ground := w.createStaticBox(
		w.width/2, -thickness/2,
		w.width/2+thickness, thickness/2,
	)
	ground.SetUserData(&bodyData{role: types.RoleGround})

	left := w.createStaticBox(
		-thickness/2, w.height/2,
		thickness/2, w.height/2+thickness,
	)
	left.SetUserData(&bodyData{role: types.RoleWall})

	right := w.createStaticBox(
		w.width+thickness/2, w.height/2,
		thickness/2, w.height/2+thickness,
	)
	right.SetUserData(&bodyData{role: types.RoleWall})
}

// createStaticBox creates a static box body centered at (cx, cy) with
// half extents (hx, hy), all in display units.
func (w *World) createStaticBox(cx, cy, hx, hy float64) *box2d.B2Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_staticBody
	bd.Position = box2d.MakeB2Vec2(toMeters(cx), toMeters(cy))
	body := w.world.CreateBody(&bd)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(toMeters(hx), toMeters(hy))

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Filter.CategoryBits = CategoryBoundary
	fd.Filter.MaskBits = CategoryDroplet
	body.CreateFixtureFromDef(&fd)

	return body
}

func (w *World) createBucket(startingX float64) {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_kinematicBody
	bd.Position = w.bucketCenter(startingX)
	body := w.world.CreateBody(&bd)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(toMeters(w.bucketWidth/2), toMeters(w.bucketHeight/2))

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Filter.CategoryBits = CategoryBucket
	fd.Filter.MaskBits = CategoryDroplet
	body.CreateFixtureFromDef(&fd)

	body.SetUserData(&bodyData{role: types.RoleBucket})
	w.bucket = body
}

// bucketCenter returns the bucket's body center in meters for a left
// edge at x display units.
func (w *World) bucketCenter(x float64) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(
		toMeters(x+w.bucketWidth/2),
		toMeters(w.bucketY+w.bucketHeight/2),
	)
}

// SetContactHandler registers the handler that receives catch and miss
// events. There is exactly one handler; registering replaces the
// previous one. A nil handler drops events but droplets are still
// marked for removal.
func (w *World) SetContactHandler(handler ContactHandler) {
	w.listener.handler = handler
}

// Step advances the simulation. Contact events are dispatched
// synchronously from inside this call; handlers must not create or
// destroy bodies.
func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	w.world.Step(dt, velocityIterations, positionIterations)
}

// SpawnDroplet creates a dynamic droplet with its center at (x, y) in
// display units, falling with an initial downward speed. It returns
// the droplet's id. Must not be called during Step.
func (w *World) SpawnDroplet(x, y, radius, fallSpeed float64) uint64 {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position = box2d.MakeB2Vec2(toMeters(x), toMeters(y))
	bd.LinearVelocity = box2d.MakeB2Vec2(0, toMeters(-fallSpeed))
	body := w.world.CreateBody(&bd)

	shape := box2d.MakeB2CircleShape()
	shape.M_radius = toMeters(radius)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = dropletDensity
	fd.Friction = dropletFriction
	fd.Restitution = dropletRestitution
	fd.Filter.CategoryBits = CategoryDroplet
	fd.Filter.MaskBits = CategoryBucket | CategoryBoundary
	body.CreateFixtureFromDef(&fd)

	w.nextDropletID++
	d := &droplet{
		id:     w.nextDropletID,
		body:   body,
		radius: radius,
	}
	body.SetUserData(&bodyData{role: types.RoleDroplet, droplet: d})
	w.droplets = append(w.droplets, d)

	return d.id
}

// MoveBucketTo places the bucket's left edge at x display units,
// clamped to the playfield. The bucket is kinematic, so it is moved by
// assigning its transform directly.
func (w *World) MoveBucketTo(x float64) {
	if x < 0 {
		x = 0
	}
	if max := w.width - w.bucketWidth; x > max {
		x = max
	}
	w.bucket.SetTransform(w.bucketCenter(x), 0)
}

// Bucket returns a render snapshot of the bucket.
func (w *World) Bucket() *types.BucketState {
	position := w.bucket.GetPosition()
	return &types.BucketState{
		Position: kinematic.Vector{
			X: toPixels(position.X) - w.bucketWidth/2,
			Y: toPixels(position.Y) - w.bucketHeight/2,
		},
		Width:  w.bucketWidth,
		Height: w.bucketHeight,
	}
}

// Droplets returns render snapshots of the live droplets. Droplets
// marked for removal are omitted.
func (w *World) Droplets() []*types.DropletState {
	states := make([]*types.DropletState, 0, len(w.droplets))
	for _, d := range w.droplets {
		if d.removed {
			continue
		}
		position := d.body.GetPosition()
		velocity := d.body.GetLinearVelocity()
		states = append(states, &types.DropletState{
			ID: d.id,
			Position: kinematic.Vector{
				X: toPixels(position.X),
				Y: toPixels(position.Y),
			},
			Velocity: kinematic.Vector{
				X: toPixels(velocity.X),
				Y: toPixels(velocity.Y),
			},
			Radius: d.radius,
		})
	}
	return states
}

// DropletCount returns the number of live droplets.
func (w *World) DropletCount() int {
	count := 0
	for _, d := range w.droplets {
		if !d.removed {
			count++
		}
	}
	return count
}

// ReapRemoved destroys the bodies of droplets marked for removal and
// returns how many were destroyed. Destruction happens here, after
// steps, never from inside a contact callback. Calling it while the
// world is stepping is a no-op.
func (w *World) ReapRemoved() int {
	if w.world.IsLocked() {
		return 0
	}
	kept := w.droplets[:0]
	reaped := 0
	for _, d := range w.droplets {
		if d.removed {
			w.world.DestroyBody(d.body)
			d.body = nil
			reaped++
			continue
		}
		kept = append(kept, d)
	}
	for i := len(kept); i < len(w.droplets); i++ {
		w.droplets[i] = nil
	}
	w.droplets = kept
	return reaped
}

// Clear marks every droplet for removal and reaps them immediately.
func (w *World) Clear() int {
	for _, d := range w.droplets {
		d.removed = true
	}
	return w.ReapRemoved()
}

// Close destroys every body in the world, boundaries and bucket
// included. The world must not be used after Close.
func (w *World) Close() {
	for body := w.world.GetBodyList(); body != nil; {
		next := body.GetNext()
		w.world.DestroyBody(body)
		body = next
	}
	w.droplets = nil
	w.bucket = nil
}

// SetGravity updates the world's vertical gravity in m/s^2.
func (w *World) SetGravity(gravityY float64) {
	w.world.SetGravity(box2d.MakeB2Vec2(0, gravityY))
}

// Gravity returns the world's vertical gravity in m/s^2.
func (w *World) Gravity() float64 {
	return w.world.GetGravity().Y
}

func toMeters(v float64) float64 {
	return v / PixelsPerMeter
}

func toPixels(v float64) float64 {
	return v * PixelsPerMeter
}
