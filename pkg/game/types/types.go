package types

// Role identifies what a physics body represents in the game world.
// It is fixed for the lifetime of the body.
type Role uint8

const (
	RoleNone Role = iota
	RoleBucket
	RoleDroplet
	RoleGround
	RoleWall
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleBucket:
		return "bucket"
	case RoleDroplet:
		return "droplet"
	case RoleGround:
		return "ground"
	case RoleWall:
		return "wall"
	}
	return "unknown"
}
