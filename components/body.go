package components

import (
	"github.com/automoto/tilebound/shared/shape"
	"github.com/yohamta/donburi"
)

// BodyData binds an entity to its hitbox and the collision layer it
// currently moves on.
type BodyData struct {
	Shape *shape.EntityShape
	Layer string
}

var Body = donburi.NewComponentType[BodyData]()
