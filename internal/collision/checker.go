package collision

import (
	"github.com/solarium-engine/solarium/internal/entity"
	"github.com/solarium-engine/solarium/internal/geometry"
)

// EntityChecker adapts a Resolver into the movement.ObstacleChecker
// interface for one specific entity on one specific layer, letting each
// Movement stay ignorant of which map or resolver it runs against
// (spec.md §4.D/§4.F boundary).
type EntityChecker struct {
	Resolver *Resolver
	Layer    geometry.Layer
	Mover    *entity.Entity
}

// CanOccupy implements movement.ObstacleChecker.
func (c *EntityChecker) CanOccupy(candidate geometry.Rectangle) bool {
	return c.Resolver.CanOccupy(c.Layer, candidate, c.Mover)
}
