package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickerclimb/common"
)

const (
	collisionTypePlatform cp.CollisionType = iota + 1
	collisionTypeObstacle
)

// CollisionWorld indexes the static geometry of a level. The cp space is only
// used as a broadphase; landing and overlap are resolved on plain rects.
type CollisionWorld struct {
	space     *cp.Space
	platforms []*Platform

	obstacleShapes map[*Obstacle]*cp.Shape
}

func NewCollisionWorld(platforms []*Platform) *CollisionWorld {
	space := cp.NewSpace()
	cw := &CollisionWorld{
		space:          space,
		obstacleShapes: make(map[*Obstacle]*cp.Shape),
	}
	for _, p := range platforms {
		cw.AddPlatform(p)
	}
	return cw
}

func rectBB(r common.Rect) cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}

// AddPlatform registers a platform as a static box.
func (cw *CollisionWorld) AddPlatform(p *Platform) {
	if cw == nil || p == nil {
		return
	}
	shape := cp.NewBox2(cw.space.StaticBody, rectBB(p.Rect), 0)
	shape.SetCollisionType(collisionTypePlatform)
	shape.UserData = p
	cw.space.AddShape(shape)
	cw.platforms = append(cw.platforms, p)
}

// AddObstacle registers an obstacle so it can be found with QueryObstacles.
func (cw *CollisionWorld) AddObstacle(o *Obstacle) {
	if cw == nil || o == nil {
		return
	}
	if _, ok := cw.obstacleShapes[o]; ok {
		return
	}
	shape := cp.NewBox2(cw.space.StaticBody, rectBB(o.Rect), 0)
	shape.SetCollisionType(collisionTypeObstacle)
	shape.UserData = o
	cw.space.AddShape(shape)
	cw.obstacleShapes[o] = shape
}

// RemoveObstacle drops a destroyed or consumed obstacle from the index.
func (cw *CollisionWorld) RemoveObstacle(o *Obstacle) {
	if cw == nil || o == nil {
		return
	}
	shape, ok := cw.obstacleShapes[o]
	if !ok {
		return
	}
	cw.space.RemoveShape(shape)
	delete(cw.obstacleShapes, o)
}

// Platforms returns every registered platform in insertion order.
func (cw *CollisionWorld) Platforms() []*Platform {
	if cw == nil {
		return nil
	}
	return cw.platforms
}

// QueryPlatforms returns platforms whose rect, inflated vertically by
// CollisionMargin, strictly overlaps r.
func (cw *CollisionWorld) QueryPlatforms(r common.Rect) []*Platform {
	if cw == nil {
		return nil
	}
	var out []*Platform
	query := r.Inflate(0, common.CollisionMargin)
	cw.space.BBQuery(rectBB(query), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		p, ok := shape.UserData.(*Platform)
		if !ok {
			return
		}
		if p.Rect.Inflate(0, common.CollisionMargin).Intersects(r) {
			out = append(out, p)
		}
	}, nil)
	return out
}

// QueryObstacles returns active obstacles strictly overlapping r.
func (cw *CollisionWorld) QueryObstacles(r common.Rect) []*Obstacle {
	if cw == nil {
		return nil
	}
	var out []*Obstacle
	cw.space.BBQuery(rectBB(r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		o, ok := shape.UserData.(*Obstacle)
		if !ok || !o.Active {
			return
		}
		if o.Rect.Intersects(r) {
			out = append(out, o)
		}
	}, nil)
	return out
}

// Land resolves a downward-moving body against the platforms it overlaps.
// prevBottom is the body's bottom edge before this frame's vertical move.
// When groundOnly is set only the level floor is considered. Returns the
// platform landed on, or nil.
func (cw *CollisionWorld) Land(b *Body, prevBottom float64, groundOnly bool) *Platform {
	if cw == nil || b == nil || b.VelY <= 0 {
		return nil
	}
	hits := cw.QueryPlatforms(b.Rect)
	if len(hits) == 0 {
		return nil
	}

	// prefer the highest surface the body was above last frame
	var best, fallback *Platform
	for _, p := range hits {
		if groundOnly && !p.Ground {
			continue
		}
		top := p.Rect.Top()
		if fallback == nil || top < fallback.Rect.Top() {
			fallback = p
		}
		if prevBottom <= top+common.CollisionMargin {
			if best == nil || top < best.Rect.Top() {
				best = p
			}
		}
	}
	if best == nil {
		best = fallback
	}
	if best == nil {
		return nil
	}

	b.Rect.SetBottom(best.Rect.Top())
	b.VelY = 0
	b.OnGround = true
	return best
}
