package game

// StepResult reports what happened to the ball during one tick.
type StepResult struct {
	WallBounce bool
	PaddleHit  Side // side of the paddle that returned the ball, if any
	Scored     Side // side that won the point, if any
}

// Resolver advances the ball and resolves wall, paddle and goal contacts.
type Resolver struct {
	field  Field
	serves *ServeGenerator
}

func NewResolver(field Field, serves *ServeGenerator) *Resolver {
	return &Resolver{field: field, serves: serves}
}

// Step moves the ball by one tick of velocity and resolves collisions.
func (r *Resolver) Step(b *Ball, left, right *Paddle) StepResult {
	var res StepResult

	b.X += b.VX
	b.Y += b.VY

	// Walls. The ball is put back on the wall it crossed so it never
	// stays outside the field, and only an approaching ball is reflected.
	if b.Y <= 0 && b.VY < 0 {
		b.Y = 0
		b.VY = -b.VY
		res.WallBounce = true
	} else if b.Y+b.Size >= r.field.Height && b.VY > 0 {
		b.Y = r.field.Height - b.Size
		b.VY = -b.VY
		res.WallBounce = true
	}

	// Paddles. Only a ball travelling toward the paddle bounces, so one that
	// still overlaps after being returned is left alone.
	if b.VX < 0 && b.Rect().Overlaps(left.Rect()) {
		b.VX = -b.VX
		res.PaddleHit = SideLeft
	}
	if b.VX > 0 && b.Rect().Overlaps(right.Rect()) {
		b.VX = -b.VX
		res.PaddleHit = SideRight
	}

	// Goals.
	switch {
	case b.X <= 0:
		res.Scored = SideRight
	case b.X+b.Size >= r.field.Width:
		res.Scored = SideLeft
	}
	if res.Scored != SideNone {
		r.Reset(b, res.Scored.Direction())
	}

	return res
}

// Reset recentres the ball and serves it in direction.
func (r *Resolver) Reset(b *Ball, direction int) {
	b.center(r.field)
	b.VX, b.VY = r.serves.Serve(direction)
}
