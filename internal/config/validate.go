package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings that would make paddle or ball motion undefined.
// Every problem found is reported, not just the first.
func (g Game) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("field width", g.FieldWidth)
	positive("field height", g.FieldHeight)
	positive("paddle width", g.PaddleWidth)
	positive("paddle height", g.PaddleHeight)
	positive("paddle speed", g.PaddleSpeed)
	positive("ai speed", g.AISpeed)
	positive("ball size", g.BallSize)
	positive("ball speed min", g.BallSpeedMin)
	positive("serve vertical speed min", g.ServeSpeedYMin)
	positive("win score", g.WinScore)
	positive("tick rate", g.TickRate)

	if g.PaddleOffset < 0 {
		errs = append(errs, fmt.Errorf("paddle offset must not be negative, got %d", g.PaddleOffset))
	}
	if g.AIDeadZone < 0 {
		errs = append(errs, fmt.Errorf("ai dead zone must not be negative, got %d", g.AIDeadZone))
	}
	if g.PaddleHeight >= g.FieldHeight {
		errs = append(errs, fmt.Errorf("paddle height %d must be smaller than field height %d", g.PaddleHeight, g.FieldHeight))
	}
	if g.BallSize >= g.FieldHeight {
		errs = append(errs, fmt.Errorf("ball size %d must be smaller than field height %d", g.BallSize, g.FieldHeight))
	}
	if 2*g.BallSize >= g.FieldWidth {
		errs = append(errs, fmt.Errorf("ball size %d must be less than half the field width %d", g.BallSize, g.FieldWidth))
	}
	if 2*(g.PaddleOffset+g.PaddleWidth)+g.BallSize >= g.FieldWidth {
		errs = append(errs, fmt.Errorf("paddles (offset %d, width %d) leave no room for the ball in field width %d", g.PaddleOffset, g.PaddleWidth, g.FieldWidth))
	}
	if g.BallSpeedMin >= g.BallSpeedMax {
		errs = append(errs, fmt.Errorf("ball speed range [%d, %d) is empty", g.BallSpeedMin, g.BallSpeedMax))
	}
	if g.ServeSpeedYMin >= g.ServeSpeedYMax {
		errs = append(errs, fmt.Errorf("serve vertical speed range [%d, %d) is empty", g.ServeSpeedYMin, g.ServeSpeedYMax))
	}
	// A ball faster than this could pass through a paddle between two ticks.
	if g.BallSpeedMax > g.PaddleWidth+g.BallSize {
		errs = append(errs, fmt.Errorf("ball speed max %d exceeds paddle width + ball size (%d)", g.BallSpeedMax, g.PaddleWidth+g.BallSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid game config: %w", errors.Join(errs...))
	}
	return nil
}
