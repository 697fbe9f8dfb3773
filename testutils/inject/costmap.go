package inject

import (
	"context"

	"github.com/robonav/localplanner/planner"
)

// Costmap is an injected costmap.
type Costmap struct {
	planner.Costmap
	UpdateFunc     func(ctx context.Context) error
	FrameIDFunc    func() string
	WidthFunc      func() int
	HeightFunc     func() int
	ResolutionFunc func() float64
	InfoFunc       func() planner.CostmapInfo
}

// Update calls the injected Update or the real version.
func (c *Costmap) Update(ctx context.Context) error {
	if c.UpdateFunc == nil {
		return c.Costmap.Update(ctx)
	}
	return c.UpdateFunc(ctx)
}

// FrameID calls the injected FrameID or the real version.
func (c *Costmap) FrameID() string {
	if c.FrameIDFunc == nil {
		return c.Costmap.FrameID()
	}
	return c.FrameIDFunc()
}

// Width calls the injected Width or the real version.
func (c *Costmap) Width() int {
	if c.WidthFunc == nil {
		return c.Costmap.Width()
	}
	return c.WidthFunc()
}

// Height calls the injected Height or the real version.
func (c *Costmap) Height() int {
	if c.HeightFunc == nil {
		return c.Costmap.Height()
	}
	return c.HeightFunc()
}

// Resolution calls the injected Resolution or the real version.
func (c *Costmap) Resolution() float64 {
	if c.ResolutionFunc == nil {
		return c.Costmap.Resolution()
	}
	return c.ResolutionFunc()
}

// Info calls the injected Info or the real version.
func (c *Costmap) Info() planner.CostmapInfo {
	if c.InfoFunc == nil {
		return c.Costmap.Info()
	}
	return c.InfoFunc()
}
