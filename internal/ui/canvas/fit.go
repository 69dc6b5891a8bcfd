package canvas

import (
	"context"
	"math"
	"time"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
)

type fitState struct {
	showingAll bool
	saved      entity.CanvasTransform

	animating bool
	from      entity.CanvasTransform
	to        entity.CanvasTransform
	start     time.Time
	started   bool
}

func (f *fitState) stop() {
	f.animating = false
}

// EaseInOutCubic maps linear progress in [0,1] onto a cubic ease curve.
func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

// FitTransform returns the transform that centres b in the viewport with
// padding on every side. The zoom is clamped to the allowed range.
func FitTransform(b entity.Bounds, viewportW, viewportH, padding float64) entity.CanvasTransform {
	zoom := math.Min(viewportW/(b.Width+padding*2), viewportH/(b.Height+padding*2))
	zoom = entity.ClampZoom(math.Min(zoom, entity.ZoomMax))
	c := b.Center()
	return entity.CanvasTransform{
		PanOffsetX: viewportW/2 - c.X*zoom,
		PanOffsetY: viewportH/2 - c.Y*zoom,
		ZoomScale:  zoom,
	}
}

// ShowingAll reports whether the canvas is zoomed out to show every panel.
func (c *Controller) ShowingAll() bool {
	return c.fit.showingAll
}

// Animating reports whether a fit animation is running.
func (c *Controller) Animating() bool {
	return c.fit.animating
}

// ToggleShowAll animates to a transform that shows every visible panel, or
// back to the transform saved by the previous call. It returns false when
// there is nothing to show.
func (c *Controller) ToggleShowAll(ctx context.Context, viewport port.Viewport) bool {
	log := logging.FromContext(ctx)

	if c.fit.showingAll {
		c.animateTo(c.fit.saved)
		c.fit.showingAll = false
		log.Debug().Msg("show all: restoring saved view")
		return true
	}

	b, ok := c.registry.Bounds()
	if !ok {
		log.Debug().Msg("show all: no visible panel")
		return false
	}
	vw, vh := viewport.Size()
	c.fit.saved = c.transform
	c.animateTo(FitTransform(b, vw, vh, c.opts.FitPadding))
	c.fit.showingAll = true
	log.Debug().
		Float64("zoom", c.fit.to.ZoomScale).
		Msg("show all: fitting every panel")
	return true
}

func (c *Controller) animateTo(to entity.CanvasTransform) {
	c.fit.animating = true
	c.fit.from = c.transform
	c.fit.to = to
	c.fit.started = false
}

// Tick advances the fit animation to now. The first tick after a toggle
// marks the animation start.
func (c *Controller) Tick(ctx context.Context, now time.Time) {
	if !c.fit.animating {
		return
	}
	if !c.fit.started {
		c.fit.start = now
		c.fit.started = true
	}
	progress := math.Min(float64(now.Sub(c.fit.start))/float64(c.opts.FitDuration), 1)
	c.apply(ctx, c.fit.from.Lerp(c.fit.to, EaseInOutCubic(progress)))
	if progress >= 1 {
		c.fit.animating = false
	}
}
