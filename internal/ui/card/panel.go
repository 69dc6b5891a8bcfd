package card

import (
	"context"
	"errors"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
)

// Target is the part of a panel under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetBody
	TargetHeader
	TargetPinIcon
	TargetSettingsIcon
	TargetCloseIcon
	TargetResizeHandle
)

func (t Target) String() string {
	switch t {
	case TargetBody:
		return "body"
	case TargetHeader:
		return "header"
	case TargetPinIcon:
		return "pin"
	case TargetSettingsIcon:
		return "settings"
	case TargetCloseIcon:
		return "close"
	case TargetResizeHandle:
		return "resize"
	default:
		return "none"
	}
}

// IsIcon reports whether the target is a clickable header icon.
func (t Target) IsIcon() bool {
	return t == TargetPinIcon || t == TargetSettingsIcon || t == TargetCloseIcon
}

// Content is the opaque body of a panel. Renderers decide how to draw it.
type Content any

// StateStore loads and saves panel state.
type StateStore interface {
	Load(ctx context.Context, id entity.PanelID, defaults entity.PanelState) entity.PanelState
	Save(ctx context.Context, id entity.PanelID, state entity.PanelState) error
}

// Env holds the collaborators shared by all panels.
type Env struct {
	Registry *Registry
	Viewport port.Viewport
	Store    StateStore
	Sink     port.PanelEventSink
}

// Options configure a new panel.
type Options struct {
	ID    entity.PanelID
	Title string
	// Defaults is used for every field missing from storage.
	// Nil selects entity.DefaultPanelState.
	Defaults     *entity.PanelState
	Capabilities entity.Capabilities
	// Zero values select entity.ProximityThreshold and entity.RepulsionForce.
	ProximityThreshold float64
	RepulsionForce     float64
	Content            Content
}

// Panel is a movable, resizable card on the canvas.
// Panels are driven from a single event loop and are not goroutine-safe.
type Panel struct {
	id        entity.PanelID
	title     string
	caps      entity.Capabilities
	defaults  entity.PanelState
	threshold float64
	force     float64

	state entity.PanelState

	dragging    bool
	resizing    bool
	dragOffset  entity.Point
	resizeStart entity.Point
	resizeSize  entity.Size

	flipped   bool
	visible   bool
	destroyed bool
	container string
	content   Content
	padded    bool

	decoration entity.Decoration

	env Env
}

// NewPanel restores a panel from storage and registers it.
func NewPanel(ctx context.Context, env Env, opts Options) (*Panel, error) {
	if env.Registry == nil {
		return nil, errors.New("panel needs a registry")
	}
	if opts.ID == "" {
		return nil, errors.New("panel id is required")
	}
	if env.Viewport == nil {
		env.Viewport = port.FixedViewport{}
	}
	if env.Sink == nil {
		env.Sink = port.NopPanelEventSink{}
	}

	defaults := entity.DefaultPanelState()
	if opts.Defaults != nil {
		defaults = entity.PanelRecord{}.Merge(*opts.Defaults)
	}
	threshold := opts.ProximityThreshold
	if !(threshold > 0) {
		threshold = entity.ProximityThreshold
	}
	force := opts.RepulsionForce
	if !(force > 0) {
		force = entity.RepulsionForce
	}

	p := &Panel{
		id:         opts.ID,
		title:      opts.Title,
		caps:       opts.Capabilities,
		defaults:   defaults,
		threshold:  threshold,
		force:      force,
		state:      defaults,
		visible:    true,
		content:    opts.Content,
		padded:     true,
		decoration: entity.NeutralDecoration(),
		env:        env,
	}
	if env.Store != nil {
		p.state = env.Store.Load(ctx, p.id, defaults)
	}
	if !p.caps.Pinnable {
		p.state.IsPinned = false
	}
	if err := env.Registry.Register(p); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("panel_id", string(p.id)).
		Float64("x", p.state.Position.X).
		Float64("y", p.state.Position.Y).
		Float64("width", p.state.Size.Width).
		Float64("height", p.state.Size.Height).
		Bool("pinned", p.state.IsPinned).
		Msg("panel created")

	p.publish(ctx, entity.PanelMounted)
	return p, nil
}

// ID returns the panel id.
func (p *Panel) ID() entity.PanelID { return p.id }

// Title returns the panel title.
func (p *Panel) Title() string { return p.title }

// Capabilities returns the fixed capability set.
func (p *Panel) Capabilities() entity.Capabilities { return p.caps }

// State returns a copy of the persisted part of the panel.
func (p *Panel) State() entity.PanelState { return p.state }

// Bounds returns the panel rectangle in canvas space.
func (p *Panel) Bounds() entity.Bounds { return p.state.Bounds() }

// Defaults returns the state used for fields missing from storage.
func (p *Panel) Defaults() entity.PanelState { return p.defaults }

// IsDragging reports whether a drag gesture is in progress.
func (p *Panel) IsDragging() bool { return p.dragging }

// IsResizing reports whether a resize gesture is in progress.
func (p *Panel) IsResizing() bool { return p.resizing }

// IsPinned reports whether the panel refuses drag and resize.
func (p *Panel) IsPinned() bool { return p.state.IsPinned }

// IsFlipped reports whether the settings side is showing.
func (p *Panel) IsFlipped() bool { return p.flipped }

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool { return p.visible && !p.destroyed }

// Destroyed reports whether Destroy was called.
func (p *Panel) Destroyed() bool { return p.destroyed }

// Decoration returns the current border decoration.
func (p *Panel) Decoration() entity.Decoration { return p.decoration }

// Content returns the panel body.
func (p *Panel) Content() Content { return p.content }

// PointerDown starts a drag or a resize at a screen point. It returns true
// when a gesture started.
func (p *Panel) PointerDown(ctx context.Context, target Target, sx, sy float64) bool {
	if p.destroyed || p.dragging || p.resizing || p.state.IsPinned {
		return false
	}

	switch target {
	case TargetHeader:
		at := p.env.Registry.ScreenToCanvas(sx, sy)
		p.dragOffset = at.Sub(p.state.Position)
		p.dragging = true
		logging.FromContext(ctx).Debug().Str("panel_id", string(p.id)).Msg("drag started")
		return true
	case TargetResizeHandle:
		if !p.caps.Resizable {
			return false
		}
		p.resizeStart = entity.Point{X: sx, Y: sy}
		p.resizeSize = p.state.Size
		p.resizing = true
		logging.FromContext(ctx).Debug().Str("panel_id", string(p.id)).Msg("resize started")
		return true
	default:
		return false
	}
}

// PointerMove advances the gesture in progress. It returns true when the
// panel handled the move.
func (p *Panel) PointerMove(ctx context.Context, sx, sy float64) bool {
	if p.destroyed {
		return false
	}

	switch {
	case p.dragging:
		at := p.env.Registry.ScreenToCanvas(sx, sy)
		p.state.Position = at.Sub(p.dragOffset)
		logging.FromContext(ctx).Trace().
			Str("panel_id", string(p.id)).
			Float64("x", p.state.Position.X).
			Float64("y", p.state.Position.Y).
			Msg("drag move")
		p.publish(ctx, entity.PanelGeometryChanged)
		p.checkProximity(ctx)
		return true
	case p.resizing:
		p.state.Size = entity.ClampSize(entity.Size{
			Width:  p.resizeSize.Width + (sx - p.resizeStart.X),
			Height: p.resizeSize.Height + (sy - p.resizeStart.Y),
		})
		p.publish(ctx, entity.PanelGeometryChanged)
		return true
	default:
		return false
	}
}

// PointerUp ends the gesture in progress, persists the panel and resets the
// decorations left by a drag.
func (p *Panel) PointerUp(ctx context.Context) bool {
	if p.destroyed || (!p.dragging && !p.resizing) {
		return false
	}

	wasDragging := p.dragging
	p.dragging = false
	p.resizing = false
	p.save(ctx)

	if wasDragging {
		p.setDecoration(ctx, entity.NeutralDecoration())
		for _, other := range p.env.Registry.AllExcept(p) {
			other.setDecoration(ctx, entity.NeutralDecoration())
		}
	}
	logging.FromContext(ctx).Debug().
		Str("panel_id", string(p.id)).
		Float64("x", p.state.Position.X).
		Float64("y", p.state.Position.Y).
		Float64("width", p.state.Size.Width).
		Float64("height", p.state.Size.Height).
		Msg("gesture ended")
	return true
}

// Click handles a click on a header icon.
func (p *Panel) Click(ctx context.Context, target Target) bool {
	if p.destroyed {
		return false
	}
	switch target {
	case TargetPinIcon:
		return p.TogglePin(ctx)
	case TargetSettingsIcon:
		p.FlipToSettings(ctx)
		return true
	case TargetCloseIcon:
		p.FlipToFront(ctx)
		return true
	default:
		return false
	}
}

// TogglePin flips the pin flag and persists it. A gesture already in
// progress is not interrupted.
func (p *Panel) TogglePin(ctx context.Context) bool {
	if p.destroyed || !p.caps.Pinnable {
		return false
	}
	p.state.IsPinned = !p.state.IsPinned
	p.save(ctx)
	logging.FromContext(ctx).Info().
		Str("panel_id", string(p.id)).
		Bool("pinned", p.state.IsPinned).
		Msg("panel pin toggled")
	p.publish(ctx, entity.PanelPinChanged)
	return true
}

// FlipToSettings shows the settings side.
func (p *Panel) FlipToSettings(ctx context.Context) {
	p.setFlipped(ctx, true)
}

// FlipToFront shows the content side.
func (p *Panel) FlipToFront(ctx context.Context) {
	p.setFlipped(ctx, false)
}

func (p *Panel) setFlipped(ctx context.Context, flipped bool) {
	if p.destroyed || p.flipped == flipped {
		return
	}
	p.flipped = flipped
	p.publish(ctx, entity.PanelFlipChanged)
}

// Show makes the panel visible.
func (p *Panel) Show(ctx context.Context) {
	p.setVisible(ctx, true)
}

// Hide hides the panel. A gesture in progress is ended first.
func (p *Panel) Hide(ctx context.Context) {
	if p.dragging || p.resizing {
		p.PointerUp(ctx)
	}
	p.setVisible(ctx, false)
}

func (p *Panel) setVisible(ctx context.Context, visible bool) {
	if p.destroyed || p.visible == visible {
		return
	}
	p.visible = visible
	p.publish(ctx, entity.PanelVisibilityChanged)
}

// AppendTo attaches the panel to a named container of the renderer.
func (p *Panel) AppendTo(ctx context.Context, container string) {
	if p.destroyed {
		return
	}
	p.container = container
	p.publish(ctx, entity.PanelMounted)
}

// SetContent replaces the body, drawn with the default padding.
func (p *Panel) SetContent(ctx context.Context, content Content) {
	p.setContent(ctx, content, true)
}

// SetContentNoPadding replaces the body, drawn edge to edge.
func (p *Panel) SetContentNoPadding(ctx context.Context, content Content) {
	p.setContent(ctx, content, false)
}

func (p *Panel) setContent(ctx context.Context, content Content, padded bool) {
	if p.destroyed {
		return
	}
	p.content = content
	p.padded = padded
	p.publish(ctx, entity.PanelContentChanged)
}

// Reset moves the panel back to its defaults and persists them.
func (p *Panel) Reset(ctx context.Context) {
	if p.destroyed {
		return
	}
	p.dragging = false
	p.resizing = false
	p.state = p.defaults
	p.flipped = false
	p.decoration = entity.NeutralDecoration()
	p.save(ctx)
	p.publish(ctx, entity.PanelGeometryChanged)
}

// Restore replaces the panel state without persisting it.
func (p *Panel) Restore(ctx context.Context, state entity.PanelState) {
	if p.destroyed {
		return
	}
	state.Size = entity.ClampSize(state.Size)
	if !p.caps.Pinnable {
		state.IsPinned = false
	}
	p.state = state
	p.publish(ctx, entity.PanelGeometryChanged)
}

// Destroy unregisters the panel. Later calls are no-ops.
func (p *Panel) Destroy(ctx context.Context) {
	if p.destroyed {
		return
	}
	p.dragging = false
	p.resizing = false
	p.env.Registry.Unregister(p)
	p.publish(ctx, entity.PanelDestroyed)
	p.destroyed = true
	logging.FromContext(ctx).Debug().Str("panel_id", string(p.id)).Msg("panel destroyed")
}

func (p *Panel) save(ctx context.Context) {
	if p.env.Store == nil {
		return
	}
	if err := p.env.Store.Save(ctx, p.id, p.state); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("panel_id", string(p.id)).Msg("failed to persist panel")
	}
}

func (p *Panel) setDecoration(ctx context.Context, d entity.Decoration) {
	if p.decoration == d {
		return
	}
	p.decoration = d
	p.publish(ctx, entity.PanelDecorationChanged)
}

func (p *Panel) publish(ctx context.Context, kind entity.PanelEventKind) {
	p.env.Sink.PanelChanged(ctx, p.Snapshot(kind))
}

// Snapshot returns the presentational state of the panel as an event.
func (p *Panel) Snapshot(kind entity.PanelEventKind) entity.PanelEvent {
	return entity.PanelEvent{
		Kind:       kind,
		PanelID:    p.id,
		Title:      p.title,
		Bounds:     p.state.Bounds(),
		Pinned:     p.state.IsPinned,
		Pinnable:   p.caps.Pinnable,
		Resizable:  p.caps.Resizable,
		Flipped:    p.flipped,
		Visible:    p.Visible(),
		Container:  p.container,
		Content:    p.content,
		Padded:     p.padded,
		Decoration: p.decoration,
	}
}
