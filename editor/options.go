package editor

import "github.com/katalvlaran/schemcore/router"

// CanvasOption customizes a Canvas before its engine is assembled,
// following the builder package's functional-options idiom
// (github.com/katalvlaran/lvlath/builder: BuilderOption/builderConfig).
type CanvasOption func(*canvasConfig)

type canvasConfig struct {
	gridX, gridY int
	snapGrid     bool
	cellSize     int
	dragRouter   router.Router
	finalRouter  router.Router
}

func defaultConfig() canvasConfig {
	return canvasConfig{gridX: 10, gridY: 10, snapGrid: true, cellSize: 0}
}

// WithGrid sets the (grid_x, grid_y) snap granularity (§6 Grid contract).
func WithGrid(x, y int) CanvasOption {
	return func(c *canvasConfig) { c.gridX, c.gridY = x, y }
}

// WithSnapGrid toggles grid snapping; false makes the effective grid
// (1,1), per §6.
func WithSnapGrid(on bool) CanvasOption {
	return func(c *canvasConfig) { c.snapGrid = on }
}

// WithCellSize sets the routing matrix's spatial bucket size.
func WithCellSize(n int) CanvasOption {
	return func(c *canvasConfig) { c.cellSize = n }
}

// WithDragRouter sets the router used for per-frame interactive drag
// regeneration.
func WithDragRouter(r router.Router) CanvasOption {
	return func(c *canvasConfig) { c.dragRouter = r }
}

// WithFinalRouter sets the router used for the release frame of a
// one-call drag (connector.Engine.DragSegment). Non-interactive drawing
// does not route.
func WithFinalRouter(r router.Router) CanvasOption {
	return func(c *canvasConfig) { c.finalRouter = r }
}
