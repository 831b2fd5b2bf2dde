package layout

import (
	"github.com/crafttree/crafttree/pkg/errors"
)

// Default tuning constants.
const (
	DefaultBaseMultiplier     = 6.0
	DefaultSiblingGroupFactor = 1.5
	DefaultDepthExponent      = 0.3

	DefaultMarginTop    = 150.0
	DefaultMarginRight  = 200.0
	DefaultMarginBottom = 150.0
	DefaultMarginLeft   = 200.0

	DefaultNodeWidth  = 100.0
	DefaultNodeHeight = 45.0

	DefaultMinWidth    = 1600.0
	DefaultMinHeight   = 1000.0
	DefaultLeafWidth   = 160.0
	DefaultLevelHeight = 180.0
)

// Margins is the space reserved around the drawable area.
type Margins struct {
	Top    float64 `toml:"top" json:"top"`
	Right  float64 `toml:"right" json:"right"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" json:"left"`
}

// Horizontal returns Left + Right.
func (m Margins) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns Top + Bottom.
func (m Margins) Vertical() float64 { return m.Top + m.Bottom }

// Config holds the layout tuning constants. These are presentation knobs:
// tests should assert structural properties, not exact pixels.
type Config struct {
	// Separation function
	BaseMultiplier     float64 `toml:"base_multiplier" json:"base_multiplier"`
	SiblingGroupFactor float64 `toml:"sibling_group_factor" json:"sibling_group_factor"`
	DepthExponent      float64 `toml:"depth_exponent" json:"depth_exponent"`

	Margins Margins `toml:"margins" json:"margins"`

	// Node box drawn by renderers, centred on each position.
	NodeWidth  float64 `toml:"node_width" json:"node_width"`
	NodeHeight float64 `toml:"node_height" json:"node_height"`

	// Canvas sizing
	MinWidth    float64 `toml:"min_width" json:"min_width"`
	MinHeight   float64 `toml:"min_height" json:"min_height"`
	LeafWidth   float64 `toml:"leaf_width" json:"leaf_width"`
	LevelHeight float64 `toml:"level_height" json:"level_height"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseMultiplier:     DefaultBaseMultiplier,
		SiblingGroupFactor: DefaultSiblingGroupFactor,
		DepthExponent:      DefaultDepthExponent,
		Margins: Margins{
			Top:    DefaultMarginTop,
			Right:  DefaultMarginRight,
			Bottom: DefaultMarginBottom,
			Left:   DefaultMarginLeft,
		},
		NodeWidth:   DefaultNodeWidth,
		NodeHeight:  DefaultNodeHeight,
		MinWidth:    DefaultMinWidth,
		MinHeight:   DefaultMinHeight,
		LeafWidth:   DefaultLeafWidth,
		LevelHeight: DefaultLevelHeight,
	}
}

// SetDefaults fills zero-valued fields with the defaults. Margins are only
// defaulted when all four are zero, so an explicit zero margin survives as
// long as another side is set.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.BaseMultiplier == 0 {
		c.BaseMultiplier = d.BaseMultiplier
	}
	if c.SiblingGroupFactor == 0 {
		c.SiblingGroupFactor = d.SiblingGroupFactor
	}
	if c.DepthExponent == 0 {
		c.DepthExponent = d.DepthExponent
	}
	if c.Margins == (Margins{}) {
		c.Margins = d.Margins
	}
	if c.NodeWidth == 0 {
		c.NodeWidth = d.NodeWidth
	}
	if c.NodeHeight == 0 {
		c.NodeHeight = d.NodeHeight
	}
	if c.MinWidth == 0 {
		c.MinWidth = d.MinWidth
	}
	if c.MinHeight == 0 {
		c.MinHeight = d.MinHeight
	}
	if c.LeafWidth == 0 {
		c.LeafWidth = d.LeafWidth
	}
	if c.LevelHeight == 0 {
		c.LevelHeight = d.LevelHeight
	}
}

// Validate rejects configurations that would collapse or invert spacing.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"base_multiplier", c.BaseMultiplier},
		{"sibling_group_factor", c.SiblingGroupFactor},
		{"node_width", c.NodeWidth},
		{"node_height", c.NodeHeight},
		{"leaf_width", c.LeafWidth},
		{"level_height", c.LevelHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be > 0, got %g", p.name, p.value)
		}
	}
	if c.DepthExponent < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "depth_exponent must be >= 0, got %g", c.DepthExponent)
	}
	m := c.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins must be >= 0")
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "minimum canvas size must be >= 0")
	}
	return nil
}
