package config

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DefaultZoom float64 `yaml:"default_zoom"` // Zoom assigned to newly created cameras
	FollowSpeed float64 `yaml:"follow_speed"` // Lerp fraction used by the follow system (0.0-1.0)

	// Freedom box (dead zone) around the viewport center, in pixels.
	// A zero width or height disables it.
	FreedomBoxWidth  float64 `yaml:"freedom_box_width"`
	FreedomBoxHeight float64 `yaml:"freedom_box_height"`

	ZoomTweenFrames float32 `yaml:"zoom_tween_frames"` // Default duration of a tweened zoom change
}

// RendererConfig contains layered renderer configuration
type RendererConfig struct {
	DefaultZIndex int  `yaml:"default_z_index"` // Layer used when an item is appended without one
	YSort         bool `yaml:"y_sort"`          // Sort each layer by rect bottom before drawing
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	FrequencyX float64 `yaml:"frequency_x"` // Oscillation speed on X per frame
	FrequencyY float64 `yaml:"frequency_y"` // Oscillation speed on Y per frame
}

// Config holds general display configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Renderer RendererConfig
var ScreenShake ScreenShakeConfig

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Camera Config
	Camera = CameraConfig{
		DefaultZoom:      1.0,
		FollowSpeed:      0.1,
		FreedomBoxWidth:  64,
		FreedomBoxHeight: 36,
		ZoomTweenFrames:  30,
	}

	// Renderer Config
	Renderer = RendererConfig{
		DefaultZIndex: 0,
		YSort:         false,
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		FrequencyX: 1.1,
		FrequencyY: 1.3,
	}
}
