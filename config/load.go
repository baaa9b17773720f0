package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the global configuration for YAML overlays. Sections and
// fields missing from the document keep their current values.
type file struct {
	Display     Config            `yaml:"display"`
	Camera      CameraConfig      `yaml:"camera"`
	Renderer    RendererConfig    `yaml:"renderer"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
}

// Load overlays YAML from r onto the global configuration. An empty
// document leaves everything untouched. On error nothing is changed.
func Load(r io.Reader) error {
	doc := file{
		Display:     *C,
		Camera:      Camera,
		Renderer:    Renderer,
		ScreenShake: ScreenShake,
	}

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config: %w", err)
	}

	C = &doc.Display
	Camera = doc.Camera
	Renderer = doc.Renderer
	ScreenShake = doc.ScreenShake
	return nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}
