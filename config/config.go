// Package config provides the compiled-in settings of the picture viewer.
package config

import (
	"fmt"
	"path/filepath"
)

// Config holds the settings the main window is built from.
type Config struct {
	Title          string // Window title
	SurfaceWidth   int    // Picture area width in pixels
	SurfaceHeight  int    // Picture area height in pixels
	ImageDir       string // Directory holding the pictures
	PicturePattern string // fmt pattern turning an index into a file name
	Inset          float32
}

// Default returns the configuration the application ships with.
func Default() *Config {
	return &Config{
		Title:          AppName,
		SurfaceWidth:   SurfaceWidth,
		SurfaceHeight:  SurfaceHeight,
		ImageDir:       ImageDir,
		PicturePattern: PicturePattern,
		Inset:          Inset,
	}
}

// PictureName returns the file name of picture i, relative to ImageDir.
func (c *Config) PictureName(i int) string {
	return fmt.Sprintf(c.PicturePattern, i)
}

// PicturePath returns the platform path of picture i.
func (c *Config) PicturePath(i int) string {
	return filepath.Join(c.ImageDir, c.PictureName(i))
}

// Validate reports settings that would leave the window unusable.
func (c *Config) Validate() error {
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.ImageDir == "" {
		return fmt.Errorf("image directory is empty")
	}
	if c.PicturePattern == "" {
		return fmt.Errorf("picture pattern is empty")
	}
	return nil
}
