// Package asset reads and decodes the picture files shown by the application.
package asset

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/mzilenas/hundview/util/log"
)

// Manager manages the loading of picture assets from a file system.
type Manager struct {
	fsys fs.FS
}

// NewManager creates a new asset manager reading from fsys.
func NewManager(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// GetImage loads and decodes the image asset by name.
func (am *Manager) GetImage(name string) (image.Image, error) {
	data, err := am.GetRawImage(name)
	if err != nil {
		log.Debugf("Error loading image %s: %v", name, err)
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Debugf("Error decoding image %s: %v", name, err)
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return img, nil
}

// GetRawImage loads and returns the raw bytes of an image asset by name.
func (am *Manager) GetRawImage(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("image name is empty")
	}
	return fs.ReadFile(am.fsys, name)
}
