package picture

import (
	"errors"
	"fmt"
	"image"

	"github.com/mzilenas/hundview/config"
	"github.com/mzilenas/hundview/util/log"
)

// ErrImageLoad is matched by every error returned from Loader.Load.
var ErrImageLoad = errors.New("image load failed")

// LoadError describes a picture that could not be read, decoded or fitted.
type LoadError struct {
	Index int
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading picture %d from %s: %v", e.Index, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports ErrImageLoad as a match.
func (e *LoadError) Is(target error) bool { return target == ErrImageLoad }

// ImageSource decodes images by file name.
type ImageSource interface {
	GetImage(name string) (image.Image, error)
}

// Loader reads numbered pictures and stretches them onto a Surface.
type Loader struct {
	src     ImageSource
	surface *Surface
	cfg     *config.Config
}

// NewLoader creates a loader drawing onto surface.
func NewLoader(src ImageSource, surface *Surface, cfg *config.Config) *Loader {
	return &Loader{src: src, surface: surface, cfg: cfg}
}

// Path returns the platform path of picture i, for diagnostics.
func (l *Loader) Path(i int) string {
	return l.cfg.PicturePath(i)
}

// Load reads picture i and fits it onto the surface. On error the surface
// keeps its previous contents.
func (l *Loader) Load(i int) error {
	img, err := l.src.GetImage(l.cfg.PictureName(i))
	if err != nil {
		return &LoadError{Index: i, Path: l.Path(i), Err: err}
	}

	b := img.Bounds()
	if err := l.surface.Fit(img); err != nil {
		return &LoadError{Index: i, Path: l.Path(i), Err: err}
	}

	size := l.surface.Size()
	log.Debugf("Loaded %s (%dx%d) onto %dx%d surface", l.Path(i), b.Dx(), b.Dy(), size.X, size.Y)
	return nil
}
