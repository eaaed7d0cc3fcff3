package vault

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// NaturalSize reads the pixel dimensions of image content without decoding
// the pixels.
func (v *Vault) NaturalSize(_ context.Context, rel string) (entity.Size, error) {
	clean, ok := cleanRel(rel)
	if !ok {
		return entity.Size{}, fmt.Errorf("image %q: %w", rel, ErrNotFound)
	}
	f, err := os.Open(v.Abs(clean))
	if err != nil {
		if os.IsNotExist(err) {
			return entity.Size{}, fmt.Errorf("image %q: %w", rel, ErrNotFound)
		}
		return entity.Size{}, fmt.Errorf("image %q: %w", rel, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return entity.Size{}, fmt.Errorf("image %q: %w", rel, err)
	}
	return entity.Size{W: cfg.Width, H: cfg.Height}, nil
}
