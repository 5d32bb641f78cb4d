package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/wallpaperd/util/log"
)

// loadThumbnail decodes the image at path and scales it down to fit a size x size box.
func loadThumbnail(path string, size int) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return imaging.Fit(img, size, size, imaging.Lanczos), nil
}

// newPreview creates the empty preview canvas.
func newPreview() *canvas.Image {
	preview := canvas.NewImageFromImage(nil)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(previewSize, previewSize))
	return preview
}

// showPreview decodes path off the UI goroutine and shows it if path is still selected.
func (wa *WallpaperdApp) showPreview(path string) {
	go func() {
		img, err := loadThumbnail(path, previewSize)
		if err != nil {
			log.Printf("Failed to load preview for %s: %v", path, err)
		}
		fyne.Do(func() {
			if wa.selectedPath() != path {
				return
			}
			wa.preview.Image = img
			wa.preview.Refresh()
		})
	}()
}

// clearPreview empties the preview canvas.
func (wa *WallpaperdApp) clearPreview() {
	wa.preview.Image = nil
	wa.preview.Refresh()
}
