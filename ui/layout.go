package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies how a split row places its two widgets.
type Alignment int

const (
	alignLeft    Alignment = iota // both widgets packed to the left
	alignOpposed                  // first widget left, second widget right
)

// splitLayout gives the first widget a fixed share of the row width.
type splitLayout struct {
	widget1   fyne.CanvasObject
	widget2   fyne.CanvasObject
	share     float32
	alignment Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1Size := s.widget1.MinSize()
	w2Size := s.widget2.MinSize()
	return fyne.NewSize(w1Size.Width+w2Size.Width, fyne.Max(w1Size.Height, w2Size.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	widget1Width := fyne.Max(containerSize.Width*s.share, s.widget1.MinSize().Width)
	widget2Width := fyne.Max(containerSize.Width-widget1Width, 0)

	s.widget1.Resize(fyne.NewSize(widget1Width, containerSize.Height))
	s.widget2.Resize(fyne.NewSize(widget2Width, containerSize.Height))

	widget2X := widget1Width
	if s.alignment == alignOpposed {
		widget2Width = fyne.Min(widget2Width, s.widget2.MinSize().Width)
		s.widget2.Resize(fyne.NewSize(widget2Width, containerSize.Height))
		widget2X = containerSize.Width - widget2Width
	}

	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget2X, 0))
}

// newSplitRow creates a row where widget1 takes share (0..1) of the width.
func newSplitRow(widget1, widget2 fyne.CanvasObject, share float32, alignment Alignment) *fyne.Container {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	return container.New(&splitLayout{
		widget1:   widget1,
		widget2:   widget2,
		share:     share,
		alignment: alignment,
	}, widget1, widget2)
}
