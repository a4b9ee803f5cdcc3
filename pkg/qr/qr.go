// Package qr renders the public-menu QR code: dot-style modules, rounded
// finder patterns, and an optional centered logo over a rounded backdrop.
package qr

import (
	"image"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

const (
	// Quiet zone around the code, in modules.
	quietModules = 2

	// Linear fraction of the module grid reserved for the logo window.
	// Level-H error correction tolerates ~30% obstruction; 28% of the linear
	// dimension keeps the cleared area inside that budget.
	centerFraction = 0.28

	finderSize = 7
)

type Options struct {
	Size       int    // output edge in pixels; default 512
	Foreground string // hex, default #000000
	Background string // hex, default #ffffff
	Backdrop   string // hex fill behind the logo, default #ffffff

	// Logo, already decoded. nil renders a plain code.
	Logo image.Image
}

// Render draws content as a scannable code. The code is generated at the
// highest error-correction level so the cleared center window never breaks
// scannability.
func Render(content string, opts Options) (image.Image, error) {
	if opts.Size <= 0 {
		opts.Size = 512
	}
	if opts.Foreground == "" {
		opts.Foreground = "#000000"
	}
	if opts.Background == "" {
		opts.Background = "#ffffff"
	}
	if opts.Backdrop == "" {
		opts.Backdrop = "#ffffff"
	}

	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	grid := code.Bitmap()
	n := len(grid)

	size := opts.Size
	scale := float64(size) / float64(n+2*quietModules)
	offset := scale * quietModules

	// Center window bounds, in module coordinates.
	win := int(float64(n) * centerFraction)
	winStart := (n - win) / 2
	winEnd := winStart + win

	dc := gg.NewContext(size, size)
	dc.SetHexColor(opts.Background)
	dc.Clear()
	dc.SetHexColor(opts.Foreground)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !grid[y][x] {
				continue
			}
			if x >= winStart && x < winEnd && y >= winStart && y < winEnd {
				continue // reserved for the logo
			}
			px := offset + float64(x)*scale
			py := offset + float64(y)*scale
			if inFinder(x, y, n) {
				dc.DrawRoundedRectangle(px, py, scale, scale, scale*0.32)
				dc.Fill()
			} else {
				dc.DrawCircle(px+scale/2, py+scale/2, scale*0.42)
				dc.Fill()
			}
		}
	}

	if opts.Logo != nil {
		drawLogo(dc, opts.Logo, size, opts.Backdrop)
	}

	return dc.Image(), nil
}

// inFinder reports whether a module belongs to one of the three corner
// finder patterns.
func inFinder(x, y, n int) bool {
	inTL := x < finderSize && y < finderSize
	inTR := x >= n-finderSize && y < finderSize
	inBL := x < finderSize && y >= n-finderSize
	return inTL || inTR || inBL
}

// logoBounds picks the maximum container for the logo from its aspect ratio:
// wide, tall, and near-square marks get different limits so none of them
// spills out of the cleared window.
func logoBounds(logo image.Image, size int) (maxW, maxH float64) {
	b := logo.Bounds()
	ar := float64(b.Dx()) / float64(b.Dy())
	switch {
	case ar > 1.3: // wide
		return float64(size) * 0.24, float64(size) * 0.14
	case ar < 0.77: // tall
		return float64(size) * 0.14, float64(size) * 0.24
	default: // near-square
		return float64(size) * 0.19, float64(size) * 0.19
	}
}

func drawLogo(dc *gg.Context, logo image.Image, size int, backdrop string) {
	maxW, maxH := logoBounds(logo, size)

	b := logo.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	ratio := maxW / w
	if maxH/h < ratio {
		ratio = maxH / h
	}
	dstW := int(w * ratio)
	dstH := int(h * ratio)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), logo, b, xdraw.Over, nil)

	pad := float64(size) * 0.02
	bw := float64(dstW) + 2*pad
	bh := float64(dstH) + 2*pad
	bx := (float64(size) - bw) / 2
	by := (float64(size) - bh) / 2

	dc.SetHexColor(backdrop)
	dc.DrawRoundedRectangle(bx, by, bw, bh, pad*2)
	dc.Fill()

	dc.DrawImage(scaled, (size-dstW)/2, (size-dstH)/2)
}
