/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package imageutils

import (
	"image"
	"image/color"
)

// Mode describes the channel layout of an image.
type Mode string

const (
	ModeL    Mode = "L"
	ModeLA   Mode = "LA"
	ModeRGB  Mode = "RGB"
	ModeRGBA Mode = "RGBA"
)

// HasAlpha reports whether the mode carries an alpha channel.
func (m Mode) HasAlpha() bool {
	return m == ModeLA || m == ModeRGBA
}

// IsGray reports whether the mode is single luminance.
func (m Mode) IsGray() bool {
	return m == ModeL || m == ModeLA
}

// ModeOf returns the mode of img.
func ModeOf(img image.Image) Mode {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeL
	case *GrayAlpha:
		return ModeLA
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	default:
		return ModeRGBA
	}
}

// GrayAlpha is an in-memory image of luminance and alpha pairs.
type GrayAlpha struct {
	// Pix holds Y, A pairs in row-major order.
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewGrayAlpha returns a new GrayAlpha image with the given bounds.
func NewGrayAlpha(r image.Rectangle) *GrayAlpha {
	return &GrayAlpha{
		Pix:    make([]uint8, 2*r.Dx()*r.Dy()),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

func (p *GrayAlpha) ColorModel() color.Model {
	return color.NRGBAModel
}

func (p *GrayAlpha) Bounds() image.Rectangle {
	return p.Rect
}

func (p *GrayAlpha) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}

	i := p.PixOffset(x, y)
	return color.NRGBA{R: p.Pix[i], G: p.Pix[i], B: p.Pix[i], A: p.Pix[i+1]}
}

// PixOffset returns the index of the first element of Pix for the pixel at (x, y).
func (p *GrayAlpha) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// SetYA sets the luminance and alpha of the pixel at (x, y).
func (p *GrayAlpha) SetYA(x, y int, l, a uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}

	i := p.PixOffset(x, y)
	p.Pix[i] = l
	p.Pix[i+1] = a
}

func (p *GrayAlpha) Opaque() bool {
	for i := 1; i < len(p.Pix); i += 2 {
		if p.Pix[i] != 0xff {
			return false
		}
	}

	return true
}

// toGrayAlpha converts a decoded gray and alpha png back into a GrayAlpha.
func toGrayAlpha(img image.Image) *GrayAlpha {
	b := img.Bounds()
	ga := NewGrayAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			ga.SetYA(x, y, c.R, c.A)
		}
	}

	return ga
}

// Equal reports whether a and b have the same bounds and pixels.
func Equal(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}

	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.NRGBA64Model.Convert(a.At(x, y)) != color.NRGBA64Model.Convert(b.At(x, y)) {
				return false
			}
		}
	}

	return true
}
