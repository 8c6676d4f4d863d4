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
	"fmt"
	"image"
	"image/color"
	"math"
)

// Format is the channel order of an Array.
type Format string

const (
	FormatL   Format = "L"
	FormatRGB Format = "RGB"
	FormatBGR Format = "BGR"
)

// Array is a numeric image in row-major height, width, channel order.
type Array struct {
	Height   int
	Width    int
	Channels int

	// Data holds values in [0, 255], or in [0, 1] when Normalized.
	Data       []float32
	Normalized bool
}

// NewArray returns a zeroed array.
func NewArray(height, width, channels int) *Array {
	return &Array{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}
}

// Shape returns the dimensions of the array, omitting the channel axis for single channel arrays.
func (a *Array) Shape() []int64 {
	if a.Channels == 1 {
		return []int64{int64(a.Height), int64(a.Width)}
	}

	return []int64{int64(a.Height), int64(a.Width), int64(a.Channels)}
}

// At returns the value at row y, column x and channel c.
func (a *Array) At(y, x, c int) float32 {
	return a.Data[(y*a.Width+x)*a.Channels+c]
}

// Set sets the value at row y, column x and channel c.
func (a *Array) Set(y, x, c int, v float32) {
	a.Data[(y*a.Width+x)*a.Channels+c] = v
}

// Normalize returns a copy scaled to [0, 1].
func (a *Array) Normalize() *Array {
	out := &Array{
		Height:     a.Height,
		Width:      a.Width,
		Channels:   a.Channels,
		Data:       make([]float32, len(a.Data)),
		Normalized: true,
	}

	scale := float32(1)
	if !a.Normalized {
		scale = 255
	}

	for i, v := range a.Data {
		out.Data[i] = v / scale
	}

	return out
}

// ToArray converts img to an array in the given format. The alpha channel is
// kept for RGB and BGR formats and dropped for L.
func ToArray(img image.Image, format Format) (*Array, error) {
	mode := ModeOf(img)
	b := img.Bounds()

	var channels int
	switch format {
	case FormatL:
		channels = 1
	case FormatRGB, FormatBGR:
		channels = 3
		if mode.HasAlpha() {
			channels = 4
		}
	default:
		return nil, fmt.Errorf("unknown image format %q, expected one of L, RGB or BGR", format)
	}

	arr := NewArray(b.Dy(), b.Dx(), channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			row, col := y-b.Min.Y, x-b.Min.X
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if channels == 1 {
				arr.Set(row, col, 0, float32(luma(c)))
				continue
			}

			r, bl := c.R, c.B
			if format == FormatBGR {
				r, bl = bl, r
			}

			arr.Set(row, col, 0, float32(r))
			arr.Set(row, col, 1, float32(c.G))
			arr.Set(row, col, 2, float32(bl))
			if channels == 4 {
				arr.Set(row, col, 3, float32(c.A))
			}
		}
	}

	return arr, nil
}

// FromArray converts an array in the given format back to an image. Arrays
// with one channel become L images, three channels RGB and four channels RGBA.
func FromArray(arr *Array, format Format) (image.Image, error) {
	if arr.Channels != 1 && arr.Channels != 3 && arr.Channels != 4 {
		return nil, fmt.Errorf("unknown image format with %d number of channels, expected an image with 1, 3 or 4", arr.Channels)
	}

	if len(arr.Data) != arr.Height*arr.Width*arr.Channels {
		return nil, fmt.Errorf("array data has %d values, expected %d", len(arr.Data), arr.Height*arr.Width*arr.Channels)
	}

	if arr.Channels > 1 && format != FormatRGB && format != FormatBGR {
		return nil, fmt.Errorf("unknown image format %q, expected one of RGB or BGR", format)
	}

	rect := image.Rect(0, 0, arr.Width, arr.Height)
	if arr.Channels == 1 {
		img := image.NewGray(rect)
		for y := 0; y < arr.Height; y++ {
			for x := 0; x < arr.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: arr.toUint8(arr.At(y, x, 0))})
			}
		}

		return img, nil
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < arr.Height; y++ {
		for x := 0; x < arr.Width; x++ {
			r, g, bl := arr.toUint8(arr.At(y, x, 0)), arr.toUint8(arr.At(y, x, 1)), arr.toUint8(arr.At(y, x, 2))
			if format == FormatBGR {
				r, bl = bl, r
			}

			a := uint8(0xff)
			if arr.Channels == 4 {
				a = arr.toUint8(arr.At(y, x, 3))
			}

			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: a})
		}
	}

	if arr.Channels == 3 {
		rgba := image.NewRGBA(rect)
		copy(rgba.Pix, img.Pix)
		return rgba, nil
	}

	return img, nil
}

// luma returns the ITU-R 601-2 luminance of c, ignoring alpha.
func luma(c color.NRGBA) uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B) + 500) / 1000)
}

func (a *Array) toUint8(v float32) uint8 {
	if a.Normalized {
		v *= 255
	}

	return uint8(math.Max(0, math.Min(255, math.Round(float64(v)))))
}
