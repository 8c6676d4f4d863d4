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

// Package imageutils converts images between in-memory, png, base64 and array forms.
package imageutils

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

// pngColorTypeGrayAlpha is the IHDR color type of gray and alpha pngs.
const pngColorTypeGrayAlpha = 4

// ihdrColorTypeOffset is the offset of the color type byte in a png stream.
const ihdrColorTypeOffset = 25

// ErrEmptyImage is returned when decoding an empty payload.
var ErrEmptyImage = errors.New("empty image")

// pngSignature starts every png stream.
var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// ToBytes encodes img as png.
func ToBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if ga, ok := img.(*GrayAlpha); ok {
		if err := encodeGrayAlpha(&buf, ga); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// encodeGrayAlpha writes an 8 bit gray and alpha png, which image/png never emits.
func encodeGrayAlpha(w io.Writer, img *GrayAlpha) error {
	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	b := img.Bounds()
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(b.Dy()))
	ihdr[8] = 8
	ihdr[9] = pngColorTypeGrayAlpha
	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		// Filter type none.
		if _, err := zw.Write([]byte{0}); err != nil {
			return err
		}

		if _, err := zw.Write(img.Pix[i : i+2*b.Dx()]); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}

	if err := writeChunk(w, "IDAT", idat.Bytes()); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

func writeChunk(w io.Writer, name string, data []byte) error {
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)

	footer := make([]byte, 4)
	binary.BigEndian.PutUint32(footer, crc.Sum32())

	for _, b := range [][]byte{header, data, footer} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

// FromBytes decodes a png into an image, restoring gray and alpha images as GrayAlpha.
func FromBytes(b []byte) (image.Image, error) {
	if len(b) == 0 {
		return nil, ErrEmptyImage
	}

	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	if len(b) > ihdrColorTypeOffset && b[ihdrColorTypeOffset] == pngColorTypeGrayAlpha {
		return toGrayAlpha(img), nil
	}

	return img, nil
}

// ToBase64 encodes img as base64 png text.
func ToBase64(img image.Image) (string, error) {
	b, err := ToBytes(img)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// FromBase64 decodes base64 png text into an image.
func FromBase64(s string) (image.Image, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return FromBytes(b)
}
