// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ico reads and writes Windows ICO containers holding
// several PNG-compressed images of different resolutions.
//
// Importing the package registers the "ico" format with the image package,
// in which case [image.Decode] returns the largest image in the file.
package ico

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"cogentcore.org/core/base/errors"
)

// MaxSize is the largest edge length an ICO entry can describe.
const MaxSize = 256

const (
	headerSize = 6
	entrySize  = 16
	typeIcon   = 1
	magic      = "\x00\x00\x01\x00"
	pngMagic   = "\x89PNG\r\n\x1a\n"
)

var (
	// ErrNoImages is returned by [Encode] when called without images.
	ErrNoImages = errors.New("ico: no images to encode")

	// ErrFormat is returned when the data is not a valid ICO container.
	ErrFormat = errors.New("ico: invalid format")

	// ErrBitmap is returned when an entry holds an uncompressed
	// bitmap instead of a PNG stream.
	ErrBitmap = errors.New("ico: bitmap entries are not supported")
)

func init() {
	image.RegisterFormat("ico", magic, decodeLargest, decodeConfigLargest)
}

// Entry is one record of the ICO directory.
type Entry struct {
	Width    int
	Height   int
	Planes   uint16
	BitCount uint16
	Size     uint32
	Offset   uint32
}

// Encode writes the given images to w as one ICO container, in order.
// The first image is the primary one. Every image is stored as PNG
// and must be between 1 and [MaxSize] pixels on each edge.
func Encode(w io.Writer, imgs ...image.Image) error {
	if len(imgs) == 0 {
		return ErrNoImages
	}
	if len(imgs) > 0xffff {
		return fmt.Errorf("ico: too many images (%d)", len(imgs))
	}
	payloads := make([][]byte, len(imgs))
	for i, im := range imgs {
		sz := im.Bounds().Size()
		if sz.X < 1 || sz.Y < 1 || sz.X > MaxSize || sz.Y > MaxSize {
			return fmt.Errorf("ico: image %d has unsupported size %dx%d", i, sz.X, sz.Y)
		}
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, im); err != nil {
			return fmt.Errorf("ico: encoding image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	dir := make([]byte, headerSize+entrySize*len(imgs))
	binary.LittleEndian.PutUint16(dir[2:], typeIcon)
	binary.LittleEndian.PutUint16(dir[4:], uint16(len(imgs)))
	offset := uint32(len(dir))
	for i, im := range imgs {
		sz := im.Bounds().Size()
		e := dir[headerSize+entrySize*i:]
		e[0] = dimension(sz.X)
		e[1] = dimension(sz.Y)
		// e[2] color count and e[3] reserved stay zero
		binary.LittleEndian.PutUint16(e[4:], 1)
		binary.LittleEndian.PutUint16(e[6:], 32)
		binary.LittleEndian.PutUint32(e[8:], uint32(len(payloads[i])))
		binary.LittleEndian.PutUint32(e[12:], offset)
		offset += uint32(len(payloads[i]))
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(dir); err != nil {
		return err
	}
	for _, p := range payloads {
		if _, err := bw.Write(p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// dimension returns the directory byte for an edge length; 0 means 256.
func dimension(n int) byte {
	if n >= MaxSize {
		return 0
	}
	return byte(n)
}

// DecodeConfig reads the ICO directory from r without decoding any image.
func DecodeConfig(r io.Reader) ([]Entry, error) {
	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrFormat, err)
	}
	if string(hdr[:4]) != magic {
		return nil, fmt.Errorf("%w: bad header", ErrFormat)
	}
	n := int(binary.LittleEndian.Uint16(hdr[4:]))
	if n == 0 {
		return nil, fmt.Errorf("%w: empty directory", ErrFormat)
	}
	dir := make([]byte, entrySize*n)
	if _, err := io.ReadFull(r, dir); err != nil {
		return nil, fmt.Errorf("%w: reading directory: %v", ErrFormat, err)
	}
	entries := make([]Entry, n)
	for i := range entries {
		e := dir[entrySize*i:]
		entries[i] = Entry{
			Width:    edge(e[0]),
			Height:   edge(e[1]),
			Planes:   binary.LittleEndian.Uint16(e[4:]),
			BitCount: binary.LittleEndian.Uint16(e[6:]),
			Size:     binary.LittleEndian.Uint32(e[8:]),
			Offset:   binary.LittleEndian.Uint32(e[12:]),
		}
	}
	return entries, nil
}

func edge(b byte) int {
	if b == 0 {
		return MaxSize
	}
	return int(b)
}

// Decode reads every image stored in the ICO container, in directory order.
func Decode(r io.Reader) ([]image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	entries, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	imgs := make([]image.Image, len(entries))
	for i, e := range entries {
		end := uint64(e.Offset) + uint64(e.Size)
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d extends past end of file", ErrFormat, i)
		}
		payload := data[e.Offset:end]
		if !bytes.HasPrefix(payload, []byte(pngMagic)) {
			return nil, fmt.Errorf("entry %d: %w", i, ErrBitmap)
		}
		im, err := png.Decode(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("ico: decoding entry %d: %w", i, err)
		}
		imgs[i] = im
	}
	return imgs, nil
}

// largest returns the index of the entry with the most pixels.
func largest(entries []Entry) int {
	best := 0
	for i, e := range entries {
		if e.Width*e.Height > entries[best].Width*entries[best].Height {
			best = i
		}
	}
	return best
}

func decodeLargest(r io.Reader) (image.Image, error) {
	imgs, err := Decode(r)
	if err != nil {
		return nil, err
	}
	best := 0
	for i, im := range imgs {
		if area(im) > area(imgs[best]) {
			best = i
		}
	}
	return imgs[best], nil
}

func area(im image.Image) int {
	sz := im.Bounds().Size()
	return sz.X * sz.Y
}

func decodeConfigLargest(r io.Reader) (image.Config, error) {
	entries, err := DecodeConfig(r)
	if err != nil {
		return image.Config{}, err
	}
	e := entries[largest(entries)]
	return image.Config{ColorModel: color.NRGBAModel, Width: e.Width, Height: e.Height}, nil
}
