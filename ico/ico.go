// Package ico encodes multi-resolution ICO container files.
//
// An ICO file is a 6-byte header, a directory of 16-byte entries, and the
// embedded image payloads back to back. Every multi-byte field is
// little-endian. Payloads are stored as-is; modern readers accept PNG data
// directly, so the encoder never re-compresses or inspects them.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Image is one entry for the container: a pre-encoded raster payload and the
// pixel size it was rendered at. The encoder trusts the caller to keep the
// two consistent; payload headers are not re-inspected.
type Image struct {
	Size int    // edge length in pixels
	Data []byte // embeddable raster payload (PNG)
}

// ErrNoImages is returned when Encode is called with an empty image set.
var ErrNoImages = errors.New("ico: no images to encode")

// Layout constants of the container format.
const (
	headerSize = 6
	entrySize  = 16

	resourceIcon = 1 // header type field: 1 = icon, 2 = cursor
)

// Encode writes the container for the given images to w. Images are sorted
// ascending by size first; the format does not require an order, but a fixed
// one makes the output byte-reproducible.
func Encode(w io.Writer, images []Image) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	for _, img := range images {
		if img.Size <= 0 {
			return fmt.Errorf("ico: invalid image size %d", img.Size)
		}
		if len(img.Data) == 0 {
			return fmt.Errorf("ico: empty payload for size %d", img.Size)
		}
	}

	sorted := make([]Image, len(images))
	copy(sorted, images)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Size < sorted[j].Size
	})

	// ICONDIR header.
	if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(resourceIcon)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(sorted))); err != nil {
		return err
	}

	// Directory entries. Offsets accumulate from the end of the directory.
	offset := uint32(headerSize + entrySize*len(sorted))
	for _, img := range sorted {
		if err := writeEntry(w, img, offset); err != nil {
			return err
		}
		offset += uint32(len(img.Data))
	}

	// Payload region, same order as the directory.
	for _, img := range sorted {
		if _, err := w.Write(img.Data); err != nil {
			return err
		}
	}
	return nil
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(images []Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, images); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeEntry emits one 16-byte ICONDIRENTRY.
func writeEntry(w io.Writer, img Image, offset uint32) error {
	entry := struct {
		Width      uint8
		Height     uint8
		ColorCount uint8  // 0: fully-colored raster, no palette
		Reserved   uint8  // must be 0
		Planes     uint16 // 1
		BitCount   uint16 // informational; the payload declares its own depth
		BytesInRes uint32
		Offset     uint32
	}{
		Width:      sentinelDim(img.Size),
		Height:     sentinelDim(img.Size),
		Planes:     1,
		BitCount:   32,
		BytesInRes: uint32(len(img.Data)),
		Offset:     offset,
	}
	return binary.Write(w, binary.LittleEndian, &entry)
}

// sentinelDim encodes a pixel dimension into the single-byte directory
// field. The field cannot hold 256, so the format defines 0 to mean 256;
// readers of the legacy format rely on that quirk, so larger sizes also map
// to the sentinel rather than wrapping arbitrarily.
func sentinelDim(size int) uint8 {
	if size >= 256 {
		return 0
	}
	return uint8(size)
}
