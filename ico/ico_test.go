package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func payload(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestEncode_Layout(t *testing.T) {
	images := []Image{
		{Size: 16, Data: payload(10, 0xaa)},
		{Size: 32, Data: payload(20, 0xbb)},
		{Size: 48, Data: payload(30, 0xcc)},
	}

	out, err := EncodeBytes(images)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	wantLen := 6 + 3*16 + 10 + 20 + 30
	if len(out) != wantLen {
		t.Fatalf("file length %d, want %d", len(out), wantLen)
	}

	// ICONDIR header.
	if got := binary.LittleEndian.Uint16(out[0:2]); got != 0 {
		t.Errorf("reserved = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint16(out[2:4]); got != 1 {
		t.Errorf("type = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(out[4:6]); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}

	// Directory entries: offsets accumulate after header+directory.
	wantOffsets := []uint32{54, 64, 84}
	wantLens := []uint32{10, 20, 30}
	wantDims := []uint8{16, 32, 48}
	for i := 0; i < 3; i++ {
		e := out[6+16*i : 6+16*(i+1)]
		if e[0] != wantDims[i] || e[1] != wantDims[i] {
			t.Errorf("entry %d: dims %d,%d, want %d", i, e[0], e[1], wantDims[i])
		}
		if e[2] != 0 || e[3] != 0 {
			t.Errorf("entry %d: colors/reserved = %d,%d, want 0,0", i, e[2], e[3])
		}
		if got := binary.LittleEndian.Uint16(e[4:6]); got != 1 {
			t.Errorf("entry %d: planes = %d, want 1", i, got)
		}
		if got := binary.LittleEndian.Uint16(e[6:8]); got != 32 {
			t.Errorf("entry %d: bit depth = %d, want 32", i, got)
		}
		if got := binary.LittleEndian.Uint32(e[8:12]); got != wantLens[i] {
			t.Errorf("entry %d: payload length = %d, want %d", i, got, wantLens[i])
		}
		if got := binary.LittleEndian.Uint32(e[12:16]); got != wantOffsets[i] {
			t.Errorf("entry %d: offset = %d, want %d", i, got, wantOffsets[i])
		}
	}

	// Payloads land at their declared offsets, in order.
	if !bytes.Equal(out[54:64], payload(10, 0xaa)) {
		t.Error("payload 0 not at its offset")
	}
	if !bytes.Equal(out[64:84], payload(20, 0xbb)) {
		t.Error("payload 1 not at its offset")
	}
	if !bytes.Equal(out[84:114], payload(30, 0xcc)) {
		t.Error("payload 2 not at its offset")
	}
}

func TestEncode_SortsBySize(t *testing.T) {
	images := []Image{
		{Size: 48, Data: payload(3, 3)},
		{Size: 16, Data: payload(1, 1)},
		{Size: 32, Data: payload(2, 2)},
	}

	out, err := EncodeBytes(images)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	gotDims := []uint8{out[6], out[6+16], out[6+32]}
	if gotDims[0] != 16 || gotDims[1] != 32 || gotDims[2] != 48 {
		t.Errorf("directory order %v, want ascending 16,32,48", gotDims)
	}
}

func TestEncode_SizeSentinel(t *testing.T) {
	tests := []struct {
		size int
		want uint8
	}{
		{size: 16, want: 0x10},
		{size: 128, want: 0x80},
		{size: 255, want: 0xff},
		{size: 256, want: 0x00}, // single-byte field: 0 means 256
		{size: 512, want: 0x00},
	}

	for _, tt := range tests {
		out, err := EncodeBytes([]Image{{Size: tt.size, Data: payload(4, 0)}})
		if err != nil {
			t.Fatalf("size %d: %v", tt.size, err)
		}
		if out[6] != tt.want || out[7] != tt.want {
			t.Errorf("size %d: dims 0x%02x,0x%02x, want 0x%02x", tt.size, out[6], out[7], tt.want)
		}
	}
}

func TestEncode_Rejects(t *testing.T) {
	if _, err := EncodeBytes(nil); !errors.Is(err, ErrNoImages) {
		t.Errorf("empty set: err = %v, want ErrNoImages", err)
	}
	if _, err := EncodeBytes([]Image{{Size: 0, Data: payload(1, 0)}}); err == nil {
		t.Error("zero size accepted")
	}
	if _, err := EncodeBytes([]Image{{Size: 16}}); err == nil {
		t.Error("empty payload accepted")
	}
}

func TestEncode_InputNotMutated(t *testing.T) {
	images := []Image{
		{Size: 48, Data: payload(1, 1)},
		{Size: 16, Data: payload(1, 2)},
	}
	if _, err := EncodeBytes(images); err != nil {
		t.Fatal(err)
	}
	if images[0].Size != 48 || images[1].Size != 16 {
		t.Error("Encode reordered the caller's slice")
	}
}
