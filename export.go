package iconsmith

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iconsmith/iconsmith/ico"
)

// ErrEmptyExport is returned when an export is requested with no sizes.
var ErrEmptyExport = errors.New("export: no sizes requested")

// maxContainerSize is the largest size embedded in the ICO container.
// Bigger renders are still exported as standalone PNG files.
const maxContainerSize = 256

// ExportResult holds the byte payloads of one export batch, ready to be
// written to files or handed to an archiver.
type ExportResult struct {
	// PNGs maps each requested size to its encoded PNG payload.
	PNGs map[int][]byte
	// ICO is the multi-resolution container built from the sizes up to 256.
	// Nil when no requested size fits the container.
	ICO []byte
}

// RenderPNG renders the design at one size and encodes the result as PNG,
// the raster payload embedded in containers and written as standalone files.
func RenderPNG(params Params, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render png: size %d must be positive", size)
	}
	pm := NewPixmap(size)
	if err := Render(pm, params); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, pm.ToImage()); err != nil {
		return nil, fmt.Errorf("render png: encode %dpx: %w", size, err)
	}
	return buf.Bytes(), nil
}

// Export renders the design at every requested size, encodes each as PNG,
// and assembles the ICO container from the sizes up to 256. Per-size work
// runs concurrently; each size is an independent render of the same
// immutable parameter snapshot. The container is only assembled once every
// size has finished: a failed size fails the whole export rather than
// silently dropping a directory entry.
func Export(ctx context.Context, params Params, sizes []int) (*ExportResult, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyExport
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	uniq := dedupSizes(sizes)
	for _, s := range uniq {
		if s <= 0 {
			return nil, fmt.Errorf("export: size %d must be positive", s)
		}
	}

	start := time.Now()
	pngs := make([][]byte, len(uniq))

	g, ctx := errgroup.WithContext(ctx)
	for i, size := range uniq {
		i, size := i, size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := RenderPNG(params, size)
			if err != nil {
				return fmt.Errorf("export: size %d: %w", size, err)
			}
			Logger().DebugContext(ctx, "rendered size",
				"size", size, "bytes", len(data))
			pngs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &ExportResult{PNGs: make(map[int][]byte, len(uniq))}
	var embedded []ico.Image
	for i, size := range uniq {
		res.PNGs[size] = pngs[i]
		if size <= maxContainerSize {
			embedded = append(embedded, ico.Image{Size: size, Data: pngs[i]})
		}
	}

	if len(embedded) > 0 {
		data, err := ico.EncodeBytes(embedded)
		if err != nil {
			return nil, fmt.Errorf("export: container: %w", err)
		}
		res.ICO = data
	}

	Logger().InfoContext(ctx, "export finished",
		"sizes", len(uniq),
		"container_bytes", len(res.ICO),
		"elapsed", time.Since(start))
	return res, nil
}

// PNGFilename returns the conventional name for a standalone raster export.
func PNGFilename(base string, size int) string {
	return fmt.Sprintf("%s-%d.png", base, size)
}

// ICOFilename returns the conventional name for the container export.
func ICOFilename(base string) string {
	return base + ".ico"
}

// dedupSizes returns the sizes sorted ascending with duplicates removed.
func dedupSizes(sizes []int) []int {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Ints(sorted)

	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
