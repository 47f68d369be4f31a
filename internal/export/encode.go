package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"heightfield/internal/heightfield"
	"heightfield/internal/profiling"
	"heightfield/internal/terrain"
)

// Image converts g to a greyscale image. 8-bit samples map directly onto
// *image.Gray; wider samples are scaled onto *image.Gray16.
func Image[T heightfield.Sample](g *terrain.Grid[T]) image.Image {
	size := g.Size()
	rect := image.Rect(0, 0, size, size)
	top := uint64(heightfield.MaxSample[T]())

	if top <= 0xFF {
		img := image.NewGray(rect)
		for y := 0; y < size; y++ {
			row := g.Row(y)
			off := y * img.Stride
			for x, v := range row {
				img.Pix[off+x] = uint8(v)
			}
		}
		return img
	}

	img := image.NewGray16(rect)
	for y := 0; y < size; y++ {
		row := g.Row(y)
		off := y * img.Stride
		for x, v := range row {
			s := scale16(uint64(v), top)
			img.Pix[off+2*x] = uint8(s >> 8)
			img.Pix[off+2*x+1] = uint8(s)
		}
	}
	return img
}

func scale16(v, top uint64) uint16 {
	if top == 0xFFFF {
		return uint16(v)
	}
	return uint16(float64(v) / float64(top) * 0xFFFF)
}

// Encode writes g to w in format f.
func Encode[T heightfield.Sample](w io.Writer, g *terrain.Grid[T], f Format) error {
	defer profiling.Track("export.Encode")()

	var err error
	switch f {
	case PGM:
		err = writePlainPGM(w, g)
	case PGMRaw:
		err = writeRawPGM(w, g)
	case PNG:
		err = png.Encode(w, Image(g))
	case BMP:
		err = bmp.Encode(w, Image(g))
	case TIFF:
		err = tiff.Encode(w, Image(g), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// pgmMax is the largest sample value a PGM file can carry for T.
func pgmMax[T heightfield.Sample]() uint64 {
	top := uint64(heightfield.MaxSample[T]())
	if top > 0xFFFF {
		return 0xFFFF
	}
	return top
}

func pgmValue(v, top uint64) uint64 {
	if top <= 0xFFFF {
		return v
	}
	return uint64(scale16(v, top))
}

// writePlainPGM emits "P2 <w> <h> <max>" followed by one sample per line.
func writePlainPGM[T heightfield.Sample](w io.Writer, g *terrain.Grid[T]) error {
	bw := bufio.NewWriter(w)
	size := g.Size()
	top := uint64(heightfield.MaxSample[T]())
	fmt.Fprintf(bw, "P2 %d %d %d\n", size, size, pgmMax[T]())

	var num []byte
	for y := 0; y < size; y++ {
		for _, v := range g.Row(y) {
			num = strconv.AppendUint(num[:0], pgmValue(uint64(v), top), 10)
			num = append(num, '\n')
			if _, err := bw.Write(num); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// writeRawPGM emits a binary P5 file; samples wider than a byte are
// big-endian 16-bit, as Netpbm requires.
func writeRawPGM[T heightfield.Sample](w io.Writer, g *terrain.Grid[T]) error {
	bw := bufio.NewWriter(w)
	size := g.Size()
	top := uint64(heightfield.MaxSample[T]())
	maxval := pgmMax[T]()
	fmt.Fprintf(bw, "P5\n%d %d\n%d\n", size, size, maxval)

	var buf [2]byte
	for y := 0; y < size; y++ {
		for _, v := range g.Row(y) {
			p := pgmValue(uint64(v), top)
			if maxval <= 0xFF {
				if err := bw.WriteByte(byte(p)); err != nil {
					return err
				}
				continue
			}
			binary.BigEndian.PutUint16(buf[:], uint16(p))
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
