package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"heightfield/internal/terrain"
)

// size3 is the zero-noise result for corners 0, 100, 100, 200.
func size3() *terrain.Grid[uint8] {
	g := terrain.NewGrid[uint8](3)
	copy(g.Cells(), []uint8{
		0, 50, 100,
		50, 100, 150,
		100, 150, 200,
	})
	return g
}

func TestPlainPGMLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, size3(), PGM); err != nil {
		t.Fatal(err)
	}
	want := "P2 3 3 255\n0\n50\n100\n50\n100\n150\n100\n150\n200\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PGM mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainPGM16(t *testing.T) {
	g := terrain.NewGrid[uint16](3)
	g.SeedCorners(0, 65535, 1, 2)
	var buf bytes.Buffer
	if err := Encode(&buf, g, PGM); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "P2 3 3 65535" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "65535" {
		t.Errorf("top-right sample = %q, want 65535", lines[3])
	}
}

func TestRawPGM(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, size3(), PGMRaw); err != nil {
		t.Fatal(err)
	}
	header := "P5\n3 3\n255\n"
	want := append([]byte(header), 0, 50, 100, 50, 100, 150, 100, 150, 200)
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("P5 mismatch (-want +got):\n%s", diff)
	}
}

func TestRawPGM16IsBigEndian(t *testing.T) {
	g := terrain.NewGrid[uint16](3)
	g.Set(0, 0, 0x1234)
	var buf bytes.Buffer
	if err := Encode(&buf, g, PGMRaw); err != nil {
		t.Fatal(err)
	}
	header := "P5\n3 3\n65535\n"
	body := buf.Bytes()[len(header):]
	if body[0] != 0x12 || body[1] != 0x34 {
		t.Errorf("first sample bytes = %x %x, want 12 34", body[0], body[1])
	}
	if len(body) != 3*3*2 {
		t.Errorf("body length = %d, want 18", len(body))
	}
}

func TestImageDepth(t *testing.T) {
	if _, ok := Image(size3()).(*image.Gray); !ok {
		t.Errorf("8-bit grid should map to *image.Gray")
	}

	g := terrain.NewGrid[uint16](3)
	g.Set(1, 1, 40000)
	img, ok := Image(g).(*image.Gray16)
	if !ok {
		t.Fatalf("16-bit grid should map to *image.Gray16")
	}
	if got := img.Gray16At(1, 1).Y; got != 40000 {
		t.Errorf("Gray16At(1,1) = %d, want 40000", got)
	}

	wide := terrain.NewGrid[uint32](3)
	wide.Set(2, 2, 0xFFFFFFFF)
	if got := Image(wide).(*image.Gray16).Gray16At(2, 2).Y; got != 0xFFFF {
		t.Errorf("uint32 max scaled to %d, want 65535", got)
	}
}

func TestImageEncodersRoundTrip(t *testing.T) {
	g := size3()
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, g, f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		img, err := decode(&buf)
		if err != nil {
			t.Fatalf("%s decode: %v", f, err)
		}
		if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
			t.Errorf("%s bounds = %v", f, img.Bounds())
		}
		r, _, _, _ := img.At(2, 2).RGBA()
		if r>>8 != 200 {
			t.Errorf("%s pixel (2,2) = %d, want 200", f, r>>8)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, size3(), Format("jpeg2000"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"pgm": PGM, "PGM": PGM, "p2": PGM, "pgm-raw": PGMRaw, "P5": PGMRaw,
		"png": PNG, " bmp ": BMP, "tif": TIFF, "tiff": TIFF,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif) err = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"out.pgm": PGM, "a/b/terrain.PNG": PNG, "x.bmp": BMP, "x.tif": TIFF, "x.tiff": TIFF,
	}
	for in, want := range cases {
		got, err := FormatFromPath(in)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := FormatFromPath("terrain"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatFromPath(no ext) err = %v", err)
	}
}
