package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/willbeason/chaos-game/pkg/errors"
)

var red = color.RGBA{R: 255, A: 255}

func TestCanvasStartsWhite(t *testing.T) {
	cv := NewCanvas(4, 3)
	img := cv.Image()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
				t.Fatalf("pixel (%d, %d) = %v, want white", x, y, img.At(x, y))
			}
		}
	}
}

func TestCanvasPlotAndClip(t *testing.T) {
	cv := NewCanvas(10, 10)

	cv.Plot(2.7, 3.2, red)
	cv.Plot(-0.5, 3, red)
	cv.Plot(10, 3, red)
	cv.Plot(3, 10.1, red)
	cv.Plot(math.NaN(), 1, red)

	if got := cv.Stats(); got != (Stats{Plotted: 1, Clipped: 4}) {
		t.Errorf("Stats() = %+v, want {Plotted:1 Clipped:4}", got)
	}

	got := color.RGBAModel.Convert(cv.Image().At(2, 3))
	if got != red {
		t.Errorf("pixel (2, 3) = %v, want %v", got, red)
	}
}

func TestDensity(t *testing.T) {
	d := NewDensity(4, 4)
	for i := 0; i < 3; i++ {
		d.Plot(1.5, 1.5, nil)
	}
	d.Plot(0, 0, nil)
	d.Plot(5, 5, nil)

	if d.Count(1, 1) != 3 {
		t.Errorf("Count(1, 1) = %d, want 3", d.Count(1, 1))
	}
	if got := d.Stats(); got != (Stats{Plotted: 4, Clipped: 1}) {
		t.Errorf("Stats() = %+v, want {Plotted:4 Clipped:1}", got)
	}

	img := d.Image()
	if g := color.Gray16Model.Convert(img.At(1, 1)).(color.Gray16); g.Y != 0 {
		t.Errorf("densest pixel = %d, want 0", g.Y)
	}
	if g := color.Gray16Model.Convert(img.At(3, 3)).(color.Gray16); g.Y != math.MaxUint16 {
		t.Errorf("empty pixel = %d, want %d", g.Y, math.MaxUint16)
	}
}

func TestDensityEmptyImage(t *testing.T) {
	img := NewDensity(2, 2).Image()
	if g := color.Gray16Model.Convert(img.At(0, 0)).(color.Gray16); g.Y != math.MaxUint16 {
		t.Errorf("pixel = %d, want white", g.Y)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		path    string
		want    Format
		wantErr bool
	}{
		{name: "explicit bmp", format: "bmp", path: "out.png", want: FormatBMP},
		{name: "explicit upper", format: "PNG", want: FormatPNG},
		{name: "from extension", path: "out/fern.png", want: FormatPNG},
		{name: "no extension", path: "out/fern", want: FormatBMP},
		{name: "unsupported", format: "gif", wantErr: true},
		{name: "unsupported extension", path: "fern.jpg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.format, tt.path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("ParseFormat() error = %v, want %v", err, errors.ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeBMPRoundTrip(t *testing.T) {
	cv := NewCanvas(8, 8)
	cv.Plot(4, 4, red)

	var buf bytes.Buffer
	if err := Encode(&buf, cv.Image(), FormatBMP); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", img.Bounds())
	}
	r, g, b, _ := img.At(4, 4).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("pixel (4, 4) = %v, want red", img.At(4, 4))
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")

	if err := Save(path, NewDensity(3, 3).Image(), FormatPNG); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory with the target's name makes os.Create fail.
	path := filepath.Join(dir, "taken")
	if err := Save(filepath.Join(path, "x.bmp"), NewCanvas(1, 1).Image(), FormatBMP); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	err := Save(path, NewCanvas(1, 1).Image(), FormatBMP)
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Save() error = %v, want %v", err, errors.ErrCodeIO)
	}
}
