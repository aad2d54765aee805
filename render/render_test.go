package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/hess"
	"gonum.org/v1/plot/cmpimg"
)

const testSize = 128

func testChart(t *testing.T) *hess.Chart {
	t.Helper()
	c, err := hess.New(hess.Config{
		Name:   "LEFT, top right",
		Range:  45,
		Fixing: hess.Angles{Vertical: 15, Horizontal: 15},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestPlotRange(t *testing.T) {
	c := testChart(t)
	p, err := Plot(c, Options{})
	if err != nil {
		t.Fatal(err)
	}
	bb := c.Bounds()
	if p.X.Min != bb.Min.X || p.X.Max != bb.Max.X || p.Y.Min != bb.Min.Y || p.Y.Max != bb.Max.Y {
		t.Errorf("plot range x[%g,%g] y[%g,%g]. want %v", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max, bb)
	}
}

func TestImageSize(t *testing.T) {
	c := testChart(t)
	for _, o := range []Options{
		{Size: testSize},
		{Size: testSize, Supersample: 1},
		{Size: testSize, Supersample: 3},
	} {
		img, err := Image(c, o)
		if err != nil {
			t.Fatal(err)
		}
		b := img.Bounds()
		if b.Dx() != testSize || b.Dy() != testSize {
			t.Errorf("supersample %d: got %dx%d image. want %dx%d", o.Supersample, b.Dx(), b.Dy(), testSize, testSize)
		}
	}
}

func TestImageSizeFromChart(t *testing.T) {
	c, err := hess.New(hess.Config{Range: 45, DistanceCM: 2.54, DPI: 50})
	if err != nil {
		t.Fatal(err)
	}
	img, err := Image(c, Options{Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	// 2*tan(45°)*2.54cm is two inches.
	if got := img.Bounds().Dx(); got != 100 {
		t.Errorf("got %dpx wide image. want 100px", got)
	}
}

func TestPNGDeterministic(t *testing.T) {
	o := Options{Size: testSize}
	b1, err := PNG(testChart(t), o)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := PNG(testChart(t), o)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.Equal("png", b1, b2)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("rendering the same chart twice produced different images")
	}
}

func TestPNGShowsPoint(t *testing.T) {
	o := Options{Size: testSize, PointColor: color.RGBA{B: 0xff, A: 0xff}}
	c := testChart(t)
	before, err := PNG(c, o)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPoint(-0.5, -0.5, hess.PointNormalized); err != nil {
		t.Fatal(err)
	}
	after, err := PNG(c, o)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.Equal("png", before, after)
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Error("current point not drawn")
	}
}

func TestCreatePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	c := testChart(t)
	o := Options{Size: testSize}
	if err := CreatePNG(path, c, o); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := PNG(c, o)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.Equal("png", got, want)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("file contents differ from PNG output")
	}
}

func TestWriteWebP(t *testing.T) {
	var b bytes.Buffer
	if err := WriteWebP(&b, testChart(t), Options{Size: testSize}); err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("output is not a WebP container: % x", data[:min(len(data), 12)])
	}
}

func TestWriteSVG(t *testing.T) {
	var b bytes.Buffer
	if err := WriteSVG(&b, testChart(t), Options{Size: testSize}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b.Bytes(), []byte("<svg")) {
		t.Error("output is not an SVG document")
	}
}

func TestOutOfDomainFixingOmitted(t *testing.T) {
	c, err := hess.New(hess.Config{Range: 45, Fixing: hess.Angles{Vertical: 60, Horizontal: 60}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Image(c, Options{Size: testSize}); err != nil {
		t.Errorf("unprojectable fixing point: %s", err)
	}
}
