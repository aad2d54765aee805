package render

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/nfnt/resize"
	"github.com/soypat/hess"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Image rasterizes the chart into a square image of o.Size pixels.
func Image(c *hess.Chart, o Options) (image.Image, error) {
	p, err := Plot(c, o)
	if err != nil {
		return nil, err
	}
	size := o.size(c)
	k := o.supersample()
	edge := vg.Points(float64(size * k))
	// At 72 dpi one point is one pixel.
	canvas := vgimg.NewWith(vgimg.UseWH(edge, edge), vgimg.UseDPI(72))
	p.Draw(draw.New(canvas))
	var img image.Image = canvas.Image()
	if k > 1 {
		// downsample image for antialiasing
		img = resize.Resize(uint(size), uint(size), img, resize.Bilinear)
	}
	return img, nil
}

// WritePNG writes the rasterized chart to w in PNG format.
func WritePNG(w io.Writer, c *hess.Chart, o Options) error {
	img, err := Image(c, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// PNG returns the rasterized chart as PNG encoded bytes.
func PNG(c *hess.Chart, o Options) ([]byte, error) {
	var b bytes.Buffer
	if err := WritePNG(&b, c, o); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// CreatePNG renders the chart to a PNG file at path.
func CreatePNG(path string, c *hess.Chart, o Options) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WritePNG(fp, c, o)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteWebP writes the rasterized chart to w in lossless WebP format.
func WriteWebP(w io.Writer, c *hess.Chart, o Options) error {
	img, err := Image(c, o)
	if err != nil {
		return err
	}
	return nativewebp.Encode(w, img, nil)
}

// WriteSVG writes the chart to w as an SVG document o.Size points wide.
func WriteSVG(w io.Writer, c *hess.Chart, o Options) error {
	p, err := Plot(c, o)
	if err != nil {
		return err
	}
	edge := vg.Points(float64(o.size(c)))
	canvas := vgsvg.New(edge, edge)
	p.Draw(draw.New(canvas))
	_, err = canvas.WriteTo(w)
	return err
}
