// Copyright 2016 The Fdplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/fdlab/fdplot/errs"
)

// Gonum renders figures natively with gonum.org/v1/plot
type Gonum struct{}

// Name returns "gonum"
func (o Gonum) Name() string { return "gonum" }

// Supports tells whether format can be written
func (o Gonum) Supports(format string) bool {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps":
		return true
	}
	return false
}

// Release does nothing: plots are garbage collected after Render
func (o Gonum) Release(fig *Figure) {}

// Render draws fig and writes it to path. The previous artifact is replaced only after drawing
// and writing succeeded.
func (o Gonum) Render(fig *Figure, opts *Options, path string) (err error) {

	// subplots
	plots := make([][]*plot.Plot, fig.Nrow)
	for i := range plots {
		plots[i] = make([]*plot.Plot, fig.Ncol)
	}
	for k, s := range fig.Splots {
		p, e := gonumSplot(s, !fig.SharedLegend)
		if e != nil {
			return chk.Err("figure %q: %w", fig.Key, e)
		}
		plots[k/fig.Ncol][k%fig.Ncol] = p
	}

	// canvas
	w, h := vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch
	cw, err := newCanvas(w, h, opts)
	if err != nil {
		return
	}
	err = gonumDraw(fig, plots, draw.New(cw))
	if err != nil {
		return
	}

	// write
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return chk.Err("cannot create file in <%s>: %v", filepath.Dir(path), err)
	}
	tmp := f.Name()
	_, err = cw.WriteTo(f)
	if e := f.Close(); err == nil {
		err = e
	}
	if err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return chk.Err("cannot write figure to <%s>: %v", path, err)
	}
	return
}

// gonumDraw lays out the title, the shared legend and the grid of plots on dc. Failures of
// the drawing code are returned as numeric anomalies.
func gonumDraw(fig *Figure, plots [][]*plot.Plot, dc draw.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot draw figure %q: %v: %w", fig.Key, r, errs.ErrNumericAnomaly)
		}
	}()

	// figure title
	if fig.Title != "" {
		ts := plot.New().Title.TextStyle
		ts.Font.Size = vg.Points(14)
		ts.XAlign = draw.XCenter
		ts.YAlign = draw.YTop
		pad := vg.Points(6)
		dc.FillText(ts, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, fig.Title)
		dc = draw.Crop(dc, 0, 0, 0, -(ts.Height(fig.Title) + 2*pad))
	}

	// shared legend
	if fig.SharedLegend {
		entries := fig.Legend()
		if len(entries) > 0 {
			lw := (dc.Max.X - dc.Min.X) * defaultLegendWidth
			lc := draw.Crop(dc, (dc.Max.X-dc.Min.X)-lw, 0, 0, 0)
			dc = draw.Crop(dc, 0, -lw, 0, 0)
			leg := plot.NewLegend()
			leg.Top = true
			leg.Left = true
			for _, e := range entries {
				leg.Add(e.Label, gonumThumbs(e)...)
			}
			leg.Draw(lc)
		}
	}

	// grid
	tiles := draw.Tiles{
		Rows:      fig.Nrow,
		Cols:      fig.Ncol,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
	return
}

// newCanvas returns a canvas for the output format; raster canvases use the requested resolution
func newCanvas(w, h vg.Length, opts *Options) (cw vg.CanvasWriterTo, err error) {
	switch opts.Format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.Dpi))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.Dpi))}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.Dpi))}, nil
	}
	cw, err = draw.NewFormattedCanvas(w, h, opts.Format)
	if err != nil {
		return nil, chk.Err("cannot create %q canvas: %v: %w", opts.Format, err, errs.ErrConfiguration)
	}
	return
}

// gonumSplot converts a subplot
func gonumSplot(s *SplotDat, legend bool) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.Xlbl
	p.Y.Label.Text = s.Ylbl
	if s.Xlog {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if s.Ylog {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	npts := 0
	for _, e := range s.Data {
		xys := getPoints(e.X, e.Y, s.Xlog, s.Ylog)
		if len(xys) == 0 {
			continue
		}
		npts += len(xys)
		var thumbs []plot.Thumbnailer
		if e.Style.Line != "" {
			l, err := plotter.NewLine(xys)
			if err != nil {
				return nil, chk.Err("series %q: %v: %w", e.Label, err, errs.ErrNumericAnomaly)
			}
			l.LineStyle = getLineStyle(e.Style)
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if e.Style.Marker != "" {
			sc, err := plotter.NewScatter(getEvery(xys, e.Every))
			if err != nil {
				return nil, chk.Err("series %q: %v: %w", e.Label, err, errs.ErrNumericAnomaly)
			}
			sc.GlyphStyle = getGlyphStyle(e.Style)
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		if legend && e.Label != "" {
			p.Legend.Add(e.Label, thumbs...)
		}
	}
	if npts == 0 && (s.Xlog || s.Ylog) {
		return nil, chk.Err("subplot %q has no positive values to show on logarithmic axes: %w", s.Title, errs.ErrNumericAnomaly)
	}
	if len(s.Yrange) == 2 {
		p.Y.Min, p.Y.Max = s.Yrange[0], s.Yrange[1]
	}
	return
}

// gonumThumbs returns legend thumbnails for an entity without data
func gonumThumbs(e *PltEntity) (thumbs []plot.Thumbnailer) {
	if e.Style.Line != "" {
		thumbs = append(thumbs, &plotter.Line{LineStyle: getLineStyle(e.Style)})
	}
	if e.Style.Marker != "" {
		thumbs = append(thumbs, &plotter.Scatter{GlyphStyle: getGlyphStyle(e.Style)})
	}
	return
}
