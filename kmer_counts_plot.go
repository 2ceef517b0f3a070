/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package kmergraph

/* -------------------------------------------------------------------------- */

import "bufio"
import "fmt"
import "image/color"
import "io"
import "os"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"
import "gonum.org/v1/plot/vg/vgimg"

/* -------------------------------------------------------------------------- */

const (
  HistogramTitle  = "K-mer Frequency Histogram"
  HistogramWidth  = 640
  HistogramHeight = 480
  // one point per pixel
  histogramDPI    = 72
)

/* -------------------------------------------------------------------------- */

// Histogram of k-mer counts with one bar per distinct k-mer. Bars are
// enumerated in lexicographic k-mer order.
func (obj KmerCounts) Histogram() (*plot.Plot, error) {
  if len(obj) == 0 {
    return nil, fmt.Errorf("Histogram(): no k-mers")
  }
  values := make(plotter.Values, 0, len(obj))
  for it := obj.Iterate(); it.Ok(); it.Next() {
    values = append(values, float64(it.GetCount()))
  }
  bars, err := plotter.NewBarChart(values, vg.Points(float64(HistogramWidth)/float64(len(values)+1)))
  if err != nil {
    return nil, fmt.Errorf("Histogram(): %w", err)
  }
  bars.LineStyle.Width = vg.Length(0)
  bars.Color = color.RGBA{R: 255, A: 255}

  p := plot.New()
  p.Title.Text   = HistogramTitle
  p.X.Label.Text = "k-mer"
  p.Y.Label.Text = "count"
  p.Add(bars)
  p.X.Min = -0.5
  p.X.Max = float64(len(values))-0.5
  p.Y.Min = 0
  p.Y.Max = float64(obj.Max())
  return p, nil
}

// Render the histogram as PNG image of HistogramWidth x HistogramHeight
// pixels.
func (obj KmerCounts) WriteHistogram(writer io.Writer) error {
  p, err := obj.Histogram()
  if err != nil {
    return err
  }
  c := vgimg.NewWith(
    vgimg.UseWH(vg.Points(HistogramWidth), vg.Points(HistogramHeight)),
    vgimg.UseDPI(histogramDPI))
  p.Draw(draw.New(c))
  if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(writer); err != nil {
    return fmt.Errorf("WriteHistogram(): %w", err)
  }
  return nil
}

func (obj KmerCounts) ExportHistogram(filename string) error {
  if len(obj) == 0 {
    return fmt.Errorf("ExportHistogram(): no k-mers")
  }
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  if err := obj.WriteHistogram(w); err != nil {
    return err
  }
  if err := w.Flush(); err != nil {
    return err
  }
  return f.Close()
}
