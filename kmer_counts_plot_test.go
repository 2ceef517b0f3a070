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

import "bytes"
import "image"
import "image/png"
import "os"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestKmerCountsHistogram1(t *testing.T) {
  counts := KmerCounts{"ACG": 2, "CGT": 2, "GTA": 1, "TAC": 1}

  p, err := counts.Histogram()
  require.NoError(t, err)
  assert.Equal(t, HistogramTitle, p.Title.Text)
  assert.Equal(t, 0.0, p.Y.Min)
  assert.Equal(t, 2.0, p.Y.Max)

  filename := filepath.Join(t.TempDir(), "histogram.png")
  require.NoError(t, counts.ExportHistogram(filename))

  b, err := os.ReadFile(filename)
  require.NoError(t, err)
  assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

  config, format, err := image.DecodeConfig(bytes.NewReader(b))
  require.NoError(t, err)
  assert.Equal(t, "png", format)
  assert.Equal(t, HistogramWidth, config.Width)
  assert.Equal(t, HistogramHeight, config.Height)
}

func TestKmerCountsHistogram3(t *testing.T) {
  // the canvas size does not depend on the number of k-mers
  sequence := NewSequenceRng(9).Generate(2000)
  kmers, _ := ExtractKmers(sequence, 5)

  var buffer bytes.Buffer
  require.NoError(t, CountKmers(kmers).WriteHistogram(&buffer))

  config, err := png.DecodeConfig(&buffer)
  require.NoError(t, err)
  assert.Equal(t, HistogramWidth, config.Width)
  assert.Equal(t, HistogramHeight, config.Height)
}

func TestKmerCountsHistogram2(t *testing.T) {
  _, err := KmerCounts{}.Histogram()
  assert.Error(t, err)
  assert.Error(t, KmerCounts{}.WriteHistogram(&bytes.Buffer{}))

  filename := filepath.Join(t.TempDir(), "histogram.png")
  assert.Error(t, KmerCounts{}.ExportHistogram(filename))
  // no empty file is left behind
  _, err = os.Stat(filename)
  assert.True(t, os.IsNotExist(err))
}
