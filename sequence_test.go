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
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestSequence1(t *testing.T) {
  sequence := []byte("ACGTACGTTTGCA")
  dir      := t.TempDir()
  for _, compress := range []bool{false, true} {
    filename := filepath.Join(dir, "sequence.txt")
    require.NoError(t, ExportSequence(filename, sequence, compress))

    b, err := os.ReadFile(filename)
    require.NoError(t, err)
    if compress {
      assert.NotEqual(t, sequence, b)
    } else {
      assert.Equal(t, sequence, b)
    }
    s, err := ImportSequence(filename)
    require.NoError(t, err)
    assert.Equal(t, sequence, s)
  }
}

func TestSequence2(t *testing.T) {
  // sequences are read verbatim
  s, err := ReadSequence(strings.NewReader("ACGT\n"))
  require.NoError(t, err)
  assert.Equal(t, []byte("ACGT\n"), s)

  var buffer bytes.Buffer
  require.NoError(t, WriteSequence(&buffer, []byte("GATTACA")))
  assert.Equal(t, "GATTACA", buffer.String())
}

func TestSequence3(t *testing.T) {
  _, err := ImportSequence(filepath.Join(t.TempDir(), "missing.txt"))
  assert.Error(t, err)
  assert.Error(t, ExportSequence(filepath.Join(t.TempDir(), "missing", "sequence.txt"), []byte("A"), false))
}

func TestSequence4(t *testing.T) {
  // an empty sequence file yields an empty sequence and no k-mers
  filename := filepath.Join(t.TempDir(), "sequence.txt")
  require.NoError(t, ExportSequence(filename, nil, false))

  s, err := ImportSequence(filename)
  require.NoError(t, err)
  assert.Len(t, s, 0)

  _, err = ExtractKmers(s, 1)
  assert.ErrorIs(t, err, ErrInvalidWindowSize)
}

/* -------------------------------------------------------------------------- */

func TestSequenceRng1(t *testing.T) {
  s1 := NewSequenceRng(42).Generate(1000)
  s2 := NewSequenceRng(42).Generate(1000)
  s3 := NewSequenceRng(43).Generate(1000)

  assert.Len(t, s1, 1000)
  assert.Equal(t, s1, s2)
  assert.NotEqual(t, s1, s3)
  assert.NoError(t, CheckSequence(s1))

  n := make(map[byte]int)
  for _, c := range s1 {
    n[c]++
  }
  assert.Len(t, n, 4)
}

func TestSequenceRng2(t *testing.T) {
  var source SequenceSource = NewSequenceRng(1).Source()
  assert.Len(t, source(0), 0)
  assert.Len(t, source(17), 17)
}

func TestSequenceRng3(t *testing.T) {
  s1 := NewSequenceRng(11).Generate(250)
  s2 := make([]byte, 250)
  rng := NewSequenceRng(11)
  for i := 0; i < len(s2); i += 100 {
    rng.Fill(s2[i:iMin(i+100, len(s2))])
  }
  assert.Equal(t, s1, s2)
}
