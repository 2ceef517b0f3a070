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
import "path/filepath"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestOrderedStringSet1(t *testing.T) {
  s := EmptyOrderedStringSet()
  r := ">chr2 some description\nACGT\nACGT\n\n>chr1|x\r\nGGCC\r\n"
  require.NoError(t, s.ReadFasta(strings.NewReader(r)))

  assert.Equal(t, []string{"chr2", "chr1"}, s.Seqnames)
  assert.Equal(t, []byte("ACGTACGT"), s.At(0))
  assert.Equal(t, []byte("GGCC"), s.At(1))
}

func TestOrderedStringSet2(t *testing.T) {
  s := EmptyOrderedStringSet()
  assert.Error(t, s.ReadFasta(strings.NewReader("ACGT\n")))

  s  = EmptyOrderedStringSet()
  assert.Error(t, s.ReadFasta(strings.NewReader(">a\nAC\n>a\nGT\n")))

  _, err := NewOrderedStringSet([]string{"a"}, nil)
  assert.Error(t, err)
}

func TestOrderedStringSet3(t *testing.T) {
  sequence := NewSequenceRng(5).Generate(200)
  s, err   := NewOrderedStringSet([]string{"random", "short"}, [][]byte{sequence, []byte("AC")})
  require.NoError(t, err)

  var buffer bytes.Buffer
  require.NoError(t, s.WriteFasta(&buffer))
  // 80 letters per line
  assert.Equal(t, 1+3+1+1, strings.Count(buffer.String(), "\n"))

  dir := t.TempDir()
  for _, compress := range []bool{false, true} {
    filename := filepath.Join(dir, "sequences.fa")
    require.NoError(t, s.ExportFasta(filename, compress))

    r := EmptyOrderedStringSet()
    require.NoError(t, r.ImportFasta(filename))
    assert.Equal(t, s.Seqnames, r.Seqnames)
    assert.Equal(t, sequence, r.Sequences["random"])
    assert.Equal(t, 2, r.Len())
  }
}
