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

func TestMaterializedGraphDot1(t *testing.T) {
  graph := NewKmerGraph(KmerList{"ACG", "CGT", "GTA", "TAC", "ACG", "CGT"})
  g     := NewMaterializedGraph(graph)

  var buffer bytes.Buffer
  require.NoError(t, g.WriteDot(&buffer))

  s := buffer.String()
  assert.True(t, strings.HasPrefix(s, "graph {"), s)
  assert.Equal(t, g.NEdges(), strings.Count(s, " -- "))
  assert.Equal(t, g.NNodes(), strings.Count(s, "label="))
  assert.NotContains(t, s, "->")
  for _, node := range g.Nodes {
    assert.Contains(t, s, "label="+node)
  }
}

func TestMaterializedGraphDot2(t *testing.T) {
  kmers, err := ExtractKmers([]byte("GATTACA"), 3)
  require.NoError(t, err)

  g        := NewKmerGraph(kmers)
  filename := filepath.Join(t.TempDir(), "graph.dot")
  require.NoError(t, NewMaterializedGraph(g).ExportDot(filename))

  b, err := os.ReadFile(filename)
  require.NoError(t, err)
  assert.Equal(t, len(kmers), strings.Count(string(b), " -- "))
}

func TestMaterializedGraphDot3(t *testing.T) {
  g := NewMaterializedGraph(NewKmerGraph(KmerList{"A"}))
  assert.Error(t, g.ExportDot(filepath.Join(t.TempDir(), "missing", "graph.dot")))
}
