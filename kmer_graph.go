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

import "fmt"
import "io"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// Adjacency structure of k-mers. Each node is the (k-1)-prefix of a
// k-mer and each entry of its list the last letter of that k-mer (see
// NewKmerGraph). Lists contain one entry per k-mer occurrence.
type KmerGraph map[string][]string

/* -------------------------------------------------------------------------- */

// Construct the adjacency graph from an ordered list of k-mers. The
// node key of a k-mer is its prefix of length k-1 and the edge label its
// last letter. Labels are always appended, i.e. a node visited twice by
// the same k-mer has two identical entries. For k = 1 all k-mers are
// attached to the empty node key.
func NewKmerGraph(kmers KmerList) KmerGraph {
  r := make(KmerGraph)
  for _, kmer := range kmers {
    node := kmer.Prefix()
    r[node] = append(r[node], kmer.Label())
  }
  return r
}

// Construct a De Bruijn graph where both endpoints of an edge are
// (k-1)-mers, i.e. the prefix of a k-mer is connected to its suffix.
// Multiple occurrences of a k-mer result in multiple edges.
func NewDeBruijnGraph(kmers KmerList) KmerGraph {
  r := make(KmerGraph)
  for _, kmer := range kmers {
    node := kmer.Prefix()
    r[node] = append(r[node], kmer.Suffix())
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Sorted list of node keys.
func (obj KmerGraph) Nodes() []string {
  r := make([]string, 0, len(obj))
  for node := range obj {
    r = append(r, node)
  }
  sort.Strings(r)
  return r
}

// Total number of edges, which equals the number of k-mers the graph
// was constructed from.
func (obj KmerGraph) NEdges() int {
  n := 0
  for _, edges := range obj {
    n += len(edges)
  }
  return n
}

// Edge labels of a node in insertion order, nil for unknown nodes.
func (obj KmerGraph) Edges(node string) []string {
  return obj[node]
}

func (obj KmerGraph) Equals(b KmerGraph) bool {
  if len(obj) != len(b) {
    return false
  }
  for node, edges1 := range obj {
    edges2, ok := b[node]
    if !ok || len(edges1) != len(edges2) {
      return false
    }
    for i := 0; i < len(edges1); i++ {
      if edges1[i] != edges2[i] {
        return false
      }
    }
  }
  return true
}

/* -------------------------------------------------------------------------- */

// Human readable representation, one node per line.
func (obj KmerGraph) WriteTable(writer io.Writer) error {
  for _, node := range obj.Nodes() {
    if _, err := fmt.Fprintf(writer, "%s -> [%s]\n", node, strings.Join(obj.Edges(node), " ")); err != nil {
      return err
    }
  }
  return nil
}

func (obj KmerGraph) String() string {
  var builder strings.Builder
  obj.WriteTable(&builder)
  return builder.String()
}
