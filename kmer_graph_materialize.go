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

//import "fmt"

/* -------------------------------------------------------------------------- */

// Explicit undirected multigraph. Node keys and edge labels of a
// KmerGraph both become nodes, stored in an arena in the order of first
// appearance. Edges are pairs of arena indices.
type MaterializedGraph struct {
  Nodes   []string
  Edges [][2]int
  index   map[string]int
}

/* -------------------------------------------------------------------------- */

// Node keys are visited in sorted order, so that the arena is identical
// for equal graphs.
func NewMaterializedGraph(graph KmerGraph) MaterializedGraph {
  r := MaterializedGraph{index: make(map[string]int)}
  for _, node := range graph.Nodes() {
    i := r.addNode(node)
    for _, label := range graph.Edges(node) {
      j := r.addNode(label)
      r.Edges = append(r.Edges, [2]int{i, j})
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (obj *MaterializedGraph) addNode(name string) int {
  if i, ok := obj.index[name]; ok {
    return i
  }
  i := len(obj.Nodes)
  obj.Nodes = append(obj.Nodes, name)
  obj.index[name] = i
  return i
}

// Arena index of a node, or -1 if the node does not exist.
func (obj MaterializedGraph) Index(name string) int {
  if i, ok := obj.index[name]; ok {
    return i
  }
  return -1
}

func (obj MaterializedGraph) NNodes() int {
  return len(obj.Nodes)
}

func (obj MaterializedGraph) NEdges() int {
  return len(obj.Edges)
}

// Number of edges incident to a node. Self-loops count twice.
func (obj MaterializedGraph) Degree(name string) int {
  i := obj.Index(name)
  if i < 0 {
    return 0
  }
  d := 0
  for _, e := range obj.Edges {
    if e[0] == i {
      d++
    }
    if e[1] == i {
      d++
    }
  }
  return d
}
