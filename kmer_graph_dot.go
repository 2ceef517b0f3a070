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
import "io"
import "os"

import "gonum.org/v1/gonum/graph"
import "gonum.org/v1/gonum/graph/encoding"
import "gonum.org/v1/gonum/graph/encoding/dot"
import "gonum.org/v1/gonum/graph/multi"

/* -------------------------------------------------------------------------- */

type dotNode struct {
  id   int64
  name string
}

func (obj dotNode) ID() int64 {
  return obj.id
}

func (obj dotNode) Attributes() []encoding.Attribute {
  return []encoding.Attribute{{Key: "label", Value: obj.name}}
}

/* -------------------------------------------------------------------------- */

// Convert to a gonum multigraph. Node IDs are arena indices.
func (obj MaterializedGraph) Multigraph() *multi.UndirectedGraph {
  g     := multi.NewUndirectedGraph()
  nodes := make([]graph.Node, len(obj.Nodes))
  for i, name := range obj.Nodes {
    nodes[i] = dotNode{id: int64(i), name: name}
    g.AddNode(nodes[i])
  }
  for _, e := range obj.Edges {
    g.SetLine(g.NewLine(nodes[e[0]], nodes[e[1]]))
  }
  return g
}

/* -------------------------------------------------------------------------- */

// Write the graph in DOT format. Edges are undirected and unlabeled, one
// statement per edge.
func (obj MaterializedGraph) WriteDot(writer io.Writer) error {
  b, err := dot.MarshalMulti(obj.Multigraph(), "", "", "  ")
  if err != nil {
    return fmt.Errorf("WriteDot(): %w", err)
  }
  if _, err := writer.Write(b); err != nil {
    return err
  }
  _, err = fmt.Fprintln(writer)
  return err
}

func (obj MaterializedGraph) ExportDot(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  if err := obj.WriteDot(w); err != nil {
    return err
  }
  if err := w.Flush(); err != nil {
    return err
  }
  return f.Close()
}
