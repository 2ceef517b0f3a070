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
import "encoding/csv"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Write k-mer counts as comma separated table with header `K-mer,Count'.
// Rows are sorted by k-mer.
func (obj KmerCounts) WriteCsv(writer io.Writer) error {
  w := csv.NewWriter(writer)
  if err := w.Write([]string{"K-mer", "Count"}); err != nil {
    return err
  }
  for it := obj.Iterate(); it.Ok(); it.Next() {
    if err := w.Write([]string{it.GetKmer().String(), strconv.Itoa(it.GetCount())}); err != nil {
      return err
    }
  }
  w.Flush()
  return w.Error()
}

func (obj KmerCounts) ExportCsv(filename string) error {
  return exportTable(filename, obj.WriteCsv)
}

/* -------------------------------------------------------------------------- */

// Write the adjacency graph as comma separated table with header
// `Node,Connected Nodes'. The second column contains the edge labels of
// a node joined by `, '.
func (obj KmerGraph) WriteCsv(writer io.Writer) error {
  w := csv.NewWriter(writer)
  if err := w.Write([]string{"Node", "Connected Nodes"}); err != nil {
    return err
  }
  for _, node := range obj.Nodes() {
    if err := w.Write([]string{node, strings.Join(obj.Edges(node), ", ")}); err != nil {
      return err
    }
  }
  w.Flush()
  return w.Error()
}

func (obj KmerGraph) ExportCsv(filename string) error {
  return exportTable(filename, obj.WriteCsv)
}

/* -------------------------------------------------------------------------- */

func exportTable(filename string, write func(io.Writer) error) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  if err := write(w); err != nil {
    return err
  }
  if err := w.Flush(); err != nil {
    return err
  }
  return f.Close()
}
