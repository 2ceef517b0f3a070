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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Constructor of an adjacency graph, either NewKmerGraph or
// NewDeBruijnGraph.
type GraphBuilder func(kmers KmerList) KmerGraph

// K-mers of a sequence together with their frequencies and adjacency
// graph.
type KmerProfile struct {
  K      int
  Kmers  KmerList
  Counts KmerCounts
  Graph  KmerGraph
}

/* -------------------------------------------------------------------------- */

// Extract k-mers from the sequence and compute counts and graph as two
// independent jobs of the thread pool. The k-mer list is shared read-only
// between both jobs. An invalid window size aborts before any job is
// started. If builder is nil, NewKmerGraph is used.
func NewKmerProfile(pool threadpool.ThreadPool, sequence []byte, k int, builder GraphBuilder) (KmerProfile, error) {
  if builder == nil {
    builder = NewKmerGraph
  }
  kmers, err := ExtractKmers(sequence, k)
  if err != nil {
    return KmerProfile{}, err
  }
  r := KmerProfile{K: k, Kmers: kmers}
  g := pool.NewJobGroup()
  if err := pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
    r.Counts = CountKmers(kmers)
    return nil
  }); err != nil {
    return KmerProfile{}, err
  }
  if err := pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
    r.Graph = builder(kmers)
    return nil
  }); err != nil {
    return KmerProfile{}, err
  }
  if err := pool.Wait(g); err != nil {
    return KmerProfile{}, err
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

// Number of k-mers, i.e. n-k+1 for a sequence of length n.
func (obj KmerProfile) Len() int {
  return len(obj.Kmers)
}

func (obj KmerProfile) Materialize() MaterializedGraph {
  return NewMaterializedGraph(obj.Graph)
}
