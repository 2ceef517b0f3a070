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

// Frequencies of k-mers. Iteration order is not defined, use Kmers()
// to obtain a sorted list of keys.
type KmerCounts map[Kmer]int

/* -------------------------------------------------------------------------- */

func CountKmers(kmers KmerList) KmerCounts {
  r := make(KmerCounts)
  for _, kmer := range kmers {
    r[kmer] += 1
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Number of distinct k-mers.
func (obj KmerCounts) Len() int {
  return len(obj)
}

// Total number of k-mers.
func (obj KmerCounts) Sum() int {
  s := 0
  for _, c := range obj {
    s += c
  }
  return s
}

func (obj KmerCounts) Max() int {
  m := 0
  for _, c := range obj {
    m = iMax(m, c)
  }
  return m
}

func (obj KmerCounts) GetCount(kmer Kmer) int {
  return obj[kmer]
}

func (obj KmerCounts) Kmers() KmerList {
  r := make(KmerList, 0, len(obj))
  for kmer := range obj {
    r = append(r, kmer)
  }
  r.Sort()
  return r
}

func (obj KmerCounts) Equals(b KmerCounts) bool {
  if len(obj) != len(b) {
    return false
  }
  for kmer, c := range obj {
    if d, ok := b[kmer]; !ok || c != d {
      return false
    }
  }
  return true
}

/* -------------------------------------------------------------------------- */

func (obj KmerCounts) Iterate() KmerCountsIterator {
  return KmerCountsIterator{kmers: obj.Kmers(), counts: obj}
}

// Iterate over k-mer counts in lexicographic order.
type KmerCountsIterator struct {
  kmers  KmerList
  counts KmerCounts
  i      int
}

func (obj KmerCountsIterator) Ok() bool {
  return obj.i < len(obj.kmers)
}

func (obj KmerCountsIterator) GetKmer() Kmer {
  return obj.kmers[obj.i]
}

func (obj KmerCountsIterator) GetCount() int {
  return obj.counts[obj.kmers[obj.i]]
}

// Position of the current k-mer in the enumeration.
func (obj KmerCountsIterator) Index() int {
  return obj.i
}

func (obj *KmerCountsIterator) Next() {
  obj.i++
}
