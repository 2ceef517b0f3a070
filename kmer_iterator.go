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

/* -------------------------------------------------------------------------- */

// Sliding window over a sequence. The iterator can be restarted with
// Reset(), so that several consumers may replay the same k-mers.
type KmerIterator struct {
  c []byte
  k   int
  i   int
}

func NewKmerIterator(sequence []byte, k int) (KmerIterator, error) {
  if err := checkWindowSize(len(sequence), k); err != nil {
    return KmerIterator{}, err
  }
  return KmerIterator{c: sequence, k: k}, nil
}

/* -------------------------------------------------------------------------- */

func (obj KmerIterator) Get() Kmer {
  return Kmer(obj.c[obj.i:obj.i+obj.k])
}

// Start position of the current k-mer.
func (obj KmerIterator) Position() int {
  return obj.i
}

func (obj KmerIterator) Ok() bool {
  return obj.i+obj.k <= len(obj.c)
}

func (obj *KmerIterator) Next() {
  obj.i++
}

func (obj *KmerIterator) Reset() {
  obj.i = 0
}

// Number of k-mers produced by a full pass.
func (obj KmerIterator) Len() int {
  return len(obj.c)-obj.k+1
}

/* -------------------------------------------------------------------------- */

// Extract all overlapping k-mers of the sequence in sliding window
// order, i.e. exactly n-k+1 k-mers for a sequence of length n.
func ExtractKmers(sequence []byte, k int) (KmerList, error) {
  it, err := NewKmerIterator(sequence, k)
  if err != nil {
    return nil, err
  }
  r := make(KmerList, 0, it.Len())
  for ; it.Ok(); it.Next() {
    r = append(r, it.Get())
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

func checkWindowSize(n, k int) error {
  if k < 1 || k > n {
    return fmt.Errorf("k-mer size %d for sequence of length %d: %w", k, n, ErrInvalidWindowSize)
  }
  return nil
}
