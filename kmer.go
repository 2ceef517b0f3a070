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
import "sort"

/* -------------------------------------------------------------------------- */

type Kmer string

/* -------------------------------------------------------------------------- */

func (obj Kmer) K() int {
  return len(obj)
}

// All but the last letter of the k-mer. For k = 1 this is the empty
// string.
func (obj Kmer) Prefix() string {
  return string(obj[0:len(obj)-1])
}

// The last letter of the k-mer.
func (obj Kmer) Label() string {
  return string(obj[len(obj)-1:])
}

// All but the first letter of the k-mer.
func (obj Kmer) Suffix() string {
  return string(obj[1:])
}

func (obj Kmer) String() string {
  return string(obj)
}

/* -------------------------------------------------------------------------- */

// Ordered list of k-mers as extracted from a sequence. Duplicates are
// kept.
type KmerList []Kmer

func (obj KmerList) Len() int {
  return len(obj)
}

func (obj KmerList) Less(i, j int) bool {
  return obj[i] < obj[j]
}

func (obj KmerList) Swap(i, j int) {
  obj[i], obj[j] = obj[j], obj[i]
}

func (obj KmerList) Sort() {
  sort.Sort(obj)
}

func (obj KmerList) Clone() KmerList {
  r := make(KmerList, len(obj))
  copy(r, obj)
  return r
}

func (obj KmerList) Equals(b KmerList) bool {
  if len(obj) != len(b) {
    return false
  }
  for i := 0; i < len(obj); i++ {
    if obj[i] != b[i] {
      return false
    }
  }
  return true
}
