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
import "math/rand"

/* -------------------------------------------------------------------------- */

// Function of the desired length returning a new sequence.
type SequenceSource func(n int) []byte

/* -------------------------------------------------------------------------- */

// Draws nucleotides uniformly at random. The random number generator is
// owned by the SequenceRng, so that sequences are reproducible for a
// given seed.
type SequenceRng struct {
  rng *rand.Rand
  al   NucleotideAlphabet
}

func NewSequenceRng(seed int64) SequenceRng {
  return SequenceRng{rng: rand.New(rand.NewSource(seed))}
}

/* -------------------------------------------------------------------------- */

func (obj SequenceRng) Generate(n int) []byte {
  r := make([]byte, n)
  obj.Fill(r)
  return r
}

// Fill dst with random nucleotides. Filling a sequence in several
// chunks gives the same result as a single call to Generate.
func (obj SequenceRng) Fill(dst []byte) {
  for i := 0; i < len(dst); i++ {
    dst[i], _ = obj.al.Decode(byte(obj.rng.Intn(obj.al.Length())))
  }
}

func (obj SequenceRng) Source() SequenceSource {
  return obj.Generate
}
