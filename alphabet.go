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

type NucleotideAlphabet struct {
}

/* -------------------------------------------------------------------------- */

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 0, nil
  case 'C': fallthrough
  case 'c': return 1, nil
  case 'G': fallthrough
  case 'g': return 2, nil
  case 'T': fallthrough
  case 't': return 3, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

// Decode returns upper case letters, since generated sequences are
// written in upper case.
func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'G', nil
  case 3:  return 'T', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// Check that all letters of the sequence are part of the nucleotide
// alphabet. Lower case letters are accepted.
func CheckSequence(sequence []byte) error {
  al := NucleotideAlphabet{}
  for i := 0; i < len(sequence); i++ {
    if _, err := al.Code(sequence[i]); err != nil {
      return fmt.Errorf("CheckSequence(): `%c' at position %d: %w", sequence[i], i, ErrInvalidSequence)
    }
  }
  return nil
}
