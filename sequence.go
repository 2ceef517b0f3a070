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

import "bytes"
import "io"

/* -------------------------------------------------------------------------- */

// Read a sequence verbatim, no trimming or validation is performed.
func ReadSequence(reader io.Reader) ([]byte, error) {
  return io.ReadAll(reader)
}

// Read a sequence file verbatim. Gzipped files are decompressed.
func ImportSequence(filename string) ([]byte, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  return ReadSequence(f)
}

/* -------------------------------------------------------------------------- */

func WriteSequence(writer io.Writer, sequence []byte) error {
  _, err := writer.Write(sequence)
  return err
}

// Write the sequence as raw bytes, optionally gzip compressed.
func ExportSequence(filename string, sequence []byte, compress bool) error {
  return writeFile(filename, bytes.NewReader(sequence), compress)
}
