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
import "bytes"
import "compress/gzip"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Close(); err != nil {
      return err
    }
  } else {
    w := bufio.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    if err := w.Flush(); err != nil {
      return err
    }
  }
  return os.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

type gzipFile struct {
  *gzip.Reader
  f *os.File
}

func (obj gzipFile) Close() error {
  obj.Reader.Close()
  return obj.f.Close()
}

// Open a file for reading, gzipped files are decompressed on the fly.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if !isGzip(filename) {
    return f, nil
  }
  g, err := gzip.NewReader(f)
  if err != nil {
    f.Close()
    return nil, err
  }
  return gzipFile{g, f}, nil
}
