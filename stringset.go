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
import "fmt"
import "io"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Named sequences in the order of their appearance in a fasta file.
type OrderedStringSet struct {
  Sequences map[string][]byte
  Seqnames  []string
}

/* -------------------------------------------------------------------------- */

func NewOrderedStringSet(seqnames []string, sequences [][]byte) (OrderedStringSet, error) {
  if len(seqnames) != len(sequences) {
    return OrderedStringSet{}, fmt.Errorf("NewOrderedStringSet(): invalid parameters")
  }
  r := EmptyOrderedStringSet()
  for i := 0; i < len(sequences); i++ {
    if err := r.add(seqnames[i], sequences[i]); err != nil {
      return OrderedStringSet{}, err
    }
  }
  return r, nil
}

func EmptyOrderedStringSet() OrderedStringSet {
  return OrderedStringSet{Sequences: make(map[string][]byte)}
}

/* -------------------------------------------------------------------------- */

func (obj *OrderedStringSet) add(name string, sequence []byte) error {
  if _, ok := obj.Sequences[name]; ok {
    return fmt.Errorf("sequence name `%s' occurred multiple times", name)
  }
  obj.Sequences[name] = sequence
  obj.Seqnames        = append(obj.Seqnames, name)
  return nil
}

func (obj OrderedStringSet) Len() int {
  return len(obj.Seqnames)
}

// Sequence at position i in file order.
func (obj OrderedStringSet) At(i int) []byte {
  return obj.Sequences[obj.Seqnames[i]]
}

/* -------------------------------------------------------------------------- */

func (obj *OrderedStringSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 1024*1024*1024)

  // current sequence
  name := ""
  seq  := []byte{}

  for scanner.Scan() {
    line := strings.TrimRight(scanner.Text(), "\r")
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if name != "" {
        if err := obj.add(name, seq); err != nil {
          return err
        }
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, line...)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  if name != "" {
    return obj.add(name, seq)
  }
  return nil
}

func (obj *OrderedStringSet) ImportFasta(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return obj.ReadFasta(f)
}

/* -------------------------------------------------------------------------- */

func (obj OrderedStringSet) WriteFasta(writer io.Writer) error {
  for _, name := range obj.Seqnames {
    seq := obj.Sequences[name]
    if _, err := fmt.Fprintf(writer,  ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := iMin(i+80, len(seq))
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj OrderedStringSet) ExportFasta(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteFasta(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
