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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "strings"

/* -------------------------------------------------------------------------- */

// Progress bar for a task of N steps, printed every K steps.
type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, 1, 40}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var builder strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  // carriage return
  builder.WriteString(lineDel)
  builder.WriteString("|")
  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      builder.WriteString(">")
    } else {
      builder.WriteString(" ")
    }
  }
  fmt.Fprintf(&builder, "| %6.2f%%", p*100)
  // add newline if finished
  if i >= progress.N {
    builder.WriteString("\n")
  }
  return builder.String()
}

// Print the progress bar at step i, but only at multiples of K and at
// the first and last step.
func (progress Progress) Print(writer io.Writer, i int) {
  if i == 0 || i == progress.N || i % progress.K == 0 {
    fmt.Fprint(writer, progress.Exec(i))
  }
}
