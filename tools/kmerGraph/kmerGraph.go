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

package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"
import   "path/filepath"
import   "strconv"
import   "strings"
import   "time"

import   "github.com/pborman/getopt"
import   "github.com/pbenner/threadpool"

import . "github.com/pbenner/kmergraph"
import   "github.com/pbenner/kmergraph/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Canonical bool
  Check     bool
  Compress  bool
  Input     string
  OutputDir string
  Seed      int64
  Threads   int
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func readInt(reader *bufio.Reader, writer io.Writer, prompt string) (int, error) {
  fmt.Fprintln(writer, prompt)
  line, err := reader.ReadString('\n')
  if err != nil && !(err == io.EOF && len(line) > 0) {
    return 0, fmt.Errorf("reading input failed: %w", err)
  }
  n, err := strconv.Atoi(strings.TrimSpace(line))
  if err != nil || n < 0 {
    return 0, fmt.Errorf("please type a number: `%s'", strings.TrimSpace(line))
  }
  return n, nil
}

/* -------------------------------------------------------------------------- */

// Generate the sequence in chunks, so that progress can be reported
// for long sequences.
func randomSequence(config Config, n int) []byte {
  rng := NewSequenceRng(config.Seed)
  if config.Verbose < 2 {
    return rng.Generate(n)
  }
  r := make([]byte, n)
  p := progress.New(n, 100)
  PrintStderr(config, 2, "Generating random sequence of length %d...\n", n)
  for i := 0; i < n; i += p.K {
    p.Print(os.Stderr, i)
    rng.Fill(r[i:min(i+p.K, n)])
  }
  p.Print(os.Stderr, n)
  return r
}

func generateSequence(config Config, reader *bufio.Reader, writer io.Writer) ([]byte, error) {
  n, err := readInt(reader, writer, "Enter the length of the DNA sequence:")
  if err != nil {
    return nil, err
  }
  filename := filepath.Join(config.OutputDir, "random_dna_sequence.txt")
  sequence := randomSequence(config, n)

  if err := ExportSequence(filename, sequence, config.Compress); err != nil {
    log.Printf("Failed to write DNA sequence to file: %v", err)
  } else {
    fmt.Fprintf(writer, "DNA sequence saved to %s\n", filename)
  }
  PrintStderr(config, 1, "Reading sequence `%s'... ", filename)
  if s, err := ImportSequence(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    return nil, fmt.Errorf("Failed to read DNA sequence from file: %w", err)
  } else {
    PrintStderr(config, 1, "done\n")
    sequence = s
  }
  return sequence, nil
}

func importSequence(config Config) ([]byte, error) {
  s := EmptyOrderedStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", config.Input)
  if err := s.ImportFasta(config.Input); err != nil {
    PrintStderr(config, 1, "failed\n")
    return nil, err
  }
  PrintStderr(config, 1, "done\n")
  if s.Len() == 0 {
    return nil, fmt.Errorf("fasta file `%s' does not contain any sequences", config.Input)
  }
  if s.Len() > 1 {
    PrintStderr(config, 1, "Using first sequence `%s'\n", s.Seqnames[0])
  }
  return s.At(0), nil
}

/* -------------------------------------------------------------------------- */

// Each artifact is written independently, a failure is reported and
// the remaining artifacts are still written.
func exportArtifact(config Config, writer io.Writer, what, filename string, export func(string) error) bool {
  PrintStderr(config, 1, "Writing %s to `%s'... ", what, filename)
  if err := export(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Printf("Failed to write %s to `%s': %v", what, filename, err)
    return false
  }
  PrintStderr(config, 1, "done\n")
  fmt.Fprintf(writer, "%s saved to %s\n", what, filename)
  return true
}

func printProfile(writer io.Writer, profile KmerProfile) {
  for it := profile.Counts.Iterate(); it.Ok(); it.Next() {
    fmt.Fprintf(writer, "%s: %d\n", it.GetKmer(), it.GetCount())
  }
  if err := profile.Graph.WriteTable(writer); err != nil {
    log.Print(err)
  }
}

/* -------------------------------------------------------------------------- */

// Reads the sequence length (unless a fasta file is given) and k from
// stdin and writes all artifacts to the output directory. Failed
// artifacts do not abort the run, their number is returned.
func kmerGraph(config Config, stdin io.Reader, stdout io.Writer) (int, error) {
  var sequence []byte
  var err      error

  reader := bufio.NewReader(stdin)
  if config.Input == "" {
    sequence, err = generateSequence(config, reader, stdout)
  } else {
    sequence, err = importSequence(config)
  }
  if err != nil {
    return 0, err
  }
  if config.Check {
    if err := CheckSequence(sequence); err != nil {
      return 0, err
    }
  }
  k, err := readInt(reader, stdout, "Enter the size of k-mer:")
  if err != nil {
    return 0, err
  }
  builder := GraphBuilder(NewKmerGraph)
  if config.Canonical {
    builder = NewDeBruijnGraph
  }
  pool := threadpool.New(config.Threads, 100*config.Threads)

  profile, err := NewKmerProfile(pool, sequence, k, builder)
  if err != nil {
    return 0, err
  }
  PrintStderr(config, 1, "Extracted %d k-mers (%d distinct, %d nodes)\n", profile.Len(), profile.Counts.Len(), len(profile.Graph))

  failed := 0
  export := func(what, name string, f func(string) error) {
    if !exportArtifact(config, stdout, what, filepath.Join(config.OutputDir, name), f) {
      failed++
    }
  }
  export("K-mer histogram", "kmer_histogram.png", profile.Counts.ExportHistogram)
  printProfile(stdout, profile)
  export("De Bruijn graph (dot)", "de_bruijn_graph.dot", profile.Materialize().ExportDot)
  export("K-mer counts", "kmer_counts.csv", profile.Counts.ExportCsv)
  export("De Bruijn graph", "de_bruijn_graph.csv", profile.Graph.ExportCsv)

  return failed, nil
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optCanonical := options.   BoolLong("canonical",  0 ,                     "connect (k-1)-prefixes to (k-1)-suffixes instead of last letters")
  optCheck     := options.   BoolLong("check",      0 ,                     "check that the sequence contains only A, C, G, and T (case insensitive)")
  optCompress  := options.   BoolLong("compress",   0 ,                     "gzip the generated sequence file")
  optInput     := options. StringLong("input",     'i', "",                 "read sequence from fasta file instead of generating a random sequence")
  optOutputDir := options. StringLong("output-dir",'o', ".",                "directory for output files")
  optSeed      := options.  Int64Long("seed",       0 , time.Now().UnixNano(), "random seed [default: current time]")
  optThreads   := options.    IntLong("threads",    0 ,  2,                 "number of threads [default: 2]")
  optVerbose   := options.CounterLong("verbose",   'v',                     "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",      'h',                     "print help")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optThreads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Canonical = *optCanonical
  config.Check     = *optCheck
  config.Compress  = *optCompress
  config.Input     = *optInput
  config.OutputDir = *optOutputDir
  config.Seed      = *optSeed
  config.Threads   = *optThreads
  config.Verbose   = *optVerbose

  if _, err := kmerGraph(config, os.Stdin, os.Stdout); err != nil {
    log.Fatal(err)
  }
}
