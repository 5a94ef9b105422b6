package httpbuster

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// CandidateSource is a forward-only sequence of candidate paths.
// It follows the bufio.Scanner protocol: call Scan until it returns false, then check Err.
type CandidateSource interface {
	Scan() bool
	Candidate() string
	Err() error
}

// Wordlist streams permutations of the words in a wordlist file.
// Only the candidates of one line are held in memory at a time, so wordlists of any size are handled in constant memory.
// A Wordlist makes a single pass over the file and cannot be rewound.
type Wordlist struct {
	Path      string
	BaseCount int
	Spec      PermutationSpec

	file    *os.File
	reader  *bufio.Reader
	pending []string
	current string
	done    bool
	err     error
}

// OpenWordlist counts the lines in the wordlist at path and opens it for streaming.
func OpenWordlist(path string, spec PermutationSpec) (*Wordlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	count, err := CountLines(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	// Move back to the head of the file
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, err
	}

	return &Wordlist{
		Path:      path,
		BaseCount: count,
		Spec:      spec.withDefaults(),
		file:      file,
		reader:    bufio.NewReader(file),
	}, nil
}

// TotalCount is the estimated number of candidates the wordlist will produce.
func (w *Wordlist) TotalCount() int {
	return w.Spec.TotalCount(w.BaseCount)
}

// Scan advances to the next candidate, reading another line from the file only when the current line's candidates are used up.
func (w *Wordlist) Scan() bool {
	for len(w.pending) == 0 {
		if w.done {
			return false
		}

		line, err := w.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			w.err = err
			w.done = true
			return false
		}

		if err == io.EOF {
			w.done = true
			// A final line without a line break still counts, as long as it isn't empty.
			if line == "" {
				return false
			}
		}

		w.pending = expandLine(trimNewline(line), w.Spec)
	}

	w.current = w.pending[0]
	w.pending = w.pending[1:]
	return true
}

// Candidate returns the candidate produced by the last call to Scan.
func (w *Wordlist) Candidate() string {
	return w.current
}

// Err returns the first read error encountered by Scan.
func (w *Wordlist) Err() error {
	return w.err
}

// Close closes the underlying file.
func (w *Wordlist) Close() error {
	return w.file.Close()
}

// CountLines returns the number of lines in r, including a final line with no line break.
func CountLines(r io.Reader) (int, error) {
	var count int
	const lineBreak = '\n'

	buf := make([]byte, bufio.MaxScanTokenSize)
	var last byte = lineBreak

	for {
		bufferSize, err := r.Read(buf)
		if err != nil && err != io.EOF {
			return 0, err
		}

		if bufferSize > 0 {
			count += bytes.Count(buf[:bufferSize], []byte{lineBreak})
			last = buf[bufferSize-1]
		}

		if err == io.EOF {
			break
		}
	}

	if last != lineBreak {
		count++
	}

	return count, nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
