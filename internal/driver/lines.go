package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is one expression read from a batch file.
type Line struct {
	No   int // 1-based line number in the source file
	Text string
}

// ReadLines reads one expression per line. CRLF endings are normalized and
// blank lines are skipped; line numbers still count them.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{No: no, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}
