package utils

import (
	"bufio"
	"io"
	"os"
	"path"
	"strings"

	"text2phenotype.com/absa/logger"
)

type GetHashFunc func(columns []string) uint64

// NewBSVReader streams the lowercased columns of a bar separated file,
// skipping comments and rows whose hash was already seen.
func NewBSVReader(bsvPath string, getHash GetHashFunc) (<-chan []string, error) {
	_, fileName := path.Split(bsvPath)
	bsvLogger := logger.NewLogger("BSVReader (" + fileName + ")")

	f, err := os.Open(bsvPath)
	if err != nil {
		return nil, err
	}

	out := make(chan []string)

	go func() {
		defer f.Close()
		defer close(out)

		r := bufio.NewReader(f)

		// to remove duplicates
		var hashes = make(map[uint64]bool)

		for {
			line, err := r.ReadString('\n')
			if len(line) == 0 {
				if err == io.EOF {
					break
				} else if err != nil {
					bsvLogger.Error().Err(err).Msg("Failed to read BSV file")
					return
				}
			}

			line = strings.ToLower(strings.TrimRight(line, "\r\n"))
			if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
				continue
			}
			columns := strings.Split(line, "|")
			for i := range columns {
				columns[i] = strings.TrimSpace(columns[i])
			}

			hash := getHash(columns)

			if !hashes[hash] {
				hashes[hash] = true
				out <- columns
			}
		}
	}()

	return out, nil
}
