package utils

import (
	"bufio"
	"fmt"
	"io/fs"
	"strings"

	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

func HashBytes(bytes ...[]byte) uint64 {
	hash := murmur3.New64()
	for _, b := range bytes {
		_, err := hash.Write(b)
		if err != nil {
			panic(err)
		}
	}
	return hash.Sum64()
}

func HashStrings(ss []string) []uint64 {
	hash := murmur3.New64()

	hashes := make([]uint64, len(ss))
	for i, s := range ss {
		hash.Reset()
		_, err := hash.Write([]byte(s))
		if err != nil {
			panic(err)
		}
		hashes[i] = hash.Sum64()
	}

	return hashes
}

func AbsInt(n int) int {
	if n >= 0 {
		return n
	}

	return -n
}

// ReadMap reads "key|value" lines. Blank lines and lines starting with # are skipped.
func ReadMap(fsys fs.FS, name string) (map[string]string, error) {
	result := make(map[string]string)
	err := scanLines(fsys, name, func(line string) error {
		p := strings.SplitN(line, "|", 2)
		if len(p) != 2 {
			return fmt.Errorf("%s: expected 2 columns in %q", name, line)
		}
		result[p[0]] = p[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func ReadSet(fsys fs.FS, name string) (map[string]bool, error) {
	result := make(map[string]bool)
	err := scanLines(fsys, name, func(line string) error {
		result[line] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func ReadList(fsys fs.FS, name string) ([]string, error) {
	var result []string
	err := scanLines(fsys, name, func(line string) error {
		result = append(result, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func scanLines(fsys fs.FS, name string, handle func(line string) error) error {
	file, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		if err := handle(line); err != nil {
			return err
		}
	}

	return scanner.Err()
}
