package sentiment

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	lexiconFile      = "resources/vader_lexicon.txt"
	emojiLexiconFile = "resources/emoji_utf8_lexicon.txt"
)

//go:embed resources
var resources embed.FS

// Lexicon holds word valences and emoji descriptions.
type Lexicon struct {
	Words  map[string]float64
	Emojis map[string]string
}

// DefaultLexicon returns the bundled seed lexicon.
func DefaultLexicon() (*Lexicon, error) {
	words, err := resources.Open(lexiconFile)
	if err != nil {
		return nil, err
	}
	defer words.Close()

	emojis, err := resources.Open(emojiLexiconFile)
	if err != nil {
		return nil, err
	}
	defer emojis.Close()

	return readLexicons(words, emojis)
}

// LoadLexicon reads a lexicon file in the tab separated "token<TAB>mean[<TAB>...]"
// format. An empty emoji path keeps the bundled emoji descriptions.
func LoadLexicon(lexiconPath string, emojiPath string) (*Lexicon, error) {
	words, err := os.Open(lexiconPath)
	if err != nil {
		return nil, err
	}
	defer words.Close()

	var emojis io.ReadCloser
	if len(emojiPath) > 0 {
		emojis, err = os.Open(emojiPath)
	} else {
		emojis, err = resources.Open(emojiLexiconFile)
	}
	if err != nil {
		return nil, err
	}
	defer emojis.Close()

	return readLexicons(words, emojis)
}

func readLexicons(words io.Reader, emojis io.Reader) (*Lexicon, error) {
	wordMap, err := ReadLexicon(words)
	if err != nil {
		return nil, err
	}
	emojiMap, err := ReadEmojiLexicon(emojis)
	if err != nil {
		return nil, err
	}
	return &Lexicon{Words: wordMap, Emojis: emojiMap}, nil
}

func ReadLexicon(r io.Reader) (map[string]float64, error) {
	lexicon := make(map[string]float64)
	err := scanTabular(r, func(lineNo int, fields []string) error {
		measure, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return fmt.Errorf("lexicon line %d: %w", lineNo, err)
		}
		lexicon[fields[0]] = measure
		return nil
	})
	return lexicon, err
}

func ReadEmojiLexicon(r io.Reader) (map[string]string, error) {
	lexicon := make(map[string]string)
	err := scanTabular(r, func(_ int, fields []string) error {
		lexicon[fields[0]] = strings.TrimSpace(fields[1])
		return nil
	})
	return lexicon, err
}

func scanTabular(r io.Reader, handle func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected tab separated fields, got %q", lineNo, line)
		}
		if err := handle(lineNo, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}
