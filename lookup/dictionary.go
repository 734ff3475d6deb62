package lookup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

const (
	AspectColumn  = "aspect"
	KeywordColumn = "keyword"

	DefaultScheme = AspectColumn + "|" + KeywordColumn
)

var ErrScheme = errors.New("keyword scheme must name aspect and keyword columns")

// Dictionary holds the keyword index of one configuration.
type Dictionary struct {
	Name  string
	index KeywordIndex
	// single token keywords, for substring matching
	singles []*KeywordTerm
}

func (dict *Dictionary) Lookup(words []*string) MapListIterator {
	return CreateMapListIterator(dict.index, words)
}

// TermCount is the number of indexed keyword terms.
func (dict *Dictionary) TermCount() int {
	count := 0
	for _, terms := range dict.index {
		count += len(terms)
	}
	return count
}

// Aspects lists the aspects that own at least one keyword.
func (dict *Dictionary) Aspects() []string {
	set := make(map[string]bool)
	for _, terms := range dict.index {
		for _, term := range terms {
			set[*term.Aspect] = true
		}
	}
	result := make([]string, 0, len(set))
	for aspect := range set {
		result = append(result, aspect)
	}
	sort.Strings(result)
	return result
}

func newDictionary(name string, index KeywordIndex) *Dictionary {
	dict := &Dictionary{Name: name, index: index}
	for _, terms := range index {
		for _, term := range terms {
			if term.GetTokenCount() == 1 {
				dict.singles = append(dict.singles, term)
			}
		}
	}
	sort.Slice(dict.singles, func(i, j int) bool {
		if *dict.singles[i].Aspect != *dict.singles[j].Aspect {
			return *dict.singles[i].Aspect < *dict.singles[j].Aspect
		}
		return dict.singles[i].Keyword < dict.singles[j].Keyword
	})
	return dict
}

type keywordEntry struct {
	aspect  string
	keyword string
}

// CreateDictionary builds the keyword index of a configuration from its
// inline aspects and its keyword file. With a cache directory the index is
// read from, or written to, a JSON file named by the hash of its sources.
func CreateDictionary(cfg types.Configuration, dictDir string, cacheDir string) (*Dictionary, error) {
	dictLogger := logger.NewLogger("Dictionary loader").With().
		Str("config_name", cfg.Name).
		Str("path", cfg.Params.Lookup.KeywordDictionary).Logger()
	errLogger := dictLogger.With().Caller().Logger()
	dictLogger.Info().Msg("Started loading")

	idxCachePath := ""
	if len(cacheDir) > 0 {
		var err error
		idxCachePath, err = IndexCachePath(cfg, dictDir, cacheDir)
		if err != nil {
			errLogger.Err(err).Msg("Could not create index cache path")
			return nil, err
		}
		dictLogger = dictLogger.With().Str("index_cache_path", idxCachePath).Logger()
	}

	if len(idxCachePath) > 0 {
		if cached, err := os.ReadFile(idxCachePath); err == nil {
			dictLogger.Info().Msg("Loading index from cache")
			index := make(KeywordIndex)
			if err := index.UnmarshalJSON(cached); err != nil {
				return nil, fmt.Errorf("index cache %s: %w", idxCachePath, err)
			}
			dict := newDictionary(cfg.Name, index)
			dictLogger.Info().Msgf("%d terms were loaded", dict.TermCount())
			return dict, nil
		}
	}

	dictLogger.Info().Msg("Building new index")
	entries, err := readKeywords(cfg, dictDir, &errLogger)
	if err != nil {
		return nil, err
	}
	index := buildIndex(entries)

	if len(idxCachePath) > 0 {
		if err := writeIndexCache(idxCachePath, index); err != nil {
			// the index is usable without its cache
			errLogger.Err(err).Msg("Could not write index cache")
		}
	}

	dict := newDictionary(cfg.Name, index)
	dictLogger.Info().Msgf("%d terms were loaded", dict.TermCount())
	return dict, nil
}

// BuildIndexCache writes the index cache of a configuration and returns its path.
func BuildIndexCache(cfg types.Configuration, dictDir string, cacheDir string) (string, int, error) {
	errLogger := logger.NewLogger("Index builder").With().Str("config_name", cfg.Name).Caller().Logger()

	idxCachePath, err := IndexCachePath(cfg, dictDir, cacheDir)
	if err != nil {
		return "", 0, err
	}
	entries, err := readKeywords(cfg, dictDir, &errLogger)
	if err != nil {
		return "", 0, err
	}
	index := buildIndex(entries)
	if err := writeIndexCache(idxCachePath, index); err != nil {
		return "", 0, err
	}
	return idxCachePath, newDictionary(cfg.Name, index).TermCount(), nil
}

func buildIndex(entries []keywordEntry) KeywordIndex {
	tokenize := NewTermTokenizer()
	store := utils.GlobalStringStore()

	aspects := make(map[string]*string)
	seen := make(map[uint64]bool)
	var terms []*KeywordTerm
	for _, entry := range entries {
		tokens := tokenize(entry.keyword)
		if len(tokens) == 0 {
			continue
		}

		aspect, ok := aspects[entry.aspect]
		if !ok {
			name := entry.aspect
			aspect = &name
			aspects[name] = aspect
		}

		term := &KeywordTerm{
			Tokens:     store.GetPointers(tokens),
			Aspect:     aspect,
			Keyword:    strings.ToLower(entry.keyword),
			TextLength: uint32(len(entry.keyword)),
		}
		hash := term.GetHashCode()
		if seen[hash] {
			continue
		}
		seen[hash] = true
		terms = append(terms, term)
	}
	return createKeywordIndex(terms)
}

func readKeywords(cfg types.Configuration, dictDir string, errLogger *zerolog.Logger) ([]keywordEntry, error) {
	var entries []keywordEntry
	for _, aspect := range cfg.AspectNames() {
		for _, keyword := range cfg.Aspects[aspect] {
			keyword = strings.TrimSpace(keyword)
			if len(keyword) > 0 {
				entries = append(entries, keywordEntry{aspect: aspect, keyword: keyword})
			}
		}
	}

	dictPath := cfg.Params.Lookup.KeywordDictionary
	if len(dictPath) == 0 {
		return entries, nil
	}

	aspectIdx, keywordIdx, err := schemeColumns(cfg.Params.Lookup.KeywordScheme)
	if err != nil {
		return nil, err
	}
	getHash := func(columns []string) uint64 {
		if len(columns) <= aspectIdx || len(columns) <= keywordIdx {
			return 0
		}
		return utils.HashString(columns[aspectIdx] + "_" + columns[keywordIdx])
	}

	reader, err := utils.NewBSVReader(resolvePath(dictDir, dictPath), getHash)
	if err != nil {
		errLogger.Err(err).Msg("Could not create BSV reader")
		return nil, err
	}
	for columns := range reader {
		if len(columns) <= aspectIdx || len(columns) <= keywordIdx {
			errLogger.Warn().Strs("columns", columns).Msg("Skipping short row")
			continue
		}
		entries = append(entries, keywordEntry{aspect: columns[aspectIdx], keyword: columns[keywordIdx]})
	}
	return entries, nil
}

func schemeColumns(scheme string) (int, int, error) {
	if len(scheme) == 0 {
		scheme = DefaultScheme
	}
	aspectIdx, keywordIdx := -1, -1
	for i, column := range strings.Split(scheme, "|") {
		switch strings.ToLower(strings.TrimSpace(column)) {
		case AspectColumn:
			aspectIdx = i
		case KeywordColumn:
			keywordIdx = i
		}
	}
	if aspectIdx < 0 || keywordIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrScheme, scheme)
	}
	return aspectIdx, keywordIdx, nil
}

func resolvePath(dictDir string, dictPath string) string {
	if filepath.IsAbs(dictPath) || len(dictDir) == 0 {
		return dictPath
	}
	return filepath.Join(dictDir, dictPath)
}

// IndexCachePath names the cache file by the murmur3 hash of the keyword
// file contents and the inline aspects.
func IndexCachePath(cfg types.Configuration, dictDir string, cacheDir string) (string, error) {
	toHash := [][]byte{[]byte(strconv.FormatUint(cfg.GetHashCode(), 10))}
	if dictPath := cfg.Params.Lookup.KeywordDictionary; len(dictPath) > 0 {
		contents, err := os.ReadFile(resolvePath(dictDir, dictPath))
		if err != nil {
			return "", err
		}
		toHash = append(toHash, contents)
	}
	hash := strconv.FormatUint(utils.HashBytes(toHash...), 10)
	return filepath.Join(cacheDir, cfg.Name+"_"+hash+".json"), nil
}

func writeIndexCache(idxCachePath string, index KeywordIndex) error {
	data, err := index.MarshalJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(idxCachePath), 0700); err != nil {
		return err
	}
	return os.WriteFile(idxCachePath, data, 0600)
}
