package types

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/utils"
)

const (
	// pipeline type
	AspectSentimentPipeline = "aspect_sentiment"
	TokenAttributesPipeline = "token_attributes"

	// match modes
	MatchModeLemma     = "lemma"
	MatchModeSubstring = "substring"
	MatchModeBoth      = "both"

	// features
	NegationFeature       = "negation"
	SentenceScoresFeature = "sentence_scores"
)

var (
	ErrPipelineType = errors.New("wrong pipeline type")
	ErrMatchMode    = errors.New("wrong match mode")
	ErrNoAspects    = errors.New("configuration has no aspects and no keyword dictionary")
)

type LookupConfig struct {
	KeywordDictionary string   `yaml:"keyword_dictionary" json:"keyword_dictionary"`
	KeywordScheme     string   `yaml:"keyword_scheme" json:"keyword_scheme"`
	MatchMode         string   `yaml:"match_mode" json:"match_mode"`
	ExclusionTags     []string `yaml:"exclusion_tags" json:"exclusion_tags"`
	PrecisionMode     bool     `yaml:"precision_mode" json:"precision_mode"`
}

func (cfg LookupConfig) GetMatchMode() string {
	if cfg.MatchMode == "" {
		return MatchModeLemma
	}
	return strings.ToLower(cfg.MatchMode)
}

type ParamsConfig struct {
	Lookup         LookupConfig `yaml:"lookup" json:"lookup"`
	IsolateClauses *bool        `yaml:"isolate_clauses" json:"isolate_clauses"`
	IncludeEmpty   bool         `yaml:"include_empty" json:"include_empty"`
}

type Configuration struct {
	Name     string              `yaml:"name" json:"name"`
	FilePath string              `json:"file_path"`
	Pipeline string              `yaml:"pipeline" json:"pipeline"`
	Features []string            `yaml:"features" json:"features"`
	Aspects  map[string][]string `yaml:"aspects" json:"aspects"`
	Params   ParamsConfig        `yaml:"params" json:"params"`
}

func (cfg Configuration) CheckFeature(featureName string) bool {
	for _, feat := range cfg.Features {
		if feat == featureName {
			return true
		}
	}

	return false
}

func (cfg Configuration) IsolateClauses() bool {
	if cfg.Params.IsolateClauses == nil {
		return true
	}
	return *cfg.Params.IsolateClauses
}

// AspectNames returns the inline aspect names in sorted order.
func (cfg Configuration) AspectNames() []string {
	names := make([]string, 0, len(cfg.Aspects))
	for name := range cfg.Aspects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cfg Configuration) Validate() error {
	switch cfg.Pipeline {
	case AspectSentimentPipeline:
		if len(cfg.Aspects) == 0 && cfg.Params.Lookup.KeywordDictionary == "" {
			return fmt.Errorf("%s: %w", cfg.Name, ErrNoAspects)
		}
	case TokenAttributesPipeline:
	default:
		return fmt.Errorf("%s: %w: %q", cfg.Name, ErrPipelineType, cfg.Pipeline)
	}

	switch cfg.Params.Lookup.GetMatchMode() {
	case MatchModeLemma, MatchModeSubstring, MatchModeBoth:
	default:
		return fmt.Errorf("%s: %w: %q", cfg.Name, ErrMatchMode, cfg.Params.Lookup.MatchMode)
	}
	return nil
}

// GetHashCode identifies the keyword sources of the configuration.
func (cfg Configuration) GetHashCode() uint64 {
	var sb strings.Builder
	for _, name := range cfg.AspectNames() {
		sb.WriteString(name)
		sb.WriteByte('|')
		sb.WriteString(strings.Join(cfg.Aspects[name], "|"))
		sb.WriteByte('\n')
	}
	sb.WriteString(cfg.Params.Lookup.KeywordDictionary)
	sb.WriteByte('\n')
	sb.WriteString(cfg.Params.Lookup.KeywordScheme)
	return utils.HashString(sb.String())
}

// LoadConfiguration reads and validates one YAML configuration file.
func LoadConfiguration(filePath string) (Configuration, error) {
	_, fileName := path.Split(filePath)
	cfg := Configuration{
		Name:     strings.TrimSuffix(strings.TrimSuffix(fileName, ".yaml"), ".yml"),
		FilePath: filePath,
	}
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return Configuration{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", filePath, err)
	}
	if cfg.Pipeline == "" {
		cfg.Pipeline = AspectSentimentPipeline
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// LoadConfigurations loads every YAML file of dirPath concurrently. Broken
// files are logged and skipped.
func LoadConfigurations(dirPath string) ([]Configuration, error) {
	cfgLogger := logger.NewLogger("LoadConfigurations")

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !(strings.HasSuffix(f.Name(), ".yaml") || strings.HasSuffix(f.Name(), ".yml")) {
			continue
		}

		wg.Add(1)
		go func(fileName string) {
			defer wg.Done()
			cfg, err := LoadConfiguration(path.Join(dirPath, fileName))
			if err != nil {
				cfgLogger.Error().Err(err).Str("file", fileName).Msg("Skipping configuration")
				return
			}
			configChan <- cfg
		}(f.Name())
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(files))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return configs, nil
}
