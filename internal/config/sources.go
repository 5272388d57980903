package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
	"github.com/DjordjeVuckovic/news-scraper/internal/extract"
	"gopkg.in/yaml.v3"
)

// SourceConfig binds a feed to the extractor that understands its layout.
type SourceConfig struct {
	ID        string       `json:"id" yaml:"id"`
	FeedURL   string       `json:"feedUrl" yaml:"feedUrl"`
	Extractor extract.Kind `json:"extractor" yaml:"extractor"`
}

// SourcesFile is the on-disk layout of a sources configuration.
type SourcesFile struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Version string         `json:"version" yaml:"version"`
	Sources []SourceConfig `json:"sources" yaml:"sources"`
}

// DefaultSources returns the supported sources in their canonical order.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{ID: "rt", FeedURL: "https://russian.rt.com/rss", Extractor: extract.KindRT},
		{ID: "ria", FeedURL: "https://ria.ru/export/rss2/index.xml", Extractor: extract.KindRIA},
		{ID: "vedomosti", FeedURL: "https://www.vedomosti.ru/rss/news.xml", Extractor: extract.KindVedomosti},
		{ID: "meduza", FeedURL: "https://meduza.io/rss2/all", Extractor: extract.KindMeduza},
	}
}

type YAMLSourcesLoader struct {
	reader io.Reader
}

func NewYAMLSourcesLoader(reader io.Reader) *YAMLSourcesLoader {
	return &YAMLSourcesLoader{
		reader: reader,
	}
}

func (l *YAMLSourcesLoader) Load(validate bool) ([]SourceConfig, error) {
	decoder := yaml.NewDecoder(l.reader)
	decoder.KnownFields(true)

	var file SourcesFile
	if err := decoder.Decode(&file); err != nil {
		return nil, apperr.NewConfigWrap("failed to decode sources", err)
	}
	if validate {
		if err := ValidateSources(file.Sources); err != nil {
			return nil, err
		}
	}
	return file.Sources, nil
}

// LoadSources reads sources from path, or returns the defaults when path is empty.
func LoadSources(path string) ([]SourceConfig, error) {
	if path == "" {
		return DefaultSources(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewConfigWrap("failed to open sources file", err)
	}
	defer file.Close()

	return NewYAMLSourcesLoader(file).Load(true)
}

func ValidateSources(sources []SourceConfig) error {
	if len(sources) == 0 {
		return apperr.NewConfig("at least one source is required")
	}
	seen := make(map[string]bool, len(sources))
	for i, src := range sources {
		id := strings.TrimSpace(src.ID)
		if id == "" {
			return apperr.NewConfig(fmt.Sprintf("sources[%d] must have id defined", i))
		}
		if seen[id] {
			return apperr.NewConfig(fmt.Sprintf("duplicate source id: %s", id))
		}
		seen[id] = true

		u, err := url.Parse(src.FeedURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return apperr.NewConfig(fmt.Sprintf("sources[%d] (%s) has invalid feedUrl: %q", i, id, src.FeedURL))
		}
		if _, err := extract.ParseKind(string(src.Extractor)); err != nil {
			return apperr.NewConfigWrap(fmt.Sprintf("sources[%d] (%s)", i, id), err)
		}
	}
	return nil
}
