package ingest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Topics maps a topic label to its boolean keyword query.
type Topics map[string]string

// DefaultTopics returns the built-in topic registry for economic news.
// Keywords are matched against title and description only.
func DefaultTopics() Topics {
	return Topics{
		"economy_general":       "(Tax) OR (Tariff)",
		"economy_long_term":     "((American OR US) AND Economy) OR (National output) OR (National income)",
		"labor_market":          "(Labor market) OR (jobless) OR (unemployment)",
		"inflation":             "(Inflation)",
		"consumer_behavior":     "(Retail sales) OR (consumer spending) OR (disposable income) OR (household spending)",
		"government_and_policy": "(Federal Reserve) OR (Fed policy) OR (Interest rate) OR (rate cuts) OR (Treasury)",
		"corporate":             "(merger) OR (acquisition) OR (corporate earning)",
	}
}

// LoadTopics reads a topic registry from a YAML file mapping topic labels
// to keyword queries.
func LoadTopics(path string) (Topics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topics file: %w", err)
	}

	var topics Topics
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("parsing topics file %s: %w", path, err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("topics file %s: %w", path, ErrNoTopics)
	}
	for name, query := range topics {
		if query == "" {
			return nil, fmt.Errorf("topic %q: %w", name, ErrEmptyQuery)
		}
	}
	return topics, nil
}

// Names returns the topic labels in sorted order, so runs process topics
// deterministically.
func (t Topics) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
