package patterndb

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/model"
)

// patternFile is the on-disk YAML layout for custom pattern sets.
type patternFile struct {
	Patterns []model.PatternEntry `yaml:"patterns"`
}

// LoadYAML reads a custom pattern set from a YAML document.
func LoadYAML(r io.Reader) ([]model.PatternEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file: %w", err)
	}

	if len(file.Patterns) == 0 {
		return nil, common.ErrEmptyPatternDB
	}

	for i, p := range file.Patterns {
		if p.Pattern == "" {
			return nil, fmt.Errorf("%w: entry %d has no pattern", common.ErrInvalidConfig, i)
		}
		if p.Tag == "" {
			return nil, fmt.Errorf("%w: entry %d (%q) has no tag", common.ErrInvalidConfig, i, p.Pattern)
		}
		if p.Confidence <= 0 || p.Confidence > 1 {
			return nil, fmt.Errorf("%w: entry %d (%q) confidence %.2f outside (0,1]", common.ErrInvalidConfig, i, p.Pattern, p.Confidence)
		}
	}

	return file.Patterns, nil
}

// LoadYAMLFile reads a custom pattern set from the given path.
func LoadYAMLFile(path string) ([]model.PatternEntry, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: pattern file %s", common.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open pattern file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadYAML(f)
}
