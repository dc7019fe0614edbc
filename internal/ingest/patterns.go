package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentic-research/marquee/api"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

var ErrNoPatterns = errors.New("pattern set is empty")

// LoadPatterns reads a pattern set from a .json, .yaml/.yml or .hcl file.
//
// HCL files use one block per pattern:
//
//	pattern {
//	  template = "who directed %"
//	  action   = "director_by_title"
//	}
func LoadPatterns(path string) (api.PatternSet, error) {
	var set api.PatternSet

	data, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("read patterns: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &set)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &set)
	case ".hcl":
		err = hclsimple.Decode(filepath.Base(path), data, nil, &set)
	default:
		return set, fmt.Errorf("unsupported pattern file %s (want .json, .yaml, .yml or .hcl)", path)
	}
	if err != nil {
		return set, fmt.Errorf("parse patterns %s: %w", path, err)
	}
	if len(set.Patterns) == 0 {
		return set, fmt.Errorf("%s: %w", path, ErrNoPatterns)
	}
	return set, nil
}
