package offers

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// Thresholds is the minimum APS each university needs before any offer is made.
// Universities not listed fall back to Default.
type Thresholds struct {
	ByUniversity map[string]int `yaml:"universities"`
	Default      int            `yaml:"default"`
}

// DefaultThresholds is used when no thresholds file is configured
func DefaultThresholds() Thresholds {
	return Thresholds{
		ByUniversity: map[string]int{
			"UCT":  42,
			"WITS": 40,
			"SU":   40,
			"UP":   36,
			"UKZN": 33,
			"UJ":   30,
		},
		Default: 28,
	}
}

// For returns the threshold for a university code, case-insensitively
func (t Thresholds) For(universityCode string) int {
	if v, ok := t.ByUniversity[strings.ToUpper(strings.TrimSpace(universityCode))]; ok {
		return v
	}
	return t.Default
}

func (t Thresholds) Validate() error {
	if t.Default < 0 || t.Default > scoring.MaxAPS {
		return fmt.Errorf("default threshold %d outside 0..%d", t.Default, scoring.MaxAPS)
	}
	for code, v := range t.ByUniversity {
		if v < 0 || v > scoring.MaxAPS {
			return fmt.Errorf("threshold for %s is %d, outside 0..%d", code, v, scoring.MaxAPS)
		}
	}
	return nil
}

// LoadThresholds reads a YAML thresholds file. An empty path yields the
// built-in table.
func LoadThresholds(path string) (Thresholds, error) {
	if path == "" {
		return DefaultThresholds(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, errors.Wrap(err, "reading thresholds file")
	}
	return ParseThresholds(raw)
}

func ParseThresholds(raw []byte) (Thresholds, error) {
	var t Thresholds
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Thresholds{}, errors.Wrap(err, "parsing thresholds")
	}
	normalized := make(map[string]int, len(t.ByUniversity))
	for code, v := range t.ByUniversity {
		normalized[strings.ToUpper(strings.TrimSpace(code))] = v
	}
	t.ByUniversity = normalized
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}
