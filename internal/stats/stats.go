// Package stats accumulates the run summary written by --stats.
package stats

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"microtpct/internal/engine"
)

// Summary is the YAML document written at the end of a matching run.
type Summary struct {
	Mode      string `yaml:"mode"`
	Strategy  string `yaml:"strategy"`
	Delimiter string `yaml:"delimiter"`

	Queries          int `yaml:"queries"`
	SkippedQueries   int `yaml:"skipped_queries"`
	MatchedQueries   int `yaml:"matched_queries"`
	UnmatchedQueries int `yaml:"unmatched_queries"`
	Rows             int `yaml:"rows"`

	Targets         int `yaml:"targets"`
	SkippedTargets  int `yaml:"skipped_targets"`
	WildcardTargets int `yaml:"wildcard_targets"`
	TargetResidues  int `yaml:"target_residues"`

	Duration string `yaml:"duration"`
}

// Add folds one query's outcome into the counts.
func (s *Summary) Add(qr engine.QueryResult) {
	s.Queries++
	if qr.Matched() {
		s.MatchedQueries++
		s.Rows += len(qr.Hits)
		return
	}
	s.UnmatchedQueries++
	s.Rows++
}

// Finish stamps the elapsed time since start.
func (s *Summary) Finish(start time.Time) {
	s.Duration = time.Since(start).Round(time.Millisecond).String()
}

// Marshal renders s as YAML.
func (s *Summary) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes s as YAML to path.
func (s *Summary) WriteFile(path string) error {
	b, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
