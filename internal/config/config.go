package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains runtime configuration values.
type Config struct {
	Root         string    `yaml:"root"`
	Subject      string    `yaml:"subject"`
	SubjectTitle string    `yaml:"subject_title"`
	IndexFile    string    `yaml:"index_file"`
	SolutionFile string    `yaml:"solution_file"`
	ReviewCron   string    `yaml:"review_cron"`
	PreviewStyle string    `yaml:"preview_style"`
	LogLevel     string    `yaml:"log_level"`
	Templates    Templates `yaml:"templates"`
}

// Templates overrides the built-in text/template sources. Empty fields keep the defaults.
type Templates struct {
	Index    string `yaml:"index"`
	Topic    string `yaml:"topic"`
	Problem  string `yaml:"problem"`
	Solution string `yaml:"solution"`
}

const (
	defaultConfigFile   = "learnlog.yaml"
	defaultRoot         = "Learner"
	defaultSubject      = "Pre-algebra"
	defaultSubjectTitle = "Pre-Algebra"
	defaultIndexFile    = "index.md"
	defaultSolutionFile = "solution.py"
	defaultReviewCron   = "0 9 * * 6" // Saturday 09:00
	defaultPreviewStyle = "auto"
	defaultLogLevel     = "warn"
)

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Root:         defaultRoot,
		Subject:      defaultSubject,
		SubjectTitle: defaultSubjectTitle,
		IndexFile:    defaultIndexFile,
		SolutionFile: defaultSolutionFile,
		ReviewCron:   defaultReviewCron,
		PreviewStyle: defaultPreviewStyle,
		LogLevel:     defaultLogLevel,
	}
}

// Load reads the file named by LEARNLOG_CONFIG (default learnlog.yaml) and
// then applies environment overrides.
func Load() (*Config, error) {
	return LoadFile(getenvDefault("LEARNLOG_CONFIG", defaultConfigFile))
}

// LoadFile builds a Config from defaults, the YAML file at path (a missing
// file is not an error) and environment variables, in that order.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BasePath is the subject root, e.g. Learner/Pre-algebra.
func (c *Config) BasePath() string {
	return filepath.Join(c.Root, c.Subject)
}

func (c *Config) applyEnvOverrides() {
	c.Root = getenvDefault("LEARNLOG_ROOT", c.Root)
	c.Subject = getenvDefault("LEARNLOG_SUBJECT", c.Subject)
	c.SubjectTitle = getenvDefault("LEARNLOG_SUBJECT_TITLE", c.SubjectTitle)
	c.IndexFile = getenvDefault("LEARNLOG_INDEX_FILE", c.IndexFile)
	c.SolutionFile = getenvDefault("LEARNLOG_SOLUTION_FILE", c.SolutionFile)
	c.PreviewStyle = getenvDefault("LEARNLOG_PREVIEW_STYLE", c.PreviewStyle)
	c.LogLevel = getenvDefault("LOG_LEVEL", c.LogLevel)

	// An explicitly empty value disables reviews.
	if val, ok := os.LookupEnv("LEARNLOG_REVIEW_CRON"); ok {
		c.ReviewCron = val
	}
}

func (c *Config) validate() error {
	if c.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if c.IndexFile == "" {
		c.IndexFile = defaultIndexFile
	}
	if c.SolutionFile == "" {
		c.SolutionFile = defaultSolutionFile
	}
	if c.SubjectTitle == "" {
		c.SubjectTitle = c.Subject
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
