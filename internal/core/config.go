package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
)

// How many parent directories to traverse before considering a directory as not a mw home
const maxDepth = 10

// Name of the directory containing the configuration and the state
const HomeDirName = ".mw"

// Default .mw/config content
const DefaultConfig = `
[core]
user = "me"

[profile]
response_style = "gentle"
crisis_support = true
conditions = []

[rewards]
mood = 20
journal = 15
dream = 25

[journal]
dir = "journal"
`

// Default .mw/.gitignore content
const DefaultGitIgnore = `
/state.yaml
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

var ErrNotAHome = errors.New("not a MoodWriter directory (or any of the parent directories): " + HomeDirName)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core    ConfigCore    `toml:"core"`
	Profile ConfigProfile `toml:"profile"`
	Rewards ConfigRewards `toml:"rewards"`
	Journal ConfigJournal `toml:"journal"`
}
type ConfigCore struct {
	User string `toml:"user"`
}
type ConfigProfile struct {
	ResponseStyle  string   `toml:"response_style"`
	CrisisSupport  bool     `toml:"crisis_support"`
	Conditions     []string `toml:"conditions"`
	UnderTreatment *bool    `toml:"under_treatment,omitempty"`
	OnMedication   *bool    `toml:"on_medication,omitempty"`
}
type ConfigRewards struct {
	// XP earned per saved entry
	Mood    int `toml:"mood"`
	Journal int `toml:"journal"`
	Dream   int `toml:"dream"`
}
type ConfigJournal struct {
	// Relative to the root directory
	Dir string `toml:"dir"`
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .mw sub-directory
	RootDirectory string

	// .mw/config content
	ConfigFile ConfigFile

	// Toggle this flag to skip writing journal files
	DryRun bool
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", ErrNotAHome)
			os.Exit(1)
		}
		if err := configSingleton.Check(); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	})
	return configSingleton
}

// Check validates the configuration.
func (c *Config) Check() error {
	if _, err := analysis.ParseResponseStyle(c.ConfigFile.Profile.ResponseStyle); err != nil {
		return fmt.Errorf("invalid [profile] response_style: %w", err)
	}
	rewards := c.ConfigFile.Rewards
	if rewards.Mood < 0 || rewards.Journal < 0 || rewards.Dream < 0 {
		return errors.New("invalid [rewards]: values must be >= 0")
	}
	if strings.TrimSpace(c.ConfigFile.Core.User) == "" {
		return errors.New("invalid [core] user: must not be empty")
	}
	return nil
}

// HomeDir returns the absolute path of the .mw directory.
func (c *Config) HomeDir() string {
	return filepath.Join(c.RootDirectory, HomeDirName)
}

// ConfigPath returns the absolute path of .mw/config.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.HomeDir(), "config")
}

// StatePath returns the absolute path of the state snapshot.
func (c *Config) StatePath() string {
	return filepath.Join(c.HomeDir(), "state.yaml")
}

// JournalDir returns the absolute path of the directory containing the daily journal files.
func (c *Config) JournalDir() string {
	dir := c.ConfigFile.Journal.Dir
	if dir == "" {
		dir = "journal"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.RootDirectory, dir)
}

// ResponseStyle returns the preferred response style. Check() guarantees it is valid.
func (c *Config) ResponseStyle() analysis.ResponseStyle {
	style, err := analysis.ParseResponseStyle(c.ConfigFile.Profile.ResponseStyle)
	if err != nil {
		return analysis.Gentle
	}
	return style
}

// Save writes the configuration back to .mw/config.
func (c *Config) Save() error {
	data, err := toml.Marshal(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("unable to encode configuration: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, 0644)
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes. Ex:
	//
	//   $ env MW_HOME=./examples go run ./cmd/mw profile
	if path, ok := os.LookupEnv("MW_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $MW_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $MW_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .mw directory in the given directory
// or any parent directories. It returns nil when no directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		homePath := filepath.Join(rootPath, HomeDirName)
		_, err := os.Stat(homePath)
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %w", err)
		} else {
			break
		}
	}

	configFile, err := parseConfigFile(DefaultConfig)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(rootPath, HomeDirName, "config")
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to read %s: %w", configPath, err)
	}
	if len(data) > 0 {
		// Decoding over the default values keeps the keys missing from the file
		if err := toml.Unmarshal(data, configFile); err != nil {
			return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
		}
	}

	CurrentLogger().Debugf("Configuration read from %s", configPath)

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	var result ConfigFile
	if err := toml.Unmarshal([]byte(content), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InitHome creates the .mw directory with the default configuration inside dir.
func InitHome(dir string) (*Config, error) {
	homePath := filepath.Join(dir, HomeDirName)
	if _, err := os.Stat(homePath); err == nil {
		return nil, fmt.Errorf("%s already exists", homePath)
	}
	if err := os.MkdirAll(homePath, os.ModePerm); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(homePath, "config"), []byte(strings.TrimSpace(DefaultConfig)+"\n"), 0644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(homePath, ".gitignore"), []byte(strings.TrimSpace(DefaultGitIgnore)+"\n"), 0644); err != nil {
		return nil, err
	}

	config, err := ReadConfigFromDirectory(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(config.JournalDir(), os.ModePerm); err != nil {
		return nil, err
	}
	return config, nil
}
