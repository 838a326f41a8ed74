package lookout

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultCacheCapacity = 4096

// Config holds global configuration for engines created after it is changed
var Config config = config{
	cacheCapacity: defaultCacheCapacity,
	logger:        log.New(io.Discard, "lookout: ", log.LstdFlags),
}

type config struct {
	cacheCapacity int
	debug         bool
	logger        *log.Logger
}

type fileConfig struct {
	CacheCapacity *int   `yaml:"cache_capacity"`
	Debug         *bool  `yaml:"debug"`
	LogPrefix     string `yaml:"log_prefix"`
	LogOutput     string `yaml:"log_output"`
}

// SetCacheCapacity limits how many distinct views one engine may cache
func (c *config) SetCacheCapacity(n int) {
	c.cacheCapacity = n
}

// SetDebug toggles view invariant verification after every maintenance step
func (c *config) SetDebug(debug bool) {
	c.debug = debug
}

// SetLogger replaces the logger; nil discards output
func (c *config) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c.logger = logger
}

func (c *config) CacheCapacity() int {
	return c.cacheCapacity
}

func (c *config) Debug() bool {
	return c.debug
}

func (c *config) Logger() *log.Logger {
	return c.logger
}

// Load applies settings from a YAML document. Absent keys keep their
// current values.
func (c *config) Load(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	if fc.CacheCapacity != nil {
		if *fc.CacheCapacity <= 0 {
			return fmt.Errorf("config: cache_capacity must be positive, got %d", *fc.CacheCapacity)
		}
		c.cacheCapacity = *fc.CacheCapacity
	}
	if fc.Debug != nil {
		c.debug = *fc.Debug
	}
	if fc.LogOutput != "" || fc.LogPrefix != "" {
		out := c.logger.Writer()
		switch fc.LogOutput {
		case "":
		case "stderr":
			out = os.Stderr
		case "stdout":
			out = os.Stdout
		case "discard":
			out = io.Discard
		default:
			return fmt.Errorf("config: unknown log_output %q", fc.LogOutput)
		}
		prefix := c.logger.Prefix()
		if fc.LogPrefix != "" {
			prefix = fc.LogPrefix
		}
		c.logger = log.New(out, prefix, c.logger.Flags())
	}
	return nil
}
