package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Decoder.validate(); err != nil {
		return fmt.Errorf("decoder: %w", err)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.DecodePerMinute < 0 {
		return fmt.Errorf("server.decode_per_minute must be >= 0 (got %d)", c.Server.DecodePerMinute)
	}

	if c.Database.Enabled() && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (d *DecoderConfig) validate() error {
	if d.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if strings.ContainsAny(d.Separator, "ABCDEFGHIJKLMNOPQRSTUVWXYZ.-") {
		return fmt.Errorf("separator %q must not contain letters A-Z, '.' or '-'", d.Separator)
	}
	if d.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", d.Timeout)
	}
	if d.MaxMorseLength <= 0 {
		return fmt.Errorf("max_morse_length must be > 0 (got %d)", d.MaxMorseLength)
	}
	if d.MaxWords <= 0 {
		return fmt.Errorf("max_words must be > 0 (got %d)", d.MaxWords)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.WordCount <= 0 {
		return fmt.Errorf("word_count must be > 0 (got %d)", g.WordCount)
	}
	if g.WordMin < 1 {
		return fmt.Errorf("word_min must be >= 1 (got %d)", g.WordMin)
	}
	if g.WordMax <= g.WordMin {
		return fmt.Errorf("word_max (%d) must be greater than word_min (%d)", g.WordMax, g.WordMin)
	}
	if g.SentenceWordCount < 0 {
		return fmt.Errorf("sentence_word_count must be >= 0 (got %d)", g.SentenceWordCount)
	}
	return nil
}
