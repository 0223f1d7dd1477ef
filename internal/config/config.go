package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Decoder   DecoderConfig   `yaml:"decoder"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings. DecodePerMinute limits POST /decode
// per client host; 0 disables the limit.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"8388608"`
	DecodePerMinute int           `yaml:"decode_per_minute" env:"SERVER_DECODE_PER_MINUTE" env-default:"60"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty DSN disables the word-list store and run history.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// DecoderConfig holds segmentation search settings.
type DecoderConfig struct {
	Separator      string        `yaml:"separator"        env:"DECODER_SEPARATOR"        env-default:" "`
	Timeout        time.Duration `yaml:"timeout"          env:"DECODER_TIMEOUT"          env-default:"30s"`
	MaxMorseLength int           `yaml:"max_morse_length" env:"DECODER_MAX_MORSE_LENGTH" env-default:"100000"`
	MaxWords       int           `yaml:"max_words"        env:"DECODER_MAX_WORDS"        env-default:"100000"`
	RecordRuns     bool          `yaml:"record_runs"      env:"DECODER_RECORD_RUNS"`
}

// GeneratorConfig holds synthetic problem generator settings.
type GeneratorConfig struct {
	WordCount         int    `yaml:"word_count"          env:"GENERATOR_WORD_COUNT"          env-default:"300"`
	WordMin           int    `yaml:"word_min"            env:"GENERATOR_WORD_MIN"            env-default:"3"`
	WordMax           int    `yaml:"word_max"            env:"GENERATOR_WORD_MAX"            env-default:"8"`
	SentenceWordCount int    `yaml:"sentence_word_count" env:"GENERATOR_SENTENCE_WORD_COUNT" env-default:"10"`
	Seed              uint64 `yaml:"seed"                env:"GENERATOR_SEED"                env-default:"0"`
	InputPath         string `yaml:"input_path"          env:"GENERATOR_INPUT_PATH"          env-default:"in.txt"`
	AnswerPath        string `yaml:"answer_path"         env:"GENERATOR_ANSWER_PATH"         env-default:"out.txt"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
