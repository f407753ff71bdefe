package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of text-model task being performed.
type TaskType string

const (
	// TaskSummary writes the plan's narrative overview.
	TaskSummary TaskType = "summary"
	// TaskPeriodization proposes load classes for non-fixture days.
	TaskPeriodization TaskType = "periodization"
	// TaskDrills synthesizes drill content for session phases.
	TaskDrills TaskType = "drills"
)

// TaskConfig holds per-task model parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the text-model subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The model path is
// disabled by default; plan generation is fully deterministic without it.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskSummary:       {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 8000},
			TaskPeriodization: {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 15000},
			TaskDrills:        {Temperature: 0.5, MaxTokens: 4096, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads model configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PITCHCYCLE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PITCHCYCLE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PITCHCYCLE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PITCHCYCLE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PITCHCYCLE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PITCHCYCLE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskSummary, "PITCHCYCLE_LLM_SUMMARY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPeriodization, "PITCHCYCLE_LLM_PERIODIZATION_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDrills, "PITCHCYCLE_LLM_DRILLS_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
