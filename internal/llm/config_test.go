package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 15000, cfg.Tasks[TaskPeriodization].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("PITCHCYCLE_LLM_TIMEOUT_MS", "9000")
	t.Setenv("PITCHCYCLE_LLM_PERIODIZATION_TIMEOUT_MS", "20000")
	t.Setenv("PITCHCYCLE_LLM_SUMMARY_TIMEOUT_MS", "4000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskPeriodization))
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskSummary))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskDrills))
}

func TestLoadConfig_InvalidOverridesIgnored(t *testing.T) {
	t.Setenv("PITCHCYCLE_LLM_SUMMARY_TIMEOUT_MS", "not-a-number")
	t.Setenv("PITCHCYCLE_LLM_MAX_RETRIES", "-3")

	cfg := LoadConfig()

	assert.Equal(t, 8000, cfg.TaskTimeout(TaskSummary))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnableSwitch(t *testing.T) {
	t.Setenv("PITCHCYCLE_LLM_ENABLED", "true")
	t.Setenv("PITCHCYCLE_LLM_MODEL", "qwen2.5")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "qwen2.5", cfg.Model)
}
