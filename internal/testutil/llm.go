package testutil

import (
	"context"

	"github.com/alexanderramin/pitchcycle/internal/llm"
)

// StubClient is an llm.Client returning a canned response per task.
type StubClient struct {
	Responses map[llm.TaskType]string
	Calls     []llm.GenerateRequest
}

func (c *StubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.Calls = append(c.Calls, req)
	return &llm.GenerateResponse{Text: c.Responses[req.Task], Model: "stub"}, nil
}

func (c *StubClient) Available(context.Context) bool { return true }

// FailingClient is an llm.Client whose every call fails, for fallback tests.
type FailingClient struct {
	Err error
}

func (c *FailingClient) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	err := c.Err
	if err == nil {
		err = llm.ErrUnavailable
	}
	return nil, err
}

func (c *FailingClient) Available(context.Context) bool { return false }
