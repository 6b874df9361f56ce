package exec

import (
	"context"
	"errors"
	"testing"
)

func TestRealExecutor_Run(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	stdout, stderr, err := executor.Run(ctx, "", "echo", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "hello\n" {
		t.Errorf("expected 'hello\\n', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}
}

func TestRealExecutor_Output(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	output, err := executor.Output(ctx, "", "echo", "world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(output) != "world\n" {
		t.Errorf("expected 'world\\n', got %q", string(output))
	}
}

func TestRealExecutor_CombinedOutput(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()

	output, err := executor.CombinedOutput(ctx, "", "echo", "combined")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(output) != "combined\n" {
		t.Errorf("expected 'combined\\n', got %q", string(output))
	}
}

func TestRealExecutor_RunsInDir(t *testing.T) {
	executor := NewRealExecutor()
	ctx := context.Background()
	dir := t.TempDir()

	output, err := executor.Output(ctx, dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(output) != dir+"\n" {
		t.Errorf("expected %q, got %q", dir+"\n", string(output))
	}
}

func TestMockExecutor_Run(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddExactMatch("tmuxp", []string{"--version"}, MockResponse{
		Stdout: []byte("tmuxp 1.47.0"),
	})

	ctx := context.Background()
	stdout, stderr, err := mock.Run(ctx, "/some/dir", "tmuxp", "--version")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "tmuxp 1.47.0" {
		t.Errorf("expected 'tmuxp 1.47.0', got %q", string(stdout))
	}
	if len(stderr) != 0 {
		t.Errorf("expected empty stderr, got %q", string(stderr))
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Dir != "/some/dir" {
		t.Errorf("expected dir '/some/dir', got %q", calls[0].Dir)
	}
	if calls[0].Name != "tmuxp" {
		t.Errorf("expected name 'tmuxp', got %q", calls[0].Name)
	}
}

func TestMockExecutor_Error(t *testing.T) {
	mock := NewMockExecutor()

	expectedErr := errors.New("command failed")
	mock.AddExactMatch("direnv", []string{"allow"}, MockResponse{
		Stderr: []byte("permission denied"),
		Err:    expectedErr,
	})

	ctx := context.Background()
	_, stderr, err := mock.Run(ctx, "", "direnv", "allow")

	if err != expectedErr {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if string(stderr) != "permission denied" {
		t.Errorf("expected 'permission denied', got %q", string(stderr))
	}
}

func TestMockExecutor_CombinedOutput(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddExactMatch("cmd", []string{"test"}, MockResponse{
		Stdout: []byte("out"),
		Stderr: []byte("err"),
	})

	ctx := context.Background()
	output, err := mock.CombinedOutput(ctx, "", "cmd", "test")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(output) != "outerr" {
		t.Errorf("expected 'outerr', got %q", string(output))
	}
}

func TestMockExecutor_UnmatchedCommand(t *testing.T) {
	mock := NewMockExecutor()
	ctx := context.Background()

	stdout, _, err := mock.Run(ctx, "", "anything", "goes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "" {
		t.Errorf("expected empty response for unmatched command, got %q", string(stdout))
	}
}

func TestMockExecutor_AddRule(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddRule(func(dir, name string, args []string) bool {
		return dir == "/special/dir"
	}, MockResponse{
		Stdout: []byte("special response"),
	})

	ctx := context.Background()

	stdout, _, err := mock.Run(ctx, "/special/dir", "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "special response" {
		t.Errorf("expected 'special response', got %q", string(stdout))
	}

	stdout, _, err = mock.Run(ctx, "/other/dir", "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stdout) != "" {
		t.Errorf("expected empty response, got %q", string(stdout))
	}
}

func TestMockExecutor_RuleOrder(t *testing.T) {
	mock := NewMockExecutor()

	mock.AddExactMatch("direnv", []string{"allow", "."}, MockResponse{
		Stdout: []byte("specific"),
	})
	mock.AddRule(func(dir, name string, args []string) bool {
		return name == "direnv"
	}, MockResponse{
		Stdout: []byte("general"),
	})

	ctx := context.Background()

	stdout, _, _ := mock.Run(ctx, "", "direnv", "allow", ".")
	if string(stdout) != "specific" {
		t.Errorf("expected 'specific', got %q", string(stdout))
	}

	stdout, _, _ = mock.Run(ctx, "", "direnv", "status")
	if string(stdout) != "general" {
		t.Errorf("expected 'general', got %q", string(stdout))
	}
}
