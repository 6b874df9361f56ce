package writer

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmuxify/tmuxify/internal/errors"
	"github.com/tmuxify/tmuxify/internal/exec"
	"github.com/tmuxify/tmuxify/internal/logger"
)

// Allow runs `direnv allow` for the project directory so the freshly
// written .envrc takes effect. Callers treat a failure as a warning: by the
// time this runs the files are already safely on disk.
func Allow(ctx context.Context, executor exec.CommandExecutor, projectDir string) error {
	out, err := executor.CombinedOutput(ctx, projectDir, "direnv", "allow")
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			err = fmt.Errorf("%s: %w", detail, err)
		}
		return errors.DirenvAllowFailed(projectDir, err)
	}
	logger.ComponentLogger("writer").Info("direnv allow succeeded", "dir", projectDir)
	return nil
}
