// Package writer persists the generated files with backup-on-overwrite and
// atomic-replace semantics. A write either fully lands or leaves the
// original file (and its backup) untouched.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tmuxify/tmuxify/internal/config"
	"github.com/tmuxify/tmuxify/internal/errors"
	"github.com/tmuxify/tmuxify/internal/logger"
)

// Options controls write behavior.
type Options struct {
	DryRun bool // compute results, touch nothing
	Force  bool // overwrite without creating backups
}

// FileResult describes the outcome for a single target file.
type FileResult struct {
	Path       string
	Content    string
	Written    bool
	BackedUp   bool
	BackupPath string
}

// Result describes the outcome of a write. When an error is returned
// alongside it, the Written flags show exactly which files changed.
type Result struct {
	Config FileResult
	Envrc  FileResult
}

// backupTimestamp is the suffix layout for backup file names.
const backupTimestamp = "20060102_150405"

// Write persists the tmuxp document and activation script. The config file
// is written first; if it fails, the envrc write is not attempted and the
// returned Result reports the partial state.
func Write(target config.WriteTarget, configYAML, envrc string, opts Options) (*Result, error) {
	log := logger.ComponentLogger("writer")

	result := &Result{
		Config: FileResult{Path: target.ConfigPath, Content: configYAML},
		Envrc:  FileResult{Path: target.EnvrcPath, Content: envrc},
	}

	if opts.DryRun {
		log.Info("dry run, skipping writes", "config", target.ConfigPath, "envrc", target.EnvrcPath)
		return result, nil
	}

	if dir := filepath.Dir(target.ConfigPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return result, errors.WriteFailed(target.ConfigPath, fmt.Errorf("failed to create directory %s: %w", dir, err))
		}
	}

	if err := writeFile(&result.Config, opts.Force); err != nil {
		return result, err
	}
	log.Info("wrote file", "path", result.Config.Path, "backedUp", result.Config.BackedUp)

	if err := writeFile(&result.Envrc, opts.Force); err != nil {
		return result, err
	}
	log.Info("wrote file", "path", result.Envrc.Path, "backedUp", result.Envrc.BackedUp)

	return result, nil
}

// writeFile lands fr.Content at fr.Path. Sequence is copy-then-overwrite:
// the backup must exist before the original is replaced, and the backup is
// never removed, so a crash mid-write always leaves recoverable content.
func writeFile(fr *FileResult, force bool) error {
	if _, err := os.Stat(fr.Path); err == nil {
		if !force {
			backupPath, err := backup(fr.Path)
			if err != nil {
				return errors.BackupFailed(fr.Path, err)
			}
			fr.BackedUp = true
			fr.BackupPath = backupPath
		}
	} else if !os.IsNotExist(err) {
		return errors.WriteFailed(fr.Path, err)
	}

	if err := atomicWrite(fr.Path, fr.Content); err != nil {
		return errors.WriteFailed(fr.Path, err)
	}
	fr.Written = true
	return nil
}

// backup copies path to <path>.backup.<timestamp> next to the original.
func backup(path string) (string, error) {
	backupPath := fmt.Sprintf("%s.backup.%s", path, time.Now().Format(backupTimestamp))

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(backupPath)
		return "", err
	}
	if err := dst.Sync(); err != nil {
		os.Remove(backupPath)
		return "", err
	}
	return backupPath, nil
}

// atomicWrite writes content to a temp file in the target directory and
// renames it into place, so readers never observe a partial file.
func atomicWrite(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmuxify-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
