package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/fsops"
	"github.com/danieljhkim/refolder/internal/hash"
)

// MoveState is a step of the per-file move state machine:
//
//	Planned -> Renamed
//	Planned -> Copying -> Copied -> SourceRemoved
//	Copying -> CopyFailed
//
// The source is only removed from Copied, i.e. after the destination has
// been written, synced and verified against the source digest.
type MoveState string

// Move states
const (
	MovePlanned       MoveState = "planned"
	MoveRenamed       MoveState = "renamed"
	MoveCopying       MoveState = "copying"
	MoveCopied        MoveState = "copied"
	MoveSourceRemoved MoveState = "source_removed"
	MoveCopyFailed    MoveState = "copy_failed"
)

// mover relocates a single file, renaming when possible.
type mover struct {
	fs     fsops.FS
	hasher hash.Hasher
	logger *zap.Logger
}

// Move relocates src to dst, which must not exist. It returns the terminal
// state reached; the error is non-nil unless the state is MoveRenamed or
// MoveSourceRemoved.
func (m *mover) Move(src, dst string) (MoveState, error) {
	renameErr := m.fs.Rename(src, dst)
	if renameErr == nil {
		return MoveRenamed, nil
	}
	m.logger.Debug("rename failed, falling back to copy",
		zap.String("source", src),
		zap.String("dest", dst),
		zap.Error(renameErr),
	)

	if err := m.fs.Copy(src, dst); err != nil {
		m.discard(dst)
		return MoveCopyFailed, fmt.Errorf("%w: rename: %v; copy: %v", ErrMoveFailed, renameErr, err)
	}

	same, err := hash.Same(m.hasher, src, dst)
	if err != nil {
		m.discard(dst)
		return MoveCopyFailed, fmt.Errorf("%w: failed to verify copy: %v", ErrMoveFailed, err)
	}
	if !same {
		m.discard(dst)
		return MoveCopyFailed, fmt.Errorf("%w: copy of %s does not match source", ErrMoveFailed, src)
	}
	if err := m.fs.Remove(src); err != nil {
		// Both copies exist; nothing is lost but the source was not cleaned up.
		return MoveCopied, fmt.Errorf("%w: copied to %s but failed to remove source: %v", ErrMoveFailed, dst, err)
	}
	return MoveSourceRemoved, nil
}

// discard removes a partially written destination.
func (m *mover) discard(dst string) {
	exists, err := m.fs.Exists(dst)
	if err != nil || !exists {
		return
	}
	if err := m.fs.Remove(dst); err != nil {
		m.logger.Warn("failed to remove partial copy", zap.String("path", dst), zap.Error(err))
	}
}
