package handlers

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"CT-MUSICAL/internal/observability"
)

// FileCleanupService periodically removes uploaded templates older than
// maxAge. Generated contracts are never touched.
type FileCleanupService struct {
	uploadDir string
	maxAge    time.Duration
	interval  time.Duration
	logger    *zap.Logger

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func NewFileCleanupService(uploadDir string, maxAge, interval time.Duration, logger *zap.Logger) *FileCleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &FileCleanupService{
		uploadDir: uploadDir,
		maxAge:    maxAge,
		interval:  interval,
		logger:    observability.OrNop(logger),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

func (fcs *FileCleanupService) Start() {
	fcs.ticker = time.NewTicker(fcs.interval)
	go func() {
		defer close(fcs.stopped)
		for {
			select {
			case <-fcs.done:
				return
			case <-fcs.ticker.C:
				fcs.cleanupOldFiles()
			}
		}
	}()
	fcs.logger.Info("file cleanup service started",
		zap.String("dir", fcs.uploadDir),
		zap.Duration("max_age", fcs.maxAge),
	)
}

// Stop halts the worker and waits for it to exit. It is safe to call more
// than once.
func (fcs *FileCleanupService) Stop() {
	fcs.stopOnce.Do(func() {
		if fcs.ticker == nil {
			return
		}
		fcs.ticker.Stop()
		close(fcs.done)
		<-fcs.stopped
		fcs.logger.Info("file cleanup service stopped")
	})
}

// cleanupOldFiles returns the number of files removed.
func (fcs *FileCleanupService) cleanupOldFiles() int {
	if _, err := os.Stat(fcs.uploadDir); os.IsNotExist(err) {
		return 0
	}

	removed := 0
	err := filepath.WalkDir(fcs.uploadDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if time.Since(info.ModTime()) <= fcs.maxAge {
			return nil
		}

		fcs.logger.Debug("cleaning up old file", zap.String("path", path))
		if err := os.Remove(path); err != nil {
			return err
		}
		removed++
		return nil
	})
	if err != nil {
		fcs.logger.Warn("cleanup failed", zap.String("dir", fcs.uploadDir), zap.Error(err))
	}
	return removed
}
