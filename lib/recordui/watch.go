// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// watchDebounce is how long the watcher waits after a matching event
// before reporting it, so a burst of writes produces one reload.
const watchDebounce = 50 * time.Millisecond

// FileWatcher reports changes to a single file. It watches the parent
// directory with inotify for IN_CLOSE_WRITE and IN_MOVED_TO events on
// the file name, which covers both in-place writes and atomic
// rename-over replacements (a file-level watch would stay attached
// to the old inode).
//
// Changes are coalesced: Changes has a one-slot buffer and a pending
// notification absorbs any further events until it is received.
type FileWatcher struct {
	path     string
	changes  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// WatchFile starts watching path. Close stops the watcher and closes
// the Changes channel.
func WatchFile(path string, logger *slog.Logger) (*FileWatcher, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify init: %w", err)
	}

	directory := filepath.Dir(absolutePath)
	if _, err := unix.InotifyAddWatch(fd, directory, unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("watch %s: %w", directory, err)
	}

	watcher := &FileWatcher{
		path:    absolutePath,
		changes: make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.loop(fd, filepath.Base(absolutePath), logger)
	return watcher, nil
}

// Path returns the absolute path being watched.
func (watcher *FileWatcher) Path() string {
	return watcher.path
}

// Changes delivers one value per coalesced burst of changes.
func (watcher *FileWatcher) Changes() <-chan struct{} {
	return watcher.changes
}

// Stop asks the watcher goroutine to exit without waiting for it.
// The goroutine may be blocked logging into the program's event loop,
// so code running on that loop calls Stop rather than Close.
func (watcher *FileWatcher) Stop() {
	watcher.stopOnce.Do(func() { close(watcher.stop) })
}

// Close stops the watcher and waits for its goroutine to exit. Safe
// to call more than once.
func (watcher *FileWatcher) Close() {
	watcher.Stop()
	<-watcher.done
}

// loop polls the inotify fd with a 100ms timeout so the stop channel
// is checked promptly.
func (watcher *FileWatcher) loop(fd int, filename string, logger *slog.Logger) {
	defer close(watcher.done)
	defer close(watcher.changes)
	defer unix.Close(fd)

	buffer := make([]byte, 4096)

	for {
		select {
		case <-watcher.stop:
			return
		default:
		}

		pollDescriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(pollDescriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			logger.Error("file watch stopped", "path", watcher.path, "error", err)
			return
		}
		if count == 0 {
			continue
		}

		bytesRead, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			logger.Error("file watch stopped", "path", watcher.path, "error", err)
			return
		}

		if !inotifyMatchesFile(buffer[:bytesRead], filename) {
			continue
		}

		time.Sleep(watchDebounce)
		drainInotifyEvents(fd, buffer)

		logger.Debug("watched file changed", "path", watcher.path)
		select {
		case watcher.changes <- struct{}{}:
		default:
		}
	}
}

// inotifyMatchesFile checks whether any inotify event in the buffer
// names the target file. Layout from inotify(7):
//
//	struct inotify_event {
//	    int32_t  wd;     // offset 0
//	    uint32_t mask;   // offset 4
//	    uint32_t cookie; // offset 8
//	    uint32_t len;    // offset 12
//	    char     name[]; // offset 16, null-padded to alignment
//	};
func inotifyMatchesFile(buffer []byte, targetFilename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		eventSize := unix.SizeofInotifyEvent + nameLength
		if offset+eventSize > len(buffer) {
			break
		}

		if nameLength > 0 {
			name := nullTerminated(buffer[offset+unix.SizeofInotifyEvent : offset+eventSize])
			if name == targetFilename {
				return true
			}
		}

		offset += eventSize
	}
	return false
}

func nullTerminated(data []byte) string {
	for index, character := range data {
		if character == 0 {
			return string(data[:index])
		}
	}
	return string(data)
}

// drainInotifyEvents discards pending events until the fd would block.
func drainInotifyEvents(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
