package config

import (
	"io"
	"log"
	"path/filepath"

	"drainage/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written and passes the result to
// onChange. Files that fail to parse are logged and skipped. Close the
// returned watcher to stop.
func Watch(path string, logger *log.Logger, onChange func(File)) (io.Closer, error) {
	logger = logging.OrDiscard(logger)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file, so watch its directory.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				f, err := Load(target)
				if err != nil {
					logger.Println("config reload:", err)
					continue
				}
				logger.Println("config reloaded from", target)
				onChange(f)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Println("config watcher error:", err)
			}
		}
	}()
	return watcher, nil
}
