package rx

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FromFile returns a deferred Observable that emits the contents of the file
// at path when subscribed and again every time the file is written or
// created. It runs until the subscription is canceled, and terminates with
// an error if the file cannot be watched or the watcher fails.
func FromFile(path string) Observable[[]byte] {
	return Spawn(func(o Observer[[]byte]) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create fsnotify watcher: %w", err)
		}
		defer watcher.Close()

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch file %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		o.Next(data)

		done := o.Context().Done()
		for o.Active() {
			select {
			case <-done:
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				// Only emit on write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				data, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				o.Next(data)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return fmt.Errorf("file watcher failed: %w", err)
			}
		}
		return nil
	})
}
