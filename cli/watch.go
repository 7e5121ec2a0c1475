package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/util-go/xmain"

	"github.com/amitay1/partdraw/redraw"
)

// watch re-renders the job on every change to the job file until the
// process is interrupted. Events are debounced through the redraw
// scheduler, so a save burst from an editor produces one render.
//
// Editors commonly replace the file on save (write to temp, rename
// over), which drops the watch on the old inode, so the watch is kept
// on the containing directory and events are filtered by name.
func watch(ctx context.Context, ms *xmain.State, inputPath, outputPath string, job jobConfig) error {
	abs := ms.AbsPath(inputPath)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	render := func() {
		if err := renderJob(ctx, ms, inputPath, outputPath, job); err != nil {
			// keep watching; a half-saved file renders on the next event
			ms.Log.Error.Printf("render failed: %v", err)
		}
	}

	render()
	ms.Log.Info.Printf("watching %s for changes...", ms.HumanPath(inputPath))

	sched := redraw.NewScheduler(0)
	defer sched.Stop()

	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op == fsnotify.Chmod {
				// See https://github.com/fsnotify/fsnotify/issues/15
				continue
			}
			ms.Log.Debug.Printf("received file system event %v", ev)
			sched.Request(render)
		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
