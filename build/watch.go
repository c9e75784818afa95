package build

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"autolang/common"
	"autolang/logging"
	"autolang/mods"
	"autolang/syntax"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the watcher waits after the last change before it
// rebuilds.  Editors often write a file in several steps.
const settleDelay = 150 * time.Millisecond

// Watch compiles mod and then recompiles it every time one of its syntax tree
// files or its module file changes until ctx is cancelled.  onResult is called
// after every compilation with its outcome and may be `nil`.
func Watch(ctx context.Context, mod *mods.AutoModule, onResult func(ok bool)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range watchDirs(mod) {
		if err := w.Add(dir); err != nil {
			logging.LogBuildWarning("watch", "unable to watch "+dir+": "+err.Error())
		}
	}

	compile := func() {
		ok := NewCompiler(mod).Compile()
		if onResult != nil {
			onResult(ok)
		}
	}

	compile()

	// armed only once a relevant change is seen
	timer := time.NewTimer(settleDelay)
	timer.Stop()
	reload := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !isRelevantEvent(ev) {
				continue
			}

			if filepath.Base(ev.Name) == common.ModuleFileName {
				reload = true
			}

			timer.Reset(settleDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logging.LogBuildWarning("watch", err.Error())
		case <-timer.C:
			if reload {
				reload = false

				newMod, err := mods.LoadModule(mod.ModuleRoot)
				if err != nil {
					logging.LogConfigError("Module", err.Error())
					continue
				}

				mod = newMod
				for _, dir := range watchDirs(mod) {
					_ = w.Add(dir)
				}
			}

			compile()
		}
	}
}

// isRelevantEvent returns whether a file system event should trigger a rebuild
func isRelevantEvent(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}

	return syntax.IsSyntaxFile(ev.Name) || filepath.Base(ev.Name) == common.ModuleFileName
}

// watchDirs returns every directory that should be watched for mod.  fsnotify
// does not watch recursively so the subdirectories of each source directory
// are listed as well.
func watchDirs(mod *mods.AutoModule) []string {
	dirs := mod.SourceDirPaths()

	for _, sd := range mod.SourceDirs {
		root := filepath.Join(mod.ModuleRoot, sd)

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() && path != root {
				dirs = append(dirs, path)
			}

			return nil
		})
	}

	return dirs
}
