package main

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/spaghettifunk/gles3/internal/core"
)

func watchAction(ctx *cli.Context) error {
	path := ctx.String(registryFlag.Name)
	if path == "" {
		return errors.New("watch needs -registry")
	}
	if err := generateAction(ctx); err != nil {
		core.LogError("%s", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors replace files on save, so watch the directory and filter.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	core.LogInfo("watching %s", target)
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != target || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := generateAction(ctx); err != nil {
				core.LogError("%s", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			core.LogWarn("watcher: %s", err)
		case <-sigCh:
			return nil
		}
	}
}
