/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gomenu/internal/backend/fynemenu"
	"gomenu/internal/backend/memory"
	"gomenu/internal/backend/traymenu"
	"gomenu/internal/config"
	"gomenu/internal/crash"
	"gomenu/internal/export"
	applog "gomenu/internal/log"
	"gomenu/internal/menu"
	"gomenu/internal/metric"
	"gomenu/internal/version"
)

func usage() {
	fmt.Println("gomenu — multi-window menu synchronization demo")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  menudemo version|-v|--version        Show version")
	fmt.Println("  menudemo validate <file>             Parse and validate a menu definition (YAML or JSON)")
	fmt.Println("  menudemo convert <in> <out>          Re-encode a definition; codec follows the extension")
	fmt.Println("  menudemo run [<file>]                Run the configured backend with a definition")
	fmt.Println()
	fmt.Println("Backends: memory (headless, default), fyne (-tags fyne), tray (-tags tray).")
	fmt.Println("Selection via config file or GMENU_BACKEND.")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var snap crash.SnapshotFunc
	defer func() { crash.Recover(snap) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("gomenu — multi-window menu synchronization demo")
			fmt.Println(version.String())
			return
		case "validate":
			if len(args) < 3 {
				fmt.Println("validate requires <file>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			def, err := export.LoadFile(abs)
			if err != nil {
				l.Error("validate failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Printf("OK: %d top-level entries (version %d)\n", len(def.Items), def.Version)
			return
		case "convert":
			if len(args) < 4 {
				fmt.Println("convert requires <in> and <out>")
				usage()
				os.Exit(2)
			}
			def, err := export.LoadFile(args[2])
			if err != nil {
				l.Error("convert load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := export.SaveFile(args[3], def); err != nil {
				l.Error("convert save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", args[3])
			return
		case "run":
			var file string
			if len(args) >= 3 {
				file = args[2]
			}
			if err := run(l, file, &snap); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func run(l *slog.Logger, file string, snap *crash.SnapshotFunc) error {
	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	if file == "" {
		file = cfg.Menu.Definition
	}

	def := demoDefinition()
	if file != "" {
		def, err = export.LoadFile(file)
		if err != nil {
			return err
		}
	}

	events := metric.NewCounter("gomenu_events_total", "Menu events by logical entry id.", "id")
	if cfg.Metrics.Addr != "" {
		go func() {
			l.Info("metrics endpoint up", slog.String("addr", cfg.Metrics.Addr))
			if err := http.ListenAndServe(cfg.Metrics.Addr, metric.Handler()); err != nil {
				l.Error("metrics endpoint failed", slog.Any("err", err))
			}
		}()
	}

	onEvent := func(ev menu.Event) {
		events.Increment(fmt.Sprint(ev.ID))
		l.Info("menu event", slog.Any("id", ev.ID))
	}

	l.Info("run", slog.String("backend", cfg.Menu.Backend), slog.String("definition", file))
	switch cfg.Menu.Backend {
	case "fyne":
		return fynemenu.Run("gomenu demo", def, onEvent)
	case "tray":
		return traymenu.Run("gomenu demo", def, onEvent)
	case "", "memory":
		return runHeadless(l, cfg, file, def, onEvent, snap)
	default:
		return fmt.Errorf("unknown backend %q (want memory, fyne or tray)", cfg.Menu.Backend)
	}
}

// runHeadless drives the engine against the in-memory backend: two fake
// windows, a periodic simulated click, and optional hot reload of the
// definition file. Useful for watching the fan-out in logs without a toolkit.
func runHeadless(l *slog.Logger, cfg config.AppConfig, file string, def *export.Definition, onEvent func(menu.Event), snap *crash.SnapshotFunc) error {
	menu.SetEventHandler(onEvent)
	defer menu.SetEventHandler(nil)

	m := menu.New(memory.New())
	if err := export.Apply(m, def); err != nil {
		return err
	}
	*snap = func() *export.Definition {
		return &export.Definition{Items: export.Snapshot(m.Items())}
	}
	w1 := memory.NewWindow("w1")
	w2 := memory.NewWindow("w2")
	m.AttachWindow(w1)
	m.AttachWindow(w2)

	// Reloaded definitions are handed to the select loop instead of being
	// applied here: the watcher callback runs on the watcher's goroutine,
	// and the engine is not safe for concurrent mutation. Newest wins if
	// the loop is behind.
	reloads := make(chan *export.Definition, 1)
	if cfg.Menu.Watch && file != "" {
		watcher, err := export.Watch(file, func(def *export.Definition) {
			for {
				select {
				case reloads <- def:
					return
				case <-reloads:
				}
			}
		})
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	tick := time.NewTicker(5 * time.Second)
	defer tick.Stop()

	l.Info("headless run; Ctrl+C to exit")
	headlessLoop(l, m, w1, reloads, tick.C, stop)
	return nil
}

// headlessLoop owns the engine: ticks, reloads and shutdown are all handled
// on this one goroutine.
func headlessLoop(l *slog.Logger, m *menu.Menu, w1 *memory.Window, reloads <-chan *export.Definition, tick <-chan time.Time, stop <-chan os.Signal) {
	for {
		select {
		case def := <-reloads:
			if err := export.Apply(m, def); err != nil {
				l.Warn("apply reloaded definition failed", slog.Any("err", err))
			}
		case <-tick:
			simulateClick(w1)
		case <-stop:
			l.Info("shutting down")
			return
		}
	}
}

// simulateClick activates the first actionable widget it finds in w.
func simulateClick(w *memory.Window) {
	var walk func(items []*memory.Widget) bool
	walk = func(items []*memory.Widget) bool {
		for _, it := range items {
			switch it.Kind {
			case memory.KindCheck:
				it.ClickToggle()
				return true
			case memory.KindItem:
				it.ClickActivate()
				return true
			case memory.KindSubmenu:
				if walk(it.Child.Items()) {
					return true
				}
			}
		}
		return false
	}
	if w.Bar != nil {
		walk(w.Bar.Items())
	}
}

// demoDefinition is the built-in tree used when no definition file is given.
func demoDefinition() *export.Definition {
	return &export.Definition{
		Items: []export.Node{
			{
				Kind: export.KindSubmenu,
				Text: "&File",
				Children: []export.Node{
					{Kind: export.KindItem, Text: "&New", Accel: "Ctrl+N"},
					{Kind: export.KindItem, Text: "&Open…", Accel: "Ctrl+O"},
					{Kind: export.KindSeparator},
					{Kind: export.KindCheck, Text: "Auto&save", Checked: true},
					{Kind: export.KindSeparator},
					{Kind: export.KindQuit},
				},
			},
			{
				Kind: export.KindSubmenu,
				Text: "&Edit",
				Children: []export.Node{
					{Kind: export.KindCut},
					{Kind: export.KindCopy},
					{Kind: export.KindPaste},
					{Kind: export.KindSeparator},
					{Kind: export.KindSelectAll},
				},
			},
			{
				Kind: export.KindSubmenu,
				Text: "&Help",
				Children: []export.Node{
					{Kind: export.KindAbout, About: &export.AboutNode{
						Name:    "gomenu demo",
						Version: version.String(),
						Website: "https://example.org/gomenu",
					}},
				},
			},
		},
	}
}
