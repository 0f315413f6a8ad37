//go:build js && wasm

// Package main is the browser entry point. Build with
//
//	GOOS=js GOARCH=wasm go build -o web_server_folder/pwademo.wasm ./cmd/pwademo-wasm
//
// and load it from a page holding div_for_wasm_html_injecting and
// div_for_errors.
package main

import (
	"log/slog"
	"os"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/dom"
	"github.com/gorewood/pwademo/internal/router"
)

func main() {
	// stderr is the browser console under wasm_exec.js.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	browser := dom.NewBrowser()
	cfg := config.Default()
	cfg.Origin = browser.Origin()

	r := router.New(browser, cfg, router.WithLogger(logger))
	cmd := r.Start()
	logger.Info("started", "verb", cmd.Verb())

	// Callbacks run on this program; returning from main would release them.
	select {}
}
