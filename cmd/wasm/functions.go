//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/pkg/playground"
	"github.com/speakeasy-api/edi/pkg/segfmt"
)

// ResolveSegments runs the playground over a grammar and interchange text and
// returns the result as JSON.
func ResolveSegments(grammarYAML, segmentsText, state, mode string, strict bool) (string, error) {
	opts := playground.DefaultRunOptions()
	opts.State = state
	opts.Strict = strict
	opts.Resolve.LogLevel = ""
	if mode != "" {
		m, err := edi.ParseMode(mode)
		if err != nil {
			return "", err
		}
		opts.Mode = m
	}

	result, err := playground.Run(grammarYAML, segmentsText, opts)
	if err != nil {
		return "", err
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run result: %w", err)
	}
	return string(jsonBytes), nil
}

// FormatSegments normalizes interchange text to one segment per line.
func FormatSegments(segmentsText string) (string, error) {
	toks, err := playground.ParseSegments(segmentsText, segfmt.Default)
	if err != nil {
		return "", fmt.Errorf("failed to parse segments: %w", err)
	}
	return segfmt.FormatAll(toks, segfmt.Default), nil
}

// promisify wraps a Go function to return a JavaScript Promise
func promisify(fn func(args []js.Value) (string, error)) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) any {
			resolve := promiseArgs[0]
			reject := promiseArgs[1]

			go func() {
				result, err := fn(args)
				if err != nil {
					errorConstructor := js.Global().Get("Error")
					reject.Invoke(errorConstructor.New(err.Error()))
					return
				}
				resolve.Invoke(result)
			}()

			// The handler of a Promise doesn't return any value
			return nil
		})

		promiseConstructor := js.Global().Get("Promise")
		return promiseConstructor.New(handler)
	})
}

func main() {
	js.Global().Set("ResolveSegments", promisify(func(args []js.Value) (string, error) {
		if len(args) != 5 {
			return "", fmt.Errorf("ResolveSegments: expected 5 args (grammarYAML, segments, state, mode, strict), got %v", len(args))
		}
		return ResolveSegments(args[0].String(), args[1].String(), args[2].String(), args[3].String(), args[4].Bool())
	}))

	js.Global().Set("FormatSegments", promisify(func(args []js.Value) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("FormatSegments: expected 1 arg (segments), got %v", len(args))
		}
		return FormatSegments(args[0].String())
	}))

	// Keep the program running
	<-make(chan bool)
}
