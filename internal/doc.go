// Package internal contains the core implementation packages for drift.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the drift CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - compiler: Script map and plugin compilation into the execution plan
//   - plugins: Plugin model, registry, and the built-in transpiler
//   - config: Configuration management with validation
//   - logging: Structured logging on top of log/slog
//   - watcher: Config file monitoring with debouncing for live reload
//   - reload: WebSocket notification of plan swaps to dev clients
//   - entrypoints: HTML scanning for additional known entrypoints
package internal
