// Package theme loads face definitions from TOML, JSON, and Lua theme
// files and applies them to a face environment. A directory watcher
// reloads changed files and reruns the sync and invalidation protocol.
package theme
