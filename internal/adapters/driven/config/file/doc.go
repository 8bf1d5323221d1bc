// Package file provides the file-based configuration adapter.
// Settings are stored as TOML under the remem config directory;
// credentials stay in the environment and never touch this file.
package file
