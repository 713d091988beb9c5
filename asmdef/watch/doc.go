// Package watch drives the asmdef patcher from file-system events, standing
// in for an editor's asset-import hook. A Watcher observes one or more
// project roots recursively; when an .asmdef file is created or written it
// is re-patched after a short debounce, and newly created directories are
// added to the watch set.
package watch
