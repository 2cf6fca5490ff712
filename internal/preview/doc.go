// Package preview implements the component preview server behind
// "loom preview". It renders each component of the kit with sample data,
// watches the override configuration for changes, and live-reloads
// connected browsers over WebSocket.
package preview
