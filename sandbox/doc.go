// Package sandbox hosts a single-shot, resource-bounded JavaScript
// interpreter used to run one agent-submitted program per call. Every call
// gets a fresh goja.Runtime wired to its own event loop so that host
// functions bridged into the sandbox can suspend on genuine asynchronous
// Go work (an HTTP round trip) rather than only on already-settled
// promises, while still tearing the whole context down - heap and all -
// the moment the call finishes.
package sandbox
