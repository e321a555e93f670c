// Copyright 2022-2026 Princess B33f Heavy Industries / Dave Shanley
// SPDX-License-Identifier: MIT

// Package codemode exposes an OpenAPI document to an autonomous agent
// through exactly two tools: search, which runs read-only discovery code
// against the fully dereferenced specification, and execute, which runs
// code that makes live HTTP calls through a sandboxed request bridge.
//
// There are two steps to using an Orchestrator. First, build a Config
// naming the spec, the host request handler, and any resource limits.
// Then call New(config) to construct the Orchestrator and call Tools(),
// CallTool(), or the Search/Execute helpers directly.
package codemode
