// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client application runtime.
//
// It wires the local SQLite store, the server transport, and the background
// synchronization agent into a single process lifecycle: authenticate,
// sync continuously, shut down cleanly on signal.
package client
