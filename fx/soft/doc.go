// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package soft implements fx.Device on the CPU.
//
// Fragment shaders are not compiled. Each known shader source is paired with
// a Go kernel computing the same function, and compiling a shader looks the
// kernel up by its exact source text. Uniform declarations are read from the
// source so active uniform introspection behaves as it does on a driver.
// Sources without a registered kernel fail to compile with an info log.
//
// The device renders headless: the drawing buffer is a float RGBA image
// read back with ReadPixels.
package soft
