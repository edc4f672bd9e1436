// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package opengl implements fx.Device on desktop OpenGL 2.1 through
// go-gl. A GL context must be current on the calling goroutine before New
// and for every later call; the device does not create windows.
package opengl
