// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cardio provides the shared base for 2D cardiac tissue models:
the Model interface, the ModelBase struct managing grid-shaped state,
the tissue (scar) mask, the masked 5-point Laplacian diffusion operator,
the simulation clock, and plain-text state persistence.

All field state is held in etensor.Float64 tensors with row-major [Y, X]
shape, fixed at construction.  The tissue mask is an etensor.Bits grid of
the same shape, true = non-conducting scar cell.  Field tensors are owned
exclusively by the model instance -- readers copy values out rather than
aliasing internal storage.

A model instance is driven synchronously by exactly one caller: no
internal locking is performed.  Independent instances share no mutable
state and can run in parallel with each other.  Within one step, the
per-row traversal can be tiled across goroutines via the Threads
parameter, preserving the read-old / write-new field-swap semantics.
*/
package cardio
