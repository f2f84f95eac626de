// SPDX-License-Identifier: MIT

package matrix

// Accumulate exposes the block primitive to the external test package.
var Accumulate = accumulate
