// Copyright 2025 QCat Labs
// This file is part of CatRes, a resource estimator for cat-qubit architectures
//
// CatRes is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CatRes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with CatRes. If not, see <http://www.gnu.org/licenses/>.

// Package interp executes quantum circuit files against a Backend,
// gate by gate. The estimator drives it once per run to accumulate logical
// resource tallies; it performs no amplitude simulation.
package interp

// Backend receives the gate stream of an executed circuit. Implementations
// may track whatever they need; the counting backend turns the stream into
// logical resource tallies.
//
// The interpreter guarantees that indices passed to QubitRelease were
// previously returned by QubitAllocate and are released at most once;
// backends do not validate indices.
type Backend interface {
	// QubitAllocate reserves a qubit and returns its index.
	QubitAllocate() uint64

	// QubitRelease returns a qubit to the backend for reuse.
	QubitRelease(q uint64)

	// Single-qubit gates.
	H(q uint64)
	S(q uint64)
	SAdj(q uint64)
	T(q uint64)
	TAdj(q uint64)
	X(q uint64)
	Y(q uint64)
	Z(q uint64)

	// Two-qubit gates.
	CX(ctrl, target uint64)
	CY(ctrl, target uint64)
	CZ(ctrl, target uint64)
	Swap(q0, q1 uint64)

	// CCX is the three-qubit Toffoli gate.
	CCX(ctrl0, ctrl1, target uint64)

	// M measures a qubit; counting backends return a fixed placeholder.
	M(q uint64) bool

	// Reset returns a qubit to its initial state.
	Reset(q uint64)

	// CaptureQuantumState returns the tracked amplitudes; counting
	// backends return an empty state.
	CaptureQuantumState() []complex128

	// QubitIsZero reports whether a qubit is in the zero state; counting
	// backends answer with a fixed placeholder.
	QubitIsZero(q uint64) bool
}
