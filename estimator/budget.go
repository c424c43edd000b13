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

package estimator

// ErrorBudget partitions the total acceptable failure probability across
// the error sources of a fault-tolerant computation. It is supplied once
// per estimation run and never mutated.
type ErrorBudget struct {
	logical  float64
	magic    float64
	rotation float64
}

// NewErrorBudget creates an error budget from its three allocations:
// logical (topological) errors, faulty magic-state preparation, and
// rotation synthesis. The cat architecture does not synthesize rotations;
// its rotation budget is zero.
func NewErrorBudget(logical, magic, rotation float64) *ErrorBudget {
	return &ErrorBudget{logical: logical, magic: magic, rotation: rotation}
}

// Logical returns the budget for logical (topological) errors.
func (b *ErrorBudget) Logical() float64 {
	return b.logical
}

// Magic returns the budget for faulty magic-state preparation.
func (b *ErrorBudget) Magic() float64 {
	return b.magic
}

// Rotation returns the budget for rotation synthesis.
func (b *ErrorBudget) Rotation() float64 {
	return b.rotation
}
