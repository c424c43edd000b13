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

// Package qubit models a single physical cat qubit.
//
// A cat qubit is characterized by the ratio κ₁/κ₂ between its one- and
// two-photon loss rates, which sets the intrinsic physical error rate
// (arXiv:2302.06639, p. 2). The average photon number |α|² is treated as an
// error-correction code parameter and lives in the code package.
package qubit

// DefaultLossRatio is κ₁/κ₂ = 1e-5, the value used to precompute the
// Toffoli factory catalog. The catalog becomes invalid for other values.
const DefaultLossRatio = 1e-5

// CatQubit stores κ₁/κ₂, the ratio between the one- and two-photon loss
// rates of a cat qubit.
type CatQubit struct {
	LossRatio float64
}

// New creates a cat qubit with the default loss ratio κ₁/κ₂ = 1e-5.
func New() *CatQubit {
	return &CatQubit{LossRatio: DefaultLossRatio}
}
