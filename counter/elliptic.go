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

package counter

import "github.com/cockroachdb/errors"

// EllipticCurveLogCounts returns the logical resource tally of the elliptic
// curve discrete logarithm computation for the given key size, using windowed
// modular arithmetic (arXiv:2001.09580, sec 4.1).
//
// Qubit count per arXiv:2302.06639 (p. 22, app C.11), asymptotic gate counts
// per p. 21, app C.10.
func EllipticCurveLogCounts(bitSize, windowSize uint64) (*LogicalCounts, error) {
	if bitSize == 0 {
		return nil, errors.New("key size must be positive")
	}
	if windowSize == 0 {
		return nil, errors.New("window size must be positive")
	}
	qubitCount := 9*bitSize + windowSize + 4
	cubed := bitSize * bitSize * bitSize
	cxCount := divCeil(448*cubed, windowSize)
	ccxCount := divCeil(348*cubed, windowSize)
	return New(qubitCount, cxCount, ccxCount), nil
}

func divCeil(a, b uint64) uint64 {
	return (a + b - 1) / b
}
