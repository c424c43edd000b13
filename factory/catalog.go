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

package factory

// defaultCatalog returns the precomputed factory configurations of
// arXiv:2302.06639, Table III, p. 35. The table is versioned with the
// article; it is not runtime-configurable.
func defaultCatalog() []*ToffoliFactory {
	return []*ToffoliFactory{
		{
			codeDistance:          3,
			meanPhotons:           3.75,
			errorProbability:      1.05e-3,
			steps:                 23,
			acceptanceProbability: 0.84,
		},
		{
			codeDistance:          3,
			meanPhotons:           5.08,
			errorProbability:      1.02e-4,
			steps:                 29,
			acceptanceProbability: 0.745,
		},
		{
			codeDistance:          3,
			meanPhotons:           5.32,
			errorProbability:      8.14e-5,
			steps:                 35,
			acceptanceProbability: 0.66,
		},
		{
			codeDistance:          5,
			meanPhotons:           7.15,
			errorProbability:      4.62e-6,
			steps:                 46,
			acceptanceProbability: 0.456,
		},
		{
			codeDistance:          5,
			meanPhotons:           8.18,
			errorProbability:      7.00e-7,
			steps:                 53,
			acceptanceProbability: 0.362,
		},
		{
			codeDistance:          5,
			meanPhotons:           8.38,
			errorProbability:      5.36e-7,
			steps:                 60,
			acceptanceProbability: 0.288,
		},
		{
			codeDistance:          7,
			meanPhotons:           9.71,
			errorProbability:      6.14e-8,
			steps:                 73,
			acceptanceProbability: 0.148,
		},
		{
			codeDistance:          7,
			meanPhotons:           10.76,
			errorProbability:      8.40e-9,
			steps:                 81,
			acceptanceProbability: 0.105,
		},
		{
			codeDistance:          7,
			meanPhotons:           11.06,
			errorProbability:      5.16e-9,
			steps:                 89,
			acceptanceProbability: 0.0727,
		},
		{
			codeDistance:          9,
			meanPhotons:           11.64,
			errorProbability:      2.28e-9,
			steps:                 104,
			acceptanceProbability: 0.0262,
		},
		{
			codeDistance:          9,
			meanPhotons:           12.83,
			errorProbability:      2.30e-10,
			steps:                 113,
			acceptanceProbability: 0.0154,
		},
		{
			codeDistance:          9,
			meanPhotons:           13.44,
			errorProbability:      7.36e-11,
			steps:                 122,
			acceptanceProbability: 0.00975,
		},
		{
			codeDistance:          19,
			meanPhotons:           17.35,
			errorProbability:      7.90e-12,
			steps:                 9576,
			acceptanceProbability: 1.0,
		},
		{
			codeDistance:          21,
			meanPhotons:           18.94,
			errorProbability:      5.40e-13,
			steps:                 14112,
			acceptanceProbability: 1.0,
		},
		{
			codeDistance:          23,
			meanPhotons:           20.53,
			errorProbability:      3.74e-14,
			steps:                 21344,
			acceptanceProbability: 1.0,
		},
	}
}

// NewTestFactory creates a factory entry with explicit figures; intended
// for tests that need entries outside the fixed catalog.
func NewTestFactory(codeDistance uint64, meanPhotons, errorProbability, acceptanceProbability float64, steps uint64) *ToffoliFactory {
	return &ToffoliFactory{
		codeDistance:          codeDistance,
		meanPhotons:           meanPhotons,
		errorProbability:      errorProbability,
		acceptanceProbability: acceptanceProbability,
		steps:                 steps,
	}
}
