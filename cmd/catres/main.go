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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/qcatlabs/catres/cmd/catres/estimate"
)

// CatResApp data structure
var CatResApp = cli.App{
	Name:      "Cat-Qubit Resource Estimator",
	HelpName:  "catres",
	Usage:     "estimate the physical resources of quantum algorithms on cat-qubit hardware",
	Copyright: "(c) 2025 QCat Labs",
	Commands: []*cli.Command{
		&estimate.ResourcesCommand,
		&estimate.FileCommand,
		&estimate.EccCommand,
	},
}

func main() {
	if err := CatResApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
