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

package interp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// The interpreter accepts an OpenQASM 2.0 subset: one qubit register,
// Clifford gates, swap, Toffoli, measurement and reset. Rotation gates are
// not part of the cat architecture's counting model and are rejected.

type opKind int

const (
	opGate1 opKind = iota
	opGate2
	opGate3
	opSwap
	opMeasure
	opReset
)

type statement struct {
	kind opKind
	name string
	args []uint64
}

// Program is a parsed circuit, ready to be run against a Backend.
type Program struct {
	numQubits  uint64
	statements []statement
}

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex    = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\]$`)
	cregRegex    = regexp.MustCompile(`^creg\s+\w+\[\d+\]$`)
	gate1Regex   = regexp.MustCompile(`^(\w+)\s+\w+\[(\d+)\]$`)
	gate2Regex   = regexp.MustCompile(`^(\w+)\s+\w+\[(\d+)\]\s*,\s*\w+\[(\d+)\]$`)
	gate3Regex   = regexp.MustCompile(`^(\w+)\s+\w+\[(\d+)\]\s*,\s*\w+\[(\d+)\]\s*,\s*\w+\[(\d+)\]$`)
	measureRegex = regexp.MustCompile(`^measure\s+\w+\[(\d+)\](\s*->\s*\w+\[\d+\])?$`)
)

var singleQubitGates = map[string]string{
	"h": "h", "x": "x", "y": "y", "z": "z",
	"s": "s", "sdg": "sdg", "t": "t", "tdg": "tdg",
	"id": "id",
}

var twoQubitGates = map[string]string{
	"cx": "cx", "cnot": "cx", "cy": "cy", "cz": "cz",
}

var threeQubitGates = map[string]string{
	"ccx": "ccx", "toffoli": "ccx",
}

// Parse reads a circuit source and validates every statement, including
// qubit indices against the declared register size.
func Parse(source string) (*Program, error) {
	program := &Program{}
	declared := false
	for number, raw := range strings.Split(source, "\n") {
		line := stripComment(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if !strings.HasSuffix(line, ";") {
			return nil, errors.Newf("line %v: missing terminating ';' in %q", number+1, line)
		}
		line = strings.TrimSpace(strings.TrimSuffix(line, ";"))
		if line == "barrier" || strings.HasPrefix(line, "barrier ") || cregRegex.MatchString(line) {
			continue
		}
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			if declared {
				return nil, errors.Newf("line %v: only one qubit register is supported", number+1)
			}
			size, err := strconv.ParseUint(m[2], 10, 64)
			if err != nil || size == 0 {
				return nil, errors.Newf("line %v: invalid register size %q", number+1, m[2])
			}
			program.numQubits = size
			declared = true
			continue
		}
		if !declared {
			return nil, errors.Newf("line %v: statement before the qreg declaration", number+1)
		}
		stmt, err := parseStatement(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", number+1)
		}
		for _, q := range stmt.args {
			if q >= program.numQubits {
				return nil, errors.Newf("line %v: qubit index %v exceeds register size %v", number+1, q, program.numQubits)
			}
		}
		program.statements = append(program.statements, stmt)
	}
	if !declared {
		return nil, errors.New("missing qreg declaration")
	}
	return program, nil
}

// NumQubits returns the declared register size.
func (p *Program) NumQubits() uint64 {
	return p.numQubits
}

// NumStatements returns the number of executable statements.
func (p *Program) NumStatements() int {
	return len(p.statements)
}

// Run drives the backend through the circuit: the register is allocated
// qubit by qubit, every gate is applied in program order, and the register
// is released in reverse allocation order.
func (p *Program) Run(backend Backend) {
	register := make([]uint64, p.numQubits)
	for i := range register {
		register[i] = backend.QubitAllocate()
	}
	for _, stmt := range p.statements {
		p.apply(backend, register, stmt)
	}
	for i := len(register) - 1; i >= 0; i-- {
		backend.QubitRelease(register[i])
	}
}

func (p *Program) apply(backend Backend, register []uint64, stmt statement) {
	switch stmt.kind {
	case opGate1:
		q := register[stmt.args[0]]
		switch stmt.name {
		case "h":
			backend.H(q)
		case "x":
			backend.X(q)
		case "y":
			backend.Y(q)
		case "z":
			backend.Z(q)
		case "s":
			backend.S(q)
		case "sdg":
			backend.SAdj(q)
		case "t":
			backend.T(q)
		case "tdg":
			backend.TAdj(q)
		case "id":
			// explicit no-op
		}
	case opGate2:
		ctrl, target := register[stmt.args[0]], register[stmt.args[1]]
		switch stmt.name {
		case "cx":
			backend.CX(ctrl, target)
		case "cy":
			backend.CY(ctrl, target)
		case "cz":
			backend.CZ(ctrl, target)
		}
	case opSwap:
		backend.Swap(register[stmt.args[0]], register[stmt.args[1]])
	case opGate3:
		backend.CCX(register[stmt.args[0]], register[stmt.args[1]], register[stmt.args[2]])
	case opMeasure:
		backend.M(register[stmt.args[0]])
	case opReset:
		backend.Reset(register[stmt.args[0]])
	}
}

func parseStatement(line string) (statement, error) {
	if m := measureRegex.FindStringSubmatch(line); m != nil {
		q, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return statement{}, errors.Newf("invalid qubit reference in %q", line)
		}
		return statement{kind: opMeasure, args: []uint64{q}}, nil
	}
	if m := gate3Regex.FindStringSubmatch(line); m != nil {
		name, ok := threeQubitGates[strings.ToLower(m[1])]
		if !ok {
			return statement{}, errors.Newf("unsupported three-qubit gate %q", m[1])
		}
		args, err := parseIndices(m[2:5])
		if err != nil {
			return statement{}, err
		}
		return statement{kind: opGate3, name: name, args: args}, nil
	}
	if m := gate2Regex.FindStringSubmatch(line); m != nil {
		lower := strings.ToLower(m[1])
		args, err := parseIndices(m[2:4])
		if err != nil {
			return statement{}, err
		}
		if lower == "swap" {
			return statement{kind: opSwap, name: lower, args: args}, nil
		}
		name, ok := twoQubitGates[lower]
		if !ok {
			return statement{}, errors.Newf("unsupported two-qubit gate %q", m[1])
		}
		return statement{kind: opGate2, name: name, args: args}, nil
	}
	if m := gate1Regex.FindStringSubmatch(line); m != nil {
		lower := strings.ToLower(m[1])
		args, err := parseIndices(m[2:3])
		if err != nil {
			return statement{}, err
		}
		if lower == "reset" {
			return statement{kind: opReset, args: args}, nil
		}
		name, ok := singleQubitGates[lower]
		if !ok {
			return statement{}, errors.Newf("unsupported gate %q", m[1])
		}
		return statement{kind: opGate1, name: name, args: args}, nil
	}
	return statement{}, errors.Newf("cannot parse statement %q", line)
}

func parseIndices(fields []string) ([]uint64, error) {
	args := make([]uint64, len(fields))
	for i, field := range fields {
		q, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, errors.Newf("invalid qubit reference %q", field)
		}
		args[i] = q
	}
	return args, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
