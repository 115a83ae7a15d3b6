// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

// Arity is the operand shape of a generated operator.
type Arity int

const (
	// Unary operators take only the receiver.
	Unary Arity = iota
	// Binary operators take the receiver and one other vector.
	Binary
	// Relational operators are binary and return a lane mask.
	Relational
)

// String returns the section title used in the generated file.
func (a Arity) String() string {
	switch a {
	case Unary:
		return "Unary operators"
	case Binary:
		return "Binary operators"
	case Relational:
		return "Relational operators"
	default:
		return "Unknown"
	}
}

// Operator is one row of the operator table.
type Operator struct {
	// Key is the snake_case operator name. The method name is its title-cased
	// form and must exist on Float32x4.
	Key   string
	Arity Arity
	// Doc completes the sentence "<Method> ...".
	Doc string
}

// operators lists every BFloat16x8 method emitted into ops_bf16x8_gen.go,
// grouped by arity in output order.
var operators = []Operator{
	{"neg", Unary, "negates every lane."},
	{"abs", Unary, "returns the absolute value of every lane."},
	{"trunc", Unary, "rounds every lane towards zero."},
	{"sqrt", Unary, "returns the square root of every lane."},
	{"reciprocal", Unary, "returns 1/x for every lane, using a true float32 division rather than an estimate."},
	{"exp", Unary, "returns e^x for every lane."},
	{"log", Unary, "returns the natural logarithm of every lane."},
	{"tanh", Unary, "returns the hyperbolic tangent of every lane."},

	{"add", Binary, "returns v + other for every lane."},
	{"sub", Binary, "returns v - other for every lane."},
	{"mul", Binary, "returns v * other for every lane."},
	{"div", Binary, "returns v / other for every lane."},
	{"min", Binary, "returns the lane-wise minimum. A NaN in either lane yields NaN."},
	{"max", Binary, "returns the lane-wise maximum. A NaN in either lane yields NaN."},

	{"equal", Relational, "returns 0xFFFF in lanes where v == other and 0 elsewhere."},
	{"not_equal", Relational, "returns 0xFFFF in lanes where v != other and 0 elsewhere."},
	{"less", Relational, "returns 0xFFFF in lanes where v < other and 0 elsewhere."},
	{"less_equal", Relational, "returns 0xFFFF in lanes where v <= other and 0 elsewhere."},
	{"greater", Relational, "returns 0xFFFF in lanes where v > other and 0 elsewhere."},
	{"greater_equal", Relational, "returns 0xFFFF in lanes where v >= other and 0 elsewhere."},
}
