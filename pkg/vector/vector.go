// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package vector

import (
	"fmt"
	"os"

	"github.com/consensys/go-mathex/pkg/withdrawal"
	"github.com/holiman/uint256"
	"github.com/tidwall/gjson"
)

// Fields lists the input fields of a withdrawal vector, in order.
var Fields = []string{"a", "b", "c", "e", "w", "m", "n", "x"}

// Vector is a named set of withdrawal inputs.
type Vector struct {
	Name  string
	Input withdrawal.Input
}

// ParseError describes a problem with some part of a vector file.  Index
// identifies the offending position in the original text.
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	return e.Message
}

// Load reads a file of vectors.
func Load(filename string) ([]Vector, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return Parse(bytes)
}

// Parse a JSON array of vectors, each of which is an object with fields a, b,
// c, e, w, m, n and x, and optionally a name.  Values are either JSON numbers
// or decimal strings.  In both cases they are read directly from the text,
// and never through a floating point representation.
func Parse(bytes []byte) ([]Vector, error) {
	if !gjson.ValidBytes(bytes) {
		return nil, &ParseError{"invalid JSON", 0}
	}
	//
	root := gjson.ParseBytes(bytes)
	if !root.IsArray() {
		return nil, &ParseError{"expected array of vectors", root.Index}
	}
	//
	var vectors []Vector
	//
	for i, item := range root.Array() {
		v, err := parseVector(i, item)
		if err != nil {
			return nil, err
		}
		//
		vectors = append(vectors, v)
	}
	//
	return vectors, nil
}

func parseVector(index int, item gjson.Result) (Vector, error) {
	var v Vector
	//
	if !item.IsObject() {
		return v, &ParseError{fmt.Sprintf("vector %d is not an object", index), item.Index}
	}
	//
	v.Name = fmt.Sprintf("#%d", index)
	if name := item.Get("name"); name.Exists() {
		v.Name = name.String()
	}
	//
	fields := []*uint256.Int{&v.Input.A, &v.Input.B, &v.Input.C, &v.Input.E, &v.Input.W, &v.Input.M,
		&v.Input.N, &v.Input.X}
	//
	for i, f := range Fields {
		value := item.Get(f)
		//
		if !value.Exists() {
			return v, &ParseError{fmt.Sprintf("vector %s is missing field \"%s\"", v.Name, f), item.Index}
		} else if err := parseValue(v.Name, f, value, fields[i]); err != nil {
			return v, err
		}
	}
	//
	return v, nil
}

func parseValue(name string, field string, value gjson.Result, dst *uint256.Int) error {
	var text string
	//
	switch value.Type {
	case gjson.Number:
		text = value.Raw
	case gjson.String:
		text = value.Str
	default:
		return &ParseError{fmt.Sprintf("vector %s has non-numeric field \"%s\"", name, field), value.Index}
	}
	//
	if err := dst.SetFromDecimal(text); err != nil {
		return &ParseError{fmt.Sprintf("vector %s has invalid field \"%s\" (%s)", name, field, err), value.Index}
	}
	//
	return nil
}
