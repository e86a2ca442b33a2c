// Copyright 2025 go-intpack Authors
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

package ibp

import "testing"

func TestNoSpecializeEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("IBP_NO_SPECIALIZE", tt.value)
			if got := NoSpecializeEnv(); got != tt.want {
				t.Errorf("NoSpecializeEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	if got := PathSpecialized.String(); got != "specialized" {
		t.Errorf("PathSpecialized.String() = %q", got)
	}
	if got := PathGeneric.String(); got != "generic" {
		t.Errorf("PathGeneric.String() = %q", got)
	}
	if got := Path(9).String(); got != "unknown" {
		t.Errorf("Path(9).String() = %q", got)
	}
}

func TestSetPathRoutesKernels(t *testing.T) {
	defer setPath(CurrentPath())

	for _, p := range []Path{PathSpecialized, PathGeneric} {
		setPath(p)
		if CurrentPath() != p {
			t.Fatalf("CurrentPath() = %v after setPath(%v)", CurrentPath(), p)
		}
		run := runFrom(10, 1, 2, 3)
		packed := make([]int32, 2)
		packRun(9, run, packed, 2)
		out := make([]int32, RunLength)
		unpackRun(9, packed, out, 2)
		for i := range run {
			if out[i] != run[i] {
				t.Fatalf("%v: value %d = %d, want %d", p, i, out[i], run[i])
			}
		}
	}
}
