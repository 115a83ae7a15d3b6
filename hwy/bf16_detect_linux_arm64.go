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

//go:build linux && arm64

package hwy

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// hasARMBF16 indicates if ARM BF16 is available. golang.org/x/sys/cpu does
// not expose HWCAP2_BF16, so the kernel's feature list is read instead.
// Available on Neoverse V1/N2/V2 (Graviton3+) and other ARMv8.6-A cores.
var hasARMBF16 = detectBF16()

func detectBF16() bool {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return false
	}
	defer f.Close()
	return cpuinfoHasFeature(f, "bf16")
}

// cpuinfoHasFeature reports whether every "Features" line of a
// /proc/cpuinfo listing contains feature. Heterogeneous cores must all
// agree before the feature is considered usable.
func cpuinfoHasFeature(r io.Reader, feature string) bool {
	found := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Features" {
			continue
		}
		has := false
		for _, field := range strings.Fields(value) {
			if field == feature {
				has = true
				break
			}
		}
		if !has {
			return false
		}
		found = true
	}
	return found
}
