// Copyright ©2025 The FloatKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"runtime/debug"
)

const root = "github.com/floatkit/radix"

// Version reports the module version recorded in the running binary,
// whether the module was built directly (the sortbench commands) or
// pulled in as a dependency. It returns "unknown" in binaries built
// without module support.
func Version() string {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if b.Main.Path == root && b.Main.Version != "" {
		return b.Main.Version
	}
	for _, m := range b.Deps {
		if m.Path != root {
			continue
		}
		if m.Replace != nil {
			return m.Replace.Path + "@" + m.Replace.Version
		}
		return m.Version
	}
	return "unknown"
}
