// Copyright 2022-2026 The N42 Authors
// This file is part of the evmcore library.
//
// The evmcore library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The evmcore library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the evmcore library. If not, see <http://www.gnu.org/licenses/>.

package params

import "fmt"

var (
	// Following vars are injected through the build flags (-ldflags -X)
	GitCommit string
	GitBranch string
	GitTag    string
)

// Version format: Major.Minor.Build
const (
	VersionMajor    = 1
	VersionMinor    = 0
	VersionBuild    = 12
	VersionModifier = "" // Modifier component (alpha, beta, stable)
)

// Version holds the textual version string.
var Version = func() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionBuild)
}()

// VersionWithCommit annotates the version with the build metadata, when
// present.
func VersionWithCommit() string {
	vsn := Version
	if VersionModifier != "" {
		vsn += "-" + VersionModifier
	}
	if len(GitCommit) >= 8 {
		vsn += "-" + GitCommit[:8]
	}
	return vsn
}
