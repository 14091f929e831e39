// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags and shown
// by the version command.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit returns the commit hash the binary was built from.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the metadata one field per line.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
