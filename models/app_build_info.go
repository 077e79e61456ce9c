// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata that was not injected.
const NotAvailable = "N/A"

// AppBuildInfo describes the passvault binary. cmd/passvault fills it from
// package variables set at link time:
//
//	go build -ldflags "-X main.buildVersion=1.2.0 -X main.buildDate=... -X main.buildCommit=..." ./cmd/passvault
//
// It is printed by the version command and the TUI about page.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns build metadata as given; empty values stay empty.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// OrNotAvailable returns a copy where every value missing from a plain
// `go build` reads [NotAvailable].
func (a AppBuildInfo) OrNotAvailable() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
