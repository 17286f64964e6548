// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123", info.String())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A", AppBuildInfo{}.String())
}

func TestAppBuildInfo_WithDefaultVersion(t *testing.T) {
	assert.Equal(t, "2.0.0", NewAppBuildInfo("", "", "").WithDefaultVersion("2.0.0").BuildVersion())
	assert.Equal(t, "1.0.0", NewAppBuildInfo("1.0.0", "", "").WithDefaultVersion("2.0.0").BuildVersion())
}
