// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package shader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DirectiveMarker starts every directive line.
const DirectiveMarker = "#pragma"

// maxLineSize bounds a single source line. Shader sources with embedded
// data tables can exceed bufio's default.
const maxLineSize = 1024 * 1024

// ScanFile opens path and scans its leading directive block.
func ScanFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shader source %s: %w", path, err)
	}
	defer f.Close()

	return ScanDirectives(f, path)
}

// ScanDirectives reads the leading block of r and records the vertex and
// pixel declarations it contains. Scanning stops at the first line that is
// neither blank nor a directive.
//
// A directive has the form
//
//	#pragma <stage> <entry point> [uniform buffers] [samplers]
//
// Directives with fewer than two tokens, unknown stage keywords, or no entry
// point are skipped.
func ScanDirectives(r io.Reader, path string) (*Descriptor, error) {
	desc := NewDescriptor(path)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, DirectiveMarker) {
			break
		}

		stage, entry, ok := parseDirective(line)
		if !ok {
			continue
		}
		desc.setEntry(stage, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shader source %s: %w", path, err)
	}

	return desc, nil
}

func parseDirective(line string) (Stage, *Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, nil, false
	}
	stage, err := ParseStage(fields[1])
	if err != nil {
		return 0, nil, false
	}

	entry := &Entry{EntryPoint: fields[2]}
	if len(fields) > 3 {
		entry.UniformBuffers = parseCount(fields[3])
	}
	if len(fields) > 4 {
		entry.Samplers = parseCount(fields[4])
	}
	return stage, entry, true
}

func parseCount(s string) uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
