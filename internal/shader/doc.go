// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package shader describes HLSL sources in the terms the compiler driver cares
// about: which stages a file declares, which function is the entry point of
// each stage, and where the compiled artifact for a stage ends up.
//
// # Core Concepts
//
//   - Descriptor: what a single .hlsl file declares in its leading block of
//     `#pragma` directives. It is built fresh for every run and never stored.
//
//   - Stage: the closed set of pipeline stages the driver knows how to
//     compile (vertex and pixel). Every stage maps to a fixed profile and a
//     file name suffix.
//
//   - OutputMode: the binary format requested from the compiler (SPIR-V or
//     DXIL). It decides the artifact extension and any extra compiler flag.
//
//   - Target: one (file, stage) pair ready to be handed to the compiler. It is
//     created, consumed, and dropped; there is no build graph.
//
// Only the leading directive block of a file is inspected. Directives that
// appear after the first line of real shader code are not recognized.
package shader
