// Package mixed intentionally mixes conflicting license headers for scanner
// testing. This package must NEVER be used in production environments.
//
// MIT License
//
// Copyright (c) 2023 MIT Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// ----
//
// BSD 3-Clause License
//
// Copyright (c) 2023, BSD Contributors. All rights reserved.
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the conditions of the BSD License
// are met.
//
// ----
//
// GNU GENERAL PUBLIC LICENSE Version 3
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License.
//
// ----
//
// PROPRIETARY NOTICE
//
// Portions Copyright (c) 2023 ClosedCorp. All rights reserved.
// Commercial License required for the proprietary sections.
//
// SPDX-License-Identifier: MIT AND BSD-3-Clause AND GPL-3.0 AND LicenseRef-Proprietary
package mixed

import "strings"

// SectionLicense names the nominal license of each code section below.
// The conflict between them is the point of this fixture.
var SectionLicense = map[string]string{
	"reverse":    "MIT",
	"capitalize": "BSD-3-Clause",
	"repeat":     "GPL-3.0",
	"obfuscate":  "Proprietary",
}

// Reverse returns s reversed rune-by-rune. (MIT section.)
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Capitalize upper-cases the first rune of every word. (BSD section.)
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Repeat joins n copies of s with sep. (GPL section.)
func Repeat(s, sep string, n int) string {
	if n <= 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, sep)
}

// Obfuscate XORs s with a fixed key byte. Toy "encryption" only.
// (Proprietary section.)
func Obfuscate(s string) string {
	const key = 0x5a
	out := []byte(s)
	for i := range out {
		out[i] ^= key
	}
	return string(out)
}
