// Package gpl3webclient carries a GPL-3.0 license header for scanner testing.
// It imitates wget-like download plumbing without performing any I/O.
//
// Copyright (C) Test GPL Code
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// SPDX-License-Identifier: GPL-3.0
package gpl3webclient

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Downloader holds wget-flavored request settings.
type Downloader struct {
	UserAgent    string
	MaxRedirects int
}

// NewDownloader returns a Downloader with wget-like defaults.
func NewDownloader() *Downloader {
	return &Downloader{
		UserAgent:    "GPL-Downloader/1.0",
		MaxRedirects: 5,
	}
}

// OutputName derives the local filename for a URL the way wget does,
// defaulting to index.html for bare directories.
func (d *Downloader) OutputName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		return "index.html", nil
	}
	return name, nil
}

// BuildRequestLine renders the HTTP/1.1 request line and headers for a URL.
func (d *Downloader) BuildRequestLine(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	target := u.RequestURI()
	var b strings.Builder
	fmt.Fprintf(&b, "GET %s HTTP/1.1\r\n", target)
	fmt.Fprintf(&b, "Host: %s\r\n", u.Host)
	fmt.Fprintf(&b, "User-Agent: %s\r\n", d.UserAgent)
	b.WriteString("\r\n")
	return b.String(), nil
}

// RetrySchedule returns the delay sequence (in seconds) for n retries,
// doubling from one second.
func RetrySchedule(n int) []int {
	if n <= 0 {
		return nil
	}
	delays := make([]int, n)
	delay := 1
	for i := range delays {
		delays[i] = delay
		delay *= 2
	}
	return delays
}
