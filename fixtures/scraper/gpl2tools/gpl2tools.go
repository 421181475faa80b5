// Package gpl2tools carries a GPL-2.0 license header for scanner testing.
// It imitates nmap-style network scanning helpers without opening sockets.
//
// Copyright (C) 2023 Free Software Foundation, Inc.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
//
// SPDX-License-Identifier: GPL-2.0
package gpl2tools

import (
	"fmt"
	"net"
	"sort"
)

// PortState is a mock scan verdict for a single port.
type PortState struct {
	Port  int
	State string // "open", "closed", "filtered"
}

// wellKnown maps a handful of ports to their conventional services.
var wellKnown = map[int]string{
	22:   "ssh",
	25:   "smtp",
	53:   "dns",
	80:   "http",
	443:  "https",
	3306: "mysql",
	5432: "postgresql",
}

// ServiceName returns the conventional service for a port, or "unknown".
func ServiceName(port int) string {
	if name, ok := wellKnown[port]; ok {
		return name
	}
	return "unknown"
}

// MockScan produces a deterministic fake scan result for the given ports:
// well-known ports report open, everything else filtered. No traffic is sent.
func MockScan(host string, ports []int) []PortState {
	states := make([]PortState, 0, len(ports))
	for _, port := range ports {
		state := "filtered"
		if _, ok := wellKnown[port]; ok {
			state = "open"
		}
		states = append(states, PortState{Port: port, State: state})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Port < states[j].Port })
	return states
}

// ValidateTarget checks that host parses as an IP address or plausible hostname.
func ValidateTarget(host string) error {
	if host == "" {
		return fmt.Errorf("empty target")
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("hostname too long: %d chars", len(host))
	}
	return nil
}
