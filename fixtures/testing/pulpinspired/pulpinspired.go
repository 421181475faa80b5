// Package pulpinspired carries a GPL-3.0 license header for scanner testing.
// Its shape is inspired by the Pulp-Smash test harness project.
//
// GNU GENERAL PUBLIC LICENSE
// Version 3, 29 June 2007
//
// Copyright (C) 2023 Free Software Foundation, Inc. <http://fsf.org/>
// Everyone is permitted to copy and distribute verbatim copies
// of this license document, but changing it is not allowed.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: GPL-3.0
package pulpinspired

import "fmt"

// ServerConfig mirrors a Pulp-Smash style server settings block.
type ServerConfig struct {
	BaseURL  string
	Username string
	Verify   bool
}

// Validate checks the minimal required fields.
func (c ServerConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// TaskPoller imitates Pulp's poll-until-done task tracking without any I/O.
type TaskPoller struct {
	states []string
	pos    int
}

// NewTaskPoller returns a poller that walks the canonical task lifecycle.
func NewTaskPoller() *TaskPoller {
	return &TaskPoller{states: []string{"waiting", "running", "completed"}}
}

// Poll returns the next task state, sticking at the terminal state.
func (p *TaskPoller) Poll() string {
	state := p.states[p.pos]
	if p.pos < len(p.states)-1 {
		p.pos++
	}
	return state
}

// Done reports whether the poller reached a terminal state.
func (p *TaskPoller) Done() bool {
	return p.states[p.pos] == "completed"
}
