// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sam

import (
	"bytes"
	"fmt"
)

// Program describes a program that has processed the alignments.
type Program struct {
	uid      string
	previous string
	name     string
	command  string
	version  string
}

// NewProgram returns a Program with the given unique ID, name, command
// line, previous program ID and version. Only uid is required.
func NewProgram(uid, name, command, prev, v string) *Program {
	return &Program{
		uid:      uid,
		previous: prev,
		name:     name,
		command:  command,
		version:  v,
	}
}

func (p *Program) UID() string {
	if p == nil {
		return ""
	}
	return p.uid
}
func (p *Program) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}
func (p *Program) Command() string {
	if p == nil {
		return ""
	}
	return p.command
}
func (p *Program) Previous() string {
	if p == nil {
		return ""
	}
	return p.previous
}
func (p *Program) Version() string {
	if p == nil {
		return ""
	}
	return p.version
}

// String returns the @PG header line for the Program.
func (p *Program) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "@%s\t%s:%s", programTag, idTag, p.uid)
	if p.name != "" {
		fmt.Fprintf(&buf, "\t%s:%s", progNameTag, p.name)
	}
	if p.command != "" {
		fmt.Fprintf(&buf, "\t%s:%s", commandTag, p.command)
	}
	if p.previous != "" {
		fmt.Fprintf(&buf, "\t%s:%s", prevProgTag, p.previous)
	}
	if p.version != "" {
		fmt.Fprintf(&buf, "\t%s:%s", versionTag, p.version)
	}
	return buf.String()
}
