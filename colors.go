// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "github.com/charmbracelet/lipgloss"

// ANSI color codes for the plain line-oriented shell.
const (
	Green  = "\033[92m"
	Red    = "\033[91m"
	Yellow = "\033[93m"
	Cyan   = "\033[96m"
	Reset  = "\033[0m"
)

// Styles holds the lipgloss styling used by the full-screen explorer.
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	InputPrompt   lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	OkMessage     lipgloss.Style
	ErrMessage    lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		OkMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		ErrMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
