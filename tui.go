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

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Model is the full-screen explorer: a transcript viewport on top of
// a single command line. Commands are the same as the plain shell's.
type Model struct {
	ready bool

	input      textinput.Model
	transcript viewport.Model

	sh         *shell
	styles     *Styles
	glamourRnd *glamour.TermRenderer

	lines    []string
	quitting bool

	width  int
	height int
}

func NewModel(cfg *Config) (*Model, error) {
	input := textinput.New()
	input.Placeholder = "action, e.g. \"1 42 hello\" (help for the menu)"
	input.Prompt = "> "
	input.Focus()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build markdown renderer: %w", err)
	}

	// The explorer styles its own output; the shell's ANSI coloring
	// would fight with lipgloss.
	shellCfg := *cfg
	shellCfg.Display.Color = false

	m := &Model{
		input:      input,
		sh:         newShell(&shellCfg, nil),
		styles:     NewStyles(),
		glamourRnd: renderer,
	}

	if welcome, err := renderer.Render(usageMarkdown()); err == nil {
		m.lines = append(m.lines, welcome)
	}

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputHeight := 3
		footerHeight := 1
		if !m.ready {
			m.transcript = viewport.New(msg.Width-2, msg.Height-inputHeight-footerHeight)
			m.ready = true
		} else {
			m.transcript.Width = msg.Width - 2
			m.transcript.Height = msg.Height - inputHeight - footerHeight
		}
		m.refreshTranscript()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+y":
			if m.sh.lastRender != "" {
				if err := clipboard.WriteAll(m.sh.lastRender); err != nil {
					m.appendLine(m.styles.ErrMessage.Render("clipboard unavailable: " + err.Error()))
				} else {
					m.appendLine(m.styles.OkMessage.Render("render copied to clipboard"))
				}
			}

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				break
			}
			m.appendLine(m.styles.InputPrompt.Render("> " + line))
			output, quit := m.sh.exec(line)
			if output != "" {
				m.appendLine(output)
			}
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("Treelab %s — AVL workbench", version))
	footer := m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" run  ") +
		m.styles.HelpKey.Render("ctrl+y") + m.styles.HelpDesc.Render(" yank render  ") +
		m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" quit")

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s",
		title,
		m.styles.BorderBlurred.Render(m.transcript.View()),
		m.styles.BorderFocused.Render(m.input.View()),
		footer,
	)
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

// runExplorer starts the alternate-screen explorer UI.
func runExplorer(cfg *Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explorer terminated abnormally: %w", err)
	}
	return nil
}
