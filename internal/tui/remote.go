// Copyright 2025 Arion Yau
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

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bravia/internal/bravia"
)

// SendFunc delivers one remote code to the device.
type SendFunc func(bravia.RemoteCode) error

// keyBinding maps a terminal key to a remote code.
type keyBinding struct {
	key   string
	label string
	code  bravia.RemoteCode
}

var bindings = []keyBinding{
	{"up", "Up", bravia.Up},
	{"down", "Down", bravia.Down},
	{"left", "Left", bravia.Left},
	{"right", "Right", bravia.Right},
	{"enter", "Confirm", bravia.Confirm},
	{"backspace", "Back", bravia.Back},
	{"h", "Home", bravia.Home},
	{"m", "Menu", bravia.Menu},
	{"+", "Volume Up", bravia.VolumeUp},
	{"-", "Volume Down", bravia.VolumeDown},
	{"0", "Mute", bravia.Mute},
	{"pgup", "Channel Up", bravia.ChannelUp},
	{"pgdown", "Channel Down", bravia.ChannelDown},
	{"i", "Input", bravia.Input},
	{"1", "HDMI 1", bravia.HDMI1},
	{"2", "HDMI 2", bravia.HDMI2},
	{"3", "HDMI 3", bravia.HDMI3},
	{"4", "HDMI 4", bravia.HDMI4},
	{" ", "Play/Pause", bravia.Play},
	{"p", "Power", bravia.PowerButton},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Width(11)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type sendResultMsg struct {
	label string
	err   error
}

// RemoteModel is a single-screen on-screen remote control.
type RemoteModel struct {
	send     SendFunc
	host     string
	status   string
	err      error
	quitting bool
}

// NewRemoteModel builds the remote screen for a connected device.
func NewRemoteModel(host string, send SendFunc) RemoteModel {
	return RemoteModel{send: send, host: host}
}

func (m RemoteModel) Init() tea.Cmd {
	return nil
}

func (m RemoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sendResultMsg:
		if msg.err != nil {
			m.status = ""
			m.err = msg.err
		} else {
			m.status = fmt.Sprintf("Sent: %s", msg.label)
			m.err = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		for _, b := range bindings {
			if b.key == msg.String() {
				return m, m.sendCode(b)
			}
		}
	}
	return m, nil
}

func (m RemoteModel) sendCode(b keyBinding) tea.Cmd {
	send := m.send
	return func() tea.Msg {
		return sendResultMsg{label: b.label, err: send(b.code)}
	}
}

func (m RemoteModel) View() string {
	if m.quitting {
		return ""
	}

	view := titleStyle.Render(fmt.Sprintf("Bravia Remote — %s", m.host)) + "\n"
	for _, b := range bindings {
		key := b.key
		if key == " " {
			key = "space"
		}
		view += keyStyle.Render(key) + labelStyle.Render(b.label) + "\n"
	}

	switch {
	case m.err != nil:
		view += errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case m.status != "":
		view += statusStyle.Render(m.status) + "\n"
	}
	view += helpStyle.Render("q to quit") + "\n"
	return view
}

// StartRemote runs the on-screen remote against a connected client.
func StartRemote(host string, client *bravia.Client) error {
	p := tea.NewProgram(NewRemoteModel(host, client.SendRemoteCode), tea.WithAltScreen())

	defer func() {
		if r := recover(); r != nil {
			p.Kill()
		}
	}()

	_, err := p.Run()
	return err
}
