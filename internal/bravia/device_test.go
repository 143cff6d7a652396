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

package bravia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bravia/internal/bravia"
)

func newTestTV(t *testing.T, fd *fakeDevice) *bravia.TV {
	t.Helper()
	return bravia.NewTV(newTestClient(t, fd, "test-psk"), fd.host())
}

func TestTVRemoteAction(t *testing.T) {
	fd := newFakeDevice(t)
	tv := newTestTV(t, fd)

	response := tv.Process([]byte(`{"type":"remote","action":"volume_up"}`))

	require.True(t, response.Success, response.Error)
	assert.Equal(t, 1, fd.remoteCalls())
}

func TestTVControlAction(t *testing.T) {
	fd := newFakeDevice(t)
	fd.respond("getPowerStatus", `{"result":[{"status":"active"}]}`)
	tv := newTestTV(t, fd)

	response := tv.Process([]byte(`{"type":"control","action":"power_status"}`))

	require.True(t, response.Success, response.Error)
	assert.Equal(t, "active", response.Data)
}

func TestTVControlActionWithParameters(t *testing.T) {
	fd := newFakeDevice(t)
	tv := newTestTV(t, fd)

	response := tv.Process([]byte(`{
		"type": "control",
		"action": "set_volume",
		"parameters": {"target": "speaker", "volume": "20", "ui": "on", "version": "1.2"}
	}`))

	require.True(t, response.Success, response.Error)
	assert.JSONEq(t,
		`{"id":98,"method":"setAudioVolume","version":"1.2","params":[{"target":"speaker","volume":"20","ui":"on"}]}`,
		fd.lastBody(t, "setAudioVolume"))
}

func TestTVRejectsBadRequests(t *testing.T) {
	fd := newFakeDevice(t)
	tv := newTestTV(t, fd)

	for name, action := range map[string]string{
		"malformed json":        `{not json`,
		"missing type":          `{"action":"power_status"}`,
		"missing action":        `{"type":"control"}`,
		"unknown type":          `{"type":"telepathy","action":"power_status"}`,
		"unknown remote action": `{"type":"remote","action":"frobnicate"}`,
		"unknown control":       `{"type":"control","action":"frobnicate"}`,
	} {
		t.Run(name, func(t *testing.T) {
			response := tv.Process([]byte(action))
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Error)
		})
	}
	assert.Equal(t, 0, fd.remoteCalls())
}

func TestTVInfo(t *testing.T) {
	fd := newFakeDevice(t)
	tv := newTestTV(t, fd)

	info := tv.Info()
	assert.Equal(t, "bravia_tv", info.Type)
	assert.Equal(t, fd.host(), info.Address)
	assert.Contains(t, info.Capabilities, "remote_control")
}

func TestSendRemoteCode(t *testing.T) {
	fd := newFakeDevice(t)
	client := newTestClient(t, fd, "test-psk")

	require.NoError(t, client.SendRemoteCode(bravia.Home))
	assert.Equal(t, 1, fd.remoteCalls())
}
