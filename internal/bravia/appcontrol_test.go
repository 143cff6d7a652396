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
)

func TestSetTextForm(t *testing.T) {
	t.Run("version 1.1 nests text and encKey", func(t *testing.T) {
		fd := newFakeDevice(t)
		client := newTestClient(t, fd, "test-psk")

		err := client.AppControl().SetTextForm("hello", "enc-key", "1.1")

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"id":601,"method":"setTextForm","version":"1.1","params":[{"encKey":"enc-key","text":"hello"}]}`,
			fd.lastBody(t, "setTextForm"))
	})

	t.Run("version 1.1 without encKey", func(t *testing.T) {
		fd := newFakeDevice(t)
		client := newTestClient(t, fd, "test-psk")

		err := client.AppControl().SetTextForm("hello", "", "1.1")

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"id":601,"method":"setTextForm","version":"1.1","params":[{"text":"hello"}]}`,
			fd.lastBody(t, "setTextForm"))
	})

	t.Run("version 1.0 sends the bare string", func(t *testing.T) {
		fd := newFakeDevice(t)
		client := newTestClient(t, fd, "test-psk")

		err := client.AppControl().SetTextForm("hello", "", "")

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"id":601,"method":"setTextForm","version":"1.0","params":["hello"]}`,
			fd.lastBody(t, "setTextForm"))
	})
}

func TestGetTextForm(t *testing.T) {
	fd := newFakeDevice(t)
	fd.respond("getTextForm", `{"result":[{"text":"typed so far"}]}`)
	client := newTestClient(t, fd, "test-psk")

	text, err := client.AppControl().GetTextForm("")

	require.NoError(t, err)
	assert.Equal(t, "typed so far", text)
	assert.JSONEq(t,
		`{"id":60,"method":"getTextForm","version":"1.1","params":[{}]}`,
		fd.lastBody(t, "getTextForm"))
}

func TestGetApplicationList(t *testing.T) {
	fd := newFakeDevice(t)
	fd.respond("getApplicationList", `{"result":[[
		{"title":"YouTube","uri":"com.sony.dtv.youtube","icon":"http://example/icon.png"},
		{"title":"Netflix","uri":"com.sony.dtv.netflix"}
	]]}`)
	client := newTestClient(t, fd, "test-psk")

	apps, err := client.AppControl().GetApplicationList()

	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "YouTube", apps[0].Title)
	assert.Empty(t, apps[1].Icon)
}

func TestTerminateApps(t *testing.T) {
	fd := newFakeDevice(t)
	client := newTestClient(t, fd, "test-psk")

	require.NoError(t, client.AppControl().TerminateApps())
	assert.JSONEq(t,
		`{"id":55,"method":"terminateApps","version":"1.0","params":[]}`,
		fd.lastBody(t, "terminateApps"))
}
