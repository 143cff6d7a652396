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

func TestGetSupportedAPIInfo(t *testing.T) {
	t.Run("all services", func(t *testing.T) {
		fd := newFakeDevice(t)
		client := newTestClient(t, fd, "test-psk")

		services, err := client.Guide().GetSupportedAPIInfo(nil)

		require.NoError(t, err)
		assert.Len(t, services, 6)
		assert.JSONEq(t,
			`{"id":5,"method":"getSupportedApiInfo","version":"1.0","params":[{}]}`,
			fd.lastBody(t, "getSupportedApiInfo"))
	})

	t.Run("services filter", func(t *testing.T) {
		fd := newFakeDevice(t)
		client := newTestClient(t, fd, "test-psk")

		services, err := client.Guide().GetSupportedAPIInfo([]string{"avContent"})

		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "avContent", services[0].Service)
		assert.JSONEq(t,
			`{"id":5,"method":"getSupportedApiInfo","version":"1.0","params":[{"services":["avContent"]}]}`,
			fd.lastBody(t, "getSupportedApiInfo"))
	})
}
