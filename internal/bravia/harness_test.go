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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"bravia/internal/bravia"
)

// fixtureServices is what the fake device advertises through
// getSupportedApiInfo. videoScreen is deliberately absent so tests can
// exercise the service-not-found path.
func fixtureServices() []bravia.ServiceInfo {
	api := func(name string, versions ...string) bravia.APIInfo {
		info := bravia.APIInfo{Name: name}
		for _, v := range versions {
			info.Versions = append(info.Versions, bravia.APIVersion{Version: v})
		}
		return info
	}

	return []bravia.ServiceInfo{
		{
			Service:   "guide",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs:      []bravia.APIInfo{api("getSupportedApiInfo", "1.0")},
		},
		{
			Service:   "system",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs: []bravia.APIInfo{
				api("getPowerStatus", "1.0"),
				api("getCurrentTime", "1.0", "1.1"),
				api("getPowerSavingMode", "1.0"),
				api("getSystemInformation", "1.0"),
				api("getRemoteControllerInfo", "1.0"),
				api("getWolMode", "1.0"),
				api("setPowerStatus", "1.0"),
			},
		},
		{
			Service:   "audio",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs: []bravia.APIInfo{
				api("getVolumeInformation", "1.0"),
				api("getSoundSettings", "1.1"),
				api("setAudioVolume", "1.0", "1.2"),
				api("setAudioMute", "1.0"),
			},
		},
		{
			Service:   "avContent",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs: []bravia.APIInfo{
				api("getSchemeList", "1.0"),
				api("getSourceList", "1.0"),
				api("getContentCount", "1.0", "1.1"),
				api("getPlayingContentInfo", "1.0"),
				api("setPlayContent", "1.0"),
			},
		},
		{
			Service:   "appControl",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs: []bravia.APIInfo{
				api("getApplicationList", "1.0"),
				api("getTextForm", "1.1"),
				api("setTextForm", "1.0", "1.1"),
				api("terminateApps", "1.0"),
			},
		},
		{
			Service:   "encryption",
			Protocols: []string{"xhrpost_jsonizer"},
			APIs:      []bravia.APIInfo{api("getPublicKey", "1.0")},
		},
	}
}

// fakeDevice is an httptest server speaking just enough of the control
// protocol for the client: it answers discovery from fixtureServices
// (honoring the services filter), serves canned responses per method
// and records every request it sees.
type fakeDevice struct {
	*httptest.Server

	mu        sync.Mutex
	calls     int
	irccCalls int
	bodies    map[string][]string
	responses map[string]string
	status    map[string]int
}

func newFakeDevice(t *testing.T) *fakeDevice {
	t.Helper()
	fd := &fakeDevice{
		bodies:    make(map[string][]string),
		responses: make(map[string]string),
		status:    make(map[string]int),
	}
	fd.Server = httptest.NewServer(http.HandlerFunc(fd.handle))
	t.Cleanup(fd.Close)
	return fd
}

func (fd *fakeDevice) host() string {
	return strings.TrimPrefix(fd.URL, "http://")
}

// respond sets the canned response body for a method.
func (fd *fakeDevice) respond(method, body string) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.responses[method] = body
}

// respondStatus makes a method answer with an HTTP status code.
func (fd *fakeDevice) respondStatus(method string, status int) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	fd.status[method] = status
}

// controlCalls counts control API requests, discovery included.
func (fd *fakeDevice) controlCalls() int {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return fd.calls
}

// remoteCalls counts IRCC requests.
func (fd *fakeDevice) remoteCalls() int {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return fd.irccCalls
}

// lastBody returns the most recent raw request body seen for a method.
func (fd *fakeDevice) lastBody(t *testing.T, method string) string {
	t.Helper()
	fd.mu.Lock()
	defer fd.mu.Unlock()
	bodies := fd.bodies[method]
	require.NotEmpty(t, bodies, "no request recorded for %s", method)
	return bodies[len(bodies)-1]
}

func (fd *fakeDevice) handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/IRCC") {
		fd.mu.Lock()
		fd.irccCalls++
		fd.mu.Unlock()
		w.WriteHeader(http.StatusOK)
		return
	}

	body, _ := io.ReadAll(r.Body)
	var envelope struct {
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	_ = json.Unmarshal(body, &envelope)

	fd.mu.Lock()
	fd.calls++
	fd.bodies[envelope.Method] = append(fd.bodies[envelope.Method], string(body))
	status := fd.status[envelope.Method]
	response := fd.responses[envelope.Method]
	fd.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if response == "" && envelope.Method == "getSupportedApiInfo" {
		fd.serveDiscovery(w, envelope.Params)
		return
	}
	if response == "" {
		response = `{"result":[]}`
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(response))
}

func (fd *fakeDevice) serveDiscovery(w http.ResponseWriter, params []json.RawMessage) {
	services := fixtureServices()

	var filter struct {
		Services []string `json:"services"`
	}
	if len(params) > 0 {
		_ = json.Unmarshal(params[0], &filter)
	}
	if len(filter.Services) > 0 {
		wanted := make(map[string]bool, len(filter.Services))
		for _, name := range filter.Services {
			wanted[name] = true
		}
		filtered := services[:0]
		for _, service := range services {
			if wanted[service.Service] {
				filtered = append(filtered, service)
			}
		}
		services = filtered
	}

	payload, _ := json.Marshal(map[string]any{"result": []any{services}})
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func newTestClient(t *testing.T, fd *fakeDevice, credential string) *bravia.Client {
	t.Helper()
	client, err := bravia.NewClient(fd.host(), credential, false)
	require.NoError(t, err)
	return client
}
