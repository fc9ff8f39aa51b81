package smoketests

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/phanikiran-1619/codelancer-fe/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <script type="module" src="/@vite/client"></script>
    <meta charset="UTF-8" />
    <title>thecodelancer - CS Student Program</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`

const headerSource = `import React from "react";

export default function Header() {
  return <header className="header">thecodelancer</header>;
}
`

func htmlHandler(body string) http.Handler {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/html")
	return httphelpers.HandlerWithResponse(200, headers, []byte(body))
}

func sourceHandler(body string) http.Handler {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/javascript")
	return httphelpers.HandlerWithResponse(200, headers, []byte(body))
}

func notFound() http.Handler {
	return httphelpers.HandlerWithStatus(404)
}

// devServerRoutes is what a healthy dev server serves for the default batteries.
func devServerRoutes() map[string]http.Handler {
	return map[string]http.Handler{
		"/":                               htmlHandler(indexHTML),
		"/src/main.tsx":                   sourceHandler(`import ReactDOM from "react-dom/client";`),
		"/src/App.tsx":                    sourceHandler(`export default function App() {}`),
		"/src/index.css":                  sourceHandler(`body { margin: 0; }`),
		"/@vite/client":                   sourceHandler(`import "/node_modules/vite/dist/client/env.mjs";`),
		"/src/components/Header.tsx":      sourceHandler(headerSource),
		"/src/components/DotsPattern.tsx": sourceHandler(`export const DotsPattern = () => null;`),
		"/src/pages/Home.tsx":             sourceHandler(`import React from "react";`),
	}
}

func devServerHandler(overrides map[string]http.Handler) http.Handler {
	routes := devServerRoutes()
	for path, h := range overrides {
		routes[path] = h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		notFound().ServeHTTP(w, r)
	})
}

func withDevServer(overrides map[string]http.Handler, action func(baseURL string)) {
	httphelpers.WithServer(devServerHandler(overrides), func(server *httptest.Server) {
		action(server.URL)
	})
}

type messageLogger struct {
	messages []string
	errors   []string
}

func (m *messageLogger) TestStarted(framework.TestID) {}

func (m *messageLogger) TestMessage(id framework.TestID, message string) {
	m.messages = append(m.messages, message)
}

func (m *messageLogger) TestError(id framework.TestID, err error) {
	m.errors = append(m.errors, err.Error())
}

func (m *messageLogger) TestFinished(framework.TestID, bool, framework.CapturedOutput) {}

func (m *messageLogger) TestSkipped(framework.TestID, string) {}

func (m *messageLogger) allMessages() string {
	return strings.Join(m.messages, "\n")
}

// runSingleCheck runs one check from the given battery against baseURL.
func runSingleCheck(baseURL string, battery Battery, key string) (bool, *messageLogger) {
	logger := &messageLogger{}
	h := framework.NewTestHarness(baseURL, framework.HarnessOptions{TestLogger: logger})
	check := checkDefinitions[key].build(&battery)
	passed := h.RunCheck(CheckName(key), func(c *framework.Context) bool {
		return check(newT(c, h))
	})
	return passed, logger
}

func testBattery() Battery {
	b := backendBattery()
	b.Delay = 0
	return b
}
