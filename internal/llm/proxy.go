package llm

import (
	"net/http"
	"net/url"
)

// proxyFunc builds the proxy selector for the provider's HTTP client.
// Explicit proxy URLs from the LLM config win over environment
// variables; with neither set, the standard environment lookup applies.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
