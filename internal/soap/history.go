package soap

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// History keeps the last envelope sent and received through a client.
type History struct {
	mu       sync.Mutex
	sent     []byte
	received []byte
}

// Last returns copies of the last request and response bodies.
func (h *History) Last() (sent, received []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Clone(h.sent), bytes.Clone(h.received)
}

// Write prints both envelopes, indented.
func (h *History) Write(w io.Writer) error {
	sent, received := h.Last()
	for _, part := range []struct {
		title string
		body  []byte
	}{{"Last SOAP Request", sent}, {"Last SOAP Response", received}} {
		pretty, err := Pretty(part.body)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n--- "+part.title+" ---\n"+pretty); err != nil {
			return err
		}
	}
	return nil
}

func (h *History) record(sent, received []byte) {
	h.mu.Lock()
	h.sent, h.received = sent, received
	h.mu.Unlock()
}

// Pretty re-indents an XML document by two spaces.
func Pretty(b []byte) (string, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return "", nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return "", errors.Wrap(err, "parse envelope")
	}
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, "write envelope")
	}
	return s, nil
}

// historyTransport copies request and response bodies into a History.
type historyTransport struct {
	base    http.RoundTripper
	history *History
}

func (t *historyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var sent []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, errors.Wrap(err, "read request body")
		}
		sent = b
		req.Body = io.NopCloser(bytes.NewReader(b))
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.history.record(sent, nil)
		return nil, err
	}
	received, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	resp.Body = io.NopCloser(bytes.NewReader(received))
	t.history.record(sent, received)
	return resp, nil
}
