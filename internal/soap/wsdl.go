package soap

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Port is one service port and the operations its binding exposes.
type Port struct {
	Service    string
	Port       string
	Binding    string
	Operations []string
}

// FetchWSDL downloads a WSDL document and lists its operations.
func FetchWSDL(ctx context.Context, hc *http.Client, url string) ([]Port, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read wsdl")
	}
	return ParseWSDL(b)
}

// ParseWSDL walks definitions/service/port and resolves each port's binding.
// Operation names are sorted.
func ParseWSDL(b []byte) ([]Port, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, errors.Wrap(err, "parse wsdl")
	}
	root := doc.Root()
	if root == nil || root.Tag != "definitions" {
		return nil, errors.New("wsdl: missing definitions element")
	}

	bindings := map[string][]string{}
	for _, bind := range root.SelectElements("binding") {
		var ops []string
		for _, op := range bind.SelectElements("operation") {
			ops = append(ops, op.SelectAttrValue("name", ""))
		}
		sort.Strings(ops)
		bindings[bind.SelectAttrValue("name", "")] = ops
	}

	var ports []Port
	for _, svc := range root.SelectElements("service") {
		for _, p := range svc.SelectElements("port") {
			binding := localName(p.SelectAttrValue("binding", ""))
			ports = append(ports, Port{
				Service:    svc.SelectAttrValue("name", ""),
				Port:       p.SelectAttrValue("name", ""),
				Binding:    binding,
				Operations: bindings[binding],
			})
		}
	}
	return ports, nil
}

func localName(qname string) string {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
