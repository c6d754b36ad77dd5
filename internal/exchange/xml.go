package exchange

import (
	"fmt"
	"os"

	"github.com/clbanning/mxj/v2"
	"github.com/google/go-cmp/cmp"
)

const (
	xmlRoot = "root"
	xmlItem = "item"
)

// ToXML renders m under a <root> element. Lists become a parent element
// holding one <item> per entry, and no type attributes are written.
func ToXML(m map[string]any) ([]byte, error) {
	wrapped, _ := wrapLists(m).(map[string]any)
	b, err := mxj.Map(wrapped).XmlIndent("", "  ", xmlRoot)
	if err != nil {
		return nil, fmt.Errorf("xml marshal: %w", err)
	}
	return b, nil
}

// ParseXML returns the children of the root element. Leaf values are strings.
func ParseXML(b []byte) (map[string]any, error) {
	mv, err := mxj.NewMapXml(b)
	if err != nil {
		return nil, fmt.Errorf("xml unmarshal: %w", err)
	}
	root, ok := mv[xmlRoot].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("xml document has no <%s> element", xmlRoot)
	}
	return root, nil
}

func WriteXMLFile(path string, b []byte) error { return writeFile(path, b) }

func ReadXMLFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// XMLRoundTrip converts m to XML, writes it to path and checks that parsing
// the file gives the same map as parsing the generated document.
func XMLRoundTrip(path string, m map[string]any) (map[string]any, error) {
	b, err := ToXML(m)
	if err != nil {
		return nil, err
	}
	parsed, err := ParseXML(b)
	if err != nil {
		return nil, err
	}
	if err := WriteXMLFile(path, b); err != nil {
		return nil, err
	}
	content, err := ReadXMLFile(path)
	if err != nil {
		return nil, err
	}
	back, err := ParseXML(content)
	if err != nil {
		return nil, err
	}
	if diff := cmp.Diff(parsed, back); diff != "" {
		return back, fmt.Errorf("xml round trip mismatch (-want +got):\n%s", diff)
	}
	return back, nil
}

func wrapLists(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = wrapLists(val)
		}
		return out
	case []any:
		items := make([]any, len(t))
		for i, val := range t {
			items[i] = wrapLists(val)
		}
		return map[string]any{xmlItem: items}
	case nil:
		return ""
	default:
		return v
	}
}
