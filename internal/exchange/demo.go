package exchange

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/idilsaglam/webtutorials/internal/ui"
)

const (
	ProfileJSONFile = "person_data.json"
	ProfileXMLFile  = "person_data.xml"
	FlightsXMLFile  = "flight_search.xml"
	FlightsJSONFile = "flight_search.json"
)

// RunJSON walks the sample profile through JSON and back, writing
// person_data.json into dir.
func RunJSON(w io.Writer, dir string) error {
	p := Sample()

	ui.Section(w, "Sample data")
	fmt.Fprintf(w, "%+v\n", p)

	b, err := ToJSON(p)
	if err != nil {
		return err
	}
	ui.Section(w, "JSON")
	fmt.Fprintln(w, string(b))

	m, err := ParseJSON(b)
	if err != nil {
		return err
	}
	ui.Section(w, "Parsed")
	fmt.Fprintf(w, "%v\n", m)

	path := filepath.Join(dir, ProfileJSONFile)
	if _, err := JSONRoundTrip(path, p); err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("JSON file '%s' created successfully.", path))
	ui.OK(w, "Data integrity check passed!")
	return nil
}

// RunXML does the same as RunJSON through XML, writing person_data.xml.
func RunXML(w io.Writer, dir string) error {
	m, err := ToMap(Sample())
	if err != nil {
		return err
	}
	b, err := ToXML(m)
	if err != nil {
		return err
	}
	ui.Section(w, "XML")
	fmt.Fprintln(w, string(b))

	path := filepath.Join(dir, ProfileXMLFile)
	back, err := XMLRoundTrip(path, m)
	if err != nil {
		return err
	}
	ui.Section(w, "Parsed from XML")
	fmt.Fprintf(w, "%v\n", back)
	ui.OK(w, fmt.Sprintf("XML file '%s' created successfully.", path))
	ui.OK(w, "XML data integrity check passed!")
	return nil
}

// RunFlights writes the sample flight search as XML, converts it and writes
// the JSON next to it.
func RunFlights(w io.Writer, dir string) error {
	xmlPath := filepath.Join(dir, FlightsXMLFile)
	if err := WriteXMLFile(xmlPath, []byte(SampleFlightsXML)); err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("File '%s' written successfully.", xmlPath))

	out, err := FlightsToJSON([]byte(SampleFlightsXML))
	if err != nil {
		return err
	}
	ui.Section(w, "Flights as JSON")
	fmt.Fprintln(w, string(out))

	jsonPath := filepath.Join(dir, FlightsJSONFile)
	if err := writeFile(jsonPath, append(out, '\n')); err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("File '%s' written successfully.", jsonPath))
	return nil
}
