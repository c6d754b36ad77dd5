package exchange

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SampleFlightsXML is a two-flight search response.
const SampleFlightsXML = `<FlightSearchResponse>
  <Flights>
    <Flight>
      <FlightNumber>WN123</FlightNumber>
      <Origin>DAL</Origin>
      <Destination>HOU</Destination>
      <DepartureTime>2025-07-20T08:00:00</DepartureTime>
      <ArrivalTime>2025-07-20T09:30:00</ArrivalTime>
      <Fare>150.00</Fare>
    </Flight>
    <Flight>
      <FlightNumber>WN456</FlightNumber>
      <Origin>DAL</Origin>
      <Destination>HOU</Destination>
      <DepartureTime>2025-07-20T10:00:00</DepartureTime>
      <ArrivalTime>2025-07-20T11:30:00</ArrivalTime>
      <Fare>170.00</Fare>
    </Flight>
  </Flights>
</FlightSearchResponse>
`

type Flight struct {
	FlightNumber  string `json:"FlightNumber"`
	Origin        string `json:"Origin"`
	Destination   string `json:"Destination"`
	DepartureTime string `json:"DepartureTime"`
	ArrivalTime   string `json:"ArrivalTime"`
	Fare          Fare   `json:"Fare"`
}

// Fare is a price that always renders with a fractional part.
type Fare float64

func (f Fare) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

type FlightList struct {
	Flights []Flight `json:"flights"`
}

// ParseFlights reads FlightSearchResponse/Flights/Flight elements.
func ParseFlights(b []byte) (FlightList, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(b); err != nil {
		return FlightList{}, fmt.Errorf("parse flights xml: %w", err)
	}
	root := doc.SelectElement("FlightSearchResponse")
	if root == nil {
		return FlightList{}, fmt.Errorf("missing FlightSearchResponse element")
	}
	list := FlightList{Flights: []Flight{}}
	container := root.SelectElement("Flights")
	if container == nil {
		return list, nil
	}
	for i, el := range container.SelectElements("Flight") {
		fare, err := strconv.ParseFloat(childText(el, "Fare"), 64)
		if err != nil {
			return FlightList{}, fmt.Errorf("flight %d: bad fare: %w", i+1, err)
		}
		list.Flights = append(list.Flights, Flight{
			FlightNumber:  childText(el, "FlightNumber"),
			Origin:        childText(el, "Origin"),
			Destination:   childText(el, "Destination"),
			DepartureTime: childText(el, "DepartureTime"),
			ArrivalTime:   childText(el, "ArrivalTime"),
			Fare:          Fare(fare),
		})
	}
	return list, nil
}

// FlightsToJSON converts a flight search response into JSON indented by two spaces.
func FlightsToJSON(b []byte) ([]byte, error) {
	list, err := ParseFlights(b)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return out, nil
}

func childText(el *etree.Element, tag string) string {
	c := el.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}
