package soap

import (
	"context"
	"encoding/xml"
	"net/http"

	"go.uber.org/zap"
)

const (
	tempuriNS     = "http://tempuri.org/"
	w3schoolsNS   = "https://www.w3schools.com/xml/"
	countryInfoNS = "http://www.oorsprong.org/websamples.countryinfo"
)

type operands struct {
	XMLName xml.Name
	IntA    int32 `xml:"intA"`
	IntB    int32 `xml:"intB"`
}

type intResult struct {
	XMLName xml.Name
	Value   int32 `xml:",any"`
}

type stringResult struct {
	XMLName xml.Name
	Value   string `xml:",any"`
}

type Calculator struct{ *conn }

func NewCalculator(url string, hc *http.Client, log *zap.Logger) *Calculator {
	if url == "" {
		url = DefaultCalculatorURL
	}
	return &Calculator{newConn(url, hc, log)}
}

func (c *Calculator) Add(ctx context.Context, a, b int32) (int32, error) {
	return c.op(ctx, "Add", a, b)
}

func (c *Calculator) Subtract(ctx context.Context, a, b int32) (int32, error) {
	return c.op(ctx, "Subtract", a, b)
}

func (c *Calculator) Multiply(ctx context.Context, a, b int32) (int32, error) {
	return c.op(ctx, "Multiply", a, b)
}

// Divide is integer division on the server side.
func (c *Calculator) Divide(ctx context.Context, a, b int32) (int32, error) {
	return c.op(ctx, "Divide", a, b)
}

func (c *Calculator) op(ctx context.Context, name string, a, b int32) (int32, error) {
	req := &operands{XMLName: xml.Name{Space: tempuriNS, Local: name}, IntA: a, IntB: b}
	var resp intResult
	if err := c.call(ctx, tempuriNS+name, req, &resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

type celsiusToFahrenheit struct {
	XMLName xml.Name `xml:"https://www.w3schools.com/xml/ CelsiusToFahrenheit"`
	Celsius string   `xml:"Celsius"`
}

type fahrenheitToCelsius struct {
	XMLName    xml.Name `xml:"https://www.w3schools.com/xml/ FahrenheitToCelsius"`
	Fahrenheit string   `xml:"Fahrenheit"`
}

// TempConverter works on strings because the service does; it answers
// "Error" for input it cannot parse.
type TempConverter struct{ *conn }

func NewTempConverter(url string, hc *http.Client, log *zap.Logger) *TempConverter {
	if url == "" {
		url = DefaultTempConvertURL
	}
	return &TempConverter{newConn(url, hc, log)}
}

func (c *TempConverter) CelsiusToFahrenheit(ctx context.Context, celsius string) (string, error) {
	var resp stringResult
	if err := c.call(ctx, w3schoolsNS+"CelsiusToFahrenheit", &celsiusToFahrenheit{Celsius: celsius}, &resp); err != nil {
		return "", err
	}
	return resp.Value, nil
}

func (c *TempConverter) FahrenheitToCelsius(ctx context.Context, fahrenheit string) (string, error) {
	var resp stringResult
	if err := c.call(ctx, w3schoolsNS+"FahrenheitToCelsius", &fahrenheitToCelsius{Fahrenheit: fahrenheit}, &resp); err != nil {
		return "", err
	}
	return resp.Value, nil
}

type capitalCity struct {
	XMLName xml.Name `xml:"http://www.oorsprong.org/websamples.countryinfo CapitalCity"`
	ISOCode string   `xml:"sCountryISOCode"`
}

type listOfCountryNamesByCode struct {
	XMLName xml.Name `xml:"http://www.oorsprong.org/websamples.countryinfo ListOfCountryNamesByCode"`
}

type listOfCountryNamesByCodeResponse struct {
	XMLName   xml.Name  `xml:"ListOfCountryNamesByCodeResponse"`
	Countries []Country `xml:"ListOfCountryNamesByCodeResult>tCountryCodeAndName"`
}

type Country struct {
	ISOCode string `xml:"sISOCode"`
	Name    string `xml:"sName"`
}

type CountryInfo struct{ *conn }

func NewCountryInfo(url string, hc *http.Client, log *zap.Logger) *CountryInfo {
	if url == "" {
		url = DefaultCountryInfoURL
	}
	return &CountryInfo{newConn(url, hc, log)}
}

func (c *CountryInfo) CapitalCity(ctx context.Context, isoCode string) (string, error) {
	var resp stringResult
	if err := c.call(ctx, countryInfoAction("CapitalCity"), &capitalCity{ISOCode: isoCode}, &resp); err != nil {
		return "", err
	}
	return resp.Value, nil
}

func (c *CountryInfo) ListOfCountryNamesByCode(ctx context.Context) ([]Country, error) {
	var resp listOfCountryNamesByCodeResponse
	if err := c.call(ctx, countryInfoAction("ListOfCountryNamesByCode"), &listOfCountryNamesByCode{}, &resp); err != nil {
		return nil, err
	}
	return resp.Countries, nil
}

func countryInfoAction(op string) string {
	return DefaultCountryInfoURL + "/" + op
}
