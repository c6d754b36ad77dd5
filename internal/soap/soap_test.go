package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const envelopeFmt = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>%s</soap:Body></soap:Envelope>`

// fakeService answers the handful of operations used by the clients.
func fakeService(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(body))
		text := func(tag string) string {
			if el := doc.FindElement("//" + tag); el != nil {
				return el.Text()
			}
			return ""
		}
		num := func(tag string) int {
			n, _ := strconv.Atoi(text(tag))
			return n
		}

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		action := r.Header.Get("SOAPAction")
		op := action[strings.LastIndexAny(action, "/")+1:]
		var payload string
		switch op {
		case "Add":
			payload = fmt.Sprintf(`<AddResponse xmlns="http://tempuri.org/"><AddResult>%d</AddResult></AddResponse>`, num("intA")+num("intB"))
		case "Subtract":
			payload = fmt.Sprintf(`<SubtractResponse xmlns="http://tempuri.org/"><SubtractResult>%d</SubtractResult></SubtractResponse>`, num("intA")-num("intB"))
		case "Multiply":
			payload = fmt.Sprintf(`<MultiplyResponse xmlns="http://tempuri.org/"><MultiplyResult>%d</MultiplyResult></MultiplyResponse>`, num("intA")*num("intB"))
		case "Divide":
			if num("intB") == 0 {
				w.WriteHeader(http.StatusInternalServerError)
				payload = `<soap:Fault><faultcode>soap:Server</faultcode><faultstring>Attempted to divide by zero.</faultstring></soap:Fault>`
				break
			}
			payload = fmt.Sprintf(`<DivideResponse xmlns="http://tempuri.org/"><DivideResult>%d</DivideResult></DivideResponse>`, num("intA")/num("intB"))
		case "CelsiusToFahrenheit":
			payload = `<CelsiusToFahrenheitResponse xmlns="https://www.w3schools.com/xml/"><CelsiusToFahrenheitResult>68</CelsiusToFahrenheitResult></CelsiusToFahrenheitResponse>`
		case "FahrenheitToCelsius":
			payload = `<FahrenheitToCelsiusResponse xmlns="https://www.w3schools.com/xml/"><FahrenheitToCelsiusResult>20</FahrenheitToCelsiusResult></FahrenheitToCelsiusResponse>`
		case "CapitalCity":
			capitals := map[string]string{"IN": "New Delhi", "US": "Washington"}
			c, ok := capitals[text("sCountryISOCode")]
			if !ok {
				c = "Country not found in the database"
			}
			payload = `<m:CapitalCityResponse xmlns:m="http://www.oorsprong.org/websamples.countryinfo"><m:CapitalCityResult>` + c + `</m:CapitalCityResult></m:CapitalCityResponse>`
		case "ListOfCountryNamesByCode":
			payload = `<m:ListOfCountryNamesByCodeResponse xmlns:m="http://www.oorsprong.org/websamples.countryinfo"><m:ListOfCountryNamesByCodeResult>` +
				`<m:tCountryCodeAndName><m:sISOCode>AD</m:sISOCode><m:sName>Andorra</m:sName></m:tCountryCodeAndName>` +
				`<m:tCountryCodeAndName><m:sISOCode>AE</m:sISOCode><m:sName>United Arab Emirates</m:sName></m:tCountryCodeAndName>` +
				`</m:ListOfCountryNamesByCodeResult></m:ListOfCountryNamesByCodeResponse>`
		default:
			w.WriteHeader(http.StatusInternalServerError)
			payload = `<soap:Fault><faultcode>soap:Client</faultcode><faultstring>unknown action</faultstring></soap:Fault>`
		}
		fmt.Fprintf(w, envelopeFmt, payload)
	}))
}

func TestCalculator(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	c := NewCalculator(srv.URL, srv.Client(), zaptest.NewLogger(t))
	ctx := context.Background()

	n, err := c.Add(ctx, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(30), n)

	n, err = c.Subtract(ctx, 50, 15)
	require.NoError(t, err)
	assert.Equal(t, int32(35), n)

	n, err = c.Multiply(ctx, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, int32(45), n)

	n, err = c.Divide(ctx, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(20), n)
}

func TestCalculatorFault(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	c := NewCalculator(srv.URL, srv.Client(), nil)

	_, err := c.Divide(context.Background(), 1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestHistoryCapturesLastExchange(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	c := NewCalculator(srv.URL, srv.Client(), nil)

	_, err := c.Add(context.Background(), 1, 2)
	require.NoError(t, err)

	sent, received := c.History().Last()
	assert.Contains(t, string(sent), "<intA>1</intA>")
	assert.Contains(t, string(received), "<AddResult>3</AddResult>")

	var buf bytes.Buffer
	require.NoError(t, c.History().Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "--- Last SOAP Request ---")
	assert.Contains(t, out, "--- Last SOAP Response ---")
	// indented output puts the result on its own line
	assert.Contains(t, out, "\n      <AddResult>3</AddResult>")
}

func TestPrettyEmpty(t *testing.T) {
	s, err := Pretty(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = Pretty([]byte("<a><b></a>"))
	assert.Error(t, err)
}

func TestTempConverter(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	c := NewTempConverter(srv.URL, srv.Client(), nil)

	f, err := c.CelsiusToFahrenheit(context.Background(), "20")
	require.NoError(t, err)
	assert.Equal(t, "68", f)

	cel, err := c.FahrenheitToCelsius(context.Background(), "68")
	require.NoError(t, err)
	assert.Equal(t, "20", cel)
}

func TestCountryInfo(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	c := NewCountryInfo(srv.URL, srv.Client(), nil)
	ctx := context.Background()

	capital, err := c.CapitalCity(ctx, "IN")
	require.NoError(t, err)
	assert.Equal(t, "New Delhi", capital)

	countries, err := c.ListOfCountryNamesByCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Country{{"AD", "Andorra"}, {"AE", "United Arab Emirates"}}, countries)
}

func TestRawCalls(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	ctx := context.Background()

	n, err := NewCalculator(srv.URL, srv.Client(), nil).RawAdd(ctx, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(30), n)

	capital, err := NewCountryInfo(srv.URL, srv.Client(), nil).RawCapitalCity(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, "Washington", capital)
}

func TestRawFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, envelopeFmt, `<soap:Fault><faultcode>soap:Client</faultcode><faultstring>bad request</faultstring></soap:Fault>`)
	}))
	defer srv.Close()

	_, err := NewCalculator(srv.URL, srv.Client(), nil).RawAdd(context.Background(), 1, 2)
	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "soap:Client", fault.Code)
	assert.Equal(t, "bad request", fault.String)
}

func TestEnvelopes(t *testing.T) {
	s, err := AddEnvelope(10, 20).WriteToString()
	require.NoError(t, err)
	assert.Contains(t, s, `<soap-env:Envelope xmlns:soap-env="http://schemas.xmlsoap.org/soap/envelope/">`)
	assert.Contains(t, s, `<ns0:intA>10</ns0:intA>`)

	s, err = CapitalCityEnvelope("IN").WriteToString()
	require.NoError(t, err)
	assert.Contains(t, s, `<web:sCountryISOCode>IN</web:sCountryISOCode>`)
}

const calculatorWSDL = `<?xml version="1.0" encoding="utf-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/" xmlns:tns="http://tempuri.org/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/">
  <wsdl:binding name="CalculatorSoap" type="tns:CalculatorSoap">
    <wsdl:operation name="Subtract"/>
    <wsdl:operation name="Add"/>
    <wsdl:operation name="Multiply"/>
    <wsdl:operation name="Divide"/>
  </wsdl:binding>
  <wsdl:binding name="CalculatorSoap12" type="tns:CalculatorSoap">
    <wsdl:operation name="Add"/>
  </wsdl:binding>
  <wsdl:service name="Calculator">
    <wsdl:port name="CalculatorSoap" binding="tns:CalculatorSoap"/>
    <wsdl:port name="CalculatorSoap12" binding="tns:CalculatorSoap12"/>
  </wsdl:service>
</wsdl:definitions>`

func TestFetchWSDL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, calculatorWSDL)
	}))
	defer srv.Close()

	ports, err := FetchWSDL(context.Background(), srv.Client(), srv.URL+"?WSDL")
	require.NoError(t, err)
	require.Len(t, ports, 2)
	assert.Equal(t, Port{
		Service:    "Calculator",
		Port:       "CalculatorSoap",
		Binding:    "CalculatorSoap",
		Operations: []string{"Add", "Divide", "Multiply", "Subtract"},
	}, ports[0])
	assert.Equal(t, []string{"Add"}, ports[1].Operations)

	var buf bytes.Buffer
	WritePorts(&buf, ports)
	assert.Contains(t, buf.String(), "Operation: Divide\n")
}

func TestParseWSDLRejectsOtherDocuments(t *testing.T) {
	_, err := ParseWSDL([]byte("<html/>"))
	assert.Error(t, err)
}

func TestDemos(t *testing.T) {
	srv := fakeService(t)
	defer srv.Close()
	ctx := context.Background()
	var buf bytes.Buffer

	require.NoError(t, RunCalculator(ctx, &buf, NewCalculator(srv.URL, srv.Client(), nil), DemoOptions{History: true}))
	require.NoError(t, RunTemperature(ctx, &buf, NewTempConverter(srv.URL, srv.Client(), nil), DemoOptions{}))
	countries := NewCountryInfo(srv.URL, srv.Client(), nil)
	require.NoError(t, RunCapitals(ctx, &buf, countries, []string{"IN", "US"}, DemoOptions{Raw: true}))
	require.NoError(t, RunCountries(ctx, &buf, countries))

	out := buf.String()
	assert.Contains(t, out, "Result of Add(10, 20): 30\n")
	assert.Contains(t, out, "Result of Divide(100, 5): 20\n")
	assert.Contains(t, out, "--- Last SOAP Request ---")
	assert.Contains(t, out, "Convert Celsius:20 -> Fahrenheit: 68\n")
	assert.Contains(t, out, "Capital of US: Washington\n")
	assert.Contains(t, out, "Country Code: AD, Country Name: Andorra\n")
}
