package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/beevik/etree"
	"github.com/clbanning/mxj/v2"
	"github.com/pkg/errors"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// Fault is a SOAP fault returned by a hand-built call.
type Fault struct {
	Code   string
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// AddEnvelope builds the calculator Add request by hand.
func AddEnvelope(a, b int32) *etree.Document {
	doc := etree.NewDocument()
	env := doc.CreateElement("soap-env:Envelope")
	env.CreateAttr("xmlns:soap-env", envelopeNS)
	body := env.CreateElement("soap-env:Body")
	add := body.CreateElement("ns0:Add")
	add.CreateAttr("xmlns:ns0", tempuriNS)
	add.CreateElement("ns0:intA").SetText(strconv.FormatInt(int64(a), 10))
	add.CreateElement("ns0:intB").SetText(strconv.FormatInt(int64(b), 10))
	doc.Indent(2)
	return doc
}

// CapitalCityEnvelope builds the CapitalCity request by hand.
func CapitalCityEnvelope(isoCode string) *etree.Document {
	doc := etree.NewDocument()
	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", envelopeNS)
	env.CreateAttr("xmlns:web", countryInfoNS)
	body := env.CreateElement("soap:Body")
	op := body.CreateElement("web:CapitalCity")
	op.CreateElement("web:sCountryISOCode").SetText(isoCode)
	doc.Indent(2)
	return doc
}

// RawAdd posts a hand-built Add envelope and reads AddResult.
func (c *Calculator) RawAdd(ctx context.Context, a, b int32) (int32, error) {
	v, err := c.post(ctx, tempuriNS+"Add", AddEnvelope(a, b), "AddResult")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse AddResult %q", v)
	}
	return int32(n), nil
}

// RawCapitalCity posts a hand-built CapitalCity envelope and reads
// CapitalCityResult.
func (c *CountryInfo) RawCapitalCity(ctx context.Context, isoCode string) (string, error) {
	return c.post(ctx, countryInfoAction("CapitalCity"), CapitalCityEnvelope(isoCode), "CapitalCityResult")
}

func (c *conn) post(ctx context.Context, action string, doc *etree.Document, resultTag string) (string, error) {
	payload, err := doc.WriteToBytes()
	if err != nil {
		return "", errors.Wrap(err, "write envelope")
	}
	c.log.Sugar().Debugf("sending SOAP request:\n%s", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "post %s", c.url)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	c.log.Sugar().Debugf("received status %d", resp.StatusCode)

	mv, err := mxj.NewMapXml(body)
	if err != nil {
		if resp.StatusCode >= 300 {
			return "", errors.Errorf("soap %s: status %d", action, resp.StatusCode)
		}
		return "", errors.Wrap(err, "parse response")
	}
	if fault := findFault(mv); fault != nil {
		return "", fault
	}
	if resp.StatusCode >= 300 {
		return "", errors.Errorf("soap %s: status %d", action, resp.StatusCode)
	}
	vals, err := mv.ValuesForKey(resultTag)
	if err != nil || len(vals) == 0 {
		return "", errors.Errorf("response has no %s", resultTag)
	}
	s, ok := vals[0].(string)
	if !ok {
		return "", errors.Errorf("%s is not a text element", resultTag)
	}
	return s, nil
}

func findFault(mv mxj.Map) *Fault {
	faults, err := mv.ValuesForKey("Fault")
	if err != nil || len(faults) == 0 {
		return nil
	}
	m, ok := faults[0].(map[string]any)
	if !ok {
		return &Fault{}
	}
	code, _ := m["faultcode"].(string)
	msg, _ := m["faultstring"].(string)
	return &Fault{Code: code, String: msg}
}
