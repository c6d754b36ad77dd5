// Package soap holds clients for three public SOAP services: a calculator,
// a temperature converter and a country information service. Each service
// can be called through generated-style request types or with a hand-built
// envelope.
package soap

import (
	"context"
	"net/http"

	gosoap "github.com/hooklift/gowsdl/soap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultCalculatorURL  = "http://www.dneonline.com/calculator.asmx"
	DefaultTempConvertURL = "https://www.w3schools.com/xml/tempconvert.asmx"
	DefaultCountryInfoURL = "http://webservices.oorsprong.org/websamples.countryinfo/CountryInfoService.wso"
)

// conn is the plumbing shared by the service clients.
type conn struct {
	url     string
	hc      *http.Client
	soap    *gosoap.Client
	history *History
	log     *zap.Logger
}

func newConn(url string, hc *http.Client, log *zap.Logger) *conn {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	history := &History{}
	recorded := *hc
	recorded.Transport = &historyTransport{base: base, history: history}

	return &conn{
		url:     url,
		hc:      &recorded,
		soap:    gosoap.NewClient(url, gosoap.WithHTTPClient(&recorded)),
		history: history,
		log:     log,
	}
}

// History returns the recorder holding the last exchanged envelopes.
func (c *conn) History() *History { return c.history }

func (c *conn) call(ctx context.Context, action string, req, resp any) error {
	c.log.Debug("soap call", zap.String("url", c.url), zap.String("action", action))
	if err := c.soap.CallContext(ctx, action, req, resp); err != nil {
		return errors.Wrapf(err, "soap %s", action)
	}
	return nil
}
