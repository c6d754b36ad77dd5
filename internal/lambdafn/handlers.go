// Package lambdafn holds the AWS Lambda handlers: three small API Gateway
// functions and an items API backed by DynamoDB.
package lambdafn

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
)

const defaultName = "Guest"

// jsonBody encodes v the way every handler returns its body. Strings become
// quoted JSON strings.
func jsonBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `""`
	}
	return string(b)
}

func decodeBody(body string, base64Encoded bool) ([]byte, error) {
	if !base64Encoded {
		return []byte(body), nil
	}
	return base64.StdEncoding.DecodeString(body)
}

// MethodHandler answers an HTTP API (payload v2) event by method.
func MethodHandler(_ context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch req.RequestContext.HTTP.Method {
	case http.MethodGet:
		return v2Response(http.StatusOK, "Hello from Lambda Function!"), nil
	case http.MethodPost:
		raw, err := decodeBody(req.Body, req.IsBase64Encoded)
		if err != nil {
			return v2Response(http.StatusBadRequest, map[string]string{"error": "invalid body encoding"}), nil
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return v2Response(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"}), nil
		}
		out := map[string]any{"message": "Hello from Lambda Function POST!"}
		for i := 1; i <= 3; i++ {
			key := fmt.Sprintf("key%d", i)
			v, ok := body[key]
			if !ok {
				return v2Response(http.StatusBadRequest, map[string]string{"error": "missing " + key}), nil
			}
			out[fmt.Sprintf("KEY %d", i)] = v
		}
		return v2Response(http.StatusCreated, out), nil
	default:
		return v2Response(http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed error code"}), nil
	}
}

// GreetHandler answers a REST API (payload v1) event by method.
func GreetHandler(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case http.MethodGet:
		return v1Response(http.StatusOK, "Hello from Lambda via GET!"), nil
	case http.MethodPost:
		raw, err := decodeBody(req.Body, req.IsBase64Encoded)
		if err != nil {
			return v1Response(http.StatusBadRequest, "Error: "+err.Error()), nil
		}
		if len(raw) == 0 {
			raw = []byte("{}")
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return v1Response(http.StatusBadRequest, "Error: "+err.Error()), nil
		}
		if body == nil {
			return v1Response(http.StatusBadRequest, "Error: body must be a JSON object"), nil
		}
		name := defaultName
		if v, ok := body["name"]; ok {
			name = displayValue(v)
		}
		return v1Response(http.StatusCreated, fmt.Sprintf("Hello, %s from Lambda via POST!", name)), nil
	default:
		return v1Response(http.StatusMethodNotAllowed, "Method Not Allowed"), nil
	}
}

// PathGreetHandler greets the name from ?name=, then from the {name} path
// parameter. Methods other than GET get an empty greeting.
func PathGreetHandler(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	greeting := ""
	if req.HTTPMethod == http.MethodGet {
		name := req.QueryStringParameters["name"]
		if name == "" {
			name = req.PathParameters["name"]
		}
		if name == "" {
			name = defaultName
		}
		greeting = fmt.Sprintf("Hello, %s 👋! (Path: %s)", name, req.Path)
	}
	return v1Response(http.StatusOK, greeting), nil
}

// displayValue renders a decoded JSON value the way the greeting shows it:
// null is None, booleans are True/False.
func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func v1Response(status int, v any) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       jsonBody(v),
	}
}

func v2Response(status int, v any) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       jsonBody(v),
	}
}
