package lambdafn

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
)

const (
	HandlerMethod = "method"
	HandlerGreet  = "greet"
	HandlerPath   = "path"
	HandlerItems  = "items"
)

// Names lists the handlers Lookup knows about.
func Names() []string {
	names := []string{HandlerMethod, HandlerGreet, HandlerPath, HandlerItems}
	sort.Strings(names)
	return names
}

// Lookup returns the handler function registered under name, ready for
// lambda.Start. The items handler opens its DynamoDB table from cfg.
func Lookup(ctx context.Context, name string, cfg config.ItemsConfig, log *zap.Logger) (any, error) {
	switch name {
	case HandlerMethod:
		return MethodHandler, nil
	case HandlerGreet:
		return GreetHandler, nil
	case HandlerPath:
		return PathGreetHandler, nil
	case HandlerItems:
		table, err := OpenDynamoTable(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return ItemsProxy(ItemsRouter(table, log)), nil
	}
	return nil, fmt.Errorf("unknown handler %q (want one of %v)", name, Names())
}

// Invoke runs handler on a raw JSON event the way the Lambda runtime would
// and returns the raw JSON response.
func Invoke(ctx context.Context, handler any, event []byte) ([]byte, error) {
	return lambda.NewHandler(handler).Invoke(ctx, event)
}
