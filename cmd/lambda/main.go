// Command lambda is the AWS Lambda entry point. The function's Handler
// setting (_HANDLER) picks the handler: method, greet, path or items. Any
// other value, such as the custom runtime default "bootstrap", runs method.
package main

import (
	"context"
	"os"
	"slices"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
	"github.com/idilsaglam/webtutorials/internal/lambdafn"
	"github.com/idilsaglam/webtutorials/internal/logging"
)

// handlerName maps the _HANDLER value to a registered handler name.
func handlerName(env string, log *zap.Logger) string {
	if slices.Contains(lambdafn.Names(), env) {
		return env
	}
	log.Warn("unknown handler, using default",
		zap.String("handler", env),
		zap.String("default", lambdafn.HandlerMethod),
		zap.Strings("known", lambdafn.Names()))
	return lambdafn.HandlerMethod
}

func main() {
	cfg, err := config.Load(os.Getenv("TUTORIALS_CONFIG"))
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	name := handlerName(os.Getenv("_HANDLER"), logger)
	handler, err := lambdafn.Lookup(context.Background(), name, cfg.Items, logger)
	if err != nil {
		logger.Fatal("no handler", zap.String("handler", name), zap.Error(err))
	}
	logger.Info("starting lambda", zap.String("handler", name))
	lambda.Start(handler)
}
