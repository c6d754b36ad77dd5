package lambdafn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
	"github.com/idilsaglam/webtutorials/internal/web"
)

// Item is a schemaless DynamoDB record.
type Item = map[string]any

// Table is the storage the items API needs.
type Table interface {
	Scan(ctx context.Context) ([]Item, error)
	Put(ctx context.Context, item Item) error
}

// DynamoAPI is the subset of the DynamoDB client used by DynamoTable.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoTable struct {
	api  DynamoAPI
	name string
}

func NewDynamoTable(api DynamoAPI, name string) *DynamoTable {
	return &DynamoTable{api: api, name: name}
}

// OpenDynamoTable builds a client from the default AWS credential chain.
// cfg.Endpoint points the client at DynamoDB Local or another stand-in.
func OpenDynamoTable(ctx context.Context, cfg config.ItemsConfig) (*DynamoTable, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewDynamoTable(client, cfg.TableName), nil
}

// Scan reads every page of the table.
func (t *DynamoTable) Scan(ctx context.Context) ([]Item, error) {
	items := []Item{}
	p := dynamodb.NewScanPaginator(t.api, &dynamodb.ScanInput{TableName: aws.String(t.name)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		var batch []Item
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		items = append(items, batch...)
	}
	return items, nil
}

func (t *DynamoTable) Put(ctx context.Context, item Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	if _, err := t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put item in %s: %w", t.name, err)
	}
	return nil
}

type itemsAPI struct {
	table Table
	log   *zap.Logger
}

// ItemsRouter serves /index and /items over table.
func ItemsRouter(table Table, log *zap.Logger) *mux.Router {
	if log == nil {
		log = zap.NewNop()
	}
	a := &itemsAPI{table: table, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/index", a.index).Methods(http.MethodGet)
	r.HandleFunc("/items", a.list).Methods(http.MethodGet)
	r.HandleFunc("/items", a.create).Methods(http.MethodPost)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// ItemsHandler is ItemsRouter with the shared middleware, for local serving.
func ItemsHandler(table Table, log *zap.Logger) http.Handler {
	return web.Chain(ItemsRouter(table, log), log)
}

// ItemsProxy adapts the router to API Gateway events of either payload version.
func ItemsProxy(router *mux.Router) func(context.Context, core.SwitchableAPIGatewayRequest) (*core.SwitchableAPIGatewayResponse, error) {
	adapter := gorillamux.New(router)
	return adapter.ProxyWithContext
}

func (a *itemsAPI) index(w http.ResponseWriter, _ *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (a *itemsAPI) list(w http.ResponseWriter, r *http.Request) {
	items, err := a.table.Scan(r.Context())
	if err != nil {
		a.log.Error("GET /items failed", zap.Error(err))
		web.WriteDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *itemsAPI) create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil || item == nil {
		if err == nil {
			err = errors.New("body must be a JSON object")
		}
		web.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := a.table.Put(r.Context(), item); err != nil {
		a.log.Error("POST /items failed", zap.Error(err))
		web.WriteDetail(w, http.StatusInternalServerError, "Failed to create item: "+err.Error())
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{"message": "Item added", "item": item})
}
