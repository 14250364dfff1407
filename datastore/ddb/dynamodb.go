/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/meshstore/errors"
	"github.com/suparena/meshstore/registry"
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// keyAttributes are the table's primary key attributes, in key order.
var keyAttributes = []string{"PK", "SK"}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB
// table. Keys come from the index map registered for T.
type DynamodbDataStore[T any] struct {
	client    API
	tableName string
	logger    *zap.Logger
}

// Option configures a DynamodbDataStore.
type Option func(*storeOptions)

type storeOptions struct {
	logger *zap.Logger
}

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func encoderOptions(o *attributevalue.EncoderOptions) { o.UseEncodingMarshalers = true }

func decoderOptions(o *attributevalue.DecoderOptions) { o.UseEncodingUnmarshalers = true }

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when an access key is given, the default chain otherwise.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string, logger *zap.Logger) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	if logger != nil {
		logger.Info("dynamodb client initialized", zap.String("region", awsRegion))
	}
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a new DynamodbDataStore for type T.
func NewDynamodbDataStore[T any](ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	o := storeOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion, o.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewDynamodbDataStoreWithClient[T](client, tableName, opts...)
}

// NewDynamodbDataStoreWithClient constructs a store around an existing client.
func NewDynamodbDataStoreWithClient[T any](client API, tableName string, opts ...Option) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, errors.NewValidationError("client", "client is nil")
	}
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "table name is required")
	}

	o := storeOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &DynamodbDataStore[T]{
		client:    client,
		tableName: tableName,
		logger:    o.logger.With(zap.String("table", tableName)),
	}, nil
}

// GetOne retrieves a single item by its string key. The key joins the macro
// values of the index map with "/", e.g. "unit-square-2x2/markers".
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := d.keyFromString(key)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, result, decoderOptions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity, writing the expanded index map attributes alongside
// its fields.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	return d.put(ctx, entity, nil)
}

// PutIfAbsent stores entity unless an item with the same key exists.
func (d *DynamodbDataStore[T]) PutIfAbsent(ctx context.Context, entity T) error {
	return d.put(ctx, entity, aws.String("attribute_not_exists(PK)"))
}

func (d *DynamodbDataStore[T]) put(ctx context.Context, entity T, condition *string) error {
	indexMap, err := d.indexMap()
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMapWithOptions(entity, encoderOptions)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, macroValues(av))
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) && condition != nil {
			return fmt.Errorf("%w: %v", errors.NewConditionFailedError("put", *condition), err)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}

	d.logger.Debug("put item", zap.String("pk", expanded["PK"]), zap.String("sk", expanded["SK"]))
	return nil
}

// Delete removes an item by its string key. A missing item is a
// NotFoundError.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := d.keyFromString(key)
	if err != nil {
		return err
	}

	out, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:    &d.tableName,
		Key:          keyMap,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	if len(out.Attributes) == 0 {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	d.logger.Debug("deleted item", zap.String("key", key))
	return nil
}

func (d *DynamodbDataStore[T]) indexMap() (registry.IndexMap, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T", errors.ErrNoIndexMap, zero)
	}
	return indexMap, nil
}

// keyFromString splits key on "/" into the macros of the PK and SK
// templates, in order, and expands them. Only the first macro may contain
// "/", so mesh IDs like "lab/bracket" survive the round trip.
func (d *DynamodbDataStore[T]) keyFromString(key string) (map[string]types.AttributeValue, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}

	var macros []string
	for _, attr := range keyAttributes {
		for _, m := range macroPattern.FindAllStringSubmatch(indexMap[attr], -1) {
			macros = append(macros, m[1])
		}
	}

	values := map[string]string{}
	if len(macros) > 0 {
		parts := splitKey(key, len(macros))
		if parts == nil {
			return nil, errors.NewValidationError("key",
				fmt.Sprintf("%q does not provide %s", key, strings.Join(macros, "/")))
		}
		for i, m := range macros {
			values[m] = parts[i]
		}
	}

	expanded, err := expandMacros(indexMap, values)
	if err != nil {
		return nil, err
	}
	return buildKeyFromExpanded(expanded)
}

// splitKey cuts key into n parts at its last n-1 separators, or returns nil
// when there are too few.
func splitKey(key string, n int) []string {
	parts := make([]string, n)
	rest := key
	for i := n - 1; i > 0; i-- {
		idx := strings.LastIndex(rest, "/")
		if idx < 0 {
			return nil
		}
		parts[i] = rest[idx+1:]
		rest = rest[:idx]
	}
	parts[0] = rest
	return parts
}

// macroValues renders the scalar attributes of an item as strings.
func macroValues(av map[string]types.AttributeValue) map[string]string {
	values := make(map[string]string, len(av))
	for name, val := range av {
		switch tv := val.(type) {
		case *types.AttributeValueMemberS:
			values[name] = tv.Value
		case *types.AttributeValueMemberN:
			values[name] = tv.Value
		case *types.AttributeValueMemberBOOL:
			values[name] = fmt.Sprintf("%v", tv.Value)
		}
	}
	return values
}

// expandMacros fills every template of indexMap from values. A macro with
// no value, or an empty one, is a validation error.
func expandMacros(indexMap registry.IndexMap, values map[string]string) (map[string]string, error) {
	res := make(map[string]string, len(indexMap))

	for attr, template := range indexMap {
		var missing string
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			name := strings.Trim(macro, "{}")
			v, ok := values[name]
			if !ok || v == "" {
				missing = name
			}
			return v
		})
		if missing != "" {
			return nil, errors.NewValidationError(missing, fmt.Sprintf("required by %s template %q", attr, template))
		}
		res[attr] = expanded
	}
	return res, nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	key := make(map[string]types.AttributeValue, len(keyAttributes))
	for _, attr := range keyAttributes {
		v, ok := expanded[attr]
		if !ok || v == "" {
			return nil, fmt.Errorf("%w: expanded index map missing %s", errors.ErrNoIndexMap, attr)
		}
		key[attr] = &types.AttributeValueMemberS{Value: v}
	}
	return key, nil
}
