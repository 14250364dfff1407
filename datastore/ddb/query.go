/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/meshstore/storagemodels"
)

// Query runs params against the table and unmarshals every item into T.
// Without a Limit it follows LastEvaluatedKey until the result is complete.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	tableName := params.TableName
	if tableName == "" {
		tableName = d.tableName
	}

	input := &sdk.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
		ExclusiveStartKey:         params.ExclusiveStartKey,
	}

	var results []T
	pages := 0
	for {
		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		pages++

		for _, item := range out.Items {
			var entity T
			if err := attributevalue.UnmarshalMapWithOptions(item, &entity, decoderOptions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			results = append(results, entity)
		}

		if params.Limit != nil || len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	d.logger.Debug("query complete", zap.Int("items", len(results)), zap.Int("pages", pages))
	return results, nil
}

// QueryPartition returns every item whose PK expands from fields, e.g.
// {"MeshID": "unit-square-2x2"} for all functions stored for that mesh.
func (d *DynamodbDataStore[T]) QueryPartition(ctx context.Context, fields map[string]string) ([]T, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}

	pk, err := expandMacros(map[string]string{"PK": indexMap["PK"]}, fields)
	if err != nil {
		return nil, err
	}

	return d.Query(ctx, &storagemodels.QueryParams{
		TableName:              d.tableName,
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk["PK"]},
		},
	})
}
