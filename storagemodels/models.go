/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// FunctionEntityType is the EntityType attribute stamped on stored records.
const FunctionEntityType = "MeshFunction"

// FunctionRecord is the persisted form of a mesh function: one text value
// per entity, in entity order.
type FunctionRecord struct {
	EntityType string           `json:"EntityType" yaml:"entityType" dynamodbav:"EntityType"`
	MeshID     string           `json:"MeshID" yaml:"meshId" dynamodbav:"MeshID"`
	Name       string           `json:"Name" yaml:"name" dynamodbav:"Name"`
	Dim        int              `json:"Dim" yaml:"dim" dynamodbav:"Dim"`
	ValueType  string           `json:"ValueType" yaml:"valueType" dynamodbav:"ValueType"`
	Size       int              `json:"Size" yaml:"size" dynamodbav:"Size"`
	Values     []string         `json:"Values" yaml:"values,flow" dynamodbav:"Values"`
	CreatedAt  *strfmt.DateTime `json:"CreatedAt,omitempty" yaml:"createdAt,omitempty" dynamodbav:"CreatedAt,omitempty"`
}

// Key returns the record key used by in-memory stores, "<mesh>/<name>".
func (r FunctionRecord) Key() string {
	return r.MeshID + "/" + r.Name
}

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	ScanIndexForward *bool
}
