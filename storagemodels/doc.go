/*
Package storagemodels defines the data structures persisted by meshstore.

FunctionRecord:
The stored form of a mesh function. Values are kept as text, one entry per
mesh entity, so a single schema covers all four value types:

	rec := storagemodels.FunctionRecord{
	    EntityType: storagemodels.FunctionEntityType,
	    MeshID:     "unit-square-2x2",
	    Name:       "markers",
	    Dim:        2,
	    ValueType:  "size_t",
	    Size:       8,
	    Values:     []string{"1", "1", "2", "2", "1", "1", "2", "2"},
	}

QueryParams:
Parameters for querying the DynamoDB store:

	params := &QueryParams{
	    TableName:              "meshstore",
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "MESH#unit-square-2x2"},
	    },
	}
*/
package storagemodels
