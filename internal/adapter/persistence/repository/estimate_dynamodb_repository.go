package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateLineRecord struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitID      string `dynamodbav:"unit_id"`
	UnitCost    string `dynamodbav:"unit_cost"`
	Subtotal    string `dynamodbav:"subtotal"`
	Tax         string `dynamodbav:"tax"`
}

type estimateRecord struct {
	ID                  string               `dynamodbav:"id"`
	ProjectID           string               `dynamodbav:"project_id"`
	ProfitMarginPercent string               `dynamodbav:"profit_margin_percent"`
	LaborCost           string               `dynamodbav:"labor_cost"`
	Items               []estimateLineRecord `dynamodbav:"items"`
	Subtotal            string               `dynamodbav:"subtotal"`
	TaxTotal            string               `dynamodbav:"tax_total"`
	Total               string               `dynamodbav:"total"`
	CreatedAt           string               `dynamodbav:"created_at"`
	UpdatedAt           string               `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Estimate id equals project id, so project-scoped reads resolve by PK and
// the attribute_not_exists condition on Create enforces one estimate per
// project. Monetary values are stored as strings to keep the stored figures
// byte-stable across round trips.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateRecord(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var rec estimateRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRecord(rec)
}

func (r *EstimateDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	// Domain rule: estimate id equals project id.
	return r.GetByID(ctx, projectID)
}

func toEstimateRecord(e entities.Estimate) estimateRecord {
	items := make([]estimateLineRecord, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, estimateLineRecord{
			Description: it.Description,
			Quantity:    floatToString(it.Quantity),
			UnitID:      it.UnitID,
			UnitCost:    floatToString(it.UnitCost),
			Subtotal:    floatToString(it.Subtotal),
			Tax:         floatToString(it.Tax),
		})
	}
	return estimateRecord{
		ID:                  e.ID,
		ProjectID:           e.ProjectID,
		ProfitMarginPercent: floatToString(e.ProfitMarginPercent),
		LaborCost:           floatToString(e.LaborCost),
		Items:               items,
		Subtotal:            floatToString(e.Subtotal),
		TaxTotal:            floatToString(e.TaxTotal),
		Total:               floatToString(e.Total),
		CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// fromEstimateRecord rejects records with unparsable figures or timestamps
// instead of zero-filling them; a zero subtotal would otherwise flip the
// provided-totals precedence downstream.
func fromEstimateRecord(rec estimateRecord) (entities.Estimate, error) {
	p := &recordParser{}
	items := make([]entities.EstimateItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.EstimateItem{
			Description: it.Description,
			Quantity:    p.float("quantity", it.Quantity),
			UnitID:      it.UnitID,
			UnitCost:    p.float("unit_cost", it.UnitCost),
			Subtotal:    p.float("subtotal", it.Subtotal),
			Tax:         p.float("tax", it.Tax),
		})
	}
	e := entities.Estimate{
		ID:                  rec.ID,
		ProjectID:           rec.ProjectID,
		ProfitMarginPercent: p.float("profit_margin_percent", rec.ProfitMarginPercent),
		LaborCost:           p.float("labor_cost", rec.LaborCost),
		Items:               items,
		Subtotal:            p.float("subtotal", rec.Subtotal),
		TaxTotal:            p.float("tax_total", rec.TaxTotal),
		Total:               p.float("total", rec.Total),
		CreatedAt:           p.time("created_at", rec.CreatedAt),
		UpdatedAt:           p.time("updated_at", rec.UpdatedAt),
	}
	if p.err != nil {
		return entities.Estimate{}, p.err
	}
	return e, nil
}

// recordParser accumulates the first parse failure across a record.
type recordParser struct {
	err error
}

func (p *recordParser) float(field, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("corrupt estimate record: %s: %w", field, err)
	}
	return v
}

func (p *recordParser) time(field, s string) time.Time {
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("corrupt estimate record: %s: %w", field, err)
	}
	return v
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
