package repository

import (
	"context"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingsItem struct {
	ID                 string `dynamodbav:"id"`
	CompanyName        string `dynamodbav:"company_name"`
	ZipCode            string `dynamodbav:"zip_code"`
	Address            string `dynamodbav:"address"`
	Tel                string `dynamodbav:"tel"`
	Email              string `dynamodbav:"email"`
	RegistrationNumber string `dynamodbav:"registration_number"`
}

// SettingsDynamoRepository persists the CompanySettings row in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: SettingsTableName(),
	}
}

func SettingsTableName() string {
	return tableName("SETTINGS_TABLE", defaultSettingsTableName)
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.CompanySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.CompanySettingsID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompanySettings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CompanySettings{}, err
	}
	return entities.CompanySettings{
		CompanyName:        it.CompanyName,
		ZipCode:            it.ZipCode,
		Address:            it.Address,
		Tel:                it.Tel,
		Email:              it.Email,
		RegistrationNumber: it.RegistrationNumber,
	}, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.CompanySettings) error {
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:                 entities.CompanySettingsID,
		CompanyName:        s.CompanyName,
		ZipCode:            s.ZipCode,
		Address:            s.Address,
		Tel:                s.Tel,
		Email:              s.Email,
		RegistrationNumber: s.RegistrationNumber,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
