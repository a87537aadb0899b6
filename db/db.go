package db

import (
	"context"
	"strconv"

	"github.com/0d0b3nus/chorale-writer/constants"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/util"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// BatchGetItem takes at most this many keys per call.
const maxBatchKeys = 100

// MetadataSource looks up catalogue metadata for corpus files by file name.
// Names without metadata are simply absent from the result.
type MetadataSource interface {
	GetMidiMetadatas(ctx context.Context, filenames []string) (map[string]model.MidiMetadata, error)
}

type DynamoSource struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoSource(client dynamodbiface.DynamoDBAPI, table string) *DynamoSource {
	return &DynamoSource{client: client, table: table}
}

// NewDynamoSourceFromEnv connects to the table named by the environment.
func NewDynamoSourceFromEnv() (*DynamoSource, error) {
	cfg := &aws.Config{Region: aws.String(constants.GetMetadataRegion())}
	if endpoint := constants.GetMetadataEndpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating DynamoDB session")
	}
	return NewDynamoSource(dynamodb.New(sess), constants.GetMetadataTable()), nil
}

func (d *DynamoSource) GetMidiMetadatas(ctx context.Context, filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)
	for start := 0; start < len(filenames); start += maxBatchKeys {
		end := util.Min(start+maxBatchKeys, len(filenames))
		if err := d.getBatch(ctx, filenames[start:end], res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (d *DynamoSource) getBatch(ctx context.Context, filenames []string, res map[string]model.MidiMetadata) error {
	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	request := map[string]*dynamodb.KeysAndAttributes{d.table: {Keys: keys}}
	for len(request) > 0 {
		out, err := d.client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return errors.Wrapf(err, "reading %d keys from %v", len(filenames), d.table)
		}
		for _, item := range out.Responses[d.table] {
			name, metadata, ok := parseItem(item)
			if !ok {
				log.WithField("table", d.table).Debug("skipping item without a PK")
				continue
			}
			res[name] = metadata
		}
		request = out.UnprocessedKeys
	}
	return nil
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if v, ok := item[name]; ok && v != nil && v.S != nil {
		return *v.S
	}
	return ""
}

// parseItem reads one table row. Every attribute but the key is optional.
func parseItem(item map[string]*dynamodb.AttributeValue) (string, model.MidiMetadata, bool) {
	var m model.MidiMetadata
	name := stringAttr(item, "PK")
	if name == "" {
		return "", m, false
	}
	m.Title = stringAttr(item, "Title")
	m.Composer = stringAttr(item, "Composer")
	m.Catalog = stringAttr(item, "Catalog")
	if v, ok := item["Year"]; ok && v != nil && v.N != nil {
		if year, err := strconv.ParseUint(*v.N, 10, 32); err == nil {
			m.Year = uint(year)
		}
	}
	return name, m, true
}
