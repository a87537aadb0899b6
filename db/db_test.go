package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items     map[string]map[string]*dynamodb.AttributeValue
	calls     []int
	err       error
	unprocess bool
}

func (f *fakeDynamo) BatchGetItemWithContext(_ aws.Context, in *dynamodb.BatchGetItemInput, _ ...request.Option) (*dynamodb.BatchGetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]*dynamodb.AttributeValue{}}
	for table, ka := range in.RequestItems {
		f.calls = append(f.calls, len(ka.Keys))
		keys := ka.Keys
		// hand back the last key as unprocessed once
		if f.unprocess && len(keys) > 1 {
			f.unprocess = false
			out.UnprocessedKeys = map[string]*dynamodb.KeysAndAttributes{table: {Keys: keys[len(keys)-1:]}}
			keys = keys[:len(keys)-1]
		}
		for _, k := range keys {
			if item, ok := f.items[*k["PK"].S]; ok {
				out.Responses[table] = append(out.Responses[table], item)
			}
		}
	}
	return out, nil
}

func item(name, title string, year string) map[string]*dynamodb.AttributeValue {
	res := map[string]*dynamodb.AttributeValue{
		"PK":       {S: aws.String(name)},
		"Title":    {S: aws.String(title)},
		"Composer": {S: aws.String("J.S. Bach")},
	}
	if year != "" {
		res["Year"] = &dynamodb.AttributeValue{N: aws.String(year)}
	}
	return res
}

func TestGetMidiMetadatas(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{
		"bwv269.mid": item("bwv269.mid", "Aus meines Herzens Grunde", "1724"),
		"bwv347.mid": item("bwv347.mid", "Ach Gott, vom Himmel sieh darein", ""),
	}}
	source := NewDynamoSource(fake, "chorale-metadata")

	res, err := source.GetMidiMetadatas(context.Background(), []string{"bwv269.mid", "bwv347.mid", "unknown.mid"})
	require.NoError(t, err)
	assert.Equal(t, map[string]model.MidiMetadata{
		"bwv269.mid": {Title: "Aus meines Herzens Grunde", Composer: "J.S. Bach", Year: 1724},
		"bwv347.mid": {Title: "Ach Gott, vom Himmel sieh darein", Composer: "J.S. Bach"},
	}, res)
}

func TestGetMidiMetadatasBatches(t *testing.T) {
	fake := &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}
	var names []string
	for i := 0; i < 250; i++ {
		name := fmt.Sprintf("%03d.mid", i)
		names = append(names, name)
		fake.items[name] = item(name, name, "")
	}

	res, err := NewDynamoSource(fake, "t").GetMidiMetadatas(context.Background(), names)
	require.NoError(t, err)
	assert.Len(t, res, 250)
	assert.Equal(t, []int{100, 100, 50}, fake.calls)
}

func TestGetMidiMetadatasRetriesUnprocessedKeys(t *testing.T) {
	fake := &fakeDynamo{
		items: map[string]map[string]*dynamodb.AttributeValue{
			"a.mid": item("a.mid", "A", ""),
			"b.mid": item("b.mid", "B", ""),
		},
		unprocess: true,
	}

	res, err := NewDynamoSource(fake, "t").GetMidiMetadatas(context.Background(), []string{"a.mid", "b.mid"})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, []int{2, 1}, fake.calls)
}

func TestGetMidiMetadatasError(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeDynamo{err: boom}

	_, err := NewDynamoSource(fake, "t").GetMidiMetadatas(context.Background(), []string{"a.mid"})
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))
}

func TestGetMidiMetadatasNothingToDo(t *testing.T) {
	fake := &fakeDynamo{}
	res, err := NewDynamoSource(fake, "t").GetMidiMetadatas(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Empty(t, fake.calls)
}

func TestParseItem(t *testing.T) {
	assert := assert.New(t)

	name, m, ok := parseItem(item("x.mid", "X", "not a year"))
	assert.True(ok)
	assert.Equal("x.mid", name)
	assert.Equal(model.MidiMetadata{Title: "X", Composer: "J.S. Bach"}, m)

	_, _, ok = parseItem(map[string]*dynamodb.AttributeValue{"Title": {S: aws.String("no key")}})
	assert.False(ok)
}
