package repository

import (
	"context"
	"testing"

	"github.com/katiamach/weathercast/internal/model"
	"github.com/tj/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReportsFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, reportsFilter(""))

	filter := reportsFilter("St. Louis")
	regex, ok := filter["report.city"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, `^St\. Louis$`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, listLimit(0))
	assert.Equal(t, DefaultListLimit, listLimit(-3))
	assert.Equal(t, 5, listLimit(5))
}

func TestInsertNilReport(t *testing.T) {
	r := &Repository{}

	assert.Equal(t, ErrNilReport, r.InsertReport(context.Background(), nil))
	assert.Equal(t, ErrNilReport, r.InsertReport(context.Background(), &model.ArchivedReport{}))
}

func TestArchivedReportBSON(t *testing.T) {
	rec := &model.ArchivedReport{Report: &model.WeatherReport{City: "London", WindSpeed: 3.6}}

	data, err := bson.Marshal(rec)
	assert.NoError(t, err)

	var doc bson.M
	assert.NoError(t, bson.Unmarshal(data, &doc))

	_, hasID := doc["_id"]
	assert.False(t, hasID)

	report, ok := doc["report"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, "London", report["city"])
	assert.Equal(t, 3.6, report["wind_speed"])
}
