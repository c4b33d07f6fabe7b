package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToPublic_IdShaping(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":   oid,
		"title": "Tin mới",
	}

	out := toPublic(doc)

	assert.Equal(t, oid.Hex(), out["id"], "_id phải đổi thành id dạng chuỗi hex")
	assert.NotContains(t, out, "_id", "_id không được lộ ra wire")
	assert.Equal(t, "Tin mới", out["title"])
	// Document gốc không bị sửa
	assert.Equal(t, oid, doc["_id"])
}

func TestToPublic_TimestampShaping(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	doc := bson.M{
		"_id":        primitive.NewObjectID(),
		"updated_at": primitive.NewDateTimeFromTime(now),
	}

	out := toPublic(doc)

	ts, ok := out["updated_at"].(time.Time)
	assert.True(t, ok, "Timestamp BSON phải đổi về time.Time")
	assert.True(t, ts.Equal(now))
}

func TestToPublic_NonObjectIDId(t *testing.T) {
	// Document insert ngoài luồng có thể mang _id không phải ObjectID;
	// _id vẫn không được lộ ra wire
	doc := bson.M{
		"_id":   "custom-string-id",
		"title": "Tin",
	}

	out := toPublic(doc)

	assert.NotContains(t, out, "_id", "_id không được lộ ra wire với bất kỳ kiểu id nào")
	assert.Equal(t, "custom-string-id", out["id"])

	out = toPublic(bson.M{"_id": int64(42)})
	assert.NotContains(t, out, "_id")
	assert.Equal(t, "42", out["id"])
}

func TestToPublic_Nil(t *testing.T) {
	assert.Nil(t, toPublic(nil))
}

func TestToPublicList_NeverNil(t *testing.T) {
	out := toPublicList(nil)
	assert.NotNil(t, out, "Danh sách rỗng phải là mảng rỗng, không phải nil")
	assert.Len(t, out, 0)

	out = toPublicList([]bson.M{
		{"_id": primitive.NewObjectID(), "name": "a"},
		{"_id": primitive.NewObjectID(), "name": "b"},
	})
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0]["name"])
}
