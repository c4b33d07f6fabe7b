package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal_studios/core/common"
)

// setupCollection kết nối MongoDB thật cho integration test.
// Không có MongoDB chạy thì skip, không fail.
func setupCollection(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).
		SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Skipf("Không kết nối được MongoDB tại %s: %v", uri, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		t.Skipf("MongoDB không chạy tại %s: %v", uri, err)
	}

	coll := client.Database("animal_studios_test").
		Collection(fmt.Sprintf("docsvc_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		coll.Drop(ctx)
		client.Disconnect(ctx)
	})

	return coll
}

func TestDocumentService_InsertAndFind(t *testing.T) {
	service := NewDocumentService(setupCollection(t))
	ctx := context.Background()

	var ids []primitive.ObjectID
	for i := 1; i <= 3; i++ {
		oid, err := service.InsertOne(ctx, bson.M{"title": fmt.Sprintf("Tin %d", i), "seq": i})
		require.NoError(t, err)
		assert.False(t, oid.IsZero())
		ids = append(ids, oid)
	}

	t.Run("thứ tự trả về là thứ tự insert", func(t *testing.T) {
		docs, err := service.Find(ctx, 100)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		for i, doc := range docs {
			assert.Equal(t, ids[i], doc["_id"])
		}
	})

	t.Run("limit giới hạn số lượng", func(t *testing.T) {
		docs, err := service.Find(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("hai payload giống nhau tạo hai document", func(t *testing.T) {
		first, err := service.InsertOne(ctx, bson.M{"title": "Trùng"})
		require.NoError(t, err)
		second, err := service.InsertOne(ctx, bson.M{"title": "Trùng"})
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestDocumentService_FindEmptyCollection(t *testing.T) {
	service := NewDocumentService(setupCollection(t))

	docs, err := service.Find(context.Background(), 100)
	require.NoError(t, err)
	assert.NotNil(t, docs, "Collection rỗng trả mảng rỗng, không phải nil")
	assert.Len(t, docs, 0)
}

func TestDocumentService_FindOneById(t *testing.T) {
	service := NewDocumentService(setupCollection(t))
	ctx := context.Background()

	oid, err := service.InsertOne(ctx, bson.M{"title": "Tin", "extra_field": "giữ nguyên"})
	require.NoError(t, err)

	t.Run("đọc lại đúng document", func(t *testing.T) {
		doc, err := service.FindOneById(ctx, oid)
		require.NoError(t, err)
		assert.Equal(t, "Tin", doc["title"])
		assert.Equal(t, "giữ nguyên", doc["extra_field"])
	})

	t.Run("id không tồn tại trả ErrNotFound", func(t *testing.T) {
		_, err := service.FindOneById(ctx, primitive.NewObjectID())
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestDocumentService_UpdateById(t *testing.T) {
	service := NewDocumentService(setupCollection(t))
	ctx := context.Background()

	oid, err := service.InsertOne(ctx, bson.M{"title": "Cũ", "content": "nội dung", "featured": false})
	require.NoError(t, err)

	t.Run("chỉ field được gửi bị thay đổi", func(t *testing.T) {
		updated, err := service.UpdateById(ctx, oid, bson.M{"title": "Mới"})
		require.NoError(t, err)
		assert.Equal(t, "Mới", updated["title"])
		assert.Equal(t, "nội dung", updated["content"], "Field vắng mặt phải giữ nguyên")
		assert.Equal(t, false, updated["featured"])
		assert.Contains(t, updated, "updated_at", "Server phải stamp updated_at")
	})

	t.Run("update lặp lại cho cùng trạng thái", func(t *testing.T) {
		first, err := service.UpdateById(ctx, oid, bson.M{"title": "Lặp"})
		require.NoError(t, err)
		second, err := service.UpdateById(ctx, oid, bson.M{"title": "Lặp"})
		require.NoError(t, err)

		delete(first, "updated_at")
		delete(second, "updated_at")
		assert.Equal(t, first, second)
	})

	t.Run("không sửa được _id", func(t *testing.T) {
		updated, err := service.UpdateById(ctx, oid, bson.M{"_id": primitive.NewObjectID(), "title": "Đổi id"})
		require.NoError(t, err)
		assert.Equal(t, oid, updated["_id"])
	})

	t.Run("id không tồn tại trả ErrNotFound", func(t *testing.T) {
		_, err := service.UpdateById(ctx, primitive.NewObjectID(), bson.M{"title": "x"})
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestDocumentService_DeleteById(t *testing.T) {
	service := NewDocumentService(setupCollection(t))
	ctx := context.Background()

	oid, err := service.InsertOne(ctx, bson.M{"title": "Sẽ xóa"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteById(ctx, oid))

	t.Run("đọc sau khi xóa trả ErrNotFound", func(t *testing.T) {
		_, err := service.FindOneById(ctx, oid)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})

	t.Run("xóa lần hai trả ErrNotFound", func(t *testing.T) {
		err := service.DeleteById(ctx, oid)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestDocumentService_NilHandle(t *testing.T) {
	service := NewDocumentService(nil)
	ctx := context.Background()

	_, err := service.Find(ctx, 100)
	assert.True(t, errors.Is(err, common.ErrConnection))

	_, err = service.FindOneById(ctx, primitive.NewObjectID())
	assert.True(t, errors.Is(err, common.ErrConnection))

	_, err = service.InsertOne(ctx, bson.M{"title": "x"})
	assert.True(t, errors.Is(err, common.ErrConnection))

	_, err = service.UpdateById(ctx, primitive.NewObjectID(), bson.M{})
	assert.True(t, errors.Is(err, common.ErrConnection))

	err = service.DeleteById(ctx, primitive.NewObjectID())
	assert.True(t, errors.Is(err, common.ErrConnection))
}
