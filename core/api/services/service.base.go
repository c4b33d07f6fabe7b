// Package services cung cấp document store adapter trên MongoDB.
// Mọi record là bson.M không ràng buộc schema; collection quyết định
// partition, validation shape nằm ở tầng models khi create.
package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"animal_studios/core/common"
)

// DocumentService thực hiện các thao tác CRUD cơ bản trên một collection.
// Không giữ state ngoài collection handle; an toàn khi dùng đồng thời.
// Concurrency control hoàn toàn giao cho MongoDB driver và server —
// hai update đồng thời vào cùng record là last-write-wins.
type DocumentService struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewDocumentService tạo mới một DocumentService trên collection cho trước
func NewDocumentService(collection *mongo.Collection) *DocumentService {
	return &DocumentService{
		collection: collection,
	}
}

// Collection trả về collection handle (dùng bởi handler hệ thống khi cần truy cập trực tiếp)
func (s *DocumentService) Collection() *mongo.Collection {
	return s.collection
}

// ready kiểm tra collection handle đã được khởi tạo chưa.
// Handle nil nghĩa là database chưa sẵn sàng — surface thành 503.
func (s *DocumentService) ready() error {
	if s.collection == nil {
		return common.ErrConnection
	}
	return nil
}

// Find trả về tối đa limit documents theo thứ tự tự nhiên (thứ tự insert).
// Không filter, không sort override, không trả total-count metadata.
func (s *DocumentService) Find(ctx context.Context, limit int64) ([]bson.M, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []bson.M{}
	}

	return results, nil
}

// FindOneById tìm một document theo ObjectID.
// Trả về common.ErrNotFound nếu không tồn tại.
func (s *DocumentService) FindOneById(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var result bson.M
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}

	return result, nil
}

// InsertOne tạo mới một document và trả về ObjectID được database cấp.
// Không deduplicate: hai payload giống hệt nhau tạo hai document.
func (s *DocumentService) InsertOne(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	if err := s.ready(); err != nil {
		return primitive.NilObjectID, err
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, common.ConvertMongoError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, common.ErrMongoWrite
	}

	return oid, nil
}

// UpdateById merge các field được gửi lên vào document hiện có ($set).
// Field vắng mặt trong payload giữ nguyên giá trị cũ. Server stamp
// updated_at; trả về document sau khi cập nhật.
func (s *DocumentService) UpdateById(ctx context.Context, id primitive.ObjectID, partial bson.M) (bson.M, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	set := bson.M{}
	for key, value := range partial {
		if key == "_id" {
			// _id là immutable sau khi tạo
			continue
		}
		set[key] = value
	}
	set["updated_at"] = time.Now().UTC()

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}

	return s.FindOneById(ctx, id)
}

// DeleteById xóa hẳn một document (không soft-delete).
// Trả về common.ErrNotFound nếu không có document nào với id này.
func (s *DocumentService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := s.ready(); err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	return nil
}
