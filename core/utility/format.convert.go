package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi hex thành ObjectID.
// Trả về NilObjectID nếu chuỗi không hợp lệ — caller phải validate trước
// bằng primitive.IsValidObjectID khi cần phân biệt lỗi định dạng.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi hex 24 ký tự
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
