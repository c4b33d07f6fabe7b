// Package handler chứa các HTTP handler của API.
// Handler chỉ lo parse request, gọi service và shape response; mọi
// nghiệp vụ truy cập dữ liệu nằm trong tầng services.
package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"animal_studios/core/common"
	"animal_studios/core/logger"
)

// JSONResponse gửi response JSON với status code cho trước
func JSONResponse(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorBody là cấu trúc body chuẩn cho mọi response lỗi.
// Body thành công có cấu trúc phẳng theo từng endpoint, không bọc envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HandleError chuyển error của hệ thống thành response lỗi chuẩn.
// Lỗi không phải *common.Error được coi là lỗi hệ thống 500 và không
// lộ message gốc ra ngoài.
func HandleError(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= 500 {
			logger.WithRequest(c).WithError(err).Error("Lỗi xử lý request")
		}
		return c.Status(appErr.StatusCode).JSON(ErrorBody{
			Code:    appErr.Code.Code,
			Message: appErr.Message,
			Status:  "error",
		})
	}

	logger.WithRequest(c).WithError(err).Error("Lỗi không xác định")
	return c.Status(common.StatusInternalServerError).JSON(ErrorBody{
		Code:    common.ErrCodeInternalServer.Code,
		Message: common.MsgInternalError,
		Status:  "error",
	})
}

// toPublic shape một document từ dạng lưu trữ sang dạng public trên wire:
// _id (ObjectID) đổi thành id (chuỗi hex 24 ký tự), timestamp BSON đổi
// về time.Time UTC. Các field còn lại giữ nguyên.
func toPublic(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	out := bson.M{}
	for key, value := range doc {
		if key == "_id" {
			// _id không bao giờ ra wire, kể cả khi document được insert
			// ngoài luồng với id không phải ObjectID
			if oid, ok := value.(primitive.ObjectID); ok {
				out["id"] = oid.Hex()
			} else {
				out["id"] = fmt.Sprint(value)
			}
			continue
		}
		if dt, ok := value.(primitive.DateTime); ok {
			out[key] = dt.Time().UTC()
			continue
		}
		out[key] = value
	}
	return out
}

// toPublicList shape danh sách documents, luôn trả về mảng không nil
func toPublicList(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toPublic(doc))
	}
	return out
}
