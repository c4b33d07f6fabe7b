package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "animal_studios/core/api/models/mongodb"
	"animal_studios/core/api/services"
	"animal_studios/core/common"
	"animal_studios/core/global"
	"animal_studios/core/utility"
)

// CollectionHandler xử lý CRUD trên các collection được nhận diện.
// Mọi operation đi qua cùng một pipeline: resolve tên collection,
// kiểm tra id (nếu có), gọi DocumentService, shape kết quả.
type CollectionHandler struct{}

// NewCollectionHandler tạo mới một CollectionHandler
func NewCollectionHandler() *CollectionHandler {
	return &CollectionHandler{}
}

// resolveService resolve tên collection trên URL thành spec và service.
// Tên không đăng ký trả về common.ErrUnknownCollection (404) trước khi
// chạm tới database.
func (h *CollectionHandler) resolveService(c fiber.Ctx) (models.CollectionSpec, *services.DocumentService, error) {
	name := c.Params("collection")

	spec, err := models.Resolve(name)
	if err != nil {
		return models.CollectionSpec{}, nil, err
	}

	coll, exists := global.RegistryCollections.Get(spec.Name)
	if !exists {
		return models.CollectionSpec{}, nil, common.ErrUnknownCollection
	}

	return spec, services.NewDocumentService(coll), nil
}

// parseDocumentID kiểm tra và chuyển id trên URL thành ObjectID.
// Chuỗi không phải hex 24 ký tự trả về 404 như tài nguyên không tồn tại.
func parseDocumentID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw := c.Params("id")
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.ErrInvalidDocumentID
	}
	return utility.String2ObjectID(raw), nil
}

// parseBody decode body JSON thành map không ràng buộc schema.
// Body không phải JSON object hợp lệ trả về 422.
func parseBody(c fiber.Ctx) (map[string]any, error) {
	doc := map[string]any{}
	if err := json.Unmarshal(c.Body(), &doc); err != nil {
		return nil, common.ErrInvalidFormat
	}
	return doc, nil
}

// Find godoc: GET /api/:collection
// Trả về danh sách documents theo thứ tự tự nhiên, public không cần token.
// Query limit giới hạn số lượng trả về, mặc định theo cấu hình server.
func (h *CollectionHandler) Find(c fiber.Ctx) error {
	_, service, err := h.resolveService(c)
	if err != nil {
		return HandleError(c, err)
	}

	limit := global.ServerConfig.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số limit phải là số nguyên",
				common.StatusUnprocessableEntity,
				nil,
			))
		}
		limit = parsed
	}

	docs, err := service.Find(c.Context(), limit)
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, toPublicList(docs))
}

// FindOneById godoc: GET /api/:collection/:id
// Trả về một document theo id, public không cần token.
func (h *CollectionHandler) FindOneById(c fiber.Ctx) error {
	_, service, err := h.resolveService(c)
	if err != nil {
		return HandleError(c, err)
	}

	oid, err := parseDocumentID(c)
	if err != nil {
		return HandleError(c, err)
	}

	doc, err := service.FindOneById(c.Context(), oid)
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, toPublic(doc))
}

// InsertOne godoc: POST /api/:collection
// Tạo mới document từ body, yêu cầu token admin. Validate field bắt buộc
// và kiểu primitive theo spec của collection; field lạ lưu nguyên vẹn.
// Trả về id của document vừa tạo.
func (h *CollectionHandler) InsertOne(c fiber.Ctx) error {
	spec, service, err := h.resolveService(c)
	if err != nil {
		return HandleError(c, err)
	}

	doc, err := parseBody(c)
	if err != nil {
		return HandleError(c, err)
	}

	if err := spec.ValidateCreate(doc); err != nil {
		return HandleError(c, err)
	}
	spec.ApplyDefaults(doc)

	oid, err := service.InsertOne(c.Context(), bson.M(doc))
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{"id": utility.ObjectID2String(oid)})
}

// UpdateById godoc: PUT/PATCH /api/:collection/:id
// Partial update: merge các field trong body vào document hiện có,
// yêu cầu token admin. Trả về document sau khi cập nhật.
func (h *CollectionHandler) UpdateById(c fiber.Ctx) error {
	_, service, err := h.resolveService(c)
	if err != nil {
		return HandleError(c, err)
	}

	oid, err := parseDocumentID(c)
	if err != nil {
		return HandleError(c, err)
	}

	doc, err := parseBody(c)
	if err != nil {
		return HandleError(c, err)
	}
	// "id" trên wire tương ứng _id trong store, không cho sửa
	delete(doc, "id")

	updated, err := service.UpdateById(c.Context(), oid, bson.M(doc))
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, toPublic(updated))
}

// DeleteById godoc: DELETE /api/:collection/:id
// Xóa hẳn document, yêu cầu token admin.
func (h *CollectionHandler) DeleteById(c fiber.Ctx) error {
	_, service, err := h.resolveService(c)
	if err != nil {
		return HandleError(c, err)
	}

	oid, err := parseDocumentID(c)
	if err != nil {
		return HandleError(c, err)
	}

	if err := service.DeleteById(c.Context(), oid); err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status": "deleted",
		"id":     utility.ObjectID2String(oid),
	})
}
