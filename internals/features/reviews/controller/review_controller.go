// file: internals/features/reviews/controller/review_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "yoda_backend/internals/features/reviews/dto"
	reviewModel "yoda_backend/internals/features/reviews/model"
	reviewService "yoda_backend/internals/features/reviews/service"
	helper "yoda_backend/internals/helpers"
	authMiddleware "yoda_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

func (ctrl *ReviewController) create(c *fiber.Ctx, parentID *uint) error {
	requestUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return helper.JsonNotFound(c)
	}

	var body dto.CreateReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	review, err := reviewService.CreateReview(ctrl.DB, parentID, requestUUID, body)
	if err != nil {
		if errors.Is(err, reviewService.ErrAlreadyReviewed) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tuition request sudah direview")
		}
		return helper.JsonNotFound(c)
	}
	return helper.JsonCreated(c, "Review tersimpan", review)
}

// ParentCreate — POST parent-review-create/:uuid (uuid tuition request).
func (ctrl *ReviewController) ParentCreate(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	return ctrl.create(c, &parent.ID)
}

// OpsCreate — ops menulis review hasil telepon follow-up ke parent.
func (ctrl *ReviewController) OpsCreate(c *fiber.Ctx) error {
	return ctrl.create(c, nil)
}

func (ctrl *ReviewController) list(c *fiber.Ctx, where string, args ...interface{}) error {
	paging := helper.ResolvePaging(c, 20, 50)

	base := ctrl.DB.Model(&reviewModel.Review{})
	if where != "" {
		base = base.Where(where, args...)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat review")
	}

	var reviews []reviewModel.Review
	if err := base.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat review")
	}

	return helper.Success(c, "OK", fiber.Map{
		"reviews":    reviews,
		"pagination": helper.BuildPagination(paging, total, len(reviews)),
	})
}

func (ctrl *ReviewController) ParentList(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	return ctrl.list(c, "parent_id = ?", parent.ID)
}

func (ctrl *ReviewController) TutorList(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	return ctrl.list(c, "tutor_id = ?", tutor.ID)
}

func (ctrl *ReviewController) OpsList(c *fiber.Ctx) error {
	return ctrl.list(c, "")
}

func (ctrl *ReviewController) details(c *fiber.Ctx, where string, args ...interface{}) error {
	reviewUUID, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return helper.JsonNotFound(c)
	}

	q := ctrl.DB.Where("uuid = ?", reviewUUID)
	if where != "" {
		q = q.Where(where, args...)
	}

	var review reviewModel.Review
	if err := q.First(&review).Error; err != nil {
		return helper.JsonNotFound(c)
	}
	return helper.Success(c, "OK", review)
}

func (ctrl *ReviewController) ParentDetails(c *fiber.Ctx) error {
	parent := authMiddleware.GetParent(c)
	return ctrl.details(c, "parent_id = ?", parent.ID)
}

func (ctrl *ReviewController) TutorDetails(c *fiber.Ctx) error {
	tutor := authMiddleware.GetTutor(c)
	return ctrl.details(c, "tutor_id = ?", tutor.ID)
}

func (ctrl *ReviewController) OpsDetails(c *fiber.Ctx) error {
	return ctrl.details(c, "")
}
