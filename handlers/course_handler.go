package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type courseTranslationPayload struct {
	LanguageID uint   `json:"language_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Lang       string `json:"lang"`
	Desc       string `json:"desc"`
}

type coursePayload struct {
	CategoryID    uint                        `json:"category_id" validate:"required"`
	LocalImage    *string                     `json:"local_image"`
	ImageURL      *string                     `json:"image_url" validate:"omitempty,url"`
	Duration      string                      `json:"duration" validate:"required"`
	Certification string                      `json:"certification" validate:"omitempty,oneof=yes no"`
	Students      string                      `json:"students" validate:"omitempty,oneof=yes no"`
	StudentGroup  string                      `json:"studentGroup" validate:"omitempty,oneof=yes no"`
	Assessments   string                      `json:"assessments" validate:"omitempty,oneof=yes no"`
	Order         int                         `json:"order" validate:"gte=0"`
	Translations  *[]courseTranslationPayload `json:"translations" validate:"omitempty,dive"`
}

func courseQuery() *gorm.DB {
	return database.DB.
		Preload("Category.Translations.Language").
		Preload("Translations.Language")
}

func ListPopularCourses(c *fiber.Ctx) error {
	var courses []models.PopularCourse
	if err := courseQuery().Scopes(models.DisplayOrdered).Find(&courses).Error; err != nil {
		return err
	}
	return c.JSON(serializers.PopularCourses(courses, languageParam(c)))
}

func GetPopularCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var course models.PopularCourse
	if err := courseQuery().First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return err
	}
	return c.JSON(serializers.PopularCourse(course, languageParam(c)))
}

// CoursesByCategory is the derived read: every course in one category, with
// the usual translation shaping.
func CoursesByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return err
	}

	var courses []models.PopularCourse
	if err := courseQuery().
		Where("category_id = ?", category.ID).
		Scopes(models.DisplayOrdered).
		Find(&courses).Error; err != nil {
		return err
	}
	return c.JSON(serializers.PopularCourses(courses, languageParam(c)))
}

func CreatePopularCourse(c *fiber.Ctx) error {
	var req coursePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(courseLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	var category models.Category
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
		}
		return err
	}

	course := models.PopularCourse{
		CategoryID:    req.CategoryID,
		LocalImage:    req.LocalImage,
		ImageURL:      req.ImageURL,
		Duration:      req.Duration,
		Certification: defaultYes(req.Certification),
		Students:      defaultYes(req.Students),
		StudentGroup:  defaultYes(req.StudentGroup),
		Assessments:   defaultYes(req.Assessments),
		Order:         req.Order,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		for _, t := range *req.Translations {
			tr := models.PopularCourseTranslation{
				PopularCourseID: course.ID,
				LanguageID:      t.LanguageID,
				Title:           t.Title,
				Lang:            t.Lang,
				Desc:            t.Desc,
			}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := courseQuery().First(&course, course.ID).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.PopularCourse(course, nil))
}

func UpdatePopularCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var course models.PopularCourse
	if err := database.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return err
	}

	var req coursePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(courseLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	var category models.Category
	if err := database.DB.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
		}
		return err
	}

	course.CategoryID = req.CategoryID
	course.LocalImage = req.LocalImage
	course.ImageURL = req.ImageURL
	course.Duration = req.Duration
	course.Certification = defaultYes(req.Certification)
	course.Students = defaultYes(req.Students)
	course.StudentGroup = defaultYes(req.StudentGroup)
	course.Assessments = defaultYes(req.Assessments)
	course.Order = req.Order

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		if err := tx.Where("popular_course_id = ?", course.ID).
			Delete(&models.PopularCourseTranslation{}).Error; err != nil {
			return err
		}
		for _, t := range *req.Translations {
			tr := models.PopularCourseTranslation{
				PopularCourseID: course.ID,
				LanguageID:      t.LanguageID,
				Title:           t.Title,
				Lang:            t.Lang,
				Desc:            t.Desc,
			}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := courseQuery().First(&course, course.ID).Error; err != nil {
		return err
	}
	return c.JSON(serializers.PopularCourse(course, nil))
}

func DeletePopularCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var course models.PopularCourse
	if err := database.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("popular_course_id = ?", course.ID).
			Delete(&models.PopularCourseTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func courseLanguageIDs(ts []courseTranslationPayload) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.LanguageID)
	}
	return ids
}

func defaultYes(v string) string {
	if v == "" {
		return models.StatusYes
	}
	return v
}
