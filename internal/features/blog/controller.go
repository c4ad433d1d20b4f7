package blog

import (
	common_api "go-admin/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BlogController struct {
	BlogService BlogService
	Logger      *zap.Logger
}

func NewBlogController(blogService BlogService, logger *zap.Logger) *BlogController {
	return &BlogController{
		BlogService: blogService,
		Logger:      logger,
	}
}

func (ctrl *BlogController) CreateBlog(c *fiber.Ctx) error {
	var input CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	blog, err := ctrl.BlogService.CreateBlog(c.Context(), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while creating blog")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

func (ctrl *BlogController) ListBlogs(c *fiber.Ctx) error {
	var filter BlogFilter
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&filter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body",
			})
		}
	}

	blogs, total, err := ctrl.BlogService.ListBlogs(c.Context(), filter)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching blogs")
	}
	if blogs == nil {
		blogs = []Blog{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blogs fetched successfully",
		"total":   total,
		"blogs":   blogs,
	})
}

func (ctrl *BlogController) GetBlog(c *fiber.Ctx) error {
	blog, err := ctrl.BlogService.GetBlogByID(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while fetching blog by ID")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog fetched successfully",
		"blog":    blog,
	})
}

func (ctrl *BlogController) UpdateBlog(c *fiber.Ctx) error {
	var input UpdateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	blog, err := ctrl.BlogService.UpdateBlog(c.Context(), c.Params("id"), input)
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating blog")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

func (ctrl *BlogController) ToggleBlogStatus(c *fiber.Ctx) error {
	blog, err := ctrl.BlogService.ToggleBlogStatus(c.Context(), c.Params("id"))
	if err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while updating blog status")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog status updated successfully",
		"blog":    blog,
	})
}

func (ctrl *BlogController) DeleteBlog(c *fiber.Ctx) error {
	if err := ctrl.BlogService.DeleteBlog(c.Context(), c.Params("id")); err != nil {
		return common_api.Fail(c, ctrl.Logger, err, "Server error while deleting blog")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog deleted successfully",
	})
}
