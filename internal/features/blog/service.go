package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlogService interface {
	CreateBlog(ctx context.Context, input CreateBlogInput) (*Blog, error)
	ListBlogs(ctx context.Context, filter BlogFilter) ([]Blog, int64, error)
	GetBlogByID(ctx context.Context, id string) (*Blog, error)
	UpdateBlog(ctx context.Context, id string, input UpdateBlogInput) (*Blog, error)
	ToggleBlogStatus(ctx context.Context, id string) (*Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

type BlogServiceImpl struct {
	BlogRepo BlogRepository
}

func NewBlogService(blogRepo BlogRepository) BlogService {
	return &BlogServiceImpl{
		BlogRepo: blogRepo,
	}
}

func validContentType(ct string) bool {
	for _, t := range ContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}

func validPublicationStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

func (s *BlogServiceImpl) CreateBlog(ctx context.Context, input CreateBlogInput) (*Blog, error) {
	title := strings.TrimSpace(input.Title)
	contentType := strings.TrimSpace(input.ContentType)
	category := strings.TrimSpace(input.Category)
	content := strings.TrimSpace(input.Content)
	authorName := strings.TrimSpace(input.AuthorName)
	authorPosition := strings.TrimSpace(input.AuthorPosition)
	readTime := strings.TrimSpace(input.ReadTime)

	if title == "" || contentType == "" || category == "" || content == "" ||
		authorName == "" || authorPosition == "" || readTime == "" {
		return nil, apperror.Validation("All required fields must be provided")
	}

	if !validContentType(contentType) {
		return nil, apperror.Validation("contentType must be one of: article, news, story, tutorial")
	}

	status := strings.TrimSpace(input.PublicationStatus)
	if status == "" {
		status = StatusDraft
	}
	if !validPublicationStatus(status) {
		return nil, apperror.Validation("publicationStatus must be one of: draft, published")
	}

	var image *string
	if img := strings.TrimSpace(input.Image); img != "" {
		image = &img
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	blog := &Blog{
		ID:                primitive.NewObjectID(),
		Title:             title,
		ContentType:       contentType,
		Category:          category,
		PublicationStatus: status,
		Content:           content,
		AuthorName:        authorName,
		AuthorPosition:    authorPosition,
		ReadTime:          readTime,
		Image:             image,
		Tags:              tags,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.BlogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *BlogServiceImpl) ListBlogs(ctx context.Context, filter BlogFilter) ([]Blog, int64, error) {
	return s.BlogRepo.List(ctx, buildBlogFilter(filter))
}

func (s *BlogServiceImpl) GetBlogByID(ctx context.Context, id string) (*Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	blog, err := s.BlogRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Blog not found")
	}
	return blog, err
}

func (s *BlogServiceImpl) UpdateBlog(ctx context.Context, id string, input UpdateBlogInput) (*Blog, error) {
	existing, err := s.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	// A supplied but empty field keeps the stored value; required text
	// fields cannot be blanked through the update path.
	setText := func(key string, val *string) {
		if val == nil {
			return
		}
		if v := strings.TrimSpace(*val); v != "" {
			set[key] = v
		}
	}

	setText("title", input.Title)
	setText("category", input.Category)
	setText("content", input.Content)
	setText("authorName", input.AuthorName)
	setText("authorPosition", input.AuthorPosition)
	setText("readTime", input.ReadTime)
	setText("image", input.Image)

	if input.ContentType != nil {
		if ct := strings.TrimSpace(*input.ContentType); ct != "" {
			if !validContentType(ct) {
				return nil, apperror.Validation("contentType must be one of: article, news, story, tutorial")
			}
			set["contentType"] = ct
		}
	}

	if input.PublicationStatus != nil {
		if ps := strings.TrimSpace(*input.PublicationStatus); ps != "" {
			if !validPublicationStatus(ps) {
				return nil, apperror.Validation("publicationStatus must be one of: draft, published")
			}
			set["publicationStatus"] = ps
		}
	}

	if input.Tags != nil {
		set["tags"] = input.Tags
	}

	if err := s.BlogRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.BlogRepo.FindByID(ctx, existing.ID)
}

// ToggleBlogStatus flips a blog between draft and published.
func (s *BlogServiceImpl) ToggleBlogStatus(ctx context.Context, id string) (*Blog, error) {
	existing, err := s.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := StatusPublished
	if existing.PublicationStatus == StatusPublished {
		next = StatusDraft
	}

	set := bson.M{
		"publicationStatus": next,
		"updated_at":        time.Now(),
	}
	if err := s.BlogRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	return s.BlogRepo.FindByID(ctx, existing.ID)
}

func (s *BlogServiceImpl) DeleteBlog(ctx context.Context, id string) error {
	existing, err := s.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}
	return s.BlogRepo.Delete(ctx, existing.ID)
}

func buildBlogFilter(filter BlogFilter) bson.M {
	query := bson.M{}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query["publicationStatus"] = status
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query["category"] = category
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		regex := bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
		query["$or"] = []bson.M{
			{"title": regex},
			{"category": regex},
			{"authorName": regex},
			{"tags": regex},
		}
	}
	return query
}
