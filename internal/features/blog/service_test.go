package blog

import (
	"context"
	"testing"

	"go-admin/internal/common/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBlogRepo struct {
	blogs map[primitive.ObjectID]*Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[primitive.ObjectID]*Blog{}}
}

func (f *fakeBlogRepo) Create(ctx context.Context, blog *Blog) error {
	f.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	if blog, ok := f.blogs[id]; ok {
		copied := *blog
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBlogRepo) List(ctx context.Context, filter bson.M) ([]Blog, int64, error) {
	var out []Blog
	for _, blog := range f.blogs {
		out = append(out, *blog)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	blog, ok := f.blogs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			blog.Title = value.(string)
		case "contentType":
			blog.ContentType = value.(string)
		case "category":
			blog.Category = value.(string)
		case "publicationStatus":
			blog.PublicationStatus = value.(string)
		case "content":
			blog.Content = value.(string)
		case "tags":
			blog.Tags = value.([]string)
		}
	}
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.blogs, id)
	return nil
}

func validBlogInput() CreateBlogInput {
	return CreateBlogInput{
		Title:          "Raising Readers",
		ContentType:    "article",
		Category:       "Parenting",
		Content:        "Reading aloud builds vocabulary.",
		AuthorName:     "Jane Doe",
		AuthorPosition: "Child Psychologist",
		ReadTime:       "5 min",
	}
}

func TestCreateBlogDefaultsToDraft(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	blog, err := svc.CreateBlog(context.Background(), validBlogInput())
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, blog.PublicationStatus)
	assert.NotNil(t, blog.Tags)
	assert.Empty(t, blog.Tags)
	assert.Nil(t, blog.Image)
}

func TestCreateBlogMissingRequiredField(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	input := validBlogInput()
	input.AuthorName = "  "
	_, err := svc.CreateBlog(context.Background(), input)
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "All required fields must be provided", appErr.Message)
}

func TestCreateBlogRejectsUnknownContentType(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	input := validBlogInput()
	input.ContentType = "podcast"
	_, err := svc.CreateBlog(context.Background(), input)
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "contentType must be one of")
}

func TestToggleBlogStatusFlipsBothWays(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	created, err := svc.CreateBlog(context.Background(), validBlogInput())
	require.NoError(t, err)
	require.Equal(t, StatusDraft, created.PublicationStatus)

	published, err := svc.ToggleBlogStatus(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.PublicationStatus)

	back, err := svc.ToggleBlogStatus(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, back.PublicationStatus)
}

func TestToggleBlogStatusNotFound(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())

	_, err := svc.ToggleBlogStatus(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Blog not found", appErr.Message)
}

func TestUpdateBlogEmptyFieldKeepsStoredValue(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)

	created, err := svc.CreateBlog(context.Background(), validBlogInput())
	require.NoError(t, err)

	empty := ""
	updated, err := svc.UpdateBlog(context.Background(), created.ID.Hex(), UpdateBlogInput{Title: &empty})
	require.NoError(t, err)
	assert.Equal(t, "Raising Readers", updated.Title)
}

func TestBuildBlogFilterStatusMapsToPublicationStatus(t *testing.T) {
	query := buildBlogFilter(BlogFilter{Status: "published"})
	assert.Equal(t, "published", query["publicationStatus"])
	_, hasStatus := query["status"]
	assert.False(t, hasStatus)
}
