package suggestion

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

type fakeSuggestionRepo struct {
	suggestions map[primitive.ObjectID]*Suggestion
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: map[primitive.ObjectID]*Suggestion{}}
}

func (f *fakeSuggestionRepo) Create(ctx context.Context, suggestion *Suggestion) error {
	f.suggestions[suggestion.ID] = suggestion
	return nil
}

func (f *fakeSuggestionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Suggestion, error) {
	if suggestion, ok := f.suggestions[id]; ok {
		copied := *suggestion
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSuggestionRepo) FindByEmail(ctx context.Context, email string) (*Suggestion, error) {
	for _, suggestion := range f.suggestions {
		if suggestion.Email == email {
			copied := *suggestion
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSuggestionRepo) List(ctx context.Context, filter bson.M) ([]Suggestion, int64, error) {
	var out []Suggestion
	for _, suggestion := range f.suggestions {
		out = append(out, *suggestion)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSuggestionRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	suggestion, ok := f.suggestions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			suggestion.Name = value.(string)
		case "email":
			suggestion.Email = value.(string)
		case "topic":
			suggestion.Topic = value.(string)
		}
	}
	return nil
}

func (f *fakeSuggestionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.suggestions, id)
	return nil
}

func (f *fakeSuggestionRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestCreateSuggestionRequiresAllFields(t *testing.T) {
	svc := NewSuggestionService(newFakeSuggestionRepo())

	_, err := svc.CreateSuggestion(context.Background(), CreateSuggestionInput{Name: "Jane"})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "All fields (name, email, topic) are required", appErr.Message)
}

func TestCreateSuggestionDuplicateEmail(t *testing.T) {
	svc := NewSuggestionService(newFakeSuggestionRepo())

	_, err := svc.CreateSuggestion(context.Background(), CreateSuggestionInput{
		Name: "Jane", Email: "jane@example.com", Topic: "More programs",
	})
	require.NoError(t, err)

	_, err = svc.CreateSuggestion(context.Background(), CreateSuggestionInput{
		Name: "Other", Email: "jane@example.com", Topic: "Something else",
	})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Email already exists for another suggestion", appErr.Message)
}

func TestUpdateSuggestionEmailConflict(t *testing.T) {
	svc := NewSuggestionService(newFakeSuggestionRepo())

	_, err := svc.CreateSuggestion(context.Background(), CreateSuggestionInput{
		Name: "Jane", Email: "jane@example.com", Topic: "More programs",
	})
	require.NoError(t, err)
	other, err := svc.CreateSuggestion(context.Background(), CreateSuggestionInput{
		Name: "Bob", Email: "bob@example.com", Topic: "Longer hours",
	})
	require.NoError(t, err)

	taken := "jane@example.com"
	_, err = svc.UpdateSuggestion(context.Background(), other.ID.Hex(), UpdateSuggestionInput{Email: &taken})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, "Email already in use by another suggestion", appErr.Message)
}

func TestUpdateSuggestionSameEmailNoConflict(t *testing.T) {
	svc := NewSuggestionService(newFakeSuggestionRepo())

	created, err := svc.CreateSuggestion(context.Background(), CreateSuggestionInput{
		Name: "Jane", Email: "jane@example.com", Topic: "More programs",
	})
	require.NoError(t, err)

	same := "jane@example.com"
	topic := "Updated topic"
	updated, err := svc.UpdateSuggestion(context.Background(), created.ID.Hex(), UpdateSuggestionInput{
		Email: &same,
		Topic: &topic,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated topic", updated.Topic)
}
