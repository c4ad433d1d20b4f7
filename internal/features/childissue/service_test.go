package childissue

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

type fakeChildIssueRepo struct {
	issues map[primitive.ObjectID]*ChildIssue
}

func newFakeChildIssueRepo() *fakeChildIssueRepo {
	return &fakeChildIssueRepo{issues: map[primitive.ObjectID]*ChildIssue{}}
}

func (f *fakeChildIssueRepo) Create(ctx context.Context, issue *ChildIssue) error {
	f.issues[issue.ID] = issue
	return nil
}

func (f *fakeChildIssueRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*ChildIssue, error) {
	if issue, ok := f.issues[id]; ok {
		copied := *issue
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeChildIssueRepo) FindByName(ctx context.Context, name string) (*ChildIssue, error) {
	for _, issue := range f.issues {
		if issue.Name == name {
			copied := *issue
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeChildIssueRepo) List(ctx context.Context, filter bson.M) ([]ChildIssue, int64, error) {
	var out []ChildIssue
	for _, issue := range f.issues {
		out = append(out, *issue)
	}
	return out, int64(len(out)), nil
}

func (f *fakeChildIssueRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	issue, ok := f.issues[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if name, ok := set["name"].(string); ok {
		issue.Name = name
	}
	if status, ok := set["status"].(bool); ok {
		issue.Status = status
	}
	return nil
}

func (f *fakeChildIssueRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.issues, id)
	return nil
}

func (f *fakeChildIssueRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestCreateChildIssueDuplicateExactMatch(t *testing.T) {
	svc := NewChildIssueService(newFakeChildIssueRepo())

	_, err := svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "Anxiety"})
	require.NoError(t, err)

	_, err = svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "Anxiety"})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Child issue with this name already exists", appErr.Message)

	// Unlike programs, the duplicate check is case-sensitive.
	_, err = svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "anxiety"})
	assert.NoError(t, err)
}

func TestCreateChildIssueDefaultsActive(t *testing.T) {
	svc := NewChildIssueService(newFakeChildIssueRepo())

	issue, err := svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "Sleep"})
	require.NoError(t, err)
	assert.True(t, issue.Status)
}

func TestUpdateChildIssueRenameConflict(t *testing.T) {
	svc := NewChildIssueService(newFakeChildIssueRepo())

	_, err := svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "Anxiety"})
	require.NoError(t, err)
	other, err := svc.CreateChildIssue(context.Background(), CreateChildIssueInput{Name: "Sleep"})
	require.NoError(t, err)

	name := "Anxiety"
	_, err = svc.UpdateChildIssue(context.Background(), other.ID.Hex(), UpdateChildIssueInput{Name: &name})
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, "Child issue name already exists", appErr.Message)
}
