package contact

import (
	"context"
	"testing"

	"go-admin/internal/common/apperror"
	"go-admin/internal/features/childissue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeContactRepo struct {
	contacts map[primitive.ObjectID]*Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[primitive.ObjectID]*Contact{}}
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *Contact) error {
	f.contacts[contact.ID] = contact
	return nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Contact, error) {
	if contact, ok := f.contacts[id]; ok {
		copied := *contact
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeContactRepo) FindByEmailAndPhone(ctx context.Context, email, phone string) (*Contact, error) {
	for _, contact := range f.contacts {
		if contact.Email == email && contact.Phone == phone {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeContactRepo) List(ctx context.Context, filter bson.M) ([]Contact, int64, error) {
	var out []Contact
	for _, contact := range f.contacts {
		out = append(out, *contact)
	}
	return out, int64(len(out)), nil
}

func (f *fakeContactRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	contact, ok := f.contacts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "name":
			contact.Name = value.(string)
		case "phone":
			contact.Phone = value.(string)
		case "email":
			contact.Email = value.(string)
		case "message":
			contact.Message = value.(string)
		case "website":
			contact.Website = value.(int)
		case "childIssue":
			contact.ChildIssue = value.(primitive.ObjectID)
		}
	}
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.contacts, id)
	return nil
}

func (f *fakeContactRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeIssueRepo struct {
	issues map[primitive.ObjectID]*childissue.ChildIssue
}

func (f *fakeIssueRepo) Create(ctx context.Context, issue *childissue.ChildIssue) error {
	f.issues[issue.ID] = issue
	return nil
}

func (f *fakeIssueRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*childissue.ChildIssue, error) {
	if issue, ok := f.issues[id]; ok {
		return issue, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeIssueRepo) FindByName(ctx context.Context, name string) (*childissue.ChildIssue, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeIssueRepo) List(ctx context.Context, filter bson.M) ([]childissue.ChildIssue, int64, error) {
	return nil, 0, nil
}

func (f *fakeIssueRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return nil
}

func (f *fakeIssueRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func (f *fakeIssueRepo) EnsureIndexes(ctx context.Context) error { return nil }

type contactFixture struct {
	svc   ContactService
	issue *childissue.ChildIssue
}

func newContactFixture() *contactFixture {
	issueRepo := &fakeIssueRepo{issues: map[primitive.ObjectID]*childissue.ChildIssue{}}
	issue := &childissue.ChildIssue{ID: primitive.NewObjectID(), Name: "Anxiety", Status: true}
	issueRepo.issues[issue.ID] = issue

	return &contactFixture{
		svc:   NewContactService(newFakeContactRepo(), issueRepo),
		issue: issue,
	}
}

func (fx *contactFixture) validInput() CreateContactInput {
	return CreateContactInput{
		Name:       "Jane Doe",
		Phone:      "5551234",
		Email:      "jane@example.com",
		ChildIssue: fx.issue.ID.Hex(),
		Message:    "Need advice",
	}
}

func TestCreateContactResolvesChildIssue(t *testing.T) {
	fx := newContactFixture()

	view, err := fx.svc.CreateContact(context.Background(), fx.validInput())
	require.NoError(t, err)

	require.NotNil(t, view.ChildIssue)
	assert.Equal(t, "Anxiety", view.ChildIssue.Name)
	assert.Equal(t, WebsiteDeepConnection, view.Website)
}

func TestCreateContactUnknownChildIssue(t *testing.T) {
	fx := newContactFixture()

	input := fx.validInput()
	input.ChildIssue = primitive.NewObjectID().Hex()
	_, err := fx.svc.CreateContact(context.Background(), input)
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Invalid childIssue — no matching record found", appErr.Message)
}

func TestCreateContactDuplicateEmailAndPhone(t *testing.T) {
	fx := newContactFixture()

	_, err := fx.svc.CreateContact(context.Background(), fx.validInput())
	require.NoError(t, err)

	_, err = fx.svc.CreateContact(context.Background(), fx.validInput())
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "A contact with this email and phone already exists", appErr.Message)

	// The pair must match; a different phone with the same email is fine.
	input := fx.validInput()
	input.Phone = "5559999"
	_, err = fx.svc.CreateContact(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateContactMissingField(t *testing.T) {
	fx := newContactFixture()

	input := fx.validInput()
	input.Message = ""
	_, err := fx.svc.CreateContact(context.Background(), input)
	require.Error(t, err)

	appErr := apperror.FromError(err, "unexpected")
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "All required fields (name, phone, email, childIssue, message) must be provided", appErr.Message)
}

func TestUpdateContactWebsiteZeroApplied(t *testing.T) {
	fx := newContactFixture()

	input := fx.validInput()
	site := WebsiteKiddicove
	input.Website = &site
	created, err := fx.svc.CreateContact(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, WebsiteKiddicove, created.Website)

	// An explicit zero is a real value, not "leave unchanged".
	zero := WebsiteDeepConnection
	updated, err := fx.svc.UpdateContact(context.Background(), created.ID.Hex(), UpdateContactInput{Website: &zero})
	require.NoError(t, err)
	assert.Equal(t, WebsiteDeepConnection, updated.Website)
}
